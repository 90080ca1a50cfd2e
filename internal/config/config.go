// Package config loads calcagent settings.
//
// Values are layered, later sources winning: built-in defaults, the YAML file,
// variables from a .env file, then the process environment. Command-line
// flags are applied on top by the cmd package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/leofalp/calcagent/core/report"
	"github.com/leofalp/calcagent/providers/observability/slogobs"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "calcagent.yaml"

// DefaultEnvFile is the dotenv file read by Load.
const DefaultEnvFile = ".env"

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Environment variables read by Load.
const (
	EnvLogLevel      = "CALCAGENT_LOG_LEVEL"
	EnvLogFormat     = "CALCAGENT_LOG_FORMAT"
	EnvReportFormat  = "CALCAGENT_REPORT_FORMAT"
	EnvCacheBackend  = "CALCAGENT_CACHE_BACKEND"
	EnvCacheTTL      = "CALCAGENT_CACHE_TTL"
	EnvRedisAddr     = "CALCAGENT_REDIS_ADDR"
	EnvRedisPassword = "CALCAGENT_REDIS_PASSWORD"
	EnvRedisDB       = "CALCAGENT_REDIS_DB"
)

// Config is the root configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Report ReportConfig `yaml:"report"`
	Cache  CacheConfig  `yaml:"cache"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ReportConfig struct {
	// Format is text or markdown.
	Format string `yaml:"format"`
}

type CacheConfig struct {
	// Backend is none, memory or redis.
	Backend string        `yaml:"backend"`
	TTL     time.Duration `yaml:"ttl"`
	Redis   RedisConfig   `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: string(slogobs.FormatCompact),
		},
		Report: ReportConfig{Format: string(report.FormatText)},
		Cache: CacheConfig{
			Backend: CacheNone,
			TTL:     10 * time.Minute,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
	}
}

// Load builds the configuration from path and envFile. An empty path means
// DefaultPath and an empty envFile means DefaultEnvFile; either file may be
// absent. The result is validated.
func Load(path, envFile string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", envFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	setString(EnvLogLevel, &c.Log.Level)
	setString(EnvLogFormat, &c.Log.Format)
	setString(EnvReportFormat, &c.Report.Format)
	setString(EnvCacheBackend, &c.Cache.Backend)
	setString(EnvRedisAddr, &c.Cache.Redis.Addr)
	setString(EnvRedisPassword, &c.Cache.Redis.Password)

	if v := strings.TrimSpace(os.Getenv(EnvCacheTTL)); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCacheTTL, err)
		}
		c.Cache.TTL = ttl
	}
	if v := strings.TrimSpace(os.Getenv(EnvRedisDB)); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRedisDB, err)
		}
		c.Cache.Redis.DB = db
	}
	return nil
}

// Validate checks that every enumerated setting has a known value.
func (c *Config) Validate() error {
	if _, err := slogobs.ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch slogobs.Format(strings.ToLower(c.Log.Format)) {
	case slogobs.FormatCompact, slogobs.FormatJSON:
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		return fmt.Errorf("report.format: %w", err)
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("cache.backend: unknown backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl: must not be negative, got %s", c.Cache.TTL)
	}
	return nil
}
