package container

import (
	"context"
	"strings"
	"testing"

	"github.com/leofalp/calcagent/core/report"
	"github.com/leofalp/calcagent/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	cfg := config.DefaultConfig()
	c, err := New(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer c.Close()

	if c.Catalog().Size() != 5 {
		t.Errorf("expected 5 tools, got %d", c.Catalog().Size())
	}
	if c.CacheName() != config.CacheNone {
		t.Errorf("expected no cache, got %q", c.CacheName())
	}
	if c.ReportFormat() != report.FormatText {
		t.Errorf("expected text format, got %q", c.ReportFormat())
	}
	if c.Observer() == nil || c.Config() != &cfg {
		t.Error("expected observer and config to be wired")
	}
}

func TestNew_MemoryCache(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Cache.Backend = config.CacheMemory
	cfg.Report.Format = "markdown"

	c, err := New(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer c.Close()

	if c.CacheName() != "memory" {
		t.Errorf("expected memory cache, got %q", c.CacheName())
	}
	if c.ReportFormat() != report.FormatMarkdown {
		t.Errorf("expected markdown format, got %q", c.ReportFormat())
	}

	out, err := c.Catalog().Call(context.Background(), "calculate_bmi", `{"weight_kg":70,"height_cm":175}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "22.9") {
		t.Errorf("unexpected output %s", out)
	}
}

func TestNew_RedisUnreachable(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Cache.Backend = config.CacheRedis
	cfg.Cache.Redis.Addr = "127.0.0.1:1"

	if _, err := New(context.Background(), &cfg); err == nil {
		t.Fatal("expected error for unreachable redis")
	}
}

func TestNew_InvalidLogLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Level = "loud"

	if _, err := New(context.Background(), &cfg); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}
