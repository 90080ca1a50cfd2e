package cache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/leofalp/calcagent/core/parse"
)

// KeyPrefix namespaces every key produced by [Key].
const KeyPrefix = "calcagent"

// ComputeFunc produces the value for a key that is not cached yet.
type ComputeFunc func(ctx context.Context) (string, error)

// Cache is a string-valued get-or-compute store.
type Cache interface {
	// Name identifies the backend in logs and span attributes.
	Name() string

	// GetOrCompute returns the cached value for key, or runs compute and
	// stores its value. hit reports whether compute was skipped. Errors from
	// compute are returned as-is and never stored.
	GetOrCompute(ctx context.Context, key string, compute ComputeFunc) (value string, hit bool, err error)
}

// canonicalArgs decodes an argument object keeping numbers as their source
// text, so integers beyond float64 precision still yield distinct keys.
type canonicalArgs map[string]any

func (c *canonicalArgs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return err
	}
	*c = m
	return nil
}

// Key derives a stable cache key for a tool call. Arguments are decoded
// leniently and re-encoded with sorted object keys, so argument order and
// whitespace do not affect the key.
func Key(toolName, format, argsJson string) (string, error) {
	args, err := parse.ParseArguments[canonicalArgs](argsJson)
	if err != nil {
		return "", fmt.Errorf("canonicalize arguments: %w", err)
	}
	canonical, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("canonicalize arguments: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return strings.Join([]string{
		KeyPrefix,
		strings.ToLower(toolName),
		format,
		hex.EncodeToString(sum[:]),
	}, ":"), nil
}
