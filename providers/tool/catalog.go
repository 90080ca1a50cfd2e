package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/leofalp/calcagent/core/overview"
	"github.com/leofalp/calcagent/core/result"
)

// ErrToolNotFound is returned by [Catalog.Call] for an unknown tool name.
var ErrToolNotFound = errors.New("tool not found")

// Catalog is a thread-safe collection of tools keyed by lowercase name.
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]GenericTool
}

// NewCatalog creates a new empty tool catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		tools: make(map[string]GenericTool),
	}
}

// NewCatalogWithTools creates a catalog pre-populated with tools.
func NewCatalogWithTools(tools ...GenericTool) *Catalog {
	catalog := NewCatalog()
	catalog.AddTools(tools...)
	return catalog
}

// AddTools adds tools under the lowercase form of their ToolInfo().Name,
// replacing any tool already registered with that name.
func (c *Catalog) AddTools(tools ...GenericTool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tools {
		c.tools[strings.ToLower(t.ToolInfo().Name)] = t
	}
}

// Get retrieves a tool by name (case-insensitive).
func (c *Catalog) Get(name string) (GenericTool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tool, exists := c.tools[strings.ToLower(name)]
	return tool, exists
}

// Has checks if a tool with the given name exists (case-insensitive).
func (c *Catalog) Has(name string) bool {
	_, exists := c.Get(name)
	return exists
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.tools))
	for name := range c.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptions returns the ToolInfo of every tool, sorted by name.
func (c *Catalog) Descriptions() []ToolDescription {
	names := c.Names()
	descriptions := make([]ToolDescription, 0, len(names))
	for _, name := range names {
		if t, ok := c.Get(name); ok {
			descriptions = append(descriptions, t.ToolInfo())
		}
	}
	return descriptions
}

// Size returns the number of tools in the catalog.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}

// Validate returns one warning per tool that cannot be advertised properly:
// a missing description or parameter schema.
func (c *Catalog) Validate() []string {
	var warnings []string
	for _, name := range c.Names() {
		t, ok := c.Get(name)
		if !ok {
			continue
		}
		info := t.ToolInfo()
		if info.Description == "" {
			warnings = append(warnings, fmt.Sprintf("tool %q has no description", name))
		}
		if info.Parameters == nil {
			warnings = append(warnings, fmt.Sprintf("tool %q has no parameter schema", name))
		}
	}
	return warnings
}

// Call looks up name and invokes it with inputJson. When ctx carries an
// [overview.Overview] the call is recorded there.
func (c *Catalog) Call(ctx context.Context, name, inputJson string) (string, error) {
	t, ok := c.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrToolNotFound, name, strings.Join(c.Names(), ", "))
	}

	ov := overview.FromContext(ctx)
	if ov == nil {
		return t.Call(ctx, inputJson)
	}

	info := t.ToolInfo()
	start := time.Now()
	out, err := t.Call(ctx, inputJson)
	ov.AddToolCall(info.Name, info.Metrics, time.Since(start), err != nil || !succeeded(out))
	return out, err
}

func succeeded(out string) bool {
	var r result.Result
	return json.Unmarshal([]byte(out), &r) == nil && r.IsSuccess()
}
