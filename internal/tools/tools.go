// Package tools provides the tool directory: the authoritative mapping from a
// tool slug to its title, category and icon.
//
// Lookups are total. Unknown slugs degrade to sentinel values instead of
// errors, since callers use them for best-effort rendering.
package tools

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Tool is a single directory entry.
type Tool struct {
	Slug     string `yaml:"slug" json:"slug"`
	Title    string `yaml:"title" json:"title"`
	Category string `yaml:"category" json:"category"`
	Icon     string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// catalogFile is the on-disk layout of a directory file.
type catalogFile struct {
	Tools []Tool `yaml:"tools"`
}

// Directory is an ordered, read-only set of tools.
// A Directory is never mutated after construction and is safe for concurrent use.
type Directory struct {
	tools []Tool
	index map[string]int
}

// NewDirectory builds a directory from tools, preserving their order.
// Entries with an empty slug are dropped; for duplicate slugs the first entry wins.
func NewDirectory(tools []Tool) *Directory {
	d := &Directory{
		tools: make([]Tool, 0, len(tools)),
		index: make(map[string]int, len(tools)),
	}
	for _, t := range tools {
		t.Slug = strings.TrimSpace(t.Slug)
		if t.Slug == "" {
			continue
		}
		if _, exists := d.index[t.Slug]; exists {
			continue
		}
		d.index[t.Slug] = len(d.tools)
		d.tools = append(d.tools, t)
	}
	return d
}

// Parse decodes a YAML directory file.
func Parse(data []byte) (*Directory, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse tool directory: %w", err)
	}
	return NewDirectory(f.Tools), nil
}

var defaultDirectory = sync.OnceValue(func() *Directory {
	d, err := Parse(catalogYAML)
	if err != nil {
		panic(err)
	}
	return d
})

// Default returns the built-in directory.
func Default() *Directory {
	return defaultDirectory()
}

// Lookup returns the tool registered under id.
func (d *Directory) Lookup(id string) (Tool, bool) {
	if d == nil {
		return Tool{}, false
	}
	idx, ok := d.index[id]
	if !ok {
		return Tool{}, false
	}
	return d.tools[idx], true
}

// IsValidToolSlug reports whether id resolves in the directory.
func (d *Directory) IsValidToolSlug(id string) bool {
	_, ok := d.Lookup(id)
	return ok
}

// Title returns the tool's title, or id itself when the tool is unknown
// or has no title.
func (d *Directory) Title(id string) string {
	t, ok := d.Lookup(id)
	if !ok || t.Title == "" {
		return id
	}
	return t.Title
}

// Category returns the tool's category. ok is false for unknown tools.
func (d *Directory) Category(id string) (category string, ok bool) {
	t, found := d.Lookup(id)
	if !found {
		return "", false
	}
	return t.Category, true
}

// InCategory returns the slugs in category, in directory order.
func (d *Directory) InCategory(category string) []string {
	if d == nil {
		return nil
	}
	var slugs []string
	for _, t := range d.tools {
		if t.Category == category {
			slugs = append(slugs, t.Slug)
		}
	}
	return slugs
}

// Categories returns the distinct categories in order of first appearance.
func (d *Directory) Categories() []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]bool)
	var cats []string
	for _, t := range d.tools {
		if !seen[t.Category] {
			seen[t.Category] = true
			cats = append(cats, t.Category)
		}
	}
	return cats
}

// Slugs returns every slug in directory order.
func (d *Directory) Slugs() []string {
	if d == nil {
		return nil
	}
	slugs := make([]string, len(d.tools))
	for i, t := range d.tools {
		slugs[i] = t.Slug
	}
	return slugs
}

// All returns a copy of every tool in directory order.
func (d *Directory) All() []Tool {
	if d == nil {
		return nil
	}
	out := make([]Tool, len(d.tools))
	copy(out, d.tools)
	return out
}

// Len returns the number of tools.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.tools)
}
