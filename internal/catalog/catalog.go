// Package catalog resolves sound file paths to Minecraft sound event names
// and validates them against a catalog of known events.
package catalog

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"sigs.k8s.io/yaml"

	"spindex/internal/textutil"
)

//go:embed sound_events.txt
var bundledEvents string

var defaultCatalog = sync.OnceValue(func() *Catalog {
	names, err := parseNames(strings.NewReader(bundledEvents))
	if err != nil {
		panic(fmt.Sprintf("catalog: parse bundled sound events: %v", err))
	}
	return New(names...)
})

// Catalog is an immutable set of valid sound event names together with the
// category segments (the first segment of every name) that mark where an
// event name starts inside a path.
type Catalog struct {
	names      map[string]struct{}
	categories map[string]struct{}

	nearOnce  sync.Once
	nearIndex *textutil.Index
}

// Default returns the catalog of vanilla sound events bundled with the
// binary. The same instance is returned on every call.
func Default() *Catalog {
	return defaultCatalog()
}

// New builds a catalog from event names. Blank names are ignored.
func New(names ...string) *Catalog {
	c := &Catalog{
		names:      make(map[string]struct{}, len(names)),
		categories: make(map[string]struct{}),
	}
	c.add(names)
	return c
}

// With returns a new catalog holding the receiver's names plus extra.
func (c *Catalog) With(extra ...string) *Catalog {
	out := &Catalog{
		names:      make(map[string]struct{}, len(c.names)+len(extra)),
		categories: make(map[string]struct{}, len(c.categories)),
	}
	for name := range c.names {
		out.names[name] = struct{}{}
	}
	for category := range c.categories {
		out.categories[category] = struct{}{}
	}
	out.add(extra)
	return out
}

// WithFile returns a new catalog extended with the names listed in path.
// Files ending in .yaml, .yml or .json hold a list of names; any other file
// has one name per line, skipping blank lines and '#' comments.
func (c *Catalog) WithFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}

	var names []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		err = yaml.UnmarshalStrict(data, &names)
	default:
		names, err = parseNames(strings.NewReader(string(data)))
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}
	return c.With(names...), nil
}

// Contains reports whether name is a known sound event.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.names[name]
	return ok
}

// IsCategory reports whether segment starts at least one known event name.
func (c *Catalog) IsCategory(segment string) bool {
	_, ok := c.categories[segment]
	return ok
}

// Len returns the number of known event names.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Names returns every known event name in ascending order.
func (c *Catalog) Names() []string {
	return sortedKeys(c.names)
}

// Categories returns every category segment in ascending order.
func (c *Catalog) Categories() []string {
	return sortedKeys(c.categories)
}

// Resolve derives a dotted event name from a file path relative to the
// sounds folder. Leading segments are skipped until one matches a category;
// from there every directory segment is joined with '.'. The file name
// itself never contributes.
func (c *Catalog) Resolve(path string) (string, error) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return "", &PathNotConvertibleError{Path: path}
	}
	dirs := segments[:len(segments)-1]

	var parts []string
	for _, segment := range dirs {
		if len(parts) == 0 && !c.IsCategory(segment) {
			continue
		}
		parts = append(parts, segment)
	}

	if len(parts) < 2 {
		return "", &PathNotConvertibleError{Path: path}
	}

	name := strings.Join(parts, ".")
	if !c.Contains(name) {
		return "", &EventNotInCatalogError{Name: name, Path: path}
	}
	return name, nil
}

func (c *Catalog) add(names []string) {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		c.names[name] = struct{}{}
		category, _, _ := strings.Cut(name, ".")
		c.categories[category] = struct{}{}
	}
}

func splitPath(path string) []string {
	raw := strings.Split(filepath.ToSlash(path), "/")
	segments := make([]string, 0, len(raw))
	for _, segment := range raw {
		if segment == "" || segment == "." {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

func parseNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Nearest returns up to limit catalog names that share the most segments
// with name, best first. Segments common to many events weigh less.
func (c *Catalog) Nearest(name string, limit int) []string {
	c.nearOnce.Do(func() {
		c.nearIndex = textutil.NewIndex(c.Names())
	})
	matches := c.nearIndex.Nearest(name, limit)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Text)
	}
	return out
}
