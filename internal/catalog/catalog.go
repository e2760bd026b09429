// Package catalog loads the static lookup tables used by the pipeline: the
// job category catalog and the soft-skill stop-term table. Both ship with
// embedded defaults and can be overridden from a file path. Loaded tables
// are read-only and safe to share across concurrent pipeline runs.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed job_map.json stop_terms.json
var assets embed.FS

const (
	// DefaultKey is the catalog key of the fallback category. Every catalog
	// must contain it.
	DefaultKey = "default"
	// WildcardTag marks the default category; it never participates in
	// fuzzy or inferred matching.
	WildcardTag = "*"
)

// Category is one catalog entry. The first URL is primary, the second (if
// present) is the backup; later URLs are reserved for retries.
type Category struct {
	Key  string   `json:"category"`
	Tags []string `json:"tags"`
	URLs []string `json:"urls"`
}

// Catalog holds the job categories in declaration order. Order matters:
// fuzzy and inferred matching break ties by declaration order.
type Catalog struct {
	Categories []Category

	byKey map[string]int
}

// Load reads a catalog from a JSON file (an array of category records).
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return parseCatalog(data)
}

// LoadDefault returns the embedded catalog.
func LoadDefault() (*Catalog, error) {
	data, err := assets.ReadFile("job_map.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalog: %w", err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (*Catalog, error) {
	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	c := &Catalog{
		Categories: categories,
		byKey:      make(map[string]int, len(categories)),
	}

	for i, cat := range categories {
		key := strings.ToLower(strings.TrimSpace(cat.Key))
		if key == "" {
			return nil, fmt.Errorf("catalog entry %d has an empty category key", i)
		}
		if _, exists := c.byKey[key]; exists {
			return nil, fmt.Errorf("duplicate catalog category %q", key)
		}
		if len(cat.URLs) == 0 {
			return nil, fmt.Errorf("catalog category %q has no URLs", key)
		}
		c.Categories[i].Key = key
		c.byKey[key] = i
	}

	def, ok := c.Lookup(DefaultKey)
	if !ok {
		return nil, fmt.Errorf("catalog is missing the %q category", DefaultKey)
	}
	if !hasWildcard(def.Tags) {
		return nil, fmt.Errorf("catalog %q category must carry the %q tag", DefaultKey, WildcardTag)
	}

	return c, nil
}

func hasWildcard(tags []string) bool {
	for _, tag := range tags {
		if tag == WildcardTag {
			return true
		}
	}
	return false
}

// Lookup returns the category for a key (case-insensitive).
func (c *Catalog) Lookup(key string) (*Category, bool) {
	idx, ok := c.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, false
	}
	return &c.Categories[idx], true
}

// Default returns the fallback category. Load guarantees it exists.
func (c *Catalog) Default() *Category {
	def, _ := c.Lookup(DefaultKey)
	return def
}
