package domain

import (
	"fmt"
	"strings"
)

// CatalogEntry is one canonical asset the store must eventually hold.
type CatalogEntry struct {
	ID    string   `yaml:"id" json:"id"`
	Terms []string `yaml:"terms" json:"terms"` // priority order, most specific first
}

// Catalog is the fixed set of canonical assets for a pass.
type Catalog struct {
	Entries    []CatalogEntry `yaml:"entries" json:"entries"`
	KnownTotal int            `yaml:"known_total" json:"known_total"`
}

// Size returns the coverage denominator
func (c *Catalog) Size() int {
	return max(c.KnownTotal, len(c.Entries))
}

// IDs returns the canonical IDs in catalog order
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		ids = append(ids, e.ID)
	}
	return ids
}

// Validate checks that IDs are unique, usable as file stems, and that every
// entry has at least one search term.
func (c *Catalog) Validate() error {
	if len(c.Entries) == 0 {
		return fmt.Errorf("catalog has no entries")
	}
	if c.KnownTotal < 0 {
		return fmt.Errorf("known_total cannot be negative")
	}

	seen := make(map[string]struct{}, len(c.Entries))
	for i, e := range c.Entries {
		if err := ValidateAssetID(e.ID); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("duplicate catalog id: %s", e.ID)
		}
		seen[e.ID] = struct{}{}

		terms := 0
		for _, t := range e.Terms {
			if strings.TrimSpace(t) != "" {
				terms++
			}
		}
		if terms == 0 {
			return fmt.Errorf("catalog id %s has no search terms", e.ID)
		}
	}
	return nil
}

// ValidateAssetID checks that id can be used as a file name stem in the store
func ValidateAssetID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidID)
	}
	if id == "." || id == ".." || strings.ContainsAny(id, `/\`) || strings.ContainsRune(id, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
