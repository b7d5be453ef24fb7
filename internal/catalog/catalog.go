// Package catalog loads the canonical asset catalog from YAML.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/yourusername/gifsync/internal/domain"
)

//go:embed exercises.yaml
var defaultCatalog []byte

// Default returns the embedded exercise catalog
func Default() (*domain.Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file. An empty path loads the embedded catalog.
// knownTotal overrides the file's known_total when positive.
func Load(path string, knownTotal int) (*domain.Catalog, error) {
	data := defaultCatalog
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		data = raw
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if knownTotal > 0 {
		catalog.KnownTotal = knownTotal
	}
	return catalog, nil
}

// Parse decodes and validates catalog YAML
func Parse(data []byte) (*domain.Catalog, error) {
	var catalog domain.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &catalog, nil
}
