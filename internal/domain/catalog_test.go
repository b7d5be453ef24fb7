package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Size(t *testing.T) {
	catalog := &Catalog{
		Entries:    []CatalogEntry{{ID: "a", Terms: []string{"a"}}, {ID: "b", Terms: []string{"b"}}},
		KnownTotal: 106,
	}
	assert.Equal(t, 106, catalog.Size())

	catalog.KnownTotal = 0
	assert.Equal(t, 2, catalog.Size())
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr string
	}{
		{"valid", Catalog{Entries: []CatalogEntry{{ID: "chest_001", Terms: []string{"push-up"}}}}, ""},
		{"empty", Catalog{}, "no entries"},
		{"duplicate", Catalog{Entries: []CatalogEntry{
			{ID: "abs_001", Terms: []string{"plank"}},
			{ID: "abs_001", Terms: []string{"side plank"}},
		}}, "duplicate"},
		{"no terms", Catalog{Entries: []CatalogEntry{{ID: "abs_001", Terms: []string{" "}}}}, "no search terms"},
		{"path id", Catalog{Entries: []CatalogEntry{{ID: "../abs", Terms: []string{"x"}}}}, "invalid asset id"},
		{"negative total", Catalog{Entries: []CatalogEntry{{ID: "a", Terms: []string{"x"}}}, KnownTotal: -1}, "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAssetID(t *testing.T) {
	assert.NoError(t, ValidateAssetID("yoga_001"))
	assert.ErrorIs(t, ValidateAssetID(""), ErrInvalidID)
	assert.ErrorIs(t, ValidateAssetID(".."), ErrInvalidID)
	assert.ErrorIs(t, ValidateAssetID("a/b"), ErrInvalidID)
	assert.ErrorIs(t, ValidateAssetID(`a\b`), ErrInvalidID)
}
