package infrastructure

import (
	"context"
	"sort"
	"strings"

	"github.com/yourusername/gifsync/internal/domain"
)

// StaticSource offers a fixed id to url table
type StaticSource struct {
	name string
	urls map[string]string
}

var _ domain.SourceAdapter = (*StaticSource)(nil)

func NewStaticSource(cfg domain.ProviderConfig) *StaticSource {
	return &StaticSource{name: cfg.Name, urls: cfg.URLs}
}

func (s *StaticSource) Name() string { return s.name }

// ListCandidates emits one candidate per table key, in key order, pinned to that key
func (s *StaticSource) ListCandidates(ctx context.Context) ([]domain.CandidateRecord, error) {
	keys := make([]string, 0, len(s.urls))
	for k := range s.urls {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records := make([]domain.CandidateRecord, 0, len(keys))
	for _, k := range keys {
		if s.urls[k] == "" {
			continue
		}
		records = append(records, domain.CandidateRecord{
			Name:      strings.ReplaceAll(k, "_", " "),
			URL:       s.urls[k],
			Provider:  s.name,
			CatalogID: k,
		})
	}
	return records, nil
}
