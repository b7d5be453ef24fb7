package domain

import "context"

// ProviderKind identifies a source adapter implementation
type ProviderKind string

const (
	ProviderREST    ProviderKind = "rest"    // keyed REST list, one query per grouping
	ProviderStatic  ProviderKind = "static"  // fixed ID -> URL table
	ProviderGallery ProviderKind = "gallery" // paginated HTML gallery
	ProviderDump    ProviderKind = "dump"    // bulk JSON document
)

// ValidateProviderKind checks if a provider kind is known
func ValidateProviderKind(kind ProviderKind) bool {
	switch kind {
	case ProviderREST, ProviderStatic, ProviderGallery, ProviderDump:
		return true
	}
	return false
}

// SourceAdapter lists candidate records from one remote provider.
type SourceAdapter interface {
	// Name returns the provider tag stamped on every candidate
	Name() string

	// ListCandidates returns the provider's candidates. A non-nil error wraps
	// ErrProviderUnavailable; candidates returned alongside it are still usable.
	ListCandidates(ctx context.Context) ([]CandidateRecord, error)
}

// Fetcher retrieves a candidate's payload
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// AssetStore is the idempotent store keyed by canonical ID
type AssetStore interface {
	Exists(id string) bool
	Put(id string, data []byte) error
}
