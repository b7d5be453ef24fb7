package infrastructure

import (
	"context"
	"time"

	"github.com/yourusername/gifsync/internal/domain"
)

// HTTPFetcher downloads asset payloads, one attempt per call
type HTTPFetcher struct {
	getter  *httpGetter
	delay   time.Duration
	sleepFn func(ctx context.Context, d time.Duration) error
}

var _ domain.Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a fetcher from the shared http settings
func NewHTTPFetcher(cfg domain.HTTPConfig) *HTTPFetcher {
	return &HTTPFetcher{
		getter:  newHTTPGetter(cfg.FetchTimeout, cfg.UserAgent, nil, cfg.MaxBytes),
		delay:   cfg.FetchDelay,
		sleepFn: sleepCtx,
	}
}

// Fetch GETs url and returns the body. The configured delay follows every
// call, successful or not.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	body, err := f.getter.get(ctx, url)
	_ = f.sleepFn(ctx, f.delay)
	return body, err
}
