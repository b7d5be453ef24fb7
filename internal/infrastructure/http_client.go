package infrastructure

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yourusername/gifsync/internal/domain"
)

const maxReasonLen = 80

// httpGetter performs single-attempt GETs with a fixed identity
type httpGetter struct {
	client    *http.Client
	userAgent string
	headers   map[string]string
	maxBytes  int64
}

func newHTTPGetter(timeout time.Duration, userAgent string, headers map[string]string, maxBytes int64) *httpGetter {
	return &httpGetter{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		headers:   headers,
		maxBytes:  maxBytes,
	}
}

// get returns the body of a 2xx response. Anything else is a *domain.FetchError.
func (g *httpGetter) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Reason: truncateString(err.Error(), maxReasonLen)}
	}
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}
	for k, v := range g.headers {
		req.Header.Set(k, v)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Reason: truncateString(err.Error(), maxReasonLen)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &domain.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, g.maxBytes+1))
	if err != nil {
		return nil, &domain.FetchError{URL: url, Reason: truncateString(err.Error(), maxReasonLen)}
	}
	if int64(len(body)) > g.maxBytes {
		return nil, &domain.FetchError{URL: url, Reason: fmt.Sprintf("body exceeds %d bytes", g.maxBytes)}
	}
	return body, nil
}

// sleepCtx waits for d or until ctx is done
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
