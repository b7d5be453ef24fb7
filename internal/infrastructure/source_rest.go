package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/gifsync/internal/domain"
)

// RESTSource lists candidates from a keyed JSON API, one request per group
type RESTSource struct {
	name        string
	getter      *httpGetter
	urlTemplate string
	groups      []string
	itemsField  string
	nameField   string
	titleField  string
	urlField    string
	delay       time.Duration
	sleepFn     func(ctx context.Context, d time.Duration) error
	logger      *zap.Logger
}

var _ domain.SourceAdapter = (*RESTSource)(nil)

// NewRESTSource creates a REST source. Header values are expanded from the environment.
func NewRESTSource(cfg domain.ProviderConfig, httpCfg domain.HTTPConfig, logger *zap.Logger) *RESTSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RESTSource{
		name:        cfg.Name,
		getter:      newHTTPGetter(httpCfg.ListTimeout, httpCfg.UserAgent, expandHeaders(cfg.Headers), httpCfg.MaxBytes),
		urlTemplate: cfg.URLTemplate,
		groups:      cfg.Groups,
		itemsField:  cfg.ItemsField,
		nameField:   cfg.NameField,
		titleField:  cfg.TitleField,
		urlField:    cfg.URLField,
		delay:       httpCfg.PageDelay,
		sleepFn:     sleepCtx,
		logger:      logger.With(zap.String("provider", cfg.Name)),
	}
}

func (s *RESTSource) Name() string { return s.name }

// ListCandidates requests every group. A failed group contributes nothing;
// the listing only errors when no group succeeded.
func (s *RESTSource) ListCandidates(ctx context.Context) ([]domain.CandidateRecord, error) {
	urls := s.groupURLs()

	var records []domain.CandidateRecord
	failed := 0
	var lastErr error

	for i, u := range urls {
		if i > 0 {
			if err := s.sleepFn(ctx, s.delay); err != nil {
				return records, fmt.Errorf("%w: %s: %v", domain.ErrProviderUnavailable, s.name, err)
			}
		}

		body, err := s.getter.get(ctx, u)
		if err == nil {
			var items []map[string]any
			items, err = decodeItems(body, s.itemsField)
			if err == nil {
				records = append(records, s.toRecords(items)...)
				continue
			}
		}

		failed++
		lastErr = err
		s.logger.Warn("Group request failed", zap.String("url", u), zap.Error(err))
	}

	if len(urls) > 0 && failed == len(urls) {
		return nil, fmt.Errorf("%w: %s: all %d requests failed: %v", domain.ErrProviderUnavailable, s.name, failed, lastErr)
	}
	return records, nil
}

func (s *RESTSource) groupURLs() []string {
	if !strings.Contains(s.urlTemplate, "{group}") {
		return []string{s.urlTemplate}
	}
	urls := make([]string, 0, len(s.groups))
	for _, g := range s.groups {
		urls = append(urls, strings.ReplaceAll(s.urlTemplate, "{group}", url.PathEscape(g)))
	}
	return urls
}

func (s *RESTSource) toRecords(items []map[string]any) []domain.CandidateRecord {
	records := make([]domain.CandidateRecord, 0, len(items))
	for _, item := range items {
		u := stringField(item, s.urlField)
		name := stringField(item, s.nameField)
		if u == "" || name == "" {
			continue
		}
		records = append(records, domain.CandidateRecord{
			Name:     name,
			Title:    stringField(item, s.titleField),
			URL:      u,
			Provider: s.name,
		})
	}
	return records
}

// decodeItems parses a JSON array of objects, optionally nested under itemsField
func decodeItems(body []byte, itemsField string) ([]map[string]any, error) {
	if itemsField == "" {
		var items []map[string]any
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
		return items, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	raw, ok := wrapper[itemsField]
	if !ok {
		return nil, fmt.Errorf("decode response: missing field %q", itemsField)
	}
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

func stringField(item map[string]any, key string) string {
	if key == "" {
		return ""
	}
	v, ok := item[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

func expandHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		out[k] = os.ExpandEnv(v)
	}
	return out
}
