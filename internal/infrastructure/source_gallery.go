package infrastructure

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/yourusername/gifsync/internal/domain"
)

// GallerySource scrapes <img> elements from a paginated HTML gallery
type GallerySource struct {
	name         string
	getter       *httpGetter
	pageTemplate string
	baseURL      string
	maxPages     int
	srcContains  string
	pathContains string
	delay        time.Duration
	sleepFn      func(ctx context.Context, d time.Duration) error
	logger       *zap.Logger
}

var _ domain.SourceAdapter = (*GallerySource)(nil)

func NewGallerySource(cfg domain.ProviderConfig, httpCfg domain.HTTPConfig, logger *zap.Logger) *GallerySource {
	if logger == nil {
		logger = zap.NewNop()
	}
	srcContains := cfg.SrcContains
	if srcContains == "" {
		srcContains = ".gif"
	}
	return &GallerySource{
		name:         cfg.Name,
		getter:       newHTTPGetter(httpCfg.ListTimeout, httpCfg.UserAgent, expandHeaders(cfg.Headers), httpCfg.MaxBytes),
		pageTemplate: cfg.PageTemplate,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		maxPages:     cfg.MaxPages,
		srcContains:  strings.ToLower(srcContains),
		pathContains: cfg.PathContains,
		delay:        httpCfg.PageDelay,
		sleepFn:      sleepCtx,
		logger:       logger.With(zap.String("provider", cfg.Name)),
	}
}

func (s *GallerySource) Name() string { return s.name }

// ListCandidates walks pages until one adds nothing new or fails. Only a
// failure on the first page makes the provider unavailable.
func (s *GallerySource) ListCandidates(ctx context.Context) ([]domain.CandidateRecord, error) {
	var records []domain.CandidateRecord
	seen := make(map[string]bool)

	for page := 1; page <= s.maxPages; page++ {
		pageURL := strings.ReplaceAll(s.pageTemplate, "{page}", strconv.Itoa(page))

		body, err := s.getter.get(ctx, pageURL)
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("%w: %s: %v", domain.ErrProviderUnavailable, s.name, err)
			}
			s.logger.Debug("Gallery ended", zap.Int("page", page), zap.Error(err))
			break
		}

		pageRecords, err := s.parsePage(body)
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("%w: %s: %v", domain.ErrProviderUnavailable, s.name, err)
			}
			s.logger.Warn("Failed to parse gallery page", zap.Int("page", page), zap.Error(err))
			break
		}

		added := 0
		for _, r := range pageRecords {
			if seen[r.URL] {
				continue
			}
			seen[r.URL] = true
			records = append(records, r)
			added++
		}
		s.logger.Debug("Gallery page listed", zap.Int("page", page), zap.Int("records", added))
		if added == 0 {
			break
		}

		if page < s.maxPages {
			if err := s.sleepFn(ctx, s.delay); err != nil {
				return records, fmt.Errorf("%w: %s: %v", domain.ErrProviderUnavailable, s.name, err)
			}
		}
	}

	return records, nil
}

func (s *GallerySource) parsePage(body []byte) ([]domain.CandidateRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var records []domain.CandidateRecord
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := strings.TrimSpace(img.AttrOr("src", ""))
		if src == "" || !strings.Contains(strings.ToLower(src), s.srcContains) {
			return
		}
		if s.pathContains != "" && !strings.Contains(src, s.pathContains) {
			return
		}
		records = append(records, domain.CandidateRecord{
			Name:     strings.ToLower(strings.TrimSpace(img.AttrOr("alt", ""))),
			Title:    strings.ToLower(strings.TrimSpace(img.AttrOr("title", ""))),
			URL:      s.absoluteURL(src),
			Provider: s.name,
		})
	})
	return records, nil
}

// absoluteURL resolves protocol-relative, root-relative and relative srcs against the base
func (s *GallerySource) absoluteURL(src string) string {
	switch {
	case strings.HasPrefix(src, "//"):
		return "https:" + src
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return src
	case strings.HasPrefix(src, "/"):
		return s.baseURL + src
	default:
		return s.baseURL + "/" + src
	}
}
