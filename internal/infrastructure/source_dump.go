package infrastructure

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yourusername/gifsync/internal/domain"
)

var acceptedImageExts = []string{".gif", ".jpg", ".jpeg", ".png", ".webp"}

// DumpSource lists candidates from one bulk JSON document
type DumpSource struct {
	name         string
	getter       *httpGetter
	url          string
	itemsField   string
	nameField    string
	titleField   string
	imagesField  string
	imageBaseURL string
	maxImages    int
	logger       *zap.Logger
}

var _ domain.SourceAdapter = (*DumpSource)(nil)

func NewDumpSource(cfg domain.ProviderConfig, httpCfg domain.HTTPConfig, logger *zap.Logger) *DumpSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	maxImages := cfg.MaxImages
	if maxImages < 1 {
		maxImages = 1
	}
	// the dump is one large document, so it gets the fetch timeout
	return &DumpSource{
		name:         cfg.Name,
		getter:       newHTTPGetter(httpCfg.FetchTimeout, httpCfg.UserAgent, expandHeaders(cfg.Headers), httpCfg.MaxBytes),
		url:          cfg.URL,
		itemsField:   cfg.ItemsField,
		nameField:    cfg.NameField,
		titleField:   cfg.TitleField,
		imagesField:  cfg.ImagesField,
		imageBaseURL: cfg.ImageBaseURL,
		maxImages:    maxImages,
		logger:       logger.With(zap.String("provider", cfg.Name)),
	}
}

func (s *DumpSource) Name() string { return s.name }

func (s *DumpSource) ListCandidates(ctx context.Context) ([]domain.CandidateRecord, error) {
	body, err := s.getter.get(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrProviderUnavailable, s.name, err)
	}

	items, err := decodeItems(body, s.itemsField)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrProviderUnavailable, s.name, err)
	}

	records := make([]domain.CandidateRecord, 0, len(items))
	for _, item := range items {
		name := stringField(item, s.nameField)
		if name == "" {
			continue
		}
		urls := s.imageURLs(item)
		if len(urls) == 0 {
			continue
		}
		records = append(records, domain.CandidateRecord{
			Name:      name,
			Title:     stringField(item, s.titleField),
			URL:       urls[0],
			Fallbacks: urls[1:],
			Provider:  s.name,
		})
	}

	s.logger.Debug("Dump listed", zap.Int("items", len(items)), zap.Int("records", len(records)))
	return records, nil
}

// imageURLs resolves up to maxImages usable image paths of one record
func (s *DumpSource) imageURLs(item map[string]any) []string {
	raw, _ := item[s.imagesField].([]any)

	var urls []string
	for _, v := range raw {
		if len(urls) == s.maxImages {
			break
		}
		p, ok := v.(string)
		if !ok || p == "" {
			continue
		}
		u := s.resolve(p)
		if !hasImageExt(u) {
			continue
		}
		urls = append(urls, u)
	}
	return urls
}

func (s *DumpSource) resolve(p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	if s.imageBaseURL == "" {
		return p
	}
	return strings.TrimRight(s.imageBaseURL, "/") + "/" + strings.TrimLeft(p, "/")
}

func hasImageExt(u string) bool {
	u, _, _ = strings.Cut(u, "?")
	u = strings.ToLower(u)
	for _, ext := range acceptedImageExts {
		if strings.HasSuffix(u, ext) {
			return true
		}
	}
	return false
}
