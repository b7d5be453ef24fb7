package infrastructure

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yourusername/gifsync/internal/domain"
)

// SourceRegistry builds source adapters from provider configuration
type SourceRegistry struct {
	providers []domain.ProviderConfig
	httpCfg   domain.HTTPConfig
	logger    *zap.Logger
}

// NewSourceRegistry creates a registry over the configured providers
func NewSourceRegistry(providers []domain.ProviderConfig, httpCfg domain.HTTPConfig, logger *zap.Logger) *SourceRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SourceRegistry{providers: providers, httpCfg: httpCfg, logger: logger}
}

// Select returns adapters for names in the given order. With no names it
// returns every enabled provider in configured order; naming a disabled
// provider selects it anyway.
func (r *SourceRegistry) Select(names []string) ([]domain.SourceAdapter, error) {
	if len(names) == 0 {
		var adapters []domain.SourceAdapter
		for _, cfg := range r.providers {
			if cfg.Disabled {
				continue
			}
			a, err := r.build(cfg)
			if err != nil {
				return nil, err
			}
			adapters = append(adapters, a)
		}
		return adapters, nil
	}

	adapters := make([]domain.SourceAdapter, 0, len(names))
	for _, name := range names {
		cfg, ok := r.lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, name)
		}
		a, err := r.build(cfg)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, a)
	}
	return adapters, nil
}

// Names returns configured provider names in order
func (r *SourceRegistry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for _, cfg := range r.providers {
		names = append(names, cfg.Name)
	}
	return names
}

func (r *SourceRegistry) lookup(name string) (domain.ProviderConfig, bool) {
	for _, cfg := range r.providers {
		if cfg.Name == name {
			return cfg, true
		}
	}
	return domain.ProviderConfig{}, false
}

func (r *SourceRegistry) build(cfg domain.ProviderConfig) (domain.SourceAdapter, error) {
	switch cfg.Kind {
	case domain.ProviderREST:
		return NewRESTSource(cfg, r.httpCfg, r.logger), nil
	case domain.ProviderStatic:
		return NewStaticSource(cfg), nil
	case domain.ProviderGallery:
		return NewGallerySource(cfg, r.httpCfg, r.logger), nil
	case domain.ProviderDump:
		return NewDumpSource(cfg, r.httpCfg, r.logger), nil
	default:
		return nil, fmt.Errorf("provider %s: unknown kind %q", cfg.Name, cfg.Kind)
	}
}
