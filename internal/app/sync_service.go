package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/gifsync/internal/domain"
)

// ProviderSet builds source adapters from configuration
type ProviderSet interface {
	// Select returns adapters for the named providers in the given order;
	// no names means every enabled provider in configured order.
	Select(names []string) ([]domain.SourceAdapter, error)
}

// Notifier announces finished passes
type Notifier interface {
	NotifyPassCompleted(run *domain.Run)
}

// StoreInspector reports store contents without fetching
type StoreInspector interface {
	Exists(id string) bool
	CountStored(ids []string) int
}

// Coverage is a store snapshot against the catalog
type Coverage struct {
	Stored      int      `json:"stored"`
	CatalogSize int      `json:"catalog_size"`
	Percent     int      `json:"percent"`
	Missing     []string `json:"missing"`
}

// SyncService runs passes one at a time and records them
type SyncService struct {
	catalog      *domain.Catalog
	orchestrator *Orchestrator
	providers    ProviderSet
	store        StoreInspector
	repo         domain.RunRepository
	notifier     Notifier
	logger       *zap.Logger

	mu      sync.Mutex
	running bool
	wg      sync.WaitGroup
	nowFn   func() time.Time
}

// NewSyncService creates a new sync service. repo and notifier may be nil.
func NewSyncService(
	catalog *domain.Catalog,
	orchestrator *Orchestrator,
	providers ProviderSet,
	store StoreInspector,
	repo domain.RunRepository,
	notifier Notifier,
	logger *zap.Logger,
) *SyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncService{
		catalog:      catalog,
		orchestrator: orchestrator,
		providers:    providers,
		store:        store,
		repo:         repo,
		notifier:     notifier,
		logger:       logger,
		nowFn:        time.Now,
	}
}

// IsRunning returns whether a pass is in progress
func (s *SyncService) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// RunPass runs one pass with the named providers. It fails only when a pass
// is already running or a provider name is unknown; per-item failures are
// part of the returned run.
func (s *SyncService) RunPass(ctx context.Context, providerNames []string) (*domain.Run, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	adapters, err := s.providers.Select(providerNames)
	if err != nil {
		return nil, fmt.Errorf("failed to select providers: %w", err)
	}
	return s.run(ctx, adapters), nil
}

// StartPass selects providers and runs the pass in the background. It
// returns the provider names in pass order.
func (s *SyncService) StartPass(ctx context.Context, providerNames []string) ([]string, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}

	adapters, err := s.providers.Select(providerNames)
	if err != nil {
		s.release()
		return nil, fmt.Errorf("failed to select providers: %w", err)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.release()
		s.run(ctx, adapters)
	}()

	return adapterNames(adapters), nil
}

// Wait blocks until background passes have finished
func (s *SyncService) Wait() {
	s.wg.Wait()
}

func (s *SyncService) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return domain.ErrRunInProgress
	}
	s.running = true
	return nil
}

func (s *SyncService) release() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

func (s *SyncService) run(ctx context.Context, adapters []domain.SourceAdapter) *domain.Run {
	started := s.nowFn()
	stats := s.orchestrator.Run(ctx, s.catalog, adapters)
	run := domain.NewRun(adapterNames(adapters), stats, started, s.nowFn())

	if s.repo != nil {
		if err := s.repo.Create(run); err != nil {
			s.logger.Error("Failed to record pass", zap.String("run_id", run.ID), zap.Error(err))
		}
	}
	if s.notifier != nil {
		s.notifier.NotifyPassCompleted(run)
	}
	return run
}

func adapterNames(adapters []domain.SourceAdapter) []string {
	names := make([]string, 0, len(adapters))
	for _, a := range adapters {
		names = append(names, a.Name())
	}
	return names
}

// Coverage reports which catalog entries are stored
func (s *SyncService) Coverage() Coverage {
	cov := Coverage{
		Stored:      s.store.CountStored(s.catalog.IDs()),
		CatalogSize: s.catalog.Size(),
		Missing:     []string{},
	}
	for _, id := range s.catalog.IDs() {
		if !s.store.Exists(id) {
			cov.Missing = append(cov.Missing, id)
		}
	}
	cov.Percent = domain.CoveragePercent(cov.Stored, cov.CatalogSize)
	return cov
}

// GetRun retrieves a recorded pass
func (s *SyncService) GetRun(id string) (*domain.Run, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("%w: history is disabled", domain.ErrRunNotFound)
	}
	return s.repo.FindByID(id)
}

// ListRuns returns the most recent recorded passes
func (s *SyncService) ListRuns(limit int) ([]*domain.Run, error) {
	if s.repo == nil {
		return []*domain.Run{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	return s.repo.FindRecent(limit)
}

// CountRuns returns how many passes are recorded
func (s *SyncService) CountRuns() (int64, error) {
	if s.repo == nil {
		return 0, nil
	}
	return s.repo.Count()
}
