package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/yourusername/gifsync/internal/domain"
)

// Orchestrator runs one pass of the catalog against an ordered list of providers
type Orchestrator struct {
	store   domain.AssetStore
	fetcher domain.Fetcher
	matcher *Matcher
	logger  *zap.Logger
}

// NewOrchestrator creates a new orchestrator
func NewOrchestrator(store domain.AssetStore, fetcher domain.Fetcher, matcher *Matcher, logger *zap.Logger) *Orchestrator {
	if matcher == nil {
		matcher = NewMatcher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		store:   store,
		fetcher: fetcher,
		matcher: matcher,
		logger:  logger,
	}
}

// Run resolves, fetches and stores every catalog entry not yet in the store.
// Per-item problems are recorded in the returned stats; nothing aborts the pass
// except ctx cancellation, which returns the stats gathered so far.
func (o *Orchestrator) Run(ctx context.Context, catalog *domain.Catalog, providers []domain.SourceAdapter) domain.RunStats {
	stats := domain.RunStats{CatalogSize: catalog.Size()}

	pending := make([]domain.CatalogEntry, 0, len(catalog.Entries))
	for _, entry := range catalog.Entries {
		if o.store.Exists(entry.ID) {
			stats.SkippedExisting++
			continue
		}
		pending = append(pending, entry)
	}

	o.logger.Info("Starting pass",
		zap.Int("catalog", len(catalog.Entries)),
		zap.Int("pending", len(pending)),
		zap.Int("providers", len(providers)))

	failedAttempt := make(map[string]bool)

	for i, provider := range providers {
		if len(pending) == 0 || ctx.Err() != nil {
			break
		}

		candidates, err := provider.ListCandidates(ctx)
		if err != nil {
			stats.Unavailable = append(stats.Unavailable, provider.Name())
			o.logger.Warn("Provider listing degraded",
				zap.String("provider", provider.Name()),
				zap.Int("candidates", len(candidates)),
				zap.Error(err))
		}
		o.logger.Info("Provider listed",
			zap.String("provider", provider.Name()),
			zap.Int("index", i+1),
			zap.Int("candidates", len(candidates)),
			zap.Int("pending", len(pending)))
		if len(candidates) == 0 {
			continue
		}

		remaining := make([]domain.CatalogEntry, 0, len(pending))
		for j, entry := range pending {
			if ctx.Err() != nil {
				remaining = append(remaining, pending[j:]...)
				break
			}
			outcome := o.processEntry(ctx, provider.Name(), entry, candidates)
			stats.Items = append(stats.Items, outcome)

			switch outcome.Outcome {
			case domain.OutcomeDownloaded:
				stats.Downloaded++
			case domain.OutcomeSkipped:
				stats.SkippedExisting++
			case domain.OutcomeFailed:
				failedAttempt[entry.ID] = true
				remaining = append(remaining, entry)
			default:
				remaining = append(remaining, entry)
			}
		}
		pending = remaining
	}

	for _, entry := range pending {
		if failedAttempt[entry.ID] {
			stats.Failed++
			continue
		}
		stats.NotFound++
		if !hasOutcome(stats.Items, entry.ID) {
			// never tried: either nothing listed candidates or the pass was cancelled
			detail := domain.ErrNoMatch.Error()
			if err := ctx.Err(); err != nil {
				detail = err.Error()
			}
			stats.Items = append(stats.Items, domain.ItemOutcome{
				CatalogID: entry.ID,
				Outcome:   domain.OutcomeNotFound,
				Detail:    detail,
			})
		}
	}

	stats.TotalStoredNow = o.countStored(catalog)

	o.logger.Info("Pass complete",
		zap.Int("downloaded", stats.Downloaded),
		zap.Int("skipped", stats.SkippedExisting),
		zap.Int("failed", stats.Failed),
		zap.Int("not_found", stats.NotFound),
		zap.Int("stored", stats.TotalStoredNow),
		zap.Int("coverage", stats.Coverage()))

	return stats
}

// processEntry runs match, fetch and put for one entry against one provider's candidates
func (o *Orchestrator) processEntry(ctx context.Context, provider string, entry domain.CatalogEntry, candidates []domain.CandidateRecord) domain.ItemOutcome {
	outcome := domain.ItemOutcome{CatalogID: entry.ID, Provider: provider}

	// another writer may have filled it since the pass started
	if o.store.Exists(entry.ID) {
		outcome.Outcome = domain.OutcomeSkipped
		outcome.Detail = domain.ErrAlreadyStored.Error()
		return outcome
	}

	match, ok := o.matcher.Resolve(entry, candidates)
	if !ok {
		o.logger.Debug("No match", zap.String("id", entry.ID), zap.String("provider", provider))
		outcome.Outcome = domain.OutcomeNotFound
		outcome.Detail = domain.ErrNoMatch.Error()
		return outcome
	}

	var lastErr error
	for _, url := range match.Candidate.URLs() {
		outcome.URL = url
		err := o.fetchAndStore(ctx, entry.ID, url)
		if err == nil {
			o.logger.Info("Downloaded",
				zap.String("id", entry.ID),
				zap.String("provider", provider),
				zap.String("match", match.Candidate.Name),
				zap.Int("score", match.Score))
			outcome.Outcome = domain.OutcomeDownloaded
			return outcome
		}
		if errors.Is(err, domain.ErrAlreadyStored) {
			outcome.Outcome = domain.OutcomeSkipped
			outcome.Detail = err.Error()
			return outcome
		}
		lastErr = err
		o.logger.Warn("Fetch attempt failed",
			zap.String("id", entry.ID),
			zap.String("provider", provider),
			zap.String("url", url),
			zap.Error(err))
		if ctx.Err() != nil {
			break
		}
	}

	outcome.Outcome = domain.OutcomeFailed
	if lastErr == nil {
		lastErr = &domain.FetchError{Reason: "candidate has no url"}
	}
	outcome.Detail = lastErr.Error()
	return outcome
}

func (o *Orchestrator) fetchAndStore(ctx context.Context, id, url string) error {
	data, err := o.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	return o.store.Put(id, data)
}

func (o *Orchestrator) countStored(catalog *domain.Catalog) int {
	n := 0
	for _, entry := range catalog.Entries {
		if o.store.Exists(entry.ID) {
			n++
		}
	}
	return n
}

func hasOutcome(items []domain.ItemOutcome, id string) bool {
	for _, item := range items {
		if item.CatalogID == id {
			return true
		}
	}
	return false
}
