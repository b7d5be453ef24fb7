package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Outcome is the result of one catalog entry against one provider
type Outcome string

const (
	OutcomeDownloaded Outcome = "downloaded"
	OutcomeSkipped    Outcome = "skipped"
	OutcomeFailed     Outcome = "failed"
	OutcomeNotFound   Outcome = "not_found"
)

// ItemOutcome is one line of the per-item diagnostic list
type ItemOutcome struct {
	CatalogID string  `json:"catalog_id"`
	Provider  string  `json:"provider,omitempty"`
	Outcome   Outcome `json:"outcome"`
	Detail    string  `json:"detail,omitempty"`
	URL       string  `json:"url,omitempty"`
}

// RunStats accumulates the counters of one pass
type RunStats struct {
	Downloaded      int           `json:"downloaded"`
	SkippedExisting int           `json:"skipped_existing"`
	Failed          int           `json:"failed"`
	NotFound        int           `json:"not_found"`
	TotalStoredNow  int           `json:"total_stored_now"`
	CatalogSize     int           `json:"catalog_size"`
	Unavailable     []string      `json:"unavailable,omitempty"`
	Items           []ItemOutcome `json:"items,omitempty"`
}

// Coverage returns the integer-floor percentage of the catalog held in the store
func (s RunStats) Coverage() int {
	return CoveragePercent(s.TotalStoredNow, s.CatalogSize)
}

// CoveragePercent returns stored*100/total rounded down, 0 for an empty catalog
func CoveragePercent(stored, total int) int {
	if total <= 0 || stored <= 0 {
		return 0
	}
	if stored > total {
		stored = total
	}
	return stored * 100 / total
}

// Run is a persisted pass
type Run struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Providers       string    `json:"providers"` // comma separated, in pass order
	Downloaded      int       `json:"downloaded"`
	SkippedExisting int       `json:"skipped_existing"`
	Failed          int       `json:"failed"`
	NotFound        int       `json:"not_found"`
	TotalStoredNow  int       `json:"total_stored_now"`
	CatalogSize     int       `json:"catalog_size"`
	Coverage        int       `json:"coverage"`
	Unavailable     string    `json:"unavailable,omitempty"`
	StartedAt       time.Time `json:"started_at" gorm:"index"`
	FinishedAt      time.Time `json:"finished_at"`
	Items           []RunItem `json:"items,omitempty" gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE"`
}

// RunItem is a persisted ItemOutcome
type RunItem struct {
	ID        uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	RunID     string  `json:"-" gorm:"index;not null"`
	CatalogID string  `json:"catalog_id" gorm:"index;not null"`
	Provider  string  `json:"provider,omitempty"`
	Outcome   Outcome `json:"outcome" gorm:"not null"`
	Detail    string  `json:"detail,omitempty"`
	URL       string  `json:"url,omitempty"`
}

// NewRun builds a persisted pass from its stats
func NewRun(providers []string, stats RunStats, startedAt, finishedAt time.Time) *Run {
	run := &Run{
		ID:              uuid.New().String(),
		Providers:       strings.Join(providers, ","),
		Downloaded:      stats.Downloaded,
		SkippedExisting: stats.SkippedExisting,
		Failed:          stats.Failed,
		NotFound:        stats.NotFound,
		TotalStoredNow:  stats.TotalStoredNow,
		CatalogSize:     stats.CatalogSize,
		Coverage:        stats.Coverage(),
		Unavailable:     strings.Join(stats.Unavailable, ","),
		StartedAt:       startedAt,
		FinishedAt:      finishedAt,
	}
	for _, item := range stats.Items {
		run.Items = append(run.Items, RunItem{
			RunID:     run.ID,
			CatalogID: item.CatalogID,
			Provider:  item.Provider,
			Outcome:   item.Outcome,
			Detail:    item.Detail,
			URL:       item.URL,
		})
	}
	return run
}

// Duration returns how long the pass took
func (r *Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
