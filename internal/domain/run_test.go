package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoveragePercent(t *testing.T) {
	tests := []struct {
		stored, total, want int
	}{
		{53, 106, 50},
		{1, 106, 0},
		{105, 106, 99},
		{106, 106, 100},
		{0, 106, 0},
		{5, 0, 0},
		{120, 106, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CoveragePercent(tt.stored, tt.total), "%d/%d", tt.stored, tt.total)
	}
}

func TestRunStats_Coverage(t *testing.T) {
	stats := RunStats{TotalStoredNow: 53, CatalogSize: 106}
	assert.Equal(t, 50, stats.Coverage())
}

func TestNewRun(t *testing.T) {
	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	stats := RunStats{
		Downloaded:     2,
		Failed:         1,
		TotalStoredNow: 10,
		CatalogSize:    20,
		Unavailable:    []string{"exercisedb"},
		Items: []ItemOutcome{
			{CatalogID: "abs_001", Provider: "gymvisual", Outcome: OutcomeDownloaded, URL: "https://x/a.gif"},
			{CatalogID: "abs_002", Provider: "gymvisual", Outcome: OutcomeFailed, Detail: "HTTP 404"},
		},
	}

	run := NewRun([]string{"exercisedb", "gymvisual"}, stats, started, started.Add(time.Minute))

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "exercisedb,gymvisual", run.Providers)
	assert.Equal(t, "exercisedb", run.Unavailable)
	assert.Equal(t, 50, run.Coverage)
	assert.Equal(t, time.Minute, run.Duration())
	assert.Len(t, run.Items, 2)
	assert.Equal(t, run.ID, run.Items[1].RunID)
	assert.Equal(t, OutcomeFailed, run.Items[1].Outcome)
}

func TestCandidateRecord_URLs(t *testing.T) {
	c := CandidateRecord{URL: "a", Fallbacks: []string{"", "a", "b"}}
	assert.Equal(t, []string{"a", "b"}, c.URLs())

	c = CandidateRecord{Name: "plank", Title: "forearm"}
	assert.Equal(t, "plank forearm", c.Text())
	assert.Empty(t, c.URLs())
}

func TestFetchError(t *testing.T) {
	assert.Equal(t, "HTTP 404", (&FetchError{StatusCode: 404}).Error())
	assert.Equal(t, "timeout", (&FetchError{Reason: "timeout"}).Error())
}
