package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/gifsync/internal/app"
	"github.com/yourusername/gifsync/internal/domain"
)

func TestPrintSummary(t *testing.T) {
	run := &domain.Run{
		Downloaded:      3,
		SkippedExisting: 50,
		Failed:          1,
		NotFound:        2,
		TotalStoredNow:  53,
		CatalogSize:     106,
		Coverage:        50,
		Unavailable:     "exercisedb",
		Items: []domain.RunItem{
			{CatalogID: "back_pull_up", Provider: "gymvisual", Outcome: domain.OutcomeDownloaded},
			{CatalogID: "yoga_lotus", Provider: "gymvisual", Outcome: domain.OutcomeFailed, Detail: "HTTP 404", URL: "https://g/lotus.gif"},
		},
	}

	var buf bytes.Buffer
	printSummary(&buf, run)
	out := buf.String()

	assert.Contains(t, out, "Downloaded:   3")
	assert.Contains(t, out, "Skipped:      50")
	assert.Contains(t, out, "Total stored: 53/106")
	assert.Contains(t, out, "Coverage:     50%")
	assert.Contains(t, out, "Unavailable:  exercisedb")
	assert.Contains(t, out, "Failed attempts:")
	assert.Contains(t, out, "yoga_lotus")
	assert.Contains(t, out, "HTTP 404")
	assert.NotContains(t, out, "back_pull_up")
}

func TestPrintSummary_NoFailures(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, &domain.Run{CatalogSize: 106})

	assert.NotContains(t, buf.String(), "Failed attempts")
	assert.NotContains(t, buf.String(), "Unavailable")
}

func TestPrintCoverage(t *testing.T) {
	cov := app.Coverage{Stored: 1, CatalogSize: 3, Percent: 33, Missing: []string{"a", "b"}}

	var buf bytes.Buffer
	printCoverage(&buf, cov, true)
	assert.Contains(t, buf.String(), "Stored:   1/3")
	assert.Contains(t, buf.String(), "Missing (2):")

	buf.Reset()
	printCoverage(&buf, cov, false)
	assert.NotContains(t, buf.String(), "Missing")
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil, 0)
	assert.Equal(t, "No passes recorded\n", buf.String())

	buf.Reset()
	printHistory(&buf, []*domain.Run{{
		ID:         "0123456789abcdef",
		Providers:  "exercisedb,gymvisual",
		Downloaded: 4,
		Coverage:   72,
		StartedAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2024, 5, 1, 10, 1, 30, 0, time.UTC),
	}}, 1)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "NOT FOUND")
	assert.Contains(t, lines[1], "1m30s")
	assert.Contains(t, lines[1], "01234567")
	assert.NotContains(t, lines[1], "89abcdef")
	assert.Contains(t, lines[1], "exercisedb,gymvisual")
	assert.Contains(t, lines[1], "72%")

	buf.Reset()
	printHistory(&buf, []*domain.Run{{ID: "abc"}}, 12)
	assert.Contains(t, buf.String(), "Showing 1 of 12 passes")
}

func TestPrintProviders(t *testing.T) {
	var buf bytes.Buffer
	printProviders(&buf, &domain.Config{Providers: []domain.ProviderConfig{
		{Name: "exercisedb", Kind: domain.ProviderREST},
		{Name: "tenor", Kind: domain.ProviderStatic, Disabled: true},
	}})

	out := buf.String()
	assert.Contains(t, out, "exercisedb")
	assert.Contains(t, out, "rest")
	assert.Contains(t, out, "false")
	assert.Contains(t, out, "1 of 2 enabled")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
}
