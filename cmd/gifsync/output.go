package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/yourusername/gifsync/internal/app"
	"github.com/yourusername/gifsync/internal/domain"
)

// printSummary writes the human readable result of one pass
func printSummary(w io.Writer, run *domain.Run) {
	fmt.Fprintln(w, "Pass summary:")
	fmt.Fprintf(w, "  Downloaded:   %d\n", run.Downloaded)
	fmt.Fprintf(w, "  Skipped:      %d\n", run.SkippedExisting)
	fmt.Fprintf(w, "  Failed:       %d\n", run.Failed)
	fmt.Fprintf(w, "  Not found:    %d\n", run.NotFound)
	fmt.Fprintf(w, "  Total stored: %d/%d\n", run.TotalStoredNow, run.CatalogSize)
	fmt.Fprintf(w, "  Coverage:     %d%%\n", run.Coverage)
	if run.Unavailable != "" {
		fmt.Fprintf(w, "  Unavailable:  %s\n", run.Unavailable)
	}

	var failures []domain.RunItem
	for _, item := range run.Items {
		if item.Outcome == domain.OutcomeFailed {
			failures = append(failures, item)
		}
	}
	if len(failures) == 0 {
		return
	}

	fmt.Fprintln(w, "\nFailed attempts:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPROVIDER\tREASON\tURL")
	for _, f := range failures {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.CatalogID, f.Provider, f.Detail, truncate(f.URL, 60))
	}
	tw.Flush()
}

// printCoverage writes the store state against the catalog
func printCoverage(w io.Writer, cov app.Coverage, showMissing bool) {
	fmt.Fprintf(w, "Stored:   %d/%d\n", cov.Stored, cov.CatalogSize)
	fmt.Fprintf(w, "Coverage: %d%%\n", cov.Percent)
	if !showMissing || len(cov.Missing) == 0 {
		return
	}
	fmt.Fprintf(w, "Missing (%d):\n", len(cov.Missing))
	for _, id := range cov.Missing {
		fmt.Fprintf(w, "  %s\n", id)
	}
}

// printHistory writes recorded passes as a table
func printHistory(w io.Writer, runs []*domain.Run, total int64) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No passes recorded")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tDURATION\tPROVIDERS\tNEW\tSKIPPED\tFAILED\tNOT FOUND\tCOVERAGE")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d%%\n",
			truncate(r.ID, 8),
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.Duration().Round(time.Second),
			r.Providers,
			r.Downloaded,
			r.SkippedExisting,
			r.Failed,
			r.NotFound,
			r.Coverage)
	}
	tw.Flush()
	if total > int64(len(runs)) {
		fmt.Fprintf(w, "Showing %d of %d passes\n", len(runs), total)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// printProviders writes the configured providers in pass order
func printProviders(w io.Writer, config *domain.Config) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tENABLED")
	for _, p := range config.Providers {
		fmt.Fprintf(tw, "%s\t%s\t%t\n", p.Name, p.Kind, !p.Disabled)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d of %d enabled\n", len(config.EnabledProviders()), len(config.Providers))
}
