package engine

import (
	"sort"

	"github.com/danieljhkim/sheetcheck/internal/analyzer"
	"github.com/danieljhkim/sheetcheck/internal/geodb"
	"github.com/danieljhkim/sheetcheck/internal/reconcile"
)

// CheckResult represents the outcome of a check.
type CheckResult struct {
	// RawGeo and Geo are the store paths that were checked
	RawGeo string
	Geo    string

	// Report holds the totals and findings
	Report *reconcile.Result

	// Raw and Finished are the per-store tallies
	Raw      *analyzer.Tally
	Finished *analyzer.Tally
}

// SkippedByReason groups the identifiers a tally dropped by reason, sorted.
func SkippedByReason(t *analyzer.Tally) map[string][]string {
	out := make(map[string][]string)
	for id, reason := range t.Skipped {
		out[reason] = append(out[reason], id)
	}
	for _, ids := range out {
		sort.Strings(ids)
	}
	return out
}

// InventoryResult represents an exported catalog.
type InventoryResult struct {
	// Manifest is the catalog that was read
	Manifest *geodb.Memory

	// Data is the YAML encoding of Manifest
	Data []byte

	// Written is the file the manifest was written to, if any
	Written string
}
