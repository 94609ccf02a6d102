// Package reconcile compares the RawGeo and Geo tallies through the type map.
//
// Each sheet key seen on either side is checked independently:
//   - every distinct raw type needs its finished counterpart at the key
//   - every distinct finished type needs its raw counterpart at the key
//   - a layer type listed twice at a key is a duplicate, per side
//
// Findings for a key come out in that order; keys are ordered by JL, then
// Sheet, so the same tallies always produce the same Result.
package reconcile

import (
	"fmt"
	"sort"

	"github.com/danieljhkim/sheetcheck/internal/analyzer"
	"github.com/danieljhkim/sheetcheck/internal/typemap"
)

// Side names one of the two stores.
type Side string

const (
	SideRaw Side = "RAWGEO"
	SideGeo Side = "GEO"
)

// Finding kinds.
const (
	KindMismatch  = "mismatch"
	KindDuplicate = "duplicate"
)

// Total is one line of the totals report.
type Total struct {
	RawType       string `json:"raw_type"`
	RawCount      int    `json:"raw_count"`
	FinishedType  string `json:"finished_type"`
	FinishedCount int    `json:"finished_count"`
}

// Finding is one mismatch or duplicate at a sheet key.
type Finding struct {
	Kind  string            `json:"kind"`
	Key   analyzer.SheetKey `json:"key"`
	Side  Side              `json:"side"`
	Has   string            `json:"has,omitempty"`
	Wants string            `json:"missing,omitempty"`

	// Repeated lists the codes seen more than once (duplicates only).
	Repeated []string `json:"repeated,omitempty"`
}

// String renders the finding as a report line.
func (f Finding) String() string {
	if f.Kind == KindDuplicate {
		return fmt.Sprintf("DUPLICATE in %s to JL %s, Sheet %s", f.Side, f.Key.JL, f.Key.Sheet)
	}
	return fmt.Sprintf("MISMATCH: JL %s Sh %s has %s but is MISSING %s", f.Key.JL, f.Key.Sheet, f.Has, f.Wants)
}

// Result holds the totals and the findings, both in report order.
type Result struct {
	Totals   []Total   `json:"totals"`
	Findings []Finding `json:"findings"`
}

// HasFindings reports whether any mismatch or duplicate was found.
func (r *Result) HasFindings() bool {
	return len(r.Findings) > 0
}

// Reconcile compares raw (tallied with the raw codes of m) against geo
// (tallied with the finished codes of m).
func Reconcile(m *typemap.Map, raw, geo *analyzer.Tally) *Result {
	res := &Result{
		Totals:   make([]Total, 0, len(m.RawCodes())),
		Findings: []Finding{},
	}

	for _, r := range m.RawCodes() {
		g, _ := m.Finished(r)
		res.Totals = append(res.Totals, Total{
			RawType:       r,
			RawCount:      raw.Counts[r],
			FinishedType:  g,
			FinishedCount: geo.Counts[g],
		})
	}

	for _, key := range unionKeys(raw, geo) {
		rawTypes := raw.Sheets[key]
		geoTypes := geo.Sheets[key]
		rawSet := toSet(rawTypes)
		geoSet := toSet(geoTypes)

		for _, r := range distinct(rawTypes) {
			g, ok := m.Finished(r)
			if !ok {
				continue
			}
			if !geoSet[g] {
				res.Findings = append(res.Findings, Finding{Kind: KindMismatch, Key: key, Side: SideRaw, Has: r, Wants: g})
			}
		}

		for _, g := range distinct(geoTypes) {
			r, ok := m.Raw(g)
			if !ok {
				continue
			}
			if !rawSet[r] {
				res.Findings = append(res.Findings, Finding{Kind: KindMismatch, Key: key, Side: SideGeo, Has: g, Wants: r})
			}
		}

		if rep := repeated(rawTypes); len(rep) > 0 {
			res.Findings = append(res.Findings, Finding{Kind: KindDuplicate, Key: key, Side: SideRaw, Repeated: rep})
		}
		if rep := repeated(geoTypes); len(rep) > 0 {
			res.Findings = append(res.Findings, Finding{Kind: KindDuplicate, Key: key, Side: SideGeo, Repeated: rep})
		}
	}

	return res
}

func unionKeys(a, b *analyzer.Tally) []analyzer.SheetKey {
	seen := make(map[analyzer.SheetKey]bool, len(a.Sheets)+len(b.Sheets))
	keys := make([]analyzer.SheetKey, 0, len(a.Sheets)+len(b.Sheets))
	for _, t := range []*analyzer.Tally{a, b} {
		for k := range t.Sheets {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

func toSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}

// distinct keeps the first occurrence of each code.
func distinct(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// repeated returns the codes listed more than once, in first-occurrence order.
func repeated(codes []string) []string {
	count := make(map[string]int, len(codes))
	for _, c := range codes {
		count[c]++
	}
	var out []string
	for _, c := range distinct(codes) {
		if count[c] > 1 {
			out = append(out, c)
		}
	}
	return out
}
