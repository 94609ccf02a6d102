// Package report renders a reconcile.Result as the text or JSON report.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/danieljhkim/sheetcheck/internal/reconcile"
)

// Section titles.
const (
	TitleTotals   = "LAYER TOTALS"
	TitleFindings = "DETAILED MISMATCH CHECK"
	TitleComplete = "CHECK COMPLETE"
)

// Writer renders reports to an io.Writer.
type Writer struct {
	out     io.Writer
	heading *color.Color
	issue   *color.Color
}

// NewWriter creates a Writer. Colors are only emitted when useColor is set.
func NewWriter(out io.Writer, useColor bool) *Writer {
	heading := color.New(color.FgBlue, color.Bold)
	issue := color.New(color.FgYellow)
	if useColor {
		heading.EnableColor()
		issue.EnableColor()
	} else {
		heading.DisableColor()
		issue.DisableColor()
	}
	return &Writer{out: out, heading: heading, issue: issue}
}

// Text writes the three-section plain report.
func (w *Writer) Text(res *reconcile.Result) error {
	if err := w.title(TitleTotals); err != nil {
		return err
	}
	for _, t := range res.Totals {
		if _, err := fmt.Fprintf(w.out, "%s: %d | %s: %d\n", t.RawType, t.RawCount, t.FinishedType, t.FinishedCount); err != nil {
			return err
		}
	}

	if err := w.title(TitleFindings); err != nil {
		return err
	}
	for _, f := range res.Findings {
		if _, err := w.issue.Fprintln(w.out, f.String()); err != nil {
			return err
		}
	}

	return w.title(TitleComplete)
}

func (w *Writer) title(s string) error {
	if _, err := fmt.Fprintln(w.out); err != nil {
		return err
	}
	_, err := w.heading.Fprintln(w.out, s)
	return err
}

// Document is the JSON form of a check run.
type Document struct {
	RawGeo   string              `json:"rawgeo"`
	Geo      string              `json:"geo"`
	Totals   []reconcile.Total   `json:"totals"`
	Findings []reconcile.Finding `json:"findings"`
	Skipped  map[string]Skipped  `json:"skipped"`
}

// Skipped lists the identifiers dropped from one store, by reason.
type Skipped map[string][]string

// JSON writes v as indented JSON.
func (w *Writer) JSON(v any) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
