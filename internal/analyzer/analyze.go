// Package analyzer tallies layer types per sheet for one workspace.
package analyzer

import (
	"context"
	"path"
	"sort"

	"go.uber.org/zap"

	"github.com/danieljhkim/sheetcheck/internal/catalog"
	"github.com/danieljhkim/sheetcheck/internal/geodb"
	"github.com/danieljhkim/sheetcheck/internal/sheetname"
)

// Skip reasons.
const (
	SkipUnparseable  = "unparseable"
	SkipUnmappedType = "unmapped-type"
)

// SheetKey identifies one map sheet of one job location.
type SheetKey struct {
	JL    string `json:"jl"`
	Sheet string `json:"sheet"`
}

// Less orders keys by JL, then Sheet.
func (k SheetKey) Less(o SheetKey) bool {
	if k.JL != o.JL {
		return k.JL < o.JL
	}
	return k.Sheet < o.Sheet
}

// Tally is the result of analyzing one workspace.
type Tally struct {
	// Counts is the number of feature classes per layer type.
	Counts map[string]int

	// Sheets lists the layer types seen per sheet, in enumeration order.
	Sheets map[SheetKey][]string

	// Skipped maps each dropped identifier to the reason it was dropped.
	Skipped map[string]string
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{
		Counts:  make(map[string]int),
		Sheets:  make(map[SheetKey][]string),
		Skipped: make(map[string]string),
	}
}

// Add records one parsed feature class.
func (t *Tally) Add(jl, sheet, layerType string) {
	t.Counts[layerType]++
	key := SheetKey{JL: jl, Sheet: sheet}
	t.Sheets[key] = append(t.Sheets[key], layerType)
}

// Keys returns the sheet keys in order.
func (t *Tally) Keys() []SheetKey {
	keys := make([]SheetKey, 0, len(t.Sheets))
	for k := range t.Sheets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Analyze enumerates ws and tallies every feature class whose name parses
// and whose layer type is in valid. Other names are dropped, not reported.
func Analyze(ctx context.Context, ws geodb.Workspace, valid map[string]bool, logger *zap.Logger) (*Tally, error) {
	ids, err := catalog.Enumerate(ctx, ws)
	if err != nil {
		return nil, err
	}

	tally := NewTally()
	for _, id := range ids {
		parsed, ok := sheetname.Parse(path.Base(id))
		if !ok {
			tally.Skipped[id] = SkipUnparseable
			logger.Debug("Skipping feature class", zap.String("id", id), zap.String("reason", SkipUnparseable))
			continue
		}
		if !valid[parsed.Type] {
			tally.Skipped[id] = SkipUnmappedType
			logger.Debug("Skipping feature class",
				zap.String("id", id),
				zap.String("reason", SkipUnmappedType),
				zap.String("type", parsed.Type))
			continue
		}
		tally.Add(parsed.JL, parsed.Sheet, parsed.Type)
	}

	logger.Debug("Workspace analyzed",
		zap.Int("feature_classes", len(ids)),
		zap.Int("sheets", len(tally.Sheets)),
		zap.Int("skipped", len(tally.Skipped)))

	return tally, nil
}
