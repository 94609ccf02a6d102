package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/danieljhkim/sheetcheck/internal/reconcile"
)

// Check analyzes RawGeo with the raw codes and Geo with the finished codes,
// then reconciles the two. Any store failure ends the check.
func (e *Engine) Check(ctx context.Context, req *CheckRequest) (*CheckResult, error) {
	raw, err := e.analyzeStore(ctx, req.RawGeo, e.types.RawSet())
	if err != nil {
		return nil, err
	}

	finished, err := e.analyzeStore(ctx, req.Geo, e.types.FinishedSet())
	if err != nil {
		return nil, err
	}

	report := reconcile.Reconcile(e.types, raw, finished)
	e.logger.Debug("Check complete",
		zap.Int("sheets_raw", len(raw.Sheets)),
		zap.Int("sheets_geo", len(finished.Sheets)),
		zap.Int("findings", len(report.Findings)))

	return &CheckResult{
		RawGeo:   req.RawGeo,
		Geo:      req.Geo,
		Report:   report,
		Raw:      raw,
		Finished: finished,
	}, nil
}
