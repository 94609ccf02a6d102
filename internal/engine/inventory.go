package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/sheetcheck/internal/catalog"
	"github.com/danieljhkim/sheetcheck/internal/geodb"
)

// Inventory reads the full catalog of one store and encodes it as a manifest
// that can later be checked in place of the store itself.
func (e *Engine) Inventory(ctx context.Context, req *InventoryRequest) (*InventoryResult, error) {
	ws, err := e.openStore(ctx, req.Store)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = ws.Close()
	}()

	snap, err := catalog.Snapshot(ctx, ws)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEnumerate, req.Store, err)
	}
	snap.Source = req.Store

	data, err := geodb.MarshalManifest(snap)
	if err != nil {
		return nil, err
	}

	result := &InventoryResult{Manifest: snap, Data: data}
	if req.Output != "" {
		if err := e.fs.AtomicWrite(req.Output, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write manifest: %w", err)
		}
		result.Written = req.Output
		e.logger.Debug("Manifest written", zap.String("path", req.Output), zap.Int("feature_classes", len(snap.Identifiers())))
	}

	return result, nil
}
