// Package engine provides the core flow of sheetcheck operations.
//
// The engine package acts as the orchestration layer between CLI commands and
// lower-level packages. It opens the data stores, runs the analyzer on each,
// and hands the tallies to the reconciler.
//
// Key components:
//   - Engine: Main orchestrator called by the CLI
//   - Check: RawGeo/Geo cross-validation
//   - Inventory: Catalog export of a single store
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/sheetcheck/internal/analyzer"
	"github.com/danieljhkim/sheetcheck/internal/fsops"
	"github.com/danieljhkim/sheetcheck/internal/geodb"
	"github.com/danieljhkim/sheetcheck/internal/typemap"
)

// Engine orchestrates all sheetcheck operations.
// It is the main API surface called by the CLI.
type Engine struct {
	opener geodb.Opener
	types  *typemap.Map
	fs     fsops.FS
	logger *zap.Logger
}

// New creates a new Engine with the given dependencies.
func New(
	opener geodb.Opener,
	types *typemap.Map,
	fs fsops.FS,
	logger *zap.Logger,
) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		opener: opener,
		types:  types,
		fs:     fs,
		logger: logger,
	}
}

// Types returns the type map the engine reconciles with.
func (e *Engine) Types() *typemap.Map {
	return e.types
}

// openStore opens a store, wrapping failures with ErrStoreOpen.
func (e *Engine) openStore(ctx context.Context, path string) (geodb.Workspace, error) {
	e.logger.Debug("Opening data store", zap.String("path", path))
	ws, err := e.opener.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreOpen, err)
	}
	return ws, nil
}

// analyzeStore opens path and tallies the layer types in valid.
func (e *Engine) analyzeStore(ctx context.Context, path string, valid map[string]bool) (*analyzer.Tally, error) {
	ws, err := e.openStore(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = ws.Close()
	}()

	tally, err := analyzer.Analyze(ctx, ws, valid, e.logger.With(zap.String("store", path)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEnumerate, path, err)
	}
	return tally, nil
}
