// Package catalog enumerates every feature class of a workspace.
package catalog

import (
	"context"
	"fmt"

	"github.com/danieljhkim/sheetcheck/internal/geodb"
)

// Snapshot reads the whole catalog of ws: top-level feature classes, then
// each feature dataset with its nested feature classes, in the store's
// listing order.
func Snapshot(ctx context.Context, ws geodb.Workspace) (*geodb.Memory, error) {
	fcs, err := ws.ListFeatureClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feature classes: %w", err)
	}

	datasets, err := ws.ListDatasets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feature datasets: %w", err)
	}

	snap := &geodb.Memory{
		FeatureClasses: fcs,
		Datasets:       make([]geodb.Dataset, 0, len(datasets)),
	}
	for _, ds := range datasets {
		nested, err := ws.ListFeatureClassesIn(ctx, ds)
		if err != nil {
			return nil, fmt.Errorf("failed to list feature classes in %s: %w", ds, err)
		}
		snap.Datasets = append(snap.Datasets, geodb.Dataset{Name: ds, FeatureClasses: nested})
	}

	return snap, nil
}

// Enumerate returns every feature class identifier in ws. Nested feature
// classes are qualified as dataset/name.
func Enumerate(ctx context.Context, ws geodb.Workspace) ([]string, error) {
	snap, err := Snapshot(ctx, ws)
	if err != nil {
		return nil, err
	}
	return snap.Identifiers(), nil
}
