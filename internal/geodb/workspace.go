// Package geodb reads the catalog of a geographic data store.
//
// A data store is opened into a Workspace value that is passed explicitly to
// every listing call; there is no process-wide "current workspace". Only the
// catalog is read (feature class and feature dataset names), never features.
//
// Supported stores:
//   - GeoPackage (*.gpkg): feature tables from gpkg_contents
//   - Catalog manifest (*.yaml, *.yml, *.json): see Memory
//   - Folder: *.shp files, with subdirectories acting as feature datasets
package geodb

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/sheetcheck/internal/fsops"
)

var (
	// ErrUnsupportedStore indicates a path whose store format cannot be read.
	ErrUnsupportedStore = errors.New("unsupported data store")

	// ErrStoreNotFound indicates the store path does not exist.
	ErrStoreNotFound = errors.New("data store not found")

	// ErrDatasetNotFound indicates a feature dataset that is not in the store.
	ErrDatasetNotFound = errors.New("feature dataset not found")
)

// Workspace lists the feature classes of one opened data store.
type Workspace interface {
	// ListFeatureClasses returns the top-level feature classes.
	ListFeatureClasses(ctx context.Context) ([]string, error)

	// ListDatasets returns the feature dataset containers.
	ListDatasets(ctx context.Context) ([]string, error)

	// ListFeatureClassesIn returns the feature classes inside a feature dataset.
	ListFeatureClassesIn(ctx context.Context, dataset string) ([]string, error)

	// Close releases any handle held on the store.
	Close() error
}

// Opener opens a data store at a path.
type Opener interface {
	Open(ctx context.Context, path string) (Workspace, error)
}

// FileOpener opens stores found on the local filesystem.
type FileOpener struct {
	fs fsops.FS
}

// NewFileOpener creates a FileOpener reading through fs.
func NewFileOpener(fs fsops.FS) *FileOpener {
	return &FileOpener{fs: fs}
}

// Open picks a backend from the path's extension or type.
func (o *FileOpener) Open(ctx context.Context, path string) (Workspace, error) {
	path = filepath.Clean(path)
	exists, err := o.fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check store %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gpkg":
		return OpenGeoPackage(ctx, path)
	case ".yaml", ".yml", ".json":
		return LoadManifest(o.fs, path)
	case ".gdb":
		return nil, fmt.Errorf("%w: %s is a file geodatabase; export it to GeoPackage first", ErrUnsupportedStore, path)
	}

	info, err := o.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat store %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStore, path)
	}
	return NewFolder(o.fs, path), nil
}
