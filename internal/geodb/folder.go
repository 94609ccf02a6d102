package geodb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/sheetcheck/internal/fsops"
)

const shapefileExt = ".shp"

// Folder is a directory of shapefiles. Subdirectories act as feature datasets.
type Folder struct {
	fs   fsops.FS
	root string
}

// NewFolder creates a Folder workspace rooted at root.
func NewFolder(fs fsops.FS, root string) *Folder {
	return &Folder{fs: fs, root: root}
}

// ListFeatureClasses returns the shapefiles directly under the root, without extension.
func (f *Folder) ListFeatureClasses(ctx context.Context) ([]string, error) {
	return f.shapefiles(f.root)
}

// ListDatasets returns the subdirectories of the root.
func (f *Folder) ListDatasets(ctx context.Context) ([]string, error) {
	entries, err := f.fs.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", f.root, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// ListFeatureClassesIn returns the shapefiles inside one subdirectory.
func (f *Folder) ListFeatureClassesIn(ctx context.Context, dataset string) ([]string, error) {
	if err := f.fs.ValidateIdentifier(dataset); err != nil {
		return nil, fmt.Errorf("invalid dataset name: %w", err)
	}

	dir := filepath.Join(f.root, dataset)
	info, err := f.fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, dataset)
		}
		return nil, fmt.Errorf("failed to stat dataset %s: %w", dataset, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, dataset)
	}

	return f.shapefiles(dir)
}

// Close is a no-op.
func (f *Folder) Close() error {
	return nil
}

func (f *Folder) shapefiles(dir string) ([]string, error) {
	entries, err := f.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if strings.EqualFold(ext, shapefileExt) {
			names = append(names, strings.TrimSuffix(name, ext))
		}
	}
	return names, nil
}
