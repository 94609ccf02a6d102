package geodb

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// GeoPackage is an OGC GeoPackage opened read-only.
//
// GeoPackage has no feature datasets, so ListDatasets is always empty.
type GeoPackage struct {
	db   *sqlx.DB
	path string
}

// OpenGeoPackage opens the file at path without creating it.
func OpenGeoPackage(ctx context.Context, path string) (*GeoPackage, error) {
	dsn, err := readOnlyURI(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open geopackage %s: %w", path, err)
	}
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open geopackage %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open geopackage %s: %w", path, err)
	}
	return &GeoPackage{db: db, path: path}, nil
}

// ListFeatureClasses returns the feature tables registered in gpkg_contents.
func (g *GeoPackage) ListFeatureClasses(ctx context.Context) ([]string, error) {
	var names []string
	err := g.db.SelectContext(ctx, &names,
		`SELECT table_name FROM gpkg_contents WHERE data_type = 'features' ORDER BY table_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list feature tables in %s: %w", g.path, err)
	}
	return names, nil
}

// ListDatasets returns no datasets.
func (g *GeoPackage) ListDatasets(ctx context.Context) ([]string, error) {
	return nil, nil
}

// ListFeatureClassesIn always fails; there are no datasets to look in.
func (g *GeoPackage) ListFeatureClassesIn(ctx context.Context, dataset string) ([]string, error) {
	return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, dataset)
}

// Close closes the database handle.
func (g *GeoPackage) Close() error {
	return g.db.Close()
}

// readOnlyURI turns a filesystem path into a SQLite "file:" URI with
// mode=ro. The path is escaped so '#', '?' and '%' stay part of the name.
func readOnlyURI(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		// D:/GIS_work/x.gpkg -> file:///D:/GIS_work/x.gpkg
		p = "/" + p
	}
	u := &url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String(), nil
}
