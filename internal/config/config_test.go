package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danieljhkim/sheetcheck/internal/fsops"
	"github.com/danieljhkim/sheetcheck/internal/typemap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheetcheck.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.RawGeo != DefaultRawGeo || cfg.Geo != DefaultGeo {
		t.Errorf("unexpected default paths: %q, %q", cfg.RawGeo, cfg.Geo)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	// Mutating the returned table must not touch the package default
	cfg.TypeMap[0].Raw = "XXX"
	if typemap.DefaultPairs[0].Raw != "LRG" {
		t.Error("Default() shares its type table with typemap.DefaultPairs")
	}
}

func TestLoad(t *testing.T) {
	fs := fsops.NewRealFS()

	t.Run("overrides paths and keeps default types", func(t *testing.T) {
		path := writeConfig(t, "rawgeo: /data/raw.gpkg\ngeo: /data/geo.gpkg\n")

		cfg, err := Load(fs, path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.RawGeo != "/data/raw.gpkg" || cfg.Geo != "/data/geo.gpkg" {
			t.Errorf("paths not loaded: %+v", cfg)
		}
		if diff := cmp.Diff(typemap.DefaultPairs, cfg.TypeMap); diff != "" {
			t.Errorf("TypeMap mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("replaces the type table", func(t *testing.T) {
		path := writeConfig(t, "type_map:\n  - {raw: ARG, finished: AG}\n")

		cfg, err := Load(fs, path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		want := []typemap.Pair{{Raw: "ARG", Finished: "AG"}}
		if diff := cmp.Diff(want, cfg.TypeMap); diff != "" {
			t.Errorf("TypeMap mismatch (-want +got):\n%s", diff)
		}
		if cfg.RawGeo != DefaultRawGeo {
			t.Errorf("RawGeo should keep its default, got %q", cfg.RawGeo)
		}
	})

	t.Run("rejects a table that is not one-to-one", func(t *testing.T) {
		path := writeConfig(t, "type_map:\n  - {raw: LRG, finished: LG}\n  - {raw: MRG, finished: LG}\n")

		_, err := Load(fs, path)
		if !errors.Is(err, typemap.ErrInconsistent) {
			t.Errorf("expected ErrInconsistent, got %v", err)
		}
	})

	t.Run("rejects an empty path", func(t *testing.T) {
		path := writeConfig(t, "geo: \"\"\n")
		if _, err := Load(fs, path); err == nil {
			t.Error("expected error for empty geo path")
		}
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "rawgeo: [unterminated\n")
		if _, err := Load(fs, path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(fs, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
