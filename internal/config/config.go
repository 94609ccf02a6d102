// Package config holds the sheetcheck run configuration.
//
// The defaults are compiled in: the two data stores of the Wazirpur job and
// the standard RawGeo/Geo type table. A YAML file may override any of them:
//
//	rawgeo: D:/GIS_work/BAR_BAR_Wazirpur_RawGeo.gpkg
//	geo: D:/GIS_work/BAR_BAR_Wazirpur_Geo.gpkg
//	type_map:
//	  - {raw: LRG, finished: LG}
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/sheetcheck/internal/fsops"
	"github.com/danieljhkim/sheetcheck/internal/typemap"
)

const (
	// DefaultRawGeo is the RawGeo store checked when none is given.
	DefaultRawGeo = `D:\GIS_work\BAR_BAR_Wazirpur_RawGeo.gpkg`

	// DefaultGeo is the Geo store checked when none is given.
	DefaultGeo = `D:\GIS_work\BAR_BAR_Wazirpur_Geo.gpkg`
)

// Config is the resolved configuration of a run.
type Config struct {
	// RawGeo is the path of the raw data store
	RawGeo string `yaml:"rawgeo"`

	// Geo is the path of the finished data store
	Geo string `yaml:"geo"`

	// TypeMap pairs raw layer codes with finished ones
	TypeMap []typemap.Pair `yaml:"type_map"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		RawGeo:  DefaultRawGeo,
		Geo:     DefaultGeo,
		TypeMap: append([]typemap.Pair(nil), typemap.DefaultPairs...),
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(fs fsops.FS, path string) (*Config, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the store paths and the type table.
func (c *Config) Validate() error {
	if c.RawGeo == "" {
		return fmt.Errorf("invalid config: rawgeo path is empty")
	}
	if c.Geo == "" {
		return fmt.Errorf("invalid config: geo path is empty")
	}
	if _, err := c.Types(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Types builds the validated type map.
func (c *Config) Types() (*typemap.Map, error) {
	return typemap.New(c.TypeMap)
}
