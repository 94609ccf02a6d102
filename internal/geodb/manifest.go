package geodb

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/sheetcheck/internal/fsops"
)

// LoadManifest reads a YAML (or JSON) catalog manifest into a Memory workspace.
func LoadManifest(fs fsops.FS, path string) (*Memory, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Memory
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	seen := make(map[string]bool, len(m.Datasets))
	for _, ds := range m.Datasets {
		if err := fs.ValidateIdentifier(ds.Name); err != nil {
			return nil, fmt.Errorf("invalid dataset name in %s: %w", path, err)
		}
		if seen[ds.Name] {
			return nil, fmt.Errorf("duplicate dataset %q in %s", ds.Name, path)
		}
		seen[ds.Name] = true
	}

	return &m, nil
}

// MarshalManifest encodes a catalog as a YAML manifest.
func MarshalManifest(m *Memory) ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return data, nil
}
