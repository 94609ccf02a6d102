package geodb

import (
	"context"
	"fmt"
	"path"
)

// Dataset is a feature dataset and the feature classes nested in it.
type Dataset struct {
	Name           string   `yaml:"name" json:"name"`
	FeatureClasses []string `yaml:"feature_classes" json:"feature_classes"`
}

// Memory is a catalog held in memory. It doubles as the manifest format:
//
//	source: D:/GIS_work/Wazirpur_RawGeo.gdb
//	feature_classes:
//	  - BAR_BAR_Wazirpur_J1_S1_X_LRG
//	datasets:
//	  - name: Survey
//	    feature_classes:
//	      - BAR_BAR_Wazirpur_J1_S2_X_MRG
type Memory struct {
	Source         string    `yaml:"source,omitempty" json:"source,omitempty"`
	FeatureClasses []string  `yaml:"feature_classes" json:"feature_classes"`
	Datasets       []Dataset `yaml:"datasets,omitempty" json:"datasets,omitempty"`
}

// ListFeatureClasses returns the top-level feature classes.
func (m *Memory) ListFeatureClasses(ctx context.Context) ([]string, error) {
	return append([]string(nil), m.FeatureClasses...), nil
}

// ListDatasets returns the dataset names in manifest order.
func (m *Memory) ListDatasets(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(m.Datasets))
	for _, ds := range m.Datasets {
		names = append(names, ds.Name)
	}
	return names, nil
}

// ListFeatureClassesIn returns the feature classes of the named dataset.
func (m *Memory) ListFeatureClassesIn(ctx context.Context, dataset string) ([]string, error) {
	for _, ds := range m.Datasets {
		if ds.Name == dataset {
			return append([]string(nil), ds.FeatureClasses...), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, dataset)
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}

// Identifiers flattens the catalog: top-level names first, then each
// dataset's names qualified as dataset/name.
func (m *Memory) Identifiers() []string {
	ids := append([]string(nil), m.FeatureClasses...)
	for _, ds := range m.Datasets {
		for _, fc := range ds.FeatureClasses {
			ids = append(ids, path.Join(ds.Name, fc))
		}
	}
	return ids
}
