// Package sheetname parses sheet-based feature class names.
//
// A name is a run of underscore-separated fields, for example
// BAR_BAR_Wazirpur_J1_S1_X_LRG. Field 3 is the job location, field 4 the
// map sheet and the last field the layer-type code.
package sheetname

import "strings"

// MinFields is the fewest fields a parseable name may have.
const MinFields = 7

// Name is a parsed feature class name.
type Name struct {
	JL    string
	Sheet string
	Type  string
}

// Parse splits name on underscores. It reports false for names with fewer
// than MinFields fields.
func Parse(name string) (Name, bool) {
	parts := strings.Split(name, "_")
	if len(parts) < MinFields {
		return Name{}, false
	}
	return Name{
		JL:    parts[3],
		Sheet: parts[4],
		Type:  parts[len(parts)-1],
	}, true
}
