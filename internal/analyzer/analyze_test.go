package analyzer

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"github.com/danieljhkim/sheetcheck/internal/geodb"
	"github.com/danieljhkim/sheetcheck/internal/typemap"
)

func TestAnalyze(t *testing.T) {
	ws := &geodb.Memory{
		FeatureClasses: []string{
			"A_B_C_J1_S1_X_LRG",
			"A_B_C_J1_S1_X_MRG",
			"A_B_C_J1_LRG",      // five fields
			"A_B_C_J2_S1_X_LG",  // finished code on the raw side
			"A_B_C_J1_S1_X_LRG", // duplicate
		},
		Datasets: []geodb.Dataset{
			{Name: "Survey", FeatureClasses: []string{"A_B_C_J0_S9_X_SRG"}},
		},
	}

	tally, err := Analyze(context.Background(), ws, typemap.Default().RawSet(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	wantCounts := map[string]int{"LRG": 2, "MRG": 1, "SRG": 1}
	if diff := cmp.Diff(wantCounts, tally.Counts); diff != "" {
		t.Errorf("Counts mismatch (-want +got):\n%s", diff)
	}

	wantSheets := map[SheetKey][]string{
		{JL: "J1", Sheet: "S1"}: {"LRG", "MRG", "LRG"},
		{JL: "J0", Sheet: "S9"}: {"SRG"},
	}
	if diff := cmp.Diff(wantSheets, tally.Sheets); diff != "" {
		t.Errorf("Sheets mismatch (-want +got):\n%s", diff)
	}

	wantSkipped := map[string]string{
		"A_B_C_J1_LRG":     SkipUnparseable,
		"A_B_C_J2_S1_X_LG": SkipUnmappedType,
	}
	if diff := cmp.Diff(wantSkipped, tally.Skipped); diff != "" {
		t.Errorf("Skipped mismatch (-want +got):\n%s", diff)
	}

	wantKeys := []SheetKey{{JL: "J0", Sheet: "S9"}, {JL: "J1", Sheet: "S1"}}
	if diff := cmp.Diff(wantKeys, tally.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}

func TestSheetKey_Less(t *testing.T) {
	tests := []struct {
		a, b SheetKey
		want bool
	}{
		{SheetKey{"J1", "S1"}, SheetKey{"J1", "S2"}, true},
		{SheetKey{"J1", "S2"}, SheetKey{"J1", "S1"}, false},
		{SheetKey{"J1", "S9"}, SheetKey{"J2", "S1"}, true},
		{SheetKey{"J10", "S1"}, SheetKey{"J2", "S1"}, true},
		{SheetKey{"J1", "S1"}, SheetKey{"J1", "S1"}, false},
	}

	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
