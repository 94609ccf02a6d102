package sheetname

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Name
		wantOK bool
	}{
		{
			name:   "raw layer",
			input:  "A_B_C_J1_S1_X_LRG",
			want:   Name{JL: "J1", Sheet: "S1", Type: "LRG"},
			wantOK: true,
		},
		{
			name:   "finished layer",
			input:  "A_B_C_J1_S1_X_LG",
			want:   Name{JL: "J1", Sheet: "S1", Type: "LG"},
			wantOK: true,
		},
		{
			name:   "extra fields use last as type",
			input:  "BAR_BAR_Wazirpur_J12_S07_X_Y_Z_MRG",
			want:   Name{JL: "J12", Sheet: "S07", Type: "MRG"},
			wantOK: true,
		},
		{
			name:   "empty fields are still fields",
			input:  "A_B_C___X_",
			want:   Name{JL: "", Sheet: "", Type: ""},
			wantOK: true,
		},
		{
			name:   "five fields",
			input:  "A_B_C_J1_LRG",
			wantOK: false,
		},
		{
			name:   "six fields",
			input:  "A_B_C_J1_S1_LRG",
			wantOK: false,
		},
		{
			name:   "empty name",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
