package cli

import (
	"bytes"
	"strings"
	"testing"
)

// resetFlags restores global flag values between command executions.
func resetFlags() {
	jsonOutput = false
	configPath = ""
	verbose = false
	noColor = false
	failOnMismatch = false
	inventoryOutput = ""
}

// execute runs the root command with args and returns stdout, uncolored.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var bufOut, bufErr bytes.Buffer
	rootCmd.SetArgs(append(args, "--no-color"))
	rootCmd.SetOut(&bufOut)
	rootCmd.SetErr(&bufErr)

	err := rootCmd.Execute()
	return bufOut.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	output, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output == "" {
		t.Fatal("expected help output, got empty string")
	}
	for _, want := range []string{"sheetcheck", "Analysis:", "check", "inventory", "types"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected help to contain %q", want)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")
	// Cobra uses --version flag, not a version subcommand
	output, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(output, "1.2.3") {
		t.Errorf("expected version output to contain version, got %q", output)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	if _, err := execute(t, "invalid-command"); err == nil {
		t.Error("expected error for invalid command")
	}
}

func TestSetVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"normal version", "1.2.3"},
		{"empty version", ""}, // Should not change if empty
		{"dev version", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := rootCmd.Version
			SetVersion(tt.version)
			want := tt.version
			if want == "" {
				want = before
			}
			if rootCmd.Version != want {
				t.Errorf("SetVersion(%q) = %q, want %q", tt.version, rootCmd.Version, want)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	for _, name := range []string{"check", "inventory", "types", "version"} {
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := rootCmd.Find([]string{name})
			if err != nil {
				t.Errorf("Find(%q) error = %v", name, err)
			}
			if subCmd == nil || subCmd.Name() != name {
				t.Errorf("Find(%q) returned %v", name, subCmd)
			}
		})
	}
}

func TestHelpCommand_Subcommand(t *testing.T) {
	output, err := execute(t, "help", "check")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(output, "Compare the layer feature classes") {
		t.Errorf("expected check's help, got %q", output)
	}
	if strings.Contains(output, "Analysis:") {
		t.Error("help check should not print the root command list")
	}
}

func TestHelpCommand_ListedUnderTooling(t *testing.T) {
	output, err := execute(t, "help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	start := strings.Index(output, "CLI & Tooling:")
	end := strings.Index(output, "Flags:")
	if start < 0 || end < start {
		t.Fatalf("expected a CLI & Tooling group before Flags, got %q", output)
	}
	tooling := output[start:end]
	for _, want := range []string{"  help ", "  completion ", "  version "} {
		if !strings.Contains(tooling, want) {
			t.Errorf("expected %q under CLI & Tooling, got %q", want, tooling)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	output, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(output, "sheetcheck") {
		t.Errorf("expected a bash completion script for sheetcheck, got %d bytes", len(output))
	}
}

func TestPrintCount(t *testing.T) {
	if got := PrintCount(1, "finding", "findings"); got != "1 finding" {
		t.Errorf("PrintCount(1) = %q", got)
	}
	if got := PrintCount(3, "finding", "findings"); got != "3 findings" {
		t.Errorf("PrintCount(3) = %q", got)
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"RawGeo", "Geo"}, [][]string{{"LRG", "LG"}})
	out := buf.String()
	if !strings.Contains(out, "------") || !strings.Contains(out, "LRG") {
		t.Errorf("unexpected table output: %q", out)
	}

	buf.Reset()
	PrintTable(&buf, []string{"RawGeo"}, nil)
	if buf.Len() != 0 {
		t.Errorf("empty rows should print nothing, got %q", buf.String())
	}
}
