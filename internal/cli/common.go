package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/danieljhkim/sheetcheck/internal/config"
	"github.com/danieljhkim/sheetcheck/internal/engine"
	"github.com/danieljhkim/sheetcheck/internal/fsops"
	"github.com/danieljhkim/sheetcheck/internal/geodb"
	"github.com/danieljhkim/sheetcheck/internal/report"
)

// newLogger builds the stderr logger: warnings only unless verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// loadConfig returns the compiled-in config, or the --config file over it.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(fsops.NewRealFS(), configPath)
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(cfg *config.Config) (*engine.Engine, error) {
	types, err := cfg.Types()
	if err != nil {
		return nil, fmt.Errorf("invalid type map: %w", err)
	}

	fs := fsops.NewRealFS()
	log := logger
	if log == nil {
		log = zap.NewNop()
	}
	return engine.New(geodb.NewFileOpener(fs), types, fs, log), nil
}

// useColor reports whether output may carry ANSI colors.
func useColor() bool {
	return !noColor && !color.NoColor
}

// newReportWriter creates a report writer on the command's stdout.
func newReportWriter(out io.Writer) *report.Writer {
	return report.NewWriter(out, useColor())
}
