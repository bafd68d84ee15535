// Package logging builds the file-backed zap logger. The terminal belongs to
// the TUI, so nothing is ever written to stdout or stderr.
package logging

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFileName is used when no explicit log path is configured.
const DefaultFileName = "wordrecog.log"

// PathFor returns the log path to use: explicit if set, otherwise a file
// next to the database.
func PathFor(explicit, dbPath string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(filepath.Dir(dbPath), DefaultFileName)
}

// New returns a JSON logger appending to path.
func New(path string, debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("wordrecog"), nil
}
