// Package logging builds the zap logger shared by launchweek components.
//
// The dashboard owns the terminal, so logs never go to stdout or stderr:
// without a configured log file the logger discards everything.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/launchweek/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger for cfg and a function that flushes it.
func New(cfg config.Config) (*zap.Logger, func(), error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), func() {}, nil
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	if dir := filepath.Dir(cfg.LogFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: ensure log dir: %w", err)
		}
	}

	var zc zap.Config
	if cfg.IsDevelopment() {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}

	logger, err := zc.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("logging: build logger: %w", err)
	}
	logger = logger.With(zap.String("app", "launchweek"))

	return logger, func() { _ = logger.Sync() }, nil
}
