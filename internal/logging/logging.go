// Package logging builds the zap loggers used across leadcrm.
// Logs go to a file under ~/.leadcrm/logs/ so they never corrupt the
// terminal UI; --verbose additionally mirrors them to stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"leadcrm/internal/config"
)

// Build constructs the root logger from config. verbose forces debug
// level and adds a stderr sink.
func Build(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	level := parseLevel(cfg.Level)
	if verbose {
		level = zapcore.DebugLevel
	}

	file := cfg.File
	if file == "" {
		logsDir := filepath.Join(config.DefaultDir(), "logs")
		if err := os.MkdirAll(logsDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
		date := time.Now().Format("2006-01-02")
		file = filepath.Join(logsDir, fmt.Sprintf("leadcrm_%s.log", date))
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{file}
	zc.ErrorOutputPaths = []string{file}
	if verbose {
		zc.OutputPaths = append(zc.OutputPaths, "stderr")
		zc.ErrorOutputPaths = append(zc.ErrorOutputPaths, "stderr")
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
