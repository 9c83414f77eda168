// Package logging builds the zap loggers used across geminichat.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelOff disables logging entirely
const LevelOff = "off"

// Options configures a logger
type Options struct {
	Level  string // debug, info, warn, error or off; unknown values mean info
	Format string // console or json
	// Outputs are file paths or the zap sinks "stdout" and "stderr"
	Outputs []string
}

// New builds a logger from opts. With no outputs or level off it returns a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	if strings.EqualFold(opts.Level, LevelOff) || len(opts.Outputs) == 0 {
		return zap.NewNop(), nil
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(strings.ToLower(opts.Level))); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	var cfg zap.Config
	if opts.Format == "json" {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.DisableStacktrace = true
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = level
	cfg.OutputPaths = opts.Outputs
	cfg.ErrorOutputPaths = []string{"stderr"}

	for _, out := range opts.Outputs {
		if isStdSink(out) {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func isStdSink(out string) bool {
	return out == "stdout" || out == "stderr"
}
