// ============================================================================
// utf8x - UTF-8 Text Utility
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating configured loggers
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"
	mdwlog "github.com/msto63/utf8x/foundation/core/log"
	"github.com/msto63/utf8x/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Name of the logger
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "json", "text" or "logfmt" (default: text)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// CorrelationID tags every entry; a random one is generated when empty
	CorrelationID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a Foundation logger. Unknown levels fall back to info
// and unknown formats to text.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.LevelInfo
	}

	format := mdwlog.FormatText
	if cfg.Format != "" {
		if f, err := mdwlog.ParseFormat(cfg.Format); err == nil {
			format = f
		}
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	id := cfg.CorrelationID
	if id == "" {
		id = uuid.NewString()
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}).WithCorrelationID(id)
}

// FromConfig creates a logger from the logging section of cfg
func FromConfig(cfg *config.Config, output io.Writer) *mdwlog.Logger {
	return NewLogger(LoggerConfig{
		Name:   cfg.Logging.Name,
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: output,
	})
}
