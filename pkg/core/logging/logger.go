// ============================================================================
// utf8x - UTF-8 Text Utility
// ============================================================================
//
// Package:     logging
// Description: Key-value logger used by the command layer
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package logging

import (
	mdwlog "github.com/msto63/utf8x/foundation/core/log"
)

// Logger wraps the Foundation logger with key-value pair methods
type Logger struct {
	*mdwlog.Logger
	name string
}

// Wrap returns a key-value logger writing through base
func Wrap(base *mdwlog.Logger, name string) *Logger {
	return &Logger{
		Logger: base.WithName(name),
		name:   name,
	}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// With returns a logger carrying the given key-value pairs on every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		Logger: l.Logger.WithFields(toFields(keysAndValues...)),
		name:   l.name,
	}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to mdwlog.Fields. Non-string keys and a
// trailing key without value are dropped.
func toFields(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
