// File: timer.go
// Title: Operation Timer
// Description: Measures the duration of an operation and logs it with the
//              result when stopped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package log

import "time"

// Timer tracks the duration of a single operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	level     Level
	fields    Fields
	stopped   bool
}

// NewTimer starts a timer for operation, logging at debug level when stopped
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		level:     LevelDebug,
		fields:    Fields{"operation": operation},
	}
}

// WithLevel changes the level used when the timer is stopped
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs the completion and returns the elapsed duration.
// Stopping twice logs only once.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError logs the completion at error level when err is non-nil
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	elapsed := t.Elapsed()
	if t.stopped {
		return elapsed
	}
	t.stopped = true

	level := t.level
	message := t.operation + " completed"
	if err != nil {
		level = LevelError
		message = t.operation + " failed"
	}

	if !t.logger.IsLevelEnabled(level) {
		return elapsed
	}

	entry := NewEntry(level, message)
	entry.Logger = t.logger.name
	entry.CorrelationID = t.logger.correlationID
	entry.Fields = t.logger.contextFields.Merge(t.fields)
	entry.Duration = elapsed
	entry.Error = err
	t.logger.write(entry)

	return elapsed
}
