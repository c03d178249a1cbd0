// Package log provides structured, leveled logging for the utf8x packages.
//
// Package: log
// Title: Structured Logging
// Description: A small structured logger with JSON, text and logfmt output,
// persistent context fields, correlation IDs and operation
// timers. Loggers are immutable; With* calls derive new ones.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Name:   "utf8x",
//	})
//
//	logger.Debug("code path selected", log.Fields{"ordinal": "fallback"})
//
//	timer := logger.StartTimer("normalize")
//	defer timer.Stop()
package log
