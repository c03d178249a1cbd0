// Package config loads TOML and YAML configuration into a tree addressed by
// dot paths such as "logging.level".
//
// Package: config
// Title: Configuration Loading
// Description: File loading with format detection, default values and
// environment overrides. A value is looked up in the
// environment first, then in the file, then in the defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("utf8x.toml", config.LoadOptions{
//		EnvPrefix: "UTF8X",
//		Defaults:  map[string]interface{}{"logging.level": "warn"},
//	})
//	if err != nil {
//		return err
//	}
//
//	level := cfg.GetString("logging.level") // UTF8X_LOGGING_LEVEL wins
package config
