// ============================================================================
// utf8x - UTF-8 Text Utility
// ============================================================================
//
// Package:     config
// Description: Typed application configuration for the utf8x command
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"

	fconfig "github.com/msto63/utf8x/foundation/core/config"
	mdwerrors "github.com/msto63/utf8x/foundation/core/errors"
	"github.com/msto63/utf8x/foundation/core/validation"
	"github.com/msto63/utf8x/foundation/utils/utf8x"
)

// EnvPrefix is the prefix of environment overrides, e.g. UTF8X_LOGGING_LEVEL
const EnvPrefix = "UTF8X"

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "UTF8X_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General      GeneralConfig      `toml:"general" yaml:"general"`
	Capabilities CapabilitiesConfig `toml:"capabilities" yaml:"capabilities"`
	Logging      LoggingConfig      `toml:"logging" yaml:"logging"`
	Output       OutputConfig       `toml:"output" yaml:"output"`

	// Path is the file the configuration was loaded from, empty for defaults
	Path string `toml:"-" yaml:"-"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
}

// CapabilitiesConfig switches code paths off. A capability is used only
// when it is enabled here and reported by utf8x.Probe.
type CapabilitiesConfig struct {
	Normalization     bool `toml:"normalization" yaml:"normalization"`
	OrdinalConversion bool `toml:"ordinal_conversion" yaml:"ordinal_conversion"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	Name   string `toml:"name" yaml:"name"`
}

// OutputConfig holds settings for command output
type OutputConfig struct {
	// Format is "text" or "json"
	Format string `toml:"format" yaml:"format"`

	// Color enables styled terminal output
	Color bool `toml:"color" yaml:"color"`

	// MaxRows limits the rows of the inspect table, 0 shows all
	MaxRows int `toml:"max_rows" yaml:"max_rows"`
}

// defaultValues returns the defaults as dot-path keys
func defaultValues() map[string]interface{} {
	return map[string]interface{}{
		"general.name":                    "utf8x",
		"general.environment":             "development",
		"capabilities.normalization":      true,
		"capabilities.ordinal_conversion": true,
		"logging.level":                   "warn",
		"logging.format":                  "text",
		"logging.name":                    "utf8x",
		"output.format":                   "text",
		"output.color":                    true,
		"output.max_rows":                 0,
	}
}

// Default returns the default configuration with environment overrides
func Default() *Config {
	src := fconfig.Empty(EnvPrefix)
	for k, v := range defaultValues() {
		src.Set(k, v)
	}
	return fromSource(src, "")
}

// Load loads configuration from a TOML or YAML file. Missing keys take
// their defaults and UTF8X_* environment variables override file values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	src, err := fconfig.LoadWithOptions(path, fconfig.LoadOptions{
		Format:    fconfig.FormatAuto,
		EnvPrefix: EnvPrefix,
		Defaults:  defaultValues(),
	})
	if err != nil {
		return nil, err
	}

	cfg := fromSource(src, path)
	if err := cfg.Validate(); err != nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("validate").
			Messagef("invalid configuration in %s", path).
			Cause(err).
			Detail("path", path).
			Build()
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by UTF8X_CONFIG, or the first file found
// in the default locations. Without a file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}
	if path := FindConfigFile(); path != "" {
		return Load(path)
	}
	return Default(), nil
}

// FindConfigFile returns the first existing file of the default locations
func FindConfigFile() string {
	candidates := []string{
		"./utf8x.toml",
		"./utf8x.yaml",
		"./configs/utf8x.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "utf8x", "config.toml"),
			filepath.Join(home, ".config", "utf8x", "config.yaml"),
		)
	}

	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func fromSource(src *fconfig.Config, path string) *Config {
	return &Config{
		General: GeneralConfig{
			Name:        src.GetString("general.name"),
			Environment: src.GetString("general.environment"),
		},
		Capabilities: CapabilitiesConfig{
			Normalization:     src.GetBool("capabilities.normalization"),
			OrdinalConversion: src.GetBool("capabilities.ordinal_conversion"),
		},
		Logging: LoggingConfig{
			Level:  src.GetString("logging.level"),
			Format: src.GetString("logging.format"),
			Name:   src.GetString("logging.name"),
		},
		Output: OutputConfig{
			Format:  src.GetString("output.format"),
			Color:   src.GetBool("output.color"),
			MaxRows: src.GetInt("output.max_rows"),
		},
		Path: path,
	}
}

// Validate checks enumerated and numeric values
func (c *Config) Validate() error {
	return validation.NewSet().
		Check(validation.NewChain("logging.level").
			Add(validation.Required, validation.OneOf("trace", "debug", "info", "warn", "warning", "error", "fatal")), c.Logging.Level).
		Check(validation.NewChain("logging.format").
			Add(validation.OneOf("json", "text", "logfmt")), c.Logging.Format).
		Check(validation.NewChain("output.format").
			Add(validation.OneOf("text", "json")), c.Output.Format).
		Check(validation.NewChain("output.max_rows").
			Add(validation.IntRange(0, 1<<20)), c.Output.MaxRows).
		Validate().
		ToError()
}

// EffectiveCapabilities returns the probed capabilities restricted by the
// configuration
func (c *Config) EffectiveCapabilities() utf8x.Capabilities {
	probed := utf8x.Probe()
	return utf8x.Capabilities{
		Normalization:     probed.Normalization && c.Capabilities.Normalization,
		OrdinalConversion: probed.OrdinalConversion && c.Capabilities.OrdinalConversion,
	}
}
