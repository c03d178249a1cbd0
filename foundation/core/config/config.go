// File: config.go
// Title: Configuration Loading
// Description: Loads TOML and YAML configuration files into a dot-path
//              addressable tree, with environment variable overrides and
//              default values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerrors "github.com/msto63/utf8x/foundation/core/errors"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config is a parsed configuration tree with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, dot-path keys allowed
}

// Load loads configuration from a file with format auto-detection
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleConfig, "load", filePath, "config file path")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("load").
			Messagef("cannot read config file %s", filePath).
			Cause(err).
			Detail("path", filePath).
			Build()
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("parse").
			Messagef("cannot parse config file %s", filePath).
			Cause(err).
			Detail("path", filePath).
			Detail("format", format.String()).
			Build()
	}

	cfg := &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}
	cfg.applyDefaults(options.Defaults)

	return cfg, nil
}

// LoadFromString parses configuration content held in memory
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("parse").
			Message("cannot parse config content").
			Cause(err).
			Detail("format", format.String()).
			Build()
	}

	return &Config{data: data, format: format}, nil
}

// Empty returns a configuration with no values, useful when no file exists
func Empty(envPrefix string) *Config {
	return &Config{data: make(map[string]interface{}), format: FormatTOML, envPrefix: envPrefix}
}

// WithEnvPrefix returns a copy of the configuration reading env overrides
// with the given prefix
func (c *Config) WithEnvPrefix(prefix string) *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return &Config{
		data:      deepCopyMap(c.data),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: prefix,
	}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
		if data == nil {
			data = make(map[string]interface{})
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return data, nil
}

func (c *Config) applyDefaults(defaults map[string]interface{}) {
	for key, value := range defaults {
		if c.getValue(key) == nil {
			c.setValue(key, value)
		}
	}
}

// GetString returns a string value, environment first, then file, then default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		return envValue
	}

	switch v := c.getValue(key).(type) {
	case string:
		return v
	case nil:
	default:
		return fmt.Sprintf("%v", v)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetBool returns a boolean value, environment first, then file, then default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		if b, err := strconv.ParseBool(envValue); err == nil {
			return b
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetInt returns an integer value, environment first, then file, then default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		if i, err := strconv.Atoi(envValue); err == nil {
			return i
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// Has checks if a configuration key exists in the file or the environment
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.getEnvValue(key); ok {
		return true
	}
	return c.getValue(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setValue(key, value)
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the format of the loaded configuration
func (c *Config) Format() Format {
	return c.format
}

// getValue resolves a dot-path key such as "logging.level"
func (c *Config) getValue(key string) interface{} {
	current := c.data
	keys := strings.Split(key, ".")

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func (c *Config) setValue(key string, value interface{}) {
	current := c.data
	keys := strings.Split(key, ".")

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// getEnvValue looks up the environment override for key
func (c *Config) getEnvValue(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	value, ok := os.LookupEnv(c.formatEnvKey(key))
	return value, ok
}

// formatEnvKey converts logging.level with prefix UTF8X to UTF8X_LOGGING_LEVEL
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return strings.ToUpper(c.envPrefix) + "_" + envKey
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		if m, ok := v.(map[string]interface{}); ok {
			dst[k] = deepCopyMap(m)
		} else {
			dst[k] = v
		}
	}
	return dst
}
