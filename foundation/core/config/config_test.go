// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, dot-path lookups, defaults and
//              environment variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13

package config

import (
	"os"
	"path/filepath"
	"testing"

	mdwerrors "github.com/msto63/utf8x/foundation/core/errors"
)

const tomlContent = `
[capabilities]
normalization = false
ordinal_conversion = true

[logging]
level = "debug"
format = "text"

[output]
width = 80
`

const yamlContent = `
capabilities:
  normalization: true
  ordinal_conversion: false
logging:
  level: warn
output:
  width: 120
`

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		path := filepath.Join(tempDir, "utf8x.toml")
		if err := os.WriteFile(path, []byte(tomlContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if cfg.Format() != FormatTOML {
			t.Errorf("Format() = %v, want toml", cfg.Format())
		}
		if cfg.FilePath() != path {
			t.Errorf("FilePath() = %q", cfg.FilePath())
		}
		if cfg.GetBool("capabilities.normalization", true) {
			t.Error("capabilities.normalization should be false")
		}
		if !cfg.GetBool("capabilities.ordinal_conversion") {
			t.Error("capabilities.ordinal_conversion should be true")
		}
		if got := cfg.GetString("logging.level"); got != "debug" {
			t.Errorf("logging.level = %q", got)
		}
		if got := cfg.GetInt("output.width"); got != 80 {
			t.Errorf("output.width = %d", got)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		path := filepath.Join(tempDir, "utf8x.yaml")
		if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}
		if !cfg.GetBool("capabilities.normalization") {
			t.Error("capabilities.normalization should be true")
		}
		if cfg.GetBool("capabilities.ordinal_conversion", true) {
			t.Error("capabilities.ordinal_conversion should be false")
		}
		if got := cfg.GetString("logging.level"); got != "warn" {
			t.Errorf("logging.level = %q", got)
		}
		if got := cfg.GetInt("output.width"); got != 120 {
			t.Errorf("output.width = %d", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "absent.toml"))
		if err == nil {
			t.Fatal("expected an error for a missing file")
		}
		if !mdwerrors.IsModuleOperation(err, mdwerrors.ModuleConfig, "load") {
			t.Errorf("expected config.load error, got %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := Load("  "); err == nil {
			t.Fatal("expected an error for an empty path")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.toml")
		if err := os.WriteFile(path, []byte("[logging\nlevel ="), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if !mdwerrors.IsModuleOperation(err, mdwerrors.ModuleConfig, "parse") {
			t.Errorf("expected config.parse error, got %v", err)
		}
	})
}

func TestDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utf8x.toml")
	if err := os.WriteFile(path, []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"logging.level":   "info",
			"logging.name":    "utf8x",
			"general.verbose": true,
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetString("logging.level"); got != "debug" {
		t.Errorf("file value should win over default, got %q", got)
	}
	if got := cfg.GetString("logging.name"); got != "utf8x" {
		t.Errorf("default not applied, got %q", got)
	}
	if !cfg.GetBool("general.verbose") {
		t.Error("default for a missing section not applied")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	cfg = cfg.WithEnvPrefix("UTF8X_TEST")

	t.Setenv("UTF8X_TEST_LOGGING_LEVEL", "error")
	t.Setenv("UTF8X_TEST_CAPABILITIES_NORMALIZATION", "true")
	t.Setenv("UTF8X_TEST_OUTPUT_WIDTH", "42")

	if got := cfg.GetString("logging.level"); got != "error" {
		t.Errorf("logging.level = %q, want env override", got)
	}
	if !cfg.GetBool("capabilities.normalization") {
		t.Error("capabilities.normalization env override ignored")
	}
	if got := cfg.GetInt("output.width"); got != 42 {
		t.Errorf("output.width = %d, want 42", got)
	}
	if !cfg.Has("logging.level") {
		t.Error("Has(logging.level) = false")
	}

	t.Setenv("UTF8X_TEST_GENERAL_ONLY_ENV", "x")
	if !cfg.Has("general.only_env") {
		t.Error("Has should see env only keys")
	}
}

func TestSetAndHas(t *testing.T) {
	cfg := Empty("")

	if cfg.Has("output.width") {
		t.Error("empty config should have no keys")
	}

	cfg.Set("output.width", 64)
	if got := cfg.GetInt("output.width"); got != 64 {
		t.Errorf("GetInt() = %d, want 64", got)
	}
	if got := cfg.GetString("output.width"); got != "64" {
		t.Errorf("GetString() = %q, want 64", got)
	}
	if got := cfg.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("GetString() default = %q", got)
	}
}

func TestLoadFromStringYAMLEmpty(t *testing.T) {
	cfg, err := LoadFromString("", FormatYAML)
	if err != nil {
		t.Fatalf("empty YAML should parse: %v", err)
	}
	if cfg.Has("anything") {
		t.Error("empty YAML should have no keys")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"a.toml":    FormatTOML,
		"a.yaml":    FormatYAML,
		"a.YML":     FormatYAML,
		"a.conf":    FormatTOML,
		"noextfile": FormatTOML,
	}
	for path, want := range tests {
		if got := detectFormat(path); got != want {
			t.Errorf("detectFormat(%q) = %v, want %v", path, got, want)
		}
	}
}
