// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder, the standard constructors and the
//              module/operation extraction helpers.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-15

package errors

import (
	"errors"
	"fmt"
	"testing"

	mdwerror "github.com/msto63/utf8x/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
		if err.Operation() != "test_op" {
			t.Errorf("Expected Operation() 'test_op', got %q", err.Operation())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").Operation("test_op").Build()

		expected := "testmodule.test_op failed"
		if err.Error() != expected {
			t.Errorf("Expected message '%s', got '%s'", expected, err.Error())
		}
	})

	t.Run("auto-generated code", func(t *testing.T) {
		tests := []struct {
			module    string
			operation string
			want      string
		}{
			{ModuleUtf8x, "index_of_first", CodeUtf8xNotFound},
			{ModuleUtf8x, "codepoint_of", CodeUtf8xConversionFailed},
			{ModuleUtf8x, "char_of", CodeUtf8xConversionFailed},
			{ModuleUtf8x, "normalize", CodeUtf8xUnsupportedForm},
			{ModuleUtf8x, "substring", CodeInvalidInput},
			{ModuleConfig, "load", CodeConfigNotFound},
			{ModuleConfig, "parse", CodeConfigParseFailed},
			{ModuleConfig, "bind", CodeConfigInvalidValue},
			{"other", "whatever", CodeOperationFailed},
		}

		for _, tt := range tests {
			t.Run(tt.module+"."+tt.operation, func(t *testing.T) {
				err := NewErrorBuilder(tt.module).Operation(tt.operation).Build()
				if string(err.Code()) != tt.want {
					t.Errorf("Code() = %s, want %s", err.Code(), tt.want)
				}
			})
		}
	})
}

func TestConversionFailed(t *testing.T) {
	err := ConversionFailed("char_of", int64(0x110000), "codepoint cannot be encoded")

	if string(err.Code()) != CodeUtf8xConversionFailed {
		t.Errorf("Code() = %s", err.Code())
	}
	if err.Severity() != mdwerror.SeverityLow {
		t.Errorf("Severity() = %v, want low", err.Severity())
	}
	if !IsModuleOperation(err, ModuleUtf8x, "char_of") {
		t.Error("expected utf8x.char_of module operation")
	}
	if err.Details()["input"] != int64(0x110000) {
		t.Errorf("input detail = %v", err.Details()["input"])
	}
}

func TestUnavailable(t *testing.T) {
	err := Unavailable("normalize", "normalization")

	if string(err.Code()) != CodeUtf8xCapabilityUnavailable {
		t.Errorf("Code() = %s", err.Code())
	}
	if err.Severity() != mdwerror.SeverityMedium {
		t.Errorf("Severity() = %v, want medium", err.Severity())
	}
	if err.Error() != "utf8x.normalize: normalization support is not available" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestStandardConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *mdwerror.Error
		wantCode string
	}{
		{"invalid input", InvalidInput(ModuleUtf8x, "substring", -1, "start index"), CodeInvalidInput},
		{"invalid format", InvalidFormat(ModuleConfig, "x = ", "toml"), CodeConfigParseFailed},
		{"operation failed", OperationFailed(ModuleInspect, "render", errors.New("io")), CodeOperationFailed},
		{"out of range", OutOfRange(ModuleUtf8x, "char_of", int64(1)<<40, 0, 0x10FFFF), CodeOutOfRange},
		{"not found", NotFound(ModuleUtf8x, "index_of_last", "µ"), CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.err.Code()) != tt.wantCode {
				t.Errorf("Code() = %s, want %s", tt.err.Code(), tt.wantCode)
			}
			if ExtractModule(tt.err) == "" {
				t.Error("module detail missing")
			}
		})
	}
}

func TestExtractThroughWrapping(t *testing.T) {
	inner := ConversionFailed("codepoint_of", "", "empty input")
	outer := fmt.Errorf("cli ord: %w", inner)

	if got := ExtractModule(outer); got != ModuleUtf8x {
		t.Errorf("ExtractModule() = %q, want %q", got, ModuleUtf8x)
	}
	if got := ExtractOperation(outer); got != "codepoint_of" {
		t.Errorf("ExtractOperation() = %q", got)
	}
	if !IsModuleError(outer, ModuleUtf8x) {
		t.Error("IsModuleError() = false")
	}
	if ExtractModule(errors.New("plain")) != "" {
		t.Error("plain errors have no module")
	}
}
