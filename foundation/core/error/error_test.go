// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, code based matching,
//              severity defaults and JSON output.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation
// - 2026-10-16 v0.2.0: Tests for Is and HasCode through wrapped chains

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original"),
			message:  "wrapper",
			wantMsg:  "wrapper: original",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("original").WithCode(CodeConversionFailed),
			message:  "wrapper",
			wantMsg:  "wrapper: original",
			wantCode: CodeConversionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("wrapped error should match its cause")
			}
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New("conversion failed").WithCode(CodeConversionFailed)
	other := New("something else").WithCode(CodeNotFound)

	err := New("codepoint out of range").WithCode(CodeConversionFailed)
	if !errors.Is(err, sentinel) {
		t.Error("errors with the same code should match")
	}
	if errors.Is(err, other) {
		t.Error("errors with different codes should not match")
	}

	chained := fmt.Errorf("cli: %w", Wrap(err, "chr"))
	if !errors.Is(chained, sentinel) {
		t.Error("match should survive fmt.Errorf wrapping")
	}

	if errors.Is(New("a"), New("b")) {
		t.Error("CodeUnknown errors should never match each other")
	}
}

func TestHasCode(t *testing.T) {
	inner := New("inner").WithCode(CodeInvalidConfig)
	outer := fmt.Errorf("load: %w", inner)

	if !HasCode(outer, CodeInvalidConfig) {
		t.Error("HasCode should find the code through the chain")
	}
	if HasCode(outer, CodeNotFound) {
		t.Error("HasCode reported a code that is not in the chain")
	}
	if HasCode(nil, CodeNotFound) {
		t.Error("HasCode(nil) should be false")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "outer")

	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}

	single := New("alone")
	if single.RootCause() != single {
		t.Error("RootCause() of an unwrapped error should be itself")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeConversionFailed, SeverityLow},
		{CodeInvalidConfig, SeverityHigh},
		{CodeCapabilityUnavailable, SeverityMedium},
		{CodeInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityHigh).WithCode(CodeNotFound)
	if explicit.Severity() != SeverityHigh {
		t.Error("explicit severity should not be overridden by WithCode")
	}
}

func TestCodeCategoryAndExitCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeConversionFailed, "text", 3},
		{CodeMissingConfig, "configuration", 4},
		{CodeValueOutOfRange, "validation", 2},
		{CodeNotFound, "generic", 1},
		{CodeInternal, "generic", 5},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if !tt.code.IsValid() {
				t.Errorf("%s should be a valid code", tt.code)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}

	modules := []struct {
		code     Code
		category string
		exit     int
	}{
		{"UTF8X_CONVERSION_FAILED", "text", 3},
		{"UTF8X_NOT_FOUND", "generic", 1},
		{"CONFIG_PARSE_FAILED", "configuration", 4},
	}
	for _, tt := range modules {
		if got := tt.code.Category(); got != tt.category {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.category)
		}
		if got := tt.code.ExitCode(); got != tt.exit {
			t.Errorf("%s.ExitCode() = %d, want %d", tt.code, got, tt.exit)
		}
	}

	if Code("BOGUS").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "chr failed").
		WithCode(CodeConversionFailed).
		WithOperation("chr").
		WithDetail("codepoint", 1114112)

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != string(CodeConversionFailed) {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "chr" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
}

func TestString(t *testing.T) {
	err := New("bad").WithCode(CodeInvalidInput).WithOperation("substr").WithDetail("start", 3)
	s := err.String()

	for _, want := range []string{"Error: bad", "Code: INVALID_INPUT", "Operation: substr", "start=3"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}
