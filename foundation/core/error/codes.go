// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures across the
//              utf8x packages (text operations, configuration, validation).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with core error codes

package error

import "strings"

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Text processing
	CodeConversionFailed      Code = "CONVERSION_FAILED"
	CodeEncodingError         Code = "ENCODING_ERROR"
	CodeUnsupportedForm       Code = "UNSUPPORTED_FORM"
	CodeCapabilityUnavailable Code = "CAPABILITY_UNAVAILABLE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeConversionFailed, CodeEncodingError, CodeUnsupportedForm, CodeCapabilityUnavailable,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConversionFailed, CodeEncodingError, CodeUnsupportedForm, CodeCapabilityUnavailable:
		return "text"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	}

	// module specific codes carry the module as prefix
	switch {
	case c == "UTF8X_NOT_FOUND":
		return "generic"
	case strings.HasPrefix(string(c), "UTF8X_"):
		return "text"
	case strings.HasPrefix(string(c), "CONFIG_"):
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for command line tools
func (c Code) ExitCode() int {
	switch c.Category() {
	case "text":
		return 3
	case "configuration":
		return 4
	case "validation":
		return 2
	default:
		if c == CodeNotFound || c == "UTF8X_NOT_FOUND" {
			return 1
		}
		return 5
	}
}
