// File: standards.go
// Title: Error Standards for utf8x
// Description: Module identifiers, module specific error codes and the
//              mapping from operation names to codes shared by all utf8x
//              packages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation for error standardization

package errors

import (
	"strings"

	mdwerror "github.com/msto63/utf8x/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleUtf8x   = "utf8x"
	ModuleConfig  = "config"
	ModuleInspect = "inspect"
	ModuleCLI     = "cli"
)

// Standardized error codes
const (
	// Common error codes
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"

	// Module-specific error codes - utf8x
	CodeUtf8xNotFound              = "UTF8X_NOT_FOUND"
	CodeUtf8xConversionFailed      = "UTF8X_CONVERSION_FAILED"
	CodeUtf8xEncodingError         = "UTF8X_ENCODING_ERROR"
	CodeUtf8xUnsupportedForm       = "UTF8X_UNSUPPORTED_FORM"
	CodeUtf8xCapabilityUnavailable = "UTF8X_CAPABILITY_UNAVAILABLE"

	// Module-specific error codes - config
	CodeConfigNotFound     = "CONFIG_NOT_FOUND"
	CodeConfigParseFailed  = "CONFIG_PARSE_FAILED"
	CodeConfigInvalidValue = "CONFIG_INVALID_VALUE"
)

// getModuleErrorCode returns the error code for a module operation
func getModuleErrorCode(module, operation string) string {
	switch module {
	case ModuleUtf8x:
		return getUtf8xErrorCode(operation)
	case ModuleConfig:
		return getConfigErrorCode(operation)
	default:
		return CodeOperationFailed
	}
}

func getUtf8xErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "index"):
		return CodeUtf8xNotFound
	case strings.Contains(operation, "codepoint") || strings.Contains(operation, "char"):
		return CodeUtf8xConversionFailed
	case strings.Contains(operation, "normalize"):
		return CodeUtf8xUnsupportedForm
	case strings.Contains(operation, "encoding"):
		return CodeUtf8xEncodingError
	default:
		return CodeInvalidInput
	}
}

func getConfigErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "load") || strings.Contains(operation, "find"):
		return CodeConfigNotFound
	case strings.Contains(operation, "parse"):
		return CodeConfigParseFailed
	default:
		return CodeConfigInvalidValue
	}
}

func getFormatErrorCode(module string) string {
	switch module {
	case ModuleUtf8x:
		return CodeUtf8xEncodingError
	case ModuleConfig:
		return CodeConfigParseFailed
	default:
		return CodeInvalidFormat
	}
}

// getSeverityForCode picks the severity of module specific codes, falling
// back to the core mapping for generic ones
func getSeverityForCode(code string) mdwerror.Severity {
	switch code {
	case CodeUtf8xNotFound, CodeUtf8xConversionFailed, CodeUtf8xEncodingError, CodeInvalidInput:
		return mdwerror.SeverityLow
	case CodeUtf8xUnsupportedForm, CodeUtf8xCapabilityUnavailable:
		return mdwerror.SeverityMedium
	case CodeConfigNotFound, CodeConfigParseFailed, CodeConfigInvalidValue:
		return mdwerror.SeverityHigh
	default:
		return mdwerror.GetSeverityFromCode(mdwerror.Code(code))
	}
}
