// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent builder and constructors for module scoped errors, plus
//              helpers that read the module and operation back out of an
//              error for logging and CLI exit handling.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-15 v0.1.1: Added ConversionFailed and Unavailable constructors

package errors

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/utf8x/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  *mdwerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	code := eb.code
	if code == "" {
		code = getModuleErrorCode(eb.module, eb.operation)
	}

	message := eb.message
	if message == "" {
		if eb.operation != "" {
			message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	details := make(map[string]interface{}, len(eb.details)+2)
	for k, v := range eb.details {
		details[k] = v
	}
	details["module"] = eb.module
	if eb.operation != "" {
		details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, message)
	} else {
		err = mdwerror.New(message)
	}

	severity := getSeverityForCode(code)
	if eb.severity != nil {
		severity = *eb.severity
	}

	return err.
		WithCode(mdwerror.Code(code)).
		WithOperation(eb.operation).
		WithDetails(details).
		WithSeverity(severity)
}

// =============================================================================
// STANDARD ERROR CONSTRUCTORS
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Messagef("invalid format in %s", module).
		Code(getFormatErrorCode(module)).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value out of range in %s.%s", module, operation).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("item not found in %s.%s", module, operation).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// ConversionFailed creates an error for a codepoint/character conversion
// that has no result
func ConversionFailed(operation string, input interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleUtf8x).
		Operation(operation).
		Messagef("utf8x.%s: %s", operation, reason).
		Code(CodeUtf8xConversionFailed).
		Detail("input", input).
		Build()
}

// Unavailable creates an error for an operation whose capability is switched off
func Unavailable(operation, capability string) *mdwerror.Error {
	return NewErrorBuilder(ModuleUtf8x).
		Operation(operation).
		Messagef("utf8x.%s: %s support is not available", operation, capability).
		Code(CodeUtf8xCapabilityUnavailable).
		Detail("capability", capability).
		Build()
}

// =============================================================================
// ERROR ANALYSIS
// =============================================================================

// ExtractDetails extracts the details from the first structured error in the chain
func ExtractDetails(err error) map[string]interface{} {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
