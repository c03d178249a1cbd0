// Package errors provides the standard way for utf8x packages to build errors.
//
// Package: errors
// Title: Module Scoped Error Construction
// Description: Builds structured errors (see foundation/core/error) tagged with
// the module and operation that produced them, using module
// specific codes such as UTF8X_CONVERSION_FAILED.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: ConversionFailed and Unavailable constructors
//
// Usage:
//
//	err := errors.ConversionFailed("char_of", cp, "codepoint cannot be encoded")
//	errors.IsModuleOperation(err, errors.ModuleUtf8x, "char_of") // true
//
//	err = errors.NewErrorBuilder(errors.ModuleConfig).
//		Operation("parse").
//		Cause(parseErr).
//		Detail("path", path).
//		Build()
package errors
