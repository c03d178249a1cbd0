// Package error provides structured error handling for the utf8x packages.
//
// Package: error
// Title: Structured Errors for utf8x
// Description: Errors carry a Code, a Severity, details and the operation that
// produced them. They wrap causes, support errors.Is matching by
// code, and marshal to JSON for the structured logger.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Code based sentinel matching
//
// Usage:
//
//	import mdwerror "github.com/msto63/utf8x/foundation/core/error"
//
//	err := mdwerror.New("codepoint cannot be encoded").
//		WithCode(mdwerror.CodeConversionFailed).
//		WithDetail("codepoint", 0x110000)
//
//	if mdwerror.HasCode(err, mdwerror.CodeConversionFailed) {
//		// handle conversion failure
//	}
//
// The package is named error to match the foundation layout; import it under
// an alias (conventionally mdwerror) to avoid shadowing the builtin.
package error
