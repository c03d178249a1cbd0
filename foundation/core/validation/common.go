// File: common.go
// Title: Common Validators
// Description: Reusable validators for required values, enumerations and
//              integer ranges.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package validation

import (
	"fmt"
	"strings"
)

// Required fails for nil values and blank strings
var Required = ValidatorFunc(func(value interface{}) Result {
	switch v := value.(type) {
	case nil:
		return Invalid(CodeRequired, "value is required", value)
	case string:
		if strings.TrimSpace(v) == "" {
			return Invalid(CodeRequired, "value is required", value)
		}
	}
	return Valid()
})

// OneOf accepts strings equal, ignoring case, to one of allowed.
// Empty strings pass so OneOf can be combined with Required.
func OneOf(allowed ...string) Validator {
	return ValidatorFunc(func(value interface{}) Result {
		s, ok := value.(string)
		if !ok {
			return Invalid(CodeType, fmt.Sprintf("expected string, got %T", value), value)
		}
		if s == "" {
			return Valid()
		}
		for _, a := range allowed {
			if strings.EqualFold(s, a) {
				return Valid()
			}
		}
		r := Invalid(CodeOneOf, fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")), value)
		r.Errors[0].Expected = allowed
		return r
	})
}

// IntRange accepts integers within [min, max]
func IntRange(min, max int) Validator {
	return ValidatorFunc(func(value interface{}) Result {
		n, ok := value.(int)
		if !ok {
			return Invalid(CodeType, fmt.Sprintf("expected integer, got %T", value), value)
		}
		if n < min || n > max {
			r := Invalid(CodeRange, fmt.Sprintf("must be between %d and %d", min, max), value)
			r.Errors[0].Expected = fmt.Sprintf("[%d, %d]", min, max)
			return r
		}
		return Valid()
	})
}
