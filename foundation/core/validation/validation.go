// File: validation.go
// Title: Validation Results and Validator Chains
// Description: Defines the Validator interface, structured validation results
//              and composable validator chains used to check configuration
//              values before they reach the utf8x components.
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

	mdwerror "github.com/msto63/utf8x/foundation/core/error"
)

// Validation error codes
const (
	CodeRequired = "VALIDATION_REQUIRED"
	CodeOneOf    = "VALIDATION_ONE_OF"
	CodeRange    = "VALIDATION_RANGE"
	CodeType     = "VALIDATION_TYPE"
)

// Validator checks a single value
type Validator interface {
	Validate(value interface{}) Result
}

// ValidatorFunc adapts a function to the Validator interface
type ValidatorFunc func(value interface{}) Result

// Validate implements Validator
func (f ValidatorFunc) Validate(value interface{}) Result {
	return f(value)
}

// Result is the outcome of a validation
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError describes one failed rule
type FieldError struct {
	Code     string      `json:"code"`
	Field    string      `json:"field,omitempty"`
	Message  string      `json:"message"`
	Value    interface{} `json:"value,omitempty"`
	Expected interface{} `json:"expected,omitempty"`
}

// Valid returns a passing result
func Valid() Result {
	return Result{Valid: true}
}

// Invalid returns a failing result with one error
func Invalid(code, message string, value interface{}) Result {
	return Result{
		Valid:  false,
		Errors: []FieldError{{Code: code, Message: message, Value: value}},
	}
}

// AddError appends an error and marks the result invalid
func (r *Result) AddError(e FieldError) {
	r.Valid = false
	r.Errors = append(r.Errors, e)
}

// Merge folds other into r
func (r *Result) Merge(other Result) {
	if !other.Valid {
		r.Valid = false
	}
	r.Errors = append(r.Errors, other.Errors...)
}

// Messages returns all error messages
func (r Result) Messages() []string {
	messages := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		if e.Field != "" {
			messages[i] = e.Field + ": " + e.Message
		} else {
			messages[i] = e.Message
		}
	}
	return messages
}

// ToError converts a failing result into a structured error, nil when valid
func (r Result) ToError() error {
	if r.Valid {
		return nil
	}

	err := mdwerror.New(strings.Join(r.Messages(), "; ")).
		WithCode(mdwerror.CodeValidationFailed).
		WithSeverity(mdwerror.SeverityMedium)

	fields := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		if e.Field != "" {
			fields = append(fields, e.Field)
		}
	}
	if len(fields) > 0 {
		err = err.WithDetail("fields", fields)
	}
	return err
}

// Chain runs validators in order against one field
type Chain struct {
	field       string
	validators  []Validator
	stopOnFirst bool
}

// NewChain creates a chain for the named field
func NewChain(field string) *Chain {
	return &Chain{field: field}
}

// Add appends validators to the chain
func (c *Chain) Add(validators ...Validator) *Chain {
	c.validators = append(c.validators, validators...)
	return c
}

// StopOnFirstError makes the chain stop at the first failing validator
func (c *Chain) StopOnFirstError() *Chain {
	c.stopOnFirst = true
	return c
}

// Len returns the number of validators
func (c *Chain) Len() int {
	return len(c.validators)
}

// Validate implements Validator. Errors are tagged with the chain field.
func (c *Chain) Validate(value interface{}) Result {
	result := Valid()
	for _, v := range c.validators {
		r := v.Validate(value)
		for i := range r.Errors {
			if r.Errors[i].Field == "" {
				r.Errors[i].Field = c.field
			}
		}
		result.Merge(r)
		if c.stopOnFirst && !r.Valid {
			break
		}
	}
	return result
}

// String implements fmt.Stringer
func (c *Chain) String() string {
	return fmt.Sprintf("Chain{field: %s, validators: %d}", c.field, len(c.validators))
}

// Set validates several named values and collects every failure
type Set struct {
	entries []setEntry
}

type setEntry struct {
	value     interface{}
	validator Validator
}

// NewSet creates an empty validation set
func NewSet() *Set {
	return &Set{}
}

// Check registers value to be validated by chain
func (s *Set) Check(chain *Chain, value interface{}) *Set {
	s.entries = append(s.entries, setEntry{value: value, validator: chain})
	return s
}

// Validate runs every registered chain
func (s *Set) Validate() Result {
	result := Valid()
	for _, e := range s.entries {
		result.Merge(e.validator.Validate(e.value))
	}
	return result
}
