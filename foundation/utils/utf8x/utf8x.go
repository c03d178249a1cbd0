// File: utf8x.go
// Title: UTF-8 Text Utility
// Description: Defines the Utility type, its construction from a capability
//              descriptor, the sentinel errors and the package level
//              functions backed by a process wide default Utility.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Strategies selected once at construction

package utf8x

import (
	"sync"

	mdwerror "github.com/msto63/utf8x/foundation/core/error"
	mdwerrors "github.com/msto63/utf8x/foundation/core/errors"
	mdwlog "github.com/msto63/utf8x/foundation/core/log"
)

// EncodingUTF8 is the only encoding utf8x operates on
const EncodingUTF8 = "UTF-8"

// NotFound is returned by the search functions when the needle is absent
const NotFound = -1

// Sentinel errors, matched with errors.Is
var (
	// ErrConversion reports a codepoint or character that cannot be converted
	ErrConversion = sentinel(mdwerrors.CodeUtf8xConversionFailed, "utf8x: conversion failed")

	// ErrNormalizationUnavailable reports a strict normalization request on a
	// Utility without the normalization capability
	ErrNormalizationUnavailable = sentinel(mdwerrors.CodeUtf8xCapabilityUnavailable, "utf8x: normalization is not available")

	// ErrUnsupportedForm reports a normalization form other than NFC or NFD
	ErrUnsupportedForm = sentinel(mdwerrors.CodeUtf8xUnsupportedForm, "utf8x: unsupported normalization form")
)

func sentinel(code, message string) *mdwerror.Error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleUtf8x).Code(code).Message(message).Build()
}

func conversionFailed(operation string, input interface{}, reason string) error {
	return mdwerrors.ConversionFailed(operation, input, reason)
}

func capabilityUnavailable(operation, capability string) error {
	return mdwerrors.Unavailable(operation, capability)
}

func unsupportedForm(operation string, form interface{}) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleUtf8x).
		Operation(operation).
		Messagef("utf8x.%s: unsupported normalization form %v", operation, form).
		Code(mdwerrors.CodeUtf8xUnsupportedForm).
		Detail("form", form).
		Build()
}

// Utility performs UTF-8 aware text operations. It is immutable and safe
// for concurrent use.
type Utility struct {
	caps       Capabilities
	codec      codepointCodec
	normalizer normalizer
	logger     *mdwlog.Logger
}

// Option configures a Utility
type Option func(*Utility)

// WithLogger sets the logger used for debug output
func WithLogger(logger *mdwlog.Logger) Option {
	return func(u *Utility) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// New creates a Utility using the code paths allowed by caps
func New(caps Capabilities, opts ...Option) *Utility {
	u := &Utility{
		caps:   caps,
		logger: mdwlog.GetDefault(),
	}
	for _, opt := range opts {
		opt(u)
	}
	u.logger = u.logger.WithField("component", "utf8x")

	if caps.OrdinalConversion {
		u.codec = optimizedCodec{}
	} else {
		u.codec = fallbackCodec{}
	}
	if caps.Normalization {
		u.normalizer = canonicalNormalizer{}
	} else {
		u.normalizer = passthroughNormalizer{}
	}

	u.logger.Debug("utility created", mdwlog.Fields{
		"normalization":      caps.Normalization,
		"ordinal_conversion": caps.OrdinalConversion,
	})
	return u
}

// Capabilities returns the capabilities the Utility was built with
func (u *Utility) Capabilities() Capabilities {
	return u.caps
}

// WithoutNormalization returns a copy of u with normalization switched off
func (u *Utility) WithoutNormalization() *Utility {
	caps := u.caps
	caps.Normalization = false
	return New(caps, WithLogger(u.logger))
}

// WithCapabilities returns a copy of u using caps
func (u *Utility) WithCapabilities(caps Capabilities) *Utility {
	return New(caps, WithLogger(u.logger))
}

var (
	defaultUtility *Utility
	defaultOnce    sync.Once
)

// Default returns the process wide Utility built from Probe
func Default() *Utility {
	defaultOnce.Do(func() {
		defaultUtility = New(Probe())
	})
	return defaultUtility
}

// IsConversionError reports whether err is a conversion failure
func IsConversionError(err error) bool {
	return mdwerror.HasCode(err, mdwerror.Code(mdwerrors.CodeUtf8xConversionFailed))
}

// IndexOfFirst calls Default().IndexOfFirst
func IndexOfFirst(haystack, needle string, offset int) int {
	return Default().IndexOfFirst(haystack, needle, offset)
}

// IndexOfLast calls Default().IndexOfLast
func IndexOfLast(haystack, needle string, offset int) int {
	return Default().IndexOfLast(haystack, needle, offset)
}

// ToLower calls Default().ToLower
func ToLower(s string) string {
	return Default().ToLower(s)
}

// ToUpper calls Default().ToUpper
func ToUpper(s string) string {
	return Default().ToUpper(s)
}

// UpperFirst calls Default().UpperFirst
func UpperFirst(s string) string {
	return Default().UpperFirst(s)
}

// TitleCase calls Default().TitleCase
func TitleCase(s string) string {
	return Default().TitleCase(s)
}

// Substring calls Default().Substring
func Substring(s string, start int, length ...int) string {
	return Default().Substring(s, start, length...)
}

// Length calls Default().Length
func Length(s string) int {
	return Default().Length(s)
}

// CodepointOf calls Default().CodepointOf
func CodepointOf(char string) (int64, error) {
	return Default().CodepointOf(char)
}

// CharOf calls Default().CharOf
func CharOf(codepoint int64) (string, error) {
	return Default().CharOf(codepoint)
}

// Normalize calls Default().Normalize
func Normalize(s string, form ...Form) string {
	return Default().Normalize(s, form...)
}

// NormalizeStrict calls Default().NormalizeStrict
func NormalizeStrict(s string, form ...Form) (string, error) {
	return Default().NormalizeStrict(s, form...)
}

// Fold calls Default().Fold
func Fold(s string) string {
	return Default().Fold(s)
}

// ContainsMultibyte calls Default().ContainsMultibyte
func ContainsMultibyte(s string) bool {
	return Default().ContainsMultibyte(s)
}

// IsWellFormed calls Default().IsWellFormed
func IsWellFormed(s string) bool {
	return Default().IsWellFormed(s)
}

// StripFourByteSequences calls Default().StripFourByteSequences
func StripFourByteSequences(s string, replacement ...string) string {
	return Default().StripFourByteSequences(s, replacement...)
}
