// File: normalize.go
// Title: Canonical Normalization
// Description: NFC/NFD normalization and accent folding on top of
//              golang.org/x/text/unicode/norm. Without the normalization
//              capability text passes through unchanged.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Fold and NormalizeStrict

package utf8x

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	mdwlog "github.com/msto63/utf8x/foundation/core/log"
)

// normalizer is the strategy behind Normalize and Fold
type normalizer interface {
	normalize(s string, form Form) string
	fold(s string) string
	available() bool
}

type canonicalNormalizer struct{}

func (canonicalNormalizer) normalize(s string, form Form) string {
	switch form {
	case FormNFD:
		return norm.NFD.String(s)
	default:
		return norm.NFC.String(s)
	}
}

func (canonicalNormalizer) fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

func (canonicalNormalizer) available() bool { return true }

type passthroughNormalizer struct{}

func (passthroughNormalizer) normalize(s string, _ Form) string { return s }

func (passthroughNormalizer) fold(s string) string { return s }

func (passthroughNormalizer) available() bool { return false }

func pickForm(form []Form) Form {
	if len(form) == 0 {
		return FormNFC
	}
	return form[0]
}

// Normalize returns s in canonical form (FormNFC unless given). This is a
// best effort operation: without the normalization capability, or for a
// form other than NFC and NFD, s is returned unchanged. Use NormalizeStrict
// to see those cases as errors.
func (u *Utility) Normalize(s string, form ...Form) string {
	f := pickForm(form)
	if f != FormNFC && f != FormNFD {
		u.logger.Debug("unsupported normalization form, text unchanged", mdwlog.Fields{"form": f.String()})
		return s
	}
	if !u.normalizer.available() {
		u.logger.Debug("normalization unavailable, text unchanged", mdwlog.Fields{"form": f.String()})
	}
	return u.normalizer.normalize(s, f)
}

// NormalizeStrict is Normalize returning ErrUnsupportedForm or
// ErrNormalizationUnavailable instead of the unchanged text
func (u *Utility) NormalizeStrict(s string, form ...Form) (string, error) {
	f := pickForm(form)
	if f != FormNFC && f != FormNFD {
		return s, unsupportedForm("normalize", f)
	}
	if !u.normalizer.available() {
		return s, capabilityUnavailable("normalize", "normalization")
	}
	return u.normalizer.normalize(s, f), nil
}

// Fold removes combining marks: "crème brûlée" becomes "creme brulee".
// Without the normalization capability s is returned unchanged.
func (u *Utility) Fold(s string) string {
	if s == "" {
		return ""
	}
	return u.normalizer.fold(s)
}
