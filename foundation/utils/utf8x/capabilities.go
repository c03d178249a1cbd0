// File: capabilities.go
// Title: Runtime Capability Descriptor
// Description: Describes which optimized Unicode facilities a Utility may use
//              and probes the running process for them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package utf8x

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Capabilities selects the code paths of a Utility. The zero value forces
// every fallback.
type Capabilities struct {
	// Normalization enables canonical normalization (NFC/NFD). Without it
	// Normalize returns its input unchanged.
	Normalization bool

	// OrdinalConversion enables the optimized codepoint codec. Without it
	// CodepointOf and CharOf use the manual byte decoder and the numeric
	// character reference encoder.
	OrdinalConversion bool
}

// Probe reports the capabilities available to this process
func Probe() Capabilities {
	return Capabilities{
		Normalization:     probeNormalization(),
		OrdinalConversion: probeOrdinalConversion(),
	}
}

func probeNormalization() bool {
	if norm.Version == "" {
		return false
	}
	return norm.NFC.String("e\u0301") == "\u00e9" && norm.NFD.String("\u00e9") == "e\u0301"
}

func probeOrdinalConversion() bool {
	r, size := utf8.DecodeRuneInString("\U0001F618")
	return r == 0x1F618 && size == 4 && utf8.ValidRune(r)
}

// String implements fmt.Stringer
func (c Capabilities) String() string {
	return fmt.Sprintf("Capabilities{normalization: %t, ordinal_conversion: %t}",
		c.Normalization, c.OrdinalConversion)
}

// Form is a canonical normalization form. The values match the normalizer
// constants of the library utf8x was ported from.
type Form int

const (
	// FormNFD is canonical decomposition
	FormNFD Form = 2

	// FormNFC is canonical decomposition followed by canonical composition
	FormNFC Form = 4
)

// String implements fmt.Stringer
func (f Form) String() string {
	switch f {
	case FormNFC:
		return "NFC"
	case FormNFD:
		return "NFD"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// ParseForm converts "NFC" or "NFD" (any case) to a Form
func ParseForm(s string) (Form, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NFC":
		return FormNFC, nil
	case "NFD":
		return FormNFD, nil
	}
	return 0, unsupportedForm("parse_form", s)
}
