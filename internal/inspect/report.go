// ============================================================================
// utf8x - UTF-8 Text Utility
// ============================================================================
//
// Package:     inspect
// Description: Per-scalar breakdown of a UTF-8 string
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package inspect breaks a string down into its scalar values and reports
// byte, scalar, grapheme and display width statistics.
package inspect

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/msto63/utf8x/foundation/utils/utf8x"
	"github.com/rivo/uniseg"
)

// Scalar describes one scalar value, or one stray byte of ill-formed input
type Scalar struct {
	Index     int    `json:"index"`
	Offset    int    `json:"offset"`
	Grapheme  int    `json:"grapheme"`
	Char      string `json:"char"`
	Codepoint string `json:"codepoint"`
	Value     int64  `json:"value"`
	Bytes     string `json:"bytes"`
	Size      int    `json:"size"`
	Width     int    `json:"width"`
	Valid     bool   `json:"valid"`
}

// Summary holds whole-string statistics
type Summary struct {
	Bytes      int  `json:"bytes"`
	Scalars    int  `json:"scalars"`
	Graphemes  int  `json:"graphemes"`
	Width      int  `json:"width"`
	WellFormed bool `json:"well_formed"`
	Multibyte  bool `json:"multibyte"`
	FourByte   bool `json:"four_byte"`
}

// Report is the result of Analyze
type Report struct {
	Input   string   `json:"input"`
	Summary Summary  `json:"summary"`
	Scalars []Scalar `json:"scalars"`
}

// Analyzer builds reports with a fixed utility and width condition
type Analyzer struct {
	util  *utf8x.Utility
	width *runewidth.Condition
}

// NewAnalyzer creates an analyzer. A nil utility uses utf8x.Default().
// Widths are measured for non East Asian terminals.
func NewAnalyzer(u *utf8x.Utility) *Analyzer {
	if u == nil {
		u = utf8x.Default()
	}
	return &Analyzer{
		util:  u,
		width: &runewidth.Condition{EastAsianWidth: false},
	}
}

// Analyze reports on text with the default analyzer
func Analyze(text string) *Report {
	return NewAnalyzer(nil).Analyze(text)
}

// Analyze reports on text. Each stray byte of ill-formed input becomes its
// own invalid entry, matching how utf8x.Length counts it.
func (a *Analyzer) Analyze(text string) *Report {
	clusters := graphemeIndex(text)

	report := &Report{
		Input: text,
		Summary: Summary{
			Bytes:      len(text),
			Scalars:    a.util.Length(text),
			Graphemes:  uniseg.GraphemeClusterCount(text),
			WellFormed: a.util.IsWellFormed(text),
			Multibyte:  a.util.ContainsMultibyte(text),
			FourByte:   a.util.StripFourByteSequences(text) != text,
		},
		Scalars: make([]Scalar, 0, len(text)),
	}

	for i, off := 0, 0; off < len(text); i++ {
		r, size := utf8.DecodeRuneInString(text[off:])
		raw := text[off : off+size]

		sc := Scalar{
			Index:    i,
			Offset:   off,
			Grapheme: clusters[off],
			Bytes:    hexBytes(raw),
			Size:     size,
		}

		if r == utf8.RuneError && size == 1 {
			sc.Char = fmt.Sprintf(`\x%02X`, raw[0])
			sc.Codepoint = "invalid"
		} else if cp, err := a.util.CodepointOf(raw); err == nil {
			sc.Valid = true
			sc.Value = cp
			sc.Codepoint = fmt.Sprintf("U+%04X", cp)
			sc.Char = display(r)
			sc.Width = a.width.RuneWidth(r)
		} else {
			sc.Char = display(r)
			sc.Codepoint = "invalid"
		}

		report.Summary.Width += sc.Width
		report.Scalars = append(report.Scalars, sc)
		off += size
	}

	return report
}

// graphemeIndex maps every byte offset of text to its grapheme cluster
func graphemeIndex(text string) []int {
	index := make([]int, len(text))
	g := uniseg.NewGraphemes(text)
	for n := 0; g.Next(); n++ {
		start, end := g.Positions()
		for i := start; i < end; i++ {
			index[i] = n
		}
	}
	return index
}

func hexBytes(s string) string {
	parts := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		parts[i] = fmt.Sprintf("%02X", s[i])
	}
	return strings.Join(parts, " ")
}

// display returns a printable form of r. Control characters are escaped
// and combining marks are shown on a dotted circle.
func display(r rune) string {
	switch {
	case unicode.Is(unicode.Mn, r):
		return "◌" + string(r)
	case !unicode.IsPrint(r):
		q := fmt.Sprintf("%+q", r)
		return q[1 : len(q)-1]
	default:
		return string(r)
	}
}
