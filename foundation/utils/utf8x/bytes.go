// File: bytes.go
// Title: Byte Level UTF-8 Classification
// Description: Detects and strips UTF-8 multibyte sequences with the W3C
//              byte range table. Input may be malformed; matching is done
//              at every byte position without decoding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package utf8x

import (
	"strings"
	"unicode/utf8"
)

// byteRange is an inclusive range of byte values
type byteRange struct{ lo, hi byte }

func (r byteRange) contains(b byte) bool { return r.lo <= b && b <= r.hi }

var cont = byteRange{0x80, 0xBF}

// sequence is one row of the table: a lead byte range followed by the
// ranges of its continuation bytes
type sequence []byteRange

// Non-overlong multibyte sequences without surrogates
var (
	twoByteSequences = []sequence{
		{{0xC2, 0xDF}, cont},
	}

	threeByteSequences = []sequence{
		{{0xE0, 0xE0}, {0xA0, 0xBF}, cont},
		{{0xE1, 0xEC}, cont, cont},
		{{0xEE, 0xEF}, cont, cont},
		{{0xED, 0xED}, {0x80, 0x9F}, cont},
	}

	fourByteSequences = []sequence{
		{{0xF0, 0xF0}, {0x90, 0xBF}, cont, cont},
		{{0xF1, 0xF3}, cont, cont, cont},
		{{0xF4, 0xF4}, {0x80, 0x8F}, cont, cont},
	}
)

// matchAt reports the length of the first sequence in table matching s at i,
// or 0
func matchAt(s string, i int, table []sequence) int {
	for _, seq := range table {
		if i+len(seq) > len(s) {
			continue
		}
		ok := true
		for k, r := range seq {
			if !r.contains(s[i+k]) {
				ok = false
				break
			}
		}
		if ok {
			return len(seq)
		}
	}
	return 0
}

// ContainsMultibyte reports whether s contains at least one well-formed 2, 3
// or 4 byte UTF-8 sequence. Overlong encodings and surrogates do not count.
// The rest of s may be malformed.
func (u *Utility) ContainsMultibyte(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0xC2 {
			continue
		}
		if matchAt(s, i, twoByteSequences) > 0 ||
			matchAt(s, i, threeByteSequences) > 0 ||
			matchAt(s, i, fourByteSequences) > 0 {
			return true
		}
	}
	return false
}

// IsWellFormed reports whether all of s is valid UTF-8
func (u *Utility) IsWellFormed(s string) bool {
	return utf8.ValidString(s)
}

// StripFourByteSequences replaces every 4 byte UTF-8 sequence (codepoints
// U+10000 and above) with replacement, "" unless given. All other bytes,
// malformed ones included, are kept.
func (u *Utility) StripFourByteSequences(s string, replacement ...string) string {
	repl := ""
	if len(replacement) > 0 {
		repl = replacement[0]
	}

	var b strings.Builder
	last := 0
	for i := 0; i < len(s); {
		if s[i] < 0xF0 {
			i++
			continue
		}
		n := matchAt(s, i, fourByteSequences)
		if n == 0 {
			i++
			continue
		}
		if last == 0 && b.Len() == 0 {
			b.Grow(len(s))
		}
		b.WriteString(s[last:i])
		b.WriteString(repl)
		i += n
		last = i
	}

	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}
