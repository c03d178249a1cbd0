// File: case.go
// Title: Unicode Case Mapping
// Description: Full, locale independent case mapping built on
//              golang.org/x/text/cases.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package utf8x

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A cases.Caser keeps state between calls, so each goroutine takes its own
// from a pool.
var (
	lowerPool = sync.Pool{New: func() interface{} { c := cases.Lower(language.Und); return &c }}
	upperPool = sync.Pool{New: func() interface{} { c := cases.Upper(language.Und); return &c }}
	titlePool = sync.Pool{New: func() interface{} { c := cases.Title(language.Und); return &c }}
)

func mapCase(pool *sync.Pool, s string) string {
	c := pool.Get().(*cases.Caser)
	defer pool.Put(c)
	c.Reset()
	return c.String(s)
}

// ToLower maps s to lower case
func (u *Utility) ToLower(s string) string {
	if s == "" {
		return ""
	}
	return mapCase(&lowerPool, s)
}

// ToUpper maps s to upper case. Mappings may change the length, "ß"
// becomes "SS".
func (u *Utility) ToUpper(s string) string {
	if s == "" {
		return ""
	}
	return mapCase(&upperPool, s)
}

// UpperFirst upper cases the first scalar of s and keeps the rest. Leading
// whitespace is the first scalar, so " ñ" stays " ñ".
func (u *Utility) UpperFirst(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	if size == len(s) {
		return u.ToUpper(s)
	}
	return u.ToUpper(s[:size]) + s[size:]
}

// TitleCase upper cases the first letter of every word and lower cases the
// rest. Words follow Unicode word breaks.
func (u *Utility) TitleCase(s string) string {
	if s == "" {
		return ""
	}
	return mapCase(&titlePool, s)
}
