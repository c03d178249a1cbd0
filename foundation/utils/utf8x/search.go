// File: search.go
// Title: Scalar Indexed Search and Substring
// Description: Implements IndexOfFirst, IndexOfLast, Substring and Length.
//              Positions are counted in Unicode scalar values; invalid bytes
//              count as one scalar each.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package utf8x

import (
	"strings"
	"unicode/utf8"
)

// IndexOfFirst returns the scalar index of the first occurrence of needle
// in haystack starting at or after offset, or NotFound.
//
// A negative offset starts the search len+offset scalars into haystack.
// A start outside [0, len] yields NotFound. An empty needle yields NotFound
// rather than the start position.
func (u *Utility) IndexOfFirst(haystack, needle string, offset int) int {
	if haystack == "" || needle == "" {
		return NotFound
	}

	n := utf8.RuneCountInString(haystack)
	start := offset
	if start < 0 {
		start += n
	}
	if start < 0 || start > n {
		return NotFound
	}

	from := byteOffset(haystack, start)
	idx := strings.Index(haystack[from:], needle)
	if idx < 0 {
		return NotFound
	}
	return start + utf8.RuneCountInString(haystack[from:from+idx])
}

// IndexOfLast returns the scalar index of the last occurrence of needle in
// haystack, or NotFound.
//
// With offset >= 0 only occurrences starting at or after offset count. With
// a negative offset only occurrences starting at or before len+offset count,
// and |offset| > len yields NotFound. Unlike IndexOfFirst,
// IndexOfLast("a😘b", "😘", -1) finds the emoji; IndexOfFirst with the
// same offset does not. An empty needle yields NotFound.
func (u *Utility) IndexOfLast(haystack, needle string, offset int) int {
	if haystack == "" || needle == "" {
		return NotFound
	}

	n := utf8.RuneCountInString(haystack)

	if offset >= 0 {
		if offset > n {
			return NotFound
		}
		from := byteOffset(haystack, offset)
		idx := strings.LastIndex(haystack[from:], needle)
		if idx < 0 {
			return NotFound
		}
		return offset + utf8.RuneCountInString(haystack[from:from+idx])
	}

	limit := n + offset
	if limit < 0 {
		return NotFound
	}

	// a match may start at limit and run past it
	end := byteOffset(haystack, limit) + len(needle)
	if end > len(haystack) {
		end = len(haystack)
	}
	idx := strings.LastIndex(haystack[:end], needle)
	if idx < 0 {
		return NotFound
	}
	return utf8.RuneCountInString(haystack[:idx])
}

// Length returns the number of scalar values in s
func (u *Utility) Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Substring returns the scalars of s from start, at most length of them.
//
// A negative start counts from the end and is clamped at 0; a start at or
// beyond the end yields "". A negative length leaves that many scalars off
// the end. Without length the scalar length of s is used.
func (u *Utility) Substring(s string, start int, length ...int) string {
	n := utf8.RuneCountInString(s)

	l := n
	if len(length) > 0 {
		l = length[0]
	}

	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if start >= n {
		return ""
	}

	var end int
	if l < 0 {
		end = n + l
	} else {
		end = n
		if l < n-start {
			end = start + l
		}
	}
	if end <= start {
		return ""
	}

	from := byteOffset(s, start)
	to := from + byteOffset(s[from:], end-start)
	return s[from:to]
}

// byteOffset returns the byte position of scalar index i in s, or len(s)
// when s has at most i scalars
func byteOffset(s string, i int) int {
	if i <= 0 {
		return 0
	}
	count := 0
	for pos := range s {
		if count == i {
			return pos
		}
		count++
	}
	return len(s)
}
