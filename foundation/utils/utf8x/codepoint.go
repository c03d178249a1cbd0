// File: codepoint.go
// Title: Codepoint Conversion
// Description: Converts between single characters and codepoints. The
//              optimized codec uses unicode/utf8; the fallback codec unpacks
//              UTF-8 bytes by hand and encodes through numeric character
//              references.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Codec strategies, fallback encode verifies its result

package utf8x

import (
	"html"
	"strconv"
	"unicode/utf8"

	mdwlog "github.com/msto63/utf8x/foundation/core/log"
)

// codepointCodec is the strategy behind CodepointOf and CharOf
type codepointCodec interface {
	decode(char string) (int64, bool)
	encode(codepoint int64) (string, bool)
	name() string
}

type optimizedCodec struct{}

func (optimizedCodec) decode(char string) (int64, bool) {
	r, size := utf8.DecodeRuneInString(char)
	if r == utf8.RuneError && size <= 1 {
		return 0, false
	}
	return int64(r), true
}

func (optimizedCodec) encode(codepoint int64) (string, bool) {
	if codepoint < 0 || codepoint > utf8.MaxRune || !utf8.ValidRune(rune(codepoint)) {
		return "", false
	}
	return string(rune(codepoint)), true
}

func (optimizedCodec) name() string { return "optimized" }

type fallbackCodec struct{}

func (fallbackCodec) decode(char string) (int64, bool) { return decodeFallback(char) }

func (fallbackCodec) encode(codepoint int64) (string, bool) { return encodeFallback(codepoint) }

func (fallbackCodec) name() string { return "fallback" }

// decodeFallback unpacks the UTF-8 bytes of char. The byte length of the
// whole input selects the pattern; lengths other than 1 to 4 fail.
func decodeFallback(char string) (int64, bool) {
	b := []byte(char)
	switch len(b) {
	case 1:
		return int64(b[0]), true
	case 2:
		return int64(b[0]&0x1F)<<6 | int64(b[1]&0x3F), true
	case 3:
		return int64(b[0]&0x0F)<<12 | int64(b[1]&0x3F)<<6 | int64(b[2]&0x3F), true
	case 4:
		return int64(b[0]&0x07)<<18 | int64(b[1]&0x3F)<<12 | int64(b[2]&0x3F)<<6 | int64(b[3]&0x3F), true
	default:
		return 0, false
	}
}

// encodeFallback resolves the numeric character reference &#codepoint;.
// The decoder maps C1 controls to windows-1252; those are restored to
// U+0080..U+009F. A reference the decoder leaves alone, or maps to any
// other character (U+FFFD for invalid values), fails.
func encodeFallback(codepoint int64) (string, bool) {
	if codepoint < 0 {
		return "", false
	}

	ref := "&#" + strconv.FormatInt(codepoint, 10) + ";"
	char := html.UnescapeString(ref)
	if char == ref {
		return "", false
	}

	r, size := utf8.DecodeRuneInString(char)
	if size == len(char) && int64(r) == codepoint {
		return char, true
	}
	if codepoint >= 0x80 && codepoint <= 0x9F {
		return string(rune(codepoint)), true
	}
	return "", false
}

// CodepointOf returns the codepoint of char. The optimized codec decodes the
// first scalar; the fallback codec expects char to be exactly one
// character. An empty or undecodable char fails with ErrConversion.
func (u *Utility) CodepointOf(char string) (int64, error) {
	if char == "" {
		return 0, conversionFailed("codepoint_of", char, "empty input")
	}

	cp, ok := u.codec.decode(char)
	if !ok {
		u.logger.Debug("codepoint decode failed", mdwlog.Fields{
			"codec":  u.codec.name(),
			"length": len(char),
		})
		return 0, conversionFailed("codepoint_of", char, "invalid UTF-8 for the "+u.codec.name()+" codec")
	}
	return cp, nil
}

// CharOf returns the UTF-8 encoding of codepoint. Codepoint 0 is "\x00" on
// both codecs. Surrogates and values beyond U+10FFFF fail with
// ErrConversion.
func (u *Utility) CharOf(codepoint int64) (string, error) {
	if codepoint == 0 {
		return "\x00", nil
	}

	char, ok := u.codec.encode(codepoint)
	if !ok {
		return "", conversionFailed("char_of", codepoint, "codepoint cannot be encoded")
	}
	return char, nil
}
