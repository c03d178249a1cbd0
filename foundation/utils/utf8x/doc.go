// File: doc.go
// Title: Package Documentation for utf8x
// Description: Package utf8x provides UTF-8 aware string operations with
// optimized and fallback code paths selected by an explicit
// capability descriptor.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Fold, NormalizeStrict and documentation

// Package utf8x provides UTF-8 aware string operations.
//
// Package: utf8x
// Title: UTF-8 Text Utility
// Description: Search, case mapping, substring extraction, codepoint
// conversion, canonical normalization and byte level UTF-8
// classification, all counted in Unicode scalar values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-17
//
// # Overview
//
// Positions and lengths are counted in scalar values, not bytes and not
// grapheme clusters. Invalid bytes count as one scalar each.
//
//	utf8x.Length("iñtërnâtiônàlizætiøn")               // 20
//	utf8x.IndexOfFirst("iñtërnâtiônàlizætiøn", "æ", 0) // 15
//	utf8x.Substring("iñtërnâtiônàlizætiøn", -4)        // "tiøn"
//	utf8x.TitleCase("iñt ërn")                         // "Iñt Ërn"
//
// # Capabilities
//
// A Utility is built from a Capabilities value and is immutable afterwards.
// OrdinalConversion selects the unicode/utf8 codec for CodepointOf and
// CharOf; without it a manual byte decoder and a numeric character
// reference encoder are used. Normalization enables NFC/NFD through
// golang.org/x/text/unicode/norm; without it Normalize and Fold return their
// input unchanged.
//
//	u := utf8x.New(utf8x.Capabilities{Normalization: true})
//	cp, err := u.CodepointOf("€") // fallback decoder, 8364
//
// The package level functions use Default, which is built once from Probe.
//
// # Search Offsets
//
// IndexOfFirst and IndexOfLast treat negative offsets differently.
// IndexOfFirst starts searching len+offset scalars in. IndexOfLast accepts
// any occurrence starting at or before len+offset. A match between the two
// positions is found by IndexOfLast but not by IndexOfFirst.
//
// # Errors
//
// Search misses return NotFound. Conversion failures return an error
// matching ErrConversion with errors.Is. Malformed input to
// ContainsMultibyte, IsWellFormed and StripFourByteSequences is data, not an
// error.
//
// # Thread Safety
//
// All functions are safe for concurrent use.
package utf8x
