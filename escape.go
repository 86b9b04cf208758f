// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

import "strings"

const upperHexDigits = "0123456789ABCDEF"

// escapePath canonicalizes percent-escapes in a path or rule pattern.
//
// Valid %XX escapes keep their byte but get uppercase hex digits
// (%2f -> %2F), raw bytes outside the US-ASCII range are percent-encoded,
// and everything else passes through unchanged, including a stray "%" that
// is not followed by two hex digits. Total function, never fails.
//
// The same canonical form is produced for Allow/Disallow patterns and for
// the queried path, so equivalent encodings compare equal. Escapes of
// unreserved ASCII (%61 vs "a") are deliberately not decoded; deployed
// matchers compare them literally.
func escapePath(path string) string {
	needCapitalize := false
	numToEscape := 0

	// First scan the input to see if changes are needed. Most don't.
	for i := 0; i < len(path); i++ {
		switch {
		case isHexEscape(path, i):
			if isLowerHex(path[i+1]) || isLowerHex(path[i+2]) {
				needCapitalize = true
			}
		case path[i] >= 0x80:
			numToEscape++
		}
	}

	if numToEscape == 0 && !needCapitalize {
		return path
	}

	var b strings.Builder
	b.Grow(len(path) + 2*numToEscape)

	for i := 0; i < len(path); i++ {
		switch c := path[i]; {
		case isHexEscape(path, i):
			b.WriteByte('%')
			b.WriteByte(upperHex(path[i+1]))
			b.WriteByte(upperHex(path[i+2]))
			i += 2
		case c >= 0x80:
			b.WriteByte('%')
			b.WriteByte(upperHexDigits[c>>4])
			b.WriteByte(upperHexDigits[c&0x0F])
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// isHexEscape reports whether a valid %XX escape starts at path[i].
func isHexEscape(path string, i int) bool {
	return path[i] == '%' && i+2 < len(path) && isHexDigit(path[i+1]) && isHexDigit(path[i+2])
}

// isHexDigit reports whether c is an ASCII hex digit.
func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// isLowerHex reports whether c is a lowercase hex letter.
func isLowerHex(c byte) bool {
	return c >= 'a' && c <= 'f'
}

// upperHex uppercases one hex digit.
func upperHex(c byte) byte {
	if isLowerHex(c) {
		return c - 'a' + 'A'
	}

	return c
}
