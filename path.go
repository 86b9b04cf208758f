// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

import "strings"

// pathParamsQuery extracts the path, params and query from a URI.
//
// Scheme, authority and fragment are dropped. The result always starts with
// "/"; a URI without a path yields "/". The URI is not validated: inputs
// like "example.com/a" or "//host/a" resolve the way crawlers expect.
func pathParamsQuery(uri string) string {
	// Initial two slashes are ignored.
	searchStart := 0
	if len(uri) >= 2 && uri[0] == '/' && uri[1] == '/' {
		searchStart = 2
	}

	earlyPath := indexFirstOf(uri, "/?;", searchStart)

	protocolEnd := -1
	if i := strings.Index(uri[searchStart:], "://"); i >= 0 {
		protocolEnd = searchStart + i
	}

	if earlyPath < protocolEnd {
		// A path, param or query before "://" means it is not a scheme.
		protocolEnd = -1
	}

	if protocolEnd == -1 {
		protocolEnd = searchStart
	} else {
		protocolEnd += 3
	}

	pathStart := indexFirstOf(uri, "/?;", protocolEnd)
	if pathStart == -1 {
		return "/"
	}

	pathEnd := len(uri)
	if hash := strings.IndexByte(uri[searchStart:], '#'); hash >= 0 {
		if searchStart+hash < pathStart {
			return "/"
		}

		pathEnd = searchStart + hash
	}

	if uri[pathStart] != '/' {
		// Prepend a slash if the result would start e.g. with "?".
		return "/" + uri[pathStart:pathEnd]
	}

	return uri[pathStart:pathEnd]
}

// indexFirstOf returns the first index at or after pos of any byte in chars.
func indexFirstOf(s, chars string, pos int) int {
	if pos >= len(s) {
		return -1
	}

	if i := strings.IndexAny(s[pos:], chars); i >= 0 {
		return pos + i
	}

	return -1
}

// extractUserAgent returns the leading product token of a user-agent value.
//
// The token stops at the first byte outside [a-zA-Z_-], so version suffixes
// and comments are ignored: "FooBot/1.0" becomes "FooBot".
func extractUserAgent(userAgent string) string {
	i := 0
	for i < len(userAgent) && isAgentByte(userAgent[i]) {
		i++
	}

	return userAgent[:i]
}

// IsValidUserAgent reports whether agent is a well-formed product token a
// crawler can announce: non-empty and built only from [a-zA-Z_-].
func IsValidUserAgent(agent string) bool {
	return agent != "" && extractUserAgent(agent) == agent
}

// isAgentByte reports whether c may appear in a user-agent product token.
func isAgentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '-' || c == '_'
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}
