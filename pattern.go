// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

import "strings"

// matchRule returns the rule priority for a matching pattern, -1 otherwise.
//
// The priority is the pattern's own length: longer, more specific patterns
// outrank shorter ones regardless of wildcard count.
func matchRule(path, pattern string) int {
	if matchPattern(pattern, path) {
		return len(pattern)
	}

	return -1
}

// matchPattern reports whether pattern matches path.
//
// The pattern is anchored at the start of the path. "*" matches any run of
// characters including the empty one, and a trailing "$" anchors the end of
// the pattern to the end of the path; "$" anywhere else is literal. Without
// "$" the pattern is a prefix rule. The empty pattern matches every path.
//
// Both inputs come from the webmaster, so the scan is a backtrack-free
// two-pointer walk over the literal runs between wildcards: linear time,
// no regexp.
func matchPattern(pattern, path string) bool {
	endAnchor := strings.HasSuffix(pattern, "$")
	if endAnchor {
		pattern = pattern[:len(pattern)-1]
	}

	runs := strings.Split(pattern, "*")

	// The leading run is anchored at the path start.
	if !strings.HasPrefix(path, runs[0]) {
		return false
	}

	pos := len(runs[0])
	last := len(runs) - 1

	if endAnchor {
		if last == 0 {
			// No wildcard: the whole path must be consumed.
			return pos == len(path)
		}

		for _, run := range runs[1:last] {
			i := strings.Index(path[pos:], run)
			if i < 0 {
				return false
			}

			pos += i + len(run)
		}

		// The final run must sit at the very end of the path, anywhere
		// at or after the scan position.
		tail := runs[last]
		return len(path)-len(tail) >= pos && strings.HasSuffix(path, tail)
	}

	// Prefix rule: each remaining run at its earliest occurrence.
	for _, run := range runs[1:] {
		i := strings.Index(path[pos:], run)
		if i < 0 {
			return false
		}

		pos += i + len(run)
	}

	return true
}
