// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

import "strings"

// DirectiveKind identifies one recognized robots.txt directive.
type DirectiveKind uint8

const (
	// DirectiveUnknown is any unrecognized directive, including known
	// keys the matcher does not act on, like "crawl-delay".
	DirectiveUnknown DirectiveKind = iota
	// DirectiveUserAgent declares an agent name for the open group.
	DirectiveUserAgent
	// DirectiveAllow is a path rule permitting access.
	DirectiveAllow
	// DirectiveDisallow is a path rule denying access.
	DirectiveDisallow
	// DirectiveSitemap is a sitemap location line.
	DirectiveSitemap
)

// Directive is one parsed robots.txt line emitted by Scan.
type Directive struct {
	// Key is the raw directive key as written, kept for unknown lines.
	Key string `json:"key" yaml:"key"`
	// Value is the directive value. Allow and Disallow values are
	// percent-escape canonicalized.
	Value string `json:"value" yaml:"value"`
	// Kind is the classified directive kind.
	Kind DirectiveKind `json:"kind" yaml:"kind"`
	// Line is the 1-based physical line number in the document.
	Line int `json:"line" yaml:"line"`
}

// classifyKey maps a directive key to its kind.
//
// Keys are matched by case-insensitive prefix, and common webmaster typos
// ("useragent", "dissallow", "site-map", ...) are accepted, mirroring
// widely deployed parser behavior.
func classifyKey(key string) DirectiveKind {
	k := asciiLower(key)

	switch {
	case hasAnyPrefix(k, "user-agent", "useragent", "user agent"):
		return DirectiveUserAgent
	case strings.HasPrefix(k, "allow"):
		return DirectiveAllow
	case hasAnyPrefix(k, "disallow", "dissallow", "dissalow", "disalow", "diaslow", "diasllow", "disallaw"):
		return DirectiveDisallow
	case hasAnyPrefix(k, "sitemap", "site-map"):
		return DirectiveSitemap
	default:
		return DirectiveUnknown
	}
}

// hasAnyPrefix reports whether s starts with any of the prefixes.
func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}

	return false
}
