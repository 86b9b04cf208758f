// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

import "strings"

const (
	// maxDocumentLen caps how much of the document is scanned. Content
	// past the ceiling is treated as if the document ended there.
	maxDocumentLen = 500 * 1024
	// maxLineLen caps one physical line. Common browsers limit URLs to
	// 2083 bytes; a valid robots.txt line fits in a few multiples of
	// that. Bytes past the cap are dropped, not an error.
	maxLineLen = 2083 * 8
)

// Scan tokenizes a robots.txt document and calls visit for every directive
// in document order.
//
// Scan never fails: a leading UTF-8 BOM (full or partial) is skipped, any of
// \n, \r and \r\n terminate a line, "#" starts a comment, lines without a
// recognizable key/value shape are dropped, and binary garbage degrades to
// an empty directive stream. Allow and Disallow values are percent-escape
// canonicalized before emission.
func Scan(body []byte, visit func(Directive)) {
	cur := 0
	for _, b := range [...]byte{0xEF, 0xBB, 0xBF} {
		if cur == len(body) || body[cur] != b {
			break
		}

		cur++
	}

	if len(body)-cur > maxDocumentLen {
		body = body[:cur+maxDocumentLen]
	}

	lineNum := 0
	lastWasCR := false

	start, end := cur, cur
	for cur < len(body) {
		b := body[cur]
		cur++

		if b != '\n' && b != '\r' {
			// Add to the current line while there is room under the cap.
			if end-start < maxLineLen-1 {
				end++
			}

			continue
		}

		crlfContinuation := end == start && lastWasCR && b == '\n'
		if !crlfContinuation {
			lineNum++
			emitLine(string(body[start:end]), lineNum, visit)
		}

		start, end = cur, cur
		lastWasCR = b == '\r'
	}

	lineNum++
	emitLine(string(body[start:end]), lineNum, visit)
}

// Sitemaps returns sitemap locations listed in the document, in order.
//
// Sitemap lines are not bound to user-agent groups and may appear anywhere
// in the file.
func Sitemaps(body []byte) []string {
	var out []string

	Scan(body, func(d Directive) {
		if d.Kind == DirectiveSitemap && d.Value != "" {
			out = append(out, d.Value)
		}
	})

	return out
}

// emitLine parses one physical line and emits its directive, if any.
func emitLine(line string, lineNum int, visit func(Directive)) {
	key, value, ok := splitKeyValue(line)
	if !ok {
		return
	}

	kind := classifyKey(key)
	if kind == DirectiveAllow || kind == DirectiveDisallow {
		value = escapePath(value)
	}

	visit(Directive{
		Key:   key,
		Value: value,
		Kind:  kind,
		Line:  lineNum,
	})
}

// splitKeyValue extracts the "<key>: <value>" pair from one line.
//
// Comments are stripped first. When the colon is missing, a single
// whitespace gap is accepted in its stead ("disallow /x"), but only if the
// line holds exactly two non-whitespace sequences.
func splitKeyValue(line string) (key, value string, ok bool) {
	if comment := strings.IndexByte(line, '#'); comment >= 0 {
		line = line[:comment]
	}

	line = strings.TrimSpace(line)

	sep := strings.IndexByte(line, ':')
	if sep < 0 {
		sep = strings.IndexAny(line, " \t")
		if sep < 0 {
			return "", "", false
		}

		val := line[sep+1:]
		if val == "" || strings.ContainsAny(val, " \t") {
			return "", "", false
		}
	}

	key = strings.TrimSpace(line[:sep])
	if key == "" {
		return "", "", false
	}

	return key, strings.TrimSpace(line[sep+1:]), true
}
