// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

/*
Package robotstxt implements Robots Exclusion Protocol (RFC 9309) parsing and
URL matching with Google-compatible semantics.

The package answers one question: may this crawler fetch this URL under the
site's robots.txt. Matching is a single forward pass over the document with
longest-match-wins precedence, and it never fails on malformed input.

Basic flow:
  - ask for a one-shot decision (`Allowed` / `AgentAllowed`)
  - or reuse a `Matcher` across queries (`AgentsAllowed`)
  - optionally read the document from disk (`AllowedFile`)
  - optionally walk raw directives yourself (`Scan`)
  - optionally collect sitemap links (`Sitemaps`)

Callers must pass RFC 3986 percent-encoded URIs. Only the path, params and
query of the URI take part in matching; scheme, authority and fragment are
ignored. User-agent values are matched by their leading product token, so
"FooBot/1.0" obeys groups declared for "FooBot".
*/
package robotstxt
