// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

import "strings"

// noMatchPriority marks a rule slot no rule has matched yet.
const noMatchPriority = -1

// ruleMatch is the best rule seen so far for one verb and group class.
type ruleMatch struct {
	// priority is the matched pattern length, -1 when unset.
	priority int
	// line is the document line of the matched rule.
	line int
}

// update keeps the higher-priority rule.
func (m *ruleMatch) update(priority, line int) {
	if m.priority < priority {
		m.priority = priority
		m.line = line
	}
}

// clear resets the slot to the no-match state.
func (m *ruleMatch) clear() {
	m.priority = noMatchPriority
	m.line = 0
}

// higherMatch returns the rule with the greater priority.
func higherMatch(a, b ruleMatch) ruleMatch {
	if a.priority > b.priority {
		return a
	}

	return b
}

// matchPair tracks best matches for the wildcard group and for groups
// naming the queried agent. Wildcard rules are only consulted when no
// specific group ever matched.
type matchPair struct {
	global   ruleMatch
	specific ruleMatch
}

// clear resets both slots.
func (p *matchPair) clear() {
	p.global.clear()
	p.specific.clear()
}

// Matcher evaluates allow/disallow verdicts for one or more user-agents
// against robots.txt documents.
//
// A Matcher carries no state between queries: every AgentsAllowed call
// resets it, scans the document once, and resolves the verdict from the
// running best-match state. The zero value is ready to use. A Matcher must
// not be shared by concurrent queries; the package-level Allowed functions
// are safe to call from any goroutine.
type Matcher struct {
	path   string
	agents []string

	allow    matchPair
	disallow matchPair

	seenGlobalAgent       bool
	seenSpecificAgent     bool
	everSeenSpecificAgent bool
	seenSeparator         bool
}

// NewMatcher returns an empty reusable matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Allowed reports whether a crawler announcing any of the agent names may
// fetch uri under the rules in body.
//
// The decision is total: malformed documents, empty agent lists and URIs
// without a path all degrade gracefully, and no input can produce an error.
func Allowed(body []byte, agents []string, uri string) bool {
	return NewMatcher().AgentsAllowed(body, agents, uri)
}

// AgentAllowed is Allowed for a single user-agent name.
func AgentAllowed(body []byte, agent, uri string) bool {
	return Allowed(body, []string{agent}, uri)
}

// AgentsAllowed reports whether a crawler announcing any of the agent names
// may fetch uri under the rules in body.
func (m *Matcher) AgentsAllowed(body []byte, agents []string, uri string) bool {
	m.reset(agents, escapePath(pathParamsQuery(uri)))
	Scan(body, m.handle)

	return !m.disallowed()
}

// AgentAllowed is AgentsAllowed for a single user-agent name.
func (m *Matcher) AgentAllowed(body []byte, agent, uri string) bool {
	return m.AgentsAllowed(body, []string{agent}, uri)
}

// MatchingLine returns the document line of the rule that decided the last
// query, or 0 when no rule matched.
func (m *Matcher) MatchingLine() int {
	if m.everSeenSpecificAgent {
		return higherMatch(m.disallow.specific, m.allow.specific).line
	}

	return higherMatch(m.disallow.global, m.allow.global).line
}

// reset prepares the matcher for one query.
func (m *Matcher) reset(agents []string, path string) {
	m.path = path

	m.agents = m.agents[:0]
	for _, agent := range agents {
		m.agents = append(m.agents, asciiLower(extractUserAgent(agent)))
	}

	m.allow.clear()
	m.disallow.clear()

	m.seenGlobalAgent = false
	m.seenSpecificAgent = false
	m.everSeenSpecificAgent = false
	m.seenSeparator = false
}

// handle advances the match state by one directive event.
func (m *Matcher) handle(d Directive) {
	switch d.Kind {
	case DirectiveUserAgent:
		m.handleUserAgent(d.Value)
	case DirectiveAllow:
		m.handleAllow(d.Line, d.Value)
	case DirectiveDisallow:
		m.handleDisallow(d.Line, d.Value)
	}

	// Sitemap and unknown lines never close a user-agent run and carry no
	// match state.
}

// handleUserAgent processes one "User-agent:" line.
func (m *Matcher) handleUserAgent(value string) {
	if m.seenSeparator {
		// A path rule ended the previous group; this line opens a new one.
		m.seenGlobalAgent = false
		m.seenSpecificAgent = false
		m.seenSeparator = false
	}

	// A "*" followed by trailing junk still declares the wildcard group.
	if strings.HasPrefix(value, "*") && (len(value) == 1 || value[1] == ' ' || value[1] == '\t') {
		m.seenGlobalAgent = true
		return
	}

	token := asciiLower(extractUserAgent(value))
	for _, agent := range m.agents {
		if agent == token {
			m.everSeenSpecificAgent = true
			m.seenSpecificAgent = true
			break
		}
	}
}

// handleAllow processes one "Allow:" line.
func (m *Matcher) handleAllow(line int, value string) {
	if !m.seenAnyAgent() {
		return
	}

	m.seenSeparator = true

	if priority := matchRule(m.path, value); priority >= 0 {
		if m.seenSpecificAgent {
			m.allow.specific.update(priority, line)
		} else {
			m.allow.global.update(priority, line)
		}

		return
	}

	// "index.htm" and "index.html" at the end of a pattern stand for the
	// directory itself.
	slash := strings.LastIndexByte(value, '/')
	if slash >= 0 && strings.HasPrefix(value[slash:], "/index.htm") {
		m.handleAllow(line, value[:slash+1]+"$")
	}
}

// handleDisallow processes one "Disallow:" line.
func (m *Matcher) handleDisallow(line int, value string) {
	if !m.seenAnyAgent() {
		return
	}

	m.seenSeparator = true

	if priority := matchRule(m.path, value); priority >= 0 {
		if m.seenSpecificAgent {
			m.disallow.specific.update(priority, line)
		} else {
			m.disallow.global.update(priority, line)
		}
	}
}

// seenAnyAgent reports whether the open group applies to this query.
func (m *Matcher) seenAnyAgent() bool {
	return m.seenGlobalAgent || m.seenSpecificAgent
}

// disallowed resolves the verdict after the scan.
//
// Groups naming the queried agent shadow the wildcard group entirely: once
// any specific group exists, wildcard rules are never consulted. Within a
// pair the longest match wins and an exact tie resolves to allow.
func (m *Matcher) disallowed() bool {
	if m.allow.specific.priority > 0 || m.disallow.specific.priority > 0 {
		return m.disallow.specific.priority > m.allow.specific.priority
	}

	if m.everSeenSpecificAgent {
		return false
	}

	if m.allow.global.priority > 0 || m.disallow.global.priority > 0 {
		return m.disallow.global.priority > m.allow.global.priority
	}

	return false
}
