// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

// Command robots checks whether a URL is accessible to a user-agent
// according to records in a local robots.txt file.
//
// Usage:
//
//	robots -file ./robots.txt -ua FooBot,BarBot -uri https://example.com/page
//
// The verdict is printed to stdout. The exit status reflects argument and
// file handling only, not the allow/disallow outcome.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/woozymasta/robotstxt"
)

func main() {
	file := flag.String("file", "", "local path to a file containing robots.txt records")
	ua := flag.String("ua", "", "comma separated user-agent names to be matched against the records")
	uri := flag.String("uri", "", "RFC 3986 percent-encoded URL to be matched against the records")
	flag.Parse()

	if err := run(*file, *ua, *uri); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func run(file, ua, uri string) error {
	if file == "" || ua == "" || uri == "" {
		return fmt.Errorf("-file, -ua and -uri are required")
	}

	body, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read robots file: %w", err)
	}

	agents := strings.Split(ua, ",")
	for i := range agents {
		agents[i] = strings.TrimSpace(agents[i])
	}

	verdict := "DISALLOWED"
	if robotstxt.Allowed(body, agents, uri) {
		verdict = "ALLOWED"
	}

	fmt.Printf("user-agent '%s' with URI '%s': %s\n", strings.Join(agents, ","), uri, verdict)

	if len(body) == 0 {
		fmt.Println("notice: robots file is empty so all user-agents are allowed")
	}

	return nil
}
