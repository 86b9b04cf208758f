// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

import (
	"fmt"
	"os"
)

// AllowedFile reads a robots.txt document from path and reports whether a
// crawler announcing any of the agent names may fetch uri.
//
// Only reading the file can fail; matching itself never does.
func AllowedFile(path string, agents []string, uri string) (bool, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read robots file: %w", err)
	}

	return Allowed(body, agents, uri), nil
}
