// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPattern(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		// Empty pattern matches everything.
		{"", "/", true},
		{"", "/deep/path?q=1", true},

		// Prefix rules.
		{"/", "/", true},
		{"/", "/anything", true},
		{"/fish", "/fish", true},
		{"/fish", "/fishheads/yummy.html", true},
		{"/fish", "/catfish", false},
		{"/fish", "/Fish.asp", false},
		{"/fish/", "/fish/salmon", true},
		{"/fish/", "/fish", false},

		// Wildcards.
		{"/fish*", "/fish", true},
		{"/fish*", "/fishheads", true},
		{"/*.php", "/filename.php", true},
		{"/*.php", "/folder/filename.php?parameters", true},
		{"/*.php", "/index?php", false},
		{"/foo/*/qux", "/foo/bar/qux", true},
		{"/foo/*/qux", "/foo//qux", true},
		{"/foo/*/qux", "/foo/qux", false},
		{"/a*b*c", "/a-x-b-y-c-z", true},
		{"/a*b*c", "/a-x-c", false},

		// End anchor.
		{"/$", "/", true},
		{"/$", "/page", false},
		{"/dir/$", "/dir/", true},
		{"/dir/$", "/dir/sub", false},
		{"/*.php$", "/filename.php", true},
		{"/*.php$", "/filename.php5", false},
		{"/*.php$", "/filename.php?parameters", false},

		// The final run before "$" may start later than its earliest
		// occurrence in the path.
		{"/*x$", "/axbx", true},
		{"/*x$", "/axby", false},
		{"/*ab*ab$", "/abab", true},
		{"/*ab*ab$", "/ab", false},

		// "$" is only special at the very end.
		{"/a$b", "/a$b", true},
		{"/a$b", "/ab", false},
		{"$", "/", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, matchPattern(tc.pattern, tc.path),
			"pattern %q against %q", tc.pattern, tc.path)
	}
}

func TestMatchRulePriority(t *testing.T) {
	t.Parallel()

	// Priority is the full pattern length, wildcards and anchor included.
	assert.Equal(t, 10, matchRule("/members/index.html", "/members/*"))
	assert.Equal(t, 7, matchRule("/page.html", "/*.html"))
	assert.Equal(t, 2, matchRule("/", "/$"))
	assert.Equal(t, 0, matchRule("/anything", ""))
	assert.Equal(t, -1, matchRule("/page", "/*.html"))
}
