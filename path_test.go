// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathParamsQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		uri  string
		want string
	}{
		{"", "/"},
		{"http://www.example.com", "/"},
		{"http://www.example.com/", "/"},
		{"http://www.example.com/a", "/a"},
		{"http://www.example.com/a/", "/a/"},
		{"http://www.example.com/a/b?c=http://d.e/", "/a/b?c=http://d.e/"},
		{"http://www.example.com/a/b?c=d&e=f#fragment", "/a/b?c=d&e=f"},
		{"example.com", "/"},
		{"example.com/", "/"},
		{"example.com/a", "/a"},
		{"example.com/a/", "/a/"},
		{"example.com/a/b?c=d&e=f#fragment", "/a/b?c=d&e=f"},
		{"a", "/"},
		{"a/", "/"},
		{"/a", "/a"},
		{"a/b", "/b"},
		{"example.com?a", "/?a"},
		{"example.com/a;b#c", "/a;b"},
		{"//a/b/c", "/b/c"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, pathParamsQuery(tc.uri), "uri %q", tc.uri)
	}
}

func TestExtractUserAgent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Googlebot/2.1", "Googlebot"},
		{"FooBot", "FooBot"},
		{"Foo Bar", "Foo"},
		{"Foo_Bar-Baz", "Foo_Bar-Baz"},
		{"Foobot*", "Foobot"},
		{" Foobot ", ""},
		{"ツ", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, extractUserAgent(tc.in), "input %q", tc.in)
	}
}

func TestIsValidUserAgent(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidUserAgent("Foobot"))
	assert.True(t, IsValidUserAgent("Foobot-Bar"))
	assert.True(t, IsValidUserAgent("Foo_Bar"))

	assert.False(t, IsValidUserAgent(""))
	assert.False(t, IsValidUserAgent("ツ"))
	assert.False(t, IsValidUserAgent("Foobot*"))
	assert.False(t, IsValidUserAgent(" Foobot "))
	assert.False(t, IsValidUserAgent("Foobot/2.1"))
	assert.False(t, IsValidUserAgent("Foobot Bar"))
}
