// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"regexp"
	"strings"
)

// nonWord matches every run of characters that is not a lowercase letter,
// digit, or underscore. Each run collapses to a single hyphen.
var nonWord = regexp.MustCompile(`[^a-z0-9_]+`)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World!  Foo" → "hello-world-foo"
func Generate(s string) string {
	result := strings.ToLower(s)
	result = nonWord.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
