// Package slug turns titles into URL path segments.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// nonWord matches anything that isn't a letter, digit, underscore, space, or hyphen.
	nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	// whitespace collapses runs of whitespace into one hyphen.
	whitespace = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonWord.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Unique returns base, or base with the smallest numeric suffix ("-2", "-3", ...)
// for which taken reports false.
func Unique(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if !taken(candidate) {
			return candidate
		}
	}
}
