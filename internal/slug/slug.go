// Package slug derives URL-safe identifiers from post titles and resolves
// naming collisions against the existing collection.
package slug

import (
	"fmt"
	"strings"
	"unicode"
)

// Generate turns a title into a lowercase, hyphen-separated slug. Every
// character that is not a lowercase letter, digit, or whitespace is
// stripped, whitespace runs collapse to a single hyphen, and leading or
// trailing hyphens are trimmed. ASCII-oriented; an all-punctuation title
// yields the empty string and the caller decides what to do with it.
func Generate(title string) string {
	lowered := strings.ToLower(title)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}

// EnsureUnique returns the first non-colliding variant of candidate,
// appending -1, -2, ... until exists reports false. The exists check is
// expected to fold in any record exclusion (e.g. the post being updated).
func EnsureUnique(candidate string, exists func(string) (bool, error)) (string, error) {
	current := candidate
	for counter := 1; ; counter++ {
		taken, err := exists(current)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", current, err)
		}
		if !taken {
			return current, nil
		}
		current = fmt.Sprintf("%s-%d", candidate, counter)
	}
}
