// Package textutil holds small text helpers shared by the intent, match and
// chat packages. Matching works on normalized text: lowercase, surrounding
// whitespace trimmed, keywords compared as plain substrings.
package textutil

import "strings"

// Normalize lowercases the input and trims surrounding whitespace.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Tokens splits the input on runs of whitespace.
func Tokens(s string) []string {
	return strings.Fields(s)
}

// ContainsAny reports whether s contains at least one of the given substrings.
func ContainsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
