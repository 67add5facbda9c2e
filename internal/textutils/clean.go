// Package textutils provides the text cleaning rules applied to every value
// read from a payment message.
package textutils

import (
	"regexp"
	"strings"
)

// Placeholder is the token some originators put in mandatory fields they
// have no data for.
const Placeholder = "NOTPROVIDED"

var placeholderPattern = regexp.MustCompile(`(?i)` + Placeholder)

// Clean removes every occurrence of Placeholder, in any letter case, and
// trims surrounding whitespace. Removal repeats until no occurrence is
// left, so a token split around another one does not survive.
func Clean(s string) string {
	for placeholderPattern.MatchString(s) {
		s = placeholderPattern.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}

// CleanLines cleans each line and drops the ones left empty. Order is kept.
// The result is never nil.
func CleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if c := Clean(line); c != "" {
			out = append(out, c)
		}
	}
	return out
}
