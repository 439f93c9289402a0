package text

import (
	"regexp"
	"strings"
)

var (
	trailingSpaceRe = regexp.MustCompile(`(?m)[ \t]+$`)
	blankRunRe      = regexp.MustCompile(`\n{3,}`)
)

// Normalize canonicalizes narrative whitespace: CRLF and CR line endings
// become LF, trailing whitespace is stripped from each line, runs of two
// or more blank lines collapse to a single blank line, and leading/trailing
// whitespace is trimmed. Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = trailingSpaceRe.ReplaceAllString(s, "")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// CollapseSpaces replaces every run of whitespace with a single space and
// trims the result. Used when comparing text "up to whitespace
// normalization", e.g. in reconstruction checks.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
