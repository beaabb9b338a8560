// Package sanitizer turns stored content values into plain text previews.
package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Stripper removes all markup from a value. Safe for concurrent use.
type Stripper struct {
	policy *bluemonday.Policy
}

// NewStripper creates a stripper backed by the bluemonday strict policy.
func NewStripper() *Stripper {
	return &Stripper{policy: bluemonday.StrictPolicy()}
}

// StripTags removes every element and decodes entities, so "<b>a&amp;b</b>"
// becomes "a&b". Whitespace runs are collapsed.
func (s *Stripper) StripTags(value string) string {
	if value == "" {
		return ""
	}
	text := html.UnescapeString(s.policy.Sanitize(value))
	return strings.Join(strings.Fields(text), " ")
}

// Preview strips value and keeps at most n runes of it. A marker is appended
// whenever value itself was non empty.
func (s *Stripper) Preview(value string, n int, marker string) string {
	if value == "" {
		return ""
	}
	return Truncate(s.StripTags(value), n) + marker
}

// Truncate cuts s to at most n runes without appending anything.
func Truncate(s string, n int) string {
	if n < 0 {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
