// internal/app/system/sanitize/sanitize.go

// Package sanitize strips markup from free-text fields before they are
// persisted. Everything stored by the admin API is plain text that later
// lands in rendered pages, so tags are removed outright rather than
// filtered.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// TextSlice applies Text to every element in place and returns the slice.
func TextSlice(ss []string) []string {
	for i, s := range ss {
		ss[i] = Text(s)
	}
	return ss
}
