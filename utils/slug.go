package utils

import (
	"strings"
)

// Slugify derives a URL-safe identifier from a display name: lowercase,
// alphanumeric and hyphens only, whitespace collapsed to single hyphens,
// no boundary hyphens. Uniqueness is left to the database index.
func Slugify(name string) string {
	lowered := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteRune(' ')
		}
	}

	parts := strings.FieldsFunc(b.String(), func(r rune) bool {
		return r == ' ' || r == '-'
	})
	return strings.Join(parts, "-")
}
