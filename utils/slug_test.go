package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Cold Brew", "cold-brew"},
		{"Café Macchiato!!", "caf-macchiato"},
		{"  Spaced   Out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"Mixed---Hyphens -- here", "mixed-hyphens-here"},
		{"UPPER case 123", "upper-case-123"},
		{"!!!", ""},
		{"", ""},
		{"tab\tand\nnewline", "tab-and-newline"},
		{"-leading and trailing-", "leading-and-trailing"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyShape(t *testing.T) {
	inputs := []string{
		"Cold Brew", "Café Macchiato!!", "a_b_c", "100% Arabica", "ééé",
		"  ", "Q&A: what's new?", "tab\there",
	}
	for _, in := range inputs {
		got := Slugify(in)
		if got == "" {
			continue
		}
		assert.Regexp(t, slugPattern, got, "Slugify(%q)", in)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Cold Brew", "Café Macchiato!!", "already-a-slug", "A  B  C", ""}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "Slugify not idempotent for %q", in)
	}
}
