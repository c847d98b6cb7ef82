package spy_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/fwojciec/spy"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty string", "", ""},
		{"only whitespace", " \t\n\r ", ""},
		{"trims both ends", "  hello  ", "hello"},
		{"collapses inner runs", "hello \n\t world", "hello world"},
		{"collapses non-breaking space", "hello\u00a0\u00a0world", "hello world"},
		{"collapses ideographic space", "a\u3000b", "a b"},
		{"keeps single spaces", "a b c", "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, spy.Normalize(tt.in))
		})
	}
}

func TestNormalize_NoAdjacentWhitespace(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"\n\n Title \n\n  of\tthe page \n",
		" line para\u0085next",
		"   ",
		"x",
	}

	for _, in := range inputs {
		got := spy.Normalize(in)

		assert.Equal(t, strings.TrimSpace(got), got)
		prevSpace := false
		for _, r := range got {
			isSpace := unicode.IsSpace(r)
			assert.False(t, prevSpace && isSpace, "adjacent whitespace in %q", got)
			if isSpace {
				assert.Equal(t, ' ', r)
			}
			prevSpace = isSpace
		}
	}
}
