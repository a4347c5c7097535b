package stringutils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single line", input: "Trip planning", want: "Trip planning"},
		{name: "multi line", input: "Trip planning\nDetails below", want: "Trip planning"},
		{name: "leading blank lines", input: "\n\n  Trip planning  \nmore", want: "Trip planning"},
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: "  \n\t\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstLine(tt.input))
		})
	}
}

func TestSanitizeTitleContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "Weekend in Lisbon", want: "Weekend in Lisbon"},
		{name: "strips url", input: "Check https://example.com for info", want: "Check for info"},
		{name: "keeps markdown link text", input: "See [the docs](https://example.com)", want: "See the docs"},
		{name: "strips quotes", input: `"Weekend in Lisbon"`, want: "Weekend in Lisbon"},
		{name: "trims trailing punctuation", input: "Any ideas?!", want: "Any ideas"},
		{name: "collapses whitespace", input: "a   b\t\tc", want: "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTitleContent(tt.input))
		})
	}
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "short", TruncateTitle("short", 48))

	long := "a very long conversation title that keeps going and going"
	truncated := TruncateTitle(long, 24)
	assert.LessOrEqual(t, len(truncated), 24)
	assert.True(t, len(truncated) > 3)
	assert.Contains(t, truncated, "...")
}

func TestTruncateTitle_MultiByteRunes(t *testing.T) {
	long := "a" + strings.Repeat("こんにちは世界", 10)
	truncated := TruncateTitle(long, 48)

	assert.True(t, utf8.ValidString(truncated))
	assert.LessOrEqual(t, utf8.RuneCountInString(truncated), 48)
	assert.Contains(t, truncated, "...")

	// Within the limit, multi-byte titles pass through untouched.
	short := "こんにちは世界"
	assert.Equal(t, short, TruncateTitle(short, 48))
}

func TestGenerateTitle(t *testing.T) {
	assert.Equal(t, "Weekend in Lisbon", GenerateTitle("Weekend in Lisbon!\nsecond line", 48))
	assert.Equal(t, "", GenerateTitle("   \n", 48))
	assert.Equal(t, "", GenerateTitle("https://example.com", 48))
}
