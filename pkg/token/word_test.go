package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrevWord(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		extra  string
		want   Span
		found  bool
	}{
		{name: "word just before offset", text: "select ", offset: 7, want: Span{0, 6}, found: true},
		{name: "offset at word end", text: "select", offset: 6, want: Span{0, 6}, found: true},
		{name: "skips punctuation", text: "foo);  ", offset: 7, want: Span{0, 3}, found: true},
		{name: "mid word", text: "select", offset: 3, want: Span{0, 3}, found: true},
		{name: "second word", text: "select from ", offset: 12, want: Span{7, 11}, found: true},
		{name: "empty text", text: "", offset: 0, found: false},
		{name: "only punctuation", text: ";;(", offset: 3, found: false},
		{name: "offset past end clamps", text: "ab", offset: 99, want: Span{0, 2}, found: true},
		{name: "underscore is word char", text: "my_col ", offset: 7, want: Span{0, 6}, found: true},
		{name: "backslash with extra", text: `\watch `, offset: 7, extra: `\`, want: Span{0, 6}, found: true},
		{name: "backslash without extra", text: `\watch `, offset: 7, want: Span{1, 6}, found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := PrevWord(tt.text, tt.offset, tt.extra)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNextWord(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		extra  string
		want   Span
		found  bool
	}{
		{name: "word at offset", text: "select 1", offset: 0, want: Span{0, 6}, found: true},
		{name: "skips leading punctuation", text: " ; from", offset: 0, want: Span{3, 7}, found: true},
		{name: "mid word backs up to start", text: "select 1", offset: 3, want: Span{0, 6}, found: true},
		{name: "after first word", text: "select from", offset: 6, want: Span{7, 11}, found: true},
		{name: "no more words", text: "a   ", offset: 1, found: false},
		{name: "empty text", text: "", offset: 0, found: false},
		{name: "negative offset", text: "ab", offset: -3, want: Span{0, 2}, found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := NextWord(tt.text, tt.offset, tt.extra)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSpan(t *testing.T) {
	sp := Span{Start: 2, End: 5}
	assert.Equal(t, 3, sp.Len())
	assert.True(t, sp.IsValid())
	assert.True(t, sp.Contains(2))
	assert.True(t, sp.Contains(4))
	assert.False(t, sp.Contains(5))

	assert.False(t, Span{}.IsValid())
	assert.False(t, Span{Start: 3, End: 3}.IsValid())
}
