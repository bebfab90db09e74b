package token

import "unicode"

// IsWordByte reports whether ch is a word-constituent byte. Letters, digits
// and underscore always qualify; extra lists additional dialect-specific
// constituents (e.g. backslash for psql meta-commands, so that `\d` scans
// as one token instead of a bare `d`).
func IsWordByte(ch byte, extra string) bool {
	if ch == '_' || unicode.IsLetter(rune(ch)) || ch >= '0' && ch <= '9' {
		return true
	}
	for i := 0; i < len(extra); i++ {
		if extra[i] == ch {
			return true
		}
	}
	return false
}

// PrevWord scans backward from offset and returns the span of the nearest
// word ending at or before offset. It first skips non-word bytes, then
// crosses the word-constituent run. Returns false if no word precedes offset.
func PrevWord(text string, offset int, extra string) (Span, bool) {
	i := offset
	if i > len(text) {
		i = len(text)
	}
	for i > 0 && !IsWordByte(text[i-1], extra) {
		i--
	}
	if i == 0 {
		return Span{}, false
	}
	end := i
	for i > 0 && IsWordByte(text[i-1], extra) {
		i--
	}
	return Span{Start: i, End: end}, true
}

// NextWord scans forward from offset and returns the span of the next word.
// If offset falls inside a word, the span covers that whole word, including
// bytes before offset. Returns false if no word starts at or after offset.
func NextWord(text string, offset int, extra string) (Span, bool) {
	if offset < 0 {
		offset = 0
	}
	i := offset
	// Back up to the start of the word when offset lands mid-token.
	if i < len(text) && IsWordByte(text[i], extra) {
		for i > 0 && IsWordByte(text[i-1], extra) {
			i--
		}
	} else {
		for i < len(text) && !IsWordByte(text[i], extra) {
			i++
		}
	}
	if i >= len(text) {
		return Span{}, false
	}
	start := i
	for i < len(text) && IsWordByte(text[i], extra) {
		i++
	}
	return Span{Start: start, End: i}, true
}
