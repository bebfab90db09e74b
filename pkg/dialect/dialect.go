// Package dialect provides SQL dialect configuration for the capitalization
// engine. A dialect bundles the reserved-keyword table, the prefixes that
// introduce eval strings, and the comment/string syntax used to build a
// dialect-consistent lexical view of a document.
//
// Concrete dialect implementations are registered from pkg/dialects/*/
// packages via init().
package dialect

import "strings"

// DefaultName is the fallback dialect used when a document has no explicit
// dialect, or names one that is not registered.
const DefaultName = "ansi"

// Dialect holds the static configuration for one query-language variant.
// Immutable after Build; shared read-only across documents.
type Dialect struct {
	// Name is the dialect identifier (e.g. "ansi", "postgres", "redis").
	Name string

	// Keywords is the reserved-word table in canonical uppercase form.
	Keywords []string

	// EvalPrefixes are keywords that, when immediately preceding a string
	// literal's opening delimiter, mark the string as dialect code
	// (e.g. EXECUTE 'select 1').
	EvalPrefixes []string

	// LineComments are the prefixes that start a comment running to end of
	// line ("--" for SQL, "#" for key/value-command files).
	LineComments []string

	// BlockCommentStart and BlockCommentEnd delimit block comments.
	// Both empty means the dialect has no block comments.
	BlockCommentStart string
	BlockCommentEnd   string

	// StringQuote is the string literal delimiter.
	StringQuote byte

	// QuoteDoubling reports whether a doubled quote escapes the delimiter
	// inside a string literal ('it''s').
	QuoteDoubling bool

	// ExtraWordChars lists additional word-constituent bytes beyond
	// letters, digits and underscore.
	ExtraWordChars string
}

// HasEvalPrefix reports whether text, ignoring trailing whitespace, ends
// with one of the dialect's eval-introducing prefixes as a whole word.
// Matching is case-insensitive.
func (d *Dialect) HasEvalPrefix(text string) bool {
	trimmed := strings.TrimRight(text, " \t\r\n")
	upper := strings.ToUpper(trimmed)
	for _, prefix := range d.EvalPrefixes {
		if !strings.HasSuffix(upper, prefix) {
			continue
		}
		// The prefix must be a whole token, not the tail of an identifier.
		at := len(upper) - len(prefix)
		if at == 0 || !isWordByte(upper[at-1]) {
			return true
		}
	}
	return false
}

func isWordByte(ch byte) bool {
	return ch == '_' ||
		ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9'
}
