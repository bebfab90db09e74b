package caps

import "github.com/sqlcaps/sqlcaps/pkg/token"

// LexicalState is the host's lexical classification at a single offset,
// computed under the document's active dialect.
type LexicalState struct {
	// InComment reports whether the offset lies inside a comment.
	InComment bool

	// InString reports whether the offset lies inside a string literal.
	InString bool

	// StringOpen is the offset of the string's opening delimiter when
	// InString is true, -1 when unknown.
	StringOpen int
}

// Document is the host surface the engine operates against. Implementations
// own the text buffer, the dialect association and the lexical view; the
// engine only reads text, asks for classifications and issues atomic
// replacements.
//
// A Document is single-owner state: all engine operations against it must
// run on the goroutine that owns it.
type Document interface {
	// Len returns the document length in bytes.
	Len() int

	// ReadText returns the text covered by the span.
	ReadText(sp token.Span) string

	// ReplaceText atomically replaces the span with text.
	ReplaceText(sp token.Span, text string) error

	// LexicalStateAt classifies the offset under the active dialect.
	// An error means the document could not be lexed under that dialect;
	// the engine then skips capitalization rather than risk rewriting a
	// string or comment.
	LexicalStateAt(offset int) (LexicalState, error)

	// ActiveDialect returns the document's dialect name. Empty means no
	// explicit dialect; the engine falls back to the default.
	ActiveDialect() string

	// NativeKeywords returns the host mode's own keyword table when the
	// document is natively a query-language document.
	NativeKeywords() ([]string, bool)

	// RedisKeywords returns the dedicated command table when the document
	// is the key/value-command variant, empty otherwise.
	RedisKeywords() []string
}
