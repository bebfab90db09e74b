package caps

import (
	"github.com/sqlcaps/sqlcaps/pkg/dialect"
	"github.com/sqlcaps/sqlcaps/pkg/token"
)

// SyntaxContext classifies an offset for capitalization purposes.
type SyntaxContext int

const (
	// Code is plain dialect code; keywords here are capitalized.
	Code SyntaxContext = iota
	// Comment spans are never touched.
	Comment
	// PlainString literals are never touched.
	PlainString
	// EvalString is a string literal whose contents are dialect code
	// (introduced by one of the dialect's eval prefixes); treated as Code.
	EvalString
)

// String returns the context name.
func (c SyntaxContext) String() string {
	switch c {
	case Code:
		return "code"
	case Comment:
		return "comment"
	case PlainString:
		return "string"
	case EvalString:
		return "eval-string"
	default:
		return "unknown"
	}
}

// Classify returns the syntactic context at offset. When the lexical view is
// unavailable, only host-mode-native documents may assume plain code; any
// other document conservatively classifies as a plain string so nothing
// gets rewritten.
func Classify(doc Document, offset int, d *dialect.Dialect) SyntaxContext {
	st, err := doc.LexicalStateAt(offset)
	if err != nil {
		if _, native := doc.NativeKeywords(); native {
			return Code
		}
		return PlainString
	}
	if st.InComment {
		return Comment
	}
	if !st.InString {
		return Code
	}
	if d != nil && st.StringOpen > 0 {
		before := doc.ReadText(token.Span{Start: 0, End: st.StringOpen})
		if d.HasEvalPrefix(before) {
			return EvalString
		}
	}
	return PlainString
}
