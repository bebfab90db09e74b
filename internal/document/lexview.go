package document

import (
	"sort"
	"strings"

	"github.com/sqlcaps/sqlcaps/pkg/caps"
	"github.com/sqlcaps/sqlcaps/pkg/dialect"
	"github.com/sqlcaps/sqlcaps/pkg/token"
)

// lexView is the dialect-consistent lexical view of a document: a read-only
// index of comment and string segments computed from the raw text under one
// dialect's syntax. It exists purely for classification queries and never
// participates in rendering. Rebuilt from scratch on edit or dialect change.
type lexView struct {
	segs []segment
}

type segKind int

const (
	segComment segKind = iota
	segString
)

type segment struct {
	span token.Span
	kind segKind
}

// newLexView scans text once under the dialect's comment and string syntax.
// A nil dialect yields an empty view (everything classifies as code).
func newLexView(text string, d *dialect.Dialect) *lexView {
	v := &lexView{}
	if d == nil {
		return v
	}

	i := 0
	for i < len(text) {
		if matchLineComment(text, i, d.LineComments) {
			end := strings.IndexByte(text[i:], '\n')
			if end < 0 {
				end = len(text)
			} else {
				end += i
			}
			v.segs = append(v.segs, segment{span: token.Span{Start: i, End: end}, kind: segComment})
			i = end
			continue
		}
		if d.BlockCommentStart != "" && strings.HasPrefix(text[i:], d.BlockCommentStart) {
			end := strings.Index(text[i+len(d.BlockCommentStart):], d.BlockCommentEnd)
			if end < 0 {
				end = len(text)
			} else {
				end += i + len(d.BlockCommentStart) + len(d.BlockCommentEnd)
			}
			v.segs = append(v.segs, segment{span: token.Span{Start: i, End: end}, kind: segComment})
			i = end
			continue
		}
		if text[i] == d.StringQuote {
			end := scanString(text, i, d.StringQuote, d.QuoteDoubling)
			v.segs = append(v.segs, segment{span: token.Span{Start: i, End: end}, kind: segString})
			i = end
			continue
		}
		i++
	}
	return v
}

// stateAt returns the lexical state for an offset.
func (v *lexView) stateAt(offset int) caps.LexicalState {
	idx := sort.Search(len(v.segs), func(i int) bool {
		return v.segs[i].span.End > offset
	})
	if idx >= len(v.segs) || !v.segs[idx].span.Contains(offset) {
		return caps.LexicalState{StringOpen: -1}
	}
	seg := v.segs[idx]
	if seg.kind == segComment {
		return caps.LexicalState{InComment: true, StringOpen: -1}
	}
	return caps.LexicalState{InString: true, StringOpen: seg.span.Start}
}

func matchLineComment(text string, i int, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(text[i:], p) {
			return true
		}
	}
	return false
}

// scanString returns the offset just past the closing delimiter of the
// string starting at open. Doubled quotes escape the delimiter when
// doubling is set ('it''s'); otherwise a backslash escapes the next byte.
// An unterminated string runs to the end of the text.
func scanString(text string, open int, quote byte, doubling bool) int {
	i := open + 1
	for i < len(text) {
		switch {
		case text[i] == quote:
			if doubling && i+1 < len(text) && text[i+1] == quote {
				i += 2
				continue
			}
			return i + 1
		case !doubling && text[i] == '\\' && i+1 < len(text):
			i += 2
		default:
			i++
		}
	}
	return len(text)
}
