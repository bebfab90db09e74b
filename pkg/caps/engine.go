package caps

import (
	"strings"

	"github.com/sqlcaps/sqlcaps/pkg/dialect"
	"github.com/sqlcaps/sqlcaps/pkg/token"
)

// Outcome is the result of one capitalization attempt. Skipped is the
// expected, frequent, non-error path: most tokens are identifiers.
type Outcome int

const (
	// Skipped means the token was not a capitalization candidate: not a
	// keyword, blacklisted, or inside a comment or plain string.
	Skipped Outcome = iota
	// Capitalized means the token was rewritten to its canonical form.
	Capitalized
	// AlreadyCanonical means the token matched every condition but was
	// already in canonical uppercase form, so no edit was issued.
	AlreadyCanonical
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Capitalized:
		return "capitalized"
	case AlreadyCanonical:
		return "already-canonical"
	default:
		return "skipped"
	}
}

// Engine is the per-document decision core. It owns the document's keyword
// cache and holds a read-only blacklist snapshot.
type Engine struct {
	doc       Document
	keywords  *KeywordRegistry
	blacklist Blacklist
}

// NewEngine creates an engine for a document. The blacklist is a snapshot;
// the engine never mutates it.
func NewEngine(doc Document, blacklist Blacklist) *Engine {
	return &Engine{
		doc:       doc,
		keywords:  NewKeywordRegistry(),
		blacklist: blacklist,
	}
}

// Document returns the engine's document.
func (e *Engine) Document() Document { return e.doc }

// Dialect resolves the document's active dialect, falling back to the
// default when unset or unregistered.
func (e *Engine) Dialect() *dialect.Dialect {
	return dialect.Resolve(e.doc.ActiveDialect())
}

// Invalidate discards the cached keyword set. The host calls this on its
// dialect-change notification, synchronously, so a stale table can never
// answer a lookup after a switch.
func (e *Engine) Invalidate() {
	e.keywords.Invalidate()
}

// MaybeCapitalize decides whether the token spanned by tok is a reserved
// keyword that should be uppercased, and if so rewrites it in place via the
// document's atomic replace. Capitalization requires all of:
//
//   - the downcased token is in the active dialect's keyword table
//   - the token is not blacklisted
//   - the token's context is Code or EvalString
func (e *Engine) MaybeCapitalize(tok token.Span) (Outcome, error) {
	if !tok.IsValid() || tok.End > e.doc.Len() {
		return Skipped, nil
	}
	word := e.doc.ReadText(tok)
	lower := strings.ToLower(word)

	canonical, ok := e.keywords.Get(e.doc)[lower]
	if !ok {
		return Skipped, nil
	}
	if e.blacklist.Contains(lower) {
		return Skipped, nil
	}
	switch Classify(e.doc, tok.Start, e.Dialect()) {
	case Code, EvalString:
	default:
		return Skipped, nil
	}

	if word == canonical {
		return AlreadyCanonical, nil
	}
	if err := e.doc.ReplaceText(tok, canonical); err != nil {
		return Skipped, err
	}
	return Capitalized, nil
}
