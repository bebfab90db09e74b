// Package document provides an in-memory implementation of the engine's
// host surface: a text buffer with atomic replacement, a dialect
// association with synchronous change notification, and a lexical view that
// answers comment/string classifications as if the whole buffer were lexed
// under the active dialect.
package document

import (
	"fmt"

	"github.com/sqlcaps/sqlcaps/pkg/caps"
	"github.com/sqlcaps/sqlcaps/pkg/dialect"
	"github.com/sqlcaps/sqlcaps/pkg/dialects/redis"
	"github.com/sqlcaps/sqlcaps/pkg/token"
)

// Document is an open text document. It implements caps.Document.
//
// A Document is owned by a single goroutine; the lexical view cache and the
// dialect-change observers have no locking discipline of their own.
type Document struct {
	name        string
	content     string
	lines       []int // byte offsets of line starts
	dialectName string
	native      bool     // host mode natively exposes the keyword table
	nativeKw    []string // the native table when native is true

	lex *lexView // cached lexical view, nil when invalid

	onDialectChange []func()
}

// Option configures a new Document.
type Option func(*Document)

// WithDialect sets the initial dialect name.
func WithDialect(name string) Option {
	return func(d *Document) { d.dialectName = name }
}

// WithNativeKeywords marks the document as natively a query-language
// document exposing its own keyword table.
func WithNativeKeywords(words []string) Option {
	return func(d *Document) {
		d.native = true
		d.nativeKw = words
	}
}

// New creates a document over content.
func New(name, content string, opts ...Option) *Document {
	d := &Document{
		name:    name,
		content: content,
		lines:   computeLineOffsets(content),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the document's name (usually a file path).
func (d *Document) Name() string { return d.name }

// Content returns the full document text.
func (d *Document) Content() string { return d.content }

// Len returns the document length in bytes.
func (d *Document) Len() int { return len(d.content) }

// ReadText returns the text covered by the span, clamped to the buffer.
func (d *Document) ReadText(sp token.Span) string {
	start, end := sp.Start, sp.End
	if start < 0 {
		start = 0
	}
	if end > len(d.content) {
		end = len(d.content)
	}
	if start >= end {
		return ""
	}
	return d.content[start:end]
}

// ReplaceText replaces the span with text as a single atomic edit and
// invalidates the lexical view.
func (d *Document) ReplaceText(sp token.Span, text string) error {
	if sp.Start < 0 || sp.End > len(d.content) || sp.Start > sp.End {
		return fmt.Errorf("replace: span [%d,%d) out of range (len %d)", sp.Start, sp.End, len(d.content))
	}
	d.content = d.content[:sp.Start] + text + d.content[sp.End:]
	d.lines = computeLineOffsets(d.content)
	d.lex = nil
	return nil
}

// Insert appends text at offset and invalidates the lexical view.
func (d *Document) Insert(offset int, text string) error {
	if offset < 0 || offset > len(d.content) {
		return fmt.Errorf("insert: offset %d out of range (len %d)", offset, len(d.content))
	}
	d.content = d.content[:offset] + text + d.content[offset:]
	d.lines = computeLineOffsets(d.content)
	d.lex = nil
	return nil
}

// ActiveDialect returns the document's dialect name.
func (d *Document) ActiveDialect() string { return d.dialectName }

// SetDialect changes the active dialect and synchronously notifies
// observers before returning, so no lookup can ever be answered by a table
// built for the previous dialect.
func (d *Document) SetDialect(name string) {
	if name == d.dialectName {
		return
	}
	d.dialectName = name
	d.lex = nil
	for _, fn := range d.onDialectChange {
		fn()
	}
}

// OnDialectChange registers an observer invoked on every dialect change.
// The engine registers its keyword-cache invalidation here.
func (d *Document) OnDialectChange(fn func()) {
	d.onDialectChange = append(d.onDialectChange, fn)
}

// NativeKeywords returns the host mode's keyword table, if any.
func (d *Document) NativeKeywords() ([]string, bool) {
	return d.nativeKw, d.native
}

// RedisKeywords returns the dedicated command table when the document is
// the key/value-command variant.
func (d *Document) RedisKeywords() []string {
	if d.dialectName == redis.Redis.Name {
		return redis.Keywords
	}
	return nil
}

// LexicalStateAt classifies offset under the active dialect, building the
// lexical view on first use after an edit or dialect change.
func (d *Document) LexicalStateAt(offset int) (caps.LexicalState, error) {
	if offset < 0 || offset > len(d.content) {
		return caps.LexicalState{}, fmt.Errorf("lexical state: offset %d out of range (len %d)", offset, len(d.content))
	}
	if d.lex == nil {
		d.lex = newLexView(d.content, dialect.Resolve(d.dialectName))
	}
	return d.lex.stateAt(offset), nil
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int { return len(d.lines) }

// OffsetOfLine returns the byte offset of the start of a 0-based line.
func (d *Document) OffsetOfLine(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(d.lines) {
		return len(d.content)
	}
	return d.lines[line]
}

// computeLineOffsets calculates byte offsets for each line start.
func computeLineOffsets(content string) []int {
	offsets := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}
