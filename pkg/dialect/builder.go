package dialect

// Builder constructs a Dialect with a fluent API. Dialect packages use it
// in their init() registration:
//
//	var Postgres = dialect.NewDialect("postgres").
//		Keywords(ansi.Keywords...).
//		Keywords("ILIKE", "RETURNING").
//		EvalPrefixes("EXECUTE").
//		Build()
type Builder struct {
	d Dialect
}

// NewDialect starts building a dialect with SQL-style defaults:
// "--" line comments, "/* */" block comments, single-quoted strings with
// doubled-quote escaping.
func NewDialect(name string) *Builder {
	return &Builder{d: Dialect{
		Name:              name,
		LineComments:      []string{"--"},
		BlockCommentStart: "/*",
		BlockCommentEnd:   "*/",
		StringQuote:       '\'',
		QuoteDoubling:     true,
	}}
}

// Keywords appends reserved words to the dialect's keyword table.
// Words are stored as given; canonicalization happens in the engine.
func (b *Builder) Keywords(words ...string) *Builder {
	b.d.Keywords = append(b.d.Keywords, words...)
	return b
}

// EvalPrefixes appends keywords that introduce eval strings.
func (b *Builder) EvalPrefixes(prefixes ...string) *Builder {
	b.d.EvalPrefixes = append(b.d.EvalPrefixes, prefixes...)
	return b
}

// LineComments replaces the line-comment prefixes.
func (b *Builder) LineComments(prefixes ...string) *Builder {
	b.d.LineComments = prefixes
	return b
}

// BlockComments sets the block comment delimiters. Empty strings disable
// block comments.
func (b *Builder) BlockComments(start, end string) *Builder {
	b.d.BlockCommentStart = start
	b.d.BlockCommentEnd = end
	return b
}

// StringSyntax sets the string delimiter and escape convention.
func (b *Builder) StringSyntax(quote byte, doubling bool) *Builder {
	b.d.StringQuote = quote
	b.d.QuoteDoubling = doubling
	return b
}

// ExtraWordChars sets additional word-constituent bytes.
func (b *Builder) ExtraWordChars(chars string) *Builder {
	b.d.ExtraWordChars = chars
	return b
}

// Build finalizes the dialect.
func (b *Builder) Build() *Dialect {
	d := b.d
	return &d
}
