package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcaps/sqlcaps/pkg/dialect"
	"github.com/sqlcaps/sqlcaps/pkg/dialects/ansi"
	"github.com/sqlcaps/sqlcaps/pkg/dialects/postgres"
	_ "github.com/sqlcaps/sqlcaps/pkg/dialects/redis"
)

func TestRegistry(t *testing.T) {
	d, ok := dialect.Get("ansi")
	require.True(t, ok)
	assert.Equal(t, "ansi", d.Name)

	// Lookup is case-insensitive.
	d, ok = dialect.Get("POSTGRES")
	require.True(t, ok)
	assert.Equal(t, "postgres", d.Name)

	_, ok = dialect.Get("oracle")
	assert.False(t, ok)

	names := dialect.List()
	assert.Contains(t, names, "ansi")
	assert.Contains(t, names, "postgres")
	assert.Contains(t, names, "redis")
}

func TestResolveFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "ansi", dialect.Resolve("").Name)
	assert.Equal(t, "ansi", dialect.Resolve("nosuch").Name)
	assert.Equal(t, "redis", dialect.Resolve("redis").Name)
}

func TestPostgresExtendsAnsi(t *testing.T) {
	assert.Subset(t, postgres.Postgres.Keywords, ansi.Keywords)
	assert.Contains(t, postgres.Postgres.Keywords, "ILIKE")
	assert.Equal(t, `\`, postgres.Postgres.ExtraWordChars)
}

func TestHasEvalPrefix(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "exact prefix", text: "EXECUTE", want: true},
		{name: "lowercase prefix", text: "execute", want: true},
		{name: "trailing whitespace", text: "do $$ begin EXECUTE \t ", want: true},
		{name: "perform", text: "  perform ", want: true},
		{name: "other word", text: "SELECT", want: false},
		{name: "suffix of identifier", text: "unexecute", want: false},
		{name: "empty", text: "", want: false},
		{name: "prefix at start of text", text: "EXECUTE ", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postgres.Postgres.HasEvalPrefix(tt.text))
		})
	}

	// ANSI has no eval prefixes at all.
	assert.False(t, ansi.ANSI.HasEvalPrefix("EXECUTE "))
}

func TestBuilderDefaults(t *testing.T) {
	d := dialect.NewDialect("x").Keywords("FOO").Build()
	assert.Equal(t, []string{"--"}, d.LineComments)
	assert.Equal(t, "/*", d.BlockCommentStart)
	assert.Equal(t, "*/", d.BlockCommentEnd)
	assert.Equal(t, byte('\''), d.StringQuote)
	assert.True(t, d.QuoteDoubling)
}
