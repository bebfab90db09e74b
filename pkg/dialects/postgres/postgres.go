// Package postgres provides the PostgreSQL dialect: the ANSI table plus
// vendor keywords, the EXECUTE/PERFORM eval-string prefixes used by
// PL/pgSQL dynamic statements, and backslash as a word constituent so psql
// meta-commands like \d never match the keyword table.
package postgres

import (
	"github.com/sqlcaps/sqlcaps/pkg/dialect"
	"github.com/sqlcaps/sqlcaps/pkg/dialects/ansi"
)

func init() {
	dialect.Register(Postgres)
}

// Postgres is the PostgreSQL dialect.
var Postgres = dialect.NewDialect("postgres").
	Keywords(ansi.Keywords...).
	Keywords(
		"ILIKE", "SIMILAR",
		"CONFLICT", "DO", "NOTHING", "EXCLUDED",
		"MATERIALIZED", "CONCURRENTLY", "TABLESAMPLE",
		"SERIAL", "BIGSERIAL", "BYTEA", "UUID", "JSON", "JSONB",
		"ARRAY", "UNNEST",
		"INHERITS", "TEMPLATE", "TABLESPACE", "UNLOGGED",
		"LISTEN", "NOTIFY", "UNLISTEN",
		"COPY", "STDIN", "STDOUT", "FREEZE", "VERBOSE",
		// PL/pgSQL
		"PERFORM", "RAISE", "NOTICE", "EXCEPTION", "LOOP", "WHILE",
		"FOREACH", "ELSIF", "STRICT", "ASSERT",
	).
	EvalPrefixes("EXECUTE", "PERFORM").
	ExtraWordChars(`\`).
	Build()
