// Package ansi provides the base ANSI SQL dialect. It is the fallback for
// documents with no explicit dialect, and other dialects extend its keyword
// table rather than redefining it.
package ansi

import "github.com/sqlcaps/sqlcaps/pkg/dialect"

func init() {
	dialect.Register(ANSI)
}

// ANSI is the base ANSI SQL dialect.
var ANSI = dialect.NewDialect("ansi").
	Keywords(Keywords...).
	Build()

// Keywords is the ANSI reserved-word table. Exported so vendor dialects can
// compose on top of it.
var Keywords = []string{
	// Statements
	"SELECT", "INSERT", "UPDATE", "DELETE", "MERGE",
	"CREATE", "ALTER", "DROP", "TRUNCATE",
	"GRANT", "REVOKE",
	"BEGIN", "COMMIT", "ROLLBACK", "SAVEPOINT",

	// Clauses
	"FROM", "WHERE", "GROUP", "BY", "HAVING", "ORDER",
	"LIMIT", "OFFSET", "FETCH", "FIRST", "NEXT", "ONLY", "ROWS", "ROW",
	"INTO", "VALUES", "SET", "RETURNING",
	"UNION", "INTERSECT", "EXCEPT", "ALL", "DISTINCT",
	"WITH", "RECURSIVE", "AS",
	"WINDOW", "OVER", "PARTITION", "RANGE", "PRECEDING", "FOLLOWING",
	"CURRENT", "UNBOUNDED",

	// Joins
	"JOIN", "INNER", "LEFT", "RIGHT", "FULL", "OUTER", "CROSS",
	"NATURAL", "ON", "USING", "LATERAL",

	// Predicates and operators
	"AND", "OR", "NOT", "IS", "NULL", "IN", "BETWEEN", "LIKE", "ESCAPE",
	"EXISTS", "ANY", "SOME", "UNIQUE",
	"CASE", "WHEN", "THEN", "ELSE", "END",
	"CAST", "COALESCE", "NULLIF",
	"TRUE", "FALSE", "UNKNOWN",

	// Ordering
	"ASC", "DESC", "NULLS", "LAST",
	"COLLATE",

	// DDL objects and constraints
	"TABLE", "VIEW", "INDEX", "SEQUENCE", "SCHEMA", "DATABASE",
	"TRIGGER", "PROCEDURE", "FUNCTION", "RETURNS",
	"COLUMN", "CONSTRAINT", "PRIMARY", "KEY", "FOREIGN", "REFERENCES",
	"CHECK", "DEFAULT", "CASCADE", "RESTRICT",
	"ADD", "RENAME", "TO", "IF",

	// Types
	"INT", "INTEGER", "SMALLINT", "BIGINT",
	"DECIMAL", "NUMERIC", "FLOAT", "REAL", "DOUBLE", "PRECISION",
	"CHAR", "CHARACTER", "VARCHAR", "VARYING", "TEXT",
	"DATE", "TIME", "TIMESTAMP", "INTERVAL", "ZONE",
	"BOOLEAN", "BINARY", "BLOB", "CLOB",

	// Transactions and sessions
	"TRANSACTION", "ISOLATION", "LEVEL", "READ", "WRITE",
	"DECLARE", "CURSOR", "OPEN", "CLOSE",
	"EXECUTE", "PREPARE", "DEALLOCATE",
	"EXPLAIN", "VACUUM", "ANALYZE",
	"VALUE", "FOR", "OF", "BOTH", "LEADING", "TRAILING",
}
