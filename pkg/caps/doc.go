// Package caps implements the context-aware keyword-capitalization engine.
//
// Given a document and a token span, the engine decides whether the token is
// a reserved keyword of the document's active dialect that should be
// rewritten in uppercase. Identifiers, string literals and comments are left
// untouched; a user-configured blacklist exempts individual words. A string
// literal introduced by one of the dialect's eval prefixes (e.g. EXECUTE
// 'select 1') is treated as code.
//
// Two drivers are built on the engine: Trigger handles the incremental
// as-characters-arrive path, and the CapitalizeRegion/CapitalizeBuffer
// methods scan a range token by token.
//
// The host editing surface is abstracted behind the Document interface;
// internal/document provides an in-memory implementation.
package caps
