// Package validate checks whether a text string conforms to the grammar of
// a constrained SQL dialect (SELECT/INSERT/UPDATE/DELETE with common
// clauses).
//
// Validate is the sole entry point. It runs lexical tokenization followed
// by recursive-descent syntactic validation inside a single fault boundary
// and returns an Outcome: success, or a categorized failure (lexical,
// syntax, or internal) with a human-readable message locating the problem.
//
// The package is a pure syntax acceptor. It does not execute queries, build
// a reusable syntax tree, or check that referenced tables and columns
// exist, and it fails fast at the first violation with no recovery.
package validate
