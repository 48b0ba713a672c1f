// Package lexer implements the tokenizer for the validator's SQL dialect.
//
// Tokenize converts a raw SQL string into an ordered sequence of typed
// tokens. The input is trimmed and upper-cased during construction so that
// keyword matching is case-insensitive; original casing of identifiers and
// string literals is not preserved, which is acceptable because the
// validator only checks structure and never echoes names back.
//
// # Pattern priority
//
// At each offset a fixed, priority-ordered list of matchers is tried and the
// first one that consumes a non-empty prefix wins: reserved keywords, then
// aggregate function names, operators (longest first), single-quoted string
// literals, numeric literals, parentheses/comma/semicolon, the dot of
// qualified references, the wildcard, generic identifiers, and finally
// whitespace, which produces no token. Because the operator list is tried
// before the wildcard pattern, a bare "*" always lexes as an OPERATOR token;
// the parser interprets it as the wildcard by position.
//
// # Errors
//
// If no pattern matches at the current offset, Tokenize fails immediately
// with a *LexicalError carrying the offset and a short snippet of the
// unconsumed input.
package lexer
