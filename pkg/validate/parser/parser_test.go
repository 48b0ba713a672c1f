package parser

import (
	"errors"
	"testing"

	"sqlcheck/pkg/validate/lexer"
)

// parseQuery lexes the statement and runs it through the parser.
func parseQuery(t *testing.T, sql string) error {
	t.Helper()
	tokens, err := lexer.Tokenize(sql)
	if err != nil {
		t.Fatalf("Tokenize(%q): unexpected lexical error: %s", sql, err)
	}
	return NewParser(tokens).ParseQuery()
}

// assertValid fails the test if the statement is rejected.
func assertValid(t *testing.T, sql string) {
	t.Helper()
	if err := parseQuery(t, sql); err != nil {
		t.Errorf("ParseQuery(%q): unexpected error: %s", sql, err)
	}
}

// assertSyntaxError fails the test unless the statement is rejected with a
// *SyntaxError.
func assertSyntaxError(t *testing.T, sql string) {
	t.Helper()
	err := parseQuery(t, sql)
	if err == nil {
		t.Errorf("ParseQuery(%q): expected syntax error, got none", sql)
		return
	}
	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Errorf("ParseQuery(%q): expected *SyntaxError, got %T", sql, err)
	}
}

func TestParseQuery_EmptyInput(t *testing.T) {
	if err := NewParser(nil).ParseQuery(); err != nil {
		t.Errorf("expected empty token sequence to be accepted, got %s", err)
	}
}

func TestParseQuery_UnknownStatement(t *testing.T) {
	err := parseQuery(t, "EXPLAIN users")
	if err == nil {
		t.Fatal("expected syntax error for unknown statement")
	}

	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Expected != "a statement (SELECT, INSERT, UPDATE, DELETE)" {
		t.Errorf("unexpected Expected field: %q", synErr.Expected)
	}
}

func TestParseQuery_OptionalSemicolon(t *testing.T) {
	assertValid(t, "SELECT name FROM users")
	assertValid(t, "SELECT name FROM users;")
}

func TestParseQuery_TrailingTokens(t *testing.T) {
	err := parseQuery(t, "SELECT name FROM users; extra")
	if err == nil {
		t.Fatal("expected syntax error for trailing tokens")
	}

	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Expected != "end of query" {
		t.Errorf("expected trailing-token error, got %q", synErr.Expected)
	}
}

func TestParseQuery_ErrorAtEndOfQuery(t *testing.T) {
	err := parseQuery(t, "SELECT name FROM")
	if err == nil {
		t.Fatal("expected syntax error for truncated statement")
	}

	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Found != endOfQuery {
		t.Errorf("expected Found to be %q, got %q", endOfQuery, synErr.Found)
	}
}

func TestParseQuery_CursorNeverMovesBackward(t *testing.T) {
	tokens, err := lexer.Tokenize("SELECT name FROM users WHERE id = 1;")
	if err != nil {
		t.Fatalf("unexpected lexical error: %s", err)
	}

	p := NewParser(tokens)
	if err := p.ParseQuery(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if p.pos != len(tokens) {
		t.Errorf("expected cursor at %d after a full parse, got %d", len(tokens), p.pos)
	}
}
