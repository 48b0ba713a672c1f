package parser

import (
	"sqlcheck/pkg/validate/lexer"
)

// Parser walks a finite token sequence with a forward-only cursor and
// validates it against the statement grammar. No syntax tree is retained;
// a nil return from ParseQuery is the acceptance signal.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// NewParser creates a Parser over the given token sequence.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseQuery validates a single statement, an optional trailing semicolon,
// and nothing else. Any leftover tokens after the statement are a fatal
// error. An empty token sequence is accepted.
func (p *Parser) ParseQuery() error {
	tok, ok := p.current()
	if !ok {
		return nil
	}

	var err error
	switch tok.Value {
	case "SELECT":
		err = p.parseSelectStatement()
	case "INSERT":
		err = p.parseInsertStatement()
	case "UPDATE":
		err = p.parseUpdateStatement()
	case "DELETE":
		err = p.parseDeleteStatement()
	default:
		return &SyntaxError{
			Expected: "a statement (SELECT, INSERT, UPDATE, DELETE)",
			Found:    describe(tok),
		}
	}
	if err != nil {
		return err
	}

	if p.currentIs(lexer.SEMICOLON) {
		p.advance()
	}
	if tok, ok := p.current(); ok {
		return &SyntaxError{Expected: "end of query", Found: describe(tok)}
	}
	return nil
}
