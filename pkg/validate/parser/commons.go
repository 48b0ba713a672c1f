package parser

import (
	"fmt"

	"sqlcheck/pkg/validate/lexer"
)

// endOfQuery is what a SyntaxError reports when the token stream ran out.
const endOfQuery = "end of query"

// SyntaxError reports the first unmet grammar expectation. Expected names
// the token kind or literal the rule required; Found describes the token
// actually seen, or end of query when the stream was exhausted.
type SyntaxError struct {
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

// describe renders a token for error messages.
func describe(tok lexer.Token) string {
	return fmt.Sprintf("%s %q", tok.Type, tok.Value)
}

// current returns the token under the cursor, or false when the cursor has
// run past the end of the sequence.
func (p *Parser) current() (lexer.Token, bool) {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos], true
	}
	return lexer.Token{}, false
}

// advance moves the cursor forward by one token. It never moves backward.
func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) currentIs(t lexer.TokenType) bool {
	tok, ok := p.current()
	return ok && tok.Type == t
}

func (p *Parser) currentValueIs(value string) bool {
	tok, ok := p.current()
	return ok && tok.Value == value
}

// expect consumes the current token if it has the given type, and fails
// otherwise.
func (p *Parser) expect(t lexer.TokenType) error {
	tok, ok := p.current()
	if !ok {
		return &SyntaxError{Expected: t.String(), Found: endOfQuery}
	}
	if tok.Type != t {
		return &SyntaxError{Expected: t.String(), Found: describe(tok)}
	}
	p.advance()
	return nil
}

// expectValue consumes the current token if it has the given type and exact
// value, and fails otherwise. Token values are already upper-cased by the
// lexer, so the comparison is case-insensitive with respect to the input.
func (p *Parser) expectValue(t lexer.TokenType, value string) error {
	tok, ok := p.current()
	if !ok {
		return &SyntaxError{Expected: fmt.Sprintf("%q", value), Found: endOfQuery}
	}
	if tok.Type != t || tok.Value != value {
		return &SyntaxError{Expected: fmt.Sprintf("%q", value), Found: describe(tok)}
	}
	p.advance()
	return nil
}

// parseQualifiedIdentifier matches Identifier [ '.' Identifier ].
func (p *Parser) parseQualifiedIdentifier() error {
	if err := p.expect(lexer.IDENTIFIER); err != nil {
		return err
	}
	if p.currentIs(lexer.DOT) {
		p.advance()
		return p.expect(lexer.IDENTIFIER)
	}
	return nil
}

// parseTableList matches TableAliasItem { ',' TableAliasItem }.
func (p *Parser) parseTableList() error {
	if err := p.parseTableAliasItem(); err != nil {
		return err
	}
	for p.currentIs(lexer.COMMA) {
		p.advance()
		if err := p.parseTableAliasItem(); err != nil {
			return err
		}
	}
	return nil
}

// parseTableAliasItem matches Identifier [ [AS] Identifier ]. A bare
// identifier following the table name is an implicit alias.
func (p *Parser) parseTableAliasItem() error {
	if err := p.expect(lexer.IDENTIFIER); err != nil {
		return err
	}
	if p.currentValueIs("AS") {
		p.advance()
		return p.expect(lexer.IDENTIFIER)
	}
	if p.currentIs(lexer.IDENTIFIER) {
		p.advance()
	}
	return nil
}

// parseColumnList matches QualifiedId { ',' QualifiedId }. Qualification is
// optional, so plain identifier lists (as in INSERT column lists) match too.
func (p *Parser) parseColumnList() error {
	if err := p.parseQualifiedIdentifier(); err != nil {
		return err
	}
	for p.currentIs(lexer.COMMA) {
		p.advance()
		if err := p.parseQualifiedIdentifier(); err != nil {
			return err
		}
	}
	return nil
}

// parseValueList matches Value { ',' Value }.
func (p *Parser) parseValueList() error {
	if err := p.parseValue(); err != nil {
		return err
	}
	for p.currentIs(lexer.COMMA) {
		p.advance()
		if err := p.parseValue(); err != nil {
			return err
		}
	}
	return nil
}

// parseAssignmentList matches Identifier '=' Value { ',' Identifier '=' Value }.
func (p *Parser) parseAssignmentList() error {
	if err := p.parseAssignment(); err != nil {
		return err
	}
	for p.currentIs(lexer.COMMA) {
		p.advance()
		if err := p.parseAssignment(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseAssignment() error {
	if err := p.expect(lexer.IDENTIFIER); err != nil {
		return err
	}
	if err := p.expectValue(lexer.OPERATOR, "="); err != nil {
		return err
	}
	return p.parseValue()
}

// parseCondition matches Comparison { (AND|OR) Comparison }.
func (p *Parser) parseCondition() error {
	if err := p.parseComparison(); err != nil {
		return err
	}
	for p.currentValueIs("AND") || p.currentValueIs("OR") {
		p.advance()
		if err := p.parseComparison(); err != nil {
			return err
		}
	}
	return nil
}

// parseComparison matches Value Operator Value. Any operator token is
// accepted, not just comparison operators.
func (p *Parser) parseComparison() error {
	if err := p.parseValue(); err != nil {
		return err
	}
	if err := p.expect(lexer.OPERATOR); err != nil {
		return err
	}
	return p.parseValue()
}

// parseValue matches NUMBER, STRING, or a qualified identifier.
func (p *Parser) parseValue() error {
	tok, ok := p.current()
	if !ok {
		return &SyntaxError{
			Expected: "a value (identifier, number, or string)",
			Found:    endOfQuery,
		}
	}
	switch tok.Type {
	case lexer.NUMBER, lexer.STRING:
		p.advance()
		return nil
	case lexer.IDENTIFIER:
		return p.parseQualifiedIdentifier()
	default:
		return &SyntaxError{
			Expected: "a value (identifier, number, or string)",
			Found:    describe(tok),
		}
	}
}
