package parser

import (
	"sqlcheck/pkg/validate/lexer"
)

// parseInsertStatement matches
//
//	INSERT INTO Identifier '(' ColList ')' VALUES '(' ValueList ')'
func (p *Parser) parseInsertStatement() error {
	if err := p.expectValue(lexer.KEYWORD, "INSERT"); err != nil {
		return err
	}
	if err := p.expectValue(lexer.KEYWORD, "INTO"); err != nil {
		return err
	}
	if err := p.expect(lexer.IDENTIFIER); err != nil {
		return err
	}

	if err := p.expectValue(lexer.PARENTHESIS, "("); err != nil {
		return err
	}
	if err := p.parseColumnList(); err != nil {
		return err
	}
	if err := p.expectValue(lexer.PARENTHESIS, ")"); err != nil {
		return err
	}

	if err := p.expectValue(lexer.KEYWORD, "VALUES"); err != nil {
		return err
	}
	if err := p.expectValue(lexer.PARENTHESIS, "("); err != nil {
		return err
	}
	if err := p.parseValueList(); err != nil {
		return err
	}
	return p.expectValue(lexer.PARENTHESIS, ")")
}
