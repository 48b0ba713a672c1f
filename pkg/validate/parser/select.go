package parser

import (
	"sqlcheck/pkg/validate/lexer"
)

// parseSelectStatement matches
//
//	SELECT SelList FROM TableList
//	  [ WHERE Condition ] [ GROUP BY ColList ] [ ORDER BY ColList ] [ LIMIT Value ]
//
// The optional clauses are recognized in any relative order and any subset;
// the loop only stops at a token that starts none of them.
func (p *Parser) parseSelectStatement() error {
	if err := p.expectValue(lexer.KEYWORD, "SELECT"); err != nil {
		return err
	}

	if p.currentValueIs("*") {
		// Lexed as an OPERATOR token; in this position it is the wildcard.
		p.advance()
	} else {
		if err := p.parseSelectItem(); err != nil {
			return err
		}
		for p.currentIs(lexer.COMMA) {
			p.advance()
			if err := p.parseSelectItem(); err != nil {
				return err
			}
		}
	}

	if err := p.expectValue(lexer.KEYWORD, "FROM"); err != nil {
		return err
	}
	if err := p.parseTableList(); err != nil {
		return err
	}

	for {
		tok, ok := p.current()
		if !ok {
			return nil
		}
		switch tok.Value {
		case "WHERE":
			p.advance()
			if err := p.parseCondition(); err != nil {
				return err
			}
		case "GROUP":
			p.advance()
			if err := p.expectValue(lexer.KEYWORD, "BY"); err != nil {
				return err
			}
			if err := p.parseColumnList(); err != nil {
				return err
			}
		case "ORDER":
			p.advance()
			if err := p.expectValue(lexer.KEYWORD, "BY"); err != nil {
				return err
			}
			if err := p.parseColumnList(); err != nil {
				return err
			}
		case "LIMIT":
			p.advance()
			if err := p.parseValue(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// parseSelectItem matches a column reference or an aggregate call, each
// with an optional [AS] alias. Two consecutive identifiers always read as
// name plus implicit alias.
func (p *Parser) parseSelectItem() error {
	switch {
	case p.currentIs(lexer.FUNCTION):
		p.advance()
		if err := p.expectValue(lexer.PARENTHESIS, "("); err != nil {
			return err
		}
		if err := p.parseAggregateArgument(); err != nil {
			return err
		}
		if err := p.expectValue(lexer.PARENTHESIS, ")"); err != nil {
			return err
		}
	case p.currentIs(lexer.IDENTIFIER):
		if err := p.parseQualifiedIdentifier(); err != nil {
			return err
		}
	default:
		return p.selectItemError("column name, function, or '*' in select list")
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

// parseAggregateArgument matches '*' or a qualified identifier between the
// parentheses of an aggregate call.
func (p *Parser) parseAggregateArgument() error {
	if p.currentValueIs("*") {
		p.advance()
		return nil
	}
	if p.currentIs(lexer.IDENTIFIER) {
		return p.parseQualifiedIdentifier()
	}
	return p.selectItemError("column name or '*' inside function")
}

func (p *Parser) selectItemError(expected string) error {
	tok, ok := p.current()
	if !ok {
		return &SyntaxError{Expected: expected, Found: endOfQuery}
	}
	return &SyntaxError{Expected: expected, Found: describe(tok)}
}
