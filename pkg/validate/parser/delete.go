package parser

import (
	"sqlcheck/pkg/validate/lexer"
)

// parseDeleteStatement matches
//
//	DELETE FROM TableAliasItem [ WHERE Condition ]
func (p *Parser) parseDeleteStatement() error {
	if err := p.expectValue(lexer.KEYWORD, "DELETE"); err != nil {
		return err
	}
	if err := p.expectValue(lexer.KEYWORD, "FROM"); err != nil {
		return err
	}
	if err := p.parseTableAliasItem(); err != nil {
		return err
	}

	if p.currentValueIs("WHERE") {
		p.advance()
		return p.parseCondition()
	}
	return nil
}
