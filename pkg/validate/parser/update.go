package parser

import (
	"sqlcheck/pkg/validate/lexer"
)

// parseUpdateStatement matches
//
//	UPDATE TableAliasItem SET AssignList [ WHERE Condition ]
func (p *Parser) parseUpdateStatement() error {
	if err := p.expectValue(lexer.KEYWORD, "UPDATE"); err != nil {
		return err
	}
	if err := p.parseTableAliasItem(); err != nil {
		return err
	}
	if err := p.expectValue(lexer.KEYWORD, "SET"); err != nil {
		return err
	}
	if err := p.parseAssignmentList(); err != nil {
		return err
	}

	if p.currentValueIs("WHERE") {
		p.advance()
		return p.parseCondition()
	}
	return nil
}
