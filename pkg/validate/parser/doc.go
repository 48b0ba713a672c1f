// Package parser validates token sequences against the dialect's statement
// grammar.
//
// The parser is a recursive-descent acceptor: each grammar rule is a method
// that consumes the tokens it expects, calling sub-rule methods for nested
// constructs. There is no backtracking and no tree construction; the first
// unmet expectation anywhere in the grammar aborts the whole parse with a
// *SyntaxError naming what was expected and what was found. Leftover tokens
// after a complete statement are also fatal.
//
// # Grammar
//
//	Query         ::= Statement [ ';' ]
//	Statement     ::= SelectStmt | InsertStmt | UpdateStmt | DeleteStmt
//	SelectStmt    ::= SELECT SelList FROM TableList
//	                  [ WHERE Condition ] [ GROUP BY ColList ]
//	                  [ ORDER BY ColList ] [ LIMIT Value ]
//	InsertStmt    ::= INSERT INTO Identifier '(' ColList ')' VALUES '(' ValueList ')'
//	UpdateStmt    ::= UPDATE TableAliasItem SET AssignList [ WHERE Condition ]
//	DeleteStmt    ::= DELETE FROM TableAliasItem [ WHERE Condition ]
//
// SelectStmt's optional clauses are dispatched by inspecting the current
// token's value and accepted in any relative order and subset; the loop
// terminates without error at the first unrecognized token. A "*" token,
// although lexed as an operator, is read as the wildcard in the select list
// and inside aggregate calls.
package parser
