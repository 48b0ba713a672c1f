package validate

import (
	"errors"
	"fmt"

	"sqlcheck/pkg/validate/lexer"
	"sqlcheck/pkg/validate/parser"
)

// SuccessMessage confirms a structurally valid query.
const SuccessMessage = "query structure is fully valid"

// Category classifies a validation failure by which stage detected it and
// what the caller can do about it.
type Category int

const (
	// CategoryLexical means some run of input characters matched none of
	// the dialect's token patterns. Fixable by correcting the query text.
	CategoryLexical Category = iota

	// CategorySyntax means the token sequence violated the statement
	// grammar. Fixable by correcting the query structure.
	CategorySyntax

	// CategoryInternal means a failure neither stage anticipated. It is
	// never expected in normal operation and signals a bug.
	CategoryInternal
)

var categoryNames = map[Category]string{
	CategoryLexical:  "Lexical Error",
	CategorySyntax:   "Syntax Error",
	CategoryInternal: "Internal Error",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown Error"
}

// Outcome is the validation result exposed at the core boundary: either a
// success with a confirmation message, or a categorized failure describing
// where and why the input is malformed.
type Outcome struct {
	Valid    bool
	Category Category
	Message  string
}

// Validate runs the two-stage pipeline over a raw query string. It is pure:
// the same input always yields the same outcome, and no state survives the
// call. Concurrent calls are independent.
func Validate(query string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{
				Valid:    false,
				Category: CategoryInternal,
				Message:  fmt.Sprintf("unexpected failure: %v", r),
			}
		}
	}()

	tokens, err := lexer.Tokenize(query)
	if err != nil {
		return failure(err)
	}
	if err := parser.NewParser(tokens).ParseQuery(); err != nil {
		return failure(err)
	}
	return Outcome{Valid: true, Message: SuccessMessage}
}

// failure maps a pipeline error to a categorized outcome. Errors that are
// neither lexical nor syntactic fall through to the internal category.
func failure(err error) Outcome {
	var lexErr *lexer.LexicalError
	if errors.As(err, &lexErr) {
		return Outcome{Valid: false, Category: CategoryLexical, Message: err.Error()}
	}

	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) {
		return Outcome{Valid: false, Category: CategorySyntax, Message: err.Error()}
	}

	return Outcome{Valid: false, Category: CategoryInternal, Message: err.Error()}
}
