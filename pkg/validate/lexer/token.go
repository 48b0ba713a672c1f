package lexer

// TokenType classifies a lexical unit produced by Tokenize.
type TokenType int

const (
	KEYWORD TokenType = iota
	FUNCTION
	OPERATOR
	STRING
	NUMBER
	PARENTHESIS
	COMMA
	SEMICOLON
	DOT
	WILDCARD
	IDENTIFIER
)

var tokenTypeNames = map[TokenType]string{
	KEYWORD:     "KEYWORD",
	FUNCTION:    "FUNCTION",
	OPERATOR:    "OPERATOR",
	STRING:      "STRING",
	NUMBER:      "NUMBER",
	PARENTHESIS: "PARENTHESIS",
	COMMA:       "COMMA",
	SEMICOLON:   "SEMICOLON",
	DOT:         "DOT",
	WILDCARD:    "WILDCARD",
	IDENTIFIER:  "IDENTIFIER",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is an immutable (value, type) pair. Value is upper-cased so keyword
// comparison in the parser is case-insensitive. Position is the byte offset
// of the token in the trimmed input.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}
