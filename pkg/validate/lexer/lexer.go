package lexer

import (
	"fmt"
	"strings"
)

// snippetLen is how much unconsumed input a LexicalError reports.
const snippetLen = 10

// LexicalError reports input that matches none of the recognized patterns.
// Position is the byte offset in the trimmed input; Snippet is a short
// excerpt of the unconsumed text starting there.
type LexicalError struct {
	Position int
	Snippet  string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("unknown token starting at position %d near %q", e.Position, e.Snippet)
}

// keywords are the reserved words of the dialect, tried before the generic
// identifier pattern. GROUP BY and ORDER BY lex as two keyword tokens each.
var keywords = []string{
	"SELECT", "FROM", "WHERE", "INSERT", "INTO", "VALUES", "UPDATE", "SET",
	"DELETE", "AND", "OR", "NOT", "AS", "JOIN", "ON", "GROUP", "BY", "ORDER",
	"LIMIT", "OFFSET",
}

// functions are the built-in aggregate names.
var functions = []string{"COUNT", "SUM", "AVG", "MIN", "MAX"}

// operators are tried longest-match-first so that ">=" wins over ">".
// "*" is captured here, never by the wildcard matcher below; the parser
// decides by position whether it means multiply or wildcard.
var operators = []string{">=", "<=", "!=", "==", "=", ">", "<", "+", "-", "*", "/"}

// matcher pairs a pattern function with the token type it produces. A
// matcher returns the length of the matched prefix, or 0 for no match.
type matcher struct {
	match func(l *Lexer) int
	typ   TokenType
	skip  bool
}

// matchers is the fixed priority order of the dialect. At each offset the
// first matcher that consumes a non-empty prefix wins.
var matchers = []matcher{
	{(*Lexer).matchKeyword, KEYWORD, false},
	{(*Lexer).matchFunction, FUNCTION, false},
	{(*Lexer).matchOperator, OPERATOR, false},
	{(*Lexer).matchString, STRING, false},
	{(*Lexer).matchNumber, NUMBER, false},
	{(*Lexer).matchParen, PARENTHESIS, false},
	{(*Lexer).matchComma, COMMA, false},
	{(*Lexer).matchSemicolon, SEMICOLON, false},
	{(*Lexer).matchDot, DOT, false},
	{(*Lexer).matchWildcard, WILDCARD, false},
	{(*Lexer).matchIdentifier, IDENTIFIER, false},
	{(*Lexer).matchWhitespace, 0, true},
}

// Lexer scans an SQL string into tokens. The input is trimmed and
// upper-cased during construction so keyword matching is case-insensitive.
type Lexer struct {
	input  string
	pos    int
	length int
}

// NewLexer creates a Lexer over the given input string.
func NewLexer(input string) *Lexer {
	processed := strings.ToUpper(strings.TrimSpace(input))
	return &Lexer{
		input:  processed,
		pos:    0,
		length: len(processed),
	}
}

// Tokenize lexes the whole query and returns its token sequence in input
// order. It fails with a *LexicalError at the first offset where no pattern
// matches.
func Tokenize(query string) ([]Token, error) {
	return NewLexer(query).Tokenize()
}

// Tokenize consumes the remaining input and returns the token sequence.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for l.pos < l.length {
		matched := false
		for _, m := range matchers {
			n := m.match(l)
			if n == 0 {
				continue
			}
			if !m.skip {
				tokens = append(tokens, Token{
					Type:     m.typ,
					Value:    l.input[l.pos : l.pos+n],
					Position: l.pos,
				})
			}
			l.pos += n
			matched = true
			break
		}
		if !matched {
			return nil, &LexicalError{Position: l.pos, Snippet: l.snippet()}
		}
	}

	return tokens, nil
}

// snippet extracts the next few characters of unconsumed input for error
// reporting, with newlines flattened to spaces.
func (l *Lexer) snippet() string {
	end := l.pos + snippetLen
	if end > l.length {
		end = l.length
	}
	return strings.ReplaceAll(l.input[l.pos:end], "\n", " ")
}

// matchWord matches any entry of words as a whole word: the entry must
// prefix the remaining input and must not be followed by an identifier
// character.
func (l *Lexer) matchWord(words []string) int {
	rest := l.input[l.pos:]
	for _, w := range words {
		if !strings.HasPrefix(rest, w) {
			continue
		}
		if len(w) < len(rest) && isWordChar(rest[len(w)]) {
			continue
		}
		return len(w)
	}
	return 0
}

func (l *Lexer) matchKeyword() int {
	return l.matchWord(keywords)
}

func (l *Lexer) matchFunction() int {
	return l.matchWord(functions)
}

func (l *Lexer) matchOperator() int {
	rest := l.input[l.pos:]
	for _, op := range operators {
		if strings.HasPrefix(rest, op) {
			return len(op)
		}
	}
	return 0
}

// matchString matches a single-quoted literal with no escape handling. An
// unterminated quote matches nothing and surfaces as a lexical error.
func (l *Lexer) matchString() int {
	if l.input[l.pos] != '\'' {
		return 0
	}
	end := strings.IndexByte(l.input[l.pos+1:], '\'')
	if end < 0 {
		return 0
	}
	return end + 2
}

// matchNumber matches an integer or decimal literal. The match must end on
// a word boundary: if the fractional part runs into a letter the fraction
// is dropped, and if the integer part does the whole match fails.
func (l *Lexer) matchNumber() int {
	n := l.countDigits(l.pos)
	if n == 0 {
		return 0
	}

	intEnd := l.pos + n
	if frac := l.fractionLen(intEnd); frac > 0 && l.boundaryAt(intEnd+frac) {
		return n + frac
	}
	if l.boundaryAt(intEnd) {
		return n
	}
	return 0
}

func (l *Lexer) countDigits(from int) int {
	i := from
	for i < l.length && isDigit(l.input[i]) {
		i++
	}
	return i - from
}

func (l *Lexer) fractionLen(from int) int {
	if from >= l.length || l.input[from] != '.' {
		return 0
	}
	digits := l.countDigits(from + 1)
	if digits == 0 {
		return 0
	}
	return 1 + digits
}

func (l *Lexer) boundaryAt(pos int) bool {
	return pos >= l.length || !isWordChar(l.input[pos])
}

func (l *Lexer) matchParen() int {
	if ch := l.input[l.pos]; ch == '(' || ch == ')' {
		return 1
	}
	return 0
}

func (l *Lexer) matchComma() int {
	return l.matchByte(',')
}

func (l *Lexer) matchSemicolon() int {
	return l.matchByte(';')
}

func (l *Lexer) matchDot() int {
	return l.matchByte('.')
}

// matchWildcard is never reached: "*" is consumed by the operator matcher
// first. It stays in the priority list so the matcher order states the full
// pattern set of the dialect.
func (l *Lexer) matchWildcard() int {
	return l.matchByte('*')
}

func (l *Lexer) matchIdentifier() int {
	ch := l.input[l.pos]
	if !isLetter(ch) && ch != '_' {
		return 0
	}
	i := l.pos + 1
	for i < l.length && isWordChar(l.input[i]) {
		i++
	}
	return i - l.pos
}

func (l *Lexer) matchWhitespace() int {
	i := l.pos
	for i < l.length && isSpace(l.input[i]) {
		i++
	}
	return i - l.pos
}

func (l *Lexer) matchByte(b byte) int {
	if l.input[l.pos] == b {
		return 1
	}
	return 0
}

// The character classes are ASCII-only, matched byte by byte. Bytes of a
// multi-byte UTF-8 sequence fall outside every class, so non-ASCII input
// matches no pattern and surfaces as a lexical error.
func isWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

func isLetter(ch byte) bool {
	return ('A' <= ch && ch <= 'Z') || ('a' <= ch && ch <= 'z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
