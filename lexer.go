package rtasm

import (
	"strings"
	"unicode"
)

// TokenType is the kind of a token in an invocation line.
type TokenType int

const (
	TOKEN_EOF TokenType = iota
	TOKEN_IDENT
	TOKEN_NUMBER
	TOKEN_LPAREN
	TOKEN_RPAREN
	TOKEN_COMMA
	TOKEN_COLON
	TOKEN_SEMICOLON
	TOKEN_ILLEGAL
)

func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "end of line"
	case TOKEN_IDENT:
		return "identifier"
	case TOKEN_NUMBER:
		return "number"
	case TOKEN_LPAREN:
		return "'('"
	case TOKEN_RPAREN:
		return "')'"
	case TOKEN_COMMA:
		return "','"
	case TOKEN_COLON:
		return "':'"
	case TOKEN_SEMICOLON:
		return "';'"
	}
	return "illegal character"
}

// Token is one lexeme with its column (1-based).
type Token struct {
	Type  TokenType
	Value string
	Col   int
}

// Lexer splits one line of invocation syntax into tokens. Comments start
// with // or # and run to the end of the line.
type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekAhead(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() {
	if l.pos < len(l.input) {
		l.pos++
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || unicode.IsLetter(rune(ch))
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || unicode.IsDigit(rune(ch))
}

func isNumberChar(ch byte) bool {
	return unicode.IsDigit(rune(ch)) || strings.IndexByte("xXabcdefABCDEF_", ch) >= 0
}

// NextToken returns the next token, TOKEN_EOF at the end of the line or at
// the start of a comment.
func (l *Lexer) NextToken() Token {
	for l.pos < len(l.input) && unicode.IsSpace(rune(l.peek())) {
		l.advance()
	}
	col := l.pos + 1
	ch := l.peek()
	switch {
	case ch == 0, ch == '#', ch == '/' && l.peekAhead(1) == '/':
		l.pos = len(l.input)
		return Token{Type: TOKEN_EOF, Col: col}
	case isIdentStart(ch):
		start := l.pos
		for isIdentChar(l.peek()) {
			l.advance()
		}
		return Token{Type: TOKEN_IDENT, Value: l.input[start:l.pos], Col: col}
	case unicode.IsDigit(rune(ch)), (ch == '-' || ch == '+') && unicode.IsDigit(rune(l.peekAhead(1))):
		start := l.pos
		l.advance()
		for isNumberChar(l.peek()) {
			l.advance()
		}
		return Token{Type: TOKEN_NUMBER, Value: l.input[start:l.pos], Col: col}
	}
	l.advance()
	switch ch {
	case '(':
		return Token{Type: TOKEN_LPAREN, Value: "(", Col: col}
	case ')':
		return Token{Type: TOKEN_RPAREN, Value: ")", Col: col}
	case ',':
		return Token{Type: TOKEN_COMMA, Value: ",", Col: col}
	case ':':
		return Token{Type: TOKEN_COLON, Value: ":", Col: col}
	case ';':
		return Token{Type: TOKEN_SEMICOLON, Value: ";", Col: col}
	}
	return Token{Type: TOKEN_ILLEGAL, Value: string(ch), Col: col}
}

// Tokens lexes the whole line, ending with TOKEN_EOF.
func (l *Lexer) Tokens() []Token {
	var toks []Token
	for {
		t := l.NextToken()
		toks = append(toks, t)
		if t.Type == TOKEN_EOF {
			return toks
		}
	}
}
