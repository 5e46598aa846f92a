package cond

import (
	"unicode"
	"unicode/utf8"
)

type Token struct {
	Type  TokenType
	Value string
}

type TokenType int

const (
	Word TokenType = iota
	Space
	Dot
	Quote
	GreaterThan
	LessThan
	Equals
	EOF
	Unknown
)

func (token Token) String() string {
	switch token.Type {
	case Word:
		return "Word(" + token.Value + ")"
	case Space:
		return "Space"
	case Dot:
		return "Dot"
	case Quote:
		return "Quote"
	case GreaterThan:
		return "GreaterThan"
	case LessThan:
		return "LessThan"
	case Equals:
		return "Equals"
	case EOF:
		return "EOF"
	default:
		return "Unknown(" + token.Value + ")"
	}
}

const eof rune = -1

type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
}

func NewLexer(input string) *Lexer {
	lexer := &Lexer{input: input}
	lexer.readChar()
	return lexer
}

func (lexer *Lexer) readChar() {
	lexer.position = lexer.readPosition
	if lexer.readPosition >= len(lexer.input) {
		lexer.ch = eof
		return
	}
	ch, width := utf8.DecodeRuneInString(lexer.input[lexer.readPosition:])
	lexer.ch = ch
	lexer.readPosition += width
}

func (lexer *Lexer) NextToken() Token {
	switch {
	case lexer.ch == eof:
		return Token{Type: EOF}
	case lexer.ch == '"':
		lexer.readChar()
		return Token{Type: Quote, Value: `"`}
	case lexer.ch == '.':
		lexer.readChar()
		return Token{Type: Dot, Value: "."}
	case lexer.ch == '>':
		lexer.readChar()
		return Token{Type: GreaterThan, Value: ">"}
	case lexer.ch == '<':
		lexer.readChar()
		return Token{Type: LessThan, Value: "<"}
	case lexer.ch == '=':
		lexer.readChar()
		return Token{Type: Equals, Value: "="}
	case isWordChar(lexer.ch):
		return Token{Type: Word, Value: lexer.readWhile(isWordChar)}
	case unicode.IsSpace(lexer.ch):
		return Token{Type: Space, Value: lexer.readWhile(unicode.IsSpace)}
	default:
		value := string(lexer.ch)
		lexer.readChar()
		return Token{Type: Unknown, Value: value}
	}
}

// readWhile consumes the run of characters accepted by fn.
func (lexer *Lexer) readWhile(fn func(rune) bool) string {
	start := lexer.position
	for lexer.ch != eof && fn(lexer.ch) {
		lexer.readChar()
	}
	return lexer.input[start:lexer.position]
}

// isWordChar matches letters, digits and underscore in any script.
func isWordChar(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsNumber(ch)
}

func tokenize(input string) []Token {
	lexer := NewLexer(input)

	var tokens []Token

	for {
		token := lexer.NextToken()
		if token.Type == EOF {
			return append(tokens, token)
		}
		tokens = append(tokens, token)
	}
}
