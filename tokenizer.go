package htex

import (
	"io"
	"strings"
)

type Tokenizer struct {
	input []rune
	pos   int
}

func NewTokenizer(text string) *Tokenizer {
	return &Tokenizer{input: []rune(text)}
}

// Tokenize splits text into tokens. It never fails: characters which do not start any token are dropped.
func Tokenize(text string) []Token {
	var tokens []Token

	l := NewTokenizer(text)
	for {
		t, err := l.Token()
		if err != nil {
			return tokens
		}

		tokens = append(tokens, t)
	}
}

// Token reads next token, it returns io.EOF when input is exhausted.
func (l *Tokenizer) Token() (Token, error) {
	var space strings.Builder

	for l.pos < len(l.input) {
		start := l.pos
		char := l.input[l.pos]

		if isBlank(char) {
			space.WriteRune(char)
			l.pos++
			continue
		}

		kind, text, ok := l.match()
		if !ok {
			l.pos++
			continue
		}

		return Token{Kind: kind, Text: text, Offset: start, Space: space.String()}, nil
	}

	return Token{}, io.EOF
}

// match reads a token at current position, it returns false if character can not start any token
func (l *Tokenizer) match() (Kind, string, bool) {
	char := l.input[l.pos]

	if char == '\n' {
		l.pos++
		return Newline, "\n", true
	}

	if char == '-' && l.peek(1) == '>' {
		l.pos += 2
		return Arrow, "->", true
	}

	if kind, ok := operators[char]; ok {
		l.pos++
		return kind, string(char), true
	}

	if char == 'x' && l.multiply() {
		l.pos++
		return Multiply, "x", true
	}

	if isDigit(char) {
		return Number, l.number(), true
	}

	if isIdentifierStart(char) {
		return IdentifierToken, l.identifier(), true
	}

	return Unknown, "", false
}

// multiply checks if "x" at current position is used as multiplication sign (ie. "2 x 3" or "a x b")
func (l *Tokenizer) multiply() bool {
	if l.pos == 0 || l.pos+1 >= len(l.input) {
		return false
	}

	before := l.input[l.pos-1]
	after := l.input[l.pos+1]

	return (before == ' ' || isIdentifierChar(before)) && (after == ' ' || isIdentifierStart(after))
}

// number reads digits with optional fraction part, dot without following digit is not a part of the number
func (l *Tokenizer) number() string {
	start := l.pos
	l.digits()

	if l.peek(0) == '.' && isDigit(l.peek(1)) {
		l.pos++
		l.digits()
	}

	return string(l.input[start:l.pos])
}

func (l *Tokenizer) digits() {
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
}

func (l *Tokenizer) identifier() string {
	start := l.pos
	for l.pos < len(l.input) && isIdentifierChar(l.input[l.pos]) {
		l.pos++
	}

	return string(l.input[start:l.pos])
}

// peek returns character at offset n from current position or zero if it's beyond input
func (l *Tokenizer) peek(n int) rune {
	if l.pos+n >= len(l.input) {
		return 0
	}

	return l.input[l.pos+n]
}

// isBlank returns true for whitespace which is dropped from token stream (all except new line)
func isBlank(r rune) bool {
	switch r {
	case ' ', '\t', '\r':
		return true
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isIdentifierStart returns true for ASCII letters, underscore and german umlauts
func isIdentifierStart(r rune) bool {
	switch r {
	case '_', 'ä', 'ö', 'ü', 'Ä', 'Ö', 'Ü', 'ß':
		return true
	default:
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
	}
}

func isIdentifierChar(r rune) bool {
	return isIdentifierStart(r) || isDigit(r)
}
