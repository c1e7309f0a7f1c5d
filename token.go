package htex

// Kind is a class of a lexical token.
type Kind int

const (
	Unknown Kind = iota
	Number
	IdentifierToken
	Comma
	Equals
	Newline
	OpenParen
	CloseParen
	Dot
	PlusToken
	Minus
	Multiply
	Slash
	Backslash
	Asterisk
	Exponent
	Colon
	Arrow
	OpenBrace
	CloseBrace
	Whitespace // never emitted, blanks are kept in Token.Space of the following token
)

var kindNames = [...]string{
	Unknown:         "unknown",
	Number:          "number",
	IdentifierToken: "identifier",
	Comma:           "comma",
	Equals:          "equals",
	Newline:         "newline",
	OpenParen:       "open_paren",
	CloseParen:      "close_paren",
	Dot:             "dot",
	PlusToken:       "plus",
	Minus:           "minus",
	Multiply:        "multiply",
	Slash:           "slash",
	Backslash:       "backslash",
	Asterisk:        "asterisk",
	Exponent:        "exponent",
	Colon:           "colon",
	Arrow:           "arrow",
	OpenBrace:       "open_brace",
	CloseBrace:      "close_brace",
	Whitespace:      "whitespace",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Token is a classified piece of input text.
type Token struct {
	Kind   Kind
	Text   string
	Offset int    // rune offset of the first character in the input
	Space  string // blanks dropped right before the token
}

// operators maps single character punctuation to its token kind
var operators = map[rune]Kind{
	'^':  Exponent,
	'-':  Minus,
	'{':  OpenBrace,
	'}':  CloseBrace,
	',':  Comma,
	':':  Colon,
	'+':  PlusToken,
	'/':  Slash,
	'\\': Backslash,
	'*':  Asterisk,
	'(':  OpenParen,
	')':  CloseParen,
	'.':  Dot,
	'=':  Equals,
}
