package htex

import "strings"

type Parser struct {
	tokens []Token
}

// Parse splits tokens into document blocks: paragraphs and equation lines.
func Parse(tokens []Token) (*Root, error) {
	return NewParser(tokens).Parse()
}

// ParseString tokenizes and parses text.
func ParseString(text string) (*Root, error) {
	return Parse(Tokenize(text))
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) Parse() (*Root, error) {
	root := &Root{}

	var floating []Token // tokens of the paragraph being collected

	flush := func() {
		text := strings.TrimSpace(content(floating))
		floating = nil

		if text == "" {
			return
		}

		root.Children = append(root.Children, &Paragraph{Content: text})
	}

	balance := 0 // parenthesis depth
	start := 0   // index of the first token in current line
	carried := 0 // parenthesis depth at the beginning of current line

	for pos := 0; pos < len(p.tokens); {
		token := p.tokens[pos]

		switch token.Kind {
		case OpenParen:
			balance++
		case CloseParen:
			if balance == 0 {
				return nil, syntaxError(ErrUnbalancedParenthesis, p.tokens[pos:], "unexpected \")\"")
			}

			balance--
		case Equals:
			if balance != 0 {
				break
			}

			end := Find(p.tokens, Newline, pos)
			if end < 0 {
				end = len(p.tokens)
			}

			// tokens of this line before "=" were collected as paragraph text, take them back
			floating = floating[:len(floating)-(pos-start)]
			flush()

			eq, err := ParseEquationLine(p.tokens[start:end])
			if err != nil {
				return nil, err
			}

			root.Children = append(root.Children, eq)

			pos = end + 1
			start = pos
			balance = carried
			continue
		case Newline:
			// empty line ends a paragraph, the second new line is skipped to avoid an empty paragraph
			if pos+1 < len(p.tokens) && p.tokens[pos+1].Kind == Newline {
				flush()
				pos += 2
			} else {
				floating = append(floating, token)
				pos++
			}

			start = pos
			carried = balance
			continue
		}

		floating = append(floating, token)
		pos++
	}

	flush()

	return root, nil
}
