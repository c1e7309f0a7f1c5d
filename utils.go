package htex

import "strings"

// stringify joins literal text of tokens, blanks between tokens are not preserved
func stringify(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}

	return b.String()
}

// content joins tokens back into source text keeping blanks between tokens
func content(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Space)
		b.WriteString(t.Text)
	}

	return b.String()
}

// Find returns index of the first token of a given kind at or after from, or -1.
func Find(tokens []Token, kind Kind, from int) int {
	for i := max(from, 0); i < len(tokens); i++ {
		if tokens[i].Kind == kind {
			return i
		}
	}

	return -1
}

// MatchingParen returns index of the parenthesis closing the one at index open, or -1 if there is none.
func MatchingParen(tokens []Token, open int) int {
	depth := 1
	for i := open + 1; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case OpenParen:
			depth++
		case CloseParen:
			depth--
		}

		if depth == 0 {
			return i
		}
	}

	return -1
}

// SplitTopLevel splits tokens at separators which are not nested in parentheses.
// The result always has at least one (possibly empty) group.
func SplitTopLevel(tokens []Token, sep Kind) [][]Token {
	var parts [][]Token

	start, depth := 0, 0
	for i, t := range tokens {
		switch {
		case t.Kind == OpenParen:
			depth++
		case t.Kind == CloseParen:
			depth--
		case t.Kind == sep && depth == 0:
			parts = append(parts, tokens[start:i])
			start = i + 1
		}
	}

	return append(parts, tokens[start:])
}
