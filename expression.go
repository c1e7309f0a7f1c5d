package htex

// arity of call forms
var calls = map[string]int{
	"sum":  3,
	"frac": 2,
}

// ParseEquationLine splits tokens at the first "=" outside of parentheses and parses both sides.
func ParseEquationLine(tokens []Token) (*Equation, error) {
	balance := 0
	for i, t := range tokens {
		switch t.Kind {
		case OpenParen:
			balance++
		case CloseParen:
			balance--
		case Equals:
			if balance != 0 {
				continue
			}

			return equation(tokens, i)
		}
	}

	return nil, syntaxError(ErrMissingEquals, tokens, "equation %q", stringify(tokens))
}

// ParseExpression parses tokens as math expression. The first "+", "=" or call keyword found decides how the
// tokens are split; parentheses are not taken into account. Tokens without any of these become an Identifier.
func ParseExpression(tokens []Token) (Expression, error) {
	for i, t := range tokens {
		switch t.Kind {
		case PlusToken:
			return plus(tokens, i)
		case Equals:
			return equation(tokens, i)
		case IdentifierToken:
			if _, ok := calls[t.Text]; ok {
				return call(tokens, i)
			}
		}
	}

	return &Identifier{Name: stringify(tokens)}, nil
}

func plus(tokens []Token, at int) (*Plus, error) {
	left, err := ParseExpression(tokens[:at])
	if err != nil {
		return nil, err
	}

	right, err := ParseExpression(tokens[at+1:])
	if err != nil {
		return nil, err
	}

	return &Plus{Left: left, Right: right}, nil
}

func equation(tokens []Token, at int) (*Equation, error) {
	lhs, err := ParseExpression(tokens[:at])
	if err != nil {
		return nil, err
	}

	rhs, err := ParseExpression(tokens[at+1:])
	if err != nil {
		return nil, err
	}

	return &Equation{LHS: lhs, RHS: rhs}, nil
}

// call reads sum(...) or frac(...) starting at index at. Text before the call and text after it which does not
// continue the expression with "+" or "=" is kept next to the call in a Sequence.
func call(tokens []Token, at int) (Expression, error) {
	name := tokens[at].Text
	tail := tokens[at:]

	if err := ExpectKinds(tail[:min(2, len(tail))], IdentifierToken, OpenParen); err != nil {
		return nil, syntaxError(ErrMalformedCall, tail, "%s must be followed by \"(\"", name)
	}

	closing := MatchingParen(tail, 1)
	if closing < 0 {
		return nil, syntaxError(ErrMalformedCall, tail[1:], "%s is missing closing \")\"", name)
	}

	groups := SplitTopLevel(tail[2:closing], Comma)
	if len(groups) != calls[name] {
		return nil, syntaxError(ErrMalformedCall, tail, "%s expects %d arguments, got %d", name, calls[name], len(groups))
	}

	args := make([]Expression, len(groups))
	for i, group := range groups {
		arg, err := ParseExpression(group)
		if err != nil {
			return nil, err
		}

		args[i] = arg
	}

	var node Expression
	switch name {
	case "sum":
		node = &Sum{Start: args[0], End: args[1], Body: args[2]}
	case "frac":
		node = &Fraction{Numerator: args[0], Denominator: args[1]}
	}

	// prefix has no "+", "=" or call, otherwise the scan would have stopped there
	if at > 0 {
		node = sequence(&Identifier{Name: stringify(tokens[:at])}, node)
	}

	rest := tail[closing+1:]
	if len(rest) == 0 {
		return node, nil
	}

	switch rest[0].Kind {
	case PlusToken:
		right, err := ParseExpression(rest[1:])
		if err != nil {
			return nil, err
		}

		return &Plus{Left: node, Right: right}, nil
	case Equals:
		right, err := ParseExpression(rest[1:])
		if err != nil {
			return nil, err
		}

		return &Equation{LHS: node, RHS: right}, nil
	default:
		next, err := ParseExpression(rest)
		if err != nil {
			return nil, err
		}

		return sequence(node, next), nil
	}
}

// sequence puts expressions one after another, nested sequences are flattened
func sequence(items ...Expression) *Sequence {
	seq := &Sequence{}
	for _, item := range items {
		if nested, ok := item.(*Sequence); ok {
			seq.Items = append(seq.Items, nested.Items...)
			continue
		}

		seq.Items = append(seq.Items, item)
	}

	return seq
}
