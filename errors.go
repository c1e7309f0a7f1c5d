package htex

import (
	"errors"
	"fmt"
)

var (
	ErrUnbalancedParenthesis = errors.New("unbalanced parenthesis")
	ErrMissingEquals         = errors.New("missing top level \"=\"")
	ErrMalformedCall         = errors.New("malformed call arguments")
	ErrUnknownNode           = errors.New("unknown node kind")
)

// SyntaxError describes a parse failure at a given rune offset of the input.
type SyntaxError struct {
	Err    error
	Offset int // -1 if position is not known
	Detail string
}

func (e *SyntaxError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at position %d", e.Offset)
	}

	return msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// syntaxError creates SyntaxError positioned at the first token, if there is one
func syntaxError(err error, tokens []Token, format string, args ...any) *SyntaxError {
	offset := -1
	if len(tokens) > 0 {
		offset = tokens[0].Offset
	}

	return &SyntaxError{Err: err, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}
