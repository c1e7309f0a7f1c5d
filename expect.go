package htex

import (
	"fmt"
	"strings"
)

// KindMismatchError is returned by ExpectKinds when tokens do not have expected shape.
type KindMismatchError struct {
	Expected []Kind
	Actual   []Kind
	Offset   int // offset of the first mismatching token, -1 if lengths differ
}

func (e *KindMismatchError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("expected %d tokens (%s) but got %d (%s)", len(e.Expected), kinds(e.Expected), len(e.Actual), kinds(e.Actual))
	}

	return fmt.Sprintf("expected tokens %s but got %s at position %d", kinds(e.Expected), kinds(e.Actual), e.Offset)
}

// ExpectKinds verifies that tokens have exactly the given kinds, in order.
func ExpectKinds(tokens []Token, expected ...Kind) error {
	actual := make([]Kind, len(tokens))
	for i, t := range tokens {
		actual[i] = t.Kind
	}

	if len(actual) != len(expected) {
		return &KindMismatchError{Expected: expected, Actual: actual, Offset: -1}
	}

	for i := range actual {
		if actual[i] != expected[i] {
			return &KindMismatchError{Expected: expected, Actual: actual, Offset: tokens[i].Offset}
		}
	}

	return nil
}

func kinds(list []Kind) string {
	names := make([]string, len(list))
	for i, k := range list {
		names[i] = k.String()
	}

	return strings.Join(names, ", ")
}
