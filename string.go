package htex

import "strings"

// String writes expression back in HTex notation, for example "sum(i = 1, n, i)". Missing subtrees are written as "?".
func String(expr Expression) string {
	switch node := expr.(type) {
	case *Identifier:
		return node.Name
	case *Plus:
		return String(node.Left) + " + " + String(node.Right)
	case *Equation:
		return String(node.LHS) + " = " + String(node.RHS)
	case *Sum:
		return "sum(" + String(node.Start) + ", " + String(node.End) + ", " + String(node.Body) + ")"
	case *Fraction:
		return "frac(" + String(node.Numerator) + ", " + String(node.Denominator) + ")"
	case *Sequence:
		items := make([]string, len(node.Items))
		for i, item := range node.Items {
			items[i] = String(item)
		}

		return strings.Join(items, " ")
	default:
		// nil or unknown expressions stay visible in the output
		return "?"
	}
}
