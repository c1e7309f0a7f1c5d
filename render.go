package htex

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Options control the document preamble.
type Options struct {
	DocumentClass string
	Packages      []Package
}

// DefaultOptions produces article with inputenc, amsmath and amssymb packages.
func DefaultOptions() Options {
	return Options{
		DocumentClass: "article",
		Packages: []Package{
			{Name: "inputenc", Options: "utf8"},
			{Name: "amsmath"},
			{Name: "amssymb"},
		},
	}
}

type Transpiler struct {
	opts Options
}

func NewTranspiler(opts Options) *Transpiler {
	if opts.DocumentClass == "" {
		opts.DocumentClass = "article"
	}

	return &Transpiler{opts: opts}
}

// Transpile renders document as complete LaTeX source with default preamble.
func Transpile(root *Root) (string, error) {
	return NewTranspiler(DefaultOptions()).Document(root)
}

// Render writes document as complete LaTeX source with default preamble.
func Render(w io.Writer, root *Root) error {
	return NewTranspiler(DefaultOptions()).Render(w, root)
}

func (t *Transpiler) Document(root *Root) (string, error) {
	buffer := bytes.NewBuffer(nil)
	if err := t.Render(buffer, root); err != nil {
		return "", err
	}

	return buffer.String(), nil
}

// Body renders document blocks without preamble and document environment.
func (t *Transpiler) Body(root *Root) (string, error) {
	buffer := bytes.NewBuffer(nil)
	if err := renderBlocks(buffer, root); err != nil {
		return "", err
	}

	return buffer.String(), nil
}

func (t *Transpiler) Render(w io.Writer, root *Root) error {
	if _, err := fmt.Fprintf(w, "\\documentclass{%s}\n", t.opts.DocumentClass); err != nil {
		return err
	}

	for _, pkg := range t.opts.Packages {
		if _, err := fmt.Fprintln(w, pkg.String()); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, "\n\\begin{document}\n\n"); err != nil {
		return err
	}

	if err := renderBlocks(w, root); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, "\\end{document}\n")
	return err
}

func renderBlocks(w io.Writer, root *Root) error {
	for _, child := range root.Children {
		if err := renderBlock(w, child); err != nil {
			return err
		}
	}

	return nil
}

func renderBlock(w io.Writer, block Block) error {
	switch node := block.(type) {
	case *Paragraph:
		_, err := fmt.Fprint(w, paragraph(node.Content))
		return err
	case *Heading:
		_, err := fmt.Fprint(w, "\\section{", node.Content, "}\n\n")
		return err
	case *Equation:
		value, err := renderEquation(node)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(w, "\\[", value, "\\]\n\n")
		return err
	default:
		return fmt.Errorf("%w: block %T", ErrUnknownNode, block)
	}
}

func renderEquation(node *Equation) (string, error) {
	lhs, err := renderExpression(node.LHS)
	if err != nil {
		return "", err
	}

	rhs, err := renderExpression(node.RHS)
	if err != nil {
		return "", err
	}

	return lhs + " = " + rhs, nil
}

func renderExpression(expr Expression) (string, error) {
	switch node := expr.(type) {
	case *Identifier:
		return mathSymbols(node.Name), nil
	case *Equation:
		return renderEquation(node)
	case *Plus:
		left, err := renderExpression(node.Left)
		if err != nil {
			return "", err
		}

		right, err := renderExpression(node.Right)
		if err != nil {
			return "", err
		}

		return left + " + " + right, nil
	case *Sum:
		start, err := renderExpression(node.Start)
		if err != nil {
			return "", err
		}

		end, err := renderExpression(node.End)
		if err != nil {
			return "", err
		}

		body, err := renderExpression(node.Body)
		if err != nil {
			return "", err
		}

		return "\\sum_{" + start + "}^{" + end + "} " + body, nil
	case *Fraction:
		numerator, err := renderExpression(node.Numerator)
		if err != nil {
			return "", err
		}

		denominator, err := renderExpression(node.Denominator)
		if err != nil {
			return "", err
		}

		return "\\frac{" + numerator + "}{" + denominator + "}", nil
	case *Sequence:
		items := make([]string, len(node.Items))
		for i, item := range node.Items {
			value, err := renderExpression(item)
			if err != nil {
				return "", err
			}

			items[i] = value
		}

		return strings.Join(items, " "), nil
	default:
		return "", fmt.Errorf("%w: expression %T", ErrUnknownNode, expr)
	}
}
