package htex_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/eolymp/go-htex"
)

const preamble = "\\documentclass{article}\n\\usepackage[utf8]{inputenc}\n\\usepackage{amsmath}\n\\usepackage{amssymb}\n\n\\begin{document}\n\n"

func TestRender(t *testing.T) {
	tt := []struct {
		name     string
		render   string
		document *htex.Root
	}{
		{
			name:     "simple paragraph",
			render:   "one two\\newline\nthree\n\n",
			document: doc(par("one two\nthree")),
		},
		{
			name:     "empty lines are dropped",
			render:   "one\\newline\ntwo\n\n",
			document: doc(par("one\n   \ntwo")),
		},
		{
			name:     "greek letters in text",
			render:   "alphabet $\\alpha$ $\\Omega$ $\\varphi$\n\n",
			document: doc(par("alphabet alpha Omega phi")),
		},
		{
			name:     "symbol words in text",
			render:   "A $\\subseteq$ B, a $\\in$ A, elements\n\n",
			document: doc(par("A Teilmenge B, a element A, elements")),
		},
		{
			name:   "list",
			render: "Punkte:\n\\begin{itemize}\n  \\item $\\alpha$ $\\in$ set\n  \\item a $\\to$ b\n  \\item 2 $\\times$ 3\n\\end{itemize}\n\n",
			document: doc(par("Punkte:\n- alpha element set\n- a -> b\n- 2 x 3")),
		},
		{
			name:     "text after list",
			render:   "\\begin{itemize}\n  \\item a\n\\end{itemize}\ntext one\\newline\ntext two\n\n",
			document: doc(par("- a\ntext one\ntext two")),
		},
		{
			name:     "arrows and x are kept outside of lists",
			render:   "a -> b x c\n\n",
			document: doc(par("a -> b x c")),
		},
		{
			name:     "italics",
			render:   "\\textit{wichtig} und \\emph{betont}\n\n",
			document: doc(par("\\wichtig\\ und *betont*")),
		},
		{
			name:     "italic markers",
			render:   "\\textit{kursiv} text\n\n",
			document: doc(par("$$ITALICSTART$$kursiv$$ITALICEND$$ text")),
		},
		{
			name:     "math markers protect math content",
			render:   "$alpha {x} *y*$ $\\alpha$\n\n",
			document: doc(par("$$MATHSTART$$alpha {x} *y*$$MATHEND$$ alpha")),
		},
		{
			name:     "literal braces are escaped",
			render:   "Menge: \\{1, 2\\}\n\n",
			document: doc(par("Menge: {1, 2}")),
		},
		{
			name:     "heading",
			render:   "\\section{Einleitung}\n\n",
			document: doc(&htex.Heading{Content: "Einleitung"}),
		},
		{
			name:     "equation",
			render:   "\\[x = 1 + 2\\]\n\n",
			document: doc(eq(id("x"), plus(id("1"), id("2")))),
		},
		{
			name:     "sum",
			render:   "\\[y = \\sum_{i}^{n} i\\]\n\n",
			document: doc(eq(id("y"), sum(id("i"), id("n"), id("i")))),
		},
		{
			name:     "nested expressions with greek letters",
			render:   "\\[\\alpha = \\sum_{i = 1}^{n} \\frac{\\varphi}{2}\\]\n\n",
			document: doc(eq(id("alpha"), sum(eq(id("i"), id("1")), id("n"), frac(id("phi"), id("2"))))),
		},
		{
			name:     "greek names inside words are kept in math",
			render:   "\\[alphabet = beta2\\]\n\n",
			document: doc(eq(id("alphabet"), id("beta2"))),
		},
		{
			name:     "call next to other text",
			render:   "\\[A = 2x \\frac{a}{b}\\]\n\n\\[y = ( \\sum_{i}^{n} \\alpha )\\]\n\n",
			document: doc(eq(id("A"), seq(id("2x"), frac(id("a"), id("b")))), eq(id("y"), seq(id("("), sum(id("i"), id("n"), id("alpha")), id(")")))),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			buffer := bytes.NewBuffer(nil)

			err := htex.Render(buffer, tc.document)
			if err != nil {
				t.Fatal("unable to render:", err)
			}

			got := buffer.String()
			want := preamble + tc.render + "\\end{document}\n"

			if got != want {
				t.Errorf("Rendered latex does not match:\nWANT:\n  %#v\nGOT:\n  %#v\n", want, got)
			}
		})
	}
}

func TestTranspile(t *testing.T) {
	input := "Gauss fand heraus:\nsum(i=1, n, i) = frac(n x (n+1), 2)\n\n- alpha element set\n"

	root, err := htex.ParseString(input)
	if err != nil {
		t.Fatalf("Unable to parse document: %v", err)
	}

	got, err := htex.Transpile(root)
	if err != nil {
		t.Fatalf("Unable to transpile document: %v", err)
	}

	want := preamble +
		"Gauss fand heraus:\n\n" +
		"\\[\\sum_{i = 1}^{n} i = \\frac{nx(n + 1)}{2}\\]\n\n" +
		"\\begin{itemize}\n  \\item $\\alpha$ $\\in$ set\n\\end{itemize}\n\n" +
		"\\end{document}\n"

	if got != want {
		t.Errorf("Transpiled latex does not match:\nWANT:\n  %#v\nGOT:\n  %#v\n", want, got)
	}
}

func TestTranspilerOptions(t *testing.T) {
	tr := htex.NewTranspiler(htex.Options{
		DocumentClass: "scrartcl",
		Packages:      htex.ParsePackages("babel=ngerman, amsmath"),
	})

	got, err := tr.Document(doc(par("Hallo")))
	if err != nil {
		t.Fatalf("Unable to transpile document: %v", err)
	}

	want := "\\documentclass{scrartcl}\n\\usepackage[ngerman]{babel}\n\\usepackage{amsmath}\n\n\\begin{document}\n\nHallo\n\n\\end{document}\n"
	if got != want {
		t.Errorf("Transpiled latex does not match:\nWANT:\n  %#v\nGOT:\n  %#v\n", want, got)
	}

	body, err := tr.Body(doc(eq(id("a"), id("b"))))
	if err != nil {
		t.Fatalf("Unable to transpile body: %v", err)
	}

	if body != "\\[a = b\\]\n\n" {
		t.Errorf("unexpected body %q", body)
	}
}

func TestRenderUnknownNode(t *testing.T) {
	tt := []struct {
		name     string
		document *htex.Root
	}{
		{name: "nil block", document: doc(nil)},
		{name: "nil expression", document: doc(eq(nil, id("a")))},
		{name: "nil nested expression", document: doc(eq(id("a"), frac(id("b"), nil)))},
		{name: "nil sequence item", document: doc(eq(id("a"), seq(id("2"), nil)))},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := htex.Transpile(tc.document)
			if !errors.Is(err, htex.ErrUnknownNode) {
				t.Fatalf("expected unknown node error, got %v", err)
			}
		})
	}
}

func TestRenderWriterError(t *testing.T) {
	err := htex.Render(failingWriter{}, doc(par("text")))
	if err == nil || !strings.Contains(err.Error(), "closed") {
		t.Errorf("expected writer error, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("writer is closed")
}
