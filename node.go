package htex

// NodeKind identifies a variant of the syntax tree.
type NodeKind int

const (
	RootKind NodeKind = iota
	ParagraphKind
	HeadingKind
	EquationKind
	SumKind
	FractionKind
	PlusKind
	IdentifierKind
	SequenceKind
)

var nodeKindNames = [...]string{
	RootKind:       "root",
	ParagraphKind:  "paragraph",
	HeadingKind:    "heading",
	EquationKind:   "equation",
	SumKind:        "sum",
	FractionKind:   "fraction",
	PlusKind:       "plus",
	IdentifierKind: "identifier",
	SequenceKind:   "sequence",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "unknown"
	}

	return nodeKindNames[k]
}

// Node is any element of the syntax tree. The set of implementations is closed.
type Node interface {
	Kind() NodeKind
	node()
}

// Block is a top level element of a document: Paragraph, Heading or Equation.
type Block interface {
	Node
	block()
}

// Expression is an element of math content: Equation, Sum, Fraction, Plus, Identifier or Sequence.
type Expression interface {
	Node
	expression()
}

// Root is the document, result of parsing.
type Root struct {
	Children []Block
}

// Paragraph is a prose block, soft line breaks are kept as "\n".
type Paragraph struct {
	Content string
}

type Heading struct {
	Content string
}

// Equation is a statement "lhs = rhs". It is used both as a display block and inside other expressions.
type Equation struct {
	LHS Expression
	RHS Expression
}

// Sum is "sum(start, end, body)".
type Sum struct {
	Start Expression
	End   Expression
	Body  Expression
}

// Fraction is "frac(numerator, denominator)".
type Fraction struct {
	Numerator   Expression
	Denominator Expression
}

type Plus struct {
	Left  Expression
	Right Expression
}

// Identifier is a leaf holding literal text of tokens which were not decomposed further.
type Identifier struct {
	Name string
}

// Sequence is a call written next to other text without an operator, eg. "2 x frac(a, b)" or "(frac(a, b))".
type Sequence struct {
	Items []Expression
}

func (*Root) Kind() NodeKind       { return RootKind }
func (*Paragraph) Kind() NodeKind  { return ParagraphKind }
func (*Heading) Kind() NodeKind    { return HeadingKind }
func (*Equation) Kind() NodeKind   { return EquationKind }
func (*Sum) Kind() NodeKind        { return SumKind }
func (*Fraction) Kind() NodeKind   { return FractionKind }
func (*Plus) Kind() NodeKind       { return PlusKind }
func (*Identifier) Kind() NodeKind { return IdentifierKind }
func (*Sequence) Kind() NodeKind   { return SequenceKind }

func (*Root) node()       {}
func (*Paragraph) node()  {}
func (*Heading) node()    {}
func (*Equation) node()   {}
func (*Sum) node()        {}
func (*Fraction) node()   {}
func (*Plus) node()       {}
func (*Identifier) node() {}
func (*Sequence) node()   {}

func (*Paragraph) block() {}
func (*Heading) block()   {}
func (*Equation) block()  {}

func (*Equation) expression()   {}
func (*Sum) expression()        {}
func (*Fraction) expression()   {}
func (*Plus) expression()       {}
func (*Identifier) expression() {}
func (*Sequence) expression()   {}
