package tf

// A Kind identifies the outermost connective of a formula.
type Kind byte

const (
	// Atom is an atomic statement, with no connective at all.
	Atom Kind = iota
	// Not is the negation of a single statement.
	Not
	// And is the conjunction of two statements.
	And
	// Or is the disjunction of two statements.
	Or
	// If is the material conditional between two statements.
	If
	// Iff is the biconditional between two statements.
	Iff
)

func (k Kind) String() string {
	switch k {
	case Atom:
		return "atom"
	case Not:
		return "not"
	case And:
		return "and"
	case Or:
		return "or"
	case If:
		return "if"
	case Iff:
		return "iff"
	}
	panic("invalid formula kind")
}

// A Formula is a single statement in truth-functional logic, structured as a
// tree whose children are the operands of the outermost connective. Formulas
// are immutable once built; they are created by Parse.
type Formula interface {
	// Kind reports the outermost connective.
	Kind() Kind
	// Text returns the exact prefix-notation string the formula was built
	// from. Text is the identity of the formula: see Equal.
	Text() string
	// LeftOperand returns the text of the left operand for binary kinds.
	// For Atom and Not it mirrors the parse and returns the full text.
	LeftOperand() string
	// RightOperand returns the text of the right operand for binary kinds
	// and the empty string for Atom and Not.
	RightOperand() string
	// Left returns the left child, or the negated statement for Not.
	// It is nil for Atom.
	Left() Formula
	// Right returns the right child. It is nil for Atom and Not.
	Right() Formula
	// Branches reports whether decomposing the formula puts its two
	// results on separate branches of the tableau.
	Branches() bool
	// CanExpand reports whether the formula can be decomposed at all.
	// Only literals (an atom or the negation of one) cannot.
	CanExpand() bool
	// LeftExpansion returns the first statement produced by decomposing
	// the formula one step, or nil if there is none.
	LeftExpansion() Formula
	// RightExpansion returns the second statement produced by decomposing
	// the formula one step, or nil if there is none.
	RightExpansion() Formula
	// String renders the formula in infix notation with ASCII connectives.
	String() string
	// Pretty renders the formula in infix notation with Unicode
	// connectives.
	Pretty() string
}

// Equal reports whether f and g are the same statement, character for
// character. This is syntactic equality on the prefix text, deliberately not
// a check for logical equivalence, and it is sensitive to whitespace. Either
// argument may be nil; two nil formulas are equal.
func Equal(f, g Formula) bool {
	if f == nil || g == nil {
		return f == nil && g == nil
	}
	return f.Text() == g.Text()
}

type atom string

func (a atom) Kind() Kind              { return Atom }
func (a atom) Text() string            { return string(a) }
func (a atom) LeftOperand() string     { return string(a) }
func (a atom) RightOperand() string    { return "" }
func (a atom) Left() Formula           { return nil }
func (a atom) Right() Formula          { return nil }
func (a atom) Branches() bool          { return false }
func (a atom) CanExpand() bool         { return false }
func (a atom) LeftExpansion() Formula  { return nil }
func (a atom) RightExpansion() Formula { return nil }
func (a atom) String() string          { return string(a) }
func (a atom) Pretty() string          { return string(a) }

type negation struct {
	text string
	sub  Formula
}

func (n negation) Kind() Kind            { return Not }
func (n negation) Text() string          { return n.text }
func (n negation) LeftOperand() string   { return n.text }
func (n negation) RightOperand() string  { return "" }
func (n negation) Left() Formula         { return n.sub }
func (n negation) Right() Formula        { return nil }

func (n negation) Branches() bool {
	switch n.sub.(type) {
	case conjunction, biconditional:
		return true
	}
	return false
}

func (n negation) CanExpand() bool { return n.sub.Kind() != Atom }

func (n negation) LeftExpansion() Formula {
	switch f := n.sub.(type) {
	case negation:
		return f.sub
	case conjunction:
		return Parse("(not " + f.lop + ")")
	case disjunction:
		return Parse("(not " + f.lop + ")")
	case conditional:
		return f.left
	case biconditional:
		return Parse("(and " + f.lop + " (not " + f.rop + "))")
	}
	return nil
}

func (n negation) RightExpansion() Formula {
	switch f := n.sub.(type) {
	case conjunction:
		return Parse("(not " + f.rop + ")")
	case disjunction:
		return Parse("(not " + f.rop + ")")
	case conditional:
		return Parse("(not " + f.rop + ")")
	case biconditional:
		return Parse("(and (not " + f.lop + ") " + f.rop + ")")
	}
	return nil
}

func (n negation) String() string { return "~" + wrap(n.sub, n.sub.String()) }
func (n negation) Pretty() string { return "¬" + wrap(n.sub, n.sub.Pretty()) }

// binary carries the fields shared by the four binary connectives.
type binary struct {
	text     string
	lop, rop string
	left     Formula
	right    Formula
}

func (b binary) Text() string         { return b.text }
func (b binary) LeftOperand() string  { return b.lop }
func (b binary) RightOperand() string { return b.rop }
func (b binary) Left() Formula        { return b.left }
func (b binary) Right() Formula       { return b.right }
func (b binary) CanExpand() bool      { return true }

type conjunction struct{ binary }

func (c conjunction) Kind() Kind              { return And }
func (c conjunction) Branches() bool          { return false }
func (c conjunction) LeftExpansion() Formula  { return c.left }
func (c conjunction) RightExpansion() Formula { return c.right }
func (c conjunction) String() string          { return infix(c.left, "^", c.right) }
func (c conjunction) Pretty() string          { return prettyInfix(c.left, "∧", c.right) }

type disjunction struct{ binary }

func (d disjunction) Kind() Kind              { return Or }
func (d disjunction) Branches() bool          { return true }
func (d disjunction) LeftExpansion() Formula  { return d.left }
func (d disjunction) RightExpansion() Formula { return d.right }
func (d disjunction) String() string          { return infix(d.left, "v", d.right) }
func (d disjunction) Pretty() string          { return prettyInfix(d.left, "∨", d.right) }

type conditional struct{ binary }

func (c conditional) Kind() Kind              { return If }
func (c conditional) Branches() bool          { return true }
func (c conditional) LeftExpansion() Formula  { return Parse("(not " + c.lop + ")") }
func (c conditional) RightExpansion() Formula { return c.right }
func (c conditional) String() string          { return infix(c.left, "->", c.right) }
func (c conditional) Pretty() string          { return prettyInfix(c.left, "→", c.right) }

type biconditional struct{ binary }

func (b biconditional) Kind() Kind     { return Iff }
func (b biconditional) Branches() bool { return true }

// Decomposing a biconditional puts a single conjunction on each branch;
// those conjunctions each need an expansion of their own in a later step.
func (b biconditional) LeftExpansion() Formula {
	return Parse("(and " + b.lop + " " + b.rop + ")")
}

func (b biconditional) RightExpansion() Formula {
	return Parse("(and (not " + b.lop + ") (not " + b.rop + "))")
}

func (b biconditional) String() string { return infix(b.left, "<->", b.right) }
func (b biconditional) Pretty() string { return prettyInfix(b.left, "↔", b.right) }

// wrap parenthesizes the rendering s of a non-atomic operand.
func wrap(f Formula, s string) string {
	if f.Kind() == Atom {
		return s
	}
	return "(" + s + ")"
}

func infix(left Formula, op string, right Formula) string {
	return wrap(left, left.String()) + " " + op + " " + wrap(right, right.String())
}

func prettyInfix(left Formula, op string, right Formula) string {
	return wrap(left, left.Pretty()) + " " + op + " " + wrap(right, right.Pretty())
}
