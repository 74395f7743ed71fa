package spdx

// Expr is one node of a parsed license expression. The tree is
// binary, each node owns its children, and it is never cyclic.
type Expr interface {
	// String gives the canonical rendering of the expression,
	// with the minimal parentheses that reparse to an equal tree.
	String() string

	precedence() int
}

const (
	precedenceOr = iota + 1
	precedenceAnd
	precedenceWith
	precedenceAtom
)

// License is a single license identifier, including "LicenseRef-"
// and "DocumentRef-" custom identifiers.
type License struct {
	ID string
}

func (it *License) precedence() int {
	return precedenceAtom
}

func (it *License) String() string {
	return it.ID
}

// WithException pairs a license with an exception identifier. Binds
// tighter than AND and OR.
type WithException struct {
	License   Expr
	Exception string
}

func (it *WithException) precedence() int {
	return precedenceWith
}

func (it *WithException) String() string {
	return renderChild(it.License, precedenceWith, true) + " WITH " + it.Exception
}

// And requires both operands simultaneously.
type And struct {
	Left  Expr
	Right Expr
}

func (it *And) precedence() int {
	return precedenceAnd
}

func (it *And) String() string {
	return renderChild(it.Left, precedenceAnd, false) + " AND " + renderChild(it.Right, precedenceAnd, true)
}

// Or offers the operands as alternatives.
type Or struct {
	Left  Expr
	Right Expr
}

func (it *Or) precedence() int {
	return precedenceOr
}

func (it *Or) String() string {
	return renderChild(it.Left, precedenceOr, false) + " OR " + renderChild(it.Right, precedenceOr, true)
}

// AND and OR are left associative, so an equal precedence child on
// the right side keeps its parentheses to reparse into same shape.
func renderChild(child Expr, parent int, right bool) string {
	level := child.precedence()
	if level < parent || (right && level == parent) {
		return "(" + child.String() + ")"
	}
	return child.String()
}

// Equal reports structural equality of two expression trees.
func Equal(left, right Expr) bool {
	switch one := left.(type) {
	case *License:
		two, ok := right.(*License)
		return ok && one.ID == two.ID
	case *WithException:
		two, ok := right.(*WithException)
		return ok && one.Exception == two.Exception && Equal(one.License, two.License)
	case *And:
		two, ok := right.(*And)
		return ok && Equal(one.Left, two.Left) && Equal(one.Right, two.Right)
	case *Or:
		two, ok := right.(*Or)
		return ok && Equal(one.Left, two.Left) && Equal(one.Right, two.Right)
	}
	return false
}
