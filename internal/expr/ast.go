package expr

import (
	"strconv"

	"deskcalc/internal/domain/types"
)

// Node is implemented by the closed set of AST node kinds.
type Node interface {
	node()
	String() string
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Binary applies one of the four arithmetic operators.
type Binary struct {
	Op    types.Operator
	Left  Node
	Right Node
}

// Negate flips the sign of its operand.
type Negate struct {
	X Node
}

// Percent divides its operand by 100, or takes a share of the left operand
// when it is the right side of a Binary.
type Percent struct {
	X Node
}

func (*Number) node()  {}
func (*Binary) node()  {}
func (*Negate) node()  {}
func (*Percent) node() {}

func (n *Number) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
}

func (n *Negate) String() string  { return "-" + n.X.String() }
func (n *Percent) String() string { return n.X.String() + "%" }
