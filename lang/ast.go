package lang

import (
	"fmt"

	"github.com/nuts/nuts/quantity"
)

// Node is an expression-tree node; Eval folds it into a quantity.Datum
// under the algebra. Unit symbols are opaque identifiers with no registry
// to resolve against, so a Symbol node always resolves to a unit literal
// of its own symbol.
type Node interface {
	Eval() (quantity.Datum, error)
	String() string
}

// SymbolNode is a bare unit symbol, e.g. "m".
type SymbolNode struct {
	Symbol string
}

func (n *SymbolNode) Eval() (quantity.Datum, error) {
	return quantity.Unit(quantity.DimPair{Symbol: n.Symbol, Exp: 1}), nil
}

func (n *SymbolNode) String() string { return n.Symbol }

// NumberNode is a numeric literal, e.g. "5" or "2.54".
type NumberNode struct {
	Value float64
}

func (n *NumberNode) Eval() (quantity.Datum, error) {
	return quantity.Scalar(n.Value), nil
}

func (n *NumberNode) String() string { return fmt.Sprintf("%g", n.Value) }

// BinaryNode is a multiplication or division of two subexpressions.
type BinaryNode struct {
	Op    TokenKind
	Left  Node
	Right Node
}

func (n *BinaryNode) Eval() (quantity.Datum, error) {
	left, err := n.Left.Eval()
	if err != nil {
		return quantity.Datum{}, err
	}
	right, err := n.Right.Eval()
	if err != nil {
		return quantity.Datum{}, err
	}

	switch n.Op {
	case Multiply:
		return left.Mul(right), nil
	case Divide:
		return left.Div(right)
	default:
		return quantity.Datum{}, fmt.Errorf("lang: unsupported binary operator %v", n.Op)
	}
}

func (n *BinaryNode) String() string {
	op := "*"
	if n.Op == Divide {
		op = "/"
	}
	return fmt.Sprintf("(%s %s %s)", n.Left, op, n.Right)
}

// PowerNode raises a subexpression to an integer power.
type PowerNode struct {
	Base Node
	Exp  int
}

func (n *PowerNode) Eval() (quantity.Datum, error) {
	base, err := n.Base.Eval()
	if err != nil {
		return quantity.Datum{}, err
	}
	return base.Pow(n.Exp), nil
}

func (n *PowerNode) String() string {
	return fmt.Sprintf("%s^%d", n.Base, n.Exp)
}

// GroupNode is a parenthesised subexpression.
type GroupNode struct {
	Inner Node
}

func (n *GroupNode) Eval() (quantity.Datum, error) {
	return n.Inner.Eval()
}

func (n *GroupNode) String() string {
	return fmt.Sprintf("(%s)", n.Inner)
}
