package convert

import "github.com/nuts/nuts/quantity"

// Edge is one directed conversion step between two dimension shapes: a
// scale factor applied to a travelling value. A declared fact yields four
// edges (forward, inverse, reciprocal-forward, reciprocal-inverse). Edge
// stores the factor and an Invert flag directly rather than a closure,
// since affine units are a non-goal and every edge reduces to a pure
// scale.
type Edge struct {
	From, To *quantity.Dims
	Factor   float64
	Invert   bool
}

// Apply folds the edge's scale onto a travelling value.
func (e Edge) Apply(v float64) float64 {
	if e.Invert {
		return v / e.Factor
	}
	return v * e.Factor
}

// factorConv builds the four edges a declared fact (from -> to, factor)
// yields: forward, inverse, and the same pair over the reciprocal shapes.
func factorConv(from, to *quantity.Dims, factor float64) []Edge {
	recipFrom := reciprocal(from)
	recipTo := reciprocal(to)
	return []Edge{
		{From: from, To: to, Factor: factor, Invert: false},
		{From: to, To: from, Factor: factor, Invert: true},
		{From: recipFrom, To: recipTo, Factor: factor, Invert: true},
		{From: recipTo, To: recipFrom, Factor: factor, Invert: false},
	}
}

func reciprocal(d *quantity.Dims) *quantity.Dims {
	return quantity.Datum{Value: 1, Dims: d}.Pow(-1).Dims
}
