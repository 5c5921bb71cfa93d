// Package convert implements the conversion-path search: an edge table
// built from declared conversion facts, and the Convert/Simplify
// operations that search it.
package convert

import (
	"fmt"
	"strings"

	"github.com/nuts/nuts/quantity"
)

// Table is an immutable conversion-fact edge table built once by
// LoadFacts. It has no mutating methods, so concurrent reads (Convert,
// Simplify, EdgesMatching) from multiple goroutines are safe.
type Table struct {
	edges []Edge
}

// EdgesMatching returns edges whose From/To dimension shapes match the
// given shapes. A nil from or to is a wildcard for that side. Comparison
// is dimension-only: the search never needs to match a travelling value,
// only the shape it currently carries.
func (t *Table) EdgesMatching(from, to *quantity.Dims) []Edge {
	var out []Edge
	for _, e := range t.edges {
		if from != nil && !e.From.Equal(from) {
			continue
		}
		if to != nil && !e.To.Equal(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Facts returns the loaded edge table in declaration order, for --debug
// introspection.
func (t *Table) Facts() []Edge {
	out := make([]Edge, len(t.edges))
	copy(out, t.edges)
	return out
}

func (t *Table) String() string {
	var b strings.Builder
	for _, e := range t.edges {
		op := "*"
		if e.Invert {
			op = "/"
		}
		fmt.Fprintf(&b, "%s -> %s (%s%g)\n",
			quantity.Datum{Value: 1, Dims: e.From},
			quantity.Datum{Value: 1, Dims: e.To},
			op, e.Factor)
	}
	return b.String()
}

// Convert rewrites from onto to's dimension shape, folding the conversion
// path's factors over from's value. Same-shape pairs are a pure relabel:
// no search, no factor folding. Returns *NoPathError if to's shape is
// unreachable from from's within DefaultMaxDepth.
func (t *Table) Convert(from, to quantity.Datum) (quantity.Datum, error) {
	if from.SameShape(to) {
		return quantity.Datum{Value: from.Value, Dims: to.Dims}, nil
	}

	path, ok := findPath(t, from.Dims, to.Dims, DefaultMaxDepth)
	if !ok {
		return quantity.Datum{}, &NoPathError{From: from, To: to}
	}

	value := from.Value
	for _, e := range path {
		value = e.Apply(value)
	}
	return quantity.Datum{Value: value, Dims: to.Dims}, nil
}

// Simplify greedily searches for a lower-Complexity equivalent shape of
// from: a strictly simpler neighbour wins as soon as it's found, not the
// globally minimal one. Returns from unchanged if no strictly-simpler
// neighbour is reachable within DefaultMaxDepth.
func (t *Table) Simplify(from quantity.Datum) quantity.Datum {
	seen := map[string]bool{from.Dims.Key(): true}
	target := simplifyShape(t, from.Dims, from.Dims, seen, 0)
	if target.Equal(from.Dims) {
		return from
	}

	converted, err := t.Convert(from, quantity.Datum{Value: 1, Dims: target})
	if err != nil {
		return from
	}
	return converted
}

func simplifyShape(t *Table, frm, original *quantity.Dims, seen map[string]bool, depth int) *quantity.Dims {
	if depth > DefaultMaxDepth {
		return frm
	}

	shape := quantity.Datum{Value: 1, Dims: frm}
	for _, branch := range shape.Subunits() {
		for _, e := range t.EdgesMatching(branch.Dims, nil) {
			next := applyEdgeDims(frm, e)
			key := next.Key()
			if seen[key] {
				continue
			}
			seen[key] = true

			result := simplifyShape(t, next, original, seen, depth+1)
			if complexityOf(result) < complexityOf(next) {
				return result
			}
			if complexityOf(next) < complexityOf(original) {
				return next
			}
		}
	}
	return frm
}

func complexityOf(d *quantity.Dims) int {
	return quantity.Datum{Value: 1, Dims: d}.Complexity()
}
