package convert

import "github.com/nuts/nuts/quantity"

// DefaultMaxDepth bounds the explicit-stack search findPath and the greedy
// Simplify walk perform. The search threads an explicit visited set
// through an iterative frame stack, and uses this constant as the natural
// place to stop exploring a pathological fact table rather than growing
// the stack without bound.
const DefaultMaxDepth = 20

type searchFrame struct {
	dims  *quantity.Dims
	edges []Edge
}

// findPath searches for a sequence of edges carrying from's shape to to's:
// a same-shape short-circuit, then a direct single-edge hop, then a
// depth-bounded depth-first walk over subunit branches. ok is false if no
// path is found within maxDepth.
func findPath(t *Table, from, to *quantity.Dims, maxDepth int) (path []Edge, ok bool) {
	if from.Equal(to) {
		return []Edge{}, true
	}
	if direct := t.EdgesMatching(from, to); len(direct) > 0 {
		return []Edge{direct[0]}, true
	}
	if len(t.edges) == 0 {
		return nil, false
	}

	visited := map[string]bool{from.Key(): true}
	stack := []searchFrame{{dims: from, edges: candidateEdges(t, from)}}

	for len(stack) > 0 {
		if len(stack) > maxDepth {
			// Too deep: abandon this branch and resume its parent.
			stack = stack[:len(stack)-1]
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
			continue
		}
		top := &stack[len(stack)-1]

		advanced := false
		for len(top.edges) > 0 {
			e := top.edges[0]
			top.edges = top.edges[1:]

			next := applyEdgeDims(top.dims, e)
			key := next.Key()
			if visited[key] {
				continue
			}
			visited[key] = true
			path = append(path, e)

			if next.Equal(to) {
				return path, true
			}
			if direct := t.EdgesMatching(next, to); len(direct) > 0 {
				return append(path, direct[0]), true
			}

			stack = append(stack, searchFrame{dims: next, edges: candidateEdges(t, next)})
			advanced = true
			break
		}

		if !advanced {
			stack = stack[:len(stack)-1]
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
		}
	}
	return nil, false
}

// candidateEdges lists the edges reachable from dims's subunit shapes, in
// subunit-then-declaration order.
func candidateEdges(t *Table, dims *quantity.Dims) []Edge {
	shape := quantity.Datum{Value: 1, Dims: dims}
	var out []Edge
	for _, branch := range shape.Subunits() {
		out = append(out, t.EdgesMatching(branch.Dims, nil)...)
	}
	return out
}

// applyEdgeDims computes frm / e.From * e.To at the dimension-shape level.
func applyEdgeDims(dims *quantity.Dims, e Edge) *quantity.Dims {
	shape := quantity.Datum{Value: 1, Dims: dims}
	quotient := shape.MustDiv(quantity.Datum{Value: 1, Dims: e.From})
	return quotient.Mul(quantity.Datum{Value: 1, Dims: e.To}).Dims
}
