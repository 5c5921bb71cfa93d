package convert

import (
	"math"
	"testing"

	"github.com/nuts/nuts/quantity"
)

// TestFindPathDeterminism checks that two runs over the same shapes
// produce identical paths.
func TestFindPathDeterminism(t *testing.T) {
	table := mustLoadStandard(t)
	from := quantity.Unit(quantity.DimPair{Symbol: "cm", Exp: 1})
	to := quantity.Unit(quantity.DimPair{Symbol: "yd", Exp: 1})

	path1, ok1 := findPath(table, from.Dims, to.Dims, DefaultMaxDepth)
	path2, ok2 := findPath(table, from.Dims, to.Dims, DefaultMaxDepth)

	if ok1 != ok2 || len(path1) != len(path2) {
		t.Fatalf("non-deterministic path lengths: %d vs %d", len(path1), len(path2))
	}
	for i := range path1 {
		if path1[i] != path2[i] {
			t.Fatalf("path[%d] differs between runs: %+v vs %+v", i, path1[i], path2[i])
		}
	}
}

// TestFindPathTermination checks that an unreachable shape returns
// promptly rather than hang, bounded by maxDepth.
func TestFindPathTermination(t *testing.T) {
	table := mustLoadStandard(t)
	from := quantity.Unit(quantity.DimPair{Symbol: "yd", Exp: 1})
	to := quantity.Unit(quantity.DimPair{Symbol: "kg", Exp: 1})

	_, ok := findPath(table, from.Dims, to.Dims, DefaultMaxDepth)
	if ok {
		t.Fatalf("findPath found a path between unrelated shapes")
	}
}

// TestFindPathSoundness checks that folding a path's scale factors over
// the dimensionless 1 yields the correct ratio between from and to,
// within float tolerance.
func TestFindPathSoundness(t *testing.T) {
	table := mustLoadStandard(t)
	from := quantity.Unit(quantity.DimPair{Symbol: "cm", Exp: 1})
	to := quantity.Unit(quantity.DimPair{Symbol: "yd", Exp: 1})

	path, ok := findPath(table, from.Dims, to.Dims, DefaultMaxDepth)
	if !ok {
		t.Fatalf("findPath: no path found")
	}

	value := 1.0
	for _, e := range path {
		value = e.Apply(value)
	}

	want := 1 / (2.54 * 36)
	if math.Abs(value-want) > 1e-9 {
		t.Errorf("folded path value = %v, want %v", value, want)
	}
}
