package convert

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/nuts/nuts/lang"
	"github.com/nuts/nuts/quantity"
)

func mustParse(t *testing.T, expr string) quantity.Datum {
	t.Helper()
	d, err := lang.Parse(expr)
	if err != nil {
		t.Fatalf("lang.Parse(%q): %v", expr, err)
	}
	return d
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestConvertEndToEndScenarios checks Convert and Simplify against the
// standard fact set across a representative set of conversions.
func TestConvertEndToEndScenarios(t *testing.T) {
	table := mustLoadStandard(t)

	t.Run("1 m to cm", func(t *testing.T) {
		from := mustParse(t, "1m")
		to := mustParse(t, "cm")
		got, err := table.Convert(from, to)
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if !almostEqual(got.Value, 100) {
			t.Errorf("value = %v, want 100", got.Value)
		}
		if got.Dims.Exp("cm") != 1 || got.Dims.Len() != 1 {
			t.Errorf("dims = %v, want {cm:1}", got.Dims.Symbols())
		}
	})

	t.Run("1 m/s to km/h", func(t *testing.T) {
		from := mustParse(t, "m/s")
		to := mustParse(t, "km/h")
		got, err := table.Convert(from, to)
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if !almostEqual(got.Value, 3.6) {
			t.Errorf("value = %v, want 3.6", got.Value)
		}
		if got.Dims.Exp("km") != 1 || got.Dims.Exp("h") != -1 || got.Dims.Len() != 2 {
			t.Errorf("dims = %v, want {km:1,h:-1}", got.Dims.Symbols())
		}
	})

	t.Run("1 W h to J", func(t *testing.T) {
		from := mustParse(t, "W h")
		to := mustParse(t, "J")
		got, err := table.Convert(from, to)
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if !almostEqual(got.Value, 3600) {
			t.Errorf("value = %v, want 3600", got.Value)
		}
		if got.Dims.Exp("J") != 1 || got.Dims.Len() != 1 {
			t.Errorf("dims = %v, want {J:1}", got.Dims.Symbols())
		}
	})

	t.Run("1 cm to yd", func(t *testing.T) {
		from := mustParse(t, "cm")
		to := mustParse(t, "yd")
		got, err := table.Convert(from, to)
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		want := 1 / (2.54 * 36)
		if !almostEqual(got.Value, want) {
			t.Errorf("value = %v, want %v", got.Value, want)
		}
		if got.Dims.Exp("yd") != 1 || got.Dims.Len() != 1 {
			t.Errorf("dims = %v, want {yd:1}", got.Dims.Symbols())
		}
	})

	t.Run("simplify 1 J/h", func(t *testing.T) {
		from := mustParse(t, "J/h")
		before := from.Complexity()
		got := table.Simplify(from)
		if got.Complexity() >= before {
			t.Errorf("Simplify complexity = %d, want strictly less than %d", got.Complexity(), before)
		}
	})

	t.Run("1 yd to kg is unreachable", func(t *testing.T) {
		from := mustParse(t, "yd")
		to := mustParse(t, "kg")
		_, err := table.Convert(from, to)
		var npe *NoPathError
		if !errors.As(err, &npe) {
			t.Fatalf("Convert error = %v, want *NoPathError", err)
		}
	})
}

func TestConvertSameShapeIsPureRelabel(t *testing.T) {
	table := mustLoadStandard(t)
	from := mustParse(t, "5m/s")
	to := mustParse(t, "m/s")
	got, err := table.Convert(from, to)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got.Value != from.Value {
		t.Errorf("value = %v, want unchanged %v", got.Value, from.Value)
	}
}

func TestTableStringListsEveryEdge(t *testing.T) {
	table := mustLoadStandard(t)
	lines := strings.Count(table.String(), "\n")
	if lines != len(table.Facts()) {
		t.Errorf("String() has %d lines, want one per edge (%d)", lines, len(table.Facts()))
	}
}

func TestSimplifyUnchangedWhenAlreadySimplest(t *testing.T) {
	table := mustLoadStandard(t)
	from := mustParse(t, "1m")
	got := table.Simplify(from)
	if !got.Equal(from) {
		t.Errorf("Simplify(%v) = %v, want unchanged", from, got)
	}
}
