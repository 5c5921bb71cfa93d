package quantity

// Datum is a scalar value paired with a canonical dimension map. A Unit
// literal is a Datum whose Value is exactly 1.
//
// Dims is a sparse, symbol-keyed exponent map rather than a fixed-size
// array: unit symbols are opaque strings and the engine places no bound
// on how many distinct ones appear in an expression.
type Datum struct {
	Value float64
	Dims  *Dims
}

// New builds a Datum from a value and an exponent list, dropping zero
// exponents immediately (construction is always canonical).
func New(value float64, pairs ...DimPair) Datum {
	return Datum{Value: value, Dims: NewDims(pairs...)}
}

// Unit builds a unit literal (Value == 1) from an exponent list.
func Unit(pairs ...DimPair) Datum {
	return New(1, pairs...)
}

// Scalar builds a dimensionless Datum with the given value.
func Scalar(value float64) Datum {
	return New(value)
}

// One is the dimensionless unit literal.
var One = Unit()

// Mul multiplies two quantities: values multiply, dimension maps add
// pointwise (zero entries dropped).
func (a Datum) Mul(b Datum) Datum {
	return Datum{Value: a.Value * b.Value, Dims: mulDims(a.Dims, b.Dims)}
}

// Div divides two quantities: values divide, dimension maps subtract
// pointwise (zero entries dropped). Division by a quantity whose value is
// zero is an ArithmeticError.
func (a Datum) Div(b Datum) (Datum, error) {
	if b.Value == 0 {
		return Datum{}, &ArithmeticError{Op: "div"}
	}
	return Datum{Value: a.Value / b.Value, Dims: divDims(a.Dims, b.Dims)}, nil
}

// MustDiv divides like Div but panics on ArithmeticError. Used internally
// where the divisor is statically known to be non-zero (e.g. dividing by a
// unit literal, whose value is 1).
func (a Datum) MustDiv(b Datum) Datum {
	d, err := a.Div(b)
	if err != nil {
		panic(err)
	}
	return d
}

// Pow raises a quantity to an integer power: the value is raised to n and
// every exponent is multiplied by n (n==0 yields the dimensionless unit).
func (a Datum) Pow(n int) Datum {
	return Datum{Value: intPow(a.Value, n), Dims: powDims(a.Dims, n)}
}

func intPow(base float64, n int) float64 {
	neg := n < 0
	if neg {
		n = -n
	}
	result := 1.0
	for ; n > 0; n-- {
		result *= base
	}
	if neg {
		return 1 / result
	}
	return result
}

// Complexity is the sum of absolute values of all exponents in Dims; it is
// the objective simplification minimizes.
func (a Datum) Complexity() int {
	total := 0
	for _, s := range a.Dims.Symbols() {
		e := a.Dims.Exp(s)
		if e < 0 {
			e = -e
		}
		total += e
	}
	return total
}

// Equal reports full (value, dims) equality: a.Value == b.Value &&
// a.Dims == b.Dims.
func (a Datum) Equal(b Datum) bool {
	return a.Value == b.Value && a.Dims.Equal(b.Dims)
}

// SameShape reports dimension-only equality, the notion of equality the
// conversion-path search uses for visited-state membership, independent of
// the carried scalar value.
func (a Datum) SameShape(b Datum) bool {
	return a.Dims.Equal(b.Dims)
}

// WithDims returns a fresh Datum carrying a's value but dims's dimension
// shape, used when rescaling a quantity onto a target unit's carrier.
func (a Datum) WithDims(dims *Dims) Datum {
	return Datum{Value: a.Value, Dims: dims}
}
