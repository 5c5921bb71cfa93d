// Package quantity implements the value-and-dimension algebra: a scalar
// paired with a sparse mapping from atomic unit symbols to signed integer
// exponents.
package quantity

import (
	"sort"
	"strconv"
	"strings"
)

// Dims is a canonical dimension map: symbol -> exponent. It never holds a
// zero-valued entry. Iteration order of the exported accessors follows
// insertion order, not Go's randomized map order, so that formatting and
// search tie-breaks are deterministic (spec requires this explicitly).
type Dims struct {
	exp   map[string]int
	order []string
}

// NewDims builds a canonical Dims from an exponent list, dropping zero
// entries and keeping first-seen order for duplicate symbols.
func NewDims(pairs ...DimPair) *Dims {
	d := &Dims{exp: make(map[string]int, len(pairs))}
	for _, p := range pairs {
		d.add(p.Symbol, p.Exp)
	}
	return d
}

// DimPair is a single (symbol, exponent) entry used to build a Dims.
type DimPair struct {
	Symbol string
	Exp    int
}

func (d *Dims) add(symbol string, exp int) {
	if exp == 0 {
		return
	}
	if _, ok := d.exp[symbol]; !ok {
		d.order = append(d.order, symbol)
	}
	d.exp[symbol] += exp
	if d.exp[symbol] == 0 {
		delete(d.exp, symbol)
		d.removeFromOrder(symbol)
	}
}

func (d *Dims) removeFromOrder(symbol string) {
	for i, s := range d.order {
		if s == symbol {
			d.order = append(d.order[:i], d.order[i+1:]...)
			return
		}
	}
}

// Len returns the number of distinct symbols.
func (d *Dims) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}

// Exp returns the exponent for symbol, 0 if absent.
func (d *Dims) Exp(symbol string) int {
	if d == nil {
		return 0
	}
	return d.exp[symbol]
}

// Symbols returns the symbols in canonical (insertion) order.
func (d *Dims) Symbols() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Equal reports whether two dimension maps contain the same key set with
// equal exponents. Order is not observable in equality.
func (d *Dims) Equal(o *Dims) bool {
	if d.Len() != o.Len() {
		return false
	}
	for _, s := range d.Symbols() {
		if d.Exp(s) != o.Exp(s) {
			return false
		}
	}
	return true
}

// Key returns a canonical string suitable for use as a map key; it is
// stable across calls for equal dimension maps regardless of insertion
// order, since it sorts symbols before joining.
func (d *Dims) Key() string {
	syms := d.Symbols()
	// Sort for key stability; this does not affect Symbols()'s
	// insertion-ordered output used for formatting/search tie-break.
	sort.Strings(syms)
	var b strings.Builder
	for _, s := range syms {
		b.WriteString(s)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(d.Exp(s)))
		b.WriteByte(';')
	}
	return b.String()
}

// mulDims returns a fresh canonical Dims holding the pointwise sum of a and
// b's exponents, zero entries dropped.
func mulDims(a, b *Dims) *Dims {
	out := NewDims()
	for _, s := range a.Symbols() {
		out.add(s, a.Exp(s))
	}
	for _, s := range b.Symbols() {
		out.add(s, b.Exp(s))
	}
	return out
}

// divDims returns a fresh canonical Dims holding the pointwise difference
// a - b, zero entries dropped.
func divDims(a, b *Dims) *Dims {
	out := NewDims()
	for _, s := range a.Symbols() {
		out.add(s, a.Exp(s))
	}
	for _, s := range b.Symbols() {
		out.add(s, -b.Exp(s))
	}
	return out
}

// powDims returns a fresh canonical Dims holding each exponent of a
// multiplied by n, zero entries dropped (n==0 yields the empty map).
func powDims(a *Dims, n int) *Dims {
	out := NewDims()
	for _, s := range a.Symbols() {
		out.add(s, a.Exp(s)*n)
	}
	return out
}
