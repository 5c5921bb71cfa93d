package quantity

import (
	"fmt"
	"strings"
)

// String renders a Datum as "value (numerator / denominator)": numerator
// lists each positive-exponent symbol (as sym or sym^e), denominator lists
// negative ones with absolute exponents. When there are no positive
// exponents, numerator is "1"; when there are no negative ones, the
// "/ denominator" clause is omitted. Multi-factor groups are parenthesised.
func (a Datum) String() string {
	var positives, negatives []string
	for _, s := range a.Dims.Symbols() {
		e := a.Dims.Exp(s)
		switch {
		case e > 0:
			positives = append(positives, chainTerm(s, e))
		case e < 0:
			negatives = append(negatives, chainTerm(s, -e))
		}
	}

	numerator := "1"
	if len(positives) > 0 {
		numerator = chain(positives)
	}

	out := fmt.Sprintf("%v (%s", a.Value, numerator)
	if len(negatives) > 0 {
		out += " / " + chain(negatives)
	}
	return out + ")"
}

func chainTerm(symbol string, exp int) string {
	if exp == 1 {
		return symbol
	}
	return fmt.Sprintf("%s^%d", symbol, exp)
}

func chain(terms []string) string {
	joined := strings.Join(terms, " ")
	if len(terms) > 1 {
		return "(" + joined + ")"
	}
	return joined
}
