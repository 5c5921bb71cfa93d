package quantity

import "encoding/json"

// MarshalJSON encodes a Datum as its string form, e.g. "100 (km / h)".
func (a Datum) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON is deliberately unimplemented: decoding the string form
// would need the expression parser, which lives in package lang and
// itself imports quantity. JSON producers that need to round-trip a Datum
// should encode Value and Dims.Symbols()/Exp directly rather than through
// this Stringer.
