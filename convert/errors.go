package convert

import (
	"fmt"

	"github.com/nuts/nuts/quantity"
)

// NoPathError reports that no sequence of declared conversion facts links
// From's dimension shape to To's.
type NoPathError struct {
	From, To quantity.Datum
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("convert: no conversion path from %s to %s", e.From, e.To)
}

// MalformedFactError reports a conversion-fact line that failed to parse
// or did not resolve to a unit literal.
type MalformedFactError struct {
	Line int
	Text string
	// Cause is the underlying parse or validation error.
	Cause error
}

func (e *MalformedFactError) Error() string {
	return fmt.Sprintf("convert: malformed fact at line %d (%q): %v", e.Line, e.Text, e.Cause)
}

func (e *MalformedFactError) Unwrap() error { return e.Cause }
