package convert

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nuts/nuts/lang"
)

// LoadOptions configures LoadFacts.
type LoadOptions struct {
	// FailFast stops at the first malformed line instead of skipping it
	// and continuing.
	FailFast bool
}

// LoadReport summarizes a LoadFacts call: how many facts loaded, and the
// per-line errors for facts that were skipped (always empty when
// LoadOptions.FailFast is set, since that mode returns on the first one).
type LoadReport struct {
	Loaded  int
	Skipped []*MalformedFactError
}

// LoadFacts reads one conversion fact per line from r: whitespace
// separated "<from-expr> <to-expr> <factor>". Lines starting with '#' or
// with fewer than three fields are skipped; fields past the third are
// ignored. Both expressions must parse to unit literals (Value == 1).
//
// LoadFacts takes an io.Reader rather than a path so the caller owns file
// opening.
func LoadFacts(r io.Reader, opts LoadOptions) (*Table, *LoadReport, error) {
	scanner := bufio.NewScanner(r)
	report := &LoadReport{}
	var edges []Edge

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) < 3 {
			continue
		}

		factEdges, err := parseFactLine(fields)
		if err != nil {
			mfe := &MalformedFactError{Line: lineNo, Text: line, Cause: err}
			if opts.FailFast {
				return nil, report, mfe
			}
			report.Skipped = append(report.Skipped, mfe)
			continue
		}

		edges = append(edges, factEdges...)
		report.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return nil, report, fmt.Errorf("convert: reading fact file: %w", err)
	}

	return &Table{edges: edges}, report, nil
}

func parseFactLine(fields []string) ([]Edge, error) {
	from, err := lang.Parse(fields[0])
	if err != nil {
		return nil, fmt.Errorf("from-expr %q: %w", fields[0], err)
	}
	if from.Value != 1 {
		return nil, fmt.Errorf("from-expr %q must be a unit literal, got value %g", fields[0], from.Value)
	}

	to, err := lang.Parse(fields[1])
	if err != nil {
		return nil, fmt.Errorf("to-expr %q: %w", fields[1], err)
	}
	if to.Value != 1 {
		return nil, fmt.Errorf("to-expr %q must be a unit literal, got value %g", fields[1], to.Value)
	}

	// shopspring/decimal gives exact parsing of the literal factor field
	// (e.g. "2.54") ahead of the float64 conversion the algebra uses,
	// avoiding strconv.ParseFloat surprises on malformed literals.
	factorDec, err := decimal.NewFromString(fields[2])
	if err != nil {
		return nil, fmt.Errorf("factor %q: %w", fields[2], err)
	}
	factor, _ := factorDec.Float64()
	if factor == 0 {
		return nil, fmt.Errorf("factor %q must be non-zero", fields[2])
	}

	return factorConv(from.Dims, to.Dims, factor), nil
}
