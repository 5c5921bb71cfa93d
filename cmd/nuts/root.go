package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nuts/nuts/convert"
	"github.com/nuts/nuts/data"
	"github.com/nuts/nuts/lang"
)

// Exit codes: 0 success, 2 parse/unknown-symbol error, 3 NoPathError, 1
// anything else (bad --facts path, a read error on the fact file, etc).
// Malformed fact lines are skipped, not reported through the exit code.
const (
	exitOK     = 0
	exitOther  = 1
	exitParse  = 2
	exitNoPath = 3
)

// exitError pairs an error with the process exit code main should use,
// so runNuts can return ordinary Go errors while still driving cobra's
// usual error printing.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

var (
	toExpr    string
	factsPath string
	debug     bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "nuts <expr>",
		Short:        "Convert and simplify physical-quantity expressions",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runNuts,
	}
	cmd.Flags().StringVarP(&toExpr, "to", "t", "", "target expression; omit to simplify instead")
	cmd.Flags().StringVar(&factsPath, "facts", "", "path to a conversion-fact file (defaults to the bundled standard set)")
	cmd.Flags().BoolVarP(&debug, "debug", "D", false, "emit timing diagnostics")
	return cmd
}

func runNuts(cmd *cobra.Command, args []string) error {
	start := time.Now()

	from, err := lang.Parse(args[0])
	if err != nil {
		return &exitError{code: exitParse, err: err}
	}
	if debug {
		log.Printf("parse source: %s", time.Since(start))
	}

	loadStart := time.Now()
	table, report, err := loadTable()
	if err != nil {
		return &exitError{code: exitOther, err: err}
	}
	if debug {
		log.Printf("load facts: %s (%d loaded, %d skipped)", time.Since(loadStart), report.Loaded, len(report.Skipped))
		log.Printf("fact table:\n%s", table.String())
	}

	out := cmd.OutOrStdout()

	if toExpr == "" {
		searchStart := time.Now()
		result := table.Simplify(from)
		if debug {
			log.Printf("simplify: %s", time.Since(searchStart))
		}
		fmt.Fprintln(out, result.String())
		return nil
	}

	to, err := lang.Parse(toExpr)
	if err != nil {
		return &exitError{code: exitParse, err: err}
	}

	searchStart := time.Now()
	result, err := table.Convert(from, to)
	if debug {
		log.Printf("convert: %s", time.Since(searchStart))
	}
	if err != nil {
		var npe *convert.NoPathError
		if errors.As(err, &npe) {
			return &exitError{code: exitNoPath, err: err}
		}
		return &exitError{code: exitOther, err: err}
	}
	fmt.Fprintln(out, result.String())
	return nil
}

func loadTable() (*convert.Table, *convert.LoadReport, error) {
	if factsPath == "" {
		return convert.LoadFacts(bytes.NewReader(data.DefaultFacts), convert.LoadOptions{})
	}
	f, err := os.Open(factsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening facts file: %w", err)
	}
	defer f.Close()
	return convert.LoadFacts(f, convert.LoadOptions{})
}
