// Package data bundles nuts' default conversion-fact file so the CLI has
// a standard fact set available without requiring a --facts flag.
package data

import _ "embed"

//go:embed facts.txt
var DefaultFacts []byte
