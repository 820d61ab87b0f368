// Package ansi provides the base ANSI SQL dialect for script segmentation.
//
// This dialect serves as the default for callers that never configure one:
// semicolon-terminated statements, double-quoted identifiers, -- line comments
// and /* */ block comments. The single-quote string literal pair is not part of
// the dialect; it is prepended by the segmenter's default overrides.
package ansi

import "github.com/leapstack-labs/sqlseg/pkg/dialect"

func init() {
	dialect.Register(ANSI)
}

// ANSI is the base ANSI SQL dialect.
var ANSI = dialect.New(Config).
	Describe("ANSI SQL (default)").
	Build()
