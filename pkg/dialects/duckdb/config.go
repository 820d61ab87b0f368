package duckdb

import (
	"github.com/leapstack-labs/sqlseg/pkg/core"
	"github.com/leapstack-labs/sqlseg/pkg/token"
)

// Config is the DuckDB script token configuration.
// This is pure data - the segmenter resolves it against custom overrides.
var Config = &core.DialectConfig{
	Name:          "duckdb",
	Delimiter:     ";",
	Quotes:        []token.Pair{token.DoubleQuote},
	LineComments:  []string{token.DefaultLineComment},
	BlockComments: []token.Pair{token.BlockComment},
}
