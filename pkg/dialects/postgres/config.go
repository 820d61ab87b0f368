package postgres

import (
	"github.com/leapstack-labs/sqlseg/pkg/core"
	"github.com/leapstack-labs/sqlseg/pkg/token"
)

// Config is the PostgreSQL script token configuration.
// This is pure data - the segmenter resolves it against custom overrides.
var Config = &core.DialectConfig{
	Name:      "postgres",
	Delimiter: ";",
	Quotes: []token.Pair{
		token.DoubleQuote,
		token.NewPair("$$"), // dollar-quoted function bodies
	},
	LineComments:  []string{token.DefaultLineComment},
	BlockComments: []token.Pair{token.BlockComment},
}
