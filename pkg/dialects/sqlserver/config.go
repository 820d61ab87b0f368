package sqlserver

import (
	"github.com/leapstack-labs/sqlseg/pkg/core"
	"github.com/leapstack-labs/sqlseg/pkg/token"
)

// Config is the SQL Server script token configuration.
// This is pure data - the segmenter resolves it against custom overrides.
var Config = &core.DialectConfig{
	Name:      "sqlserver",
	Delimiter: ";",
	Quotes: []token.Pair{
		token.DoubleQuote,
		token.NewPair("[", "]"),
	},
	LineComments:  []string{token.DefaultLineComment},
	BlockComments: []token.Pair{token.BlockComment},
}
