package mysql

import (
	"github.com/leapstack-labs/sqlseg/pkg/core"
	"github.com/leapstack-labs/sqlseg/pkg/token"
)

// Config is the MySQL script token configuration.
// This is pure data - the segmenter resolves it against custom overrides.
var Config = &core.DialectConfig{
	Name:      "mysql",
	Delimiter: ";",
	Quotes: []token.Pair{
		token.NewPair("`"),
		token.DoubleQuote,
	},
	LineComments:  []string{token.DefaultLineComment, "#"},
	BlockComments: []token.Pair{token.BlockComment},
}
