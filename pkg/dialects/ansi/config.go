package ansi

import (
	"github.com/leapstack-labs/sqlseg/pkg/core"
	"github.com/leapstack-labs/sqlseg/pkg/token"
)

// Config is the ANSI script token configuration. Its values match the
// defaults the resolver falls back to when a dialect leaves a field unset.
var Config = &core.DialectConfig{
	Name:          "ansi",
	Delimiter:     token.DefaultDelimiter,
	Quotes:        []token.Pair{token.DoubleQuote},
	LineComments:  []string{token.DefaultLineComment},
	BlockComments: []token.Pair{token.BlockComment},
}
