package core

import "github.com/leapstack-labs/sqlseg/pkg/token"

// DialectConfig describes the lexical tokens that delimit statements in a SQL
// dialect. This is pure data owned by the caller; the segmenter only reads it.
//
// An unset field falls back to the ANSI default. For the slice fields "unset"
// means nil: a non-nil empty slice explicitly disables that token class.
type DialectConfig struct {
	// Name is the dialect identifier (e.g., "postgres", "sqlserver")
	Name string

	// Delimiter terminates a statement. Empty means ";".
	Delimiter string

	// Quotes are string/identifier quote pairs. nil means [" "].
	Quotes []token.Pair

	// LineComments start a comment running to the end of the line. nil means [--].
	LineComments []string

	// BlockComments are comment pairs that may span lines. nil means [/* */].
	BlockComments []token.Pair
}

// Clone returns a deep copy of the config. Nil-ness of each slice is preserved.
func (c *DialectConfig) Clone() *DialectConfig {
	if c == nil {
		return nil
	}
	return &DialectConfig{
		Name:          c.Name,
		Delimiter:     c.Delimiter,
		Quotes:        clonePairs(c.Quotes),
		LineComments:  cloneStrings(c.LineComments),
		BlockComments: clonePairs(c.BlockComments),
	}
}

func clonePairs(in []token.Pair) []token.Pair {
	if in == nil {
		return nil
	}
	out := make([]token.Pair, len(in))
	copy(out, in)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
