// Package token defines the lexical token values used to segment SQL scripts.
//
// Only the tokens that matter for statement boundaries are modelled here:
// statement delimiters, quote pairs and comment markers. Keywords and
// operators are out of scope for segmentation.
package token

import "strings"

// Default tokens used when a dialect leaves a field unset.
const (
	DefaultDelimiter   = ";"
	DefaultLineComment = "--"
	Newline            = "\n"
)

// Pair is an open/close token pair such as a quote ('...') or a block
// comment (/* ... */). Open and Close may be identical.
type Pair struct {
	Open  string `json:"open" yaml:"open"`
	Close string `json:"close" yaml:"close"`
}

// NewPair returns a pair. A single token is used for both ends.
func NewPair(open string, closing ...string) Pair {
	if len(closing) > 0 && closing[0] != "" {
		return Pair{Open: open, Close: closing[0]}
	}
	return Pair{Open: open, Close: open}
}

// ParsePair parses "open" or "open:close" notation.
func ParsePair(s string) (Pair, bool) {
	if s == "" {
		return Pair{}, false
	}
	open, closing, found := strings.Cut(s, ":")
	if found && (open == "" || closing == "") {
		// A bare ":" is a valid single-token pair.
		if s == ":" {
			return NewPair(":"), true
		}
		return Pair{}, false
	}
	return NewPair(open, closing), true
}

// IsValid reports whether both tokens are non-empty.
func (p Pair) IsValid() bool {
	return p.Open != "" && p.Close != ""
}

// Symmetric reports whether the pair opens and closes with the same token.
func (p Pair) Symmetric() bool {
	return p.Open == p.Close
}

// String renders the pair in "open:close" notation, or just "open" when symmetric.
func (p Pair) String() string {
	if p.Symmetric() {
		return p.Open
	}
	return p.Open + ":" + p.Close
}

// Default quote and block-comment pairs.
var (
	DoubleQuote  = NewPair(`"`)
	SingleQuote  = NewPair(`'`)
	BlockComment = NewPair("/*", "*/")
)
