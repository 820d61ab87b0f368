package dialect

import (
	"github.com/leapstack-labs/sqlseg/pkg/core"
	"github.com/leapstack-labs/sqlseg/pkg/token"
)

// Overrides are caller-supplied tokens that augment a dialect.
//
// Delimiters are tried before the dialect delimiter and never replace it.
// Quotes are prepended to the dialect's quote list.
type Overrides struct {
	Delimiters []string
	Quotes     []token.Pair
}

// DefaultOverrides carries the single-quote pair that is always prepended to
// the dialect quotes unless the caller clears it.
var DefaultOverrides = Overrides{Quotes: []token.Pair{token.SingleQuote}}

// NoOverrides resolves a dialect on its own.
var NoOverrides = Overrides{}

// Resolved is the concrete token set the scanner works with.
// All lists are ordered by priority and contain no empty tokens.
type Resolved struct {
	Name          string
	Delimiters    []string
	Quotes        []token.Pair
	LineComments  []string
	BlockComments []token.Pair
}

// Delimiter returns the dialect delimiter, which is always the last entry.
func (r Resolved) Delimiter() string {
	if len(r.Delimiters) == 0 {
		return token.DefaultDelimiter
	}
	return r.Delimiters[len(r.Delimiters)-1]
}

// Custom returns the custom delimiters that precede the dialect delimiter.
func (r Resolved) Custom() []string {
	if len(r.Delimiters) == 0 {
		return nil
	}
	return r.Delimiters[:len(r.Delimiters)-1]
}

// Clone returns a deep copy so callers cannot mutate a cached value.
func (r Resolved) Clone() Resolved {
	return Resolved{
		Name:          r.Name,
		Delimiters:    append([]string(nil), r.Delimiters...),
		Quotes:        append([]token.Pair(nil), r.Quotes...),
		LineComments:  append([]string(nil), r.LineComments...),
		BlockComments: append([]token.Pair(nil), r.BlockComments...),
	}
}

// Resolve merges a dialect description with custom overrides.
// A nil dialect resolves to the ANSI defaults; unset fields fall back to the
// default individually. Comment tokens come from the dialect only.
func Resolve(d *core.DialectConfig, o Overrides) Resolved {
	if d == nil {
		d = &core.DialectConfig{}
	}

	r := Resolved{Name: d.Name}

	delim := d.Delimiter
	if delim == "" {
		delim = token.DefaultDelimiter
	}
	r.Delimiters = appendTokens(make([]string, 0, len(o.Delimiters)+1), o.Delimiters...)
	r.Delimiters = appendTokens(r.Delimiters, delim)

	quotes := d.Quotes
	if quotes == nil {
		quotes = []token.Pair{token.DoubleQuote}
	}
	r.Quotes = appendPairs(make([]token.Pair, 0, len(o.Quotes)+len(quotes)), o.Quotes...)
	r.Quotes = appendPairs(r.Quotes, quotes...)

	lineComments := d.LineComments
	if lineComments == nil {
		lineComments = []string{token.DefaultLineComment}
	}
	r.LineComments = appendTokens(make([]string, 0, len(lineComments)), lineComments...)

	blockComments := d.BlockComments
	if blockComments == nil {
		blockComments = []token.Pair{token.BlockComment}
	}
	r.BlockComments = appendPairs(make([]token.Pair, 0, len(blockComments)), blockComments...)

	return r
}

func appendTokens(dst []string, tokens ...string) []string {
	for _, t := range tokens {
		if t != "" {
			dst = append(dst, t)
		}
	}
	return dst
}

// appendPairs skips pairs without an opening token. A missing close token
// means the pair is symmetric.
func appendPairs(dst []token.Pair, pairs ...token.Pair) []token.Pair {
	for _, p := range pairs {
		if p.Open == "" {
			continue
		}
		if p.Close == "" {
			p.Close = p.Open
		}
		dst = append(dst, p)
	}
	return dst
}
