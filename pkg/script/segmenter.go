// Package script splits multi-statement SQL scripts into statements.
//
// A Segmenter holds the active dialect, caller-supplied custom delimiters and
// quotes, and the current script text. Results are computed lazily: setters
// only record state, and the first accessor after a change rescans the whole
// text. Repeated accessor calls between changes are served from an immutable
// snapshot.
//
// A Segmenter is not safe for concurrent use. Give each editor session its own
// instance or serialise access externally.
package script

import (
	"log/slog"

	"github.com/leapstack-labs/sqlseg/pkg/core"
	"github.com/leapstack-labs/sqlseg/pkg/dialect"
	"github.com/leapstack-labs/sqlseg/pkg/token"
)

// snapshot pairs a scanned text and configuration generation with its result.
type snapshot struct {
	text       string
	generation uint64
	result     Result
}

// Segmenter segments a script for one owner at a time.
type Segmenter struct {
	logger *slog.Logger

	dialect   *core.DialectConfig
	overrides dialect.Overrides
	resolved  dialect.Resolved

	// generation increments on every configuration change.
	generation uint64

	text  string
	snap  *snapshot
	scans int
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithLogger sets the logger used for rescan diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Segmenter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDialect sets the initial dialect.
func WithDialect(d *core.DialectConfig) Option {
	return func(s *Segmenter) {
		s.dialect = d.Clone()
	}
}

// WithCustomDelimiters sets the initial custom delimiters.
func WithCustomDelimiters(delims ...string) Option {
	return func(s *Segmenter) {
		s.overrides.Delimiters = append([]string(nil), delims...)
	}
}

// WithCustomQuotes replaces the default custom quote list.
func WithCustomQuotes(pairs ...token.Pair) Option {
	return func(s *Segmenter) {
		s.overrides.Quotes = append([]token.Pair(nil), pairs...)
	}
}

// New creates a Segmenter with the default dialect and the default single
// quote pair.
func New(opts ...Option) *Segmenter {
	s := &Segmenter{
		logger: slog.New(slog.DiscardHandler),
		overrides: dialect.Overrides{
			Quotes: append([]token.Pair(nil), dialect.DefaultOverrides.Quotes...),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reconfigure()
	return s
}

// SetDialect sets the active dialect. Nil restores the defaults.
// The segment cache is invalidated.
func (s *Segmenter) SetDialect(d *core.DialectConfig) {
	s.dialect = d.Clone()
	s.reconfigure()
}

// SetCustomDelimiters replaces the custom delimiters, which are tried before
// the dialect delimiter.
func (s *Segmenter) SetCustomDelimiters(delims []string) {
	s.overrides.Delimiters = append([]string(nil), delims...)
	s.reconfigure()
}

// SetCustomQuotes replaces the custom quote pairs prepended to the dialect
// quotes. Passing nil or an empty list clears the default single-quote pair.
func (s *Segmenter) SetCustomQuotes(pairs []token.Pair) {
	s.overrides.Quotes = append([]token.Pair(nil), pairs...)
	s.reconfigure()
}

// reconfigure resolves the dialect once per configuration change.
func (s *Segmenter) reconfigure() {
	s.resolved = dialect.Resolve(s.dialect, s.overrides)
	s.generation++
}

// SetScript replaces the script text. Nothing is scanned until an accessor
// needs it.
func (s *Segmenter) SetScript(text string) {
	s.text = text
}

// Script returns the current script text.
func (s *Segmenter) Script() string {
	return s.text
}

// Dialect returns the resolved token set currently in effect.
func (s *Segmenter) Dialect() dialect.Resolved {
	return s.resolved.Clone()
}

// ScriptDelimiters returns the custom delimiters followed by the dialect delimiter.
func (s *Segmenter) ScriptDelimiters() []string {
	return s.Dialect().Delimiters
}

// QuoteStrings returns the custom quote pairs followed by the dialect quotes.
func (s *Segmenter) QuoteStrings() []token.Pair {
	return s.Dialect().Quotes
}

// SingleLineComments returns the dialect's line-comment tokens.
func (s *Segmenter) SingleLineComments() []string {
	return s.Dialect().LineComments
}

// MultiLineComments returns the dialect's block-comment pairs.
func (s *Segmenter) MultiLineComments() []token.Pair {
	return s.Dialect().BlockComments
}

// current returns the snapshot for the current text and configuration,
// rescanning when either changed.
func (s *Segmenter) current() *snapshot {
	if s.snap != nil && s.snap.generation == s.generation && s.snap.text == s.text {
		return s.snap
	}

	result := Scan(s.text, s.resolved)
	s.snap = &snapshot{
		text:       s.text,
		generation: s.generation,
		result:     result,
	}
	s.scans++

	s.logger.Debug("script rescanned",
		"bytes", len(s.text),
		"lines", result.Index.Len(),
		"segments", len(result.Segments),
		"dialect", s.resolved.Name,
		"unterminated", result.Unterminated != nil,
	)

	return s.snap
}

// Scans returns how many full scans have run. Accessors between changes do
// not increase it.
func (s *Segmenter) Scans() int {
	return s.scans
}

// Result returns a copy of the current scan result.
func (s *Segmenter) Result() Result {
	return s.current().result.clone()
}

// Segments returns the statements of the current script in order.
func (s *Segmenter) Segments() []Segment {
	return s.current().result.clone().Segments
}

// LineCount returns the number of lines in the current script.
func (s *Segmenter) LineCount() int {
	return s.current().result.Index.Len()
}

// Lines returns the line records of the current script.
func (s *Segmenter) Lines() []LineRecord {
	return s.current().result.Lines()
}

// Unterminated reports the quote or comment left open at the end of the
// current script, if any.
func (s *Segmenter) Unterminated() (Unterminated, bool) {
	u := s.current().result.Unterminated
	if u == nil {
		return Unterminated{}, false
	}
	return *u, true
}
