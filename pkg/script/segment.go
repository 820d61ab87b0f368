package script

import "github.com/leapstack-labs/sqlseg/pkg/token"

// Segment is one statement extracted from a script.
//
// Begin and End are byte offsets of the trimmed statement in the original
// text. FromLine/ToLine are the lines containing Begin and End, and
// FromPosition/ToPosition are byte columns within those lines.
type Segment struct {
	Query        string `json:"query" yaml:"query"`
	Begin        int    `json:"begin" yaml:"begin"`
	End          int    `json:"end" yaml:"end"`
	FromLine     int    `json:"from_line" yaml:"from_line"`
	ToLine       int    `json:"to_line" yaml:"to_line"`
	FromPosition int    `json:"from_position" yaml:"from_position"`
	ToPosition   int    `json:"to_position" yaml:"to_position"`
}

// Contains reports whether offset lies within [Begin, End).
func (s Segment) Contains(offset int) bool {
	return s.Begin <= offset && offset < s.End
}

// Span returns the segment's range as a token span.
func (s Segment) Span() token.Span {
	return token.Span{
		Start: token.Position{Line: s.FromLine, Column: s.FromPosition, Offset: s.Begin},
		End:   token.Position{Line: s.ToLine, Column: s.ToPosition, Offset: s.End},
	}
}

// Unterminated describes a quote or comment still open at end of text.
// Text after Offset was not emitted as a segment.
type Unterminated struct {
	Kind   token.ContextKind `json:"kind" yaml:"kind"`
	Open   string            `json:"open" yaml:"open"`
	Close  string            `json:"close" yaml:"close"`
	Offset int               `json:"offset" yaml:"offset"` // offset of the opening token
}

// Result is the immutable outcome of scanning one text.
type Result struct {
	Index        LineIndex
	Segments     []Segment
	Unterminated *Unterminated
}

// Lines returns the line records of the scanned text.
func (r Result) Lines() []LineRecord {
	return r.Index.Lines()
}

// clone copies the slices so callers cannot mutate a cached result.
func (r Result) clone() Result {
	out := Result{Index: r.Index}
	if r.Segments != nil {
		out.Segments = make([]Segment, len(r.Segments))
		copy(out.Segments, r.Segments)
	}
	if r.Unterminated != nil {
		u := *r.Unterminated
		out.Unterminated = &u
	}
	return out
}
