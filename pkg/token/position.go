package token

// Position represents a location in a script.
type Position struct {
	Line   int // 0-based line number
	Column int // 0-based byte column within the line
	Offset int // 0-based byte offset
}

// Span represents a half-open byte range [Start, End) in a script.
type Span struct {
	Start Position
	End   Position
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// MultiLine returns true if the span ends on a later line than it starts.
func (s Span) MultiLine() bool {
	return s.End.Line > s.Start.Line
}
