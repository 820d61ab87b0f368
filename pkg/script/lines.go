package script

import (
	"sort"
	"strings"
)

// LineRecord is one line of a script as a half-open byte range.
// End includes the trailing newline; for the last line it is one past the
// end of the text, so the records partition [0, len(text)+1).
type LineRecord struct {
	Index int `json:"index" yaml:"index"`
	Begin int `json:"begin" yaml:"begin"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether offset lies within the line.
func (l LineRecord) Contains(offset int) bool {
	return l.Begin <= offset && offset < l.End
}

// LineIndex maps offsets to lines. The zero value indexes no lines.
type LineIndex struct {
	lines []LineRecord
}

// BuildLineIndex splits text on '\n' and records every line's range.
// An empty text has exactly one (empty) line.
func BuildLineIndex(text string) LineIndex {
	raw := strings.Split(text, "\n")
	lines := make([]LineRecord, 0, len(raw))

	begin := 0
	for i, line := range raw {
		end := begin + len(line) + 1
		lines = append(lines, LineRecord{Index: i, Begin: begin, End: end})
		begin = end
	}

	return LineIndex{lines: lines}
}

// Len returns the number of lines.
func (x LineIndex) Len() int {
	return len(x.lines)
}

// Lines returns a copy of the line records in order.
func (x LineIndex) Lines() []LineRecord {
	out := make([]LineRecord, len(x.lines))
	copy(out, x.lines)
	return out
}

// RecordAt returns the line containing offset.
func (x LineIndex) RecordAt(offset int) (LineRecord, bool) {
	// Records are sorted and contiguous, so the first line ending after
	// offset is the only candidate.
	i := sort.Search(len(x.lines), func(i int) bool {
		return x.lines[i].End > offset
	})
	if i < len(x.lines) && x.lines[i].Begin <= offset {
		return x.lines[i], true
	}
	return LineRecord{}, false
}

// LineAt returns the index of the line containing offset, or 0 when no line
// contains it.
func (x LineIndex) LineAt(offset int) int {
	if rec, ok := x.RecordAt(offset); ok {
		return rec.Index
	}
	return 0
}

// LineCount returns the number of lines in text without building an index.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}
