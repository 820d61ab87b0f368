package script

import "sort"

// SegmentAt returns the statement at offset.
//
// A statement whose [Begin, End) contains offset wins. Otherwise, when the
// cursor sits in trailing whitespace or on a stripped delimiter, this falls
// back to the last statement starting at or before offset that ends on the
// cursor's line or the line before it. The fallback is a heuristic for
// "run current statement", not an exact mapping. An offset outside the
// script counts as line 0.
func (s *Segmenter) SegmentAt(offset int) (Segment, bool) {
	res := s.current().result
	segs := res.Segments

	// Segments are ordered and never overlap.
	i := sort.Search(len(segs), func(i int) bool {
		return segs[i].End > offset
	})
	if i < len(segs) && segs[i].Contains(offset) {
		return segs[i], true
	}

	line := res.Index.LineAt(offset)
	for j := len(segs) - 1; j >= 0; j-- {
		seg := segs[j]
		if seg.Begin > offset {
			continue
		}
		if seg.ToLine == line || seg.ToLine == line-1 {
			return seg, true
		}
	}

	return Segment{}, false
}

// LineAt returns the index of the line containing offset, or 0 when the
// offset is outside the script.
func (s *Segmenter) LineAt(offset int) int {
	return s.current().result.Index.LineAt(offset)
}

// LineRecordAt returns the line containing offset.
func (s *Segmenter) LineRecordAt(offset int) (LineRecord, bool) {
	return s.current().result.Index.RecordAt(offset)
}
