package script

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/sqlseg/pkg/dialect"
	"github.com/leapstack-labs/sqlseg/pkg/token"
)

// mode is the scanner's lexical state: Normal, or Suppressed inside a quote
// or comment until the closing token appears.
type mode struct {
	suppressed bool
	kind       token.ContextKind
	open       string
	close      string
	openedAt   int // offset just past the opening token
}

var normal = mode{}

func suppress(kind token.ContextKind, open, closing string, pos int) mode {
	return mode{suppressed: true, kind: kind, open: open, close: closing, openedAt: pos}
}

// closedBy reports whether the text scanned so far ends with the closing
// token. The token must lie entirely after the opening token so that "/*/"
// does not close the comment it opens.
func (m mode) closedBy(acc string, pos int) bool {
	return pos-len(m.close) >= m.openedAt && strings.HasSuffix(acc, m.close)
}

// Scan splits text into statements using the resolved dialect tokens.
//
// It is a single forward pass over runes. Each character extends the current
// statement; while suppressed only the closing token is checked. Otherwise,
// first match wins in the order delimiter (or end of text), line comment,
// quote, block comment.
//
// Scan never fails. A quote or comment left open at end of text swallows the
// rest of the script: that text is not emitted and Result.Unterminated
// describes the open context.
func Scan(text string, d dialect.Resolved) Result {
	res := Result{Index: BuildLineIndex(text)}

	var (
		state    = normal
		segStart = 0
	)

	emit := func(body string, from int) {
		left := strings.TrimLeftFunc(body, unicode.IsSpace)
		query := strings.TrimRightFunc(left, unicode.IsSpace)
		if query == "" {
			return
		}

		begin := from + len(body) - len(left)
		end := begin + len(query)
		fromLine, ok := res.Index.RecordAt(begin)
		if !ok {
			return
		}
		toLine, ok := res.Index.RecordAt(end)
		if !ok {
			return
		}

		res.Segments = append(res.Segments, Segment{
			Query:        query,
			Begin:        begin,
			End:          end,
			FromLine:     fromLine.Index,
			ToLine:       toLine.Index,
			FromPosition: begin - fromLine.Begin,
			ToPosition:   end - toLine.Begin,
		})
	}

	for pos := 0; pos < len(text); {
		_, width := utf8.DecodeRuneInString(text[pos:])
		pos += width

		acc := text[segStart:pos]
		atEnd := pos == len(text)

		if state.suppressed {
			if state.closedBy(acc, pos) {
				state = normal
			}
			continue
		}

		if delim, ok := matchSuffix(acc, d.Delimiters); ok || atEnd {
			body := acc
			if ok {
				body = acc[:len(acc)-len(delim)]
			}
			emit(body, segStart)
			segStart = pos
			continue
		}

		if tok, ok := matchSuffix(acc, d.LineComments); ok {
			state = suppress(token.LineCommentContext, tok, token.Newline, pos)
			continue
		}

		if p, ok := matchOpen(acc, d.Quotes); ok {
			state = suppress(token.QuoteContext, p.Open, p.Close, pos)
			continue
		}

		if p, ok := matchOpen(acc, d.BlockComments); ok {
			state = suppress(token.BlockCommentContext, p.Open, p.Close, pos)
		}
	}

	if state.suppressed {
		res.Unterminated = &Unterminated{
			Kind:   state.kind,
			Open:   state.open,
			Close:  state.close,
			Offset: state.openedAt - len(state.open),
		}
	}

	return res
}

func matchSuffix(acc string, tokens []string) (string, bool) {
	for _, t := range tokens {
		if t != "" && strings.HasSuffix(acc, t) {
			return t, true
		}
	}
	return "", false
}

func matchOpen(acc string, pairs []token.Pair) (token.Pair, bool) {
	for _, p := range pairs {
		if p.IsValid() && strings.HasSuffix(acc, p.Open) {
			return p, true
		}
	}
	return token.Pair{}, false
}
