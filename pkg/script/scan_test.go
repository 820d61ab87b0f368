package script

import (
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlseg/pkg/core"
	"github.com/leapstack-labs/sqlseg/pkg/dialect"
	"github.com/leapstack-labs/sqlseg/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlseg/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanDefault(text string) Result {
	return Scan(text, dialect.Resolve(nil, dialect.DefaultOverrides))
}

func queries(segs []Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.Query
	}
	return out
}

func TestScanSimpleScript(t *testing.T) {
	res := scanDefault("SELECT 1; SELECT 2;")

	assert.Equal(t, []Segment{
		{Query: "SELECT 1", Begin: 0, End: 8, FromLine: 0, ToLine: 0, FromPosition: 0, ToPosition: 8},
		{Query: "SELECT 2", Begin: 10, End: 18, FromLine: 0, ToLine: 0, FromPosition: 10, ToPosition: 18},
	}, res.Segments)
	assert.Nil(t, res.Unterminated)
}

func TestScanNoTrailingDelimiter(t *testing.T) {
	res := scanDefault("SELECT 1")

	require.Len(t, res.Segments, 1)
	assert.Equal(t, Segment{Query: "SELECT 1", Begin: 0, End: 8, ToPosition: 8}, res.Segments[0])
}

func TestScanQuoteProtectsDelimiter(t *testing.T) {
	res := scanDefault("SELECT ';' ; SELECT 2;")

	require.Len(t, res.Segments, 2)
	assert.Equal(t, "SELECT ';'", res.Segments[0].Query)
	assert.Equal(t, 0, res.Segments[0].Begin)
	assert.Equal(t, 10, res.Segments[0].End)
	assert.Equal(t, "SELECT 2", res.Segments[1].Query)
	assert.Equal(t, 13, res.Segments[1].Begin)
	assert.Equal(t, 21, res.Segments[1].End)
}

func TestScanLineCommentSuppressesDelimiter(t *testing.T) {
	res := scanDefault("SELECT 1; -- comment ; still comment\nSELECT 2;")

	require.Len(t, res.Segments, 2)
	assert.Equal(t, "SELECT 1", res.Segments[0].Query)

	second := res.Segments[1]
	assert.True(t, strings.HasPrefix(second.Query, "-- comment ; still comment"))
	assert.True(t, strings.HasSuffix(second.Query, "SELECT 2"))
	assert.Equal(t, 0, second.FromLine)
	assert.Equal(t, 1, second.ToLine)
}

func TestScanBlockCommentSpanningLines(t *testing.T) {
	res := scanDefault("SELECT /* a;\nb */ 1;")

	require.Len(t, res.Segments, 1)
	seg := res.Segments[0]
	assert.Equal(t, "SELECT /* a;\nb */ 1", seg.Query)
	assert.Equal(t, 0, seg.FromLine)
	assert.Equal(t, 1, seg.ToLine)
	assert.Greater(t, seg.ToLine, seg.FromLine)
	assert.Equal(t, 19, seg.End)
	assert.Equal(t, 6, seg.ToPosition)
}

func TestScanBlockCommentCloseMustFollowOpen(t *testing.T) {
	res := scanDefault("SELECT /*/ ; */ 1;")

	assert.Equal(t, []string{"SELECT /*/ ; */ 1"}, queries(res.Segments))
}

func TestScanCustomDelimiterPrecedence(t *testing.T) {
	d := dialect.Resolve(nil, dialect.Overrides{
		Delimiters: []string{"GO"},
		Quotes:     []token.Pair{token.SingleQuote},
	})

	res := Scan("SELECT 1 GO SELECT 2;", d)
	assert.Equal(t, []string{"SELECT 1", "SELECT 2"}, queries(res.Segments))

	// The dialect delimiter stays active alongside the custom one.
	res = Scan("SELECT 1; SELECT 2 GO SELECT 3", d)
	assert.Equal(t, []string{"SELECT 1", "SELECT 2", "SELECT 3"}, queries(res.Segments))
}

func TestScanDelimiterBeatsLineComment(t *testing.T) {
	d := dialect.Resolve(nil, dialect.Overrides{Delimiters: []string{"--"}})

	res := Scan("SELECT 1 -- SELECT 2", d)
	assert.Equal(t, []string{"SELECT 1", "SELECT 2"}, queries(res.Segments))
}

func TestScanDropsEmptyStatements(t *testing.T) {
	res := scanDefault(";;  ;\n; SELECT 1;;\n\t;SELECT 2;  \n")

	assert.Equal(t, []string{"SELECT 1", "SELECT 2"}, queries(res.Segments))
}

func TestScanEmptyText(t *testing.T) {
	res := scanDefault("")

	assert.Empty(t, res.Segments)
	assert.Nil(t, res.Unterminated)
	assert.Equal(t, 1, res.Index.Len())
}

func TestScanUnterminatedContext(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     []string
		wantKind token.ContextKind
		wantOpen string
		offset   int
	}{
		{
			name:     "quote",
			text:     "SELECT 1; SELECT 'abc; SELECT 2;",
			want:     []string{"SELECT 1"},
			wantKind: token.QuoteContext,
			wantOpen: "'",
			offset:   17,
		},
		{
			name:     "block comment",
			text:     "SELECT 1; /* open",
			want:     []string{"SELECT 1"},
			wantKind: token.BlockCommentContext,
			wantOpen: "/*",
			offset:   10,
		},
		{
			name:     "line comment at end of text",
			text:     "SELECT 1; SELECT 2 -- trailing",
			want:     []string{"SELECT 1"},
			wantKind: token.LineCommentContext,
			wantOpen: "--",
			offset:   19,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := scanDefault(tt.text)

			assert.Equal(t, tt.want, queries(res.Segments))
			require.NotNil(t, res.Unterminated)
			assert.Equal(t, tt.wantKind, res.Unterminated.Kind)
			assert.Equal(t, tt.wantOpen, res.Unterminated.Open)
			assert.Equal(t, tt.offset, res.Unterminated.Offset)
		})
	}
}

// A context that closes on the final character leaves scanning without a
// delimiter check, so the text after the last delimiter is not emitted.
func TestScanContextClosedOnLastCharacter(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"quote", "SELECT 1; SELECT 'a'"},
		{"block comment", "SELECT 1; /* done */"},
		{"line comment and newline", "SELECT 1;\n-- trailing note\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := scanDefault(tt.text)

			assert.Equal(t, []string{"SELECT 1"}, queries(res.Segments))
			assert.Nil(t, res.Unterminated)
		})
	}
}

func TestScanMultiByteOffsets(t *testing.T) {
	res := scanDefault("SELECT 'é'; SELECT 2")

	require.Len(t, res.Segments, 2)
	assert.Equal(t, 11, res.Segments[0].End, "offsets are in bytes")
	assert.Equal(t, 13, res.Segments[1].Begin)
	assert.Equal(t, 21, res.Segments[1].End)
}

func TestScanDialectTokens(t *testing.T) {
	d := dialect.Resolve(postgres.Config, dialect.DefaultOverrides)
	text := "CREATE FUNCTION f() RETURNS int AS $$ BEGIN; RETURN 1; END; $$ LANGUAGE plpgsql;\nSELECT f();"

	res := Scan(text, d)

	require.Len(t, res.Segments, 2)
	assert.Contains(t, res.Segments[0].Query, "RETURN 1; END;")
	assert.Equal(t, "SELECT f()", res.Segments[1].Query)
	assert.Equal(t, 1, res.Segments[1].FromLine)
	assert.Equal(t, 0, res.Segments[1].FromPosition)
}

func TestScanDisabledTokenClasses(t *testing.T) {
	cfg := &core.DialectConfig{
		Quotes:        []token.Pair{},
		LineComments:  []string{},
		BlockComments: []token.Pair{},
	}

	res := Scan("SELECT '--;'; /* x; */", dialect.Resolve(cfg, dialect.NoOverrides))

	assert.Equal(t, []string{"SELECT '--", "'", "/* x", "*/"}, queries(res.Segments))
}

func TestScanSegmentsOrderedAndDisjoint(t *testing.T) {
	scripts := []string{
		"SELECT 1; SELECT 2;",
		"SELECT ';' ; SELECT 2;\n-- c;\nSELECT 3",
		"  SELECT 1  ;\n\n  SELECT 2  ;  \n SELECT /* ; */ 3",
		"INSERT INTO t VALUES ('a;b', \"c;d\");\nDELETE FROM t;",
	}

	for _, text := range scripts {
		res := scanDefault(text)
		for i, seg := range res.Segments {
			assert.Equal(t, seg.Query, text[seg.Begin:seg.End], "segment text matches its offsets")
			assert.LessOrEqual(t, seg.FromLine, seg.ToLine)
			if i > 0 {
				assert.LessOrEqual(t, res.Segments[i-1].End, seg.Begin, "segments in %q overlap", text)
			}
		}
	}
}
