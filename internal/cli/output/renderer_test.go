package output

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func newTestRenderer(mode OutputMode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
	}{
		{"", ModeAuto},
		{"auto", ModeAuto},
		{"TEXT", ModeText},
		{"table", ModeText},
		{"md", ModeMarkdown},
		{"markdown", ModeMarkdown},
		{"json", ModeJSON},
		{"yml", ModeYAML},
		{"html", ModeAuto},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Mode(tt.in))
		})
	}

	assert.True(t, ModeJSON.Structured())
	assert.True(t, ModeYAML.Structured())
	assert.False(t, ModeMarkdown.Structured())
}

func TestEffectiveMode(t *testing.T) {
	r, _, _ := newTestRenderer(ModeAuto, true)
	assert.Equal(t, ModeText, r.EffectiveMode())

	r, _, _ = newTestRenderer(ModeAuto, false)
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())

	r, _, _ = newTestRenderer(ModeJSON, true)
	assert.Equal(t, ModeJSON, r.EffectiveMode())

	r = NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, false, "")
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
}

func TestHeader(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown, false)
	r.Header(2, "Statements")
	assert.Equal(t, "## Statements\n\n", out.String())

	r, out, _ = newTestRenderer(ModeText, false)
	r.Header(2, "Statements")
	assert.Contains(t, out.String(), "Statements")
	assert.False(t, ansiPattern.MatchString(out.String()), "no ANSI codes off a terminal")
}

func TestTable(t *testing.T) {
	header := []string{"#", "Statement"}
	rows := [][]string{{"1", "SELECT 1"}, {"2", "SELECT 2"}}

	r, out, _ := newTestRenderer(ModeMarkdown, false)
	r.Table(header, rows)
	md := strings.ToLower(out.String())
	assert.Contains(t, md, "| # | statement |")
	assert.Contains(t, md, "| 2 | select 2 |")

	r, out, _ = newTestRenderer(ModeText, true)
	r.Table(header, rows)
	text := out.String()
	assert.Contains(t, text, "SELECT 1")
	assert.Contains(t, text, "┌")
}

func TestData(t *testing.T) {
	v := map[string]any{"query": "SELECT 1", "begin": 0}

	r, out, _ := newTestRenderer(ModeJSON, false)
	require.NoError(t, r.Data(v))
	assert.Contains(t, out.String(), `"query": "SELECT 1"`)

	r, out, _ = newTestRenderer(ModeYAML, false)
	require.NoError(t, r.Data(v))
	assert.Contains(t, out.String(), "query: SELECT 1")
}

func TestWarningAndError(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeText, false)
	r.Warning("unknown dialect")
	r.Error("boom")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Warning: unknown dialect")
	assert.Contains(t, errOut.String(), "Error: boom")
}

func TestTruncateOneLine(t *testing.T) {
	assert.Equal(t, "SELECT 1 FROM t", TruncateOneLine("SELECT 1\n  FROM t", 40))
	assert.Equal(t, "SELECT ...", TruncateOneLine("SELECT a, b, c FROM t", 10))
	assert.Equal(t, "ab", TruncateOneLine("ab", 2))
	assert.True(t, strings.HasSuffix(TruncateOneLine(strings.Repeat("é", 50), 10), "..."))
}
