package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlseg/internal/cli/testutil"
	sqltestutil "github.com/leapstack-labs/sqlseg/internal/testutil"
	"github.com/leapstack-labs/sqlseg/pkg/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_JSON(t *testing.T) {
	testutil.LoadConfig(t, map[string]string{"SQLSEG_OUTPUT": "json"})
	path := sqltestutil.WriteScript(t, t.TempDir(), "a.sql", "SELECT 1;\nSELECT 2;\n")

	res := testutil.Execute(t, NewLinesCommand(), "", path)
	require.NoError(t, res.Err)

	var lines []script.LineRecord
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &lines))
	assert.Equal(t, []script.LineRecord{
		{Index: 0, Begin: 0, End: 10},
		{Index: 1, Begin: 10, End: 20},
		{Index: 2, Begin: 20, End: 21},
	}, lines)
}

func TestLines_Markdown(t *testing.T) {
	testutil.LoadConfig(t, nil)

	res := testutil.Execute(t, NewLinesCommand(), "SELECT 1\nFROM t", "-")
	require.NoError(t, res.Err)

	out := strings.ToLower(res.Stdout)
	assert.Contains(t, res.Stdout, "## <stdin> (2 lines)")
	assert.Contains(t, out, "| line | begin | end | text |")
	assert.Contains(t, res.Stdout, "| 2 | 9 | 16 | FROM t |")
}

func TestLineText(t *testing.T) {
	text := "ab\ncd"
	idx := script.BuildLineIndex(text)

	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{"first line drops newline", 0, "ab"},
		{"last line has no newline", 3, "cd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := idx.RecordAt(tt.offset)
			require.True(t, ok)
			assert.Equal(t, tt.want, lineText(text, rec))
		})
	}

	assert.Empty(t, lineText("", script.LineRecord{Begin: 0, End: 1}))
}
