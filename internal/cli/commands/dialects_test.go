package commands

import (
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/sqlseg/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialects_JSON(t *testing.T) {
	testutil.LoadConfig(t, map[string]string{"SQLSEG_OUTPUT": "json"})

	res := testutil.Execute(t, NewDialectsCommand(), "")
	require.NoError(t, res.Err)

	var infos []DialectInfo
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &infos))

	byName := make(map[string]DialectInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}

	for _, name := range []string{"ansi", "postgres", "mysql", "sqlserver"} {
		assert.Contains(t, byName, name)
	}
	assert.Equal(t, ";", byName["ansi"].Delimiter)
	assert.Equal(t, []string{"/*:*/"}, byName["ansi"].BlockComments)
	assert.Contains(t, byName["postgres"].Quotes, "$$")
	assert.Contains(t, byName["sqlserver"].Quotes, "[:]")
}

func TestDialects_Text(t *testing.T) {
	testutil.LoadConfig(t, map[string]string{"SQLSEG_OUTPUT": "text"})

	res := testutil.Execute(t, NewDialectsCommand(), "")
	require.NoError(t, res.Err)

	assert.Contains(t, res.Stdout, "Dialects")
	assert.Contains(t, res.Stdout, "Postgres")
	assert.Contains(t, res.Stdout, "Sqlserver")
}
