package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSplitCommand(t *testing.T) {
	cmd := NewSplitCommand()

	assert.Equal(t, "split [files...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("jobs"), "flag %q should exist", "jobs")
}

func TestNewLinesCommand(t *testing.T) {
	cmd := NewLinesCommand()

	assert.Equal(t, "lines <file>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.Error(t, cmd.Args(cmd, nil), "lines requires a file")
}

func TestNewLocateCommand(t *testing.T) {
	cmd := NewLocateCommand()

	assert.Equal(t, "locate <file>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"offset", "line", "column"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewDialectsCommand(t *testing.T) {
	cmd := NewDialectsCommand()

	assert.Equal(t, "dialects", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.Error(t, cmd.Args(cmd, []string{"extra"}), "dialects takes no arguments")
}

func TestNewWatchCommand(t *testing.T) {
	cmd := NewWatchCommand()

	assert.Equal(t, "watch <paths...>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	f := cmd.Flags().Lookup("debounce")
	if assert.NotNil(t, f, "flag %q should exist", "debounce") {
		assert.Equal(t, defaultDebounce.String(), f.DefValue)
	}
	assert.Error(t, cmd.Args(cmd, nil), "watch requires a path")
}

func TestNewReplCommand(t *testing.T) {
	cmd := NewReplCommand()

	assert.Equal(t, "repl", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("history"), "flag %q should exist", "history")
}
