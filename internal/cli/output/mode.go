// Package output renders command results for terminals, agents and scripts.
//
// Output adapts to the environment: styled text on a terminal, Markdown when
// piped, and JSON or YAML on request.
package output

import "strings"

// OutputMode selects how results are rendered.
type OutputMode string

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
	ModeYAML     OutputMode = "yaml"
)

// Modes lists the accepted --format values.
var Modes = []string{
	string(ModeAuto),
	string(ModeText),
	string(ModeMarkdown),
	string(ModeJSON),
	string(ModeYAML),
}

// Mode parses a format name. Empty or unknown names mean auto.
func Mode(s string) OutputMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "table":
		return ModeText
	case "markdown", "md":
		return ModeMarkdown
	case "json":
		return ModeJSON
	case "yaml", "yml":
		return ModeYAML
	default:
		return ModeAuto
	}
}

// Structured reports whether the mode emits machine-readable data.
func (m OutputMode) Structured() bool {
	return m == ModeJSON || m == ModeYAML
}
