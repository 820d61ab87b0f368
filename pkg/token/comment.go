package token

// ContextKind distinguishes the lexical contexts that suppress delimiter
// detection while scanning.
type ContextKind int

// Context kinds.
const (
	QuoteContext        ContextKind = iota // '...' or "..."
	LineCommentContext                     // -- comment
	BlockCommentContext                    // /* comment */
)

// String returns a human-readable name for the context kind.
func (k ContextKind) String() string {
	switch k {
	case QuoteContext:
		return "quote"
	case LineCommentContext:
		return "line comment"
	case BlockCommentContext:
		return "block comment"
	default:
		return "unknown"
	}
}

// IsComment returns true for both comment kinds.
func (k ContextKind) IsComment() bool {
	return k == LineCommentContext || k == BlockCommentContext
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k ContextKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
