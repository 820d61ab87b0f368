package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/sqlseg/pkg/dialect"
	"github.com/leapstack-labs/sqlseg/pkg/token"
)

// ParseQuotes parses "open" or "open:close" entries into token pairs.
// A nil input yields nil so callers can tell "unset" from "empty".
func ParseQuotes(specs []string) ([]token.Pair, error) {
	if specs == nil {
		return nil, nil
	}
	pairs := make([]token.Pair, 0, len(specs))
	for _, s := range specs {
		p, ok := token.ParsePair(s)
		if !ok {
			return nil, fmt.Errorf("%w: %q (want open or open:close)", ErrInvalidQuote, s)
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// Overrides returns the custom delimiters and quotes configured for the
// segmenter. The single-quote pair comes first unless DefaultQuotes is off.
func (c *Config) Overrides() (dialect.Overrides, error) {
	quotes, err := ParseQuotes(c.Quotes)
	if err != nil {
		return dialect.Overrides{}, err
	}

	o := dialect.Overrides{
		Delimiters: append([]string(nil), c.Delimiters...),
	}
	if c.DefaultQuotes {
		o.Quotes = append(o.Quotes, dialect.DefaultOverrides.Quotes...)
	}
	o.Quotes = append(o.Quotes, quotes...)
	return o, nil
}

// RegisterDialects builds the user-defined dialects and adds them to the
// dialect registry. Dialects may extend built-in dialects or each other;
// they are registered in dependency order. A dialect may also redefine a
// built-in by extending the name it is registered under.
func RegisterDialects(defs map[string]DialectConfig) error {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	done := make(map[string]bool, len(defs))
	visiting := make(map[string]bool)

	var register func(name string) error
	register = func(name string) error {
		key := strings.ToLower(name)
		if done[key] {
			return nil
		}
		if visiting[key] {
			return fmt.Errorf("dialect %s: extends cycle", name)
		}
		visiting[key] = true
		defer delete(visiting, key)

		def := defs[name]
		// A dialect extending its own name starts from the registered
		// dialect of that name and replaces it.
		if parent := strings.ToLower(def.Extends); parent != "" && parent != key {
			if parentKey, ok := findDef(defs, parent); ok {
				if err := register(parentKey); err != nil {
					return err
				}
			}
		}

		d, err := def.Build(name)
		if err != nil {
			return err
		}
		dialect.Register(d)
		done[key] = true
		return nil
	}

	for _, name := range names {
		if err := register(name); err != nil {
			return err
		}
	}
	return nil
}

// findDef returns the map key matching a lower-cased dialect name.
func findDef(defs map[string]DialectConfig, lower string) (string, bool) {
	for name := range defs {
		if strings.ToLower(name) == lower {
			return name, true
		}
	}
	return "", false
}

// Build turns the definition into a dialect named name.
func (d DialectConfig) Build(name string) (*dialect.Dialect, error) {
	b := dialect.NewDialect(strings.ToLower(name))

	if d.Extends != "" {
		parent, err := dialect.MustGet(d.Extends)
		if err != nil {
			return nil, fmt.Errorf("dialect %s: %w", name, err)
		}
		b = b.Extends(parent)
	}
	if d.Description != "" {
		b = b.Describe(d.Description)
	}
	if d.Delimiter != "" {
		b = b.Delimiter(d.Delimiter)
	}

	quotes, err := ParseQuotes(d.Quotes)
	if err != nil {
		return nil, fmt.Errorf("dialect %s: %w", name, err)
	}
	if quotes != nil {
		b = b.Quotes(quotes...)
	}
	if d.LineComments != nil {
		b = b.LineComments(d.LineComments...)
	}
	blocks, err := ParseQuotes(d.BlockComments)
	if err != nil {
		return nil, fmt.Errorf("dialect %s: block comments: %w", name, err)
	}
	if blocks != nil {
		b = b.BlockComments(blocks...)
	}

	return b.Build(), nil
}
