// Package dialect provides SQL dialect definitions for script segmentation.
//
// This package contains the public contract for dialect definitions used by the
// segmenter: a builder, a global registry, and the Resolve merge that turns a
// caller-owned DialectConfig plus custom overrides into the concrete token lists
// the scanner works with. Concrete dialects are registered from pkg/dialects/*/
// packages.
package dialect

import (
	"github.com/leapstack-labs/sqlseg/pkg/core"
	"github.com/leapstack-labs/sqlseg/pkg/token"
)

// Dialect represents a registered SQL dialect.
type Dialect struct {
	Name        string
	Description string

	config core.DialectConfig
}

// Config returns a copy of the pure data configuration for this dialect.
func (d *Dialect) Config() *core.DialectConfig {
	if d == nil {
		return nil
	}
	cfg := d.config
	cfg.Name = d.Name
	return cfg.Clone()
}

// Delimiter returns the dialect's statement delimiter with defaults applied.
func (d *Dialect) Delimiter() string {
	return Resolve(d.Config(), NoOverrides).Delimiter()
}

// Quotes returns the dialect's own quote pairs with defaults applied.
func (d *Dialect) Quotes() []token.Pair {
	return Resolve(d.Config(), NoOverrides).Quotes
}

// LineComments returns the dialect's line-comment tokens with defaults applied.
func (d *Dialect) LineComments() []string {
	return Resolve(d.Config(), NoOverrides).LineComments
}

// BlockComments returns the dialect's block-comment pairs with defaults applied.
func (d *Dialect) BlockComments() []token.Pair {
	return Resolve(d.Config(), NoOverrides).BlockComments
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
}

// NewDialect creates a builder for a dialect with all tokens unset,
// meaning every field falls back to the ANSI default until configured.
func NewDialect(name string) *Builder {
	return &Builder{
		dialect: &Dialect{
			Name:   name,
			config: core.DialectConfig{Name: name},
		},
	}
}

// New creates a dialect builder from a DialectConfig.
func New(cfg *core.DialectConfig) *Builder {
	if cfg == nil {
		return NewDialect("")
	}
	c := cfg.Clone()
	return &Builder{
		dialect: &Dialect{
			Name:   c.Name,
			config: *c,
		},
	}
}

// Extends copies the parent's tokens into the dialect being built.
// Tokens configured afterwards replace the inherited ones.
func (b *Builder) Extends(parent *Dialect) *Builder {
	if parent == nil {
		return b
	}
	name := b.dialect.Name
	b.dialect.config = *parent.config.Clone()
	b.dialect.config.Name = name
	if b.dialect.Description == "" {
		b.dialect.Description = parent.Description
	}
	return b
}

// Describe sets a one-line description shown in dialect listings.
func (b *Builder) Describe(description string) *Builder {
	b.dialect.Description = description
	return b
}

// Delimiter sets the statement delimiter.
func (b *Builder) Delimiter(delim string) *Builder {
	b.dialect.config.Delimiter = delim
	return b
}

// Quotes replaces the quote pairs. Calling it with no pairs disables quoting.
func (b *Builder) Quotes(pairs ...token.Pair) *Builder {
	b.dialect.config.Quotes = append([]token.Pair{}, pairs...)
	return b
}

// LineComments replaces the line-comment tokens. Calling it with no tokens
// disables line comments.
func (b *Builder) LineComments(tokens ...string) *Builder {
	b.dialect.config.LineComments = append([]string{}, tokens...)
	return b
}

// BlockComments replaces the block-comment pairs. Calling it with no pairs
// disables block comments.
func (b *Builder) BlockComments(pairs ...token.Pair) *Builder {
	b.dialect.config.BlockComments = append([]token.Pair{}, pairs...)
	return b
}

// Build returns the constructed dialect.
func (b *Builder) Build() *Dialect {
	return b.dialect
}
