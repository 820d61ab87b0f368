package dialect

import (
	"testing"

	"github.com/leapstack-labs/sqlseg/pkg/core"
	"github.com/leapstack-labs/sqlseg/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestResolveNilDialect(t *testing.T) {
	r := Resolve(nil, DefaultOverrides)

	assert.Equal(t, []string{";"}, r.Delimiters)
	assert.Equal(t, []token.Pair{token.SingleQuote, token.DoubleQuote}, r.Quotes)
	assert.Equal(t, []string{"--"}, r.LineComments)
	assert.Equal(t, []token.Pair{token.BlockComment}, r.BlockComments)
}

func TestResolveFieldFallback(t *testing.T) {
	tests := []struct {
		name string
		cfg  *core.DialectConfig
		want Resolved
	}{
		{
			name: "unset fields use defaults",
			cfg:  &core.DialectConfig{Name: "x"},
			want: Resolved{
				Name:          "x",
				Delimiters:    []string{";"},
				Quotes:        []token.Pair{token.DoubleQuote},
				LineComments:  []string{"--"},
				BlockComments: []token.Pair{token.BlockComment},
			},
		},
		{
			name: "empty lists disable token classes",
			cfg: &core.DialectConfig{
				Quotes:        []token.Pair{},
				LineComments:  []string{},
				BlockComments: []token.Pair{},
			},
			want: Resolved{
				Delimiters:    []string{";"},
				Quotes:        []token.Pair{},
				LineComments:  []string{},
				BlockComments: []token.Pair{},
			},
		},
		{
			name: "explicit tokens win",
			cfg: &core.DialectConfig{
				Delimiter:     "GO",
				Quotes:        []token.Pair{{Open: "["}},
				LineComments:  []string{"#", ""},
				BlockComments: []token.Pair{{Open: "{-", Close: "-}"}},
			},
			want: Resolved{
				Delimiters:    []string{"GO"},
				Quotes:        []token.Pair{{Open: "[", Close: "["}},
				LineComments:  []string{"#"},
				BlockComments: []token.Pair{{Open: "{-", Close: "-}"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.cfg, NoOverrides))
		})
	}
}

func TestResolveOverridesAreAdditive(t *testing.T) {
	cfg := &core.DialectConfig{Delimiter: ";"}
	o := Overrides{
		Delimiters: []string{"GO", "", "/"},
		Quotes:     []token.Pair{token.SingleQuote, {Open: ""}},
	}

	r := Resolve(cfg, o)

	assert.Equal(t, []string{"GO", "/", ";"}, r.Delimiters, "custom delimiters precede the dialect delimiter")
	assert.Equal(t, ";", r.Delimiter())
	assert.Equal(t, []string{"GO", "/"}, r.Custom())
	assert.Equal(t, []token.Pair{token.SingleQuote, token.DoubleQuote}, r.Quotes)
}

func TestResolveCommentsIgnoreOverrides(t *testing.T) {
	r := Resolve(&core.DialectConfig{LineComments: []string{"#"}}, Overrides{Delimiters: []string{"--"}})

	assert.Equal(t, []string{"#"}, r.LineComments)
	assert.Equal(t, []string{"--", ";"}, r.Delimiters)
}

func TestResolvedClone(t *testing.T) {
	r := Resolve(nil, DefaultOverrides)
	c := r.Clone()
	c.Delimiters[0] = "GO"
	c.Quotes[0] = token.NewPair("`")

	assert.Equal(t, ";", r.Delimiters[0])
	assert.Equal(t, token.SingleQuote, r.Quotes[0])
}
