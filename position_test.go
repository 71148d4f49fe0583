package lex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mk73e/lex"
)

func TestLineMap(t *testing.T) {
	const input = "ab\ncd\n日本x"
	m := lex.NewLineMap(input)

	tests := []struct {
		name   string
		offset int
		want   lex.Position
	}{
		{"start", 0, lex.Position{Line: 1, Column: 1}},
		{"mid line 1", 1, lex.Position{Line: 1, Column: 2}},
		{"newline", 2, lex.Position{Line: 1, Column: 3}},
		{"start line 2", 3, lex.Position{Line: 2, Column: 1}},
		{"line 3", 6, lex.Position{Line: 3, Column: 1}},
		// 日 is East Asian wide: two display columns
		{"after wide rune", 9, lex.Position{Line: 3, Column: 3}},
		{"after two wide runes", 12, lex.Position{Line: 3, Column: 5}},
		{"end of input", len(input), lex.Position{Line: 3, Column: 6}},
		{"clamped high", len(input) + 10, lex.Position{Line: 3, Column: 6}},
		{"clamped low", -1, lex.Position{Line: 1, Column: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Position(tt.offset))
		})
	}
}

func TestLineMapEmpty(t *testing.T) {
	m := lex.NewLineMap("")
	assert.Equal(t, lex.Position{Line: 1, Column: 1}, m.Position(0))
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "3:7", lex.Position{Line: 3, Column: 7}.String())
}

// LineMap pairs naturally with scan errors: the offset carried by the error
// converts to a user-facing position.
func TestLineMapWithScanError(t *testing.T) {
	l := lex.Must(lex.New([]lex.Rule{
		lex.Regex("Ident", "[a-z]+"),
		lex.Skip(`[ \n]+`),
	}))

	const input = "ab cd\nef # gh"
	s := l.Lex(input)
	for s.Scan() {
	}
	var uerr *lex.UnrecognizedInputError
	assert.ErrorAs(t, s.Err(), &uerr)
	assert.Equal(t, lex.Position{Line: 2, Column: 4}, lex.NewLineMap(input).Position(uerr.Offset))
}
