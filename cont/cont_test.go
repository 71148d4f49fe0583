package cont_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mk73e/lex"
	"github.com/mk73e/lex/cont"
)

func TestUntil(t *testing.T) {
	c := cont.Until("*/")

	n, ok := c("/*", " hi */ tail")
	require.True(t, ok)
	assert.Equal(t, 6, n)

	_, ok = c("/*", " no closer")
	assert.False(t, ok)
}

func TestRawString(t *testing.T) {
	c := cont.RawString()

	tests := []struct {
		name    string
		matched string
		rest    string
		n       int
		ok      bool
	}{
		{"no hashes", `r"`, `abc"def`, 4, true},
		{"two hashes", `r##"`, `abc"##def`, 6, true},
		{"closer needs all hashes", `r##"`, `abc"#`, 0, false},
		{"empty body", `r#"`, `"#`, 2, true},
		{"unterminated", `r#"`, `abc`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := c(tt.matched, tt.rest)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.n, n)
			}
		})
	}
}

func TestBalanced(t *testing.T) {
	c := cont.Balanced("/*", "*/")

	n, ok := c("/*", " a /* b */ c */x")
	require.True(t, ok)
	assert.Equal(t, 15, n)

	_, ok = c("/*", " a /* b */ c")
	assert.False(t, ok)

	// unnested
	n, ok = c("/*", " a */b")
	require.True(t, ok)
	assert.Equal(t, 5, n)
}

// End to end: nestable block comments as a skip rule.
func TestBalancedScan(t *testing.T) {
	l := lex.Must(lex.New([]lex.Rule{
		lex.Regex("Ident", "[a-z]+"),
		lex.Skip(`/\*`).WithMore(cont.Balanced("/*", "*/")),
		lex.Skip(" +"),
	}))

	s := l.Lex("a /* x /* y */ z */ b")
	var texts []string
	for s.Scan() {
		texts = append(texts, s.Item().Text)
	}
	require.NoError(t, s.Err())
	assert.Equal(t, []string{"a", "b"}, texts)

	// an unterminated comment is a lexical error at the comment start
	s = l.Lex("a /* x")
	for s.Scan() {
	}
	var cerr *lex.ContinuationRefusedError
	require.ErrorAs(t, s.Err(), &cerr)
	assert.Equal(t, 2, cerr.Offset)
}

// Raw strings end to end, mixed with other rules.
func TestRawStringScan(t *testing.T) {
	l := lex.Must(lex.New([]lex.Rule{
		lex.Token("Import", "import"),
		lex.Token("Semi", ";"),
		lex.Regex("Ident", "[a-zA-Z_][a-zA-Z0-9_]*"),
		lex.Regex("RawStr", `r#*"`).WithMore(cont.RawString()),
		lex.Skip(`//[^\n]*`),
		lex.Skip(`[ \t\r\n\f]+`),
	}))

	items := make([]lex.Item, 0, 4)
	s := l.Lex("import // ...\nimport1; r#\"abc\"#")
	for s.Scan() {
		items = append(items, s.Item())
	}
	require.NoError(t, s.Err())
	assert.Equal(t, []lex.Item{
		{Start: 0, End: 6, Rule: 0, Text: "import"},
		{Start: 14, End: 21, Rule: 2, Text: "import1"},
		{Start: 21, End: 22, Rule: 1, Text: ";"},
		{Start: 23, End: 31, Rule: 3, Text: `r#"abc"#`},
	}, items)
}
