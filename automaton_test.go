package lex

import (
	"regexp/syntax"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAutomaton(t *testing.T, patterns ...string) *automaton {
	t.Helper()
	progs := make([]*syntax.Prog, len(patterns))
	for i, p := range patterns {
		r := Rule{Pattern: p}
		prog, err := compileRule(i, &r)
		require.NoError(t, err)
		progs[i] = prog
	}
	return newAutomaton(progs)
}

func matchesAt(a *automaton, input string, pos int) []candidate {
	var sc scratch
	sc.init(a.size)
	return a.matches(input, pos, &sc, nil)
}

// One traversal must report every rule at every length it matches.
func TestMatchesAllCandidates(t *testing.T) {
	a := buildAutomaton(t, "a", "a+", "ab")

	got := matchesAt(a, "ab", 0)
	assert.ElementsMatch(t, []candidate{
		{rule: 0, end: 1},
		{rule: 1, end: 1},
		{rule: 2, end: 2},
	}, got)

	// a+ matches at several lengths at once
	got = matchesAt(a, "aaa", 0)
	assert.ElementsMatch(t, []candidate{
		{rule: 0, end: 1},
		{rule: 1, end: 1},
		{rule: 1, end: 2},
		{rule: 1, end: 3},
	}, got)
}

// Matching is anchored: candidates always start at the queried offset, and
// end offsets are absolute.
func TestMatchesAnchored(t *testing.T) {
	a := buildAutomaton(t, "a", "ab")

	assert.Empty(t, matchesAt(a, "ba", 0))
	assert.ElementsMatch(t, []candidate{{rule: 0, end: 2}}, matchesAt(a, "ba", 1))
}

func TestMatchesMultibyte(t *testing.T) {
	a := buildAutomaton(t, "[α-ω]+")

	got := matchesAt(a, "αβx", 0)
	// α and β are two bytes each
	assert.ElementsMatch(t, []candidate{
		{rule: 0, end: 2},
		{rule: 0, end: 4},
	}, got)
}

func TestPick(t *testing.T) {
	_, ok := pick(nil)
	assert.False(t, ok)

	c, ok := pick([]candidate{
		{rule: 0, end: 5},
		{rule: 2, end: 7},
		{rule: 1, end: 7},
	})
	require.True(t, ok)
	assert.Equal(t, candidate{rule: 1, end: 7}, c)
}

func TestMatchesEmptyString(t *testing.T) {
	tests := []struct {
		pattern string
		empty   bool
	}{
		{"a", false},
		{"a*", true},
		{"a+", false},
		{"a?", true},
		{"", true},
		{"a|", true},
		{"(a|b)c", false},
		{"(a*)b", false},
		{"a{0,3}", true},
		{"a{1,3}", false},
		{`\b`, true},
		{"^", true},
		{"(?:x?)(?:y?)", true},
	}
	for _, tt := range tests {
		re, err := syntax.Parse(tt.pattern, syntax.Perl)
		require.NoError(t, err, tt.pattern)
		assert.Equal(t, tt.empty, matchesEmpty(re), "pattern %q", tt.pattern)
	}
}
