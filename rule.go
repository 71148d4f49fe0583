// Copyright 2025-2026 The lex authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package lex

import "fmt"

// A RuleID identifies a rule by its position in the rule list given to New.
// Lower IDs have higher priority when two rules match the same length of
// input.
//
type RuleID int

// A Continuation extends a rule's match beyond what its pattern recognized.
//
// It is called with the text matched by the pattern and the remaining input
// immediately after it, and returns the number of additional bytes to
// include in the token. n may be 0 and must not exceed len(rest). Returning
// ok == false rejects the whole token and aborts the scan with a
// ContinuationRefusedError.
//
// The engine treats a Continuation as a pure function: it must not retain
// its arguments and must return the same result for the same inputs.
//
type Continuation func(matched, rest string) (n int, ok bool)

// A Rule describes a single token pattern. Rules are handed to New as a
// slice; a rule's index in that slice is its RuleID and doubles as its
// priority. Rules are never mutated by the engine.
//
// A pattern must not be able to match the empty string; New rejects rules
// for which it can.
//
type Rule struct {
	Name    string       // used in diagnostics only, may be empty
	Pattern string       // literal text or regular expression
	Literal bool         // if set, Pattern is matched verbatim
	Skip    bool         // if set, matches are consumed but not emitted
	More    Continuation // optional match extension, may be nil
}

// Token returns a rule matching the literal string lit.
//
func Token(name, lit string) Rule {
	return Rule{Name: name, Pattern: lit, Literal: true}
}

// Regex returns a rule matching the regular expression pattern. The syntax
// accepted is that of regexp/syntax in Perl mode.
//
func Regex(name, pattern string) Rule {
	return Rule{Name: name, Pattern: pattern}
}

// Skip returns a skip rule for the regular expression pattern. Input matched
// by a skip rule is consumed silently: it advances the scan but produces no
// Item.
//
func Skip(pattern string) Rule {
	return Rule{Pattern: pattern, Skip: true}
}

// WithMore returns a copy of r with the continuation c attached.
//
func (r Rule) WithMore(c Continuation) Rule {
	r.More = c
	return r
}

// label returns a human readable identifier for rule id.
//
func label(id int, r *Rule) string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("rule %d", id)
}
