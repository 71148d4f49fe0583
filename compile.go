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

import (
	"regexp"
	"regexp/syntax"
)

// compileRule compiles one rule's pattern into an anchored NFA program.
// Literal patterns go through the same path as regular expressions after
// escaping, so a literal rule is exactly a regex matching that string.
//
func compileRule(id int, r *Rule) (*syntax.Prog, error) {
	src := r.Pattern
	if r.Literal {
		src = regexp.QuoteMeta(src)
	}
	re, err := syntax.Parse(src, syntax.Perl)
	if err != nil {
		return nil, &PatternError{Rule: RuleID(id), Name: r.Name, Err: err}
	}
	// A rule matching zero bytes would stall the scan loop, so it is
	// rejected here rather than special-cased at scan time.
	if matchesEmpty(re) {
		return nil, &PatternError{Rule: RuleID(id), Name: r.Name, Err: ErrEmptyMatch}
	}
	p, err := syntax.Compile(re.Simplify())
	if err != nil {
		return nil, &PatternError{Rule: RuleID(id), Name: r.Name, Err: err}
	}
	return p, nil
}

// matchesEmpty reports whether re can match the empty string. Zero-width
// assertions count as empty: a pattern like `\b` alone matches no bytes and
// is just as ill-formed as `a*` for lexing purposes.
//
func matchesEmpty(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpEmptyMatch, syntax.OpStar, syntax.OpQuest,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return true
	case syntax.OpLiteral:
		return len(re.Rune) == 0
	case syntax.OpRepeat:
		return re.Min == 0 || matchesEmpty(re.Sub[0])
	case syntax.OpPlus, syntax.OpCapture:
		return matchesEmpty(re.Sub[0])
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			if !matchesEmpty(sub) {
				return false
			}
		}
		return true
	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			if matchesEmpty(sub) {
				return true
			}
		}
		return false
	}
	// OpCharClass, OpAnyChar, OpAnyCharNotNL, OpNoMatch
	return false
}
