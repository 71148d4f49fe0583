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
	"errors"
	"fmt"
)

// ErrEmptyMatch is the cause reported by a PatternError for a pattern that
// can match the empty string.
//
var ErrEmptyMatch = errors.New("pattern can match the empty string")

// A PatternError reports a rule whose pattern could not be compiled. It is
// returned by New; no engine is built when any rule fails.
//
type PatternError struct {
	Rule RuleID // index of the offending rule
	Name string // rule name, may be empty
	Err  error  // underlying cause
}

func (e *PatternError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("rule %s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("rule %d: %v", e.Rule, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// An UnrecognizedInputError reports input for which no rule matches any
// prefix. Offset is the byte offset of the first unrecognized byte.
//
type UnrecognizedInputError struct {
	Offset int
}

func (e *UnrecognizedInputError) Error() string {
	return fmt.Sprintf("lexical error at %d: unrecognized input", e.Offset)
}

// A ContinuationRefusedError reports a match whose continuation declined to
// extend it. Offset is the byte offset where the rejected match began, not
// where the continuation gave up.
//
type ContinuationRefusedError struct {
	Offset int
	Rule   RuleID // the rule whose continuation refused
}

func (e *ContinuationRefusedError) Error() string {
	return fmt.Sprintf("lexical error at %d: unterminated token", e.Offset)
}
