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
	"fmt"
	"regexp/syntax"
)

// An Item is one token produced by a scan.
//
type Item struct {
	Start int    // byte offset of the first byte of the token
	End   int    // byte offset just past the last byte of the token
	Rule  RuleID // the rule that produced the token
	Text  string // input[Start:End]
}

// String returns a string representation of the item. The output format is
// not guaranteed to be stable; use it for debugging only.
//
func (i Item) String() string {
	return fmt.Sprintf("%d..%d %q", i.Start, i.End, i.Text)
}

// A Lexer is a built scanning engine over a fixed rule list. It is immutable
// and may be shared freely: concurrent calls to Lex on the same Lexer are
// safe, each scan owning its own cursor.
//
type Lexer struct {
	rules []Rule
	a     *automaton
}

// New compiles rules into a Lexer. The index of each rule in the slice is
// its RuleID; when several rules match at one position the longest match
// wins and, among equally long matches, the rule with the lowest ID.
//
// New returns a *PatternError if any pattern is invalid or can match the
// empty string. No engine is returned in that case.
//
func New(rules []Rule) (*Lexer, error) {
	progs := make([]*syntax.Prog, len(rules))
	for i := range rules {
		p, err := compileRule(i, &rules[i])
		if err != nil {
			return nil, err
		}
		progs[i] = p
	}
	return &Lexer{
		rules: append([]Rule(nil), rules...),
		a:     newAutomaton(progs),
	}, nil
}

// Must is a helper that wraps a call to New and panics on error. It is
// intended for rule lists known valid at program start.
//
func Must(l *Lexer, err error) *Lexer {
	if err != nil {
		panic(err)
	}
	return l
}

// Name returns the name of the given rule, or "rule N" if it has none.
//
func (l *Lexer) Name(id RuleID) string {
	return label(int(id), &l.rules[id])
}

// Lex starts a new scan of input. The returned Scan is independent of any
// other scan on the same Lexer but must itself be used from a single
// goroutine.
//
func (l *Lexer) Lex(input string) *Scan {
	s := &Scan{l: l, input: input}
	s.sc.init(l.a.size)
	return s
}

// A Scan is a cursor over one input string. It follows the bufio.Scanner
// idiom:
//
//	s := l.Lex(input)
//	for s.Scan() {
//		it := s.Item()
//		// ...
//	}
//	if err := s.Err(); err != nil {
//		// ...
//	}
//
// Tokens are computed on demand, one per call to Scan. Abandoning a Scan
// early requires no cleanup.
//
type Scan struct {
	l     *Lexer
	input string
	pos   int
	item  Item
	err   error
	done  bool
	sc    scratch
	cands []candidate
}

// Scan advances to the next token, skipping input consumed by skip rules.
// It returns false at end of input or on error; once it has returned false
// it always returns false. Err tells the two conditions apart.
//
func (s *Scan) Scan() bool {
	for !s.done {
		if s.pos == len(s.input) {
			s.done = true
			break
		}
		s.cands = s.l.a.matches(s.input, s.pos, &s.sc, s.cands[:0])
		c, ok := pick(s.cands)
		if !ok {
			s.err = &UnrecognizedInputError{Offset: s.pos}
			s.done = true
			break
		}
		start, end := s.pos, c.end
		r := &s.l.rules[c.rule]
		if r.More != nil {
			n, ok := r.More(s.input[start:end], s.input[end:])
			if !ok {
				// The whole attempted token is rejected, so the error
				// points at its start, not at the remaining input.
				s.err = &ContinuationRefusedError{Offset: start, Rule: RuleID(c.rule)}
				s.done = true
				break
			}
			end += n
		}
		if end == start {
			// ruled out by the empty-match check in compileRule
			panic("lex: empty match at offset " + fmt.Sprint(start))
		}
		s.pos = end
		if r.Skip {
			continue
		}
		s.item = Item{Start: start, End: end, Rule: RuleID(c.rule), Text: s.input[start:end]}
		return true
	}
	return false
}

// Item returns the token produced by the last successful call to Scan.
//
func (s *Scan) Item() Item {
	return s.item
}

// Err returns the error that stopped the scan, or nil if the scan is still
// going or ended at end of input. The error is either an
// *UnrecognizedInputError or a *ContinuationRefusedError.
//
func (s *Scan) Err() error {
	return s.err
}

// Pos returns the byte offset of the first byte not yet consumed.
//
func (s *Scan) Pos() int {
	return s.pos
}

// pick selects the winning candidate: largest end offset first, then lowest
// rule ID. This two step selection is the entire disambiguation policy.
//
func pick(cands []candidate) (candidate, bool) {
	if len(cands) == 0 {
		return candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.end > best.end || c.end == best.end && c.rule < best.rule {
			best = c
		}
	}
	return best, true
}
