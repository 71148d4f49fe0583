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
	"regexp/syntax"
	"unicode/utf8"
)

// An automaton is the union of all rule programs. It is built once by New
// and is read-only afterwards: any number of concurrent scans may query it,
// each with its own threadSet scratch.
//
// Matching is anchored: a query at offset pos only ever explores runs
// starting exactly at pos, and one traversal discovers every (rule, end)
// pair reachable from there, across all rules and all match lengths at
// once.
//
type automaton struct {
	progs []*syntax.Prog
	base  []uint32 // global pc offset of each rule's program
	size  int      // total instruction count across programs
}

// A candidate is one anchored match reported by the automaton: rule's
// pattern matches input[pos:end] for the queried pos.
//
type candidate struct {
	rule int
	end  int
}

func newAutomaton(progs []*syntax.Prog) *automaton {
	a := &automaton{
		progs: progs,
		base:  make([]uint32, len(progs)),
	}
	for i, p := range progs {
		a.base[i] = uint32(a.size)
		a.size += len(p.Inst)
	}
	return a
}

// A thread is one active position in one rule's program.
//
type thread struct {
	rule int
	pc   uint32
}

// A threadSet is a sparse set of threads keyed by global pc. The sparse
// slice may contain garbage for absent keys; has guards against that by
// checking the dense entry back. See Briggs & Torczon, "An efficient
// representation for sparse sets".
//
type threadSet struct {
	dense  []thread
	sparse []uint32
}

func (s *threadSet) init(size int) {
	s.dense = make([]thread, 0, size)
	s.sparse = make([]uint32, size)
}

func (s *threadSet) clear() { s.dense = s.dense[:0] }

func (s *threadSet) has(gpc uint32, t thread) bool {
	j := s.sparse[gpc]
	return j < uint32(len(s.dense)) && s.dense[j] == t
}

func (s *threadSet) add(gpc uint32, t thread) {
	s.sparse[gpc] = uint32(len(s.dense))
	s.dense = append(s.dense, t)
}

// scratch is the per-scan working storage for automaton queries.
//
type scratch struct {
	clist, nlist threadSet
}

func (t *scratch) init(size int) {
	t.clist.init(size)
	t.nlist.init(size)
}

// matches appends to dst every (rule, end) candidate whose pattern matches
// input starting exactly at pos, and returns the extended slice. All rules
// and all match lengths are found in a single left-to-right traversal.
//
func (a *automaton) matches(input string, pos int, sc *scratch, dst []candidate) []candidate {
	clist, nlist := &sc.clist, &sc.nlist
	clist.clear()
	cond := emptyContext(input, pos)
	for i := range a.progs {
		dst = a.add(clist, thread{rule: i, pc: uint32(a.progs[i].Start)}, cond, pos, dst)
	}
	for off := pos; off < len(input) && len(clist.dense) > 0; {
		r, w := utf8.DecodeRuneInString(input[off:])
		cond = emptyContext(input, off+w)
		nlist.clear()
		for i := 0; i < len(clist.dense); i++ {
			t := clist.dense[i]
			inst := &a.progs[t.rule].Inst[t.pc]
			switch inst.Op {
			case syntax.InstRune, syntax.InstRune1, syntax.InstRuneAny, syntax.InstRuneAnyNotNL:
				if inst.MatchRune(r) {
					dst = a.add(nlist, thread{rule: t.rule, pc: inst.Out}, cond, off+w, dst)
				}
			}
		}
		clist, nlist = nlist, clist
		off += w
	}
	return dst
}

// add inserts t and its epsilon closure into set, recording a candidate
// ending at offset at whenever the closure reaches a match instruction.
//
func (a *automaton) add(set *threadSet, t thread, cond syntax.EmptyOp, at int, dst []candidate) []candidate {
	gpc := a.base[t.rule] + t.pc
	if set.has(gpc, t) {
		return dst
	}
	set.add(gpc, t)
	inst := &a.progs[t.rule].Inst[t.pc]
	switch inst.Op {
	case syntax.InstFail:
		// dead end
	case syntax.InstAlt, syntax.InstAltMatch:
		dst = a.add(set, thread{rule: t.rule, pc: inst.Out}, cond, at, dst)
		dst = a.add(set, thread{rule: t.rule, pc: inst.Arg}, cond, at, dst)
	case syntax.InstNop, syntax.InstCapture:
		dst = a.add(set, thread{rule: t.rule, pc: inst.Out}, cond, at, dst)
	case syntax.InstEmptyWidth:
		if syntax.EmptyOp(inst.Arg)&^cond == 0 {
			dst = a.add(set, thread{rule: t.rule, pc: inst.Out}, cond, at, dst)
		}
	case syntax.InstMatch:
		dst = append(dst, candidate{rule: t.rule, end: at})
	}
	// rune instructions stay in the set and are stepped by matches.
	return dst
}

// emptyContext computes the zero-width assertion context at pos, looking at
// the runes on either side of the position.
//
func emptyContext(input string, pos int) syntax.EmptyOp {
	r1, r2 := rune(-1), rune(-1)
	if pos > 0 {
		r1, _ = utf8.DecodeLastRuneInString(input[:pos])
	}
	if pos < len(input) {
		r2, _ = utf8.DecodeRuneInString(input[pos:])
	}
	return syntax.EmptyOpContext(r1, r2)
}
