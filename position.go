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
	"strings"

	"golang.org/x/text/width"
)

// Position describes a source position in terms a user can act on. Line is
// 1-based. Column is a 1-based display column: most runes occupy one column,
// East Asian wide and fullwidth runes occupy two.
//
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// A LineMap converts byte offsets into an input string to line/column
// positions, for error reporting. It is immutable after NewLineMap and safe
// for concurrent use.
//
type LineMap struct {
	input string
	lines []int // byte offset of the first byte of each line
}

// NewLineMap indexes the line starts of input.
//
func NewLineMap(input string) *LineMap {
	m := &LineMap{input: input, lines: []int{0}}
	for i := 0; ; {
		j := strings.IndexByte(input[i:], '\n')
		if j < 0 {
			break
		}
		i += j + 1
		m.lines = append(m.lines, i)
	}
	return m
}

// Position returns the position of the given byte offset. Offsets out of
// range are clamped to the input.
//
func (m *LineMap) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(m.input) {
		offset = len(m.input)
	}
	// binary search for the line containing offset
	i, j := 0, len(m.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if m.lines[h] <= offset {
			i = h + 1
		} else {
			j = h
		}
	}
	start := m.lines[i-1]
	col := 1
	for _, r := range m.input[start:offset] {
		col += runeWidth(r)
	}
	return Position{Line: i, Column: col}
}

// runeWidth returns the number of display columns occupied by r.
//
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
