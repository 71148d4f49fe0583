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

// Package cont provides ready-made continuations for common token shapes
// that a regular pattern alone cannot finish.
//
// All functions are constructors returning a lex.Continuation. The returned
// continuations are pure and safe to share between rules and concurrent
// scans.
//
package cont

import (
	"strings"

	"github.com/mk73e/lex"
)

// Until extends the match through the next occurrence of sep in the
// remaining input, sep included. It refuses if sep does not occur, which
// makes it a direct fit for single-terminator constructs such as block
// comments (pattern `/\*` with Until(`*/`)).
//
func Until(sep string) lex.Continuation {
	return func(_, rest string) (int, bool) {
		i := strings.Index(rest, sep)
		if i < 0 {
			return 0, false
		}
		return i + len(sep), true
	}
}

// RawString closes raw string literals opened by a delimiter of the form
//
//	r#*"
//
// as matched by the rule's pattern. The closing delimiter is the opening
// one reversed: a quote followed by the same number of hashes. RawString
// extends the match through the first such closer and refuses if the
// literal is unterminated.
//
func RawString() lex.Continuation {
	return func(matched, rest string) (int, bool) {
		// matched is r#*", the closer is "#*
		closer := `"` + strings.Repeat("#", len(matched)-2)
		i := strings.Index(rest, closer)
		if i < 0 {
			return 0, false
		}
		return i + len(closer), true
	}
}

// Balanced extends the match until the construct opened by the rule's
// pattern is closed, honoring nesting: every further occurrence of open
// must be closed before the construct ends. It refuses on unbalanced
// input. Use it for nestable block comments (pattern `/\*` with
// Balanced(`/*`, `*/`)).
//
func Balanced(open, close string) lex.Continuation {
	return func(_, rest string) (int, bool) {
		depth := 1
		i := 0
		for depth > 0 {
			c := strings.Index(rest[i:], close)
			if c < 0 {
				return 0, false
			}
			if o := strings.Index(rest[i:], open); o >= 0 && o < c {
				depth++
				i += o + len(open)
				continue
			}
			depth--
			i += c + len(close)
		}
		return i, true
	}
}
