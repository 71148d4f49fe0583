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

/*
Package lex builds lexers from declarative rule lists.

A rule pairs a pattern, literal text or a regular expression, with a token
identity. New compiles an ordered list of rules into a single multi-pattern
automaton; Lex then scans an input string and produces the token stream,
resolving overlaps with the usual lexer policy: the longest match wins, and
among matches of equal length the rule declared first wins.

	l := lex.Must(lex.New([]lex.Rule{
		lex.Token("Import", "import"),
		lex.Token("Semi", ";"),
		lex.Regex("Ident", "[a-zA-Z_][a-zA-Z0-9_]*"),
		lex.Skip(`//[^\n]*`),
		lex.Skip(`[ \t\r\n\f]+`),
	}))

	s := l.Lex("import foo_bar;")
	for s.Scan() {
		fmt.Println(s.Item())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}

Rule order is significant: a rule's index is its RuleID, which is both how
tokens refer back to their rule and the tie-break key. Skip rules consume
input without emitting anything, which is how whitespace and comments are
usually handled.

# Beyond regular patterns

Constructs that a regular pattern cannot finish, such as raw string literals
whose closing delimiter depends on the opening one, are handled by attaching
a Continuation to a rule. The pattern recognizes the opening of the
construct and the continuation receives the matched text plus the rest of
the input and decides how many more bytes belong to the token. The cont
subpackage provides ready-made continuations for common shapes.

# Errors

Rule problems (invalid pattern syntax, or a pattern that can match the empty
string) surface as a *PatternError from New; no engine is built. Scan-time
problems stop the scan and are reported by Scan.Err as an
*UnrecognizedInputError or a *ContinuationRefusedError carrying the byte
offset involved. Recovery, such as skipping a byte and rescanning the rest,
is deliberately left to the caller.

# Concurrency

A Lexer is immutable once built and any number of goroutines may run scans
on it concurrently. A single Scan is not safe for concurrent use.
*/
package lex
