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

// Package rulefile loads lex rule lists from YAML documents.
//
// It is a front end for package lex: a way to keep a token description in a
// file instead of Go source. A rule file is a YAML sequence; each entry
// names either a literal ("token") or a regular expression ("regex"), and
// may be marked "skip" or reference a continuation by name through "more":
//
//	- name: Import
//	  token: import
//	- name: Ident
//	  regex: "[a-zA-Z_][a-zA-Z0-9_]*"
//	- name: RawStr
//	  regex: 'r#*"'
//	  more: rawstring
//	- regex: "[ \t\r\n\f]+"
//	  skip: true
//
// Declaration order in the file is preserved and becomes rule priority.
// Continuation names are resolved against a caller-supplied Registry before
// the rules are handed to lex.New, so the engine itself never deals with
// names.
//
package rulefile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mk73e/lex"
)

// A Registry maps continuation names, as used in "more" fields, to
// implementations.
//
type Registry map[string]lex.Continuation

type spec struct {
	Name  string  `yaml:"name"`
	Token *string `yaml:"token"`
	Regex *string `yaml:"regex"`
	Skip  bool    `yaml:"skip"`
	More  string  `yaml:"more"`
}

// Load reads a YAML rule file from r and resolves continuation references
// through reg. The returned rules are in file order, ready for lex.New.
// reg may be nil if no rule uses "more".
//
func Load(r io.Reader, reg Registry) ([]lex.Rule, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var specs []spec
	if err := dec.Decode(&specs); err != nil {
		return nil, fmt.Errorf("rulefile: %w", err)
	}
	rules := make([]lex.Rule, 0, len(specs))
	for i, s := range specs {
		rule, err := s.rule()
		if err != nil {
			return nil, fmt.Errorf("rulefile: rule %d (%s): %w", i, s.label(), err)
		}
		if s.More != "" {
			c, ok := reg[s.More]
			if !ok {
				return nil, fmt.Errorf("rulefile: rule %d (%s): unknown continuation %q", i, s.label(), s.More)
			}
			rule.More = c
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (s *spec) rule() (lex.Rule, error) {
	switch {
	case s.Token != nil && s.Regex != nil:
		return lex.Rule{}, fmt.Errorf("both token and regex given")
	case s.Token != nil:
		return lex.Rule{Name: s.Name, Pattern: *s.Token, Literal: true, Skip: s.Skip}, nil
	case s.Regex != nil:
		return lex.Rule{Name: s.Name, Pattern: *s.Regex, Skip: s.Skip}, nil
	}
	return lex.Rule{}, fmt.Errorf("neither token nor regex given")
}

func (s *spec) label() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Skip {
		return "skip"
	}
	return "unnamed"
}
