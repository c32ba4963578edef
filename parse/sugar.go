// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse rewrites raw input into the plain form the evaluator reads:
// it expands operator aliases and constants, makes implicit multiplication
// explicit, and substitutes history registers.
package parse // import "robpike.io/mcal/parse"

import (
	"math"
	"strconv"
	"strings"
)

// A Substitution replaces every occurrence of From with To.
type Substitution struct {
	From, To string
}

// Operators holds the operator aliases. They are applied before Constants.
var Operators = []Substitution{
	{"^", "**"},
	{"X", "*"},
}

// Constants holds the named constants. Names are upper case; any name
// containing an operator alias would be corrupted by the operator pass.
var Constants = []Substitution{
	{"E", strconv.FormatFloat(math.E, 'f', -1, 64)},
	{"PI", strconv.FormatFloat(math.Pi, 'f', -1, 64)},
}

// Replace applies each substitution of table in order to the whole text.
// A substitution does not see its own output, but later ones do.
func Replace(text string, table []Substitution) string {
	for _, s := range table {
		text = strings.ReplaceAll(text, s.From, s.To)
	}
	return text
}

// ReplaceConstantsAndOperators expands operator aliases, then constants.
func ReplaceConstantsAndOperators(text string) string {
	return Replace(Replace(text, Operators), Constants)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// ImplicitMultiplication inserts '*' where juxtaposition implies it:
// ")(" becomes ")*(", and '*' goes between a digit and a following '('
// and between ')' and a following digit.
func ImplicitMultiplication(text string) string {
	text = strings.ReplaceAll(text, ")(", ")*(")
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if i > 0 {
			prev := text[i-1]
			if isDigit(prev) && c == '(' || prev == ')' && isDigit(c) {
				b.WriteByte('*')
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Normalize returns the text with its syntactic sugar removed.
// It never fails; malformed input is caught by later stages.
func Normalize(raw string) string {
	return ImplicitMultiplication(ReplaceConstantsAndOperators(raw))
}
