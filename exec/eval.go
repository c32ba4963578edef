// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec evaluates normalized expressions and holds the
// state of an mcal session.
package exec // import "robpike.io/mcal/exec"

import (
	"fmt"
	"strings"

	"robpike.io/mcal/config"
	"robpike.io/mcal/scan"
	"robpike.io/mcal/value"
)

// Eval evaluates normalized text and applies fn to the result.
// Each function call and parenthesized group is evaluated recursively
// and its value is spliced into the text in place of the group; what
// remains is a flat expression for value.Reduce. The splice is textual,
// so (0-2)**2 becomes -2**2 and 2sqrt(16) becomes 24.
func Eval(text string, fn value.Func) (float64, error) {
	return evaluate(nil, text, fn)
}

// evaluate implements Eval. If conf is non-nil, its debug settings apply.
func evaluate(conf *config.Config, text string, fn value.Func) (float64, error) {
	var flat strings.Builder
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case scan.IsFunctionChar(c):
			open, err := scan.FunctionNameEnd(text, i)
			if err != nil {
				return 0, err
			}
			f, err := value.Lookup(text[i:open])
			if err != nil {
				return 0, err
			}
			x, end, err := group(conf, text, open, f)
			if err != nil {
				return 0, err
			}
			flat.WriteString(value.Format(x))
			i = end + 1
		case c == '(':
			x, end, err := group(conf, text, i, value.Identity)
			if err != nil {
				return 0, err
			}
			flat.WriteString(value.Format(x))
			i = end + 1
		default:
			// Copy the run of plain text up to the next group.
			j := i + 1
			for j < len(text) && text[j] != '(' && !scan.IsFunctionChar(text[j]) {
				j++
			}
			flat.WriteString(text[i:j])
			i = j
		}
	}
	if conf != nil && conf.Debug("flat") {
		fmt.Fprintf(conf.Output(), "flat: %s\n", flat.String())
	}
	x, err := value.Reduce(flat.String())
	if err != nil {
		return 0, err
	}
	return fn(x)
}

// group evaluates the parenthesized text starting at text[open], applying fn.
// It returns the value and the index of the closing parenthesis.
func group(conf *config.Config, text string, open int, fn value.Func) (float64, int, error) {
	end, err := scan.MatchingClose(text, open)
	if err != nil {
		return 0, 0, err
	}
	x, err := evaluate(conf, text[open+1:end], fn)
	return x, end, err
}
