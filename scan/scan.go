// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan locates function names and matching parentheses
// in normalized expression text.
package scan // import "robpike.io/mcal/scan"

import "robpike.io/mcal/value"

const (
	leftParen  = '('
	rightParen = ')'
)

// IsFunctionChar reports whether c may appear in a function name:
// a lower case ASCII letter or an underscore.
func IsFunctionChar(c byte) bool {
	return 'a' <= c && c <= 'z' || c == '_'
}

// FunctionNameEnd returns the index of the '(' that follows the function
// name starting at text[i].
func FunctionNameEnd(text string, i int) (int, error) {
	if i < 0 || i >= len(text) || !IsFunctionChar(text[i]) {
		return 0, value.Errorf(value.InvalidFunctionStart, "expected function name at index %d", i)
	}
	for i < len(text) && IsFunctionChar(text[i]) {
		i++
	}
	if i == len(text) || text[i] != leftParen {
		return 0, value.Errorf(value.MissingOpenParen, "expected '(' after function name at index %d", i)
	}
	return i, nil
}

// MatchingClose returns the index of the ')' that closes the '(' at text[i].
func MatchingClose(text string, i int) (int, error) {
	if i < 0 || i >= len(text) || text[i] != leftParen {
		return 0, value.Errorf(value.NotAnOpenParen, "expected '(' at index %d", i)
	}
	depth := 0
	for ; i < len(text); i++ {
		switch text[i] {
		case leftParen:
			depth++
		case rightParen:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, value.Errorf(value.UnmatchedOpenParen, "no ')' matches '(' in %q", text)
}

// CheckBalance reports an error unless every '(' in text is closed
// and no ')' appears before its '('.
func CheckBalance(text string) error {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case leftParen:
			depth++
		case rightParen:
			depth--
			if depth < 0 {
				return value.Errorf(value.UnbalancedParentheses, "unexpected ')' at index %d", i)
			}
		}
	}
	if depth != 0 {
		return value.Errorf(value.UnbalancedParentheses, "%d unclosed '('", depth)
	}
	return nil
}
