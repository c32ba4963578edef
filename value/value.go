// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value holds the numeric side of mcal: the error kinds shared by
// every stage of evaluation, the function registry, and the reducer for flat
// arithmetic expressions.
package value // import "robpike.io/mcal/value"

import (
	"fmt"
	"math"
	"strconv"
)

// Kind classifies an evaluation failure.
// A Kind is itself an error so it can be the target of errors.Is.
type Kind int

const (
	_ Kind = iota
	UnbalancedParentheses
	InvalidFunctionStart
	MissingOpenParen
	NotAnOpenParen
	UnmatchedOpenParen
	UnknownFunction
	RegisterOutOfRange
	ArithmeticError
	FactorialDomainError
)

var kindNames = [...]string{
	UnbalancedParentheses: "unbalanced parentheses",
	InvalidFunctionStart:  "invalid function start",
	MissingOpenParen:      "missing open parenthesis",
	NotAnOpenParen:        "not an open parenthesis",
	UnmatchedOpenParen:    "unmatched open parenthesis",
	UnknownFunction:       "unknown function",
	RegisterOutOfRange:    "register out of range",
	ArithmeticError:       "arithmetic error",
	FactorialDomainError:  "factorial domain error",
}

func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

func (k Kind) Error() string {
	return k.String()
}

// Error is the error returned by every stage of evaluation.
type Error struct {
	Kind Kind
	Msg  string
}

func (err *Error) Error() string {
	return err.Kind.String() + ": " + err.Msg
}

func (err *Error) Unwrap() error {
	return err.Kind
}

// Errorf returns an *Error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Format returns the canonical text of x: plain decimal notation with the
// fewest digits that represent it exactly. That text is what the history
// stores, so it must read back through Reduce; exponents never appear.
func Format(x float64) string {
	if x == 0 {
		x = 0 // No negative zero.
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// finite reports whether x is neither NaN nor infinite.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
