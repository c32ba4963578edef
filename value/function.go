// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"sort"
)

// Func is a unary numeric function applied to the value of its
// parenthesized argument.
type Func func(float64) (float64, error)

// Identity is the function applied to an expression that is not
// the argument of a named function.
func Identity(x float64) (float64, error) {
	return x, nil
}

// float wraps a math function, rejecting results outside the reals.
func float(name string, fn func(float64) float64) Func {
	return func(x float64) (float64, error) {
		y := fn(x)
		if !finite(y) {
			return 0, Errorf(ArithmeticError, "%s(%s) is not a finite number", name, Format(x))
		}
		return y, nil
	}
}

// functions is the registry of named functions. Names are lower case
// letters and underscores; see scan.IsFunctionChar.
var functions = map[string]Func{
	"log":     float("log", math.Log),
	"log_two": float("log_two", math.Log2),
	"log_ten": float("log_ten", math.Log10),
	"sqrt":    float("sqrt", math.Sqrt),
	"ceil":    float("ceil", math.Ceil),
	"floor":   float("floor", math.Floor),
	"fac":     factorial,
}

// Lookup returns the function with the given name.
func Lookup(name string) (Func, error) {
	fn, ok := functions[name]
	if !ok {
		return nil, Errorf(UnknownFunction, "%q", name)
	}
	return fn, nil
}

// Functions returns the names of all functions, sorted.
func Functions() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
