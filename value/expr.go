// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Reduce evaluates the flat arithmetic expression s: numbers, decimal
// points, blanks and the operators + - * / **, with no parentheses.
// Precedence, from highest:
//
//	**      right-associative
//	unary -
//	* /     left-associative
//	+ -     left-associative
func Reduce(s string) (x float64, err error) {
	defer recoverer(&err)
	p := &parser{toks: lex(s)}
	if p.peek().typ == tokEOF {
		throw("empty expression")
	}
	x = p.sum()
	if tok := p.peek(); tok.typ != tokEOF {
		throw("unexpected %s", tok)
	}
	return x, nil
}

type tokType int

const (
	tokEOF tokType = iota
	tokNumber
	tokOp
)

type token struct {
	typ  tokType
	text string
	num  float64
}

func (t token) String() string {
	switch t.typ {
	case tokEOF:
		return "end of expression"
	case tokNumber:
		return "number " + Format(t.num)
	}
	return fmt.Sprintf("operator %q", t.text)
}

func throw(format string, args ...interface{}) {
	panic(Errorf(ArithmeticError, format, args...))
}

func recoverer(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(*Error); ok {
		*errp = err
		return
	}
	panic(r)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// lex splits the expression into tokens.
func lex(s string) []token {
	var toks []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '*' && i+1 < len(s) && s[i+1] == '*':
			toks = append(toks, token{typ: tokOp, text: "**"})
			i += 2
		case strings.IndexByte("+-*/", c) >= 0:
			toks = append(toks, token{typ: tokOp, text: s[i : i+1]})
			i++
		case isDigit(c) || c == '.':
			j := number(s, i)
			x, err := strconv.ParseFloat(s[i:j], 64)
			if err != nil || !finite(x) {
				throw("bad number %q", s[i:j])
			}
			toks = append(toks, token{typ: tokNumber, text: s[i:j], num: x})
			i = j
		default:
			throw("unexpected character %q", c)
		}
	}
	return toks
}

// number returns the end of the number starting at s[i]:
// digits, optionally followed by a decimal point and more digits.
func number(s string, i int) int {
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i-start == 1 && s[start] == '.' {
		throw("lone decimal point")
	}
	return i
}

type parser struct {
	toks []token
}

func (p *parser) peek() token {
	if len(p.toks) == 0 {
		return token{typ: tokEOF}
	}
	return p.toks[0]
}

func (p *parser) next() token {
	tok := p.peek()
	if tok.typ != tokEOF {
		p.toks = p.toks[1:]
	}
	return tok
}

// op consumes and returns the next token if it is one of the operators.
func (p *parser) op(ops ...string) string {
	tok := p.peek()
	if tok.typ != tokOp {
		return ""
	}
	for _, op := range ops {
		if tok.text == op {
			p.next()
			return op
		}
	}
	return ""
}

// sum = product { ('+' | '-') product }
func (p *parser) sum() float64 {
	x := p.product()
	for {
		switch p.op("+", "-") {
		case "+":
			x = check("+", x+p.product())
		case "-":
			x = check("-", x-p.product())
		default:
			return x
		}
	}
}

// product = unary { ('*' | '/') unary }
func (p *parser) product() float64 {
	x := p.unary()
	for {
		switch p.op("*", "/") {
		case "*":
			x = check("*", x*p.unary())
		case "/":
			y := p.unary()
			if y == 0 {
				throw("division by zero")
			}
			x = check("/", x/y)
		default:
			return x
		}
	}
}

// unary = '-' unary | power
func (p *parser) unary() float64 {
	if p.op("-") != "" {
		return -p.unary()
	}
	return p.power()
}

// power = number [ '**' unary ]
func (p *parser) power() float64 {
	x := p.primary()
	if p.op("**") != "" {
		y := p.unary()
		if x == 0 && y < 0 {
			throw("zero to a negative power")
		}
		return check("**", math.Pow(x, y))
	}
	return x
}

func (p *parser) primary() float64 {
	tok := p.next()
	if tok.typ != tokNumber {
		throw("expected number, found %s", tok)
	}
	return tok.num
}

// check rejects results that have left the finite reals.
func check(op string, x float64) float64 {
	if !finite(x) {
		throw("result of %s is not a finite number", op)
	}
	return x
}
