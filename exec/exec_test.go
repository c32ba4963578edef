// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"robpike.io/mcal/config"
	"robpike.io/mcal/value"
)

func near(x, y float64) bool {
	return math.Abs(x-y) <= 1e-12*math.Max(1, math.Abs(y))
}

var calculateTests = []struct {
	in   string
	want float64
}{
	{"PI", math.Pi},
	{"E", math.E},
	{"2^10", 1024},
	{"1280X720", 921600},
	{"(5+5" + "(10)" + ")" + "/5", 11},
	{"1+2*3", 7},
	{"(1+2)*3", 9},
	{"2(3)", 6},
	{"(2)(3)", 6},
	{"(2)3", 6},
	{"((((1))))", 1},
	{"sqrt(16)", 4},
	{"sqrt(16)+1", 5},
	{"fac(5)", 120},
	{"log(E)", 1},
	{"log_two(2^10)", 10},
	{"log_ten(1000)", 3},
	{"ceil(1.2)", 2},
	{"floor(0-1.2)", -2},
	{"sqrt(sqrt(256))", 4},
	{"fac(sqrt(9)+1)", 24},
	{"(0-2)^2", -4},
	{"3(0-2)^2", -12},
	{"(0-4)^0.5", -2},
	{"2^(0-1)", 0.5},
	{"2sqrt(16)", 24},
	{"fac(3)fac(3)", 66},
	{"2sqrt(4)X3", 66},
	{"floor(PI)ceil(PI)", 34},
	{"-2^2", -4},
	{"2^3^2", 512},
	{"10/4", 2.5},
	{"2 + 3 * 4", 14},
	{"PI(2)", 2 * math.Pi},
	{"2(PI)", 2 * math.Pi},
}

func TestCalculate(t *testing.T) {
	for _, test := range calculateTests {
		got, err := Calculate(test.in, nil)
		if err != nil {
			t.Errorf("Calculate(%q): %v", test.in, err)
			continue
		}
		if !near(got, test.want) {
			t.Errorf("Calculate(%q) = %v; want %v", test.in, got, test.want)
		}
	}
}

var calculateErrorTests = []struct {
	in   string
	kind value.Kind
}{
	{"foo(1)", value.UnknownFunction},
	{"sin(1)", value.UnknownFunction},
	{"log5", value.MissingOpenParen},
	{"2+log", value.MissingOpenParen},
	{"(1+2", value.UnbalancedParentheses},
	{"1+2)", value.UnbalancedParentheses},
	{")1+2(", value.UnbalancedParentheses},
	{"$1", value.RegisterOutOfRange},
	{"1/0", value.ArithmeticError},
	{"sqrt(0-1)", value.ArithmeticError},
	{"log(0)", value.ArithmeticError},
	{"fac(0-3)", value.FactorialDomainError},
	{"fac(200)", value.FactorialDomainError},
	{"2 (3)", value.ArithmeticError},
	{"()", value.ArithmeticError},
	{"", value.ArithmeticError},
	{"1+Q", value.ArithmeticError},
	{"10^400", value.ArithmeticError},
}

func TestCalculateErrors(t *testing.T) {
	for _, test := range calculateErrorTests {
		x, err := Calculate(test.in, nil)
		if !errors.Is(err, test.kind) {
			t.Errorf("Calculate(%q) = %v, %v; want error %s", test.in, x, err, test.kind)
		}
	}
}

func TestEvalUnmatched(t *testing.T) {
	// Without the balance check of Calculate, the scanner reports the problem.
	_, err := Eval("(1+2", value.Identity)
	if !errors.Is(err, value.UnmatchedOpenParen) {
		t.Errorf("Eval: got error %v; want %s", err, value.UnmatchedOpenParen)
	}
}

func TestEvalAppliesFunction(t *testing.T) {
	double := func(x float64) (float64, error) { return 2 * x, nil }
	got, err := Eval("1+sqrt(4*4)", double)
	if err != nil {
		t.Fatal(err)
	}
	if got != 10 {
		t.Errorf("Eval = %v; want 10", got)
	}
}

func TestRegisters(t *testing.T) {
	got, err := Calculate("$1+$2", []string{"4", "9"})
	if err != nil {
		t.Fatal(err)
	}
	if got != 13 {
		t.Errorf("$1+$2 = %v; want 13", got)
	}
	if _, err := Calculate("$3", []string{"4", "9"}); !errors.Is(err, value.RegisterOutOfRange) {
		t.Errorf("$3: got error %v; want %s", err, value.RegisterOutOfRange)
	}
}

type recording struct {
	seq           int
	input, result string
}

type fakeRecorder struct {
	records []recording
	err     error
}

func (r *fakeRecorder) Record(seq int, input, result string) error {
	r.records = append(r.records, recording{seq, input, result})
	return r.err
}

func TestContext(t *testing.T) {
	var conf config.Config
	c := NewContext(&conf)
	rec := &fakeRecorder{}
	c.SetRecorder(rec)
	for _, line := range []string{"4", "3^2", "$1+$2"} {
		if _, err := c.Eval(line); err != nil {
			t.Fatalf("Eval(%q): %v", line, err)
		}
	}
	want := []string{"4", "9", "13"}
	if got := c.Registers(); !slices.Equal(got, want) {
		t.Fatalf("Registers() = %q; want %q", got, want)
	}

	// A failure leaves the history alone.
	if _, err := c.Eval("$4"); !errors.Is(err, value.RegisterOutOfRange) {
		t.Errorf("Eval($4): got error %v; want %s", err, value.RegisterOutOfRange)
	}
	if got := c.Registers(); !slices.Equal(got, want) {
		t.Errorf("after failure, Registers() = %q; want %q", got, want)
	}

	// The snapshot is not shared with the session.
	snap := append(c.Registers(), "99")
	if _, err := c.Eval("1"); err != nil {
		t.Fatal(err)
	}
	if snap[3] != "99" {
		t.Errorf("snapshot modified by Eval: %q", snap)
	}

	wantRec := []recording{{1, "4", "4"}, {2, "3^2", "9"}, {3, "$1+$2", "13"}, {4, "1", "1"}}
	if !slices.Equal(rec.records, wantRec) {
		t.Errorf("recorded %v; want %v", rec.records, wantRec)
	}
}

func TestContextRecorderFailure(t *testing.T) {
	var conf config.Config
	var errBuf bytes.Buffer
	conf.SetErrOutput(&errBuf)
	c := NewContext(&conf)
	c.SetRecorder(&fakeRecorder{err: fmt.Errorf("disk full")})
	if _, err := c.Eval("1+1"); err != nil {
		t.Fatal(err)
	}
	if got := len(c.Registers()); got != 1 {
		t.Errorf("history has %d entries; want 1", got)
	}
	if got, want := errBuf.String(), "mcal: journal: disk full\n"; got != want {
		t.Errorf("error output %q; want %q", got, want)
	}
}

func TestDebugOutput(t *testing.T) {
	var conf config.Config
	var out bytes.Buffer
	conf.SetOutput(&out)
	conf.SetDebug("normalize", true)
	conf.SetDebug("flat", true)
	c := NewContext(&conf)
	if _, err := c.Eval("2(1+sqrt(4))"); err != nil {
		t.Fatal(err)
	}
	want := "normalize: 2*(1+sqrt(4))\n" +
		"flat: 4\n" +
		"flat: 1+2\n" +
		"flat: 2*3\n"
	if got := out.String(); got != want {
		t.Errorf("debug output:\n%s\nwant:\n%s", got, want)
	}
}

func TestSpliceText(t *testing.T) {
	var conf config.Config
	var out bytes.Buffer
	conf.SetOutput(&out)
	conf.SetDebug("flat", true)
	c := NewContext(&conf)
	for _, test := range []struct {
		line string
		want float64
		flat string
	}{
		// The sign of a negative group binds looser than **.
		{"(0-3)^2", -9, "flat: 0-3\nflat: -3**2\n"},
		// Negative zero splices as 0.
		{"ceil(0-0.5)+1", 1, "flat: 0-0.5\nflat: 0+1\n"},
		// Adjacent values join into one number.
		{"1sqrt(4)", 12, "flat: 4\nflat: 12\n"},
	} {
		out.Reset()
		got, err := c.Eval(test.line)
		if err != nil {
			t.Errorf("Eval(%q): %v", test.line, err)
			continue
		}
		if got != test.want {
			t.Errorf("Eval(%q) = %v; want %v", test.line, got, test.want)
		}
		if out.String() != test.flat {
			t.Errorf("Eval(%q) flat:\n%s\nwant:\n%s", test.line, out.String(), test.flat)
		}
	}
}
