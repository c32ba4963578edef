// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for mcal.
// It is factored out of main so it can be used for tests.
package run // import "robpike.io/mcal/run"

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"robpike.io/mcal/config"
	"robpike.io/mcal/exec"
	"robpike.io/mcal/value"
)

// Control words, matched without regard to case.
var (
	ClearTokens = []string{"c", "clear", "clean", "wipe"}
	QuitTokens  = []string{"q", "quit", "exit"}
)

const clearScreen = "\033[H\033[J"

// A LineReader delivers lines of input. Readline returns io.EOF at end of
// input and readline.ErrInterrupt if the user abandons the line.
// A *readline.Instance is a LineReader.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type lineScanner struct {
	s *bufio.Scanner
}

// NewLineScanner returns a LineReader for input that is not a terminal.
// It shows no prompts.
func NewLineScanner(r io.Reader) LineReader {
	return &lineScanner{bufio.NewScanner(r)}
}

func (l *lineScanner) Readline() (string, error) {
	if l.s.Scan() {
		return l.s.Text(), nil
	}
	if err := l.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (l *lineScanner) SetPrompt(string) {}

// Run reads and evaluates lines until the user quits or the input ends.
// Each result joins the session's history. A line that fails to evaluate
// is reported and leaves the history alone.
// The returned error is non-nil only if reading the input failed.
func Run(context *exec.Context, lines LineReader) error {
	conf := context.Config()
	w := conf.Output()
	result, failure := colors(conf)
	if conf.Terminal() {
		fmt.Fprint(w, clearScreen)
		fmt.Fprintln(w, "Enter 'q' to quit.")
	}
	for {
		n := len(context.Registers()) + 1
		lines.SetPrompt(conf.Prompt(n))
		line, err := lines.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}
		line = strings.TrimSpace(line)
		word := strings.ToLower(line)
		switch {
		case line == "":
			fmt.Fprintln(w, "Please enter a non-empty expression.")
			continue
		case slices.Contains(ClearTokens, word):
			if conf.Terminal() {
				fmt.Fprint(w, clearScreen)
			}
			continue
		case slices.Contains(QuitTokens, word):
			if conf.Terminal() {
				fmt.Fprint(w, clearScreen)
			}
			return nil
		}
		x, err := context.Eval(line)
		if err != nil {
			if conf.Verbose() {
				failure.Fprintf(w, "Error calculating: %v\n", err)
			} else {
				failure.Fprintln(w, "Error calculating.")
			}
			continue
		}
		// Line the '=' up under the prompt.
		prefix := strings.Repeat(" ", len(strconv.Itoa(n))+1)
		fmt.Fprintf(w, "%s = %s\n", prefix, result.Sprint(Display(conf, x)))
	}
}

// Once evaluates the concatenation of args, with no separator,
// and prints the result.
func Once(context *exec.Context, args []string) error {
	conf := context.Config()
	x, err := context.Eval(strings.Join(args, ""))
	if err != nil {
		return err
	}
	fmt.Fprintln(conf.Output(), Display(conf, x))
	return nil
}

// Display formats x for printing using the configured format.
func Display(conf *config.Config, x float64) string {
	if conf.Format() == "" {
		return value.Format(x)
	}
	return fmt.Sprintf(conf.Format(), x)
}

// colors returns the colors for results and failures.
func colors(conf *config.Config) (result, failure *color.Color) {
	result = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
	if !conf.Color() {
		result.DisableColor()
		failure.DisableColor()
	}
	return result, failure
}
