// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"

	"robpike.io/mcal/config"
	"robpike.io/mcal/parse"
	"robpike.io/mcal/scan"
	"robpike.io/mcal/value"
)

// A Recorder keeps a permanent record of evaluated lines.
// Seq is the line's register number within the session.
type Recorder interface {
	Record(seq int, input, result string) error
}

// Context holds the state of a session: its configuration and
// the history of results, which $N refers to.
type Context struct {
	config    *config.Config
	registers []string
	recorder  Recorder
}

// NewContext returns a new session with an empty history.
func NewContext(conf *config.Config) *Context {
	return &Context{
		config: conf,
	}
}

func (c *Context) Config() *config.Config {
	return c.config
}

// SetRecorder arranges for every successful evaluation to be recorded.
func (c *Context) SetRecorder(r Recorder) {
	c.recorder = r
}

// Registers returns the history of results, oldest first.
// The caller must not modify it.
func (c *Context) Registers() []string {
	return c.registers[:len(c.registers):len(c.registers)]
}

// Eval evaluates the line against the history and, if it succeeds,
// appends the result to the history.
func (c *Context) Eval(line string) (float64, error) {
	x, err := calculate(c.config, line, c.Registers())
	if err != nil {
		return 0, err
	}
	text := value.Format(x)
	c.registers = append(c.registers, text)
	if c.recorder != nil {
		if err := c.recorder.Record(len(c.registers), line, text); err != nil {
			fmt.Fprintf(c.config.ErrOutput(), "mcal: journal: %v\n", err)
		}
	}
	return x, nil
}

// Calculate runs the whole pipeline on a line of input: it removes the
// syntactic sugar, substitutes registers from history, and evaluates.
func Calculate(line string, history []string) (float64, error) {
	return calculate(nil, line, history)
}

func calculate(conf *config.Config, line string, history []string) (float64, error) {
	text := parse.Normalize(line)
	if err := scan.CheckBalance(text); err != nil {
		return 0, err
	}
	text, err := parse.Resolve(text, history)
	if err != nil {
		return 0, err
	}
	if conf != nil && conf.Debug("normalize") {
		fmt.Fprintf(conf.Output(), "normalize: %s\n", text)
	}
	return evaluate(conf, text, value.Identity)
}
