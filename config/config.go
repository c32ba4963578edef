// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config // import "robpike.io/mcal/config"

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// DefaultPrompt is the interactive prompt. The %d is the number
// the next result will have in the history.
const DefaultPrompt = "[%d] ~ "

// A Config holds the settings of an mcal session.
// The zero value is usable.
type Config struct {
	prompt    string
	format    string
	verbose   bool
	color     bool
	terminal  bool
	output    io.Writer
	errOutput io.Writer
	debug     map[string]bool
}

// DebugFlags lists the names accepted by SetDebug.
var DebugFlags = []string{
	"flat",      // Print each flat expression before reduction.
	"normalize", // Print the normalized input.
}

// Format returns the format for printing results.
// An empty string means the canonical form, which is
// also what the history stores.
func (c *Config) Format() string {
	return c.format
}

func (c *Config) SetFormat(s string) {
	c.format = s
}

// Prompt returns the interactive prompt for result number n.
func (c *Config) Prompt(n int) string {
	p := c.prompt
	if p == "" {
		p = DefaultPrompt
	}
	return fmt.Sprintf(p, n)
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Verbose reports whether errors are shown in full.
func (c *Config) Verbose() bool {
	return c.verbose
}

func (c *Config) SetVerbose(v bool) {
	c.verbose = v
}

// Color reports whether output is colorized.
func (c *Config) Color() bool {
	return c.color
}

func (c *Config) SetColor(color bool) {
	c.color = color
}

// Terminal reports whether the session talks to a terminal,
// which enables clearing the screen.
func (c *Config) Terminal() bool {
	return c.terminal
}

func (c *Config) SetTerminal(t bool) {
	c.terminal = t
}

// Output returns the writer for results.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer for error messages.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
}

func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

// SetDebug sets the named debug switch. It reports whether
// the name is one of DebugFlags.
func (c *Config) SetDebug(s string, state bool) bool {
	i := sort.SearchStrings(DebugFlags, s)
	if i == len(DebugFlags) || DebugFlags[i] != s {
		return false
	}
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
	return true
}
