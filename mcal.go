// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"robpike.io/mcal/config"
	"robpike.io/mcal/exec"
	"robpike.io/mcal/journal"
	"robpike.io/mcal/parse"
	"robpike.io/mcal/run"
	"robpike.io/mcal/value"
)

func main() {
	os.Exit(mcal(os.Args))
}

// mcal runs the command and returns its exit status.
func mcal(argv []string) int {
	log.SetFlags(0)
	log.SetPrefix("mcal: ")

	var (
		conf        config.Config
		journalPath string
		historyFile string
		list        bool
		noColor     bool
	)
	opts, optind, err := getopt.Getopts(argv, "d:f:hH:j:lnp:v")
	if err != nil {
		log.Print(err)
		usage()
		return 2
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'd':
			if !conf.SetDebug(opt.Value, true) {
				log.Printf("unknown debug flag %q; have %s", opt.Value, strings.Join(config.DebugFlags, ", "))
				return 2
			}
		case 'f':
			conf.SetFormat(opt.Value)
		case 'h':
			usage()
			return 0
		case 'H':
			historyFile = opt.Value
		case 'j':
			journalPath = opt.Value
		case 'l':
			list = true
		case 'n':
			noColor = true
		case 'p':
			conf.SetPrompt(opt.Value)
		case 'v':
			conf.SetVerbose(true)
		}
	}
	args := argv[optind:]

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	stdinTTY := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	conf.SetTerminal(stdinTTY && stdoutTTY)
	conf.SetColor(stdoutTTY && !noColor)
	if noColor {
		color.NoColor = true
	}

	context := exec.NewContext(&conf)
	if journalPath != "" {
		j, err := journal.Open(journalPath)
		if err != nil {
			log.Print(err)
			return 1
		}
		defer j.Close()
		if list {
			return listJournal(j)
		}
		context.SetRecorder(j)
	} else if list {
		log.Print("-l requires -j")
		return 2
	}

	if len(args) > 0 {
		if err := run.Once(context, args); err != nil {
			log.Print(err)
			return 1
		}
		return 0
	}

	var lines run.LineReader
	if conf.Terminal() {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          conf.Prompt(1),
			HistoryFile:     historyFile,
			InterruptPrompt: "^C",
		})
		if err != nil {
			log.Print(err)
			return 1
		}
		defer rl.Close()
		lines = rl
	} else {
		lines = run.NewLineScanner(os.Stdin)
	}
	if err := run.Run(context, lines); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}

func listJournal(j *journal.Journal) int {
	entries, err := j.Entries()
	if err != nil {
		log.Print(err)
		return 1
	}
	for _, e := range entries {
		fmt.Println(e)
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mcal [options] [--] [expression...]\n")
	fmt.Fprintf(os.Stderr, "With no expression, mcal reads expressions interactively.\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "\t-d name\tset debug flag (%s)\n", strings.Join(config.DebugFlags, ", "))
	fmt.Fprintf(os.Stderr, "\t-f fmt\tformat for printing results, such as %%.4f\n")
	fmt.Fprintf(os.Stderr, "\t-h\tprint this message\n")
	fmt.Fprintf(os.Stderr, "\t-H file\tsave line-editing history in file\n")
	fmt.Fprintf(os.Stderr, "\t-j file\trecord evaluations in the journal database file\n")
	fmt.Fprintf(os.Stderr, "\t-l\tlist the journal given by -j and exit\n")
	fmt.Fprintf(os.Stderr, "\t-n\tno color\n")
	fmt.Fprintf(os.Stderr, "\t-p fmt\tinteractive prompt; %%d is the result number (default %q)\n", config.DefaultPrompt)
	fmt.Fprintf(os.Stderr, "\t-v\tverbose error messages\n")
	fmt.Fprintf(os.Stderr, "Functions: %s\n", strings.Join(value.Functions(), " "))
	fmt.Fprintf(os.Stderr, "Constants:")
	for _, c := range parse.Constants {
		fmt.Fprintf(os.Stderr, " %s=%s", c.From, c.To)
	}
	fmt.Fprintf(os.Stderr, "\nOperators: + - * / **")
	for _, op := range parse.Operators {
		fmt.Fprintf(os.Stderr, " %s(%s)", op.From, op.To)
	}
	fmt.Fprintf(os.Stderr, "\nResults are numbered; $N is the value of result N.\n")
}
