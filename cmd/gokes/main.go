package main

// This is the front-end driver for the kes scripting language. It parses a
// script, reports any lexical or syntax error, and echoes the accepted
// program in its canonical form. The evaluation stage consumes the same
// syntax tree but lives outside this repository.

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/haneul/kes/gokes/internal/kes"
)

func main() {
	dump := flag.Bool("dump", false, "print the raw syntax tree instead of formatted source")
	flag.Parse()

	args := flag.Args()
	if len(args) > 1 {
		fmt.Println("Usage: gokes [-dump] [script]")
		os.Exit(64)
	}

	reporter := kes.NewColorReporter(os.Stderr)
	if len(args) != 1 {
		runPrompt(reporter, *dump)
	} else {
		runFile(args[0], reporter, *dump)
	}
}

func run(script string, reporter kes.Reporter, dump bool) {
	interner := kes.NewInterner()
	program, err := kes.Parse(script, interner)
	if err != nil {
		reporter.Report(err)
		return
	}
	if dump {
		spew.Dump(program)
		return
	}
	if err := kes.Format(os.Stdout, program, interner); err != nil {
		reporter.Report(err)
	}
}

// Run the front end in REPL mode, one line at a time
func runPrompt(reporter kes.Reporter, dump bool) {
	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Print("> ")
		if !s.Scan() {
			break
		}
		run(s.Text(), reporter, dump)
		reporter.Reset()
	}
	exitOnError(s.Err(), 1)
}

// Run the front end over the given script file
func runFile(fpath string, reporter kes.Reporter, dump bool) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 1)

	run(string(bytes), reporter, dump)
	exitIf(reporter.HadError(), 65)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
