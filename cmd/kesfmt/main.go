package main

// kesfmt rewrites kes scripts into their canonical form. Without arguments it
// walks the working directory for *.kes files; with arguments it formats the
// given files. -l lists the files whose formatting would change instead of
// rewriting them.

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/haneul/kes/gokes/internal/kes"
)

func main() {
	list := flag.Bool("l", false, "list files whose formatting differs, without rewriting")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		var err error
		paths, err = findScripts(".")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	reporter := kes.NewColorReporter(os.Stderr)
	for _, path := range paths {
		formatFile(path, reporter, *list)
	}
	if reporter.HadError() {
		os.Exit(65)
	}
}

// findScripts collects every *.kes file under root.
func findScripts(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".kes" {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func formatFile(path string, reporter kes.Reporter, list bool) {
	source, err := os.ReadFile(path)
	if err != nil {
		reporter.Report(err)
		return
	}

	interner := kes.NewInterner()
	program, err := kes.Parse(string(source), interner)
	if err != nil {
		reporter.Report(fmt.Errorf("%s: %w", path, err))
		return
	}

	var formatted bytes.Buffer
	if err := kes.Format(&formatted, program, interner); err != nil {
		reporter.Report(err)
		return
	}

	if bytes.Equal(source, formatted.Bytes()) {
		return
	}
	if list {
		fmt.Println(path)
		return
	}
	if err := os.WriteFile(path, formatted.Bytes(), 0644); err != nil {
		reporter.Report(err)
	}
}
