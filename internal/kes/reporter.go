package kes

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter defines the interface for structures that can display errors to
// the user. A reporter is defined to separate error reporting code from error
// displaying code; the parse functions themselves only ever return errors.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes errors as-is to the inner writer.
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}

// ColorReporter highlights errors when the writer is a terminal; color is
// stripped automatically on plain writers and pipes.
type ColorReporter struct {
	writer io.Writer
	errTag *color.Color
	hadErr bool
}

func NewColorReporter(writer io.Writer) Reporter {
	return &ColorReporter{
		writer: writer,
		errTag: color.New(color.FgRed, color.Bold),
	}
}

func (reporter *ColorReporter) Report(err error) {
	reporter.hadErr = true
	reporter.errTag.Fprint(reporter.writer, "error: ")
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *ColorReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *ColorReporter) Reset() {
	reporter.hadErr = false
}
