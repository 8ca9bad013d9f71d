package kes

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)

	assert.False(r.HadError())
}

func TestSimpleReporterSendAnyError(t *testing.T) {
	assert := assert.New(t)
	err := errors.New("Test error")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.True(r.HadError())
}

func TestSimpleReporterSendErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := NewLexicalError(1, "Unexpected character.")
	err2 := NewSyntaxError(NewToken(SEMICOLON, ";", 2), "Expect expression.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	assert.Equal(fmt.Sprintf("%v\n%v\n", err1, err2), out.String())
	assert.True(r.HadError())
}

func TestSimpleReporterReset(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)
	r.Report(errors.New("Test error"))

	r.Reset()
	assert.False(r.HadError())
}

func TestColorReporterTracksErrors(t *testing.T) {
	assert := assert.New(t)
	err := NewSyntaxError(NewToken(EOF, "", 3), "Expect ';' after expression.")

	var out strings.Builder
	r := NewColorReporter(&out)
	r.Report(err)

	// color codes are stripped on a plain writer, the message is kept
	assert.Contains(out.String(), "error: ")
	assert.Contains(out.String(), err.Error())
	assert.True(r.HadError())

	r.Reset()
	assert.False(r.HadError())
}
