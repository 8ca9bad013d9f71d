package kes

import "fmt"

// LexicalError is reported when the raw source cannot be turned into tokens,
// e.g. an unexpected character or an unterminated string. It retains the line
// the scanner was on when it failed.
type LexicalError struct {
	line    int
	message string
}

// NewLexicalError creates a new scanning error.
func NewLexicalError(line int, message string) error {
	return &LexicalError{line, message}
}

// Line returns the line the error was found on.
func (err *LexicalError) Line() int {
	return err.line
}

func (err *LexicalError) Error() string {
	return fmt.Sprintf(
		"[line %d] LexicalError: %s",
		err.line,
		err.message,
	)
}

// SyntaxError is reported when the tokens are well-formed but do not match
// the grammar at some position. It retains the offending token so diagnostics
// can point at it.
type SyntaxError struct {
	token   *Token
	message string
}

// NewSyntaxError creates a new parsing error.
func NewSyntaxError(token *Token, message string) error {
	return &SyntaxError{token, message}
}

// Line returns the line of the offending token.
func (err *SyntaxError) Line() int {
	return err.token.Line
}

func (err *SyntaxError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf(
			"[line %d] SyntaxError at end: %s",
			err.token.Line,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[line %d] SyntaxError at '%s': %s",
		err.token.Line,
		err.token.Lexeme,
		err.message,
	)
}
