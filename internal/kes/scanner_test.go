package kes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokEOF(line int) *Token {
	return NewToken(EOF, "", line)
}

func TestScanSingleToken(t *testing.T) {
	testCases := []struct {
		src  string
		toks func(in *Interner) []*Token
	}{
		// punctuation
		{"(", fixedToks(NewToken(L_PAREN, "(", 1), tokEOF(1))},
		{")", fixedToks(NewToken(R_PAREN, ")", 1), tokEOF(1))},
		{"{", fixedToks(NewToken(L_BRACE, "{", 1), tokEOF(1))},
		{"}", fixedToks(NewToken(R_BRACE, "}", 1), tokEOF(1))},
		{",", fixedToks(NewToken(COMMA, ",", 1), tokEOF(1))},
		{";", fixedToks(NewToken(SEMICOLON, ";", 1), tokEOF(1))},
		// binary operators
		{"+", fixedToks(NewBinOpToken(OpAdd, 1), tokEOF(1))},
		{"-", fixedToks(NewBinOpToken(OpSub, 1), tokEOF(1))},
		{"*", fixedToks(NewBinOpToken(OpMul, 1), tokEOF(1))},
		{"/", fixedToks(NewBinOpToken(OpDiv, 1), tokEOF(1))},
		{"%", fixedToks(NewBinOpToken(OpRem, 1), tokEOF(1))},
		{"&", fixedToks(NewBinOpToken(OpAnd, 1), tokEOF(1))},
		{"|", fixedToks(NewBinOpToken(OpOr, 1), tokEOF(1))},
		{"^", fixedToks(NewBinOpToken(OpXor, 1), tokEOF(1))},
		{">", fixedToks(NewBinOpToken(OpGreater, 1), tokEOF(1))},
		{">=", fixedToks(NewBinOpToken(OpGreaterOrEqual, 1), tokEOF(1))},
		{"<", fixedToks(NewBinOpToken(OpLess, 1), tokEOF(1))},
		{"<=", fixedToks(NewBinOpToken(OpLessOrEqual, 1), tokEOF(1))},
		{"==", fixedToks(NewBinOpToken(OpEqual, 1), tokEOF(1))},
		{"!=", fixedToks(NewBinOpToken(OpNotEqual, 1), tokEOF(1))},
		// unary, assignment, ternary halves
		{"!", fixedToks(NewToken(UNARY_OP, "!", 1), tokEOF(1))},
		{"=", fixedToks(NewToken(ASSIGN, "=", 1), tokEOF(1))},
		{"?", fixedToks(NewTernaryToken(OpConditional, true, 1), tokEOF(1))},
		{":", fixedToks(NewTernaryToken(OpConditional, false, 1), tokEOF(1))},
		// print forms
		{"@@", fixedToks(NewToken(PRINT, "@@", 1), tokEOF(1))},
		{"@", fixedToks(NewToken(PRINT_LINE, "@", 1), tokEOF(1))},
		{"@!", fixedToks(NewToken(PRINT_WAIT, "@!", 1), tokEOF(1))},
		// keywords
		{"만약", fixedToks(NewToken(IF, "만약", 1), tokEOF(1))},
		{"혹은", fixedToks(NewToken(ELSE_IF, "혹은", 1), tokEOF(1))},
		{"그외", fixedToks(NewToken(ELSE, "그외", 1), tokEOF(1))},
		{"반복", fixedToks(NewToken(WHILE, "반복", 1), tokEOF(1))},
		{"종료", fixedToks(NewToken(EXIT, "종료", 1), tokEOF(1))},
		// integer literals
		{"0", fixedToks(NewIntToken("0", 0, 1), tokEOF(1))},
		{"10", fixedToks(NewIntToken("10", 10, 1), tokEOF(1))},
		{"007", fixedToks(NewIntToken("007", 7, 1), tokEOF(1))},
		{"4294967295", fixedToks(NewIntToken("4294967295", 4294967295, 1), tokEOF(1))},
		// literals and names carrying interned symbols
		{"''", func(in *Interner) []*Token {
			return []*Token{NewSymbolToken(STR_LIT, "''", in.Intern(""), 1), tokEOF(1)}
		}},
		{"'abc'", func(in *Interner) []*Token {
			return []*Token{NewSymbolToken(STR_LIT, "'abc'", in.Intern("abc"), 1), tokEOF(1)}
		}},
		{"'ab\nc'", func(in *Interner) []*Token {
			return []*Token{NewSymbolToken(STR_LIT, "'ab\nc'", in.Intern("ab\nc"), 2), tokEOF(2)}
		}},
		{"$x", func(in *Interner) []*Token {
			return []*Token{NewSymbolToken(VARIABLE, "$x", in.Intern("x"), 1), tokEOF(1)}
		}},
		{"$변수1", func(in *Interner) []*Token {
			return []*Token{NewSymbolToken(VARIABLE, "$변수1", in.Intern("변수1"), 1), tokEOF(1)}
		}},
		{"출력", func(in *Interner) []*Token {
			return []*Token{NewSymbolToken(BUILTIN, "출력", in.Intern("출력"), 1), tokEOF(1)}
		}},
		{"f_1", func(in *Interner) []*Token {
			return []*Token{NewSymbolToken(BUILTIN, "f_1", in.Intern("f_1"), 1), tokEOF(1)}
		}},
		{"", fixedToks(tokEOF(1))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		interner := NewInterner()
		toks, err := NewScanner([]rune(tc.src), interner).Scan()

		assert.NoError(err, "src=%q", tc.src)
		assert.Equal(tc.toks(interner), toks, "src=%q", tc.src)
	}
}

// fixedToks builds the expected-token closure for cases that carry no symbol.
func fixedToks(toks ...*Token) func(*Interner) []*Token {
	return func(*Interner) []*Token { return toks }
}

func TestScanStatement(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	interner := NewInterner()
	toks, err := NewScanner([]rune("$x = 1 + 2;"), interner).Scan()
	require.NoError(err)

	x := interner.Intern("x")
	assert.Equal([]*Token{
		NewSymbolToken(VARIABLE, "$x", x, 1),
		NewToken(ASSIGN, "=", 1),
		NewIntToken("1", 1, 1),
		NewBinOpToken(OpAdd, 1),
		NewIntToken("2", 2, 1),
		NewToken(SEMICOLON, ";", 1),
		tokEOF(1),
	}, toks)
}

func TestScanLineCounting(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	interner := NewInterner()
	toks, err := NewScanner([]rune("만약\n$a\n{\n}\n"), interner).Scan()
	require.NoError(err)

	a := interner.Intern("a")
	assert.Equal([]*Token{
		NewToken(IF, "만약", 1),
		NewSymbolToken(VARIABLE, "$a", a, 2),
		NewToken(L_BRACE, "{", 3),
		NewToken(R_BRACE, "}", 4),
		tokEOF(5),
	}, toks)
}

func TestScanInternsDuplicateNames(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	interner := NewInterner()
	toks, err := NewScanner([]rune("$a $a 'a'"), interner).Scan()
	require.NoError(err)

	require.Len(toks, 4)
	assert.Equal(toks[0].Sym, toks[1].Sym)
	// the string 'a' spells the same text as the variable name
	assert.Equal(toks[0].Sym, toks[2].Sym)
	assert.Equal(1, interner.Len())
}

func TestScanError(t *testing.T) {
	testCases := []struct {
		src     string
		message string
		line    int
	}{
		{".", "[line 1] LexicalError: Unexpected character.", 1},
		{"\n\n#", "[line 3] LexicalError: Unexpected character.", 3},
		{"'abc", "[line 1] LexicalError: Unterminated string.", 1},
		{"12ab", "[line 1] LexicalError: Invalid integer literal.", 1},
		{"4294967296", "[line 1] LexicalError: Invalid integer literal.", 1},
		{"$ ", "[line 1] LexicalError: Expect variable name after '$'.", 1},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := NewScanner([]rune(tc.src), NewInterner()).Scan()

		assert.Nil(toks, "src=%q", tc.src)
		var lexErr *LexicalError
		if assert.ErrorAs(err, &lexErr, "src=%q", tc.src) {
			assert.Equal(tc.line, lexErr.Line(), "src=%q", tc.src)
			assert.Equal(tc.message, err.Error(), "src=%q", tc.src)
		}
	}
}
