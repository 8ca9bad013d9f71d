package kes

import "fmt"

// Token groups a lexeme with the information that was obtained while scanning
// it. Only some kinds carry a payload: literal and name kinds hold an interned
// Symbol or a number, operator kinds hold their operator tag.
type Token struct {
	Typ    TokenType
	Lexeme string
	Line   int

	// Payloads, valid depending on Typ.
	Sym       Symbol    // STR_LIT, VARIABLE, BUILTIN
	Num       uint32    // INT_LIT
	BinOp     BinaryOp  // BINARY_OP
	TernOp    TernaryOp // TERNARY_OP
	TernStart bool      // TERNARY_OP; true for the '?' half, false for ':'
}

// NewToken creates a token without a payload.
func NewToken(typ TokenType, lexeme string, line int) *Token {
	t := new(Token)
	t.Typ = typ
	t.Lexeme = lexeme
	t.Line = line
	return t
}

// NewSymbolToken creates a literal or name token carrying an interned symbol.
func NewSymbolToken(typ TokenType, lexeme string, sym Symbol, line int) *Token {
	t := NewToken(typ, lexeme, line)
	t.Sym = sym
	return t
}

// NewIntToken creates an unsigned integer literal token.
func NewIntToken(lexeme string, num uint32, line int) *Token {
	t := NewToken(INT_LIT, lexeme, line)
	t.Num = num
	return t
}

// NewBinOpToken creates a binary operator token.
func NewBinOpToken(op BinaryOp, line int) *Token {
	t := NewToken(BINARY_OP, op.String(), line)
	t.BinOp = op
	return t
}

// NewTernaryToken creates one half of a ternary operator; start picks between
// the opening '?' and the separating ':'.
func NewTernaryToken(op TernaryOp, start bool, line int) *Token {
	lexeme := op.Second()
	if start {
		lexeme = op.First()
	}
	t := NewToken(TERNARY_OP, lexeme, line)
	t.TernOp = op
	t.TernStart = start
	return t
}

func (t *Token) String() string {
	return fmt.Sprintf("%s '%s'", t.Typ.String(), t.Lexeme)
}

// TokenType tags a token with its syntactic kind.
type TokenType uint

const (
	// Punctuation
	L_PAREN TokenType = iota
	R_PAREN
	L_BRACE
	R_BRACE
	COMMA
	SEMICOLON

	// Operators
	ASSIGN
	BINARY_OP
	UNARY_OP
	TERNARY_OP

	// Literals and names
	BUILTIN
	INT_LIT
	STR_LIT
	VARIABLE

	// Keywords
	IF
	ELSE_IF
	ELSE
	WHILE
	EXIT
	PRINT
	PRINT_LINE
	PRINT_WAIT

	EOF
)

// KeywordTokens maps the kes keywords to their token type.
var KeywordTokens = map[string]TokenType{
	"만약": IF,
	"혹은": ELSE_IF,
	"그외": ELSE,
	"반복": WHILE,
	"종료": EXIT,
}

func (tt TokenType) String() string {
	switch tt {
	case L_PAREN:
		return "("
	case R_PAREN:
		return ")"
	case L_BRACE:
		return "{"
	case R_BRACE:
		return "}"
	case COMMA:
		return ","
	case SEMICOLON:
		return ";"
	case ASSIGN:
		return "="
	case BINARY_OP:
		return "BINARY_OP"
	case UNARY_OP:
		return "!"
	case TERNARY_OP:
		return "TERNARY_OP"
	case BUILTIN:
		return "BUILTIN"
	case INT_LIT:
		return "INT_LIT"
	case STR_LIT:
		return "STR_LIT"
	case VARIABLE:
		return "VARIABLE"
	case IF:
		return "만약"
	case ELSE_IF:
		return "혹은"
	case ELSE:
		return "그외"
	case WHILE:
		return "반복"
	case EXIT:
		return "종료"
	case PRINT:
		return "@@"
	case PRINT_LINE:
		return "@"
	case PRINT_WAIT:
		return "@!"
	case EOF:
		return "EOF"
	}
	return ""
}
