package kes

import "strconv"

// Scanner reads the input source and collects all the tokens that can be
// found. Text carried by literal and name tokens is interned, so two tokens
// spelling the same name share a Symbol.
type Scanner struct {
	line     int
	start    int
	current  int
	source   []rune
	tokens   []*Token
	interner *Interner
}

// NewScanner creates a new kes token scanner.
func NewScanner(source []rune, interner *Interner) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	scanner.interner = interner
	return scanner
}

// Scan reads the source and collects all the tokens that were found. The
// first malformed piece of input stops the scan with a LexicalError; no
// partial token stream is returned.
func (scanner *Scanner) Scan() ([]*Token, error) {
	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		case '\n':
			scanner.line++
		// Single character tokens
		case '(':
			scanner.addToken(L_PAREN)
		case ')':
			scanner.addToken(R_PAREN)
		case '{':
			scanner.addToken(L_BRACE)
		case '}':
			scanner.addToken(R_BRACE)
		case ',':
			scanner.addToken(COMMA)
		case ';':
			scanner.addToken(SEMICOLON)
		case '+':
			scanner.addBinOp(OpAdd)
		case '-':
			scanner.addBinOp(OpSub)
		case '*':
			scanner.addBinOp(OpMul)
		case '/':
			scanner.addBinOp(OpDiv)
		case '%':
			scanner.addBinOp(OpRem)
		case '&':
			scanner.addBinOp(OpAnd)
		case '|':
			scanner.addBinOp(OpOr)
		case '^':
			scanner.addBinOp(OpXor)
		case '?':
			scanner.addTernary(OpConditional, true)
		case ':':
			scanner.addTernary(OpConditional, false)
		// Double character tokens
		case '>':
			if scanner.match('=') {
				scanner.addBinOp(OpGreaterOrEqual)
			} else {
				scanner.addBinOp(OpGreater)
			}
		case '<':
			if scanner.match('=') {
				scanner.addBinOp(OpLessOrEqual)
			} else {
				scanner.addBinOp(OpLess)
			}
		case '=':
			if scanner.match('=') {
				scanner.addBinOp(OpEqual)
			} else {
				scanner.addToken(ASSIGN)
			}
		case '!':
			if scanner.match('=') {
				scanner.addBinOp(OpNotEqual)
			} else {
				scanner.addToken(UNARY_OP)
			}
		// Print statements
		case '@':
			if scanner.match('@') {
				scanner.addToken(PRINT)
			} else if scanner.match('!') {
				scanner.addToken(PRINT_WAIT)
			} else {
				scanner.addToken(PRINT_LINE)
			}
		// Literals
		case '\'':
			if err := scanner.scanString(); err != nil {
				return nil, err
			}
		case '$':
			if err := scanner.scanVariable(); err != nil {
				return nil, err
			}
		default:
			if isIdentRune(r) {
				if err := scanner.scanIdentifier(); err != nil {
					return nil, err
				}
			} else {
				return nil, NewLexicalError(
					scanner.line, "Unexpected character.",
				)
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", scanner.line),
	)
	return scanner.tokens, nil
}

func (scanner *Scanner) scanString() error {
	// read until EOF or found a matching '\'' --> our string includes \n
	for scanner.peek() != '\'' && scanner.hasNext() {
		if scanner.peek() == '\n' {
			scanner.line++
		}
		scanner.advance()
	}

	if !scanner.hasNext() {
		return NewLexicalError(scanner.line, "Unterminated string.")
	}
	// consume '\''
	scanner.advance()
	// content between the '\'' pair
	literal := string(scanner.source[scanner.start+1 : scanner.current-1])
	scanner.addSymToken(STR_LIT, scanner.interner.Intern(literal))
	return nil
}

func (scanner *Scanner) scanVariable() error {
	for isIdentRune(scanner.peek()) {
		scanner.advance()
	}
	// name without the leading '$'
	name := string(scanner.source[scanner.start+1 : scanner.current])
	if name == "" {
		return NewLexicalError(
			scanner.line, "Expect variable name after '$'.",
		)
	}
	scanner.addSymToken(VARIABLE, scanner.interner.Intern(name))
	return nil
}

func (scanner *Scanner) scanIdentifier() error {
	for isIdentRune(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if tokenType, isKeyword := KeywordTokens[lexeme]; isKeyword {
		scanner.addToken(tokenType)
		return nil
	}
	if r := scanner.source[scanner.start]; r >= '0' && r <= '9' {
		// an identifier starting with a digit must be an integer literal
		num, err := strconv.ParseUint(lexeme, 10, 32)
		if err != nil {
			return NewLexicalError(scanner.line, "Invalid integer literal.")
		}
		scanner.addIntToken(uint32(num))
		return nil
	}
	scanner.addSymToken(BUILTIN, scanner.interner.Intern(lexeme))
	return nil
}

// addToken appends the lexeme from `start` to `current` as a token of the
// given type
func (scanner *Scanner) addToken(typ TokenType) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	scanner.tokens = append(
		scanner.tokens,
		NewToken(typ, lexeme, scanner.line),
	)
}

func (scanner *Scanner) addSymToken(typ TokenType, sym Symbol) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	scanner.tokens = append(
		scanner.tokens,
		NewSymbolToken(typ, lexeme, sym, scanner.line),
	)
}

func (scanner *Scanner) addIntToken(num uint32) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	scanner.tokens = append(
		scanner.tokens,
		NewIntToken(lexeme, num, scanner.line),
	)
}

func (scanner *Scanner) addBinOp(op BinaryOp) {
	scanner.tokens = append(
		scanner.tokens,
		NewBinOpToken(op, scanner.line),
	)
}

func (scanner *Scanner) addTernary(op TernaryOp, start bool) {
	scanner.tokens = append(
		scanner.tokens,
		NewTernaryToken(op, start, scanner.line),
	)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current position is equal to the given
// rune, if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// isIdentRune reports whether r may appear in an identifier. Identifiers mix
// ASCII alphanumerics with Hangul jamo and syllables.
func isIdentRune(r rune) bool {
	switch {
	case r == '_',
		r >= '0' && r <= '9',
		r >= 'a' && r <= 'z',
		r >= 'A' && r <= 'Z',
		r >= 'ㄱ' && r <= 'ㅎ',
		r >= 'ㅏ' && r <= 'ㅣ',
		r >= '가' && r <= '힣':
		return true
	}
	return false
}
