package kes

// Parse scans and parses a complete kes script, producing its statements in
// source order. A malformed input fails with a *LexicalError when the text
// cannot be tokenized and with a *SyntaxError when the tokens do not match
// the grammar; either way no partial program is returned.
func Parse(source string, interner *Interner) ([]Stmt, error) {
	tokens, err := NewScanner([]rune(source), interner).Scan()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// Parser composes the syntax tree for the kes language from the sequence of
// valid tokens that follow the following grammar rule.
//
// Grammar
//
//	expression --> ternary ;
//	ternary    --> or ( "?" or ":" or )? ;
//	or         --> xor ( "|" xor )* ;
//	xor        --> and ( "^" and )* ;
//	and        --> comparison ( "&" comparison )* ;
//	comparison --> term ( ( ">" | ">=" | "<" | "<=" | "==" | "!=" ) term )* ;
//	term       --> factor ( ( "-" | "+" ) factor )* ;
//	factor     --> unary ( ( "*" | "/" | "%" ) unary )* ;
//	unary      --> "!" unary
//	             | call ;
//	call       --> BUILTIN "(" args ")"
//	             | primary ;
//	args       --> ( expression "," )* expression? ;
//	primary    --> INT_LIT | STR_LIT | VARIABLE
//	             | "(" expression ")" ;
//
// Every binary level is left-associative; the ternary branches are parsed one
// level down, so a ternary cannot nest on its own branches without being
// parenthesized. The argument rule accepts a trailing comma, so f(a, b,) and
// f(a, b) produce the same node.
type Parser struct {
	current int
	tokens  []*Token
}

// NewParser creates a new parser for the kes language.
func NewParser(tokens []*Token) *Parser {
	return &Parser{0, tokens}
}

// Parse consumes the token stream to its end and returns the statements that
// were found. The first token that does not fit the grammar stops the parse
// with a *SyntaxError.
func (parser *Parser) Parse() ([]Stmt, error) {
	program := make([]Stmt, 0)
	for !parser.isEOF() {
		stmt, err := parser.statement()
		if err != nil {
			return nil, err
		}
		program = append(program, stmt)
		parser.skipRedundantSemicolons()
	}
	return program, nil
}

// statement --> exitStmt | printStmt | ifStmt | whileStmt | assignStmt
//             | exprStmt ;
func (parser *Parser) statement() (Stmt, error) {
	switch {
	case parser.match(EXIT):
		line := parser.prev().Line
		if err := parser.consume(SEMICOLON, "Expect ';' after '종료'."); err != nil {
			return nil, err
		}
		return NewExitStmt(line), nil
	case parser.match(PRINT):
		return parser.printStatement(false, false)
	case parser.match(PRINT_LINE):
		return parser.printStatement(true, false)
	case parser.match(PRINT_WAIT):
		return parser.printStatement(true, true)
	case parser.match(IF):
		return parser.ifStatement()
	case parser.match(WHILE):
		return parser.whileStatement()
	case parser.check(VARIABLE) && parser.checkNext(ASSIGN):
		return parser.assignStatement()
	}
	return parser.expressionStatement()
}

// printStmt --> ( "@@" | "@" | "@!" ) expression* ";" ;
//
// The values are juxtaposed with no separator; which keyword matched fixes
// the newline/wait flags.
func (parser *Parser) printStatement(newline, wait bool) (Stmt, error) {
	line := parser.prev().Line
	values := make([]Expr, 0)
	for !parser.check(SEMICOLON) && !parser.isEOF() {
		value, err := parser.expression()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	if err := parser.consume(SEMICOLON, "Expect ';' after print statement."); err != nil {
		return nil, err
	}
	return NewPrintStmt(values, newline, wait, line), nil
}

// ifStmt --> "만약" expression block
//            ( "혹은" expression block )*
//            ( "그외" block )? ;
//
// The primary condition sits at index 0 of the arm list, ahead of the elseif
// arms in source order.
func (parser *Parser) ifStatement() (Stmt, error) {
	arm, err := parser.ifArm()
	if err != nil {
		return nil, err
	}
	arms := []IfArm{arm}
	for parser.match(ELSE_IF) {
		arm, err := parser.ifArm()
		if err != nil {
			return nil, err
		}
		arms = append(arms, arm)
	}
	other := make([]Stmt, 0)
	otherLine := 0
	if parser.match(ELSE) {
		otherLine = parser.prev().Line
		other, err = parser.block()
		if err != nil {
			return nil, err
		}
	}
	return NewIfStmt(arms, other, otherLine), nil
}

func (parser *Parser) ifArm() (IfArm, error) {
	line := parser.prev().Line
	cond, err := parser.expression()
	if err != nil {
		return IfArm{}, err
	}
	body, err := parser.block()
	if err != nil {
		return IfArm{}, err
	}
	return IfArm{cond, body, line}, nil
}

// whileStmt --> "반복" expression block ;
func (parser *Parser) whileStatement() (Stmt, error) {
	line := parser.prev().Line
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	body, err := parser.block()
	if err != nil {
		return nil, err
	}
	return NewWhileStmt(cond, body, line), nil
}

// assignStmt --> VARIABLE "=" expression ";" ;
func (parser *Parser) assignStatement() (Stmt, error) {
	name := parser.advance()
	// the '=' was checked along with the variable
	parser.advance()
	value, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(SEMICOLON, "Expect ';' after assignment."); err != nil {
		return nil, err
	}
	return NewAssignStmt(name.Sym, value, name.Line), nil
}

// exprStmt --> expression ";" ;
func (parser *Parser) expressionStatement() (Stmt, error) {
	line := parser.peek().Line
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return NewExpressionStmt(expr, line), nil
}

// block --> "{" statement* "}" ;
//
// Blocks are mandatory for if/elseif/else/while bodies; there is no
// single-statement-without-braces form.
func (parser *Parser) block() ([]Stmt, error) {
	if err := parser.consume(L_BRACE, "Expect '{' before block."); err != nil {
		return nil, err
	}
	body := make([]Stmt, 0)
	for !parser.check(R_BRACE) && !parser.isEOF() {
		stmt, err := parser.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		parser.skipRedundantSemicolons()
	}
	if err := parser.consume(R_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return body, nil
}

// A statement may be followed by extra ';' which are absorbed without
// producing additional nodes.
func (parser *Parser) skipRedundantSemicolons() {
	for parser.match(SEMICOLON) {
	}
}

// expression --> ternary ;
func (parser *Parser) expression() (Expr, error) {
	return parser.ternary()
}

// ternary --> or ( "?" or ":" or )? ;
func (parser *Parser) ternary() (Expr, error) {
	expr, err := parser.or()
	if err != nil {
		return nil, err
	}
	if parser.matchTernary(true) {
		op := parser.prev().TernOp
		then, err := parser.or()
		if err != nil {
			return nil, err
		}
		if !parser.matchTernary(false) {
			return nil, NewSyntaxError(parser.peek(), "Expect ':' after expression.")
		}
		other, err := parser.or()
		if err != nil {
			return nil, err
		}
		return NewTernaryExpr(op, expr, then, other), nil
	}
	return expr, nil
}

// Creates a left-associative nested tree of binary operator nodes. Matches
// the next tighter rule `xor` if it does not hit "|".
//
// or --> xor ( "|" xor )* ;
func (parser *Parser) or() (Expr, error) {
	expr, err := parser.xor()
	if err != nil {
		return nil, err
	}
	for parser.matchBinOp(OpOr) {
		op := parser.prev().BinOp
		right, err := parser.xor()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// xor --> and ( "^" and )* ;
func (parser *Parser) xor() (Expr, error) {
	expr, err := parser.and()
	if err != nil {
		return nil, err
	}
	for parser.matchBinOp(OpXor) {
		op := parser.prev().BinOp
		right, err := parser.and()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// and --> comparison ( "&" comparison )* ;
func (parser *Parser) and() (Expr, error) {
	expr, err := parser.comparison()
	if err != nil {
		return nil, err
	}
	for parser.matchBinOp(OpAnd) {
		op := parser.prev().BinOp
		right, err := parser.comparison()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// comparison --> term ( ( ">" | ">=" | "<" | "<=" | "==" | "!=" ) term )* ;
//
// Comparisons fold from the left like every other binary level, so a<b<c is
// (a<b)<c rather than a mathematical chain.
func (parser *Parser) comparison() (Expr, error) {
	expr, err := parser.term()
	if err != nil {
		return nil, err
	}
	for parser.matchBinOp(
		OpGreater, OpGreaterOrEqual, OpLess, OpLessOrEqual, OpEqual, OpNotEqual,
	) {
		op := parser.prev().BinOp
		right, err := parser.term()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	expr, err := parser.factor()
	if err != nil {
		return nil, err
	}
	for parser.matchBinOp(OpSub, OpAdd) {
		op := parser.prev().BinOp
		right, err := parser.factor()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// factor --> unary ( ( "*" | "/" | "%" ) unary )* ;
func (parser *Parser) factor() (Expr, error) {
	expr, err := parser.unary()
	if err != nil {
		return nil, err
	}
	for parser.matchBinOp(OpMul, OpDiv, OpRem) {
		op := parser.prev().BinOp
		right, err := parser.unary()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// unary --> "!" unary
//         | call ;
func (parser *Parser) unary() (Expr, error) {
	if parser.match(UNARY_OP) {
		expr, err := parser.unary()
		if err != nil {
			return nil, err
		}
		return NewUnaryExpr(OpNot, expr), nil
	}
	return parser.call()
}

// call --> BUILTIN "(" args ")"
//        | primary ;
// args --> ( expression "," )* expression? ;
func (parser *Parser) call() (Expr, error) {
	if !parser.match(BUILTIN) {
		return parser.primary()
	}
	name := parser.prev()
	if err := parser.consume(L_PAREN, "Expect '(' after builtin name."); err != nil {
		return nil, err
	}
	args := make([]Expr, 0)
	for !parser.check(R_PAREN) {
		arg, err := parser.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !parser.match(COMMA) {
			break
		}
	}
	if err := parser.consume(R_PAREN, "Expect ')' after arguments."); err != nil {
		return nil, err
	}
	return NewBuiltinExpr(name.Sym, args), nil
}

// primary --> INT_LIT | STR_LIT | VARIABLE | "(" expression ")" ;
func (parser *Parser) primary() (Expr, error) {
	if parser.match(INT_LIT) {
		return NewNumberExpr(parser.prev().Num), nil
	}
	if parser.match(STR_LIT) {
		return NewStringExpr(parser.prev().Sym), nil
	}
	if parser.match(VARIABLE) {
		return NewVariableExpr(parser.prev().Sym), nil
	}
	if parser.match(L_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(
			R_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return NewGroupingExpr(expr), nil
	}
	return nil, NewSyntaxError(parser.peek(), "Expect expression.")
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

// matchBinOp consumes the next token if it is a binary operator whose tag is
// one of the given operators.
func (parser *Parser) matchBinOp(ops ...BinaryOp) bool {
	if !parser.check(BINARY_OP) {
		return false
	}
	for _, op := range ops {
		if parser.peek().BinOp == op {
			parser.advance()
			return true
		}
	}
	return false
}

// matchTernary consumes the next token if it is the wanted half of a ternary
// operator.
func (parser *Parser) matchTernary(start bool) bool {
	if parser.check(TERNARY_OP) && parser.peek().TernStart == start {
		parser.advance()
		return true
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return NewSyntaxError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

// checkNext peeks one token past the current one; the assignment rule needs
// it to tell `$v = ...` apart from an expression statement starting with a
// variable.
func (parser *Parser) checkNext(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.tokens[parser.current+1].Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}
