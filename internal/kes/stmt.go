package kes

type Stmt interface {
	Accept(visitor StmtVisitor) (interface{}, error)
}
type StmtVisitor interface {
	VisitExitStmt(stmt *ExitStmt) (interface{}, error)
	VisitAssignStmt(stmt *AssignStmt) (interface{}, error)
	VisitPrintStmt(stmt *PrintStmt) (interface{}, error)
	VisitIfStmt(stmt *IfStmt) (interface{}, error)
	VisitWhileStmt(stmt *WhileStmt) (interface{}, error)
	VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error)
}

// ExitStmt stops the script.
type ExitStmt struct {
	Line int
}

func NewExitStmt(Line int) *ExitStmt {
	return &ExitStmt{Line}
}
func (stmt *ExitStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitExitStmt(stmt)
}

// AssignStmt stores the value of an expression into a variable.
type AssignStmt struct {
	Var   Symbol
	Value Expr
	Line  int
}

func NewAssignStmt(Var Symbol, Value Expr, Line int) *AssignStmt {
	return &AssignStmt{Var, Value, Line}
}
func (stmt *AssignStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitAssignStmt(stmt)
}

// PrintStmt outputs zero or more values. Newline and Wait are fixed by which
// of the print keywords introduced the statement.
type PrintStmt struct {
	Values  []Expr
	Newline bool
	Wait    bool
	Line    int
}

func NewPrintStmt(Values []Expr, Newline bool, Wait bool, Line int) *PrintStmt {
	return &PrintStmt{Values, Newline, Wait, Line}
}
func (stmt *PrintStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitPrintStmt(stmt)
}

// IfArm is one (condition, body) pair in an if/elseif chain.
type IfArm struct {
	Cond Expr
	Body []Stmt
	Line int
}

// IfStmt runs the body of the first arm whose condition holds, in source
// order; Arms is never empty and index 0 is the primary arm. Other is the
// else body, empty when no else clause was written; OtherLine is meaningful
// only when Other is non-empty.
type IfStmt struct {
	Arms      []IfArm
	Other     []Stmt
	OtherLine int
}

func NewIfStmt(Arms []IfArm, Other []Stmt, OtherLine int) *IfStmt {
	return &IfStmt{Arms, Other, OtherLine}
}
func (stmt *IfStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitIfStmt(stmt)
}

// WhileStmt runs its body for as long as the condition holds.
type WhileStmt struct {
	Cond Expr
	Body []Stmt
	Line int
}

func NewWhileStmt(Cond Expr, Body []Stmt, Line int) *WhileStmt {
	return &WhileStmt{Cond, Body, Line}
}
func (stmt *WhileStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitWhileStmt(stmt)
}

// ExpressionStmt evaluates an expression for its side effects.
type ExpressionStmt struct {
	Expression Expr
	Line       int
}

func NewExpressionStmt(Expression Expr, Line int) *ExpressionStmt {
	return &ExpressionStmt{Expression, Line}
}
func (stmt *ExpressionStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitExpressionStmt(stmt)
}
