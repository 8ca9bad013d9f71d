package kes

type Expr interface {
	Accept(visitor ExprVisitor) interface{}
}
type ExprVisitor interface {
	VisitNumberExpr(expr *NumberExpr) interface{}
	VisitStringExpr(expr *StringExpr) interface{}
	VisitVariableExpr(expr *VariableExpr) interface{}
	VisitBuiltinExpr(expr *BuiltinExpr) interface{}
	VisitUnaryExpr(expr *UnaryExpr) interface{}
	VisitBinaryExpr(expr *BinaryExpr) interface{}
	VisitTernaryExpr(expr *TernaryExpr) interface{}
	VisitGroupingExpr(expr *GroupingExpr) interface{}
}

// NumberExpr is an unsigned 32-bit integer literal.
type NumberExpr struct {
	Value uint32
}

func NewNumberExpr(Value uint32) *NumberExpr {
	return &NumberExpr{Value}
}
func (expr *NumberExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitNumberExpr(expr)
}

// StringExpr is a string literal; its text lives in the interner.
type StringExpr struct {
	Value Symbol
}

func NewStringExpr(Value Symbol) *StringExpr {
	return &StringExpr{Value}
}
func (expr *StringExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitStringExpr(expr)
}

// VariableExpr is a reference to a variable by name.
type VariableExpr struct {
	Name Symbol
}

func NewVariableExpr(Name Symbol) *VariableExpr {
	return &VariableExpr{Name}
}
func (expr *VariableExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitVariableExpr(expr)
}

// BuiltinExpr is a call to a builtin function; the implementation behind the
// name is resolved by the execution stage.
type BuiltinExpr struct {
	Name Symbol
	Args []Expr
}

func NewBuiltinExpr(Name Symbol, Args []Expr) *BuiltinExpr {
	return &BuiltinExpr{Name, Args}
}
func (expr *BuiltinExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitBuiltinExpr(expr)
}

// UnaryExpr applies a prefix operator to its operand.
type UnaryExpr struct {
	Op         UnaryOp
	Expression Expr
}

func NewUnaryExpr(Op UnaryOp, Expression Expr) *UnaryExpr {
	return &UnaryExpr{Op, Expression}
}
func (expr *UnaryExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitUnaryExpr(expr)
}

// BinaryExpr applies an infix operator to its two operands.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func NewBinaryExpr(Op BinaryOp, Left Expr, Right Expr) *BinaryExpr {
	return &BinaryExpr{Op, Left, Right}
}
func (expr *BinaryExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitBinaryExpr(expr)
}

// TernaryExpr applies a three-way operator; for OpConditional, Cond picks
// between Then and Else.
type TernaryExpr struct {
	Op   TernaryOp
	Cond Expr
	Then Expr
	Else Expr
}

func NewTernaryExpr(Op TernaryOp, Cond Expr, Then Expr, Else Expr) *TernaryExpr {
	return &TernaryExpr{Op, Cond, Then, Else}
}
func (expr *TernaryExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitTernaryExpr(expr)
}

// GroupingExpr wraps a sub-expression that was explicitly parenthesized in
// the source. It changes nothing about evaluation but lets consumers that
// round-trip source keep the parentheses where they were written.
type GroupingExpr struct {
	Expression Expr
}

func NewGroupingExpr(Expression Expr) *GroupingExpr {
	return &GroupingExpr{Expression}
}
func (expr *GroupingExpr) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitGroupingExpr(expr)
}
