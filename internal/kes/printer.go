package kes

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	gfn "github.com/panyam/goutils/fn"
)

// Format writes the canonical source form of a program. Formatting a script
// and parsing it again yields a structurally identical syntax tree, so the
// printer doubles as the formatter behind kesfmt.
func Format(out io.Writer, program []Stmt, interner *Interner) error {
	printer := &Printer{out: out, interner: interner}
	for _, stmt := range program {
		if _, err := stmt.Accept(printer); err != nil {
			return err
		}
	}
	return nil
}

// Printer renders AST nodes back into kes source. Parenthesization is taken
// from the grouping nodes the parser recorded, never re-derived, so the
// output parenthesizes exactly where the input did.
type Printer struct {
	out      io.Writer
	interner *Interner
	depth    int
}

const printerIndent = "    "

// ExprString returns the source form of a single expression.
func (printer *Printer) ExprString(expr Expr) string {
	return expr.Accept(printer).(string)
}

func (printer *Printer) VisitNumberExpr(expr *NumberExpr) interface{} {
	return strconv.FormatUint(uint64(expr.Value), 10)
}

func (printer *Printer) VisitStringExpr(expr *StringExpr) interface{} {
	return "'" + printer.resolve(expr.Value) + "'"
}

func (printer *Printer) VisitVariableExpr(expr *VariableExpr) interface{} {
	return "$" + printer.resolve(expr.Name)
}

func (printer *Printer) VisitBuiltinExpr(expr *BuiltinExpr) interface{} {
	args := gfn.Map(expr.Args, func(arg Expr) string {
		return printer.ExprString(arg)
	})
	return fmt.Sprintf(
		"%s(%s)",
		printer.resolve(expr.Name),
		strings.Join(args, ", "),
	)
}

func (printer *Printer) VisitUnaryExpr(expr *UnaryExpr) interface{} {
	return expr.Op.String() + printer.ExprString(expr.Expression)
}

func (printer *Printer) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	return fmt.Sprintf(
		"%s %s %s",
		printer.ExprString(expr.Left),
		expr.Op.String(),
		printer.ExprString(expr.Right),
	)
}

func (printer *Printer) VisitTernaryExpr(expr *TernaryExpr) interface{} {
	return fmt.Sprintf(
		"%s %s %s %s %s",
		printer.ExprString(expr.Cond),
		expr.Op.First(),
		printer.ExprString(expr.Then),
		expr.Op.Second(),
		printer.ExprString(expr.Else),
	)
}

func (printer *Printer) VisitGroupingExpr(expr *GroupingExpr) interface{} {
	return "(" + printer.ExprString(expr.Expression) + ")"
}

func (printer *Printer) VisitExitStmt(stmt *ExitStmt) (interface{}, error) {
	return nil, printer.line("종료;")
}

func (printer *Printer) VisitAssignStmt(stmt *AssignStmt) (interface{}, error) {
	return nil, printer.line(
		"$%s = %s;",
		printer.resolve(stmt.Var),
		printer.ExprString(stmt.Value),
	)
}

func (printer *Printer) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	keyword := "@@"
	switch {
	case stmt.Wait:
		keyword = "@!"
	case stmt.Newline:
		keyword = "@"
	}
	values := strings.Join(gfn.Map(stmt.Values, func(value Expr) string {
		return printer.ExprString(value)
	}), " ")
	if values == "" {
		return nil, printer.line("%s;", keyword)
	}
	return nil, printer.line("%s %s;", keyword, values)
}

func (printer *Printer) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	for i, arm := range stmt.Arms {
		keyword := "만약"
		if i > 0 {
			keyword = "} 혹은"
		}
		if err := printer.line(
			"%s %s {", keyword, printer.ExprString(arm.Cond),
		); err != nil {
			return nil, err
		}
		if err := printer.block(arm.Body); err != nil {
			return nil, err
		}
	}
	if len(stmt.Other) != 0 {
		if err := printer.line("} 그외 {"); err != nil {
			return nil, err
		}
		if err := printer.block(stmt.Other); err != nil {
			return nil, err
		}
	}
	return nil, printer.line("}")
}

func (printer *Printer) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	if err := printer.line(
		"반복 %s {", printer.ExprString(stmt.Cond),
	); err != nil {
		return nil, err
	}
	if err := printer.block(stmt.Body); err != nil {
		return nil, err
	}
	return nil, printer.line("}")
}

func (printer *Printer) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	return nil, printer.line("%s;", printer.ExprString(stmt.Expression))
}

// block writes a statement body one indent level deeper.
func (printer *Printer) block(body []Stmt) error {
	printer.depth++
	defer func() { printer.depth-- }()
	for _, stmt := range body {
		if _, err := stmt.Accept(printer); err != nil {
			return err
		}
	}
	return nil
}

// line writes one indented line of output.
func (printer *Printer) line(format string, args ...interface{}) error {
	pad := strings.Repeat(printerIndent, printer.depth)
	_, err := fmt.Fprintf(printer.out, pad+format+"\n", args...)
	return err
}

func (printer *Printer) resolve(sym Symbol) string {
	text, _ := printer.interner.Resolve(sym)
	return text
}
