package kes

// BinaryOp tags a binary operator node with the operation it performs.
type BinaryOp uint

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpAnd
	OpOr
	OpXor
	OpGreater
	OpGreaterOrEqual
	OpLess
	OpLessOrEqual
	OpEqual
	OpNotEqual
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpRem:
		return "%"
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpXor:
		return "^"
	case OpGreater:
		return ">"
	case OpGreaterOrEqual:
		return ">="
	case OpLess:
		return "<"
	case OpLessOrEqual:
		return "<="
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	}
	return ""
}

// UnaryOp tags a unary operator node; the grammar defines a single prefix
// form, logical not.
type UnaryOp uint

const (
	OpNot UnaryOp = iota
)

func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "!"
	}
	return ""
}

// TernaryOp tags a ternary operator node. Its two surface halves are written
// apart from each other, so the name comes in two pieces.
type TernaryOp uint

const (
	OpConditional TernaryOp = iota
)

// First returns the surface text of the opening half.
func (op TernaryOp) First() string {
	switch op {
	case OpConditional:
		return "?"
	}
	return ""
}

// Second returns the surface text of the separating half.
func (op TernaryOp) Second() string {
	switch op {
	case OpConditional:
		return ":"
	}
	return ""
}
