package fir

import "fmt"

type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
	Rem
	Shl
	Shr
	And
	Or
	Xor
	GT
	LT
	GE
	LE
	EQ
	NE

	numOperators
)

var operatorNames = [numOperators]string{
	Add: "add",
	Sub: "sub",
	Mul: "mul",
	Div: "div",
	Rem: "rem",
	Shl: "shl",
	Shr: "shr",
	And: "and",
	Or:  "or",
	Xor: "xor",
	GT:  "gt",
	LT:  "lt",
	GE:  "ge",
	LE:  "le",
	EQ:  "eq",
	NE:  "ne",
}

func (o Operator) String() string {
	if o < 0 || o >= numOperators {
		return fmt.Sprintf("op(%d)", int(o))
	}

	return operatorNames[o]
}

func (o Operator) IsComparison() bool {
	switch o {
	case GT, LT, GE, LE, EQ, NE:
		return true
	default:
		return false
	}
}

func (o Operator) IsBitwise() bool {
	switch o {
	case Shl, Shr, And, Or, Xor:
		return true
	default:
		return false
	}
}

// SupportsKind reports whether the operator is defined on the given kind.
// Shifts and bitwise logic exist only on the integer stack.
func (o Operator) SupportsKind(k Kind) bool {
	if o < 0 || o >= numOperators || !k.Valid() {
		return false
	}

	if k == Real && o.IsBitwise() {
		return false
	}

	return true
}

// MathFunc is a single-operand real function.
type MathFunc int

const (
	Sin MathFunc = iota
	Cos
	Tan
	Asin
	Acos
	Atan
	Exp
	Log
	Log10
	Sqrt
	Abs
	Floor
	Ceil
	Round

	numMathFuncs
)

var mathFuncNames = [numMathFuncs]string{
	Sin:   "sin",
	Cos:   "cos",
	Tan:   "tan",
	Asin:  "asin",
	Acos:  "acos",
	Atan:  "atan",
	Exp:   "exp",
	Log:   "log",
	Log10: "log10",
	Sqrt:  "sqrt",
	Abs:   "abs",
	Floor: "floor",
	Ceil:  "ceil",
	Round: "round",
}

func (f MathFunc) String() string {
	if !f.Valid() {
		return fmt.Sprintf("func(%d)", int(f))
	}

	return mathFuncNames[f]
}

func (f MathFunc) Valid() bool {
	return f >= 0 && f < numMathFuncs
}
