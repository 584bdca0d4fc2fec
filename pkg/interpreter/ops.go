package interpreter

import (
	"fmt"
	"math"

	"github.com/rhino1998/fir/pkg/fir"
)

type realBinaryFunc func(a, b float64) float64

type intBinaryFunc func(a, b int32) (int32, error)

type mathFunc func(a float64) float64

// Operands are bound in pop order: a is the value popped first.
var realBinaryFuncs = map[fir.Operator]realBinaryFunc{
	fir.Add: opAdd[float64],
	fir.Sub: opSub[float64],
	fir.Mul: opMul[float64],
	fir.Div: opDiv[float64],
	fir.Rem: math.Mod,

	fir.GT: opGT[float64],
	fir.LT: opLT[float64],
	fir.GE: opGE[float64],
	fir.LE: opLE[float64],
	fir.EQ: opEQ[float64],
	fir.NE: opNE[float64],
}

var intBinaryFuncs = map[fir.Operator]intBinaryFunc{
	fir.Add: intOp(opAdd[int32]),
	fir.Sub: intOp(opSub[int32]),
	fir.Mul: intOp(opMul[int32]),
	fir.Div: opDivInt,
	fir.Rem: opRemInt,

	fir.Shl: opShl,
	fir.Shr: opShr,
	fir.And: intOp(opAnd),
	fir.Or:  intOp(opOr),
	fir.Xor: intOp(opXor),

	fir.GT: intOp(opGT[int32]),
	fir.LT: intOp(opLT[int32]),
	fir.GE: intOp(opGE[int32]),
	fir.LE: intOp(opLE[int32]),
	fir.EQ: intOp(opEQ[int32]),
	fir.NE: intOp(opNE[int32]),
}

var mathFuncs = map[fir.MathFunc]mathFunc{
	fir.Sin:   math.Sin,
	fir.Cos:   math.Cos,
	fir.Tan:   math.Tan,
	fir.Asin:  math.Asin,
	fir.Acos:  math.Acos,
	fir.Atan:  math.Atan,
	fir.Exp:   math.Exp,
	fir.Log:   math.Log,
	fir.Log10: math.Log10,
	fir.Sqrt:  math.Sqrt,
	fir.Abs:   math.Abs,
	fir.Floor: math.Floor,
	fir.Ceil:  math.Ceil,
	fir.Round: math.Round,
}

func intOp(f func(a, b int32) int32) intBinaryFunc {
	return intBinaryFunc(func(a, b int32) (int32, error) {
		return f(a, b), nil
	})
}

func opAdd[T float64 | int32](a, b T) T {
	return a + b
}

func opSub[T float64 | int32](a, b T) T {
	return a - b
}

func opMul[T float64 | int32](a, b T) T {
	return a * b
}

func opDiv[T float64 | int32](a, b T) T {
	return a / b
}

func opDivInt(a, b int32) (int32, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

func opRemInt(a, b int32) (int32, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a % b, nil
}

func opShl(a, b int32) (int32, error) {
	if b < 0 {
		return 0, fmt.Errorf("negative shift count %d: %w", b, ErrOutOfRange)
	}
	return a << b, nil
}

func opShr(a, b int32) (int32, error) {
	if b < 0 {
		return 0, fmt.Errorf("negative shift count %d: %w", b, ErrOutOfRange)
	}
	return a >> b, nil
}

func opAnd(a, b int32) int32 {
	return a & b
}

func opOr(a, b int32) int32 {
	return a | b
}

func opXor(a, b int32) int32 {
	return a ^ b
}

func boolean[T float64 | int32](b bool) T {
	if b {
		return 1
	}
	return 0
}

func opGT[T float64 | int32](a, b T) T {
	return boolean[T](a > b)
}

func opLT[T float64 | int32](a, b T) T {
	return boolean[T](a < b)
}

func opGE[T float64 | int32](a, b T) T {
	return boolean[T](a >= b)
}

func opLE[T float64 | int32](a, b T) T {
	return boolean[T](a <= b)
}

func opEQ[T float64 | int32](a, b T) T {
	return boolean[T](a == b)
}

func opNE[T float64 | int32](a, b T) T {
	return boolean[T](a != b)
}

// truncate converts toward zero, saturating at the int32 bounds. NaN
// converts to zero.
func truncate(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(v)
	}
}
