package fir

import "fmt"

// Kind selects which of the two value domains an instruction operates on.
type Kind int

const (
	Real Kind = iota
	Int
)

func (k Kind) String() string {
	switch k {
	case Real:
		return "real"
	case Int:
		return "int"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) Valid() bool {
	return k == Real || k == Int
}

func (k Kind) short() string {
	switch k {
	case Real:
		return "R"
	case Int:
		return "I"
	default:
		return "?"
	}
}

// Value is the single typed result of a block execution.
type Value struct {
	Kind Kind
	Real float64
	Int  int32
}

func RealValue(v float64) Value {
	return Value{Kind: Real, Real: v}
}

func IntValue(v int32) Value {
	return Value{Kind: Int, Int: v}
}

func (v Value) String() string {
	switch v.Kind {
	case Real:
		return fmt.Sprintf("Real(%g)", v.Real)
	case Int:
		return fmt.Sprintf("Int(%d)", v.Int)
	default:
		return fmt.Sprintf("Value(%v)", v.Kind)
	}
}
