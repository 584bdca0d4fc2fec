package fir

import "fmt"

// Opcode discriminates the shape of an instruction node together with the
// stack it touches.
type Opcode int

const (
	OpPushReal Opcode = iota
	OpPushInt
	OpLoadReal
	OpLoadInt
	OpLoadIndexedReal
	OpLoadIndexedInt
	OpStoreReal
	OpStoreInt
	OpStoreIndexedReal
	OpStoreIndexedInt
	OpLoadInput
	OpStoreOutput
	OpCastReal
	OpCastInt
	OpIfReal
	OpIfInt
	OpBinaryReal
	OpBinaryInt
	OpMath

	numOpcodes
)

var opcodeNames = [numOpcodes]string{
	OpPushReal:         "real.push",
	OpPushInt:          "int.push",
	OpLoadReal:         "real.load",
	OpLoadInt:          "int.load",
	OpLoadIndexedReal:  "real.load.indexed",
	OpLoadIndexedInt:   "int.load.indexed",
	OpStoreReal:        "real.store",
	OpStoreInt:         "int.store",
	OpStoreIndexedReal: "real.store.indexed",
	OpStoreIndexedInt:  "int.store.indexed",
	OpLoadInput:        "input.load",
	OpStoreOutput:      "output.store",
	OpCastReal:         "real.cast",
	OpCastInt:          "int.cast",
	OpIfReal:           "if.real",
	OpIfInt:            "if.int",
	OpBinaryReal:       "real.binop",
	OpBinaryInt:        "int.binop",
	OpMath:             "math",
}

func (o Opcode) String() string {
	if o < 0 || o >= numOpcodes {
		return fmt.Sprintf("opcode(%d)", int(o))
	}

	return opcodeNames[o]
}

func kindOpcode(k Kind, r, i Opcode) Opcode {
	if k == Int {
		return i
	}
	return r
}
