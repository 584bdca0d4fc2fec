package fir

import "fmt"

// Instruction is a single node of an instruction block. The set of
// implementations is closed: only the types in this file satisfy it.
type Instruction interface {
	Opcode() Opcode
	String() string

	instruction()
}

type PushReal struct {
	Value float64
}

func (PushReal) instruction()     {}
func (PushReal) Opcode() Opcode   { return OpPushReal }
func (p PushReal) String() string { return fmt.Sprintf("real.push %g", p.Value) }

type PushInt struct {
	Value int32
}

func (PushInt) instruction()     {}
func (PushInt) Opcode() Opcode   { return OpPushInt }
func (p PushInt) String() string { return fmt.Sprintf("int.push %d", p.Value) }

// Load pushes the heap cell at a static offset.
type Load struct {
	Kind   Kind
	Offset int
}

func (Load) instruction()     {}
func (l Load) Opcode() Opcode { return kindOpcode(l.Kind, OpLoadReal, OpLoadInt) }
func (l Load) String() string { return fmt.Sprintf("%s.load [%d]", l.Kind, l.Offset) }

// LoadIndexed pops an integer offset and pushes the heap cell it names.
type LoadIndexed struct {
	Kind Kind
}

func (LoadIndexed) instruction()     {}
func (l LoadIndexed) Opcode() Opcode { return kindOpcode(l.Kind, OpLoadIndexedReal, OpLoadIndexedInt) }
func (l LoadIndexed) String() string { return fmt.Sprintf("%s.load.indexed", l.Kind) }

// Store pops a value and writes it to a static offset.
type Store struct {
	Kind   Kind
	Offset int
}

func (Store) instruction()     {}
func (s Store) Opcode() Opcode { return kindOpcode(s.Kind, OpStoreReal, OpStoreInt) }
func (s Store) String() string { return fmt.Sprintf("%s.store [%d]", s.Kind, s.Offset) }

// StoreIndexed pops the value first, then the integer offset.
type StoreIndexed struct {
	Kind Kind
}

func (StoreIndexed) instruction() {}
func (s StoreIndexed) Opcode() Opcode {
	return kindOpcode(s.Kind, OpStoreIndexedReal, OpStoreIndexedInt)
}
func (s StoreIndexed) String() string { return fmt.Sprintf("%s.store.indexed", s.Kind) }

// LoadInput pops a channel index and pushes that input sample.
type LoadInput struct{}

func (LoadInput) instruction()   {}
func (LoadInput) Opcode() Opcode { return OpLoadInput }
func (LoadInput) String() string { return "input.load" }

// StoreOutput pops a channel index, then a real, and writes the output sample.
type StoreOutput struct{}

func (StoreOutput) instruction()   {}
func (StoreOutput) Opcode() Opcode { return OpStoreOutput }
func (StoreOutput) String() string { return "output.store" }

// Cast pops from the other stack and pushes the converted value onto To.
type Cast struct {
	To Kind
}

func (Cast) instruction()     {}
func (c Cast) Opcode() Opcode { return kindOpcode(c.To, OpCastReal, OpCastInt) }
func (c Cast) String() string { return fmt.Sprintf("%s.cast", c.To) }

func (c Cast) From() Kind {
	if c.To == Int {
		return Real
	}
	return Int
}

// If pops an integer condition and evaluates Then when it is non-zero,
// Else otherwise. The selected branch yields one value of Kind.
type If struct {
	Kind Kind
	Then *Block
	Else *Block
}

func (If) instruction()     {}
func (i If) Opcode() Opcode { return kindOpcode(i.Kind, OpIfReal, OpIfInt) }
func (i If) String() string { return fmt.Sprintf("if.%s", i.Kind) }

// BinaryOp pops first, then second, and pushes Op(first, second).
type BinaryOp struct {
	Kind Kind
	Op   Operator
}

func (BinaryOp) instruction()     {}
func (b BinaryOp) Opcode() Opcode { return kindOpcode(b.Kind, OpBinaryReal, OpBinaryInt) }
func (b BinaryOp) String() string { return fmt.Sprintf("%s.%s", b.Kind, b.Op) }

type UnaryOp struct {
	Func MathFunc
}

func (UnaryOp) instruction()     {}
func (UnaryOp) Opcode() Opcode   { return OpMath }
func (u UnaryOp) String() string { return u.Func.String() }
