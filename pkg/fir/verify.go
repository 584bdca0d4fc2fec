package fir

import (
	"fmt"
)

// Depth is the maximum number of values simultaneously held on each
// evaluation stack while a block runs, branches included.
type Depth struct {
	Real int
	Int  int
}

func (d Depth) max(o Depth) Depth {
	return Depth{Real: max(d.Real, o.Real), Int: max(d.Int, o.Int)}
}

func (d Depth) add(o Depth) Depth {
	return Depth{Real: d.Real + o.Real, Int: d.Int + o.Int}
}

func (d Depth) String() string {
	return fmt.Sprintf("real=%d int=%d", d.Real, d.Int)
}

// Limits bounds the static heap offsets a block may reference.
type Limits struct {
	RealHeapSize int
	IntHeapSize  int
}

// Analyze checks that block is well formed when a result of kind is
// requested and returns the stack depth it needs.
func Analyze(block *Block, kind Kind) (Depth, error) {
	return AnalyzeWithLimits(block, kind, nil)
}

// AnalyzeWithLimits is Analyze that additionally rejects static heap
// offsets outside limits.
func AnalyzeWithLimits(block *Block, kind Kind, limits *Limits) (Depth, error) {
	a := analyzer{limits: limits}
	return a.block(block, kind)
}

type analyzer struct {
	limits *Limits
}

type heights struct {
	cur Depth
	max Depth
}

func (h *heights) push(k Kind) {
	if k == Int {
		h.cur.Int++
	} else {
		h.cur.Real++
	}
	h.max = h.max.max(h.cur)
}

func (h *heights) pop(k Kind, n int) error {
	have := h.cur.Real
	if k == Int {
		have = h.cur.Int
	}

	if have < n {
		return fmt.Errorf("%w: %s stack underflow", ErrMalformedProgram, k)
	}

	if k == Int {
		h.cur.Int -= n
	} else {
		h.cur.Real -= n
	}

	return nil
}

func (a *analyzer) block(b *Block, kind Kind) (Depth, error) {
	if b == nil {
		return Depth{}, fmt.Errorf("%w: nil block", ErrMalformedProgram)
	}

	if !kind.Valid() {
		return Depth{}, fmt.Errorf("%w: invalid result %v", ErrMalformedProgram, kind)
	}

	var h heights
	for i, instr := range b.instrs {
		err := a.step(&h, instr)
		if err != nil {
			return h.max, &NodeError{Index: i, Instruction: instr, Err: err}
		}
	}

	want := Depth{Real: 1}
	if kind == Int {
		want = Depth{Int: 1}
	}

	if h.cur != want {
		return h.max, fmt.Errorf("%w: block leaves %v, want one %s", ErrMalformedProgram, h.cur, kind)
	}

	return h.max, nil
}

func (a *analyzer) offset(k Kind, offset int) error {
	if offset < 0 {
		return &OutOfRangeError{Space: k.String() + " heap", Index: offset}
	}

	if a.limits == nil {
		return nil
	}

	size := a.limits.RealHeapSize
	if k == Int {
		size = a.limits.IntHeapSize
	}

	if offset >= size {
		return &OutOfRangeError{Space: k.String() + " heap", Index: offset, Size: size}
	}

	return nil
}

func checkKind(k Kind) error {
	if !k.Valid() {
		return fmt.Errorf("%w: invalid %v", ErrMalformedProgram, k)
	}
	return nil
}

func (a *analyzer) step(h *heights, instr Instruction) error {
	switch instr := instr.(type) {
	case nil:
		return fmt.Errorf("%w: nil instruction", ErrMalformedProgram)
	case PushReal:
		h.push(Real)
	case PushInt:
		h.push(Int)
	case Load:
		if err := checkKind(instr.Kind); err != nil {
			return err
		}
		if err := a.offset(instr.Kind, instr.Offset); err != nil {
			return err
		}
		h.push(instr.Kind)
	case LoadIndexed:
		if err := checkKind(instr.Kind); err != nil {
			return err
		}
		if err := h.pop(Int, 1); err != nil {
			return err
		}
		h.push(instr.Kind)
	case Store:
		if err := checkKind(instr.Kind); err != nil {
			return err
		}
		if err := a.offset(instr.Kind, instr.Offset); err != nil {
			return err
		}
		return h.pop(instr.Kind, 1)
	case StoreIndexed:
		if err := checkKind(instr.Kind); err != nil {
			return err
		}
		if err := h.pop(instr.Kind, 1); err != nil {
			return err
		}
		return h.pop(Int, 1)
	case LoadInput:
		if err := h.pop(Int, 1); err != nil {
			return err
		}
		h.push(Real)
	case StoreOutput:
		if err := h.pop(Int, 1); err != nil {
			return err
		}
		return h.pop(Real, 1)
	case Cast:
		if err := checkKind(instr.To); err != nil {
			return err
		}
		if err := h.pop(instr.From(), 1); err != nil {
			return err
		}
		h.push(instr.To)
	case If:
		if err := checkKind(instr.Kind); err != nil {
			return err
		}
		if err := h.pop(Int, 1); err != nil {
			return err
		}

		thenDepth, err := a.block(instr.Then, instr.Kind)
		if err != nil {
			return fmt.Errorf("then: %w", err)
		}

		elseDepth, err := a.block(instr.Else, instr.Kind)
		if err != nil {
			return fmt.Errorf("else: %w", err)
		}

		h.max = h.max.max(h.cur.add(thenDepth.max(elseDepth)))
		h.push(instr.Kind)
	case BinaryOp:
		if !instr.Op.SupportsKind(instr.Kind) {
			return fmt.Errorf("%w: operator %v undefined on %v", ErrMalformedProgram, instr.Op, instr.Kind)
		}
		if err := h.pop(instr.Kind, 2); err != nil {
			return err
		}
		h.push(instr.Kind)
	case UnaryOp:
		if !instr.Func.Valid() {
			return fmt.Errorf("%w: unknown %v", ErrMalformedProgram, instr.Func)
		}
		if err := h.pop(Real, 1); err != nil {
			return err
		}
		h.push(Real)
	default:
		return fmt.Errorf("%w: unhandled instruction %T", ErrMalformedProgram, instr)
	}

	return nil
}

// AnalyzeUI checks that every widget and zoned declaration in block refers
// to a cell of a real heap of the given size.
func AnalyzeUI(block *UIBlock, realHeapSize int) error {
	for i, instr := range block.Instructions() {
		var offset int
		switch instr := instr.(type) {
		case nil:
			return fmt.Errorf("%w: nil ui instruction at %d", ErrMalformedProgram, i)
		case OpenBox, CloseBox:
			continue
		case AddWidget:
			offset = instr.Offset
		case Declare:
			if instr.Offset == NoZone {
				continue
			}
			offset = instr.Offset
		default:
			return fmt.Errorf("%w: unhandled ui instruction %T at %d", ErrMalformedProgram, instr, i)
		}

		if offset < 0 || offset >= realHeapSize {
			return fmt.Errorf("%v at %d: %w", instr, i, &OutOfRangeError{Space: "real heap", Index: offset, Size: realHeapSize})
		}
	}

	return nil
}
