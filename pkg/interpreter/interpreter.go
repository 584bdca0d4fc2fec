package interpreter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rhino1998/fir/pkg/fir"
)

type Config struct {
	RealHeapSize int
	IntHeapSize  int
}

func (c *Config) Validate(logger *slog.Logger) error {
	if c.RealHeapSize < 0 {
		return fmt.Errorf("real heap size must not be negative, got %d", c.RealHeapSize)
	}

	if c.IntHeapSize < 0 {
		return fmt.Errorf("int heap size must not be negative, got %d", c.IntHeapSize)
	}

	return nil
}

// Frame holds the current sample of each input and output channel.
type Frame struct {
	Inputs  []float64
	Outputs []float64
}

func (f Frame) input(ch int32) (float64, error) {
	if ch < 0 || int(ch) >= len(f.Inputs) {
		return 0, &fir.OutOfRangeError{Space: "input channel", Index: int(ch), Size: len(f.Inputs)}
	}

	return f.Inputs[ch], nil
}

func (f Frame) output(ch int32, val float64) error {
	if ch < 0 || int(ch) >= len(f.Outputs) {
		return &fir.OutOfRangeError{Space: "output channel", Index: int(ch), Size: len(f.Outputs)}
	}

	f.Outputs[ch] = val

	return nil
}

// Interpreter executes instruction blocks against a pair of heaps it owns.
// It is not safe for concurrent use; run one execution at a time per
// instance and give each concurrent voice its own Interpreter.
type Interpreter struct {
	logger *slog.Logger
	trace  bool

	heap *Heap

	reals stack[float64]
	ints  stack[int32]
}

func New(logger *slog.Logger, config Config) (*Interpreter, error) {
	err := config.Validate(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to validate interpreter config: %w", err)
	}

	heap, err := NewHeap(config.RealHeapSize, config.IntHeapSize)
	if err != nil {
		return nil, err
	}

	logger.Debug("allocated heaps", "real", config.RealHeapSize, "int", config.IntHeapSize)

	return &Interpreter{
		logger: logger,
		trace:  logger.Handler().Enabled(context.Background(), slog.LevelDebug-4),
		heap:   heap,
		reals:  newStack[float64](fir.Real),
		ints:   newStack[int32](fir.Int),
	}, nil
}

func (i *Interpreter) Heap() *Heap {
	return i.heap
}

// Prepare verifies block for a result of kind against the heap sizes and
// returns the evaluation stack depth it needs. Execute calls it implicitly;
// the result is cached on the block until a block is next appended to.
func (i *Interpreter) Prepare(block *fir.Block, kind fir.Kind) (fir.Depth, error) {
	return block.Verify(kind, fir.Limits{
		RealHeapSize: i.heap.RealSize(),
		IntHeapSize:  i.heap.IntSize(),
	})
}

// Execute runs block to completion and returns its single result. Heap
// writes made before a failing instruction are kept; nothing after it runs.
func (i *Interpreter) Execute(block *fir.Block, kind fir.Kind, frame Frame) (fir.Value, error) {
	depth, err := i.Prepare(block, kind)
	if err != nil {
		return fir.Value{}, err
	}

	i.reals.reset(depth.Real)
	i.ints.reset(depth.Int)

	return i.execute(block, kind, frame)
}

func (i *Interpreter) ExecuteReal(block *fir.Block, frame Frame) (float64, error) {
	val, err := i.Execute(block, fir.Real, frame)
	return val.Real, err
}

func (i *Interpreter) ExecuteInt(block *fir.Block, frame Frame) (int32, error) {
	val, err := i.Execute(block, fir.Int, frame)
	return val.Int, err
}

// execute evaluates block in a fresh frame of both stacks.
func (i *Interpreter) execute(block *fir.Block, kind fir.Kind, frame Frame) (fir.Value, error) {
	realBase := i.reals.enter()
	intBase := i.ints.enter()

	val, err := i.run(block, kind, frame)

	i.reals.leave(realBase)
	i.ints.leave(intBase)

	return val, err
}

func (i *Interpreter) run(block *fir.Block, kind fir.Kind, frame Frame) (fir.Value, error) {
	for idx, instr := range block.Instructions() {
		if i.trace {
			i.logger.Log(context.Background(), slog.LevelDebug-4, "exec", "index", idx, "instr", instr, "real_sp", i.reals.sp, "int_sp", i.ints.sp)
		}

		err := i.step(instr, frame)
		if err != nil {
			return fir.Value{}, &fir.NodeError{Index: idx, Instruction: instr, Err: err}
		}
	}

	var val fir.Value
	var err error

	switch kind {
	case fir.Real:
		val.Kind = fir.Real
		val.Real, err = i.reals.pop()
	case fir.Int:
		val.Kind = fir.Int
		val.Int, err = i.ints.pop()
	default:
		err = fmt.Errorf("%w: invalid result %v", ErrMalformedProgram, kind)
	}

	if err != nil {
		return fir.Value{}, err
	}

	if i.reals.residual() != 0 || i.ints.residual() != 0 {
		return fir.Value{}, fmt.Errorf("%w: block left real=%d int=%d residual values", ErrMalformedProgram, i.reals.residual(), i.ints.residual())
	}

	return val, nil
}

func (i *Interpreter) step(instr fir.Instruction, frame Frame) error {
	switch instr := instr.(type) {
	case fir.PushReal:
		return i.reals.push(instr.Value)
	case fir.PushInt:
		return i.ints.push(instr.Value)
	case fir.Load:
		return i.load(instr.Kind, instr.Offset)
	case fir.LoadIndexed:
		offset, err := i.ints.pop()
		if err != nil {
			return err
		}

		return i.load(instr.Kind, int(offset))
	case fir.Store:
		return i.store(instr.Kind, instr.Offset)
	case fir.StoreIndexed:
		return i.storeIndexed(instr.Kind)
	case fir.LoadInput:
		ch, err := i.ints.pop()
		if err != nil {
			return err
		}

		val, err := frame.input(ch)
		if err != nil {
			return err
		}

		return i.reals.push(val)
	case fir.StoreOutput:
		ch, err := i.ints.pop()
		if err != nil {
			return err
		}

		val, err := i.reals.pop()
		if err != nil {
			return err
		}

		return frame.output(ch, val)
	case fir.Cast:
		return i.cast(instr.To)
	case fir.If:
		return i.branch(instr, frame)
	case fir.BinaryOp:
		return i.binary(instr.Kind, instr.Op)
	case fir.UnaryOp:
		f, ok := mathFuncs[instr.Func]
		if !ok {
			return fmt.Errorf("%w: unknown %v", ErrMalformedProgram, instr.Func)
		}

		val, err := i.reals.pop()
		if err != nil {
			return err
		}

		return i.reals.push(f(val))
	default:
		return fmt.Errorf("%w: unhandled instruction %T", ErrMalformedProgram, instr)
	}
}

func (i *Interpreter) load(kind fir.Kind, offset int) error {
	switch kind {
	case fir.Real:
		val, err := i.heap.LoadReal(offset)
		if err != nil {
			return err
		}

		return i.reals.push(val)
	case fir.Int:
		val, err := i.heap.LoadInt(offset)
		if err != nil {
			return err
		}

		return i.ints.push(val)
	default:
		return fmt.Errorf("%w: invalid %v", ErrMalformedProgram, kind)
	}
}

func (i *Interpreter) store(kind fir.Kind, offset int) error {
	switch kind {
	case fir.Real:
		val, err := i.reals.pop()
		if err != nil {
			return err
		}

		return i.heap.StoreReal(offset, val)
	case fir.Int:
		val, err := i.ints.pop()
		if err != nil {
			return err
		}

		return i.heap.StoreInt(offset, val)
	default:
		return fmt.Errorf("%w: invalid %v", ErrMalformedProgram, kind)
	}
}

// storeIndexed pops the value before the offset.
func (i *Interpreter) storeIndexed(kind fir.Kind) error {
	switch kind {
	case fir.Real:
		val, err := i.reals.pop()
		if err != nil {
			return err
		}

		offset, err := i.ints.pop()
		if err != nil {
			return err
		}

		return i.heap.StoreReal(int(offset), val)
	case fir.Int:
		val, err := i.ints.pop()
		if err != nil {
			return err
		}

		offset, err := i.ints.pop()
		if err != nil {
			return err
		}

		return i.heap.StoreInt(int(offset), val)
	default:
		return fmt.Errorf("%w: invalid %v", ErrMalformedProgram, kind)
	}
}

func (i *Interpreter) cast(to fir.Kind) error {
	switch to {
	case fir.Real:
		val, err := i.ints.pop()
		if err != nil {
			return err
		}

		return i.reals.push(float64(val))
	case fir.Int:
		val, err := i.reals.pop()
		if err != nil {
			return err
		}

		return i.ints.push(truncate(val))
	default:
		return fmt.Errorf("%w: invalid cast to %v", ErrMalformedProgram, to)
	}
}

func (i *Interpreter) branch(instr fir.If, frame Frame) error {
	cond, err := i.ints.pop()
	if err != nil {
		return err
	}

	block, label := instr.Else, "else"
	if cond != 0 {
		block, label = instr.Then, "then"
	}

	if block == nil {
		return fmt.Errorf("%w: nil %s branch", ErrMalformedProgram, label)
	}

	val, err := i.execute(block, instr.Kind, frame)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	switch instr.Kind {
	case fir.Int:
		return i.ints.push(val.Int)
	default:
		return i.reals.push(val.Real)
	}
}

func (i *Interpreter) binary(kind fir.Kind, op fir.Operator) error {
	switch kind {
	case fir.Real:
		f, ok := realBinaryFuncs[op]
		if !ok {
			return fmt.Errorf("%w: operator %v undefined on %v", ErrMalformedProgram, op, kind)
		}

		first, err := i.reals.pop()
		if err != nil {
			return err
		}

		second, err := i.reals.pop()
		if err != nil {
			return err
		}

		return i.reals.push(f(first, second))
	case fir.Int:
		f, ok := intBinaryFuncs[op]
		if !ok {
			return fmt.Errorf("%w: operator %v undefined on %v", ErrMalformedProgram, op, kind)
		}

		first, err := i.ints.pop()
		if err != nil {
			return err
		}

		second, err := i.ints.pop()
		if err != nil {
			return err
		}

		val, err := f(first, second)
		if err != nil {
			return err
		}

		return i.ints.push(val)
	default:
		return fmt.Errorf("%w: invalid %v", ErrMalformedProgram, kind)
	}
}
