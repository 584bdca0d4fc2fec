// Package dsp binds a compiled program to an interpreter and drives it one
// frame at a time.
package dsp

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rhino1998/fir/pkg/fir"
	"github.com/rhino1998/fir/pkg/interpreter"
)

var (
	ErrProgramMismatch = errors.New("snapshot belongs to a different program")
	ErrNilSnapshot     = errors.New("nil snapshot")
)

type Instance struct {
	logger *slog.Logger

	prog   *fir.Program
	depth  fir.ProgramDepth
	interp *interpreter.Interpreter
}

func New(logger *slog.Logger, prog *fir.Program) (*Instance, error) {
	depth, err := prog.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid program %q: %w", prog.Name, err)
	}

	logger = logger.With("program", prog.Name)

	interp, err := interpreter.New(logger, interpreter.Config{
		RealHeapSize: prog.RealHeapSize,
		IntHeapSize:  prog.IntHeapSize,
	})
	if err != nil {
		return nil, err
	}

	if prog.Init != nil {
		_, err = interp.Prepare(prog.Init, prog.InitKind)
		if err != nil {
			return nil, fmt.Errorf("init: %w", err)
		}
	}

	_, err = interp.Prepare(prog.Compute, prog.ComputeKind)
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}

	logger.Debug("created instance", "inputs", prog.NumInputs, "outputs", prog.NumOutputs, "init_depth", depth.Init, "compute_depth", depth.Compute)

	return &Instance{
		logger: logger,
		prog:   prog,
		depth:  depth,
		interp: interp,
	}, nil
}

func (d *Instance) Program() *fir.Program {
	return d.prog
}

func (d *Instance) Heap() *interpreter.Heap {
	return d.interp.Heap()
}

// Init runs the program's init block, if it has one.
func (d *Instance) Init() error {
	if d.prog.Init == nil {
		return nil
	}

	_, err := d.interp.Execute(d.prog.Init, d.prog.InitKind, interpreter.Frame{})
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}

	return nil
}

// Reset zeroes the heaps and runs init again.
func (d *Instance) Reset() error {
	d.interp.Heap().Reset()
	return d.Init()
}

func (d *Instance) BuildUserInterface(ui interpreter.UI) error {
	if d.prog.UI == nil {
		return nil
	}

	return d.interp.BuildUserInterface(d.prog.UI, ui)
}

// NewFrame allocates a frame sized for the program's channels.
func (d *Instance) NewFrame() interpreter.Frame {
	return interpreter.Frame{
		Inputs:  make([]float64, d.prog.NumInputs),
		Outputs: make([]float64, d.prog.NumOutputs),
	}
}

// Tick executes the compute block once against frame.
func (d *Instance) Tick(frame interpreter.Frame) (fir.Value, error) {
	if len(frame.Inputs) < d.prog.NumInputs {
		return fir.Value{}, fmt.Errorf("frame inputs: %w", &fir.OutOfRangeError{Space: "input channel", Index: len(frame.Inputs), Size: d.prog.NumInputs})
	}

	if len(frame.Outputs) < d.prog.NumOutputs {
		return fir.Value{}, fmt.Errorf("frame outputs: %w", &fir.OutOfRangeError{Space: "output channel", Index: len(frame.Outputs), Size: d.prog.NumOutputs})
	}

	return d.interp.Execute(d.prog.Compute, d.prog.ComputeKind, frame)
}
