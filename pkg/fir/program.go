package fir

import (
	"fmt"
)

// Program is a compiled DSP: its heap requirements, its instruction blocks
// and the description of its control surface.
type Program struct {
	Name string

	RealHeapSize int
	IntHeapSize  int

	NumInputs  int
	NumOutputs int

	// Init runs once when an instance is initialized. It may be nil.
	Init     *Block
	InitKind Kind

	Compute     *Block
	ComputeKind Kind

	UI *UIBlock

	Meta []MetaEntry
}

type MetaEntry struct {
	Key   string
	Value string
}

func (p *Program) Limits() *Limits {
	return &Limits{RealHeapSize: p.RealHeapSize, IntHeapSize: p.IntHeapSize}
}

// ProgramDepth holds the stack requirements of each block of a program.
type ProgramDepth struct {
	Init    Depth
	Compute Depth
}

// Validate checks every block of the program against its declared heap
// sizes and returns the stack depth each block needs.
func (p *Program) Validate() (ProgramDepth, error) {
	var depth ProgramDepth
	var errs ErrorSet

	if p.RealHeapSize < 0 || p.IntHeapSize < 0 {
		errs.Add(fmt.Errorf("%w: negative heap size (real=%d int=%d)", ErrMalformedProgram, p.RealHeapSize, p.IntHeapSize))
	}

	if p.NumInputs < 0 || p.NumOutputs < 0 {
		errs.Add(fmt.Errorf("%w: negative channel count (inputs=%d outputs=%d)", ErrMalformedProgram, p.NumInputs, p.NumOutputs))
	}

	var err error
	if p.Init != nil {
		depth.Init, err = AnalyzeWithLimits(p.Init, p.InitKind, p.Limits())
		if err != nil {
			errs.Add(&BlockError{Block: "init", Err: err})
		}
	}

	depth.Compute, err = AnalyzeWithLimits(p.Compute, p.ComputeKind, p.Limits())
	if err != nil {
		errs.Add(&BlockError{Block: "compute", Err: err})
	}

	err = AnalyzeUI(p.UI, p.RealHeapSize)
	if err != nil {
		errs.Add(&BlockError{Block: "ui", Err: err})
	}

	return depth, errs.Err()
}
