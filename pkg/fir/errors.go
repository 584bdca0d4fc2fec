package fir

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedProgram = errors.New("malformed program")
	ErrOutOfRange       = errors.New("out of range")
)

// OutOfRangeError describes an access outside one of the bounded spaces of
// the machine: a heap, a frame, or an evaluation stack.
type OutOfRangeError struct {
	Space string
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Space, e.Index, e.Size)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// NodeError attributes an error to the instruction at Index of a block.
// Errors raised inside a branch nest one NodeError per level.
type NodeError struct {
	Index       int
	Instruction Instruction
	Err         error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%s at %d: %v", e.Instruction, e.Index, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// BlockError attributes an error to one of a program's blocks: "init",
// "compute" or "ui".
type BlockError struct {
	Block string
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("%s: %v", e.Block, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

// ErrorSet holds independent errors found in a single pass. Nested sets
// are flattened.
type ErrorSet struct {
	errs []error
}

func (s *ErrorSet) Add(err error) {
	if err == nil {
		return
	}

	var nested *ErrorSet
	if errors.As(err, &nested) {
		s.errs = append(s.errs, nested.errs...)
		return
	}

	s.errs = append(s.errs, err)
}

func (s *ErrorSet) Errors() []error {
	return s.errs
}

func (s *ErrorSet) Error() string {
	return errors.Join(s.errs...).Error()
}

func (s *ErrorSet) Unwrap() []error {
	return s.errs
}

// Err returns s, or nil when it holds no errors.
func (s *ErrorSet) Err() error {
	if len(s.errs) == 0 {
		return nil
	}

	return s
}
