package interpreter

import (
	"fmt"

	"github.com/rhino1998/fir/pkg/fir"
)

// stack is an evaluation stack reused across executions. Values below base
// belong to an enclosing block and are invisible to the running one.
type stack[T float64 | int32] struct {
	kind fir.Kind
	vals []T
	sp   int
	base int
}

func newStack[T float64 | int32](kind fir.Kind) stack[T] {
	return stack[T]{kind: kind}
}

// reset empties the stack and makes room for size values.
func (s *stack[T]) reset(size int) {
	if len(s.vals) < size {
		s.vals = make([]T, size)
	}
	s.sp = 0
	s.base = 0
}

func (s *stack[T]) push(v T) error {
	if s.sp >= len(s.vals) {
		return &fir.OutOfRangeError{Space: s.kind.String() + " stack", Index: s.sp, Size: len(s.vals)}
	}

	s.vals[s.sp] = v
	s.sp++

	return nil
}

func (s *stack[T]) pop() (T, error) {
	if s.sp <= s.base {
		var zero T
		return zero, fmt.Errorf("%w: %s stack underflow", fir.ErrMalformedProgram, s.kind)
	}

	s.sp--

	return s.vals[s.sp], nil
}

// enter starts a nested block frame and returns the previous base.
func (s *stack[T]) enter() int {
	prev := s.base
	s.base = s.sp
	return prev
}

func (s *stack[T]) leave(prev int) {
	s.sp = s.base
	s.base = prev
}

func (s *stack[T]) residual() int {
	return s.sp - s.base
}
