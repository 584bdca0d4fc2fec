package interpreter

import (
	"errors"

	"github.com/rhino1998/fir/pkg/fir"
)

var (
	ErrOutOfRange       = fir.ErrOutOfRange
	ErrMalformedProgram = fir.ErrMalformedProgram
	ErrDivideByZero     = errors.New("integer divide by zero")
)

type OutOfRangeError = fir.OutOfRangeError
