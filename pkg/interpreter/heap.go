package interpreter

import (
	"fmt"

	"github.com/rhino1998/fir/pkg/fir"
)

// Heap is the persistent memory of an interpreter: one real-valued and one
// integer-valued array, zeroed at allocation and never resized.
type Heap struct {
	reals []float64
	ints  []int32
}

func NewHeap(realSize, intSize int) (*Heap, error) {
	if realSize < 0 || intSize < 0 {
		return nil, fmt.Errorf("invalid heap sizes real=%d int=%d", realSize, intSize)
	}

	return &Heap{
		reals: make([]float64, realSize),
		ints:  make([]int32, intSize),
	}, nil
}

func (h *Heap) RealSize() int {
	return len(h.reals)
}

func (h *Heap) IntSize() int {
	return len(h.ints)
}

func (h *Heap) LoadReal(offset int) (float64, error) {
	if uint(offset) >= uint(len(h.reals)) {
		return 0, h.realRange(offset)
	}

	return h.reals[offset], nil
}

func (h *Heap) StoreReal(offset int, val float64) error {
	if uint(offset) >= uint(len(h.reals)) {
		return h.realRange(offset)
	}

	h.reals[offset] = val

	return nil
}

func (h *Heap) LoadInt(offset int) (int32, error) {
	if uint(offset) >= uint(len(h.ints)) {
		return 0, h.intRange(offset)
	}

	return h.ints[offset], nil
}

func (h *Heap) StoreInt(offset int, val int32) error {
	if uint(offset) >= uint(len(h.ints)) {
		return h.intRange(offset)
	}

	h.ints[offset] = val

	return nil
}

// RealCell returns a reference to a single real cell. The reference stays
// valid for the lifetime of the heap.
func (h *Heap) RealCell(offset int) (*float64, error) {
	if uint(offset) >= uint(len(h.reals)) {
		return nil, h.realRange(offset)
	}

	return &h.reals[offset], nil
}

// Reset zeroes both arrays in place. Cell references stay valid.
func (h *Heap) Reset() {
	clear(h.reals)
	clear(h.ints)
}

// CopyReal and CopyInt return copies of the heap contents.
func (h *Heap) CopyReal() []float64 {
	return append([]float64(nil), h.reals...)
}

func (h *Heap) CopyInt() []int32 {
	return append([]int32(nil), h.ints...)
}

// Load replaces the heap contents. Both slices must match the heap sizes.
func (h *Heap) Load(reals []float64, ints []int32) error {
	if len(reals) != len(h.reals) {
		return fmt.Errorf("real heap size mismatch: %w", &fir.OutOfRangeError{Space: "real heap", Index: len(reals), Size: len(h.reals)})
	}

	if len(ints) != len(h.ints) {
		return fmt.Errorf("int heap size mismatch: %w", &fir.OutOfRangeError{Space: "int heap", Index: len(ints), Size: len(h.ints)})
	}

	copy(h.reals, reals)
	copy(h.ints, ints)

	return nil
}

func (h *Heap) realRange(offset int) error {
	return &fir.OutOfRangeError{Space: "real heap", Index: offset, Size: len(h.reals)}
}

func (h *Heap) intRange(offset int) error {
	return &fir.OutOfRangeError{Space: "int heap", Index: offset, Size: len(h.ints)}
}
