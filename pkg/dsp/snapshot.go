package dsp

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("dsp: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Snapshot is a copy of an instance's heaps.
type Snapshot struct {
	Program string    `cbor:"1,keyasint"`
	Reals   []float64 `cbor:"2,keyasint"`
	Ints    []int32   `cbor:"3,keyasint"`
}

func (d *Instance) Snapshot() *Snapshot {
	return &Snapshot{
		Program: d.prog.Name,
		Reals:   d.interp.Heap().CopyReal(),
		Ints:    d.interp.Heap().CopyInt(),
	}
}

// Restore replaces the heaps with the contents of s. The heap sizes must
// match the program's.
func (d *Instance) Restore(s *Snapshot) error {
	if s == nil {
		return ErrNilSnapshot
	}

	if s.Program != d.prog.Name {
		return fmt.Errorf("%w: %q, want %q", ErrProgramMismatch, s.Program, d.prog.Name)
	}

	err := d.interp.Heap().Load(s.Reals, s.Ints)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	d.logger.Debug("restored snapshot", "reals", len(s.Reals), "ints", len(s.Ints))

	return nil
}

func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	return cborEncMode.Marshal(s)
}

func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("dsp: unmarshal snapshot: %w", err)
	}
	return &s, nil
}
