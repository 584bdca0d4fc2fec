package dsp_test

import (
	"errors"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/rhino1998/fir/pkg/dsp"
	"github.com/rhino1998/fir/pkg/fir"
	"github.com/rhino1998/fir/pkg/interpreter"
	"github.com/rhino1998/fir/pkg/patches"
	"github.com/stretchr/testify/require"
)

func newSine(t *testing.T) *dsp.Instance {
	t.Helper()

	patch, err := patches.Lookup("sine")
	require.NoError(t, err)

	inst, err := dsp.New(slogt.New(t), patch.Build(48000))
	require.NoError(t, err)
	require.NoError(t, inst.Init())

	return inst
}

func render(t *testing.T, inst *dsp.Instance, n int) []float64 {
	t.Helper()

	frame := inst.NewFrame()
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		_, err := inst.Tick(frame)
		require.NoError(t, err)
		out = append(out, frame.Outputs[0])
	}

	return out
}

func TestNew_InvalidProgram(t *testing.T) {
	r := require.New(t)

	_, err := dsp.New(slogt.New(t), &fir.Program{
		Name:         "broken",
		RealHeapSize: 1,
		Compute: fir.NewBlock(
			fir.PushReal{Value: 1},
			fir.Store{Kind: fir.Real, Offset: 3},
			fir.PushReal{Value: 0},
		),
		ComputeKind: fir.Real,
	})
	r.Error(err)
	r.True(errors.Is(err, fir.ErrOutOfRange))
}

func TestInit(t *testing.T) {
	r := require.New(t)
	inst := newSine(t)

	freq, err := inst.Heap().LoadReal(0)
	r.NoError(err)
	r.Equal(440.0, freq)

	first := render(t, inst, 8)

	r.NoError(inst.Reset())
	r.Equal(first, render(t, inst, 8))
}

func TestTick_ShortFrame(t *testing.T) {
	r := require.New(t)
	inst := newSine(t)

	_, err := inst.Tick(interpreter.Frame{})
	r.Error(err)
	r.True(errors.Is(err, interpreter.ErrOutOfRange))
}

func TestSnapshot(t *testing.T) {
	t.Run("restore", func(t *testing.T) {
		r := require.New(t)
		inst := newSine(t)

		render(t, inst, 3)

		data, err := dsp.MarshalSnapshot(inst.Snapshot())
		r.NoError(err)

		expected := render(t, inst, 5)

		snap, err := dsp.UnmarshalSnapshot(data)
		r.NoError(err)
		r.Equal("sine", snap.Program)

		other := newSine(t)
		r.NoError(other.Restore(snap))
		r.Equal(expected, render(t, other, 5))
	})

	t.Run("canonical", func(t *testing.T) {
		r := require.New(t)
		inst := newSine(t)
		render(t, inst, 3)

		a, err := dsp.MarshalSnapshot(inst.Snapshot())
		r.NoError(err)

		b, err := dsp.MarshalSnapshot(inst.Snapshot())
		r.NoError(err)

		r.Equal(a, b)
	})

	t.Run("wrong program", func(t *testing.T) {
		r := require.New(t)
		inst := newSine(t)

		err := inst.Restore(&dsp.Snapshot{Program: "noise"})
		r.True(errors.Is(err, dsp.ErrProgramMismatch))
	})

	t.Run("wrong size", func(t *testing.T) {
		r := require.New(t)
		inst := newSine(t)

		err := inst.Restore(&dsp.Snapshot{Program: "sine", Reals: []float64{1}})
		r.True(errors.Is(err, interpreter.ErrOutOfRange))
	})

	t.Run("nil", func(t *testing.T) {
		inst := newSine(t)
		require.ErrorIs(t, inst.Restore(nil), dsp.ErrNilSnapshot)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := dsp.UnmarshalSnapshot([]byte{0xff, 0x00})
		require.Error(t, err)
	})
}
