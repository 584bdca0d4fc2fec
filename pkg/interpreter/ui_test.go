package interpreter_test

import (
	"errors"
	"testing"

	"github.com/rhino1998/fir/pkg/fir"
	"github.com/rhino1998/fir/pkg/interpreter"
	"github.com/rhino1998/fir/pkg/ui"
	"github.com/stretchr/testify/require"
)

func TestBuildUserInterface(t *testing.T) {
	t.Run("binding", func(t *testing.T) {
		r := require.New(t)
		interp := newInterpreter(t, 2, 0)

		block := fir.NewUIBlock(
			fir.OpenBox{Orientation: fir.Vertical, Label: "main"},
			fir.AddWidget{Widget: fir.HorizontalSlider, Label: "gain", Offset: 1, Init: 0.5, Min: 0, Max: 1, Step: 0.01},
			fir.CloseBox{},
		)

		var rec ui.Recorder
		r.NoError(interp.BuildUserInterface(block, &rec))
		r.Len(rec.Calls, 3)

		r.Equal(ui.Call{Method: ui.MethodOpenBox, Orientation: fir.Vertical, Label: "main"}, rec.Calls[0])

		widget := rec.Calls[1]
		r.Equal(ui.MethodAddWidget, widget.Method)
		r.Equal(fir.HorizontalSlider, widget.Widget)
		r.Equal("gain", widget.Label)
		r.Equal(0.5, widget.Init)
		r.Equal(0.0, widget.Min)
		r.Equal(1.0, widget.Max)
		r.Equal(0.01, widget.Step)
		r.NotNil(widget.Zone)

		r.Equal(ui.Call{Method: ui.MethodCloseBox}, rec.Calls[2])

		*widget.Zone = 0.75

		res, err := interp.ExecuteReal(fir.NewBlock(fir.Load{Kind: fir.Real, Offset: 1}), interpreter.Frame{})
		r.NoError(err)
		r.Equal(0.75, res)

		_, err = interp.ExecuteReal(fir.NewBlock(
			fir.PushReal{Value: 0.25},
			fir.Store{Kind: fir.Real, Offset: 1},
			fir.PushReal{Value: 0},
		), interpreter.Frame{})
		r.NoError(err)
		r.Equal(0.25, *widget.Zone)
	})

	t.Run("out of range makes no calls", func(t *testing.T) {
		r := require.New(t)
		interp := newInterpreter(t, 2, 0)

		block := fir.NewUIBlock(
			fir.OpenBox{Orientation: fir.Horizontal, Label: "main"},
			fir.AddWidget{Widget: fir.Button, Label: "ok", Offset: 0},
			fir.AddWidget{Widget: fir.NumEntry, Label: "bad", Offset: 2, Max: 1},
			fir.CloseBox{},
		)

		var rec ui.Recorder
		err := interp.BuildUserInterface(block, &rec)
		r.Error(err)
		r.True(errors.Is(err, interpreter.ErrOutOfRange))
		r.Empty(rec.Calls)
	})

	t.Run("declarations", func(t *testing.T) {
		r := require.New(t)
		interp := newInterpreter(t, 1, 0)

		block := fir.NewUIBlock(
			fir.Declare{Offset: fir.NoZone, Key: "author", Value: "someone"},
			fir.Declare{Offset: 0, Key: "unit", Value: "dB"},
			fir.AddWidget{Widget: fir.VerticalBargraph, Label: "level", Offset: 0, Min: -60, Max: 0},
		)

		var rec ui.Recorder
		r.NoError(interp.BuildUserInterface(block, &rec))
		r.Len(rec.Calls, 3)
		r.Nil(rec.Calls[0].Zone)
		r.Equal("author", rec.Calls[0].Key)
		r.NotNil(rec.Calls[1].Zone)
		r.Same(rec.Calls[1].Zone, rec.Calls[2].Zone)
	})

	t.Run("repeatable", func(t *testing.T) {
		r := require.New(t)
		interp := newInterpreter(t, 1, 0)

		block := fir.NewUIBlock(fir.AddWidget{Widget: fir.CheckButton, Label: "on", Offset: 0})

		var first, second ui.Recorder
		r.NoError(interp.BuildUserInterface(block, &first))
		r.NoError(interp.BuildUserInterface(block, &second))
		r.Equal(first.Calls, second.Calls)
	})
}
