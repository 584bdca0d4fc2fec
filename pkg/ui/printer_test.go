package ui_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/rhino1998/fir/pkg/fir"
	"github.com/rhino1998/fir/pkg/interpreter"
	"github.com/rhino1998/fir/pkg/ui"
	"github.com/stretchr/testify/require"
)

var (
	_ interpreter.UI = (*ui.Map)(nil)
	_ interpreter.UI = (*ui.Printer)(nil)
	_ interpreter.UI = (*ui.Recorder)(nil)
	_ interpreter.UI = ui.Tee(nil)
)

func TestPrinter(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cells := []float64{0.5, -3}

	p := ui.NewPrinter(logger)
	p.OpenBox(fir.Vertical, "main")
	p.AddWidget(fir.VerticalSlider, "gain", &cells[0], 0.5, 0, 1, 0.1)
	p.AddWidget(fir.VerticalBargraph, "level", &cells[1], 0, -60, 0, 0)
	p.CloseBox()

	out := buf.String()
	r.Contains(out, `msg="open box" orientation=vertical label=main depth=0`)
	r.Contains(out, "widget=vslider label=gain depth=1 value=0.5 init=0.5")
	r.Contains(out, "widget=vbargraph label=level depth=1 value=-3 min=-60 max=0")
	r.Contains(out, `msg="close box" depth=0`)
}

func TestPrinter_Unbalanced(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	p := ui.NewPrinter(slog.New(slog.NewTextHandler(&buf, nil)))

	p.CloseBox()
	p.OpenBox(fir.Tab, "tabs")

	out := buf.String()
	r.Contains(out, `msg="close box" depth=0`)
	r.Contains(out, `msg="open box" orientation=tab label=tabs depth=0`)
	r.NotContains(out, "depth=-1")
}

func TestPrinter_Interpreter(t *testing.T) {
	r := require.New(t)

	interp, err := interpreter.New(slogt.New(t), interpreter.Config{RealHeapSize: 1})
	r.NoError(err)

	block := fir.NewUIBlock(
		fir.OpenBox{Orientation: fir.Horizontal, Label: "top"},
		fir.AddWidget{Widget: fir.NumEntry, Label: "n", Offset: 0, Init: 1, Min: 0, Max: 10, Step: 1},
		fir.CloseBox{},
	)

	r.NoError(interp.BuildUserInterface(block, ui.NewPrinter(slogt.New(t))))
}
