package interpreter

import (
	"fmt"

	"github.com/rhino1998/fir/pkg/fir"
)

// UI receives the layout of a program's control surface. Zones point into
// the interpreter's real heap: writes through them are seen by the next
// execution, and values stored by the program are visible through them.
type UI interface {
	OpenBox(orientation fir.Orientation, label string)
	CloseBox()
	AddWidget(widget fir.Widget, label string, zone *float64, init, min, max, step float64)
	// Declare attaches metadata to zone, or to the surface as a whole when
	// zone is nil.
	Declare(zone *float64, key, value string)
}

// BuildUserInterface issues one call on ui per instruction of block, in
// order. Every offset is checked first; if any is out of range no call is
// made.
func (i *Interpreter) BuildUserInterface(block *fir.UIBlock, ui UI) error {
	err := fir.AnalyzeUI(block, i.heap.RealSize())
	if err != nil {
		return err
	}

	for _, instr := range block.Instructions() {
		switch instr := instr.(type) {
		case fir.OpenBox:
			ui.OpenBox(instr.Orientation, instr.Label)
		case fir.CloseBox:
			ui.CloseBox()
		case fir.AddWidget:
			zone, err := i.heap.RealCell(instr.Offset)
			if err != nil {
				return err
			}

			ui.AddWidget(instr.Widget, instr.Label, zone, instr.Init, instr.Min, instr.Max, instr.Step)
		case fir.Declare:
			var zone *float64
			if instr.Offset != fir.NoZone {
				zone, err = i.heap.RealCell(instr.Offset)
				if err != nil {
					return err
				}
			}

			ui.Declare(zone, instr.Key, instr.Value)
		default:
			return fmt.Errorf("%w: unhandled ui instruction %T", ErrMalformedProgram, instr)
		}
	}

	i.logger.Debug("built user interface", "instructions", block.Len())

	return nil
}
