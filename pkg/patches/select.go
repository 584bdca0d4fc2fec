package patches

import (
	"github.com/rhino1998/fir/pkg/fir"
)

func init() {
	register(Patch{
		Name:        "select",
		Description: "checkbox switch between two inputs",
		Build:       selector,
	})
}

const (
	selectOn = iota
	selectOut
	selectHeap
)

func selector(sampleRate int) *fir.Program {
	compute := fir.NewBlock(
		pushReal(0.5),
		loadReal(selectOn),
		realOp(fir.GT),
		fir.Cast{To: fir.Int},
		fir.If{
			Kind: fir.Real,
			Then: fir.NewBlock(input(1)...),
			Else: fir.NewBlock(input(0)...),
		},
		storeReal(selectOut),
	)
	compute.Append(loadReal(selectOut))
	compute.Append(output(0)...)
	compute.Append(loadReal(selectOut))

	ui := fir.NewUIBlock(
		fir.Declare{Offset: fir.NoZone, Key: "name", Value: "select"},
		fir.OpenBox{Orientation: fir.Horizontal, Label: "select"},
		fir.AddWidget{Widget: fir.CheckButton, Label: "second", Offset: selectOn},
		fir.CloseBox{},
	)

	return &fir.Program{
		Name:         "select",
		RealHeapSize: selectHeap,
		NumInputs:    2,
		NumOutputs:   1,
		Compute:      compute,
		ComputeKind:  fir.Real,
		UI:           ui,
	}
}
