package patches

import (
	"github.com/rhino1998/fir/pkg/fir"
)

func init() {
	register(Patch{
		Name:        "gain",
		Description: "stereo volume control",
		Build:       gain,
	})
}

func gain(sampleRate int) *fir.Program {
	initBlock := fir.NewBlock(pushReal(1), storeReal(0), pushInt(0))

	compute := fir.NewBlock()
	for ch := int32(0); ch < 2; ch++ {
		compute.Append(input(ch)...)
		compute.Append(loadReal(0), realOp(fir.Mul))
		compute.Append(output(ch)...)
	}
	compute.Append(pushInt(0))

	ui := fir.NewUIBlock(
		fir.OpenBox{Orientation: fir.Horizontal, Label: "gain"},
		fir.AddWidget{Widget: fir.VerticalSlider, Label: "volume", Offset: 0, Init: 1, Min: 0, Max: 2, Step: 0.01},
		fir.CloseBox{},
	)

	return &fir.Program{
		Name:         "gain",
		RealHeapSize: 1,
		NumInputs:    2,
		NumOutputs:   2,
		Init:         initBlock,
		InitKind:     fir.Int,
		Compute:      compute,
		ComputeKind:  fir.Int,
		UI:           ui,
	}
}
