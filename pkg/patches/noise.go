package patches

import (
	"github.com/rhino1998/fir/pkg/fir"
)

func init() {
	register(Patch{
		Name:        "noise",
		Description: "white noise from a linear congruential generator",
		Build:       noise,
	})
}

const (
	noiseGain = iota
	noiseLevel
	noiseOut
	noiseHeap
)

const noiseSeed = 0

func noise(sampleRate int) *fir.Program {
	initBlock := fir.NewBlock(pushReal(0.5), storeReal(noiseGain), pushInt(0))

	compute := fir.NewBlock(
		// seed = seed*1103515245 + 12345, wrapping
		pushInt(12345),
		pushInt(1103515245),
		loadInt(noiseSeed),
		intOp(fir.Mul),
		intOp(fir.Add),
		storeInt(noiseSeed),

		loadInt(noiseSeed),
		fir.Cast{To: fir.Real},
		pushReal(1.0/2147483648.0),
		realOp(fir.Mul),
		loadReal(noiseGain),
		realOp(fir.Mul),
		storeReal(noiseOut),

		loadReal(noiseOut),
		fir.UnaryOp{Func: fir.Abs},
		storeReal(noiseLevel),
	)
	compute.Append(loadReal(noiseOut))
	compute.Append(output(0)...)
	compute.Append(loadReal(noiseOut))

	ui := fir.NewUIBlock(
		fir.OpenBox{Orientation: fir.Vertical, Label: "noise"},
		fir.AddWidget{Widget: fir.HorizontalSlider, Label: "gain", Offset: noiseGain, Init: 0.5, Min: 0, Max: 1, Step: 0.01},
		fir.AddWidget{Widget: fir.HorizontalBargraph, Label: "level", Offset: noiseLevel, Min: 0, Max: 1},
		fir.CloseBox{},
	)

	return &fir.Program{
		Name:         "noise",
		RealHeapSize: noiseHeap,
		IntHeapSize:  1,
		NumOutputs:   1,
		Init:         initBlock,
		InitKind:     fir.Int,
		Compute:      compute,
		ComputeKind:  fir.Real,
		UI:           ui,
	}
}
