package patches

import (
	"math"

	"github.com/rhino1998/fir/pkg/fir"
)

func init() {
	register(Patch{
		Name:        "sine",
		Description: "phase accumulating sine oscillator",
		Build:       sine,
	})
}

const (
	sineFreq = iota
	sineGain
	sinePhase
	sineOut
	sineHeap
)

func sine(sampleRate int) *fir.Program {
	initBlock := fir.NewBlock(
		pushReal(440), storeReal(sineFreq),
		pushReal(0.5), storeReal(sineGain),
		pushInt(0),
	)

	compute := fir.NewBlock(
		loadReal(sinePhase),
		pushReal(2*math.Pi),
		realOp(fir.Mul),
		fir.UnaryOp{Func: fir.Sin},
		loadReal(sineGain),
		realOp(fir.Mul),
		storeReal(sineOut),
	)
	compute.Append(loadReal(sineOut))
	compute.Append(output(0)...)

	// phase = frac(phase + freq/sr)
	compute.Append(
		pushReal(float64(sampleRate)),
		loadReal(sineFreq),
		realOp(fir.Div),
		loadReal(sinePhase),
		realOp(fir.Add),
		storeReal(sinePhase),
		loadReal(sinePhase),
		fir.UnaryOp{Func: fir.Floor},
		loadReal(sinePhase),
		realOp(fir.Sub),
		storeReal(sinePhase),
		loadReal(sineOut),
	)

	ui := fir.NewUIBlock(
		fir.OpenBox{Orientation: fir.Vertical, Label: "sine"},
		fir.Declare{Offset: sineFreq, Key: "unit", Value: "Hz"},
		fir.AddWidget{Widget: fir.HorizontalSlider, Label: "freq", Offset: sineFreq, Init: 440, Min: 20, Max: 20000, Step: 1},
		fir.AddWidget{Widget: fir.HorizontalSlider, Label: "gain", Offset: sineGain, Init: 0.5, Min: 0, Max: 1, Step: 0.01},
		fir.CloseBox{},
	)

	return &fir.Program{
		Name:         "sine",
		RealHeapSize: sineHeap,
		NumOutputs:   1,
		Init:         initBlock,
		InitKind:     fir.Int,
		Compute:      compute,
		ComputeKind:  fir.Real,
		UI:           ui,
		Meta: []fir.MetaEntry{
			{Key: "name", Value: "sine"},
		},
	}
}
