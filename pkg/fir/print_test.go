package fir_test

import (
	"strings"
	"testing"

	"github.com/rhino1998/fir/pkg/fir"
	"github.com/stretchr/testify/require"
)

func TestFprint(t *testing.T) {
	r := require.New(t)

	block := fir.NewBlock(
		fir.Load{Kind: fir.Int, Offset: 0},
		fir.If{
			Kind: fir.Real,
			Then: fir.NewBlock(fir.PushReal{Value: 1.5}),
			Else: fir.NewBlock(fir.PushReal{Value: 2}, fir.UnaryOp{Func: fir.Sin}),
		},
	)

	var sb strings.Builder
	r.NoError(fir.Fprint(&sb, block))

	expected := strings.Join([]string{
		"0000 int.load [0]",
		"0001 if.real",
		"  then:",
		"    0000 real.push 1.5",
		"  else:",
		"    0000 real.push 2",
		"    0001 sin",
		"",
	}, "\n")
	r.Equal(expected, sb.String())
}

func TestFprintUI(t *testing.T) {
	r := require.New(t)

	block := fir.NewUIBlock(
		fir.OpenBox{Orientation: fir.Vertical, Label: "main"},
		fir.AddWidget{Widget: fir.CheckButton, Label: "bypass", Offset: 0},
		fir.CloseBox{},
	)

	var sb strings.Builder
	r.NoError(fir.FprintUI(&sb, block))
	r.Equal("open.vertical \"main\"\n  checkbox \"bypass\" [0]\nclose\n", sb.String())
}
