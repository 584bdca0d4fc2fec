package ui_test

import (
	"errors"
	"testing"

	"github.com/rhino1998/fir/pkg/fir"
	"github.com/rhino1998/fir/pkg/ui"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	build := func() (*ui.Map, []float64) {
		cells := make([]float64, 3)

		m := ui.NewMap()
		m.Declare(nil, "name", "test")
		m.OpenBox(fir.Vertical, "main")
		m.Declare(&cells[0], "unit", "Hz")
		m.AddWidget(fir.HorizontalSlider, "freq", &cells[0], 440, 20, 20000, 1)
		m.OpenBox(fir.Horizontal, "")
		m.AddWidget(fir.CheckButton, "mute", &cells[1], 0, 0, 0, 0)
		m.CloseBox()
		m.AddWidget(fir.HorizontalBargraph, "level", &cells[2], 0, -60, 0, 0)
		m.CloseBox()

		return m, cells
	}

	t.Run("paths", func(t *testing.T) {
		r := require.New(t)
		m, _ := build()

		r.Equal([]string{"/main/freq", "/main/mute", "/main/level"}, m.Paths())
		r.Equal(map[string]string{"name": "test"}, m.Meta())

		entry, err := m.Lookup("freq")
		r.NoError(err)
		r.Equal("/main/freq", entry.Path)
		r.Equal(map[string]string{"unit": "Hz"}, entry.Meta)
	})

	t.Run("set clamps", func(t *testing.T) {
		r := require.New(t)
		m, cells := build()

		r.NoError(m.Set("/main/freq", 1000))
		r.Equal(1000.0, cells[0])

		r.NoError(m.Set("freq", 1e6))
		r.Equal(20000.0, cells[0])

		r.NoError(m.Set("mute", 5))
		r.Equal(1.0, cells[1])

		v, err := m.Get("/main/freq")
		r.NoError(err)
		r.Equal(20000.0, v)
	})

	t.Run("unknown", func(t *testing.T) {
		r := require.New(t)
		m, _ := build()

		err := m.Set("/main/nope", 1)
		r.True(errors.Is(err, ui.ErrUnknownParam))

		_, err = m.Get("nope")
		r.True(errors.Is(err, ui.ErrUnknownParam))
	})

	t.Run("reset", func(t *testing.T) {
		r := require.New(t)
		m, cells := build()

		cells[2] = -12
		m.Reset()
		r.Equal([]float64{440, 0, -12}, cells)
	})
}

func TestMap_DuplicatePath(t *testing.T) {
	r := require.New(t)
	cells := make([]float64, 2)

	m := ui.NewMap()
	m.OpenBox(fir.Vertical, "main")
	m.AddWidget(fir.HorizontalSlider, "gain", &cells[0], 0, 0, 1, 0.1)
	m.AddWidget(fir.HorizontalSlider, "gain", &cells[1], 0, 0, 10, 0.1)
	m.CloseBox()

	r.Equal([]string{"/main/gain"}, m.Duplicates())

	r.NoError(m.Set("/main/gain", 0.5))
	r.Equal([]float64{0.5, 0}, cells)

	r.NoError(m.Set("gain", 5))
	r.Equal([]float64{1, 0}, cells)
}

func TestTee(t *testing.T) {
	r := require.New(t)

	var a, b ui.Recorder
	cell := 0.0

	tee := ui.Tee{&a, &b}
	tee.OpenBox(fir.Tab, "tabs")
	tee.AddWidget(fir.Button, "go", &cell, 0, 0, 1, 0)
	tee.Declare(nil, "k", "v")
	tee.CloseBox()

	r.Len(a.Calls, 4)
	r.Equal(a.Calls, b.Calls)
	r.Equal(ui.MethodDeclare, a.Calls[2].Method)
}
