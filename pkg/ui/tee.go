package ui

import (
	"github.com/rhino1998/fir/pkg/fir"
)

// Builder is the set of calls issued by the user-interface pass.
type Builder interface {
	OpenBox(orientation fir.Orientation, label string)
	CloseBox()
	AddWidget(widget fir.Widget, label string, zone *float64, init, min, max, step float64)
	Declare(zone *float64, key, value string)
}

// Tee forwards every call to each of its builders in order.
type Tee []Builder

func (t Tee) OpenBox(orientation fir.Orientation, label string) {
	for _, b := range t {
		b.OpenBox(orientation, label)
	}
}

func (t Tee) CloseBox() {
	for _, b := range t {
		b.CloseBox()
	}
}

func (t Tee) AddWidget(widget fir.Widget, label string, zone *float64, init, min, max, step float64) {
	for _, b := range t {
		b.AddWidget(widget, label, zone, init, min, max, step)
	}
}

func (t Tee) Declare(zone *float64, key, value string) {
	for _, b := range t {
		b.Declare(zone, key, value)
	}
}
