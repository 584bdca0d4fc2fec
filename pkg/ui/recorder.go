package ui

import (
	"github.com/rhino1998/fir/pkg/fir"
)

type Method string

const (
	MethodOpenBox   Method = "OpenBox"
	MethodCloseBox  Method = "CloseBox"
	MethodAddWidget Method = "AddWidget"
	MethodDeclare   Method = "Declare"
)

// Call is one recorded interface call. Only the fields relevant to Method
// are set.
type Call struct {
	Method      Method
	Orientation fir.Orientation
	Widget      fir.Widget
	Label       string
	Zone        *float64

	Init float64
	Min  float64
	Max  float64
	Step float64

	Key   string
	Value string
}

// Recorder keeps every call it receives, in order.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) OpenBox(orientation fir.Orientation, label string) {
	r.Calls = append(r.Calls, Call{Method: MethodOpenBox, Orientation: orientation, Label: label})
}

func (r *Recorder) CloseBox() {
	r.Calls = append(r.Calls, Call{Method: MethodCloseBox})
}

func (r *Recorder) AddWidget(widget fir.Widget, label string, zone *float64, init, min, max, step float64) {
	r.Calls = append(r.Calls, Call{
		Method: MethodAddWidget,
		Widget: widget,
		Label:  label,
		Zone:   zone,
		Init:   init,
		Min:    min,
		Max:    max,
		Step:   step,
	})
}

func (r *Recorder) Declare(zone *float64, key, value string) {
	r.Calls = append(r.Calls, Call{Method: MethodDeclare, Zone: zone, Key: key, Value: value})
}
