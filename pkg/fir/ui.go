package fir

import "fmt"

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
	Tab
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Tab:
		return "tab"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

type Widget int

const (
	Button Widget = iota
	CheckButton
	HorizontalSlider
	VerticalSlider
	NumEntry
	HorizontalBargraph
	VerticalBargraph
)

func (w Widget) String() string {
	switch w {
	case Button:
		return "button"
	case CheckButton:
		return "checkbox"
	case HorizontalSlider:
		return "hslider"
	case VerticalSlider:
		return "vslider"
	case NumEntry:
		return "nentry"
	case HorizontalBargraph:
		return "hbargraph"
	case VerticalBargraph:
		return "vbargraph"
	default:
		return fmt.Sprintf("widget(%d)", int(w))
	}
}

// IsPassive reports whether the widget displays a value computed by the
// program rather than supplying one.
func (w Widget) IsPassive() bool {
	return w == HorizontalBargraph || w == VerticalBargraph
}

// NoZone is the Declare offset for metadata that is not bound to a cell.
const NoZone = -1

// UIInstruction is a single step of a user-interface description.
type UIInstruction interface {
	String() string

	uiInstruction()
}

type OpenBox struct {
	Orientation Orientation
	Label       string
}

func (OpenBox) uiInstruction() {}
func (o OpenBox) String() string {
	return fmt.Sprintf("open.%s %q", o.Orientation, o.Label)
}

type CloseBox struct{}

func (CloseBox) uiInstruction()   {}
func (CloseBox) String() string { return "close" }

// AddWidget binds a widget to the real heap cell at Offset. Bargraphs only
// use Min and Max.
type AddWidget struct {
	Widget Widget
	Label  string
	Offset int
	Init   float64
	Min    float64
	Max    float64
	Step   float64
}

func (AddWidget) uiInstruction() {}
func (a AddWidget) String() string {
	switch a.Widget {
	case Button, CheckButton:
		return fmt.Sprintf("%s %q [%d]", a.Widget, a.Label, a.Offset)
	case HorizontalBargraph, VerticalBargraph:
		return fmt.Sprintf("%s %q [%d] min=%g max=%g", a.Widget, a.Label, a.Offset, a.Min, a.Max)
	default:
		return fmt.Sprintf("%s %q [%d] init=%g min=%g max=%g step=%g", a.Widget, a.Label, a.Offset, a.Init, a.Min, a.Max, a.Step)
	}
}

type Declare struct {
	Offset int
	Key    string
	Value  string
}

func (Declare) uiInstruction() {}
func (d Declare) String() string {
	if d.Offset == NoZone {
		return fmt.Sprintf("declare %q=%q", d.Key, d.Value)
	}
	return fmt.Sprintf("declare [%d] %q=%q", d.Offset, d.Key, d.Value)
}

type UIBlock struct {
	instrs []UIInstruction
}

func NewUIBlock(instrs ...UIInstruction) *UIBlock {
	return &UIBlock{instrs: instrs}
}

func (b *UIBlock) Append(instrs ...UIInstruction) *UIBlock {
	b.instrs = append(b.instrs, instrs...)
	return b
}

func (b *UIBlock) Len() int {
	if b == nil {
		return 0
	}
	return len(b.instrs)
}

func (b *UIBlock) Instructions() []UIInstruction {
	if b == nil {
		return nil
	}
	return b.instrs
}
