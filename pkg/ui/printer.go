package ui

import (
	"log/slog"

	"github.com/rhino1998/fir/pkg/fir"
)

// Printer logs the layout it is given.
type Printer struct {
	logger *slog.Logger
	depth  int
}

func NewPrinter(logger *slog.Logger) *Printer {
	return &Printer{logger: logger}
}

func (p *Printer) OpenBox(orientation fir.Orientation, label string) {
	p.logger.Info("open box", "orientation", orientation, "label", label, "depth", p.depth)
	p.depth++
}

// CloseBox without a matching OpenBox is logged at depth 0.
func (p *Printer) CloseBox() {
	if p.depth > 0 {
		p.depth--
	}
	p.logger.Info("close box", "depth", p.depth)
}

func (p *Printer) AddWidget(widget fir.Widget, label string, zone *float64, init, min, max, step float64) {
	attrs := []any{"widget", widget, "label", label, "depth", p.depth, "value", *zone}
	switch {
	case widget.IsPassive():
		attrs = append(attrs, "min", min, "max", max)
	case widget == fir.Button || widget == fir.CheckButton:
	default:
		attrs = append(attrs, "init", init, "min", min, "max", max, "step", step)
	}

	p.logger.Info("add widget", attrs...)
}

func (p *Printer) Declare(zone *float64, key, value string) {
	p.logger.Info("declare", "key", key, "value", value, "global", zone == nil)
}
