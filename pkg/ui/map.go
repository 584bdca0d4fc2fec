// Package ui provides collaborators for the user-interface pass of the
// interpreter.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rhino1998/fir/pkg/fir"
)

var ErrUnknownParam = errors.New("unknown parameter")

// Entry describes one widget and the heap cell it is bound to.
type Entry struct {
	Path   string
	Label  string
	Widget fir.Widget
	Zone   *float64

	Init float64
	Min  float64
	Max  float64
	Step float64

	Meta map[string]string
}

func (e *Entry) clamp(v float64) float64 {
	if e.Min == e.Max {
		return v
	}
	return min(max(v, e.Min), e.Max)
}

// Map indexes widgets by their slash-separated box path ("/main/gain") and
// by their bare label. When paths or labels repeat, the first widget wins.
type Map struct {
	boxes []string

	entries []*Entry
	byPath  map[string]*Entry
	byLabel map[string]*Entry

	duplicates []string

	pending map[*float64]map[string]string
	meta    map[string]string
}

func NewMap() *Map {
	return &Map{
		byPath:  make(map[string]*Entry),
		byLabel: make(map[string]*Entry),
		pending: make(map[*float64]map[string]string),
		meta:    make(map[string]string),
	}
}

func (m *Map) OpenBox(orientation fir.Orientation, label string) {
	m.boxes = append(m.boxes, label)
}

func (m *Map) CloseBox() {
	if len(m.boxes) > 0 {
		m.boxes = m.boxes[:len(m.boxes)-1]
	}
}

func (m *Map) path(label string) string {
	var parts []string
	for _, box := range m.boxes {
		if box != "" {
			parts = append(parts, box)
		}
	}
	parts = append(parts, label)

	return "/" + strings.Join(parts, "/")
}

func (m *Map) AddWidget(widget fir.Widget, label string, zone *float64, init, min, max, step float64) {
	entry := &Entry{
		Path:   m.path(label),
		Label:  label,
		Widget: widget,
		Zone:   zone,
		Init:   init,
		Min:    min,
		Max:    max,
		Step:   step,
		Meta:   m.pending[zone],
	}
	delete(m.pending, zone)

	if entry.Widget == fir.Button || entry.Widget == fir.CheckButton {
		entry.Max = 1
	}

	m.entries = append(m.entries, entry)
	if _, ok := m.byPath[entry.Path]; ok {
		m.duplicates = append(m.duplicates, entry.Path)
	} else {
		m.byPath[entry.Path] = entry
	}
	if _, ok := m.byLabel[label]; !ok {
		m.byLabel[label] = entry
	}
}

// Declare attaches metadata to the next widget bound to zone, or to the
// whole surface when zone is nil.
func (m *Map) Declare(zone *float64, key, value string) {
	if zone == nil {
		m.meta[key] = value
		return
	}

	for _, entry := range m.entries {
		if entry.Zone == zone {
			if entry.Meta == nil {
				entry.Meta = make(map[string]string)
			}
			entry.Meta[key] = value
			return
		}
	}

	if m.pending[zone] == nil {
		m.pending[zone] = make(map[string]string)
	}
	m.pending[zone][key] = value
}

func (m *Map) Lookup(name string) (*Entry, error) {
	if entry, ok := m.byPath[name]; ok {
		return entry, nil
	}

	if entry, ok := m.byLabel[name]; ok {
		return entry, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownParam, name)
}

// Set writes v, clamped to the widget range, to the cell bound to name.
// Name is either a full path or a bare label.
func (m *Map) Set(name string, v float64) error {
	entry, err := m.Lookup(name)
	if err != nil {
		return err
	}

	*entry.Zone = entry.clamp(v)

	return nil
}

func (m *Map) Get(name string) (float64, error) {
	entry, err := m.Lookup(name)
	if err != nil {
		return 0, err
	}

	return *entry.Zone, nil
}

// Reset writes each active widget's initial value to its cell.
func (m *Map) Reset() {
	for _, entry := range m.entries {
		if !entry.Widget.IsPassive() {
			*entry.Zone = entry.Init
		}
	}
}

func (m *Map) Paths() []string {
	paths := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		paths = append(paths, entry.Path)
	}
	return paths
}

// Duplicates lists the paths shared by more than one widget, once per
// widget that was shadowed.
func (m *Map) Duplicates() []string {
	return m.duplicates
}

func (m *Map) Entries() []*Entry {
	return m.entries
}

func (m *Map) Meta() map[string]string {
	return m.meta
}
