package selection

import (
	"errors"
	"fmt"
)

// MaxLabels caps the number of label categories a palette can hold.
const MaxLabels = 5

// ErrUnknownLabel is returned when a label name is not part of the
// configured palette.
var ErrUnknownLabel = errors.New("unknown label")

// RGBA is a render color with components normalized to [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// fallbackColors are assigned strictly by palette position, regardless
// of label name: yellow, blue, green, red, white.
var fallbackColors = [MaxLabels]RGBA{
	{0.75, 0.75, 0.0, 1.0},
	{0.0, 0.0, 1.0, 1.0},
	{0.0, 1.0, 0.0, 1.0},
	{1.0, 0.0, 0.0, 1.0},
	{1.0, 1.0, 1.0, 1.0},
}

// Label pairs a category name with its render color and its fixed
// position in the palette.
type Label struct {
	Name  string
	Color RGBA
	Index int
}

// Palette is the ordered set of configured labels plus the index of
// the currently active one. Mutable only through Activate.
type Palette struct {
	labels []Label
	active int
}

// NewPalette builds a palette from the given names. Supplying more
// than MaxLabels names keeps only the first MaxLabels; the surplus is
// dropped silently. The first label starts out active.
func NewPalette(names []string) *Palette {
	if len(names) > MaxLabels {
		names = names[:MaxLabels]
	}
	labels := make([]Label, len(names))
	for i, name := range names {
		labels[i] = Label{Name: name, Color: fallbackColors[i], Index: i}
	}
	return &Palette{labels: labels}
}

// Len returns the number of configured labels.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.labels)
}

// Label returns the entry at position i.
func (p *Palette) Label(i int) Label { return p.labels[i] }

// Names returns the configured label names in palette order.
func (p *Palette) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, len(p.labels))
	for i, l := range p.labels {
		names[i] = l.Name
	}
	return names
}

// ActiveIndex returns the position of the active label.
func (p *Palette) ActiveIndex() int {
	if p == nil {
		return 0
	}
	return p.active
}

// Active returns the active label entry. Calling it on an empty
// palette panics; callers must check Len first.
func (p *Palette) Active() Label { return p.labels[p.active] }

// Activate makes the named label active. Subsequent gestures assign
// that label. Returns ErrUnknownLabel when name is not configured.
func (p *Palette) Activate(name string) error {
	for i, l := range p.labels {
		if l.Name == name {
			p.active = i
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownLabel, name)
}
