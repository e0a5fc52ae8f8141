package view

import (
	"github.com/JimmyBainbridge/Neptune-moons/domain/selection"
	"github.com/JimmyBainbridge/Neptune-moons/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// LabelPicker offers one radio button per configured label, restricted
// to the configured names, plus a swatch in the label's palette color.
type LabelPicker interface {
	Frame() *FrameWidget
}

type labelPicker struct {
	frame *FrameWidget
}

// NewLabelPicker builds the radio group inside its own frame. onPicked
// fires once per click with the chosen label name. The first label is
// preselected to match the palette's initial active index.
func NewLabelPicker(labels []selection.Label, onPicked func(name string)) LabelPicker {
	lp := &labelPicker{frame: Frame()}
	for i, lab := range labels {
		name := lab.Name
		swatch := Label(Txt("  "), Background(theme.Hex(lab.Color)), Relief("ridge"))
		Grid(swatch, In(lp.frame), Row(i), Column(0), Padx("0.4m"), Pady("0.2m"))
		rbVar := Variable("activeLabel")
		rb := Radiobutton(Txt(name), rbVar, Value(name),
			Command(func() { onPicked(name) }))
		Grid(rb, In(lp.frame), Row(i), Column(1), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
		if i == 0 {
			rbVar.Set(name)
		}
	}
	return lp
}

// Frame returns the container widget for placement by the root view.
func (lp *labelPicker) Frame() *FrameWidget { return lp.frame }
