package presenter

import (
	"log/slog"
)

// LabelTarget is the label-switching surface of the selection core.
type LabelTarget interface {
	OnLabelChosen(name string) error
}

// ActiveView shows which label subsequent gestures will assign.
type ActiveView interface {
	SetActiveLabel(name string)
}

// Picker relays label picks from the radio widget to the selection
// core. A rejected name is logged, not propagated; the widget only
// offers configured names.
type Picker struct {
	target LabelTarget
	view   ActiveView
	logger *slog.Logger
}

// NewPicker returns a wired picker presenter.
func NewPicker(target LabelTarget, view ActiveView, logger *slog.Logger) *Picker {
	return &Picker{target: target, view: view, logger: logger}
}

// Picked handles one label selection event.
func (p *Picker) Picked(name string) {
	if p == nil || p.target == nil {
		return
	}
	if err := p.target.OnLabelChosen(name); err != nil {
		if p.logger != nil {
			p.logger.Error("label pick rejected", slog.String("label", name), slog.String("error", err.Error()))
		}
		return
	}
	if p.view != nil {
		p.view.SetActiveLabel(name)
	}
}
