package view

import (
	"log/slog"

	"github.com/JimmyBainbridge/Neptune-moons/config"
	"github.com/JimmyBainbridge/Neptune-moons/domain/selection"
	"github.com/JimmyBainbridge/Neptune-moons/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Callbacks groups the user-action handlers the root view wires to its
// widgets. All funcs must be non-nil.
type Callbacks struct {
	OnPress    func(x, y float64)
	OnDrag     func(x, y float64)
	OnRelease  func(x, y float64)
	OnPicked   func(name string)
	OnExport   func()
	OnSnapshot func()
	OnExit     func()
}

// UI abstracts the subset of view operations needed by presenters,
// decoupling them from the concrete RootView implementation.
type UI interface {
	SetActiveLabel(name string)
	SetCounts(names []string, counts []int, unassigned int)
}

// RootView composes the top-level application layout: the scatter
// canvas on the left, the label picker and session buttons on the
// right, the summary bar along the bottom.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Plot    *PlotView
	Picker  LabelPicker
	Summary SummaryBar
}

// NewRootView returns an unbuilt root view.
func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout. labels drive the picker; handlers are
// invoked on user actions.
func (rv *RootView) Build(labels []selection.Label, cb Callbacks) {
	if rv == nil {
		return
	}
	rv.Plot = NewPlotView(rv.cfg.CanvasWidth, rv.cfg.CanvasHeight, rv.cfg.PointRadius, rv.logger)
	canvas := rv.Plot.Build(cb.OnPress, cb.OnDrag, cb.OnRelease)
	Grid(canvas, Row(0), Column(0), Rowspan(3), Sticky("nsew"), Padx("0.4m"), Pady("0.4m"))

	rv.Picker = NewLabelPicker(labels, cb.OnPicked)
	Grid(rv.Picker.Frame(), Row(0), Column(1), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(1), Column(1), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	exportBtn := Button(Txt("Export"), Command(cb.OnExport))
	Grid(exportBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	snapshotBtn := Button(Txt("Snapshot"), Command(cb.OnSnapshot))
	Grid(snapshotBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	doneBtn := Button(Txt("Done"), Style(theme.StylePrimaryButton), Command(cb.OnExit))
	Grid(doneBtn, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	initialActive := ""
	if len(labels) > 0 {
		initialActive = labels[0].Name
	}
	rv.Summary = NewSummaryBar(initialActive)
	Grid(rv.Summary.Frame(), Row(3), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.2m"))

	GridRowConfigure(App, 0, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))
}

// SetActiveLabel proxies to the summary bar.
func (rv *RootView) SetActiveLabel(name string) {
	if rv != nil && rv.Summary != nil {
		rv.Summary.SetActiveLabel(name)
	}
}

// SetCounts proxies to the summary bar.
func (rv *RootView) SetCounts(names []string, counts []int, unassigned int) {
	if rv != nil && rv.Summary != nil {
		rv.Summary.SetCounts(names, counts, unassigned)
	}
}
