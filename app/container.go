package app

import (
	"log/slog"

	"github.com/golang/geo/r2"

	"github.com/JimmyBainbridge/Neptune-moons/config"
	"github.com/JimmyBainbridge/Neptune-moons/domain/selection"
	"github.com/JimmyBainbridge/Neptune-moons/ui/model"
	"github.com/JimmyBainbridge/Neptune-moons/ui/presenter"
	"github.com/JimmyBainbridge/Neptune-moons/ui/theme"
	"github.com/JimmyBainbridge/Neptune-moons/ui/view"
)

// Container assembles models, the selection core, presenters and the
// root view.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	Points  *selection.PointSet
	Manager *selection.Manager

	Trace   *model.Trace
	Summary *model.Summary

	Lasso  *presenter.Lasso
	Picker *presenter.Picker

	Root *view.RootView
	UI   view.UI
}

// BuildContainer constructs all components and wires the Tk widgets.
// The session-level actions (export, snapshot, exit) are owned by the
// caller. Widget callbacks dispatch through the container so the
// presenters can be wired after the views exist.
func BuildContainer(cfg *config.Config, logger *slog.Logger, pts []r2.Point, onExport, onSnapshot, onExit func()) *Container {
	c := &Container{Config: cfg, Logger: logger}
	c.Root = view.NewRootView(cfg, logger)

	cb := view.Callbacks{
		OnPress:    func(x, y float64) { c.Lasso.Press(x, y) },
		OnDrag:     func(x, y float64) { c.Lasso.Drag(x, y) },
		OnRelease:  func(x, y float64) { c.Lasso.Release(x, y) },
		OnPicked:   func(name string) { c.Picker.Picked(name) },
		OnExport:   onExport,
		OnSnapshot: onSnapshot,
		OnExit:     onExit,
	}

	// The palette caps the configured names at five; the picker layout
	// must see the same truncation the manager applies.
	pal := selection.NewPalette(cfg.Labels)
	labels := make([]selection.Label, pal.Len())
	for i := range labels {
		labels[i] = pal.Label(i)
	}
	c.Root.Build(labels, cb)
	c.Root.Plot.SetPoints(pts, theme.DefaultPoint)

	c.Points = selection.NewPointSet(pts)
	c.Manager = selection.NewManager(c.Points, c.Root.Plot.Colors(), cfg.Labels, c.Root.Plot, logger)
	c.Trace = &model.Trace{}
	c.Summary = model.NewSummary(c.Manager.Palette().Names())
	c.UI = c.Root

	c.Lasso = presenter.NewLasso(c.Trace, c.Manager, c.Root.Plot, c.Root.Plot, c.Summary, c.UI, logger)
	c.Picker = presenter.NewPicker(c.Manager, c.UI, logger)
	c.Lasso.RefreshSummary()
	return c
}
