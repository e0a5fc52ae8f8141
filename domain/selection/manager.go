package selection

import (
	"log/slog"

	"github.com/JimmyBainbridge/Neptune-moons/domain/geometry"
)

// Renderer is the narrow surface the manager needs from whatever draws
// the points. ApplyColors hands over the full per-point color slice
// after a change; RequestRedraw is a fire-and-forget hint that the
// visible state is stale. Neither call may block.
type Renderer interface {
	ApplyColors(colors []RGBA)
	RequestRedraw()
}

// Manager owns the point-to-label mask and keeps the rendered colors
// consistent with it at all times. It is the sole writer of both; read
// access for display or export is unrestricted.
//
// All methods must be called from the UI event loop: gestures and
// label picks arrive strictly one at a time, so no locking is done.
type Manager struct {
	points   *PointSet
	palette  *Palette
	mask     Mask
	colors   []RGBA
	renderer Renderer
	logger   *slog.Logger
}

// NewManager builds a manager over a fixed point snapshot. initial
// holds the renderer's current per-point colors; they double as the
// "unassigned" color a point reverts to conceptually when it was never
// lassoed. A short or nil initial slice is padded with opaque black.
// labelNames beyond MaxLabels are dropped silently.
func NewManager(points *PointSet, initial []RGBA, labelNames []string, renderer Renderer, logger *slog.Logger) *Manager {
	n := points.Len()
	colors := make([]RGBA, n)
	for i := range colors {
		if i < len(initial) {
			colors[i] = initial[i]
		} else {
			colors[i] = RGBA{A: 1}
		}
	}
	return &Manager{
		points:   points,
		palette:  NewPalette(labelNames),
		mask:     NewMask(n),
		colors:   colors,
		renderer: renderer,
		logger:   logger,
	}
}

// OnLoopClosed assigns the active label to every point enclosed by the
// completed lasso loop, inclusive of points on its boundary. Points
// outside the loop keep whatever label and color they already had;
// re-lassoing a point overwrites its previous assignment. A loop that
// encloses nothing is a valid no-op.
//
// Loops with fewer than three vertices cannot enclose anything and are
// ignored; the gesture collaborator is expected not to deliver them.
func (m *Manager) OnLoopClosed(loop geometry.Loop) {
	if m == nil || !loop.Valid() {
		return
	}
	if m.palette.Len() == 0 {
		if m.logger != nil {
			m.logger.Warn("lasso ignored: no labels configured")
		}
		return
	}
	active := m.palette.Active()
	bound := loop.BoundingBox()
	touched := 0
	for i := 0; i < m.points.Len(); i++ {
		p := m.points.At(i)
		if !bound.ContainsPoint(p) {
			continue
		}
		if !loop.ContainsPoint(p) {
			continue
		}
		m.colors[i] = active.Color
		m.mask[i] = active.Index
		touched++
	}
	if m.renderer != nil {
		m.renderer.ApplyColors(m.Colors())
		m.renderer.RequestRedraw()
	}
	if m.logger != nil {
		m.logger.Debug("lasso applied",
			slog.String("label", active.Name),
			slog.Int("label_index", active.Index),
			slog.Int("vertices", len(loop)),
			slog.Int("points", touched),
		)
	}
}

// OnLabelChosen makes the named label the target of subsequent
// gestures. Already-assigned points are untouched. Returns
// ErrUnknownLabel when the name is not configured.
func (m *Manager) OnLabelChosen(name string) error {
	if m == nil {
		return nil
	}
	if err := m.palette.Activate(name); err != nil {
		return err
	}
	// No point colors change, but the picker expects a refresh.
	if m.renderer != nil {
		m.renderer.RequestRedraw()
	}
	if m.logger != nil {
		m.logger.Debug("active label changed",
			slog.String("label", name),
			slog.Int("label_index", m.palette.ActiveIndex()),
		)
	}
	return nil
}

// MaskValues returns a copy of the current mask: one entry per point,
// Unassigned or a label index. This is the artifact worth persisting,
// always paired with the PointSet it was computed against.
func (m *Manager) MaskValues() Mask {
	if m == nil {
		return nil
	}
	return m.mask.Clone()
}

// Colors returns a copy of the current per-point render colors.
func (m *Manager) Colors() []RGBA {
	if m == nil {
		return nil
	}
	cp := make([]RGBA, len(m.colors))
	copy(cp, m.colors)
	return cp
}

// Palette returns the label palette. Callers may read it or switch the
// active label through the manager; they must not mutate entries.
func (m *Manager) Palette() *Palette { return m.palette }

// Points returns the point snapshot the manager was built over.
func (m *Manager) Points() *PointSet { return m.points }
