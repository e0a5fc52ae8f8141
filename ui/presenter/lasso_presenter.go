package presenter

import (
	"log/slog"
	"math"

	"github.com/golang/geo/r2"

	"github.com/JimmyBainbridge/Neptune-moons/domain/geometry"
	"github.com/JimmyBainbridge/Neptune-moons/domain/selection"
	"github.com/JimmyBainbridge/Neptune-moons/ui/model"
)

// minTrailStep is the minimum mouse travel, in canvas pixels, between
// recorded gesture vertices. Motion events arrive far denser than the
// containment test needs; sub-pixel jitter is dropped here, before
// projection, so the threshold is independent of the data range.
const minTrailStep = 1.0

// SelectionTarget is the slice of the selection core the lasso
// presenter drives.
type SelectionTarget interface {
	OnLoopClosed(loop geometry.Loop)
	MaskValues() selection.Mask
}

// Projector converts canvas pixel coordinates into data coordinates.
type Projector interface {
	ToData(x, y float64) r2.Point
}

// TrailView draws the in-progress lasso trail in canvas coordinates.
type TrailView interface {
	ExtendTrail(x, y float64)
	ClearTrail()
}

// SummaryView displays per-label tallies.
type SummaryView interface {
	SetCounts(names []string, counts []int, unassigned int)
}

// Lasso turns raw canvas mouse events into completed lasso gestures.
// The selection target is invoked exactly once per completed gesture
// and never for abandoned or degenerate ones.
type Lasso struct {
	trace   *model.Trace
	target  SelectionTarget
	proj    Projector
	trail   TrailView
	summary *model.Summary
	sumView SummaryView
	logger  *slog.Logger

	// last recorded canvas position, for the jitter filter
	lastX, lastY float64
}

// NewLasso returns a wired lasso presenter. trail, summary and sumView
// may be nil; the gesture pipeline works without them.
func NewLasso(trace *model.Trace, target SelectionTarget, proj Projector, trail TrailView, summary *model.Summary, sumView SummaryView, logger *slog.Logger) *Lasso {
	return &Lasso{trace: trace, target: target, proj: proj, trail: trail, summary: summary, sumView: sumView, logger: logger}
}

// Press starts a gesture at canvas position (x, y).
func (p *Lasso) Press(x, y float64) {
	if p == nil || p.trace == nil || p.proj == nil {
		return
	}
	p.trace.Begin(p.proj.ToData(x, y))
	p.lastX, p.lastY = x, y
	if p.trail != nil {
		p.trail.ClearTrail()
		p.trail.ExtendTrail(x, y)
	}
}

// Drag extends the in-progress gesture. Events within minTrailStep
// canvas pixels of the last recorded vertex are dropped.
func (p *Lasso) Drag(x, y float64) {
	if p == nil || p.trace == nil || p.proj == nil || !p.trace.Active() {
		return
	}
	if math.Hypot(x-p.lastX, y-p.lastY) < minTrailStep {
		return
	}
	p.trace.Extend(p.proj.ToData(x, y))
	p.lastX, p.lastY = x, y
	if p.trail != nil {
		p.trail.ExtendTrail(x, y)
	}
}

// Release completes the gesture. Gestures that collected fewer than
// three vertices are discarded without touching the selection target.
func (p *Lasso) Release(x, y float64) {
	if p == nil || p.trace == nil || p.proj == nil {
		return
	}
	if math.Hypot(x-p.lastX, y-p.lastY) >= minTrailStep {
		p.trace.Extend(p.proj.ToData(x, y))
	}
	if p.trail != nil {
		p.trail.ClearTrail()
	}
	loop, ok := p.trace.Close()
	if !ok {
		if p.logger != nil {
			p.logger.Debug("lasso gesture discarded: too few vertices")
		}
		return
	}
	if p.target != nil {
		p.target.OnLoopClosed(loop)
	}
	p.RefreshSummary()
}

// RefreshSummary recomputes label tallies from the current mask and
// pushes them to the summary view.
func (p *Lasso) RefreshSummary() {
	if p == nil || p.summary == nil || p.sumView == nil || p.target == nil {
		return
	}
	p.summary.Update(p.target.MaskValues())
	p.sumView.SetCounts(p.summary.Names(), p.summary.Counts(), p.summary.Unassigned())
}
