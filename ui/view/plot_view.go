package view

import (
	"log/slog"
	"math"
	"time"

	"github.com/golang/geo/r2"

	"github.com/JimmyBainbridge/Neptune-moons/domain/selection"
	"github.com/JimmyBainbridge/Neptune-moons/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// plotMargin keeps points away from the canvas border, in pixels.
const plotMargin = 24.0

// repaintDelay coalesces repaint requests; Tk event bursts (mouse
// motion) would otherwise redraw per event.
const repaintDelay = 16 * time.Millisecond

// PlotView renders the scatter on a Tk canvas, forwards mouse gestures
// and draws the in-progress lasso trail. It satisfies the selection
// core's Renderer contract and the presenters' Projector and TrailView
// contracts.
type PlotView struct {
	logger *slog.Logger
	canvas *CanvasWidget

	width, height float64
	radius        float64

	pts    []r2.Point
	colors []selection.RGBA
	trail  []float64 // flattened canvas coordinates of the lasso trail

	// data-to-canvas transform
	scale      float64
	minX, minY float64
	padX, padY float64

	pending bool
}

// NewPlotView returns an unbuilt plot view with the given canvas size
// and point radius in pixels.
func NewPlotView(width, height, pointRadius int, logger *slog.Logger) *PlotView {
	return &PlotView{
		logger: logger,
		width:  float64(width),
		height: float64(height),
		radius: float64(pointRadius),
		scale:  1,
	}
}

// Build creates the canvas widget and binds the mouse handlers. The
// returned widget is placed by the caller.
func (pv *PlotView) Build(onPress, onDrag, onRelease func(x, y float64)) *CanvasWidget {
	pv.canvas = Canvas(Width(int(pv.width)), Height(int(pv.height)), Background(theme.ColorPlotBg))
	Bind(pv.canvas, "<ButtonPress-1>", Command(func(e *Event) {
		onPress(float64(e.X), float64(e.Y))
	}))
	Bind(pv.canvas, "<B1-Motion>", Command(func(e *Event) {
		onDrag(float64(e.X), float64(e.Y))
	}))
	Bind(pv.canvas, "<ButtonRelease-1>", Command(func(e *Event) {
		onRelease(float64(e.X), float64(e.Y))
	}))
	return pv.canvas
}

// SetPoints loads the coordinate snapshot, fits it to the canvas and
// paints every point in the base color.
func (pv *PlotView) SetPoints(pts []r2.Point, base selection.RGBA) {
	pv.pts = make([]r2.Point, len(pts))
	copy(pv.pts, pts)
	pv.colors = make([]selection.RGBA, len(pts))
	for i := range pv.colors {
		pv.colors[i] = base
	}
	pv.fitTransform()
	pv.repaint()
}

// Colors returns a copy of the current per-point render colors. The
// selection manager reads these at construction as the pre-labeling
// state.
func (pv *PlotView) Colors() []selection.RGBA {
	cp := make([]selection.RGBA, len(pv.colors))
	copy(cp, pv.colors)
	return cp
}

// ApplyColors replaces the per-point render colors. Painting happens on
// the next redraw.
func (pv *PlotView) ApplyColors(colors []selection.RGBA) {
	if len(colors) != len(pv.colors) {
		if pv.logger != nil {
			pv.logger.Warn("color buffer length mismatch",
				slog.Int("got", len(colors)), slog.Int("want", len(pv.colors)))
		}
		return
	}
	copy(pv.colors, colors)
}

// RequestRedraw schedules a coalesced repaint on the Tk event loop and
// returns immediately.
func (pv *PlotView) RequestRedraw() {
	if pv.pending || pv.canvas == nil {
		return
	}
	pv.pending = true
	TclAfter(repaintDelay, func() {
		pv.pending = false
		pv.repaint()
	})
}

// ToData converts canvas pixel coordinates into data coordinates.
func (pv *PlotView) ToData(x, y float64) r2.Point {
	return r2.Point{
		X: (x-plotMargin-pv.padX)/pv.scale + pv.minX,
		Y: (pv.height-y-plotMargin-pv.padY)/pv.scale + pv.minY,
	}
}

// toCanvas converts data coordinates into canvas pixel coordinates.
// The y axis flips: data y grows upward, canvas y downward.
func (pv *PlotView) toCanvas(p r2.Point) (x, y float64) {
	x = plotMargin + pv.padX + (p.X-pv.minX)*pv.scale
	y = pv.height - (plotMargin + pv.padY + (p.Y-pv.minY)*pv.scale)
	return x, y
}

// ExtendTrail appends a canvas-space vertex to the lasso trail.
func (pv *PlotView) ExtendTrail(x, y float64) {
	pv.trail = append(pv.trail, x, y)
	pv.RequestRedraw()
}

// ClearTrail removes the lasso trail.
func (pv *PlotView) ClearTrail() {
	pv.trail = pv.trail[:0]
	pv.RequestRedraw()
}

// fitTransform computes the scale and padding that center the data
// bounds inside the canvas.
func (pv *PlotView) fitTransform() {
	if len(pv.pts) == 0 {
		pv.scale, pv.minX, pv.minY, pv.padX, pv.padY = 1, 0, 0, 0, 0
		return
	}
	bound := r2.RectFromPoints(pv.pts...)
	pv.minX, pv.minY = bound.X.Lo, bound.Y.Lo
	dx, dy := bound.X.Length(), bound.Y.Length()
	availW, availH := pv.width-2*plotMargin, pv.height-2*plotMargin
	pv.scale = 1
	if dx > 0 && dy > 0 {
		pv.scale = math.Min(availW/dx, availH/dy)
	} else if dx > 0 {
		pv.scale = availW / dx
	} else if dy > 0 {
		pv.scale = availH / dy
	}
	pv.padX = (availW - dx*pv.scale) / 2
	pv.padY = (availH - dy*pv.scale) / 2
}

// repaint redraws the whole canvas: every point, then the trail on
// top. Point counts here are small, so a full redraw stays cheap.
func (pv *PlotView) repaint() {
	if pv.canvas == nil {
		return
	}
	pv.canvas.Delete("all")
	for i, p := range pv.pts {
		x, y := pv.toCanvas(p)
		hex := theme.Hex(pv.colors[i])
		pv.canvas.CreateOval(x-pv.radius, y-pv.radius, x+pv.radius, y+pv.radius,
			Fill(hex), Outline(hex))
	}
	if len(pv.trail) >= 4 {
		args := make([]any, 0, len(pv.trail)+2)
		for _, v := range pv.trail {
			args = append(args, v)
		}
		args = append(args, Fill(theme.ColorTrail), Dash(4, 2))
		pv.canvas.CreateLine(args[0], args[1], args[2:]...)
	}
}
