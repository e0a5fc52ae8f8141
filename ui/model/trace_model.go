package model

import (
	"github.com/golang/geo/r2"

	"github.com/JimmyBainbridge/Neptune-moons/domain/geometry"
)

// Trace accumulates the vertex trail of an in-progress lasso gesture
// in data coordinates. Vertices are recorded as delivered; filtering
// dense mouse motion is the caller's job, in the coordinate space the
// events arrive in. The zero value is ready to use. All calls happen
// on the UI event loop; the type is not safe for concurrent use.
type Trace struct {
	verts []r2.Point
}

// Begin starts a new gesture at p, discarding any previous trail.
func (t *Trace) Begin(p r2.Point) {
	if t == nil {
		return
	}
	t.verts = append(t.verts[:0], p)
}

// Extend appends p to the trail. Extending an inactive trace starts
// one.
func (t *Trace) Extend(p r2.Point) {
	if t == nil {
		return
	}
	t.verts = append(t.verts, p)
}

// Active reports whether a gesture is in progress.
func (t *Trace) Active() bool { return t != nil && len(t.verts) > 0 }

// Vertices returns a copy of the trail collected so far.
func (t *Trace) Vertices() []r2.Point {
	if t == nil {
		return nil
	}
	cp := make([]r2.Point, len(t.verts))
	copy(cp, t.verts)
	return cp
}

// Close finalizes the gesture and resets the trace. It returns the
// closed loop and true when at least three vertices were collected;
// otherwise nil and false, and the gesture counts as abandoned.
func (t *Trace) Close() (geometry.Loop, bool) {
	if t == nil {
		return nil, false
	}
	defer t.Reset()
	if len(t.verts) < 3 {
		return nil, false
	}
	loop := make(geometry.Loop, len(t.verts))
	copy(loop, t.verts)
	return loop, true
}

// Reset discards the current trail.
func (t *Trace) Reset() {
	if t == nil {
		return
	}
	t.verts = t.verts[:0]
}
