package selection

import "github.com/golang/geo/r2"

// PointSet is an immutable snapshot of scatter point positions. A
// point's identity is its index in the snapshot; points are never
// added, removed or reordered after construction, so a mask computed
// against a PointSet stays aligned with it for the whole session.
type PointSet struct {
	pts []r2.Point
}

// NewPointSet copies pts into a new snapshot.
func NewPointSet(pts []r2.Point) *PointSet {
	cp := make([]r2.Point, len(pts))
	copy(cp, pts)
	return &PointSet{pts: cp}
}

// Len returns the number of points.
func (ps *PointSet) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.pts)
}

// At returns the point at index i.
func (ps *PointSet) At(i int) r2.Point { return ps.pts[i] }

// Points returns a copy of all coordinates in snapshot order.
func (ps *PointSet) Points() []r2.Point {
	if ps == nil {
		return nil
	}
	cp := make([]r2.Point, len(ps.pts))
	copy(cp, ps.pts)
	return cp
}
