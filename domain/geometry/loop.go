package geometry

import (
	"math"

	"github.com/golang/geo/r2"
)

// Loop is a closed polygon described by an ordered vertex list. The
// last vertex connects back to the first and does not need to be
// repeated. A Loop with fewer than three vertices encloses nothing.
type Loop []r2.Point

// boundaryEps is the distance below which a point counts as lying on a
// polygon edge.
const boundaryEps = 1e-9

// Valid reports whether the loop has enough vertices to enclose area.
func (l Loop) Valid() bool { return len(l) >= 3 }

// BoundingBox returns the axis-aligned rectangle covering all vertices.
// Useful as a cheap rejection test before ContainsPoint.
func (l Loop) BoundingBox() r2.Rect {
	return r2.RectFromPoints(l...)
}

// ContainsPoint reports whether p lies inside the polygon or exactly on
// its boundary. Interior membership follows the even-odd ray casting
// rule (PNPoly); boundary membership is decided separately so that
// points sitting on an edge are always treated as contained.
func (l Loop) ContainsPoint(p r2.Point) bool {
	if !l.Valid() {
		return false
	}
	a := l[len(l)-1]
	inside := false
	for _, b := range l {
		if distanceToSegment(p, a, b) <= boundaryEps {
			return true
		}
		if rayIntersectsSegment(p, a, b) {
			inside = !inside
		}
		a = b
	}
	return inside
}

// rayIntersectsSegment reports whether a ray cast from p towards +x
// crosses segment ab.
func rayIntersectsSegment(p, a, b r2.Point) bool {
	return (a.Y > p.Y) != (b.Y > p.Y) &&
		p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X
}

// distanceToSegment returns the distance from p to segment ab.
func distanceToSegment(p, a, b r2.Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return p.Sub(a).Norm()
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/lenSq))
	proj := a.Add(ab.Mul(t))
	return p.Sub(proj).Norm()
}
