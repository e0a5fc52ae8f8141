package geometry

import (
	"testing"

	"github.com/golang/geo/r2"
)

func square() Loop {
	return Loop{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
}

func TestLoop_ContainsPoint(t *testing.T) {
	// Concave "C" shape: the notch between (2,1) and (2,3) is outside.
	concave := Loop{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 1}, {X: 2, Y: 1},
		{X: 2, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}
	tests := []struct {
		name string
		loop Loop
		p    r2.Point
		want bool
	}{
		{"square interior", square(), r2.Point{X: 2, Y: 2}, true},
		{"square outside", square(), r2.Point{X: 5, Y: 2}, false},
		{"square outside left of ray", square(), r2.Point{X: -1, Y: 2}, false},
		{"on vertical edge", square(), r2.Point{X: 4, Y: 2}, true},
		{"on horizontal edge", square(), r2.Point{X: 2, Y: 0}, true},
		{"on vertex", square(), r2.Point{X: 0, Y: 0}, true},
		{"concave interior arm", concave, r2.Point{X: 3, Y: 0.5}, true},
		{"concave notch", concave, r2.Point{X: 3, Y: 2}, false},
		{"concave spine", concave, r2.Point{X: 1, Y: 2}, true},
	}
	for _, tc := range tests {
		if got := tc.loop.ContainsPoint(tc.p); got != tc.want {
			t.Errorf("%s: ContainsPoint(%v) = %v, want %v", tc.name, tc.p, got, tc.want)
		}
	}
}

func TestLoop_Degenerate(t *testing.T) {
	for _, l := range []Loop{nil, {}, {{X: 1, Y: 1}}, {{X: 0, Y: 0}, {X: 2, Y: 2}}} {
		if l.Valid() {
			t.Errorf("Valid() = true for %d vertices", len(l))
		}
		if l.ContainsPoint(r2.Point{X: 1, Y: 1}) {
			t.Errorf("degenerate loop with %d vertices contained a point", len(l))
		}
	}
}

func TestLoop_BoundingBox(t *testing.T) {
	l := Loop{{X: -1, Y: 3}, {X: 2, Y: -2}, {X: 5, Y: 1}}
	b := l.BoundingBox()
	for _, v := range l {
		if !b.ContainsPoint(v) {
			t.Errorf("bounding box %v does not contain vertex %v", b, v)
		}
	}
	if b.ContainsPoint(r2.Point{X: 6, Y: 0}) {
		t.Errorf("bounding box %v contains point outside the hull", b)
	}
}
