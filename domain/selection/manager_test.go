package selection

import (
	"errors"
	"reflect"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/JimmyBainbridge/Neptune-moons/domain/geometry"
)

type fakeRenderer struct {
	applied [][]RGBA
	redraws int
}

func (f *fakeRenderer) ApplyColors(c []RGBA) { f.applied = append(f.applied, c) }
func (f *fakeRenderer) RequestRedraw()       { f.redraws++ }

// tenPoints places points 0..9 on the x axis at x = 0..9.
func tenPoints() []r2.Point {
	pts := make([]r2.Point, 10)
	for i := range pts {
		pts[i] = r2.Point{X: float64(i)}
	}
	return pts
}

// distinctColors gives every point its own original color so reverts
// are detectable per index.
func distinctColors(n int) []RGBA {
	cs := make([]RGBA, n)
	for i := range cs {
		cs[i] = RGBA{R: float64(i) / float64(n), A: 1}
	}
	return cs
}

// rectLoop builds a rectangular lasso loop.
func rectLoop(x0, y0, x1, y1 float64) geometry.Loop {
	return geometry.Loop{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

// checkSync verifies the mask/color correspondence: unassigned points
// keep their original color, assigned points show their label's color.
func checkSync(t *testing.T, m *Manager, original []RGBA) {
	t.Helper()
	mask := m.MaskValues()
	colors := m.Colors()
	for i, v := range mask {
		if v == Unassigned {
			if colors[i] != original[i] {
				t.Errorf("point %d unassigned but color %v != original %v", i, colors[i], original[i])
			}
			continue
		}
		if want := m.Palette().Label(v).Color; colors[i] != want {
			t.Errorf("point %d labeled %d but color %v != palette color %v", i, v, colors[i], want)
		}
	}
}

func TestManager_DisjointLoops(t *testing.T) {
	orig := distinctColors(10)
	m := NewManager(NewPointSet(tenPoints()), orig, []string{"a", "b"}, nil, nil)

	m.OnLoopClosed(rectLoop(-0.5, -0.5, 2.5, 0.5)) // encloses 0,1,2 with "a"
	if err := m.OnLabelChosen("b"); err != nil {
		t.Fatalf("OnLabelChosen(b): %v", err)
	}
	m.OnLoopClosed(rectLoop(2.5, -0.5, 4.5, 0.5)) // encloses 3,4 with "b"

	want := Mask{0, 0, 0, 1, 1, Unassigned, Unassigned, Unassigned, Unassigned, Unassigned}
	if got := m.MaskValues(); !reflect.DeepEqual(got, want) {
		t.Fatalf("mask = %v, want %v", got, want)
	}
	colors := m.Colors()
	for i := 5; i < 10; i++ {
		if colors[i] != orig[i] {
			t.Errorf("point %d outside both loops changed color: %v != %v", i, colors[i], orig[i])
		}
	}
	checkSync(t, m, orig)
}

func TestManager_OverlapOverwrites(t *testing.T) {
	orig := distinctColors(10)
	m := NewManager(NewPointSet(tenPoints()), orig, []string{"a", "b"}, nil, nil)

	m.OnLoopClosed(rectLoop(-0.5, -0.5, 2.5, 0.5)) // 0,1,2 -> a
	if err := m.OnLabelChosen("b"); err != nil {
		t.Fatalf("OnLabelChosen(b): %v", err)
	}
	m.OnLoopClosed(rectLoop(0.5, -0.5, 3.5, 0.5)) // 1,2,3 -> b, overwriting 1,2

	want := Mask{0, 1, 1, 1, Unassigned, Unassigned, Unassigned, Unassigned, Unassigned, Unassigned}
	if got := m.MaskValues(); !reflect.DeepEqual(got, want) {
		t.Fatalf("mask = %v, want %v", got, want)
	}
	checkSync(t, m, orig)
}

func TestManager_Idempotent(t *testing.T) {
	orig := distinctColors(10)
	m := NewManager(NewPointSet(tenPoints()), orig, []string{"a", "b"}, nil, nil)
	loop := rectLoop(-0.5, -0.5, 4.5, 0.5)

	m.OnLoopClosed(loop)
	mask1, colors1 := m.MaskValues(), m.Colors()
	m.OnLoopClosed(loop)
	if got := m.MaskValues(); !reflect.DeepEqual(got, mask1) {
		t.Errorf("repeated identical loop changed mask: %v -> %v", mask1, got)
	}
	if got := m.Colors(); !reflect.DeepEqual(got, colors1) {
		t.Errorf("repeated identical loop changed colors")
	}
}

func TestManager_EmptySelection(t *testing.T) {
	orig := distinctColors(10)
	r := &fakeRenderer{}
	m := NewManager(NewPointSet(tenPoints()), orig, []string{"a"}, r, nil)

	m.OnLoopClosed(rectLoop(100, 100, 105, 105))

	for _, v := range m.MaskValues() {
		if v != Unassigned {
			t.Fatalf("empty loop assigned a label: mask = %v", m.MaskValues())
		}
	}
	for i, c := range m.Colors() {
		if c != orig[i] {
			t.Errorf("empty loop changed color of point %d", i)
		}
	}
	if r.redraws == 0 {
		t.Errorf("completed gesture did not request a redraw")
	}
}

func TestManager_BoundaryInclusive(t *testing.T) {
	// Point 2 sits exactly on the loop's right edge at x=2.
	m := NewManager(NewPointSet(tenPoints()), nil, []string{"a"}, nil, nil)
	m.OnLoopClosed(rectLoop(-0.5, -0.5, 2, 0.5))
	if got := m.MaskValues()[2]; got != 0 {
		t.Fatalf("point on loop edge not labeled: mask[2] = %d", got)
	}
}

func TestManager_DegenerateLoopIgnored(t *testing.T) {
	m := NewManager(NewPointSet(tenPoints()), nil, []string{"a"}, nil, nil)
	m.OnLoopClosed(geometry.Loop{{X: -1, Y: -1}, {X: 11, Y: 1}})
	if n := m.MaskValues().Assigned(); n != 0 {
		t.Fatalf("two-vertex loop assigned %d points", n)
	}
}

func TestManager_LastWriteWins(t *testing.T) {
	orig := distinctColors(10)
	m := NewManager(NewPointSet(tenPoints()), orig, []string{"a", "b", "c"}, nil, nil)

	wide := rectLoop(-0.5, -0.5, 9.5, 0.5)
	m.OnLoopClosed(wide) // everything -> a
	if err := m.OnLabelChosen("c"); err != nil {
		t.Fatalf("OnLabelChosen(c): %v", err)
	}
	m.OnLoopClosed(rectLoop(4.5, -0.5, 9.5, 0.5)) // 5..9 -> c

	mask := m.MaskValues()
	for i := 0; i < 5; i++ {
		if mask[i] != 0 {
			t.Errorf("mask[%d] = %d, want 0", i, mask[i])
		}
	}
	for i := 5; i < 10; i++ {
		if mask[i] != 2 {
			t.Errorf("mask[%d] = %d, want 2", i, mask[i])
		}
	}
	checkSync(t, m, orig)
}

func TestManager_UnknownLabel(t *testing.T) {
	r := &fakeRenderer{}
	m := NewManager(NewPointSet(tenPoints()), nil, []string{"a", "b"}, r, nil)
	err := m.OnLabelChosen("z")
	if !errors.Is(err, ErrUnknownLabel) {
		t.Fatalf("OnLabelChosen(z) error = %v, want ErrUnknownLabel", err)
	}
	if m.Palette().ActiveIndex() != 0 {
		t.Errorf("failed label choice moved active index to %d", m.Palette().ActiveIndex())
	}
	if r.redraws != 0 {
		t.Errorf("failed label choice requested a redraw")
	}
}

func TestManager_NoLabelsConfigured(t *testing.T) {
	orig := distinctColors(10)
	m := NewManager(NewPointSet(tenPoints()), orig, nil, nil, nil)
	m.OnLoopClosed(rectLoop(-0.5, -0.5, 9.5, 0.5))
	if n := m.MaskValues().Assigned(); n != 0 {
		t.Fatalf("manager without labels assigned %d points", n)
	}
	checkSync(t, m, orig)
}

func TestManager_RendererReceivesColors(t *testing.T) {
	r := &fakeRenderer{}
	m := NewManager(NewPointSet(tenPoints()), distinctColors(10), []string{"a"}, r, nil)
	m.OnLoopClosed(rectLoop(-0.5, -0.5, 0.5, 0.5))
	if len(r.applied) != 1 {
		t.Fatalf("ApplyColors called %d times, want 1", len(r.applied))
	}
	if got := r.applied[0][0]; got != m.Palette().Label(0).Color {
		t.Errorf("renderer color for point 0 = %v, want label color", got)
	}
	if r.redraws != 1 {
		t.Errorf("RequestRedraw called %d times, want 1", r.redraws)
	}
}

func TestManager_NilReceiverIsNoOp(t *testing.T) {
	var m *Manager
	m.OnLoopClosed(rectLoop(0, 0, 1, 1))
	if err := m.OnLabelChosen("a"); err != nil {
		t.Errorf("OnLabelChosen on nil manager = %v, want nil", err)
	}
	if m.MaskValues() != nil || m.Colors() != nil {
		t.Errorf("nil manager returned non-nil state")
	}
}

func TestManager_ShortInitialColorsPadded(t *testing.T) {
	m := NewManager(NewPointSet(tenPoints()), distinctColors(3), []string{"a"}, nil, nil)
	colors := m.Colors()
	if len(colors) != 10 {
		t.Fatalf("len(Colors()) = %d, want 10", len(colors))
	}
	if colors[9] != (RGBA{A: 1}) {
		t.Errorf("padded color = %v, want opaque black", colors[9])
	}
}
