package selection

import (
	"errors"
	"testing"
)

func TestPalette_TruncatesToMaxLabels(t *testing.T) {
	p := NewPalette([]string{"a", "b", "c", "d", "e", "f", "g"})
	if p.Len() != MaxLabels {
		t.Fatalf("Len() = %d, want %d", p.Len(), MaxLabels)
	}
	if got := p.Names(); got[4] != "e" {
		t.Errorf("last kept label = %q, want %q", got[4], "e")
	}
}

func TestPalette_PositionBasedColors(t *testing.T) {
	// Colors attach to palette position, not to the name.
	p1 := NewPalette([]string{"first", "second"})
	p2 := NewPalette([]string{"second", "first"})
	if p1.Label(0).Color != p2.Label(0).Color {
		t.Errorf("position 0 colors differ across palettes: %v vs %v", p1.Label(0).Color, p2.Label(0).Color)
	}
	if p1.Label(0).Color == p1.Label(1).Color {
		t.Errorf("adjacent positions share a color: %v", p1.Label(0).Color)
	}
}

func TestPalette_Activate(t *testing.T) {
	p := NewPalette([]string{"a", "b", "c"})
	if p.ActiveIndex() != 0 {
		t.Fatalf("initial ActiveIndex() = %d, want 0", p.ActiveIndex())
	}
	if err := p.Activate("c"); err != nil {
		t.Fatalf("Activate(c) returned error: %v", err)
	}
	if p.ActiveIndex() != 2 || p.Active().Name != "c" {
		t.Fatalf("after Activate(c): index=%d name=%q", p.ActiveIndex(), p.Active().Name)
	}

	err := p.Activate("nope")
	if !errors.Is(err, ErrUnknownLabel) {
		t.Fatalf("Activate(nope) error = %v, want ErrUnknownLabel", err)
	}
	if p.ActiveIndex() != 2 {
		t.Errorf("failed Activate changed active index to %d", p.ActiveIndex())
	}
}

func TestMask_Counts(t *testing.T) {
	m := Mask{0, 0, 1, Unassigned, 2, Unassigned}
	per, un := m.Counts(3)
	if per[0] != 2 || per[1] != 1 || per[2] != 1 {
		t.Errorf("Counts per label = %v, want [2 1 1]", per)
	}
	if un != 2 {
		t.Errorf("unassigned = %d, want 2", un)
	}
	if m.Assigned() != 4 {
		t.Errorf("Assigned() = %d, want 4", m.Assigned())
	}
}
