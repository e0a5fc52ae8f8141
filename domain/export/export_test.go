package export

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/JimmyBainbridge/Neptune-moons/domain/selection"
)

func samplePoints() *selection.PointSet {
	return selection.NewPointSet([]r2.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}})
}

func TestWriteReadMask(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.json")
	mask := selection.Mask{0, selection.Unassigned, 1}
	labels := []string{"a", "b"}

	if err := WriteMask(path, samplePoints(), labels, mask); err != nil {
		t.Fatalf("WriteMask: %v", err)
	}
	mf, err := ReadMask(path)
	if err != nil {
		t.Fatalf("ReadMask: %v", err)
	}
	if !reflect.DeepEqual(mf.Labels, labels) {
		t.Errorf("labels = %v, want %v", mf.Labels, labels)
	}
	if !reflect.DeepEqual(mf.Mask, []int{0, -1, 1}) {
		t.Errorf("mask = %v, want [0 -1 1]", mf.Mask)
	}
	if mf.X[2] != 5 || mf.Y[2] != 6 {
		t.Errorf("coords not paired with mask: x=%v y=%v", mf.X, mf.Y)
	}
}

func TestWriteMask_LengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.json")
	if err := WriteMask(path, samplePoints(), nil, selection.Mask{0}); err == nil {
		t.Fatalf("WriteMask accepted a mask shorter than the point set")
	}
}

func TestReadMask_Ragged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.json")
	if err := os.WriteFile(path, []byte(`{"x":[1],"y":[1,2],"mask":[0]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadMask(path); err == nil {
		t.Fatalf("ReadMask accepted ragged arrays")
	}
}

func TestPlotPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.png")
	pal := selection.NewPalette([]string{"a", "b"})
	mask := selection.Mask{0, 1, selection.Unassigned}

	if err := PlotPNG(path, samplePoints(), pal, mask); err != nil {
		t.Fatalf("PlotPNG: %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat plot: %v", err)
	}
	if fi.Size() == 0 {
		t.Errorf("plot file is empty")
	}

	if err := PlotPNG(path, samplePoints(), pal, selection.Mask{0}); err == nil {
		t.Errorf("PlotPNG accepted a mismatched mask")
	}
}
