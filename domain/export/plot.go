package export

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/JimmyBainbridge/Neptune-moons/domain/selection"
)

// unassignedGray is the plot color for points no gesture ever touched.
var unassignedGray = color.Gray{Y: 0x80}

// PlotPNG renders the labeled scatter to an image file at path. Each
// label becomes its own series in its palette color; untouched points
// are drawn gray. The output format follows the file extension
// (".png", ".svg", ".pdf", ...).
func PlotPNG(path string, points *selection.PointSet, palette *selection.Palette, mask selection.Mask) error {
	if points.Len() != len(mask) {
		return fmt.Errorf("mask length %d does not match %d points", len(mask), points.Len())
	}
	p := plot.New()
	p.Title.Text = "Labeled selection"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	// One bin per label plus a trailing bin for unassigned points.
	bins := make([]plotter.XYs, palette.Len()+1)
	for i := 0; i < points.Len(); i++ {
		bin := palette.Len()
		if v := mask[i]; v >= 0 && v < palette.Len() {
			bin = v
		}
		pt := points.At(i)
		bins[bin] = append(bins[bin], plotter.XY{X: pt.X, Y: pt.Y})
	}
	for b, xys := range bins {
		if len(xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("build scatter: %w", err)
		}
		s.GlyphStyle.Radius = vg.Points(2)
		name := "unassigned"
		if b < palette.Len() {
			lab := palette.Label(b)
			name = lab.Name
			s.GlyphStyle.Color = toColor(lab.Color)
		} else {
			s.GlyphStyle.Color = unassignedGray
		}
		p.Add(s)
		p.Legend.Add(name, s)
	}
	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

func toColor(c selection.RGBA) color.Color {
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
