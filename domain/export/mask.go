// Package export writes session artifacts: the selection mask paired
// with its coordinates, and a rendered plot of the labeled scatter.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/JimmyBainbridge/Neptune-moons/domain/selection"
)

// MaskFile pairs a selection mask with the coordinates it was computed
// against. A mask is meaningless without its matching point order, so
// the two always travel together.
type MaskFile struct {
	Labels []string  `json:"labels"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	Mask   []int     `json:"mask"`
}

// BuildMaskFile assembles the persistable view of a session.
func BuildMaskFile(points *selection.PointSet, labels []string, mask selection.Mask) (*MaskFile, error) {
	if points.Len() != len(mask) {
		return nil, fmt.Errorf("mask length %d does not match %d points", len(mask), points.Len())
	}
	mf := &MaskFile{
		Labels: labels,
		X:      make([]float64, points.Len()),
		Y:      make([]float64, points.Len()),
		Mask:   mask.Clone(),
	}
	for i := 0; i < points.Len(); i++ {
		p := points.At(i)
		mf.X[i] = p.X
		mf.Y[i] = p.Y
	}
	return mf, nil
}

// WriteMask persists the mask and its coordinates as indented JSON.
func WriteMask(path string, points *selection.PointSet, labels []string, mask selection.Mask) error {
	mf, err := BuildMaskFile(points, labels, mask)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(mf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mask: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write mask: %w", err)
	}
	return nil
}

// ReadMask loads a previously written mask file.
func ReadMask(path string) (*MaskFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mask: %w", err)
	}
	var mf MaskFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("decode mask: %w", err)
	}
	if len(mf.X) != len(mf.Y) || len(mf.X) != len(mf.Mask) {
		return nil, fmt.Errorf("mask file arrays differ in length: x=%d y=%d mask=%d", len(mf.X), len(mf.Y), len(mf.Mask))
	}
	return &mf, nil
}
