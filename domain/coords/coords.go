// Package coords loads scatter point coordinates from disk. Two file
// shapes are accepted: JSON (either an array of [x, y] pairs or an
// object with parallel "x" and "y" arrays) and two-column CSV.
package coords

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
)

// Load reads coordinates from path, dispatching on the file extension:
// ".csv" is parsed as CSV, anything else as JSON.
func Load(path string) ([]r2.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open coords: %w", err)
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ParseCSV(f)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read coords: %w", err)
	}
	return ParseJSON(data)
}

// ParseJSON decodes either [[x,y],...] or {"x":[...],"y":[...]}.
func ParseJSON(data []byte) ([]r2.Point, error) {
	var pairs [][]float64
	if err := json.Unmarshal(data, &pairs); err == nil {
		pts := make([]r2.Point, len(pairs))
		for i, pair := range pairs {
			if len(pair) != 2 {
				return nil, fmt.Errorf("coords entry %d has %d values, want 2", i, len(pair))
			}
			pts[i] = r2.Point{X: pair[0], Y: pair[1]}
		}
		return pts, nil
	}

	var cols struct {
		X []float64 `json:"x"`
		Y []float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &cols); err != nil {
		return nil, fmt.Errorf("parse coords JSON: %w", err)
	}
	if len(cols.X) != len(cols.Y) {
		return nil, fmt.Errorf("coords columns differ in length: x=%d y=%d", len(cols.X), len(cols.Y))
	}
	pts := make([]r2.Point, len(cols.X))
	for i := range cols.X {
		pts[i] = r2.Point{X: cols.X[i], Y: cols.Y[i]}
	}
	return pts, nil
}

// ParseCSV reads x,y rows. A single leading non-numeric record is
// treated as a header and skipped.
func ParseCSV(r io.Reader) ([]r2.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var pts []r2.Point
	row := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read coords CSV: %w", err)
		}
		row++
		if len(rec) < 2 {
			return nil, fmt.Errorf("coords CSV row %d has %d fields, want 2", row, len(rec))
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errY != nil {
			if row == 1 && len(pts) == 0 {
				continue // header
			}
			return nil, fmt.Errorf("coords CSV row %d is not numeric", row)
		}
		pts = append(pts, r2.Point{X: x, Y: y})
	}
	return pts, nil
}
