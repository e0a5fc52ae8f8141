package model

import (
	"github.com/JimmyBainbridge/Neptune-moons/domain/selection"
)

// Summary aggregates per-label assignment counts from mask snapshots
// for the status readout. It is decoupled from the UI; presenters call
// Update and push the values to views.
type Summary struct {
	names      []string
	counts     []int
	unassigned int
}

// NewSummary returns a summary over the given label names.
func NewSummary(names []string) *Summary {
	return &Summary{names: names, counts: make([]int, len(names))}
}

// Update recomputes the tallies from a mask snapshot.
func (s *Summary) Update(mask selection.Mask) {
	if s == nil {
		return
	}
	s.counts, s.unassigned = mask.Counts(len(s.names))
}

// Names returns the label names in palette order.
func (s *Summary) Names() []string {
	if s == nil {
		return nil
	}
	return s.names
}

// Counts returns a copy of the per-label tallies.
func (s *Summary) Counts() []int {
	if s == nil {
		return nil
	}
	cp := make([]int, len(s.counts))
	copy(cp, s.counts)
	return cp
}

// Unassigned returns how many points carry no label.
func (s *Summary) Unassigned() int {
	if s == nil {
		return 0
	}
	return s.unassigned
}
