package view

import (
	"fmt"
	"strings"

	"github.com/JimmyBainbridge/Neptune-moons/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SummaryBar shows the active label and per-label assignment counts.
type SummaryBar interface {
	SetActiveLabel(name string)
	SetCounts(names []string, counts []int, unassigned int)
	Frame() *FrameWidget
}

type summaryBar struct {
	frame     *FrameWidget
	activeLbl *LabelWidget
	countsLbl *LabelWidget
}

// NewSummaryBar creates the status readout inside its own frame.
func NewSummaryBar(initialActive string) SummaryBar {
	s := &summaryBar{frame: Frame()}
	s.activeLbl = Label(Txt("Active: "+initialActive), Background(theme.ColorSurface), Relief("ridge"), Borderwidth(1))
	Grid(s.activeLbl, In(s.frame), Row(0), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	s.countsLbl = Label(Txt("No points labeled yet"), Background(theme.ColorSurface), Relief("ridge"), Borderwidth(1))
	Grid(s.countsLbl, In(s.frame), Row(0), Column(1), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	return s
}

// SetActiveLabel updates the active-label readout.
func (s *summaryBar) SetActiveLabel(name string) {
	if s == nil || s.activeLbl == nil {
		return
	}
	s.activeLbl.Configure(Txt("Active: " + name))
}

// SetCounts updates the per-label tallies.
func (s *summaryBar) SetCounts(names []string, counts []int, unassigned int) {
	if s == nil || s.countsLbl == nil {
		return
	}
	parts := make([]string, 0, len(names)+1)
	for i, name := range names {
		if i < len(counts) {
			parts = append(parts, fmt.Sprintf("%s: %d", name, counts[i]))
		}
	}
	parts = append(parts, fmt.Sprintf("unassigned: %d", unassigned))
	s.countsLbl.Configure(Txt(strings.Join(parts, "   ")))
}

// Frame returns the container widget for placement by the root view.
func (s *summaryBar) Frame() *FrameWidget { return s.frame }
