package selection

// Unassigned is the sentinel mask value for points without a label.
const Unassigned = -1

// Mask records, per point index, the assigned label index or
// Unassigned. It never shrinks or reorders; entries change only when a
// gesture encloses the point.
type Mask []int

// NewMask returns a mask of length n with every entry Unassigned.
func NewMask(n int) Mask {
	m := make(Mask, n)
	for i := range m {
		m[i] = Unassigned
	}
	return m
}

// Clone returns an independent copy of the mask.
func (m Mask) Clone() Mask {
	cp := make(Mask, len(m))
	copy(cp, m)
	return cp
}

// Assigned returns how many entries carry a label.
func (m Mask) Assigned() int {
	n := 0
	for _, v := range m {
		if v != Unassigned {
			n++
		}
	}
	return n
}

// Counts tallies entries per label index for labels positions. Entries
// outside [0, labels) count as unassigned and are returned separately.
func (m Mask) Counts(labels int) (perLabel []int, unassigned int) {
	perLabel = make([]int, labels)
	for _, v := range m {
		if v >= 0 && v < labels {
			perLabel[v]++
		} else {
			unassigned++
		}
	}
	return perLabel, unassigned
}
