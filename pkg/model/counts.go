package model

// Counts holds the size of an encoding computed in closed form, without generating any clause.
// Values are exact while n ≤ 255, beyond that the ordering count may overflow.
type Counts struct {
	Variables  uint64
	Coverage   uint64
	Uniqueness uint64
	Ordering   uint64
}

func (counts Counts) Clauses() uint64 {
	return counts.Coverage + counts.Uniqueness + counts.Ordering
}

func (sequence *Sequence) Expected() Counts {
	n, k := sequence.universe.N(), sequence.length
	positionPairs := k * (k - 1) / 2

	earlier, later := sequence.ranges.earlier.len(), sequence.ranges.later.len()

	return Counts{
		Variables:  sequence.expectedVariables(),
		Coverage:   k,
		Uniqueness: sequence.ranges.uniqueness.len() * positionPairs,
		Ordering:   positionPairs * (earlier*later - sequence.twoLessPairs(n)),
	}
}

// Pairs (earlier, later) drawn from the ordering ranges where earlier is two-less than later
func (sequence *Sequence) twoLessPairs(n uint64) uint64 {
	// Coordinates are independent: per coordinate, less out of n² value pairs are strictly increasing
	less := n * (n - 1) / 2
	notLess := n*n - less
	pairs := 3*less*less*notLess + less*less*less

	if sequence.policy == Compatible {
		// The earlier side lacks (1, 1, 1) while the later side gets it back through the index n³,
		// so drop the pairs starting at (1, 1, 1): at least two coordinates of the later triplet exceed 1
		above := n - 1
		pairs -= 3*above*above + above*above*above
	}
	return pairs
}

func (sequence *Sequence) expectedVariables() uint64 {
	k := sequence.length
	if k == 0 {
		return 0
	}
	// With a single position only coverage references variables
	if k == 1 {
		return sequence.ranges.coverage.len()
	}
	// Uniqueness references every index of its range at every position, and its range contains the others
	return sequence.ranges.uniqueness.len() * k
}
