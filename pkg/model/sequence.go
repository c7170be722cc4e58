package model

import (
	"fmt"
	"iter"

	"github.com/K0bin/twoless/pkg/sat"
	"github.com/K0bin/twoless/pkg/triplet"
)

// Sequence encodes "there are length pairwise distinct triplets, each one two-less than every later one" as CNF.
// Positions are numbered from 1.
type Sequence struct {
	universe triplet.Universe
	length   uint64
	policy   RangePolicy
	ranges   familyRanges
}

func NewSequence(universe triplet.Universe, length uint64, policy RangePolicy) *Sequence {
	return &Sequence{
		universe: universe,
		length:   length,
		policy:   policy,
		ranges:   policy.ranges(universe.MaxIndex()),
	}
}

func (sequence *Sequence) Universe() triplet.Universe {
	return sequence.universe
}

func (sequence *Sequence) Length() uint64 {
	return sequence.length
}

func (sequence *Sequence) Policy() RangePolicy {
	return sequence.policy
}

func (sequence *Sequence) Header() string {
	return fmt.Sprintf("2-Less - Set Max (n): %v - Sequence length (k): %v", sequence.universe.N(), sequence.length)
}

func (sequence *Sequence) Describe(variable sat.Variable) string {
	return fmt.Sprintf("Triplet: %v, Pos in sequence: %v", sequence.universe.Decode(variable.Triplet), variable.Position)
}

// Clauses yields the coverage, uniqueness and ordering families in that order
func (sequence *Sequence) Clauses() iter.Seq[sat.Clause] {
	families := []func(sequence *Sequence, yield func(sat.Clause) bool) bool{
		coverageClauses,
		uniquenessClauses,
		orderingClauses,
	}

	return func(yield func(sat.Clause) bool) {
		for _, family := range families {
			if !family(sequence, yield) {
				return
			}
		}
	}
}

// Every position is occupied by some triplet
func coverageClauses(sequence *Sequence, yield func(sat.Clause) bool) bool {
	indices := sequence.ranges.coverage
	for r := uint64(1); r <= sequence.length; r++ {
		clause := make(sat.Clause, 0, indices.len())
		for i := indices.from; i < indices.to; i++ {
			clause = append(clause, sat.Positive(i, r))
		}
		if !yield(clause) {
			return false
		}
	}
	return true
}

// A triplet occupies at most one position
func uniquenessClauses(sequence *Sequence, yield func(sat.Clause) bool) bool {
	indices := sequence.ranges.uniqueness
	for i := indices.from; i < indices.to; i++ {
		for s := uint64(1); s <= sequence.length; s++ {
			for r := uint64(1); r < s; r++ {
				if !yield(sat.Clause{sat.Negative(i, r), sat.Negative(i, s)}) {
					return false
				}
			}
		}
	}
	return true
}

// i at an earlier position excludes j at a later one unless i is two-less than j
func orderingClauses(sequence *Sequence, yield func(sat.Clause) bool) bool {
	earlier, later := sequence.ranges.earlier, sequence.ranges.later
	for s := uint64(1); s <= sequence.length; s++ {
		for r := uint64(1); r < s; r++ {
			for j := later.from; j < later.to; j++ {
				tripletJ := sequence.universe.Decode(j)
				for i := earlier.from; i < earlier.to; i++ {
					if sequence.universe.Decode(i).TwoLess(tripletJ) {
						continue
					}
					if !yield(sat.Clause{sat.Negative(i, r), sat.Negative(j, s)}) {
						return false
					}
				}
			}
		}
	}
	return true
}
