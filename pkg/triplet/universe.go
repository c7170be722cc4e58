package triplet

import (
	"fmt"
	"log"
)

// MaxN keeps n³ well inside the signed 64-bit range used by DIMACS variable ids
const MaxN uint64 = 1 << 20

type InvalidParameterError struct {
	Name   string
	Value  uint64
	Reason string
}

func (err InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %v=%v: %v", err.Name, err.Value, err.Reason)
}

// Universe gives a unique index to every triplet of {1..n}^3 and vice versa.
// Triplets are computed from their index on demand, the universe itself only stores n.
type Universe struct {
	n uint64
}

func NewUniverse(n uint64) (Universe, error) {
	if n == 0 {
		return Universe{}, InvalidParameterError{Name: "n", Value: n, Reason: "must be greater than or equal to 1"}
	} else if n > MaxN {
		return Universe{}, InvalidParameterError{Name: "n", Value: n, Reason: fmt.Sprintf("must be smaller than or equal to %v", MaxN)}
	}
	return Universe{n: n}, nil
}

func (universe Universe) N() uint64 {
	return universe.n
}

// MaxIndex returns n³, the number of triplets in the universe
func (universe Universe) MaxIndex() uint64 {
	return universe.n * universe.n * universe.n
}

// Decode returns the triplet whose base-n digits are given by the index.
// The index n³ is accepted and folds back onto (1, 1, 1); anything beyond it is a caller bug.
func (universe Universe) Decode(index uint64) Triplet {
	if maxIndex := universe.MaxIndex(); index > maxIndex {
		log.Panicf("index %v bigger than max: %v", index, maxIndex)
	}

	n := universe.n
	return Triplet{
		X: index%n + 1,
		Y: (index/n)%n + 1,
		Z: (index/(n*n))%n + 1,
	}
}

// Encode is the inverse of Decode over [0, n³)
func (universe Universe) Encode(triplet Triplet) uint64 {
	n := universe.n
	for _, coordinate := range []uint64{triplet.X, triplet.Y, triplet.Z} {
		if coordinate < 1 || coordinate > n {
			log.Panicf("triplet %v is not contained in the universe of size %v", triplet, n)
		}
	}
	return (triplet.X - 1) + n*(triplet.Y-1) + n*n*(triplet.Z-1)
}
