package triplet

import "fmt"

// Triplet is a point of {1..n}^3
type Triplet struct {
	X, Y, Z uint64
}

// TwoLess reports whether at least two of a's coordinates are strictly smaller than b's
func TwoLess(a, b Triplet) bool {
	less := 0
	if a.X < b.X {
		less++
	}
	if a.Y < b.Y {
		less++
	}
	if a.Z < b.Z {
		less++
	}
	return less >= 2
}

func (t Triplet) TwoLess(other Triplet) bool {
	return TwoLess(t, other)
}

func (t Triplet) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t.X, t.Y, t.Z)
}
