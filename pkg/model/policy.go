package model

import (
	"fmt"
	"strings"
)

// RangePolicy decides which triplet indices every clause family enumerates
type RangePolicy int

const (
	// Compatible reproduces the historical ranges: index 0 is never referenced, coverage and the
	// earlier side of ordering stop before n³ while uniqueness and the later side of ordering include it
	Compatible RangePolicy = iota
	// Normalized enumerates [0, n³) in every family
	Normalized
)

var rangePolicies = map[string]RangePolicy{
	"compatible": Compatible,
	"normalized": Normalized,
}

func ParseRangePolicy(name string) (RangePolicy, error) {
	policy, ok := rangePolicies[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%v is not a valid range policy", name)
	}
	return policy, nil
}

func (policy RangePolicy) String() string {
	switch policy {
	case Compatible:
		return "compatible"
	case Normalized:
		return "normalized"
	}
	return fmt.Sprintf("RangePolicy(%d)", int(policy))
}

// indexRange is the half-open interval [from, to)
type indexRange struct {
	from, to uint64
}

func (r indexRange) len() uint64 {
	if r.to <= r.from {
		return 0
	}
	return r.to - r.from
}

type familyRanges struct {
	coverage,
	uniqueness,
	earlier, // Index placed at the earlier position of an ordering clause
	later indexRange
}

func (policy RangePolicy) ranges(maxIndex uint64) familyRanges {
	if policy == Normalized {
		all := indexRange{0, maxIndex}
		return familyRanges{coverage: all, uniqueness: all, earlier: all, later: all}
	}
	return familyRanges{
		coverage:   indexRange{1, maxIndex},
		uniqueness: indexRange{1, maxIndex + 1},
		earlier:    indexRange{1, maxIndex},
		later:      indexRange{1, maxIndex + 1},
	}
}
