package sat

import (
	"fmt"
	"iter"
	"strings"

	"github.com/samber/lo"
)

// Instance is a CNF formula over triplet/position variables, produced clause by clause.
// Clauses must yield the same sequence every time it is ranged over.
type Instance interface {
	// Free-form text identifying the instance, written as the leading comment
	Header() string
	Clauses() iter.Seq[Clause]
	// Human readable meaning of a variable, written in the variable comments
	Describe(variable Variable) string
}

type SATSolution []int64

// SAT is the numbered form of an instance, literals are signed DIMACS ids
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

// Materialize numbers the instance and keeps every clause in memory
func Materialize(instance Instance) (SAT, *Numbering) {
	numbering, clauses := Number(instance)

	satInstance := SAT{
		Variables: uint64(numbering.Len()),
		Clauses:   make([][]int64, 0, clauses),
	}
	for clause := range instance.Clauses() {
		satInstance.Clauses = append(satInstance.Clauses, lo.Map(clause, func(literal Literal, _ int) int64 {
			return numbering.Dimacs(literal)
		}))
	}
	return satInstance, numbering
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
