package sat

import "log"

// Numbering gives every variable a dense DIMACS id, in the order variables are first seen.
// Ids start at 1 and are never reassigned.
type Numbering struct {
	ids       map[Variable]int64
	variables []Variable // Variable with id i is stored at i-1
}

func NewNumbering() *Numbering {
	return &Numbering{
		ids:       make(map[Variable]int64),
		variables: make([]Variable, 0),
	}
}

func (numbering *Numbering) Collect(clause Clause) {
	for _, literal := range clause {
		variable := literal.Variable()
		if _, ok := numbering.ids[variable]; ok {
			continue
		}
		numbering.variables = append(numbering.variables, variable)
		numbering.ids[variable] = int64(len(numbering.variables))
	}
}

func (numbering *Numbering) ID(variable Variable) (int64, bool) {
	id, ok := numbering.ids[variable]
	return id, ok
}

// Dimacs returns the signed DIMACS representation of the literal
func (numbering *Numbering) Dimacs(literal Literal) int64 {
	id, ok := numbering.ids[literal.Variable()]
	if !ok {
		log.Panicf("literal %+v references a variable that was never numbered", literal)
	}
	if literal.Negated {
		return -id
	}
	return id
}

func (numbering *Numbering) Len() int {
	return len(numbering.variables)
}

// Variables returns the numbered variables sorted by id
func (numbering *Numbering) Variables() []Variable {
	return numbering.variables
}

// Number scans the instance's clauses once, returning their numbering and how many there are
func Number(instance Instance) (*Numbering, uint64) {
	numbering := NewNumbering()
	var clauses uint64
	for clause := range instance.Clauses() {
		numbering.Collect(clause)
		clauses++
	}
	return numbering, clauses
}
