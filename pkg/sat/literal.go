package sat

// Variable is the polarity-free key of a literal: a triplet index placed at a position of the sequence
type Variable struct {
	Triplet  uint64
	Position uint64
}

type Literal struct {
	Triplet  uint64
	Position uint64
	Negated  bool
}

func Positive(triplet, position uint64) Literal {
	return Literal{Triplet: triplet, Position: position}
}

func Negative(triplet, position uint64) Literal {
	return Literal{Triplet: triplet, Position: position, Negated: true}
}

func (literal Literal) Variable() Variable {
	return Variable{Triplet: literal.Triplet, Position: literal.Position}
}

// Clause is the disjunction of its literals
type Clause []Literal
