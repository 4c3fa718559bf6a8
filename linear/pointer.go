package linear

import (
	"fmt"

	"github.com/crabir/crab/variable"
)

// PtrRelation is the comparison a pointer constraint asserts between
// two pointer-typed operands (or a pointer and the null address).
type PtrRelation int

const (
	PtrEq PtrRelation = iota
	PtrNeq
)

func (r PtrRelation) String() string {
	if r == PtrEq {
		return "="
	}
	return "!="
}

// Tautness classifies a pointer constraint as always true, always
// false, or genuinely conditional. ptr_assume/ptr_assert statements
// carrying a tautology or contradiction are skipped (spec.md §4.2) —
// recording Tautness lets ir decide that without re-deriving it.
type Tautness int

const (
	Conditional Tautness = iota
	Tautology
	Contradiction
)

// PtrConstraint relates two pointer operands (Rhs may be the zero
// Variable to denote "compared against null").
type PtrConstraint struct {
	Lhs, Rhs variable.Variable
	Rel      PtrRelation
	Null     bool // true when Rhs denotes NULL rather than a variable
	Taut     Tautness
}

// Vars returns the operand pointers mentioned by c.
func (c PtrConstraint) Vars() []variable.Variable {
	if c.Null {
		return []variable.Variable{c.Lhs}
	}
	return []variable.Variable{c.Lhs, c.Rhs}
}

func (c PtrConstraint) String() string {
	if c.Null {
		return fmt.Sprintf("%s %s NULL", c.Lhs.Name, c.Rel)
	}
	return fmt.Sprintf("%s %s %s", c.Lhs.Name, c.Rel, c.Rhs.Name)
}
