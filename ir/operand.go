package ir

import (
	"strconv"

	"github.com/crabir/crab/variable"
)

// ScalarOperand is either a constant or a single variable — the
// restricted operand form spec.md §4.2 requires for array_init's and
// array_assume's lb/ub/val and array_store's value (no general
// expression is allowed there, unlike the lin_exp operands elsewhere
// in the statement algebra).
type ScalarOperand struct {
	isVar bool
	v     variable.Variable
	c     int64
}

// ConstOperand returns a constant scalar operand.
func ConstOperand(c int64) ScalarOperand { return ScalarOperand{c: c} }

// VarOperand returns a single-variable scalar operand.
func VarOperand(v variable.Variable) ScalarOperand { return ScalarOperand{isVar: true, v: v} }

// IsVar reports whether the operand is a variable (as opposed to a constant).
func (o ScalarOperand) IsVar() bool { return o.isVar }

// Var returns the operand's variable. Only meaningful when IsVar().
func (o ScalarOperand) Var() variable.Variable { return o.v }

// ConstValue returns the operand's constant. Only meaningful when !IsVar().
func (o ScalarOperand) ConstValue() int64 { return o.c }

func (o ScalarOperand) String() string {
	if o.isVar {
		return o.v.Name.String()
	}
	return strconv.FormatInt(o.c, 10)
}

func (o ScalarOperand) use(l *LiveSet) {
	if o.isVar {
		l.Use(o.v)
	}
}
