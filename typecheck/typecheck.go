// Package typecheck implements the single visitor pass of spec.md
// §4.7: it walks every statement in a CFG and raises a fatal
// crabfault the moment one violates its kind's type/bit-width rules.
// Calls, returns, pointer statements, and array statements are
// accepted without checks here — spec.md says they "are validated by
// collaborators" outside this layer.
package typecheck

import (
	"fmt"

	"github.com/crabir/crab/crabfault"
	"github.com/crabir/crab/ir"
	"github.com/crabir/crab/types"
	"github.com/crabir/crab/variable"
)

// Check runs the type-checking pass over every block of g, in
// whatever order the CFG's unordered iteration yields — the pass has
// no dependency on block order, only on each statement's own operands.
func Check[L comparable](g *ir.CFG[L]) {
	v := &checker{}
	for _, label := range g.Labels() {
		for _, stmt := range g.GetNode(label).Statements() {
			stmt.Accept(v)
		}
	}
}

type checker struct {
	ir.BaseVisitor
}

func fail(stmt fmt.Stringer, format string, args ...interface{}) {
	crabfault.Raise(crabfault.TypeCheck, stmt, format, args...)
}

func numericLhs(t types.Type) bool {
	if t.Kind == types.Int {
		return t.BitWidth > 1
	}
	return t.Kind == types.Real
}

func sameTypeAndWidth(a, b variable.Variable) bool { return a.SameTypeAndWidth(b) }

func (c *checker) VisitBinOp(s *ir.BinOp) {
	if !numericLhs(s.Lhs.Type) {
		fail(s, "bin_op: lhs %s must be int(>1) or real", s.Lhs)
	}
	checkOperandVars(s, s.Lhs, s.Left)
	checkOperandVars(s, s.Lhs, s.Right)
}

func checkOperandVars(s fmt.Stringer, lhs variable.Variable, e interface{ Vars() []variable.Variable }) {
	for _, v := range e.Vars() {
		if !sameTypeAndWidth(lhs, v) {
			fail(s, "bitwidth mismatch: %s does not match lhs %s", v, lhs)
		}
	}
}

func (c *checker) VisitAssign(s *ir.Assign) {
	if !numericLhs(s.Lhs.Type) {
		fail(s, "assign: lhs %s must be int(>1) or real", s.Lhs)
	}
	checkOperandVars(s, s.Lhs, s.Rhs)
}

func (c *checker) VisitAssume(s *ir.Assume) { checkConstraintVars(s, s.Constraint.Vars()) }
func (c *checker) VisitAssert(s *ir.Assert) { checkConstraintVars(s, s.Constraint.Vars()) }

func checkConstraintVars(s fmt.Stringer, vars []variable.Variable) {
	if len(vars) == 0 {
		return
	}
	first := vars[0]
	if !numericLhs(first.Type) {
		fail(s, "constraint variable %s must be int(>1) or real", first)
	}
	for _, v := range vars[1:] {
		if !sameTypeAndWidth(first, v) {
			fail(s, "bitwidth mismatch: constraint variables %s and %s disagree", first, v)
		}
	}
}

func (c *checker) VisitSelect(s *ir.Select) {
	if !numericLhs(s.Lhs.Type) {
		fail(s, "select: lhs %s must be int(>1) or real", s.Lhs)
	}
	checkOperandVars(s, s.Lhs, s.E1)
	checkOperandVars(s, s.Lhs, s.E2)

	condVars := s.Cond.Vars()
	if len(condVars) == 0 {
		return
	}
	first := condVars[0]
	if !numericLhs(first.Type) {
		fail(s, "select: condition variable %s must be int(>1) or real", first)
	}
	if !first.Type.Same(s.Lhs.Type) {
		fail(s, "select: condition variable %s must share type with lhs %s (bit-width may differ)", first, s.Lhs)
	}
	for _, v := range condVars[1:] {
		if !sameTypeAndWidth(first, v) {
			fail(s, "select: condition variables %s and %s disagree", first, v)
		}
	}
}

func (c *checker) VisitIntCast(s *ir.IntCast) {
	src, dst := s.Src.Type, s.Dst.Type
	switch s.Op {
	case ir.Trunc:
		if src.Kind != types.Int {
			fail(s, "trunc: src %s must be int", s.Src)
		}
		if dst.Kind == types.Bool {
			if dst.BitWidth != 1 {
				fail(s, "trunc: bool dst %s must have bit-width 1", s.Dst)
			}
		} else if dst.Kind == types.Int {
			if dst.BitWidth <= 1 {
				fail(s, "trunc: int dst %s must have bit-width > 1", s.Dst)
			}
		} else {
			fail(s, "trunc: dst %s must be int or bool", s.Dst)
		}
		if src.BitWidth <= dst.BitWidth {
			fail(s, "trunc: bitwidth violation, bits(src)=%d must exceed bits(dst)=%d", src.BitWidth, dst.BitWidth)
		}
	case ir.Sext, ir.Zext:
		if dst.Kind != types.Int || dst.BitWidth <= 1 {
			fail(s, "%s: dst %s must be int(>1)", s.Op, s.Dst)
		}
		switch src.Kind {
		case types.Bool:
			if src.BitWidth != 1 {
				fail(s, "%s: bool src %s must have bit-width 1", s.Op, s.Src)
			}
		case types.Int:
		default:
			fail(s, "%s: src %s must be int or bool", s.Op, s.Src)
		}
		if dst.BitWidth <= src.BitWidth {
			fail(s, "%s: bitwidth violation, bits(dst)=%d must exceed bits(src)=%d", s.Op, dst.BitWidth, src.BitWidth)
		}
	}
}

func requireBoolBW1(s fmt.Stringer, v variable.Variable) {
	if v.Type.Kind != types.Bool || v.Type.BitWidth != 1 {
		fail(s, "bool operand %s must be bool(bw=1)", v)
	}
}

func (c *checker) VisitBoolBinOp(s *ir.BoolBinOp) {
	requireBoolBW1(s, s.Lhs)
	requireBoolBW1(s, s.Op1)
	requireBoolBW1(s, s.Op2)
}

func (c *checker) VisitBoolAssignCst(s *ir.BoolAssignCst) {
	requireBoolBW1(s, s.Lhs)
}

func (c *checker) VisitBoolAssignVar(s *ir.BoolAssignVar) {
	requireBoolBW1(s, s.Lhs)
	requireBoolBW1(s, s.Rhs)
}

func (c *checker) VisitBoolAssume(s *ir.BoolAssume) { requireBoolBW1(s, s.Var) }
func (c *checker) VisitBoolAssert(s *ir.BoolAssert) { requireBoolBW1(s, s.Var) }

func (c *checker) VisitBoolSelect(s *ir.BoolSelect) {
	requireBoolBW1(s, s.Lhs)
	requireBoolBW1(s, s.Cond)
	requireBoolBW1(s, s.B1)
	requireBoolBW1(s, s.B2)
}
