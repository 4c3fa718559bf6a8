package ir

import (
	"fmt"

	"github.com/crabir/crab/linear"
	"github.com/crabir/crab/variable"
)

// BoolBinOp is `lhs = op1 OP op2` over bool-typed operands.
type BoolBinOp struct {
	Lhs        variable.Variable
	Op         BoolOp
	Op1, Op2   variable.Variable
	debug      *DebugInfo
}

func NewBoolBinOp(lhs variable.Variable, op BoolOp, op1, op2 variable.Variable, debug *DebugInfo) *BoolBinOp {
	return &BoolBinOp{Lhs: lhs, Op: op, Op1: op1, Op2: op2, debug: debug}
}

func (s *BoolBinOp) Kind() Kind { return BoolBinOpKind }
func (s *BoolBinOp) Live() LiveSet {
	l := NewLiveSet()
	l.Use(s.Op1)
	l.Use(s.Op2)
	l.Def(s.Lhs)
	return l
}
func (s *BoolBinOp) Debug() (DebugInfo, bool) {
	if s.debug == nil {
		return DebugInfo{}, false
	}
	return *s.debug, true
}
func (s *BoolBinOp) Accept(v Visitor) { v.VisitBoolBinOp(s) }
func (s *BoolBinOp) Clone() Statement {
	clone := *s
	if s.debug != nil {
		d := *s.debug
		clone.debug = &d
	}
	return &clone
}
func (s *BoolBinOp) String() string {
	return fmt.Sprintf("%s = %s %s %s", s.Lhs.Name, s.Op1.Name, s.Op, s.Op2.Name)
}

// BoolAssignCst is `lhs = cst`, assigning a bool from the truth value
// of a linear constraint.
type BoolAssignCst struct {
	Lhs        variable.Variable
	Constraint linear.Constraint
}

func NewBoolAssignCst(lhs variable.Variable, c linear.Constraint) *BoolAssignCst {
	return &BoolAssignCst{Lhs: lhs, Constraint: c}
}

func (s *BoolAssignCst) Kind() Kind { return BoolAssignCstKind }
func (s *BoolAssignCst) Live() LiveSet {
	l := NewLiveSet()
	for _, v := range s.Constraint.Vars() {
		l.Use(v)
	}
	l.Def(s.Lhs)
	return l
}
func (s *BoolAssignCst) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *BoolAssignCst) Accept(v Visitor)         { v.VisitBoolAssignCst(s) }
func (s *BoolAssignCst) Clone() Statement         { clone := *s; return &clone }
func (s *BoolAssignCst) String() string {
	return fmt.Sprintf("%s = %s", s.Lhs.Name, s.Constraint)
}

// BoolAssignVar is `lhs = rhs` or `lhs = not(rhs)`.
type BoolAssignVar struct {
	Lhs, Rhs  variable.Variable
	IsNegated bool
}

func NewBoolAssignVar(lhs, rhs variable.Variable, isNegated bool) *BoolAssignVar {
	return &BoolAssignVar{Lhs: lhs, Rhs: rhs, IsNegated: isNegated}
}

func (s *BoolAssignVar) Kind() Kind { return BoolAssignVarKind }
func (s *BoolAssignVar) Live() LiveSet {
	l := NewLiveSet()
	l.Use(s.Rhs)
	l.Def(s.Lhs)
	return l
}
func (s *BoolAssignVar) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *BoolAssignVar) Accept(v Visitor)         { v.VisitBoolAssignVar(s) }
func (s *BoolAssignVar) Clone() Statement         { clone := *s; return &clone }
func (s *BoolAssignVar) String() string {
	if s.IsNegated {
		return fmt.Sprintf("%s = not(%s)", s.Lhs.Name, s.Rhs.Name)
	}
	return fmt.Sprintf("%s = %s", s.Lhs.Name, s.Rhs.Name)
}

// BoolAssume is `assume(var)` or `assume(not(var))`.
type BoolAssume struct {
	Var       variable.Variable
	IsNegated bool
}

func NewBoolAssume(v variable.Variable, isNegated bool) *BoolAssume {
	return &BoolAssume{Var: v, IsNegated: isNegated}
}

func (s *BoolAssume) Kind() Kind { return BoolAssumeKind }
func (s *BoolAssume) Live() LiveSet {
	l := NewLiveSet()
	l.Use(s.Var)
	return l
}
func (s *BoolAssume) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *BoolAssume) Accept(v Visitor)         { v.VisitBoolAssume(s) }
func (s *BoolAssume) Clone() Statement         { clone := *s; return &clone }
func (s *BoolAssume) String() string {
	if s.IsNegated {
		return fmt.Sprintf("assume(not(%s))", s.Var.Name)
	}
	return fmt.Sprintf("assume(%s)", s.Var.Name)
}

// BoolAssert is `assert(var)`.
type BoolAssert struct {
	Var   variable.Variable
	debug *DebugInfo
}

func NewBoolAssert(v variable.Variable, debug *DebugInfo) *BoolAssert {
	return &BoolAssert{Var: v, debug: debug}
}

func (s *BoolAssert) Kind() Kind { return BoolAssertKind }
func (s *BoolAssert) Live() LiveSet {
	l := NewLiveSet()
	l.Use(s.Var)
	return l
}
func (s *BoolAssert) Debug() (DebugInfo, bool) {
	if s.debug == nil {
		return DebugInfo{}, false
	}
	return *s.debug, true
}
func (s *BoolAssert) Accept(v Visitor) { v.VisitBoolAssert(s) }
func (s *BoolAssert) Clone() Statement {
	clone := *s
	if s.debug != nil {
		d := *s.debug
		clone.debug = &d
	}
	return &clone
}
func (s *BoolAssert) String() string { return fmt.Sprintf("assert(%s)", s.Var.Name) }

// BoolSelect is `lhs = ite(cond, b1, b2)` over bool operands.
type BoolSelect struct {
	Lhs        variable.Variable
	Cond       variable.Variable
	B1, B2     variable.Variable
}

func NewBoolSelect(lhs, cond, b1, b2 variable.Variable) *BoolSelect {
	return &BoolSelect{Lhs: lhs, Cond: cond, B1: b1, B2: b2}
}

func (s *BoolSelect) Kind() Kind { return BoolSelectKind }
func (s *BoolSelect) Live() LiveSet {
	l := NewLiveSet()
	l.Use(s.Cond)
	l.Use(s.B1)
	l.Use(s.B2)
	l.Def(s.Lhs)
	return l
}
func (s *BoolSelect) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *BoolSelect) Accept(v Visitor)         { v.VisitBoolSelect(s) }
func (s *BoolSelect) Clone() Statement         { clone := *s; return &clone }
func (s *BoolSelect) String() string {
	return fmt.Sprintf("%s = ite(%s, %s, %s)", s.Lhs.Name, s.Cond.Name, s.B1.Name, s.B2.Name)
}
