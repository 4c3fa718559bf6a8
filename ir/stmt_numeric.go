package ir

import (
	"fmt"

	"github.com/crabir/crab/crabfault"
	"github.com/crabir/crab/linear"
	"github.com/crabir/crab/variable"
)

// BinOp is `lhs = left OP right` over int or real operands.
type BinOp struct {
	Lhs         variable.Variable
	Op          ArithOp
	Left, Right linear.Expr
	debug       *DebugInfo
}

// NewBinOp constructs a bin_op statement. debug may be nil.
func NewBinOp(lhs variable.Variable, op ArithOp, left, right linear.Expr, debug *DebugInfo) *BinOp {
	return &BinOp{Lhs: lhs, Op: op, Left: left, Right: right, debug: debug}
}

func (s *BinOp) Kind() Kind { return BinOpKind }

func (s *BinOp) Live() LiveSet {
	l := NewLiveSet()
	for _, v := range s.Left.Vars() {
		l.Use(v)
	}
	for _, v := range s.Right.Vars() {
		l.Use(v)
	}
	l.Def(s.Lhs)
	return l
}

func (s *BinOp) Debug() (DebugInfo, bool) {
	if s.debug == nil {
		return DebugInfo{}, false
	}
	return *s.debug, true
}

func (s *BinOp) Accept(v Visitor) { v.VisitBinOp(s) }

func (s *BinOp) Clone() Statement {
	clone := *s
	if s.debug != nil {
		d := *s.debug
		clone.debug = &d
	}
	return &clone
}

func (s *BinOp) String() string {
	return fmt.Sprintf("%s = %s%s%s", s.Lhs.Name, s.Left, s.Op, s.Right)
}

// Assign is `lhs = rhs` over a linear expression.
type Assign struct {
	Lhs variable.Variable
	Rhs linear.Expr
}

func NewAssign(lhs variable.Variable, rhs linear.Expr) *Assign {
	return &Assign{Lhs: lhs, Rhs: rhs}
}

func (s *Assign) Kind() Kind { return AssignKind }

func (s *Assign) Live() LiveSet {
	l := NewLiveSet()
	for _, v := range s.Rhs.Vars() {
		l.Use(v)
	}
	l.Def(s.Lhs)
	return l
}

func (s *Assign) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *Assign) Accept(v Visitor)         { v.VisitAssign(s) }
func (s *Assign) Clone() Statement         { clone := *s; return &clone }
func (s *Assign) String() string           { return fmt.Sprintf("%s = %s", s.Lhs.Name, s.Rhs) }

// Assume is `assume(constraint)`.
type Assume struct {
	Constraint linear.Constraint
}

func NewAssume(c linear.Constraint) *Assume { return &Assume{Constraint: c} }

func (s *Assume) Kind() Kind { return AssumeKind }

func (s *Assume) Live() LiveSet {
	l := NewLiveSet()
	for _, v := range s.Constraint.Vars() {
		l.Use(v)
	}
	return l
}

func (s *Assume) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *Assume) Accept(v Visitor)         { v.VisitAssume(s) }
func (s *Assume) Clone() Statement         { clone := *s; return &clone }
func (s *Assume) String() string           { return fmt.Sprintf("assume(%s)", s.Constraint) }

// Assert is `assert(constraint)`.
type Assert struct {
	Constraint linear.Constraint
	debug      *DebugInfo
}

func NewAssert(c linear.Constraint, debug *DebugInfo) *Assert {
	return &Assert{Constraint: c, debug: debug}
}

func (s *Assert) Kind() Kind { return AssertKind }

func (s *Assert) Live() LiveSet {
	l := NewLiveSet()
	for _, v := range s.Constraint.Vars() {
		l.Use(v)
	}
	return l
}

func (s *Assert) Debug() (DebugInfo, bool) {
	if s.debug == nil {
		return DebugInfo{}, false
	}
	return *s.debug, true
}
func (s *Assert) Accept(v Visitor) { v.VisitAssert(s) }
func (s *Assert) Clone() Statement {
	clone := *s
	if s.debug != nil {
		d := *s.debug
		clone.debug = &d
	}
	return &clone
}
func (s *Assert) String() string { return fmt.Sprintf("assert(%s)", s.Constraint) }

// Select is `lhs = ite(cond, e1, e2)` over numeric operands.
type Select struct {
	Lhs      variable.Variable
	Cond     linear.Constraint
	E1, E2   linear.Expr
}

func NewSelect(lhs variable.Variable, cond linear.Constraint, e1, e2 linear.Expr) *Select {
	return &Select{Lhs: lhs, Cond: cond, E1: e1, E2: e2}
}

func (s *Select) Kind() Kind { return SelectKind }

func (s *Select) Live() LiveSet {
	l := NewLiveSet()
	for _, v := range s.Cond.Vars() {
		l.Use(v)
	}
	for _, v := range s.E1.Vars() {
		l.Use(v)
	}
	for _, v := range s.E2.Vars() {
		l.Use(v)
	}
	l.Def(s.Lhs)
	return l
}

func (s *Select) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *Select) Accept(v Visitor)         { v.VisitSelect(s) }
func (s *Select) Clone() Statement         { clone := *s; return &clone }
func (s *Select) String() string {
	return fmt.Sprintf("%s = ite(%s, %s, %s)", s.Lhs.Name, s.Cond, s.E1, s.E2)
}

// Unreachable marks a program point control never reaches.
type Unreachable struct{}

func NewUnreachable() *Unreachable { return &Unreachable{} }

func (s *Unreachable) Kind() Kind                  { return UnreachableKind }
func (s *Unreachable) Live() LiveSet                { return NewLiveSet() }
func (s *Unreachable) Debug() (DebugInfo, bool)     { return DebugInfo{}, false }
func (s *Unreachable) Accept(v Visitor)             { v.VisitUnreachable(s) }
func (s *Unreachable) Clone() Statement             { return &Unreachable{} }
func (s *Unreachable) String() string               { return "unreachable" }

// Havoc assigns an unconstrained value to lhs.
type Havoc struct {
	Lhs variable.Variable
}

func NewHavoc(lhs variable.Variable) *Havoc { return &Havoc{Lhs: lhs} }

func (s *Havoc) Kind() Kind { return HavocKind }
func (s *Havoc) Live() LiveSet {
	l := NewLiveSet()
	l.Def(s.Lhs)
	return l
}
func (s *Havoc) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *Havoc) Accept(v Visitor)         { v.VisitHavoc(s) }
func (s *Havoc) Clone() Statement         { clone := *s; return &clone }
func (s *Havoc) String() string           { return fmt.Sprintf("havoc(%s)", s.Lhs.Name) }

// IntCast truncates, sign-extends, or zero-extends src into dst.
type IntCast struct {
	Op       CastOp
	Src, Dst variable.Variable
	debug    *DebugInfo
}

// NewIntCast constructs an int_cast statement, enforcing the
// bit-width relationship spec.md §4.2 requires at construction time:
// trunc needs bits(src) > bits(dst); sext/zext need bits(dst) > bits(src).
func NewIntCast(op CastOp, src, dst variable.Variable, debug *DebugInfo) *IntCast {
	switch op {
	case Trunc:
		if src.Type.BitWidth <= dst.Type.BitWidth {
			crabfault.Raise(crabfault.Construction, nil,
				"trunc requires bits(src)=%d > bits(dst)=%d", src.Type.BitWidth, dst.Type.BitWidth)
		}
	case Sext, Zext:
		if dst.Type.BitWidth <= src.Type.BitWidth {
			crabfault.Raise(crabfault.Construction, nil,
				"%s requires bits(dst)=%d > bits(src)=%d", op, dst.Type.BitWidth, src.Type.BitWidth)
		}
	}
	return &IntCast{Op: op, Src: src, Dst: dst, debug: debug}
}

func (s *IntCast) Kind() Kind { return IntCastKind }
func (s *IntCast) Live() LiveSet {
	l := NewLiveSet()
	l.Use(s.Src)
	l.Def(s.Dst)
	return l
}
func (s *IntCast) Debug() (DebugInfo, bool) {
	if s.debug == nil {
		return DebugInfo{}, false
	}
	return *s.debug, true
}
func (s *IntCast) Accept(v Visitor) { v.VisitIntCast(s) }
func (s *IntCast) Clone() Statement {
	clone := *s
	if s.debug != nil {
		d := *s.debug
		clone.debug = &d
	}
	return &clone
}
func (s *IntCast) String() string {
	return fmt.Sprintf("%s = %s %s:%d to %s:%d", s.Dst.Name, s.Op, s.Src.Name, s.Src.Type.BitWidth, s.Dst.Name, s.Dst.Type.BitWidth)
}
