package ir

import (
	"fmt"

	"github.com/crabir/crab/linear"
	"github.com/crabir/crab/variable"
)

// PtrLoad is `lhs = *(rhs)`. Per spec.md §9's deliberate (and
// preserved) choice, lhs appears in uses, not defs — the loaded value
// is understood to refine both sides rather than purely define lhs.
type PtrLoad struct {
	Lhs, Rhs variable.Variable
	debug    *DebugInfo
}

func NewPtrLoad(lhs, rhs variable.Variable, debug *DebugInfo) *PtrLoad {
	return &PtrLoad{Lhs: lhs, Rhs: rhs, debug: debug}
}

func (s *PtrLoad) Kind() Kind { return PtrLoadKind }
func (s *PtrLoad) Live() LiveSet {
	l := NewLiveSet()
	l.Use(s.Lhs)
	l.Use(s.Rhs)
	return l
}
func (s *PtrLoad) Debug() (DebugInfo, bool) {
	if s.debug == nil {
		return DebugInfo{}, false
	}
	return *s.debug, true
}
func (s *PtrLoad) Accept(v Visitor) { v.VisitPtrLoad(s) }
func (s *PtrLoad) Clone() Statement {
	clone := *s
	if s.debug != nil {
		d := *s.debug
		clone.debug = &d
	}
	return &clone
}
func (s *PtrLoad) String() string { return fmt.Sprintf("%s = *(%s)", s.Lhs.Name, s.Rhs.Name) }

// PtrStore is `*(lhs) = rhs`.
type PtrStore struct {
	Lhs, Rhs variable.Variable
	debug    *DebugInfo
}

func NewPtrStore(lhs, rhs variable.Variable, debug *DebugInfo) *PtrStore {
	return &PtrStore{Lhs: lhs, Rhs: rhs, debug: debug}
}

func (s *PtrStore) Kind() Kind { return PtrStoreKind }
func (s *PtrStore) Live() LiveSet {
	l := NewLiveSet()
	l.Use(s.Lhs)
	l.Use(s.Rhs)
	return l
}
func (s *PtrStore) Debug() (DebugInfo, bool) {
	if s.debug == nil {
		return DebugInfo{}, false
	}
	return *s.debug, true
}
func (s *PtrStore) Accept(v Visitor) { v.VisitPtrStore(s) }
func (s *PtrStore) Clone() Statement {
	clone := *s
	if s.debug != nil {
		d := *s.debug
		clone.debug = &d
	}
	return &clone
}
func (s *PtrStore) String() string { return fmt.Sprintf("*(%s) = %s", s.Lhs.Name, s.Rhs.Name) }

// PtrAssign is `lhs = &(rhs) + offset`.
type PtrAssign struct {
	Lhs, Rhs variable.Variable
	Offset   linear.Expr
}

func NewPtrAssign(lhs, rhs variable.Variable, offset linear.Expr) *PtrAssign {
	return &PtrAssign{Lhs: lhs, Rhs: rhs, Offset: offset}
}

func (s *PtrAssign) Kind() Kind { return PtrAssignKind }
func (s *PtrAssign) Live() LiveSet {
	l := NewLiveSet()
	l.Use(s.Rhs)
	l.Def(s.Lhs)
	return l
}
func (s *PtrAssign) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *PtrAssign) Accept(v Visitor)         { v.VisitPtrAssign(s) }
func (s *PtrAssign) Clone() Statement         { clone := *s; return &clone }
func (s *PtrAssign) String() string {
	return fmt.Sprintf("%s = &(%s) + %s", s.Lhs.Name, s.Rhs.Name, s.Offset)
}

// PtrObject is `lhs = &(addr)`, the address of a memory object.
type PtrObject struct {
	Lhs     variable.Variable
	Address int
}

func NewPtrObject(lhs variable.Variable, address int) *PtrObject {
	return &PtrObject{Lhs: lhs, Address: address}
}

func (s *PtrObject) Kind() Kind { return PtrObjectKind }
func (s *PtrObject) Live() LiveSet {
	l := NewLiveSet()
	l.Def(s.Lhs)
	return l
}
func (s *PtrObject) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *PtrObject) Accept(v Visitor)         { v.VisitPtrObject(s) }
func (s *PtrObject) Clone() Statement         { clone := *s; return &clone }
func (s *PtrObject) String() string           { return fmt.Sprintf("%s = &(%d)", s.Lhs.Name, s.Address) }

// PtrFunction is `lhs = &(funcname)`, the address of a function.
type PtrFunction struct {
	Lhs      variable.Variable
	FuncName string
}

func NewPtrFunction(lhs variable.Variable, funcName string) *PtrFunction {
	return &PtrFunction{Lhs: lhs, FuncName: funcName}
}

func (s *PtrFunction) Kind() Kind { return PtrFunctionKind }
func (s *PtrFunction) Live() LiveSet {
	l := NewLiveSet()
	l.Def(s.Lhs)
	return l
}
func (s *PtrFunction) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *PtrFunction) Accept(v Visitor)         { v.VisitPtrFunction(s) }
func (s *PtrFunction) Clone() Statement         { clone := *s; return &clone }
func (s *PtrFunction) String() string {
	return fmt.Sprintf("%s = &(%s)", s.Lhs.Name, s.FuncName)
}

// PtrNull is `lhs = NULL`.
type PtrNull struct {
	Lhs variable.Variable
}

func NewPtrNull(lhs variable.Variable) *PtrNull { return &PtrNull{Lhs: lhs} }

func (s *PtrNull) Kind() Kind { return PtrNullKind }
func (s *PtrNull) Live() LiveSet {
	l := NewLiveSet()
	l.Def(s.Lhs)
	return l
}
func (s *PtrNull) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *PtrNull) Accept(v Visitor)         { v.VisitPtrNull(s) }
func (s *PtrNull) Clone() Statement         { clone := *s; return &clone }
func (s *PtrNull) String() string           { return fmt.Sprintf("%s = NULL", s.Lhs.Name) }

// PtrAssume is `assume(ptr_constraint)`. Block builders skip emitting
// this statement when the constraint is a tautology or contradiction
// (spec.md §4.2); the statement itself, once constructed, still
// reports its full live set.
type PtrAssume struct {
	Constraint linear.PtrConstraint
}

func NewPtrAssume(c linear.PtrConstraint) *PtrAssume { return &PtrAssume{Constraint: c} }

func (s *PtrAssume) Kind() Kind { return PtrAssumeKind }
func (s *PtrAssume) Live() LiveSet {
	l := NewLiveSet()
	for _, v := range s.Constraint.Vars() {
		l.Use(v)
	}
	return l
}
func (s *PtrAssume) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *PtrAssume) Accept(v Visitor)         { v.VisitPtrAssume(s) }
func (s *PtrAssume) Clone() Statement         { clone := *s; return &clone }
func (s *PtrAssume) String() string           { return fmt.Sprintf("assume(%s)", s.Constraint) }

// PtrAssert is `assert(ptr_constraint)`, same skip-on-taut/contra rule as PtrAssume.
type PtrAssert struct {
	Constraint linear.PtrConstraint
	debug      *DebugInfo
}

func NewPtrAssert(c linear.PtrConstraint, debug *DebugInfo) *PtrAssert {
	return &PtrAssert{Constraint: c, debug: debug}
}

func (s *PtrAssert) Kind() Kind { return PtrAssertKind }
func (s *PtrAssert) Live() LiveSet {
	l := NewLiveSet()
	for _, v := range s.Constraint.Vars() {
		l.Use(v)
	}
	return l
}
func (s *PtrAssert) Debug() (DebugInfo, bool) {
	if s.debug == nil {
		return DebugInfo{}, false
	}
	return *s.debug, true
}
func (s *PtrAssert) Accept(v Visitor) { v.VisitPtrAssert(s) }
func (s *PtrAssert) Clone() Statement {
	clone := *s
	if s.debug != nil {
		d := *s.debug
		clone.debug = &d
	}
	return &clone
}
func (s *PtrAssert) String() string { return fmt.Sprintf("assert(%s)", s.Constraint) }
