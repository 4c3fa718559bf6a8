package ir

import (
	"fmt"

	"github.com/crabir/crab/crabfault"
	"github.com/crabir/crab/linear"
	"github.com/crabir/crab/variable"
)

func requireArray(arr variable.Variable, who string) {
	if !arr.Type.Kind.IsArray() {
		crabfault.Raise(crabfault.Construction, nil, "%s: %s is not an array", who, arr)
	}
}

// arrayRange is the shared payload of array_init and array_assume:
// `assume(forall l in [lb,ub] % elem_size :: arr[l] = val)`.
type arrayRange struct {
	Arr      variable.Variable
	ElemSize ScalarOperand
	Lb, Ub   ScalarOperand
	Val      ScalarOperand
}

func (s arrayRange) live() LiveSet {
	l := NewLiveSet()
	l.Use(s.Arr)
	s.Lb.use(&l)
	s.Ub.use(&l)
	s.Val.use(&l)
	return l
}

func (s arrayRange) render() string {
	return fmt.Sprintf("assume(forall l in [%s,%s] %% %s :: %s[l] = %s)", s.Lb, s.Ub, s.ElemSize, s.Arr.Name, s.Val)
}

// ArrayInit initializes every element of arr in [lb,ub] to val.
type ArrayInit struct{ arrayRange }

// NewArrayInit constructs an array_init statement. arr must have an
// array type.
func NewArrayInit(arr variable.Variable, elemSize, lb, ub, val ScalarOperand) *ArrayInit {
	requireArray(arr, "array_init")
	return &ArrayInit{arrayRange{Arr: arr, ElemSize: elemSize, Lb: lb, Ub: ub, Val: val}}
}

func (s *ArrayInit) Kind() Kind                  { return ArrayInitKind }
func (s *ArrayInit) Live() LiveSet                { return s.live() }
func (s *ArrayInit) Debug() (DebugInfo, bool)     { return DebugInfo{}, false }
func (s *ArrayInit) Accept(v Visitor)             { v.VisitArrayInit(s) }
func (s *ArrayInit) Clone() Statement             { clone := *s; return &clone }
func (s *ArrayInit) String() string               { return s.render() }

// ArrayAssume assumes that every element of arr in [lb,ub] already equals val.
type ArrayAssume struct{ arrayRange }

// NewArrayAssume constructs an array_assume statement. arr must have
// an array type, and lb/ub/val must each be a constant or a single
// variable (ScalarOperand enforces this at the type level).
func NewArrayAssume(arr variable.Variable, elemSize, lb, ub, val ScalarOperand) *ArrayAssume {
	requireArray(arr, "array_assume")
	return &ArrayAssume{arrayRange{Arr: arr, ElemSize: elemSize, Lb: lb, Ub: ub, Val: val}}
}

func (s *ArrayAssume) Kind() Kind                  { return ArrayAssumeKind }
func (s *ArrayAssume) Live() LiveSet                { return s.live() }
func (s *ArrayAssume) Debug() (DebugInfo, bool)     { return DebugInfo{}, false }
func (s *ArrayAssume) Accept(v Visitor)             { v.VisitArrayAssume(s) }
func (s *ArrayAssume) Clone() Statement             { clone := *s; return &clone }
func (s *ArrayAssume) String() string               { return s.render() }

// ArrayStore is `array_store(arr, idx, v)`, writing v into arr[idx].
type ArrayStore struct {
	Arr         variable.Variable
	Idx         linear.Expr
	Value       ScalarOperand
	ElemSize    ScalarOperand
	IsSingleton bool
}

// NewArrayStore constructs an array_store statement. arr must have an
// array type.
func NewArrayStore(arr variable.Variable, idx linear.Expr, value, elemSize ScalarOperand, isSingleton bool) *ArrayStore {
	requireArray(arr, "array_store")
	return &ArrayStore{Arr: arr, Idx: idx, Value: value, ElemSize: elemSize, IsSingleton: isSingleton}
}

func (s *ArrayStore) Kind() Kind { return ArrayStoreKind }

func (s *ArrayStore) Live() LiveSet {
	l := NewLiveSet()
	l.Use(s.Arr)
	for _, v := range s.Idx.Vars() {
		l.Use(v)
	}
	s.Value.use(&l)
	return l
}

func (s *ArrayStore) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *ArrayStore) Accept(v Visitor)         { v.VisitArrayStore(s) }
func (s *ArrayStore) Clone() Statement         { clone := *s; return &clone }
func (s *ArrayStore) String() string {
	return fmt.Sprintf("array_store(%s, %s, %s)", s.Arr.Name, s.Idx, s.Value)
}

// ArrayLoad is `lhs = array_load(arr, idx)`.
type ArrayLoad struct {
	Lhs      variable.Variable
	Arr      variable.Variable
	Idx      linear.Expr
	ElemSize ScalarOperand
}

// NewArrayLoad constructs an array_load statement. arr must have an
// array type.
func NewArrayLoad(lhs, arr variable.Variable, idx linear.Expr, elemSize ScalarOperand) *ArrayLoad {
	requireArray(arr, "array_load")
	return &ArrayLoad{Lhs: lhs, Arr: arr, Idx: idx, ElemSize: elemSize}
}

func (s *ArrayLoad) Kind() Kind { return ArrayLoadKind }

func (s *ArrayLoad) Live() LiveSet {
	l := NewLiveSet()
	l.Use(s.Arr)
	for _, v := range s.Idx.Vars() {
		l.Use(v)
	}
	l.Def(s.Lhs)
	return l
}

func (s *ArrayLoad) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *ArrayLoad) Accept(v Visitor)         { v.VisitArrayLoad(s) }
func (s *ArrayLoad) Clone() Statement         { clone := *s; return &clone }
func (s *ArrayLoad) String() string {
	return fmt.Sprintf("%s = array_load(%s, %s)", s.Lhs.Name, s.Arr.Name, s.Idx)
}

// ArrayAssign is `lhs_arr = rhs_arr`, a whole-array copy.
type ArrayAssign struct {
	LhsArr, RhsArr variable.Variable
}

// NewArrayAssign constructs an array_assign statement. Both sides
// must have the same element type.
func NewArrayAssign(lhsArr, rhsArr variable.Variable) *ArrayAssign {
	requireArray(lhsArr, "array_assign")
	requireArray(rhsArr, "array_assign")
	if lhsArr.Type.Kind.ElemKind() != rhsArr.Type.Kind.ElemKind() {
		crabfault.Raise(crabfault.Construction, nil,
			"array_assign: element type mismatch between %s and %s", lhsArr, rhsArr)
	}
	return &ArrayAssign{LhsArr: lhsArr, RhsArr: rhsArr}
}

func (s *ArrayAssign) Kind() Kind { return ArrayAssignKind }

func (s *ArrayAssign) Live() LiveSet {
	l := NewLiveSet()
	l.Use(s.RhsArr)
	l.Def(s.LhsArr)
	return l
}

func (s *ArrayAssign) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *ArrayAssign) Accept(v Visitor)         { v.VisitArrayAssign(s) }
func (s *ArrayAssign) Clone() Statement         { clone := *s; return &clone }
func (s *ArrayAssign) String() string {
	return fmt.Sprintf("%s = %s", s.LhsArr.Name, s.RhsArr.Name)
}
