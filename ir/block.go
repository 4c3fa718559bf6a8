package ir

import (
	"github.com/crabir/crab/linear"
	"github.com/crabir/crab/variable"
)

// Precision is the level of detail a CFG tracks, ordered coarsest to
// finest. Pointer- and array-kind builders consult the owning block's
// precision and silently no-op below the threshold their kind needs
// (spec.md §4.5), so a front-end can target a coarser analysis without
// branching at every builder call site.
type Precision int

const (
	Num Precision = iota
	Ptr
	Arr
)

// needs reports whether p is sufficient to admit a builder requiring want.
func (p Precision) needs(want Precision) bool { return p >= want }

// Block is an ordered list of statements plus its CFG adjacency, keyed
// by a caller-chosen label type. Labels need only be comparable: the
// CFG iterates blocks without any ordering guarantee (spec.md §4.4),
// and the one place order matters — rendering — walks the graph by
// DFS from the entry rather than by sorting labels.
type Block[L comparable] struct {
	label     L
	precision Precision

	stmts       []Statement
	insertFront bool

	preds []L
	succs []L
	predSeen map[L]bool
	succSeen map[L]bool

	live LiveSet
}

func newBlock[L comparable](label L, precision Precision) *Block[L] {
	return &Block[L]{
		label:     label,
		precision: precision,
		predSeen:  make(map[L]bool),
		succSeen:  make(map[L]bool),
		live:      NewLiveSet(),
	}
}

// Label returns the block's CFG key.
func (b *Block[L]) Label() L { return b.label }

// Precision returns the precision this block was created with.
func (b *Block[L]) Precision() Precision { return b.precision }

// Size returns the number of statements in the block.
func (b *Block[L]) Size() int { return len(b.stmts) }

// Live returns the block's aggregate live set.
func (b *Block[L]) Live() LiveSet { return b.live }

// PrependNext makes the next AddStatement call push to the front of
// the statement list instead of the back; the flag resets itself
// after that single insertion.
func (b *Block[L]) PrependNext() { b.insertFront = true }

// AddStatement takes ownership of stmt, inserting it at the block's
// current insertion point (back, unless PrependNext was just
// called) and folding its live set into the block's aggregate.
func (b *Block[L]) AddStatement(stmt Statement) {
	if b.insertFront {
		b.stmts = append([]Statement{stmt}, b.stmts...)
		b.insertFront = false
	} else {
		b.stmts = append(b.stmts, stmt)
	}
	b.live.Merge(stmt.Live())
}

// Statements returns the block's statements in forward order.
func (b *Block[L]) Statements() []Statement {
	return append([]Statement{}, b.stmts...)
}

// ReverseStatements returns the block's statements in reverse order.
func (b *Block[L]) ReverseStatements() []Statement {
	out := make([]Statement, len(b.stmts))
	for i, s := range b.stmts {
		out[len(b.stmts)-1-i] = s
	}
	return out
}

// Preds returns predecessor labels in first-added order.
func (b *Block[L]) Preds() []L { return append([]L{}, b.preds...) }

// Succs returns successor labels in first-added order.
func (b *Block[L]) Succs() []L { return append([]L{}, b.succs...) }

// ReversePreds returns predecessor labels in reverse order.
func (b *Block[L]) ReversePreds() []L { return reverseLabels(b.preds) }

// ReverseSuccs returns successor labels in reverse order.
func (b *Block[L]) ReverseSuccs() []L { return reverseLabels(b.succs) }

func reverseLabels[L comparable](ls []L) []L {
	out := make([]L, len(ls))
	for i, l := range ls {
		out[len(ls)-1-i] = l
	}
	return out
}

// AddEdge records this->other, and the symmetric predecessor entry on
// other. Idempotent.
func (b *Block[L]) AddEdge(other *Block[L]) {
	if !b.succSeen[other.label] {
		b.succSeen[other.label] = true
		b.succs = append(b.succs, other.label)
	}
	if !other.predSeen[b.label] {
		other.predSeen[b.label] = true
		other.preds = append(other.preds, b.label)
	}
}

// RemoveEdge undoes AddEdge. Idempotent.
func (b *Block[L]) RemoveEdge(other *Block[L]) {
	if b.succSeen[other.label] {
		delete(b.succSeen, other.label)
		b.succs = removeLabel(b.succs, other.label)
	}
	if other.predSeen[b.label] {
		delete(other.predSeen, b.label)
		other.preds = removeLabel(other.preds, b.label)
	}
}

func removeLabel[L comparable](ls []L, target L) []L {
	for i, l := range ls {
		if l == target {
			return append(ls[:i], ls[i+1:]...)
		}
	}
	return ls
}

// MergeBack splices other's statements onto the back of b's list; the
// aggregate live set becomes the union of both.
func (b *Block[L]) MergeBack(other *Block[L]) {
	b.stmts = append(b.stmts, other.stmts...)
	b.live.Merge(other.live)
}

// MergeFront splices other's statements onto the front of b's list.
func (b *Block[L]) MergeFront(other *Block[L]) {
	b.stmts = append(append([]Statement{}, other.stmts...), b.stmts...)
	b.live.Merge(other.live)
}

// Clone returns a deep copy of b, including adjacency label lists and
// aggregate live set, but with no edges wired to any other block —
// the caller reconnects clones via AddEdge.
func (b *Block[L]) Clone() *Block[L] {
	clone := newBlock(b.label, b.precision)
	clone.stmts = make([]Statement, len(b.stmts))
	for i, s := range b.stmts {
		clone.stmts[i] = s.Clone()
	}
	clone.preds = append([]L{}, b.preds...)
	clone.succs = append([]L{}, b.succs...)
	for _, l := range clone.preds {
		clone.predSeen[l] = true
	}
	for _, l := range clone.succs {
		clone.succSeen[l] = true
	}
	clone.live = b.live.Clone()
	return clone
}

// hasMergeBarrier reports whether any statement in b is an assume,
// bool_assume, or array_load — the kinds merge-blocks must never
// collapse across, since doing so would erase a guard or a
// precision-relevant load (spec.md §4.4.1).
func (b *Block[L]) hasMergeBarrier() bool {
	for _, s := range b.stmts {
		switch s.Kind() {
		case AssumeKind, BoolAssumeKind, ArrayLoadKind:
			return true
		}
	}
	return false
}

// --- typed builders, one per statement kind, plus convenience wrappers ---

func (b *Block[L]) BinOp(lhs variable.Variable, op ArithOp, left, right linear.Expr, debug *DebugInfo) {
	b.AddStatement(NewBinOp(lhs, op, left, right, debug))
}
func (b *Block[L]) Add(lhs variable.Variable, left, right linear.Expr) {
	b.BinOp(lhs, Add, left, right, nil)
}
func (b *Block[L]) Sub(lhs variable.Variable, left, right linear.Expr) {
	b.BinOp(lhs, Sub, left, right, nil)
}
func (b *Block[L]) Mul(lhs variable.Variable, left, right linear.Expr) {
	b.BinOp(lhs, Mul, left, right, nil)
}
func (b *Block[L]) Div(lhs variable.Variable, left, right linear.Expr) {
	b.BinOp(lhs, DivS, left, right, nil)
}
func (b *Block[L]) Udiv(lhs variable.Variable, left, right linear.Expr) {
	b.BinOp(lhs, DivU, left, right, nil)
}
func (b *Block[L]) Rem(lhs variable.Variable, left, right linear.Expr) {
	b.BinOp(lhs, RemS, left, right, nil)
}
func (b *Block[L]) Urem(lhs variable.Variable, left, right linear.Expr) {
	b.BinOp(lhs, RemU, left, right, nil)
}
func (b *Block[L]) BitwiseAnd(lhs variable.Variable, left, right linear.Expr) {
	b.BinOp(lhs, BAnd, left, right, nil)
}
func (b *Block[L]) BitwiseOr(lhs variable.Variable, left, right linear.Expr) {
	b.BinOp(lhs, BOr, left, right, nil)
}
func (b *Block[L]) BitwiseXor(lhs variable.Variable, left, right linear.Expr) {
	b.BinOp(lhs, BXor, left, right, nil)
}

func (b *Block[L]) Assign(lhs variable.Variable, rhs linear.Expr) {
	b.AddStatement(NewAssign(lhs, rhs))
}
func (b *Block[L]) Assume(c linear.Constraint) { b.AddStatement(NewAssume(c)) }
func (b *Block[L]) Havoc(lhs variable.Variable) { b.AddStatement(NewHavoc(lhs)) }
func (b *Block[L]) Unreachable()                { b.AddStatement(NewUnreachable()) }
func (b *Block[L]) Select(lhs variable.Variable, cond linear.Constraint, e1, e2 linear.Expr) {
	b.AddStatement(NewSelect(lhs, cond, e1, e2))
}
func (b *Block[L]) Assertion(c linear.Constraint, debug *DebugInfo) {
	b.AddStatement(NewAssert(c, debug))
}

func (b *Block[L]) Truncate(src, dst variable.Variable, debug *DebugInfo) {
	b.AddStatement(NewIntCast(Trunc, src, dst, debug))
}
func (b *Block[L]) Sext(src, dst variable.Variable, debug *DebugInfo) {
	b.AddStatement(NewIntCast(Sext, src, dst, debug))
}
func (b *Block[L]) Zext(src, dst variable.Variable, debug *DebugInfo) {
	b.AddStatement(NewIntCast(Zext, src, dst, debug))
}

func (b *Block[L]) Callsite(funcName string, lhs []variable.Variable, args []linear.Expr) {
	b.AddStatement(NewCallsite(funcName, lhs, args))
}
func (b *Block[L]) Ret(vars []variable.Variable) { b.AddStatement(NewReturn(vars)) }

// --- array builders: no-op below Arr precision ---

func (b *Block[L]) ArrayInit(arr variable.Variable, elemSize, lb, ub, val ScalarOperand) {
	if !b.precision.needs(Arr) {
		return
	}
	b.AddStatement(NewArrayInit(arr, elemSize, lb, ub, val))
}
func (b *Block[L]) ArrayAssume(arr variable.Variable, elemSize, lb, ub, val ScalarOperand) {
	if !b.precision.needs(Arr) {
		return
	}
	b.AddStatement(NewArrayAssume(arr, elemSize, lb, ub, val))
}
func (b *Block[L]) ArrayStore(arr variable.Variable, idx linear.Expr, value, elemSize ScalarOperand, isSingleton bool) {
	if !b.precision.needs(Arr) {
		return
	}
	b.AddStatement(NewArrayStore(arr, idx, value, elemSize, isSingleton))
}
func (b *Block[L]) ArrayLoad(lhs, arr variable.Variable, idx linear.Expr, elemSize ScalarOperand) {
	if !b.precision.needs(Arr) {
		return
	}
	b.AddStatement(NewArrayLoad(lhs, arr, idx, elemSize))
}
func (b *Block[L]) ArrayAssign(lhsArr, rhsArr variable.Variable) {
	if !b.precision.needs(Arr) {
		return
	}
	b.AddStatement(NewArrayAssign(lhsArr, rhsArr))
}

// --- pointer builders: no-op below Ptr precision ---

func (b *Block[L]) PtrLoad(lhs, rhs variable.Variable, debug *DebugInfo) {
	if !b.precision.needs(Ptr) {
		return
	}
	b.AddStatement(NewPtrLoad(lhs, rhs, debug))
}
func (b *Block[L]) PtrStore(lhs, rhs variable.Variable, debug *DebugInfo) {
	if !b.precision.needs(Ptr) {
		return
	}
	b.AddStatement(NewPtrStore(lhs, rhs, debug))
}
func (b *Block[L]) PtrAssign(lhs, rhs variable.Variable, offset linear.Expr) {
	if !b.precision.needs(Ptr) {
		return
	}
	b.AddStatement(NewPtrAssign(lhs, rhs, offset))
}
func (b *Block[L]) PtrObject(lhs variable.Variable, address int) {
	if !b.precision.needs(Ptr) {
		return
	}
	b.AddStatement(NewPtrObject(lhs, address))
}
func (b *Block[L]) PtrFunction(lhs variable.Variable, funcName string) {
	if !b.precision.needs(Ptr) {
		return
	}
	b.AddStatement(NewPtrFunction(lhs, funcName))
}
func (b *Block[L]) PtrNull(lhs variable.Variable) {
	if !b.precision.needs(Ptr) {
		return
	}
	b.AddStatement(NewPtrNull(lhs))
}

// PtrAssume skips emitting the statement when the constraint is a
// tautology or contradiction (spec.md §4.2): both are decided and
// contribute nothing an abstract domain can act on.
func (b *Block[L]) PtrAssume(c linear.PtrConstraint) {
	if !b.precision.needs(Ptr) || c.Taut != linear.Conditional {
		return
	}
	b.AddStatement(NewPtrAssume(c))
}
func (b *Block[L]) PtrAssert(c linear.PtrConstraint, debug *DebugInfo) {
	if !b.precision.needs(Ptr) || c.Taut != linear.Conditional {
		return
	}
	b.AddStatement(NewPtrAssert(c, debug))
}

// --- bool builders ---

func (b *Block[L]) BoolBinOp(lhs variable.Variable, op BoolOp, op1, op2 variable.Variable, debug *DebugInfo) {
	b.AddStatement(NewBoolBinOp(lhs, op, op1, op2, debug))
}
func (b *Block[L]) BoolAssignCst(lhs variable.Variable, c linear.Constraint) {
	b.AddStatement(NewBoolAssignCst(lhs, c))
}
func (b *Block[L]) BoolAssignVar(lhs, rhs variable.Variable, isNegated bool) {
	b.AddStatement(NewBoolAssignVar(lhs, rhs, isNegated))
}
func (b *Block[L]) BoolAssume(v variable.Variable, isNegated bool) {
	b.AddStatement(NewBoolAssume(v, isNegated))
}
func (b *Block[L]) BoolAssert(v variable.Variable, debug *DebugInfo) {
	b.AddStatement(NewBoolAssert(v, debug))
}
func (b *Block[L]) BoolSelect(lhs, cond, b1, b2 variable.Variable) {
	b.AddStatement(NewBoolSelect(lhs, cond, b1, b2))
}
