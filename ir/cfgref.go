package ir

import "github.com/crabir/crab/crabfault"

// CFGRef is a non-owning, default-constructible reference to a CFG —
// the value-semantics wrapper spec.md §4.5 requires so that adapters
// expecting to copy a graph handle can do so without copying the
// graph itself. The zero value is the empty ref; every operation on
// it is fatal, per spec.md's "accessing any operation on an empty ref
// is fatal."
type CFGRef[L comparable] struct {
	target *CFG[L]
}

// RefTo wraps g in a non-owning reference.
func RefTo[L comparable](g *CFG[L]) CFGRef[L] { return CFGRef[L]{target: g} }

// Empty reports whether the ref holds no CFG.
func (r CFGRef[L]) Empty() bool { return r.target == nil }

func (r CFGRef[L]) get() *CFG[L] {
	if r.target == nil {
		crabfault.Raise(crabfault.View, nil, "cfg_ref: operation on empty reference")
	}
	return r.target
}

// CFG returns the underlying CFG; fatal if the ref is empty.
func (r CFGRef[L]) CFG() *CFG[L] { return r.get() }

// Equal delegates to the referenced CFGs' function declaration
// signatures (spec.md §4.5); two empty refs are equal, an empty and a
// non-empty ref are never equal.
func (r CFGRef[L]) Equal(other CFGRef[L]) bool {
	if r.Empty() || other.Empty() {
		return r.Empty() && other.Empty()
	}
	return r.target.FuncDecl().SignatureEqual(other.target.FuncDecl())
}
