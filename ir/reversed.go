package ir

// Reversed is a read-only, backward-facing view of a CFG: its entry
// is the underlying exit, its exit the underlying entry, every
// adjacency query swaps prev/next, and each block's statements are
// presented back-to-front without touching their individual semantics
// (spec.md §4.6). It is consumed by backward analyzers (e.g. a
// must-reach-exit or live-variable-at-exit pass) that want to walk a
// CFG as if control flowed the other way.
//
// The view is built once and is copyable/movable; it caches a
// label->reversed-block map so repeated GetNode calls return a stable
// reference instead of re-wrapping a block on every lookup.
type Reversed[L comparable] struct {
	under  *CFG[L]
	blocks map[L]*reversedBlock[L]
}

// reversedBlock presents an underlying block's statements in reverse
// order, leaving each statement's own Live/Kind/String untouched.
type reversedBlock[L comparable] struct {
	label L
	stmts []Statement
}

func (b *reversedBlock[L]) Label() L               { return b.label }
func (b *reversedBlock[L]) Statements() []Statement { return append([]Statement{}, b.stmts...) }

// Reverse builds a Reversed view over g. g must have an exit block —
// without one there is no well-defined entry for the reversed view.
func Reverse[L comparable](g *CFG[L]) *Reversed[L] {
	_ = g.Exit() // fatal (crabfault.View) if g has no exit
	r := &Reversed[L]{under: g, blocks: make(map[L]*reversedBlock[L], g.Len())}
	for _, label := range g.Labels() {
		b := g.GetNode(label)
		r.blocks[label] = &reversedBlock[L]{label: label, stmts: b.ReverseStatements()}
	}
	return r
}

// Entry returns the underlying CFG's exit.
func (r *Reversed[L]) Entry() L { return r.under.Exit() }

// Exit returns the underlying CFG's entry.
func (r *Reversed[L]) Exit() L { return r.under.Entry() }

// NextNodes returns the underlying CFG's predecessors of label.
func (r *Reversed[L]) NextNodes(label L) []L { return r.under.PrevNodes(label) }

// PrevNodes returns the underlying CFG's successors of label.
func (r *Reversed[L]) PrevNodes(label L) []L { return r.under.NextNodes(label) }

// GetNode returns the cached reversed-block view for label; fatal if missing.
func (r *Reversed[L]) GetNode(label L) *reversedBlock[L] {
	b, ok := r.blocks[label]
	if !ok {
		r.under.GetNode(label) // triggers the same fatal crabfault.Lookup
	}
	return b
}

// Labels returns every label the underlying CFG holds.
func (r *Reversed[L]) Labels() []L { return r.under.Labels() }
