package ir

import (
	"github.com/crabir/crab/crabfault"
	"github.com/crabir/crab/variable"
)

// CFG owns a set of labeled blocks reachable (in the graph-theoretic,
// not control-flow, sense) from a required entry label, with an
// optional exit and an optional function declaration. A CFG
// exclusively owns its blocks; a block exclusively owns its
// statements (spec.md §5) — nothing outside this package ever holds a
// block by value.
type CFG[L comparable] struct {
	entry     L
	hasExit   bool
	exit      L
	precision Precision
	decl      *FuncDecl

	blocks map[L]*Block[L]

	// index assigns each block a dense ordinal, reassigned whenever
	// the block set changes shape; simplify's reachable-set passes use
	// it to back a bitset.BitSet instead of a label-keyed map.
	index    map[L]uint
	indexOK  bool
}

// NewCFG returns an empty CFG with the given entry label and tracked
// precision. The entry block is created eagerly.
func NewCFG[L comparable](entry L, precision Precision) *CFG[L] {
	g := &CFG[L]{
		entry:     entry,
		precision: precision,
		blocks:    make(map[L]*Block[L]),
	}
	g.Insert(entry)
	return g
}

// SetExit marks label as the CFG's exit block, creating it if absent.
func (g *CFG[L]) SetExit(label L) {
	g.Insert(label)
	g.exit = label
	g.hasExit = true
}

// SetFuncDecl attaches a function declaration to the CFG.
func (g *CFG[L]) SetFuncDecl(decl *FuncDecl) { g.decl = decl }

// FuncDecl returns the CFG's function declaration, or nil if none was set.
func (g *CFG[L]) FuncDecl() *FuncDecl { return g.decl }

// Entry returns the entry label.
func (g *CFG[L]) Entry() L { return g.entry }

// Exit returns the exit label; fatal if the CFG has none.
func (g *CFG[L]) Exit() L {
	if !g.hasExit {
		crabfault.Raise(crabfault.View, nil, "cfg has no exit block")
	}
	return g.exit
}

// HasExit reports whether the CFG has an exit block.
func (g *CFG[L]) HasExit() bool { return g.hasExit }

// Precision returns the CFG's tracked precision.
func (g *CFG[L]) Precision() Precision { return g.precision }

// Insert returns the block for label, creating it at the CFG's
// tracked precision if absent.
func (g *CFG[L]) Insert(label L) *Block[L] {
	if b, ok := g.blocks[label]; ok {
		return b
	}
	b := newBlock(label, g.precision)
	g.blocks[label] = b
	g.indexOK = false
	return b
}

// GetNode returns the block for label; fatal if missing.
func (g *CFG[L]) GetNode(label L) *Block[L] {
	b, ok := g.blocks[label]
	if !ok {
		crabfault.Raise(crabfault.Lookup, nil, "get_node: no block for label %v", label)
	}
	return b
}

// Has reports whether label names a block in the CFG.
func (g *CFG[L]) Has(label L) bool {
	_, ok := g.blocks[label]
	return ok
}

// Remove deletes the block for label, disconnecting it from every
// neighbor (self-loops are dropped along with the block, not
// otherwise special-cased).
func (g *CFG[L]) Remove(label L) {
	b, ok := g.blocks[label]
	if !ok {
		return
	}
	for _, p := range b.Preds() {
		if p == label {
			continue
		}
		g.blocks[p].RemoveEdge(b)
	}
	for _, s := range b.Succs() {
		if s == label {
			continue
		}
		b.RemoveEdge(g.blocks[s])
	}
	delete(g.blocks, label)
	g.indexOK = false
}

// NextNodes returns label's successor labels.
func (g *CFG[L]) NextNodes(label L) []L { return g.GetNode(label).Succs() }

// PrevNodes returns label's predecessor labels.
func (g *CFG[L]) PrevNodes(label L) []L { return g.GetNode(label).Preds() }

// Labels returns every block label the CFG currently holds, in no
// particular order (spec.md §4.4: CFG iteration is unordered by design).
func (g *CFG[L]) Labels() []L {
	out := make([]L, 0, len(g.blocks))
	for l := range g.blocks {
		out = append(out, l)
	}
	return out
}

// Len returns the number of blocks in the CFG.
func (g *CFG[L]) Len() int { return len(g.blocks) }

// GetVars returns the join of every block's live set, as a flat
// deduplicated sequence: all used variables first, then the defined
// variables not already among them, each group in first-seen order
// over an unordered block walk.
func (g *CFG[L]) GetVars() []variable.Variable {
	acc := NewLiveSet()
	for _, b := range g.blocks {
		acc.Merge(b.Live())
	}
	return append(acc.Uses(), filterNewDefs(acc)...)
}

// filterNewDefs returns the defs of acc that are not already present
// among its uses, so GetVars reports each variable once.
func filterNewDefs(acc LiveSet) []variable.Variable {
	seen := make(map[uint64]bool)
	for _, v := range acc.Uses() {
		seen[v.Name.Index()] = true
	}
	var out []variable.Variable
	for _, v := range acc.Defs() {
		if !seen[v.Name.Index()] {
			seen[v.Name.Index()] = true
			out = append(out, v)
		}
	}
	return out
}

// ensureIndex (re)builds the dense label->ordinal map used to back
// bitset-based reachable-set computations in simplify.go.
func (g *CFG[L]) ensureIndex() {
	if g.indexOK {
		return
	}
	g.index = make(map[L]uint, len(g.blocks))
	var i uint
	for l := range g.blocks {
		g.index[l] = i
		i++
	}
	g.indexOK = true
}
