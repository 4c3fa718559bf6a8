package ir

import "github.com/bits-and-blooms/bitset"

// Simplify runs the full pipeline spec.md §4.4 prescribes:
// merge_blocks, then remove_unreachable_blocks, then
// remove_useless_blocks, then merge_blocks twice more — removing
// unreachable blocks can expose further merge opportunities that a
// single merge pass, run before the removal, could not see.
func (g *CFG[L]) Simplify() {
	g.mergeBlocks()
	g.removeUnreachableBlocks()
	if g.hasExit {
		g.removeUselessBlocks()
	}
	g.mergeBlocks()
	g.mergeBlocks()
}

// mergeBlocks performs a DFS from entry, collapsing every
// merge-eligible block into its sole predecessor. A block B is
// eligible iff it has exactly one predecessor, exactly one successor,
// and contains no assume/bool_assume/array_load statement (collapsing
// across one of those would erase a guard or a precision-relevant
// load at a join point).
func (g *CFG[L]) mergeBlocks() {
	visited := make(map[L]bool)
	var walk func(label L)
	walk = func(label L) {
		if visited[label] {
			return
		}
		visited[label] = true

		for {
			b := g.blocks[label]
			succs := b.Succs()
			if len(succs) != 1 {
				break
			}
			next := succs[0]
			if next == label {
				break
			}
			c := g.blocks[next]
			if len(c.Preds()) != 1 || len(c.Succs()) != 1 || c.hasMergeBarrier() {
				break
			}
			b.MergeBack(c)
			b.RemoveEdge(c)
			for _, grandchild := range c.Succs() {
				gc := g.blocks[grandchild]
				c.RemoveEdge(gc)
				b.AddEdge(gc)
			}
			delete(g.blocks, next)
			g.indexOK = false
			if g.hasExit && g.exit == next {
				g.exit = label
			}
		}

		for _, s := range g.blocks[label].Succs() {
			walk(s)
		}
	}
	walk(g.entry)
}

// removeUnreachableBlocks marks the set of blocks reachable by
// forward traversal from entry and deletes every block not in it.
func (g *CFG[L]) removeUnreachableBlocks() {
	reachable := g.reachableFrom(g.entry, func(label L) []L { return g.NextNodes(label) })
	g.removeExcept(reachable)
}

// removeUselessBlocks requires an exit block: it builds the reversed
// view and marks the set reachable by forward traversal from the
// reversed view's entry (the original exit), then deletes every
// original block not in that set. The entry block is always kept even
// if it cannot reach the exit (spec.md §8 invariant 4: entry survives
// simplification regardless of reachability).
func (g *CFG[L]) removeUselessBlocks() {
	rev := Reverse(g)
	reachable := g.reachableFrom(rev.Entry(), func(label L) []L { return rev.NextNodes(label) })
	reachable[g.entry] = true
	g.removeExcept(reachable)
}

// reachableFrom runs a bitset-backed forward DFS from start, using
// g's dense block index the same way extras/cfg/df.go's GEN/KILL
// builder indexes ast.Objects into a bit vector.
func (g *CFG[L]) reachableFrom(start L, next func(L) []L) map[L]bool {
	g.ensureIndex()
	seen := bitset.New(uint(len(g.blocks)))
	reachable := make(map[L]bool, len(g.blocks))

	var walk func(label L)
	walk = func(label L) {
		idx := uint(g.index[label])
		if seen.Test(idx) {
			return
		}
		seen.Set(idx)
		reachable[label] = true
		for _, s := range next(label) {
			walk(s)
		}
	}
	walk(start)
	return reachable
}

func (g *CFG[L]) removeExcept(keep map[L]bool) {
	for label := range g.blocks {
		if !keep[label] {
			g.Remove(label)
		}
	}
}
