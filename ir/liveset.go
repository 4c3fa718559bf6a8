// Copyright 2015 Auburn University. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/crabir/crab/variable"
)

// LiveSet holds the uses and defs of a statement (or, when
// accumulated across a block, the aggregate of its statements' live
// sets) as two separate lists, each in order of insertion with
// duplicates suppressed — spec.md §3. The two lists are not checked
// against each other: a variable both read and written (x = x+1)
// appears in both. Membership testing is backed by a bitset.BitSet keyed on each
// variable's factory index, the same GEN/KILL bit-vector technique
// the teacher's dataflow builders use (extras/cfg/df.go,
// analysis/dataflow/live.go), generalized from a builder-local field
// into the live set itself.
type LiveSet struct {
	uses     []variable.Variable
	defs     []variable.Variable
	usesSeen *bitset.BitSet
	defsSeen *bitset.BitSet
}

// NewLiveSet returns an empty LiveSet.
func NewLiveSet() LiveSet {
	return LiveSet{
		usesSeen: bitset.New(0),
		defsSeen: bitset.New(0),
	}
}

func (l *LiveSet) ensure() {
	if l.usesSeen == nil {
		l.usesSeen = bitset.New(0)
	}
	if l.defsSeen == nil {
		l.defsSeen = bitset.New(0)
	}
}

// Use records v as used, unless already present.
func (l *LiveSet) Use(v variable.Variable) {
	l.ensure()
	idx := uint(v.Name.Index())
	if l.usesSeen.Test(idx) {
		return
	}
	l.usesSeen.Set(idx)
	l.uses = append(l.uses, v)
}

// Def records v as defined, unless already present.
func (l *LiveSet) Def(v variable.Variable) {
	l.ensure()
	idx := uint(v.Name.Index())
	if l.defsSeen.Test(idx) {
		return
	}
	l.defsSeen.Set(idx)
	l.defs = append(l.defs, v)
}

// Uses returns the used variables in insertion order.
func (l LiveSet) Uses() []variable.Variable { return append([]variable.Variable{}, l.uses...) }

// Defs returns the defined variables in insertion order.
func (l LiveSet) Defs() []variable.Variable { return append([]variable.Variable{}, l.defs...) }

// Merge folds other into l, preserving l's existing order and
// appending other's novel variables in other's order.
func (l *LiveSet) Merge(other LiveSet) {
	l.ensure()
	for _, v := range other.uses {
		l.Use(v)
	}
	for _, v := range other.defs {
		l.Def(v)
	}
}

// Clone returns a deep copy of l.
func (l LiveSet) Clone() LiveSet {
	out := NewLiveSet()
	out.Merge(l)
	return out
}
