// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package variable implements the variable factory and typed variable
// described by spec.md §3-4.1: interning of arbitrary front-end keys
// into densely-indexed names, and the (name, type[, bit-width]) pair
// that statements and the type checker operate over.
package variable

import "fmt"

// IndexedName is a variable name equated by integer index. Two
// look-ups of the same factory key yield IndexedNames with the same
// index; distinct keys yield distinct indices. Equality is by index
// and factory, ordering by index only — the display string is carried
// for printing and is not part of identity.
type IndexedName struct {
	index   uint64
	display string
	factory *Factory // weak; outlives any name derived from it
}

// Index returns the name's dense index, unique within its factory.
func (n IndexedName) Index() uint64 { return n.index }

// Equal reports whether two names come from the same factory and have
// the same index. Names from different factories are never equal,
// even if their indices collide.
func (n IndexedName) Equal(other IndexedName) bool {
	return n.factory == other.factory && n.index == other.index
}

// Less orders names by index, giving a total order usable for stable
// iteration (e.g. sorting a CFG's variable set for hashing).
func (n IndexedName) Less(other IndexedName) bool {
	return n.index < other.index
}

func (n IndexedName) String() string {
	if n.display != "" {
		return n.display
	}
	return fmt.Sprintf("$%d", n.index)
}

// Factory interns arbitrary string keys into stable IndexedNames.
// Indices are monotonically assigned starting at a configurable
// start (default 1 via NewFactory). A Factory's next-index counter is
// non-atomic: sharing one Factory across goroutines analyzing
// different CFGs concurrently is unsafe (spec.md §5); give each
// goroutine its own Factory instead.
type Factory struct {
	nextIndex uint64
	byKey     map[string]IndexedName
	order     []string
}

// NewFactory returns a Factory whose first allocated index is 1.
func NewFactory() *Factory {
	return NewFactoryFrom(1)
}

// NewFactoryFrom returns a Factory whose first allocated index is start.
func NewFactoryFrom(start uint64) *Factory {
	return &Factory{
		nextIndex: start,
		byKey:     make(map[string]IndexedName),
	}
}

// Lookup returns the IndexedName for key, allocating the next index
// and interning it on first sight. Repeated look-ups of the same key
// return names with identical indices.
func (f *Factory) Lookup(key string) IndexedName {
	if n, ok := f.byKey[key]; ok {
		return n
	}
	n := IndexedName{index: f.nextIndex, display: key, factory: f}
	f.nextIndex++
	f.byKey[key] = n
	f.order = append(f.order, key)
	return n
}

// Len returns the number of distinct keys interned so far.
func (f *Factory) Len() int { return len(f.order) }

// Names returns all interned names in order of first insertion.
func (f *Factory) Names() []IndexedName {
	names := make([]IndexedName, len(f.order))
	for i, key := range f.order {
		names[i] = f.byKey[key]
	}
	return names
}
