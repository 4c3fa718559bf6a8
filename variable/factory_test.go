// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variable

import "testing"

func TestLookupStability(t *testing.T) {
	f := NewFactory()
	a1 := f.Lookup("a")
	b := f.Lookup("b")
	a2 := f.Lookup("a")

	if !a1.Equal(a2) {
		t.Errorf("expected repeated lookup of %q to be equal, got %v and %v", "a", a1, a2)
	}
	if a1.Equal(b) {
		t.Errorf("expected distinct keys to yield distinct names, got %v and %v", a1, b)
	}
}

func TestLookupDenseFromConfigurableStart(t *testing.T) {
	f := NewFactoryFrom(10)
	a := f.Lookup("a")
	b := f.Lookup("b")
	c := f.Lookup("c")

	if a.Index() != 10 {
		t.Errorf("expected first index to be 10, got %d", a.Index())
	}
	if b.Index() != 11 || c.Index() != 12 {
		t.Errorf("expected dense indices 11, 12; got %d, %d", b.Index(), c.Index())
	}
}

func TestLookupOrderingIsInsertionOrder(t *testing.T) {
	f := NewFactory()
	f.Lookup("z")
	f.Lookup("a")
	f.Lookup("m")

	names := f.Names()
	want := []string{"z", "a", "m"}
	for i, n := range names {
		if n.String() != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, n.String(), want[i])
		}
	}
}

func TestFactoriesDoNotShareSpace(t *testing.T) {
	f1 := NewFactory()
	f2 := NewFactory()

	a1 := f1.Lookup("a")
	a2 := f2.Lookup("a")

	if a1.Equal(a2) {
		t.Errorf("names from distinct factories must never be equal, got %v == %v", a1, a2)
	}
}

func TestLessGivesTotalOrderByIndex(t *testing.T) {
	f := NewFactory()
	a := f.Lookup("a")
	b := f.Lookup("b")

	if !a.Less(b) || b.Less(a) {
		t.Errorf("expected a < b by index, got a=%d b=%d", a.Index(), b.Index())
	}
}
