// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variable

import (
	"testing"

	"github.com/crabir/crab/types"
)

func TestSameTypeAndWidth(t *testing.T) {
	f := NewFactory()
	x := New(f.Lookup("x"), types.NewInt(32))
	y := New(f.Lookup("y"), types.NewInt(32))
	z := New(f.Lookup("z"), types.NewInt(64))
	r := New(f.Lookup("r"), types.NewReal())

	if !x.SameTypeAndWidth(y) {
		t.Errorf("expected int32 variables to match")
	}
	if x.SameTypeAndWidth(z) {
		t.Errorf("expected int32 and int64 to differ")
	}
	if x.SameTypeAndWidth(r) {
		t.Errorf("expected int and real to differ")
	}
}

func TestVariableEqualIsStructural(t *testing.T) {
	f := NewFactory()
	name := f.Lookup("x")
	a := New(name, types.NewInt(32))
	b := New(name, types.NewInt(32))

	if !a.Equal(b) {
		t.Errorf("expected structurally identical variables to be equal")
	}
}
