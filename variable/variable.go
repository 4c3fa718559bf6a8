// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variable

import (
	"fmt"

	"github.com/crabir/crab/types"
)

// Variable pairs an IndexedName with its Type. Value-type semantics;
// equality is structural (same name index, same type).
type Variable struct {
	Name IndexedName
	Type types.Type
}

// New returns a Variable with the given name and type.
func New(name IndexedName, t types.Type) Variable {
	return Variable{Name: name, Type: t}
}

// Equal reports structural equality: same name and same type.
func (v Variable) Equal(other Variable) bool {
	return v.Name.Equal(other.Name) && v.Type == other.Type
}

func (v Variable) String() string {
	return fmt.Sprintf("%s:%s", v.Name, v.Type)
}

// SameTypeAndWidth reports whether two variables share the same Kind
// and, when applicable, the same bit-width — the comparison the type
// checker (spec.md §4.7) performs between an lhs and each variable
// operand.
func (v Variable) SameTypeAndWidth(other Variable) bool {
	if !v.Type.Same(other.Type) {
		return false
	}
	if v.Type.Kind.HasBitWidth() {
		return v.Type.SameBitWidth(other.Type)
	}
	return true
}
