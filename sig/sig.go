// Package sig implements the structural hash over a function
// declaration's signature described in spec.md §2's component table
// ("Hasher ... used to equate CFGs by ABI"): two declarations with the
// same name, input types/widths, and output types/widths in the same
// order hash identically, regardless of which CFG or variable factory
// produced them.
package sig

import (
	"errors"
	"hash/fnv"

	"github.com/crabir/crab/ir"
	"github.com/crabir/crab/variable"
)

// ErrNoDecl is returned by Hash when a CFG carries no function
// declaration to hash — spec.md §8 item 9 requires this be a defined
// error, not a fatal crabfault, since "no declaration" is routine
// caller-facing input rather than an internal consistency violation.
var ErrNoDecl = errors.New("sig: no function declaration to hash")

// Hash returns a structural hash of decl: its name, followed by each
// input's and each output's type kind and bit-width, in declaration
// order. Order matters — two signatures that differ only in parameter
// order are not ABI-compatible, so they must not collide.
func Hash(decl *ir.FuncDecl) (uint64, error) {
	if decl == nil {
		return 0, ErrNoDecl
	}
	h := fnv.New64a()
	h.Write([]byte(decl.Name))
	h.Write([]byte{0})
	writeVars(h, decl.Inputs)
	h.Write([]byte{0})
	writeVars(h, decl.Outputs)
	return h.Sum64(), nil
}

func writeVars(h interface{ Write([]byte) (int, error) }, vars []variable.Variable) {
	for _, v := range vars {
		h.Write([]byte{byte(v.Type.Kind)})
		h.Write([]byte{
			byte(v.Type.BitWidth),
			byte(v.Type.BitWidth >> 8),
			byte(v.Type.BitWidth >> 16),
			byte(v.Type.BitWidth >> 24),
		})
		h.Write([]byte{','})
	}
}

// Equal reports whether two declarations hash identically. Returns
// false, without error, if either is nil — callers that need to
// distinguish "unequal" from "unhashable" should call Hash directly.
func Equal(a, b *ir.FuncDecl) bool {
	ha, erra := Hash(a)
	hb, errb := Hash(b)
	if erra != nil || errb != nil {
		return false
	}
	return ha == hb
}
