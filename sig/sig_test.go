package sig_test

import (
	"testing"

	"github.com/crabir/crab/ir"
	"github.com/crabir/crab/sig"
	"github.com/crabir/crab/types"
	"github.com/crabir/crab/variable"
)

func decl(t *testing.T, name string, inWidths, outWidths []int) *ir.FuncDecl {
	t.Helper()
	f := variable.NewFactory()
	var ins, outs []variable.Variable
	for i, w := range inWidths {
		ins = append(ins, variable.New(f.Lookup(name+"_in"), types.NewInt(w)))
		_ = i
	}
	for _, w := range outWidths {
		outs = append(outs, variable.New(f.Lookup(name+"_out"), types.NewInt(w)))
	}
	return ir.NewFuncDecl(name, ins, outs)
}

func TestHashEqualForStructurallyIdenticalSignatures(t *testing.T) {
	d1 := decl(t, "f", []int{32, 64}, []int{32})
	d2 := decl(t, "f", []int{32, 64}, []int{32})

	h1, err1 := sig.Hash(d1)
	h2, err2 := sig.Hash(d2)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if h1 != h2 {
		t.Errorf("structurally identical signatures hashed differently: %d != %d", h1, h2)
	}
}

func TestHashDiffersOnName(t *testing.T) {
	d1 := decl(t, "f", []int{32}, nil)
	d2 := decl(t, "g", []int{32}, nil)

	h1, _ := sig.Hash(d1)
	h2, _ := sig.Hash(d2)
	if h1 == h2 {
		t.Errorf("different function names hashed identically")
	}
}

func TestHashNilDeclIsError(t *testing.T) {
	_, err := sig.Hash(nil)
	if err != sig.ErrNoDecl {
		t.Errorf("Hash(nil) error = %v, want sig.ErrNoDecl", err)
	}
}

func TestEqualFalseForMismatchedOrder(t *testing.T) {
	f := variable.NewFactory()
	a := variable.New(f.Lookup("a"), types.NewInt(32))
	b := variable.New(f.Lookup("b"), types.NewInt(64))

	d1 := ir.NewFuncDecl("f", []variable.Variable{a, b}, nil)
	d2 := ir.NewFuncDecl("f", []variable.Variable{b, a}, nil)

	if sig.Equal(d1, d2) {
		t.Errorf("signatures differing only in parameter order should not be equal")
	}
}
