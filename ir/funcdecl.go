package ir

import (
	"fmt"
	"strings"

	"github.com/crabir/crab/crabfault"
	"github.com/crabir/crab/variable"
)

// FuncDecl names a function's input and output variables. Inputs and
// outputs must be disjoint (spec.md §4.1): a variable that is both
// read as an argument and produced as a result has no sensible
// single direction for an interprocedural summary to act on.
type FuncDecl struct {
	Name    string
	Inputs  []variable.Variable
	Outputs []variable.Variable
}

// NewFuncDecl constructs a function declaration, raising a
// construction fault if any variable appears in both Inputs and Outputs.
func NewFuncDecl(name string, inputs, outputs []variable.Variable) *FuncDecl {
	seen := make(map[uint64]bool, len(inputs))
	for _, v := range inputs {
		seen[v.Name.Index()] = true
	}
	for _, v := range outputs {
		if seen[v.Name.Index()] {
			crabfault.Raise(crabfault.Construction, nil,
				"function %q: %s appears in both inputs and outputs", name, v)
		}
	}
	return &FuncDecl{Name: name, Inputs: inputs, Outputs: outputs}
}

// Arg returns the idx'th input. Out-of-bounds access is a lookup
// fault (spec.md §7), not a Go panic.
func (d *FuncDecl) Arg(idx int) variable.Variable {
	if idx < 0 || idx >= len(d.Inputs) {
		crabfault.Raise(crabfault.Lookup, nil, "declare %s: arg index %d out of bounds (have %d)", d.Name, idx, len(d.Inputs))
	}
	return d.Inputs[idx]
}

// SignatureEqual reports whether d and other have the same name and
// the same input/output type+bit-width sequence, in order. This is
// the notion of equality cfg_ref and sig both build on — kept here,
// rather than imported from package sig, so that ir never depends on
// a package that itself depends on ir.
func (d *FuncDecl) SignatureEqual(other *FuncDecl) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Name != other.Name {
		return false
	}
	return sameVarTypes(d.Inputs, other.Inputs) && sameVarTypes(d.Outputs, other.Outputs)
}

func sameVarTypes(a, b []variable.Variable) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Type != b[i].Type {
			return false
		}
	}
	return true
}

func (d *FuncDecl) String() string {
	outs := make([]string, len(d.Outputs))
	for i, v := range d.Outputs {
		outs[i] = v.String()
	}
	ins := make([]string, len(d.Inputs))
	for i, v := range d.Inputs {
		ins[i] = v.String()
	}
	return fmt.Sprintf("(%s) declare %s(%s)", strings.Join(outs, ","), d.Name, strings.Join(ins, ","))
}
