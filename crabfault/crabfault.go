// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crabfault defines the fatal-error taxonomy of spec.md §7.
// Every construction, lookup, type-check, and view error in this
// layer is a front-end or analyzer bug, not a recoverable condition;
// Raise formats a stable diagnostic and panics with it.
//
// This is adapted from the teacher's accumulating Log/Entry/Severity
// shape (refactoring/log.go) collapsed to a single fatal report: a
// refactoring tool can show the user a list of warnings before
// deciding whether to proceed, but this layer's contract (spec.md §7)
// is that every violation here is immediately fatal.
package crabfault

import "fmt"

// Kind classifies a Fault per the taxonomy in spec.md §7.
type Kind int

const (
	Construction Kind = iota
	Lookup
	TypeCheck
	View
)

func (k Kind) String() string {
	switch k {
	case Construction:
		return "construction error"
	case Lookup:
		return "lookup error"
	case TypeCheck:
		return "type error"
	case View:
		return "view error"
	default:
		return "error"
	}
}

// Fault is the value panicked with by Raise. Stmt, when non-nil, is
// the offending statement or block, rendered via its Stringer so the
// message names the construct that failed (spec.md §8 S6 requires
// the type-check message to name the offending statement).
type Fault struct {
	Kind    Kind
	Message string
	Stmt    fmt.Stringer
}

func (f *Fault) Error() string {
	if f.Stmt == nil {
		return fmt.Sprintf("%s: %s", f.Kind, f.Message)
	}
	return fmt.Sprintf("%s: %s: %s", f.Kind, f.Message, f.Stmt)
}

// Raise formats a Fault of the given kind and panics with it. stmt
// may be nil when no single statement is responsible.
func Raise(kind Kind, stmt fmt.Stringer, format string, args ...interface{}) {
	panic(&Fault{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Stmt:    stmt,
	})
}
