package ir

import (
	"fmt"
	"strings"

	"github.com/crabir/crab/crabfault"
	"github.com/crabir/crab/linear"
	"github.com/crabir/crab/variable"
)

// Callsite is `lhs_vec = call func_name(args_vec)`. Args are used,
// lhs variables are defined.
type Callsite struct {
	FuncName string
	Lhs      []variable.Variable
	Args     []linear.Expr
}

func NewCallsite(funcName string, lhs []variable.Variable, args []linear.Expr) *Callsite {
	return &Callsite{FuncName: funcName, Lhs: lhs, Args: args}
}

// Arg returns the idx'th argument expression. Out-of-bounds access is
// a lookup fault (spec.md §7), not a Go panic.
func (s *Callsite) Arg(idx int) linear.Expr {
	if idx < 0 || idx >= len(s.Args) {
		crabfault.Raise(crabfault.Lookup, nil, "callsite %s: arg index %d out of bounds (have %d)", s.FuncName, idx, len(s.Args))
	}
	return s.Args[idx]
}

func (s *Callsite) Kind() Kind { return CallsiteKind }

func (s *Callsite) Live() LiveSet {
	l := NewLiveSet()
	for _, a := range s.Args {
		for _, v := range a.Vars() {
			l.Use(v)
		}
	}
	for _, v := range s.Lhs {
		l.Def(v)
	}
	return l
}

func (s *Callsite) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *Callsite) Accept(v Visitor)         { v.VisitCallsite(s) }
func (s *Callsite) Clone() Statement {
	clone := *s
	clone.Lhs = append([]variable.Variable(nil), s.Lhs...)
	clone.Args = append([]linear.Expr(nil), s.Args...)
	return &clone
}

func (s *Callsite) String() string {
	lhs := make([]string, len(s.Lhs))
	for i, v := range s.Lhs {
		lhs[i] = v.Name.String()
	}
	args := make([]string, len(s.Args))
	for i, a := range s.Args {
		args[i] = a.String()
	}
	prefix := ""
	if len(lhs) > 0 {
		prefix = strings.Join(lhs, ",") + " = "
	}
	return fmt.Sprintf("%scall %s(%s)", prefix, s.FuncName, strings.Join(args, ","))
}

// Return is `return vec`, a function's exit statement.
type Return struct {
	Vars []variable.Variable
}

func NewReturn(vars []variable.Variable) *Return { return &Return{Vars: vars} }

func (s *Return) Kind() Kind { return ReturnKind }

func (s *Return) Live() LiveSet {
	l := NewLiveSet()
	for _, v := range s.Vars {
		l.Use(v)
	}
	return l
}

func (s *Return) Debug() (DebugInfo, bool) { return DebugInfo{}, false }
func (s *Return) Accept(v Visitor)         { v.VisitReturn(s) }
func (s *Return) Clone() Statement {
	clone := *s
	clone.Vars = append([]variable.Variable(nil), s.Vars...)
	return &clone
}

func (s *Return) String() string {
	names := make([]string, len(s.Vars))
	for i, v := range s.Vars {
		names[i] = v.Name.String()
	}
	return fmt.Sprintf("return %s", strings.Join(names, ","))
}
