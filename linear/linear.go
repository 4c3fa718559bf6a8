// Package linear is a minimal stand-in for the linear-expression and
// linear-constraint algebra spec.md §3 describes as "already provided
// by an external numerics module, referenced only." It implements
// exactly the surface the ir and typecheck packages need: an
// expression or constraint over typed variables, with the ability to
// enumerate the variables it mentions. See DESIGN.md for why this is
// deliberately thin rather than a full numeric domain.
package linear

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/crabir/crab/variable"
)

// Term is a single coefficient*variable term in a linear expression.
type Term struct {
	Coeff big.Rat
	Var   variable.Variable
}

// Expr is a linear expression: a constant offset plus a sum of terms.
type Expr struct {
	Const big.Rat
	Terms []Term
}

// ConstExpr returns a linear expression that is just a constant.
func ConstExpr(c int64) Expr {
	e := Expr{}
	e.Const.SetInt64(c)
	return e
}

// VarExpr returns a linear expression that is a single variable with
// coefficient 1.
func VarExpr(v variable.Variable) Expr {
	t := Term{Var: v}
	t.Coeff.SetInt64(1)
	return Expr{Terms: []Term{t}}
}

// Add returns a new expression equal to e plus a coeff*v term.
func (e Expr) Add(coeff int64, v variable.Variable) Expr {
	t := Term{Var: v}
	t.Coeff.SetInt64(coeff)
	out := Expr{Const: e.Const}
	out.Terms = append(append([]Term{}, e.Terms...), t)
	return out
}

// Vars returns the distinct variables mentioned in e, in first-seen order.
func (e Expr) Vars() []variable.Variable {
	return dedupeVars(e.Terms)
}

// IsConstant reports whether e mentions no variables.
func (e Expr) IsConstant() bool {
	return len(e.Terms) == 0
}

func (e Expr) String() string {
	if len(e.Terms) == 0 {
		return e.Const.RatString()
	}
	var sb strings.Builder
	for i, t := range e.Terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		if t.Coeff.Cmp(big.NewRat(1, 1)) == 0 {
			sb.WriteString(t.Var.Name.String())
		} else {
			fmt.Fprintf(&sb, "%s*%s", t.Coeff.RatString(), t.Var.Name.String())
		}
	}
	if e.Const.Sign() != 0 {
		fmt.Fprintf(&sb, " + %s", e.Const.RatString())
	}
	return sb.String()
}

// Relation is a comparison operator for a linear constraint.
type Relation int

const (
	Eq Relation = iota
	Neq
	Lt
	Leq
	Gt
	Geq
)

func (r Relation) String() string {
	switch r {
	case Eq:
		return "="
	case Neq:
		return "!="
	case Lt:
		return "<"
	case Leq:
		return "<="
	case Gt:
		return ">"
	case Geq:
		return ">="
	default:
		return "?"
	}
}

// Constraint is a linear constraint: lhs `Rel` 0, where lhs is a
// linear expression (e.g. "x - y - 1 >= 0" represents "x >= y + 1").
type Constraint struct {
	LHS Expr
	Rel Relation
}

// Vars returns the distinct variables mentioned in c.
func (c Constraint) Vars() []variable.Variable {
	return c.LHS.Vars()
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s %s 0", c.LHS, c.Rel)
}

func dedupeVars(terms []Term) []variable.Variable {
	seen := make(map[uint64]bool)
	var out []variable.Variable
	for _, t := range terms {
		idx := t.Var.Name.Index()
		if !seen[idx] {
			seen[idx] = true
			out = append(out, t.Var)
		}
	}
	return out
}
