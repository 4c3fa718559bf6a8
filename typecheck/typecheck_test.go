package typecheck_test

import (
	"strings"
	"testing"

	"github.com/crabir/crab/ir"
	"github.com/crabir/crab/linear"
	"github.com/crabir/crab/typecheck"
	"github.com/crabir/crab/types"
	"github.com/crabir/crab/variable"
)

func TestCheckAcceptsWellTypedCFG(t *testing.T) {
	f := variable.NewFactory()
	x := variable.New(f.Lookup("x"), types.NewInt(32))
	y := variable.New(f.Lookup("y"), types.NewInt(32))

	g := ir.NewCFG[string]("b0", ir.Num)
	g.GetNode("b0").Add(y, linear.VarExpr(x), linear.ConstExpr(1))

	typecheck.Check(g)
	typecheck.Check(g) // idempotent: a second pass over a correct CFG is a no-op
}

// S6 — type error: bin_op with lhs:int32 and an rhs variable of int64.
func TestS6BitwidthMismatchIsFatal(t *testing.T) {
	f := variable.NewFactory()
	lhs := variable.New(f.Lookup("lhs"), types.NewInt(32))
	rhs := variable.New(f.Lookup("rhs"), types.NewInt(64))
	one := variable.New(f.Lookup("one"), types.NewInt(32))

	g := ir.NewCFG[string]("b0", ir.Num)
	g.GetNode("b0").Add(lhs, linear.VarExpr(one), linear.VarExpr(rhs))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a fatal type error")
		}
		msg, ok := r.(error)
		if !ok {
			t.Fatalf("expected recovered value to be an error, got %T", r)
		}
		if !strings.Contains(msg.Error(), "bitwidth") {
			t.Errorf("message %q does not mention bitwidth", msg.Error())
		}
	}()
	typecheck.Check(g)
}

func TestBoolStatementsRequireBoolBW1(t *testing.T) {
	f := variable.NewFactory()
	notBool := variable.New(f.Lookup("x"), types.NewInt(32))

	g := ir.NewCFG[string]("b0", ir.Num)
	g.GetNode("b0").BoolAssert(notBool, nil)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a fatal type error for a non-bool operand to bool_assert")
		}
	}()
	typecheck.Check(g)
}
