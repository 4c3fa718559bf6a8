package linear

import (
	"testing"

	"github.com/crabir/crab/types"
	"github.com/crabir/crab/variable"
)

func TestExprVarsDedupedAndOrdered(t *testing.T) {
	f := variable.NewFactory()
	x := variable.New(f.Lookup("x"), types.NewInt(32))
	y := variable.New(f.Lookup("y"), types.NewInt(32))

	e := VarExpr(x).Add(1, y).Add(2, x)

	vars := e.Vars()
	if len(vars) != 2 {
		t.Fatalf("expected 2 distinct vars, got %d (%v)", len(vars), vars)
	}
	if vars[0].Name.String() != "x" || vars[1].Name.String() != "y" {
		t.Errorf("expected first-seen order [x y], got %v", vars)
	}
}

func TestConstExprIsConstant(t *testing.T) {
	if !ConstExpr(5).IsConstant() {
		t.Errorf("expected ConstExpr to be constant")
	}
}

func TestPtrConstraintVarsNull(t *testing.T) {
	f := variable.NewFactory()
	p := variable.New(f.Lookup("p"), types.NewPtr())
	c := PtrConstraint{Lhs: p, Rel: PtrEq, Null: true}

	vars := c.Vars()
	if len(vars) != 1 || !vars[0].Equal(p) {
		t.Errorf("expected Vars() = [p], got %v", vars)
	}
}
