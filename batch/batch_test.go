package batch_test

import (
	"context"
	"strings"
	"testing"

	"github.com/crabir/crab/batch"
	"github.com/crabir/crab/ir"
	"github.com/crabir/crab/linear"
	"github.com/crabir/crab/types"
	"github.com/crabir/crab/variable"
)

func wellTypedCFG() *ir.CFG[string] {
	f := variable.NewFactory()
	x := variable.New(f.Lookup("x"), types.NewInt(32))
	y := variable.New(f.Lookup("y"), types.NewInt(32))

	g := ir.NewCFG[string]("entry", ir.Num)
	g.SetExit("exit")
	g.GetNode("entry").Add(y, linear.VarExpr(x), linear.ConstExpr(1))
	g.GetNode("entry").AddEdge(g.GetNode("exit"))
	return g
}

func illTypedCFG() *ir.CFG[string] {
	f := variable.NewFactory()
	x32 := variable.New(f.Lookup("x"), types.NewInt(32))
	x64 := variable.New(f.Lookup("y"), types.NewInt(64))

	g := ir.NewCFG[string]("entry", ir.Num)
	g.GetNode("entry").Add(x32, linear.VarExpr(x64), linear.ConstExpr(1))
	return g
}

// demonstrates spec.md §5: disjoint CFGs with disjoint variable
// factories, analyzed concurrently, succeed independently.
func TestRunSucceedsOnDisjointCFGs(t *testing.T) {
	jobs := []batch.Job[string]{
		{Name: "a", CFG: wellTypedCFG()},
		{Name: "b", CFG: wellTypedCFG()},
		{Name: "c", CFG: wellTypedCFG()},
	}
	if err := batch.Run(context.Background(), jobs, batch.Options{Concurrency: 2}); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
}

func TestRunReportsFaultAsError(t *testing.T) {
	jobs := []batch.Job[string]{
		{Name: "good", CFG: wellTypedCFG()},
		{Name: "bad", CFG: illTypedCFG()},
	}
	err := batch.Run(context.Background(), jobs, batch.Options{})
	if err == nil {
		t.Fatalf("Run() = nil, want an error naming the failing job")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("error %q does not name the failing job", err.Error())
	}
}
