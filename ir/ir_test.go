package ir_test

import (
	"strings"
	"testing"

	"github.com/crabir/crab/ir"
	"github.com/crabir/crab/linear"
	"github.com/crabir/crab/types"
	"github.com/crabir/crab/variable"
)

func intVar(f *variable.Factory, key string, width int) variable.Variable {
	return variable.New(f.Lookup(key), types.NewInt(width))
}

// S1 — single-block constant-fold-free CFG.
func TestS1SingleBlock(t *testing.T) {
	f := variable.NewFactory()
	x, y, z := intVar(f, "x", 32), intVar(f, "y", 32), intVar(f, "z", 32)

	g := ir.NewCFG[string]("b0", ir.Num)
	g.SetExit("b0")
	b0 := g.GetNode("b0")
	b0.Add(y, linear.VarExpr(x), linear.ConstExpr(1))
	b0.Add(z, linear.VarExpr(y), linear.ConstExpr(2))
	b0.Ret([]variable.Variable{z})

	vars := g.GetVars()
	if len(vars) != 3 {
		t.Fatalf("get_vars = %v, want 3 variables", vars)
	}

	before := ir.Write(g)
	g.Simplify()
	after := ir.Write(g)
	if before != after {
		t.Fatalf("simplify was not a no-op:\nbefore:\n%s\nafter:\n%s", before, after)
	}

	rendered := ir.Write(g)
	for _, want := range []string{"y = x+1;", "z = y+2;", "return z;"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendering missing %q, got:\n%s", want, rendered)
		}
	}
}

// S2 — merge-blocks.
func TestS2MergeBlocks(t *testing.T) {
	f := variable.NewFactory()
	a, t32 := intVar(f, "a", 32), intVar(f, "t", 32)

	g := ir.NewCFG[string]("entry", ir.Num)
	g.SetExit("exit")
	g.Insert("mid").Add(t32, linear.VarExpr(a), linear.ConstExpr(1))

	g.GetNode("entry").AddEdge(g.GetNode("mid"))
	g.GetNode("mid").AddEdge(g.GetNode("exit"))

	g.Simplify()

	// entry absorbs mid (mid has exactly one pred and one succ, no
	// barrier statement), but exit is never merge-eligible since it has
	// zero successors, so two blocks remain: {entry+mid}, {exit}.
	if g.Len() != 2 {
		t.Fatalf("after simplify, want 2 blocks, got %d: %v", g.Len(), g.Labels())
	}
	rendered := ir.Write(g)
	if !strings.Contains(rendered, "t = a+1;") {
		t.Errorf("merged block should still contain t = a+1;, got:\n%s", rendered)
	}
}

// S3 — unreachable removal.
func TestS3UnreachableRemoval(t *testing.T) {
	f := variable.NewFactory()
	a, t32 := intVar(f, "a", 32), intVar(f, "t", 32)

	g := ir.NewCFG[string]("entry", ir.Num)
	g.SetExit("exit")
	g.Insert("mid").Add(t32, linear.VarExpr(a), linear.ConstExpr(1))
	g.GetNode("entry").AddEdge(g.GetNode("mid"))
	g.GetNode("mid").AddEdge(g.GetNode("exit"))
	g.Insert("dead")

	g.Simplify()

	if g.Has("dead") {
		t.Errorf("dead block should have been removed by simplify")
	}
}

// S4 — useless removal.
func TestS4UselessRemoval(t *testing.T) {
	g := ir.NewCFG[string]("entry", ir.Num)
	g.SetExit("exit")
	g.GetNode("entry").AddEdge(g.GetNode("exit"))
	g.GetNode("entry").AddEdge(g.Insert("orphan"))

	g.Simplify()

	if g.Has("orphan") {
		t.Errorf("orphan block should have been removed by simplify (no path to exit)")
	}
}

// S5 — assume barrier.
func TestS5AssumeBarrier(t *testing.T) {
	f := variable.NewFactory()
	x := intVar(f, "x", 32)

	g := ir.NewCFG[string]("entry", ir.Num)
	g.SetExit("exit")
	g.Insert("guard").Assume(linear.Constraint{LHS: linear.VarExpr(x), Rel: linear.Geq})
	g.GetNode("entry").AddEdge(g.GetNode("guard"))
	g.GetNode("guard").AddEdge(g.GetNode("exit"))

	g.Simplify()

	if g.Len() != 3 {
		t.Fatalf("assume barrier should prevent merging, want 3 blocks, got %d: %v", g.Len(), g.Labels())
	}
}

// Adjacency mirroring: b1 >> b2 implies b2 is in b1's succs and b1 in b2's preds.
func TestAdjacencyMirroring(t *testing.T) {
	g := ir.NewCFG[string]("a", ir.Num)
	g.Insert("b")
	g.GetNode("a").AddEdge(g.GetNode("b"))

	if got := g.NextNodes("a"); len(got) != 1 || got[0] != "b" {
		t.Fatalf("a's successors = %v, want [b]", got)
	}
	if got := g.PrevNodes("b"); len(got) != 1 || got[0] != "a" {
		t.Fatalf("b's predecessors = %v, want [a]", got)
	}
}

// Clone produces a structurally equal block.
func TestBlockClone(t *testing.T) {
	f := variable.NewFactory()
	x, y := intVar(f, "x", 32), intVar(f, "y", 32)

	b := ir.NewCFG[string]("a", ir.Num).GetNode("a")
	b.Add(y, linear.VarExpr(x), linear.ConstExpr(1))

	clone := b.Clone()
	if clone.Size() != b.Size() {
		t.Fatalf("clone size = %d, want %d", clone.Size(), b.Size())
	}
	for i, s := range b.Statements() {
		if s.String() != clone.Statements()[i].String() {
			t.Errorf("clone statement %d = %q, want %q", i, clone.Statements()[i], s)
		}
	}
}

// The reversed view swaps entry and exit.
func TestReverseEntryExitSwap(t *testing.T) {
	g := ir.NewCFG[string]("entry", ir.Num)
	g.SetExit("exit")
	g.GetNode("entry").AddEdge(g.GetNode("exit"))

	rev := ir.Reverse(g)
	if rev.Entry() != g.Exit() {
		t.Errorf("reversed entry = %v, want %v", rev.Entry(), g.Exit())
	}
	if rev.Exit() != g.Entry() {
		t.Errorf("reversed exit = %v, want %v", rev.Exit(), g.Entry())
	}
}

func TestReverseWithoutExitIsFatal(t *testing.T) {
	g := ir.NewCFG[string]("entry", ir.Num)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a fatal crabfault for reversing a CFG without an exit")
		}
	}()
	ir.Reverse(g)
}

func TestGetNodeMissingIsFatal(t *testing.T) {
	g := ir.NewCFG[string]("entry", ir.Num)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a fatal crabfault for get_node on an unknown label")
		}
	}()
	g.GetNode("nowhere")
}

func TestIntCastBitwidthConstructionFault(t *testing.T) {
	f := variable.NewFactory()
	src := intVar(f, "src", 8)
	dst := intVar(f, "dst", 16)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a fatal crabfault for a trunc widening src")
		}
	}()
	ir.NewIntCast(ir.Trunc, src, dst, nil)
}

func TestArrayStatementRequiresArrayType(t *testing.T) {
	f := variable.NewFactory()
	notArray := intVar(f, "x", 32)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a fatal crabfault for array_load on a non-array variable")
		}
	}()
	ir.NewArrayLoad(notArray, notArray, linear.ConstExpr(0), ir.ConstOperand(4))
}
