package llvmlower_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crabir/crab/frontend/llvmlower"
	"github.com/crabir/crab/ir"
	"github.com/crabir/crab/variable"
)

// writeModule is a small helper so the test doesn't depend on a
// checked-in .ll fixture: it writes one to a temp file per test.
func writeModule(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "module.ll")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

const straightLineAdd = `
define i32 @add_one(i32 %x) {
entry:
  %y = add i32 %x, 1
  ret i32 %y
}
`

func TestLowerFileStraightLine(t *testing.T) {
	path := writeModule(t, straightLineAdd)
	g, err := llvmlower.LowerFile(path, variable.NewFactory())
	if err != nil {
		t.Fatalf("LowerFile: %v", err)
	}
	if g.Entry() != "entry" {
		t.Errorf("entry label = %q, want %q", g.Entry(), "entry")
	}
	rendered := ir.Write(g)
	if rendered == "" {
		t.Errorf("expected non-empty rendering")
	}
}

const branchingBody = `
define i32 @abs(i32 %x) {
entry:
  %neg = icmp slt i32 %x, 0
  br i1 %neg, label %flip, label %done
flip:
  %negated = sub i32 0, %x
  br label %done
done:
  ret i32 %x
}
`

func TestLowerFileBranching(t *testing.T) {
	path := writeModule(t, branchingBody)
	g, err := llvmlower.LowerFile(path, variable.NewFactory())
	if err != nil {
		t.Fatalf("LowerFile: %v", err)
	}
	if g.Len() < 3 {
		t.Errorf("expected at least 3 blocks for a 3-basic-block function, got %d", g.Len())
	}
}

func TestLowerFileMissingFunctionIsError(t *testing.T) {
	path := writeModule(t, "; empty module\n")
	if _, err := llvmlower.LowerFile(path, variable.NewFactory()); err == nil {
		t.Fatalf("LowerFile on an empty module should return an error")
	}
}
