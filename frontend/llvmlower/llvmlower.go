// Package llvmlower is a worked example of the kind of front-end
// spec.md §1 gestures at parenthetically ("e.g., an LLVM-bitcode
// lowering pass"): it parses textual LLVM IR with github.com/llir/llvm
// and lowers a small subset of instructions into an ir.CFG, one ir
// block per LLVM basic block, interning SSA register names through a
// variable.Factory.
//
// This is intentionally not a complete lowering — only the
// instruction shapes needed to demonstrate the pattern are handled
// (integer arithmetic, comparison, conditional/unconditional branch,
// load/store/alloca treated at ptr precision, call, and return).
// Front-ends that need the rest of LLVM's instruction set follow the
// same dispatch-by-kind shape in lowerInst.
package llvmlower

import (
	"fmt"

	llvmasm "github.com/llir/llvm/asm"
	llvmconstant "github.com/llir/llvm/ir/constant"
	llvmenum "github.com/llir/llvm/ir/enum"
	llvmir "github.com/llir/llvm/ir"
	llvmtypes "github.com/llir/llvm/ir/types"
	llvmvalue "github.com/llir/llvm/ir/value"

	"github.com/crabir/crab/crabfault"
	"github.com/crabir/crab/ir"
	"github.com/crabir/crab/linear"
	"github.com/crabir/crab/types"
	"github.com/crabir/crab/variable"
)

// Lowerer turns a single LLVM function into an ir.CFG, interning every
// SSA register it encounters through factory. Basic-block names are
// used directly as the CFG's string labels, not interned.
type Lowerer struct {
	factory *variable.Factory
	vars    map[string]variable.Variable
}

// NewLowerer returns a Lowerer that interns variables through factory.
func NewLowerer(factory *variable.Factory) *Lowerer {
	return &Lowerer{factory: factory, vars: make(map[string]variable.Variable)}
}

// LowerFile parses path as textual LLVM IR and lowers its first
// function definition into a *ir.CFG keyed by LLVM basic-block name.
func LowerFile(path string, factory *variable.Factory) (*ir.CFG[string], error) {
	module, err := llvmasm.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("llvmlower: parse %s: %w", path, err)
	}
	if len(module.Funcs) == 0 {
		return nil, fmt.Errorf("llvmlower: %s defines no functions", path)
	}
	return NewLowerer(factory).LowerFunc(module.Funcs[0]), nil
}

// LowerFunc lowers a single LLVM function definition into a CFG whose
// block labels are the LLVM basic blocks' names and whose entry is the
// function's first block.
func (lw *Lowerer) LowerFunc(fn *llvmir.Func) *ir.CFG[string] {
	if len(fn.Blocks) == 0 {
		crabfault.Raise(crabfault.Construction, nil, "llvmlower: function %s has no basic blocks", fn.Ident())
	}

	entryName := blockName(fn.Blocks[0])
	g := ir.NewCFG[string](entryName, ir.Ptr)

	var inputs []variable.Variable
	for _, p := range fn.Params {
		inputs = append(inputs, lw.varFor(p.Ident(), llvmWidth(p.Type())))
	}
	g.SetFuncDecl(ir.NewFuncDecl(fn.Ident(), inputs, nil))

	for _, bb := range fn.Blocks {
		g.Insert(blockName(bb))
	}
	for _, bb := range fn.Blocks {
		lw.lowerBlock(g, bb)
	}
	return g
}

func blockName(bb *llvmir.Block) string { return bb.Name() }

func llvmWidth(t llvmtypes.Type) int {
	// LLVM integer types print as "iN"; default to 64 for anything else
	// (pointers, floating point) since this lowerer only exercises the
	// numeric subset of the statement algebra.
	var n int
	if _, err := fmt.Sscanf(t.String(), "i%d", &n); err == nil && n > 0 {
		return n
	}
	return 64
}

func (lw *Lowerer) varFor(name string, width int) variable.Variable {
	if v, ok := lw.vars[name]; ok {
		return v
	}
	t := types.NewInt(width)
	if width == 1 {
		t = types.NewBool()
	}
	v := variable.New(lw.factory.Lookup(name), t)
	lw.vars[name] = v
	return v
}

func (lw *Lowerer) lowerBlock(g *ir.CFG[string], bb *llvmir.Block) {
	b := g.GetNode(blockName(bb))
	for _, inst := range bb.Insts {
		lw.lowerInst(b, inst)
	}
	lw.lowerTerm(g, b, bb.Term)
}

func (lw *Lowerer) lowerInst(b *ir.Block[string], inst llvmir.Instruction) {
	switch v := inst.(type) {
	case *llvmir.InstAdd:
		lw.lowerArith(b, v.LocalIdent, ir.Add, v.X, v.Y)
	case *llvmir.InstSub:
		lw.lowerArith(b, v.LocalIdent, ir.Sub, v.X, v.Y)
	case *llvmir.InstMul:
		lw.lowerArith(b, v.LocalIdent, ir.Mul, v.X, v.Y)
	case *llvmir.InstICmp:
		lw.lowerICmp(b, v)
	case *llvmir.InstAlloca:
		b.PtrObject(lw.varFor(v.Ident(), 64), len(lw.vars))
	case *llvmir.InstLoad:
		b.PtrLoad(lw.varFor(v.Ident(), llvmWidth(v.Typ)), lw.operandVar(v.Src), nil)
	case *llvmir.InstStore:
		b.PtrStore(lw.operandVar(v.Dst), lw.operandVar(v.Src), nil)
	case *llvmir.InstCall:
		lw.lowerCall(b, v)
	default:
		// Unhandled instruction kinds are intentionally skipped: this
		// lowerer demonstrates the pattern, not a complete front-end.
	}
}

func (lw *Lowerer) lowerArith(b *ir.Block[string], ident llvmir.LocalIdent, op ir.ArithOp, x, y llvmvalue.Value) {
	lhs := lw.varFor(ident.Ident(), llvmWidth(x.Type()))
	b.BinOp(lhs, op, lw.operandExpr(x), lw.operandExpr(y), nil)
}

// lowerICmp lowers an integer comparison to a bool assigned from the
// truth value of a linear constraint (x - y) `rel` 0. Signed and
// unsigned predicates map to the same relation: this flat lattice
// tracks neither signedness nor overflow.
func (lw *Lowerer) lowerICmp(b *ir.Block[string], v *llvmir.InstICmp) {
	lhs := lw.varFor(v.Ident(), 1)
	diff := subtract(lw.operandExpr(v.X), lw.operandExpr(v.Y))
	b.BoolAssignCst(lhs, linear.Constraint{LHS: diff, Rel: icmpRelation(v.Pred)})
}

func icmpRelation(pred llvmenum.IPred) linear.Relation {
	switch pred {
	case llvmenum.IPredEQ:
		return linear.Eq
	case llvmenum.IPredNE:
		return linear.Neq
	case llvmenum.IPredSGT, llvmenum.IPredUGT:
		return linear.Gt
	case llvmenum.IPredSGE, llvmenum.IPredUGE:
		return linear.Geq
	case llvmenum.IPredSLT, llvmenum.IPredULT:
		return linear.Lt
	default:
		return linear.Leq
	}
}

// subtract returns a - b as a linear.Expr; both operands here always
// carry coefficient-1 terms (built by operandExpr), so negating each
// of b's terms in place is exact.
func subtract(a, b linear.Expr) linear.Expr {
	out := linear.Expr{Terms: append([]linear.Term{}, a.Terms...)}
	out.Const.Sub(&a.Const, &b.Const)
	for _, t := range b.Terms {
		neg := t
		neg.Coeff.Neg(&t.Coeff)
		out.Terms = append(out.Terms, neg)
	}
	return out
}

func (lw *Lowerer) operandExpr(v llvmvalue.Value) linear.Expr {
	if c, ok := v.(*llvmconstant.Int); ok {
		return linear.ConstExpr(c.X.Int64())
	}
	return linear.VarExpr(lw.operandVar(v))
}

// operandVar interns v by its identifier, not its rendered form: a
// value's Ident() is stable between its definition site (lowerArith,
// lowerICmp, ...) and every later use, while String() carries the "%"
// display sigil and would otherwise intern the same SSA value twice.
func (lw *Lowerer) operandVar(v llvmvalue.Value) variable.Variable {
	return lw.varFor(v.Ident(), llvmWidth(v.Type()))
}

func (lw *Lowerer) lowerCall(b *ir.Block[string], call *llvmir.InstCall) {
	var lhs []variable.Variable
	if call.Ident() != "" {
		lhs = append(lhs, lw.varFor(call.Ident(), llvmWidth(call.Typ)))
	}
	var args []linear.Expr
	for _, a := range call.Args {
		args = append(args, lw.operandExpr(a))
	}
	b.Callsite(calleeName(call.Callee), lhs, args)
}

func calleeName(v llvmvalue.Value) string {
	if f, ok := v.(*llvmir.Func); ok {
		return f.Ident()
	}
	return v.String()
}

func (lw *Lowerer) lowerTerm(g *ir.CFG[string], b *ir.Block[string], term llvmir.Terminator) {
	switch t := term.(type) {
	case *llvmir.TermRet:
		var vars []variable.Variable
		if t.X != nil {
			vars = append(vars, lw.operandVar(t.X))
		}
		b.Ret(vars)
	case *llvmir.TermBr:
		b.AddEdge(g.GetNode(blockName(t.Target)))
	case *llvmir.TermCondBr:
		cond := lw.operandVar(t.Cond)
		b.Assume(linear.Constraint{LHS: linear.VarExpr(cond), Rel: linear.Neq})
		b.AddEdge(g.GetNode(blockName(t.TargetTrue)))
		b.AddEdge(g.GetNode(blockName(t.TargetFalse)))
	default:
		b.Unreachable()
	}
}
