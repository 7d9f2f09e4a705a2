package main

import (
	"github.com/sonatina-go/sonatina/ir/builder"
	"github.com/sonatina-go/sonatina/ir/function"
	"github.com/sonatina-go/sonatina/ir/gvar"
	"github.com/sonatina-go/sonatina/ir/inst/arith"
	"github.com/sonatina-go/sonatina/ir/inst/controlflow"
	"github.com/sonatina-go/sonatina/ir/types"
	"github.com/sonatina-go/sonatina/isa"
)

// builtinFixtures returns the demonstration fixtures exercised by the
// filecheck harness: one proving Peephole's double-negation rule, one
// proving ADCE's dead-instruction removal.
func builtinFixtures() []Fixture {
	return []Fixture{
		{
			Name:     "double_neg",
			Build:    buildDoubleNeg,
			Expected: "ret v0",
		},
		{
			Name:     "dead_add",
			Build:    buildDeadAdd,
			Expected: "ret v0",
		},
	}
}

// buildDoubleNeg builds f(i32) -> i32 { v1 = neg v0; v2 = neg v1; ret v2 },
// which Peephole collapses to `ret v0`.
func buildDoubleNeg() *function.Function {
	mb := builder.NewModuleBuilder(isa.Amd64())
	sig := function.NewSignature("double_neg", gvar.Public)
	sig.AppendArg(types.TI32)
	sig.AppendReturn(types.TI32)
	ref := mb.DeclareFunction(sig)

	fb := mb.FuncBuilder(ref)
	fb.AppendBlock()
	fn := fb.Function()

	ty := types.TI32
	neg1 := fb.AppendInst(&arith.Neg{Operand: fn.ArgValues[0]}, &ty)
	v1, _ := fn.DFG.InstResult(neg1)
	neg2 := fb.AppendInst(&arith.Neg{Operand: v1}, &ty)
	v2, _ := fn.DFG.InstResult(neg2)
	fb.AppendInst(&controlflow.Return{Value: v2, HasVal: true}, nil)

	return fn
}

// buildDeadAdd builds f(i32, i32) -> i32 { v2 = add v0, v1; ret v0 },
// where the add's result is never used, which ADCE should remove.
func buildDeadAdd() *function.Function {
	mb := builder.NewModuleBuilder(isa.Amd64())
	sig := function.NewSignature("dead_add", gvar.Public)
	sig.AppendArg(types.TI32)
	sig.AppendArg(types.TI32)
	sig.AppendReturn(types.TI32)
	ref := mb.DeclareFunction(sig)

	fb := mb.FuncBuilder(ref)
	fb.AppendBlock()
	fn := fb.Function()

	ty := types.TI32
	fb.AppendInst(&arith.Add{BinaryOp: arith.BinaryOp{
		Lhs: fn.ArgValues[0],
		Rhs: fn.ArgValues[1],
	}}, &ty)
	fb.AppendInst(&controlflow.Return{Value: fn.ArgValues[0], HasVal: true}, nil)

	return fn
}
