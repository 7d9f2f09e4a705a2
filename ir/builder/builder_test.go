package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonatina-go/sonatina/ir/builder"
	"github.com/sonatina-go/sonatina/ir/function"
	"github.com/sonatina-go/sonatina/ir/gvar"
	"github.com/sonatina-go/sonatina/ir/inst/arith"
	"github.com/sonatina-go/sonatina/ir/inst/controlflow"
	"github.com/sonatina-go/sonatina/ir/types"
	"github.com/sonatina-go/sonatina/isa"
)

func TestDeclareFunctionDuplicateNamePanics(t *testing.T) {
	mb := builder.NewModuleBuilder(isa.Amd64())
	mb.DeclareFunction(function.NewSignature("f", gvar.Public))
	assert.Panics(t, func() {
		mb.DeclareFunction(function.NewSignature("f", gvar.Public))
	})
}

func TestGetFuncRefForwardReference(t *testing.T) {
	mb := builder.NewModuleBuilder(isa.Amd64())
	ref := mb.DeclareFunction(function.NewSignature("f", gvar.Public))
	got, ok := mb.GetFuncRef("f")
	assert.True(t, ok)
	assert.Equal(t, ref, got)

	_, ok = mb.GetFuncRef("missing")
	assert.False(t, ok)
}

func TestAppendInstAfterTerminatorPanics(t *testing.T) {
	mb := builder.NewModuleBuilder(isa.Amd64())
	ref := mb.DeclareFunction(function.NewSignature("f", gvar.Public))
	fb := mb.FuncBuilder(ref)
	fb.AppendBlock()
	fb.AppendInst(&controlflow.Return{HasVal: false}, nil)

	assert.Panics(t, func() {
		fb.AppendInst(&controlflow.Unreachable{}, nil)
	})
}

func TestAppendInstWithoutBlockPanics(t *testing.T) {
	mb := builder.NewModuleBuilder(isa.Amd64())
	ref := mb.DeclareFunction(function.NewSignature("f", gvar.Public))
	fb := mb.FuncBuilder(ref)
	assert.Panics(t, func() {
		fb.AppendInst(&controlflow.Return{HasVal: false}, nil)
	})
}

func TestSealBlock(t *testing.T) {
	mb := builder.NewModuleBuilder(isa.Amd64())
	ref := mb.DeclareFunction(function.NewSignature("f", gvar.Public))
	fb := mb.FuncBuilder(ref)
	id := fb.AppendBlock()
	assert.False(t, fb.IsSealed(id))
	fb.SealBlock(id)
	assert.True(t, fb.IsSealed(id))
}

func TestBuildFullFunction(t *testing.T) {
	mb := builder.NewModuleBuilder(isa.Amd64())
	sig := function.NewSignature("add2", gvar.Public)
	sig.AppendArg(types.TI32)
	sig.AppendArg(types.TI32)
	sig.AppendReturn(types.TI32)
	ref := mb.DeclareFunction(sig)

	fb := mb.FuncBuilder(ref)
	fb.AppendBlock()
	fn := fb.Function()

	resTy := types.TI32
	addInsn := fb.AppendInst(&arith.Add{BinaryOp: arith.BinaryOp{
		Lhs: fn.ArgValues[0],
		Rhs: fn.ArgValues[1],
	}}, &resTy)
	sum, ok := fn.DFG.InstResult(addInsn)
	assert.True(t, ok)
	fb.AppendInst(&controlflow.Return{Value: sum, HasVal: true}, nil)

	mod := mb.Build()
	assert.False(t, mod.IsExternal(ref))
	assert.Equal(t, "add2", mod.FuncData(ref).Name)
}
