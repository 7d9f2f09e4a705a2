package irwriter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonatina-go/sonatina/ir/builder"
	"github.com/sonatina-go/sonatina/ir/function"
	"github.com/sonatina-go/sonatina/ir/gvar"
	"github.com/sonatina-go/sonatina/ir/inst/arith"
	"github.com/sonatina-go/sonatina/ir/inst/controlflow"
	"github.com/sonatina-go/sonatina/ir/types"
	"github.com/sonatina-go/sonatina/irwriter"
	"github.com/sonatina-go/sonatina/isa"
)

func TestTypeTextLeavesAndCompounds(t *testing.T) {
	store := types.NewStore()
	assert.Equal(t, "i32", irwriter.TypeText(types.TI32, store))
	assert.Equal(t, "()", irwriter.TypeText(types.TVoid, store))

	ptr := store.MakePtr(types.TI64)
	assert.Equal(t, "*i64", irwriter.TypeText(ptr, store))

	arr := store.MakeArray(types.TI32, 3)
	assert.Equal(t, "[i32;3]", irwriter.TypeText(arr, store))

	st := store.MakeStruct("Foo", []types.Type{types.TI32}, false)
	assert.Equal(t, "{Foo}", irwriter.TypeText(st, store))

	packed := store.MakeStruct("Bar", []types.Type{types.TI8}, true)
	assert.Equal(t, "<{Bar}>", irwriter.TypeText(packed, store))
}

func TestScenarioS1GlobalText(t *testing.T) {
	store := types.NewStore()
	d := gvar.Constant("foo", types.TI32, gvar.Public, gvar.MakeImm(1618))
	assert.Equal(t, "i32 const public 1618", irwriter.GlobalText(d, store))
}

func TestScenarioS2GlobalText(t *testing.T) {
	store := types.NewStore()
	arr := store.MakeArray(types.TI32, 3)
	init := gvar.MakeArray([]gvar.ConstantValue{gvar.MakeImm(8), gvar.MakeImm(4), gvar.MakeImm(2)})
	d := gvar.Constant("arr", arr, gvar.Private, init)
	assert.Equal(t, "[i32;3] const private [8, 4, 2]", irwriter.GlobalText(d, store))
}

func TestScenarioS3FunctionText(t *testing.T) {
	mb := builder.NewModuleBuilder(isa.Amd64())
	sig := function.NewSignature("f", gvar.Public)
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
	sum, _ := fn.DFG.InstResult(addInsn)
	fb.AppendInst(&controlflow.Return{Value: sum, HasVal: true}, nil)

	assert.Equal(t, "v2 = add v0, v1; ret v2", irwriter.FunctionText(fn))
}

func TestInstTextUnaryAndNoResult(t *testing.T) {
	mb := builder.NewModuleBuilder(isa.Amd64())
	sig := function.NewSignature("neg_fn", gvar.Public)
	sig.AppendArg(types.TI32)
	ref := mb.DeclareFunction(sig)

	fb := mb.FuncBuilder(ref)
	fb.AppendBlock()
	fn := fb.Function()

	resTy := types.TI32
	negInsn := fb.AppendInst(&arith.Neg{Operand: fn.ArgValues[0]}, &resTy)
	fb.AppendInst(&controlflow.Return{HasVal: false}, nil)

	text := irwriter.FunctionText(fn)
	assert.Equal(t, "v1 = neg v0; ret", text)
	assert.Equal(t, "neg v0", irwriter.InstText(fn.DFG, negInsn))
}
