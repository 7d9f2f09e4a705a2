package module_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonatina-go/sonatina/ir/function"
	"github.com/sonatina-go/sonatina/ir/gvar"
	"github.com/sonatina-go/sonatina/ir/module"
	"github.com/sonatina-go/sonatina/ir/modulectx"
	"github.com/sonatina-go/sonatina/isa"
)

func TestModuleIterFunctionsDeclarationOrder(t *testing.T) {
	ctx := modulectx.New(isa.Amd64())
	m := module.New(ctx)

	ref1 := m.Funcs.Push(function.New(ctx, function.NewSignature("a", gvar.Public)))
	ref2 := m.Funcs.Push(function.New(ctx, function.NewSignature("b", gvar.Public)))

	refs := m.IterFunctions()
	assert.Equal(t, []int{int(ref1), int(ref2)}, []int{int(refs[0]), int(refs[1])})
	assert.Equal(t, "a", m.FuncData(ref1).Name)
	assert.Equal(t, "b", m.FuncData(ref2).Name)
}

func TestModuleIsExternal(t *testing.T) {
	ctx := modulectx.New(isa.Amd64())
	m := module.New(ctx)
	ref := m.Funcs.Push(function.New(ctx, function.NewSignature("extern_fn", gvar.Public)))
	assert.True(t, m.IsExternal(ref))

	m.FuncData(ref).Layout.AppendBlock(0)
	assert.False(t, m.IsExternal(ref))
}

func TestModuleString(t *testing.T) {
	ctx := modulectx.New(isa.Amd64())
	m := module.New(ctx)
	assert.Equal(t, "module<x86_64-unknown-unknown>(0 funcs)", m.String())
}
