package gvar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonatina-go/sonatina/ir/gvar"
	"github.com/sonatina-go/sonatina/ir/types"
)

func TestMakeGVDuplicateSymbolPanics(t *testing.T) {
	s := gvar.NewStore()
	s.MakeGV(gvar.NewData("foo", types.TI32, gvar.Public, false, nil))
	assert.Panics(t, func() {
		s.MakeGV(gvar.NewData("foo", types.TI64, gvar.Private, false, nil))
	})
}

func TestGVBySymbol(t *testing.T) {
	s := gvar.NewStore()
	gv := s.MakeGV(gvar.NewData("bar", types.TI32, gvar.Public, false, nil))
	found, ok := s.GVBySymbol("bar")
	assert.True(t, ok)
	assert.Equal(t, gv, found)

	_, ok = s.GVBySymbol("missing")
	assert.False(t, ok)
}

func TestScenarioS1ScalarConstGlobal(t *testing.T) {
	init := gvar.MakeImm(1618)
	d := gvar.Constant("foo", types.TI32, gvar.Public, init)
	assert.True(t, d.IsConst)
	assert.Equal(t, "1618", d.Init.String())
	assert.Equal(t, gvar.Public, d.Linkage)
}

func TestScenarioS2ArrayConstGlobal(t *testing.T) {
	init := gvar.MakeArray([]gvar.ConstantValue{gvar.MakeImm(8), gvar.MakeImm(4), gvar.MakeImm(2)})
	d := gvar.Constant("arr", types.TI32, gvar.Private, init)
	assert.Equal(t, "[8, 4, 2]", d.Init.String())
}

func TestStructConstantValue(t *testing.T) {
	init := gvar.MakeStruct([]gvar.ConstantValue{gvar.MakeImm(1), gvar.MakeImm(2)})
	assert.Equal(t, "{1, 2}", init.String())
}

func TestInitDataAndIsConst(t *testing.T) {
	s := gvar.NewStore()
	imm := gvar.MakeImm(42)
	gv := s.MakeGV(gvar.Constant("x", types.TI32, gvar.Public, imm))
	got, ok := s.InitData(gv)
	assert.True(t, ok)
	assert.Equal(t, "42", got.String())
	assert.True(t, s.IsConst(gv))
}

func TestAllGVDataDeclarationOrder(t *testing.T) {
	s := gvar.NewStore()
	s.MakeGV(gvar.NewData("a", types.TI32, gvar.Public, false, nil))
	s.MakeGV(gvar.NewData("b", types.TI32, gvar.Public, false, nil))
	all := s.AllGVData()
	assert.Equal(t, []string{"a", "b"}, []string{all[0].Symbol, all[1].Symbol})
}
