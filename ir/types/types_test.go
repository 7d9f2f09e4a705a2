package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonatina-go/sonatina/ir/types"
)

func TestInterningStructuralEquality(t *testing.T) {
	s := types.NewStore()
	a := s.MakeArray(types.TI32, 3)
	b := s.MakeArray(types.TI32, 3)
	assert.Equal(t, a, b, "structurally equal arrays must share a CompoundType handle")

	p1 := s.MakePtr(types.TI64)
	p2 := s.MakePtr(types.TI64)
	assert.Equal(t, p1, p2)
}

func TestMakeStructDuplicateNamePanics(t *testing.T) {
	s := types.NewStore()
	s.MakeStruct("Pair", []types.Type{types.TI32, types.TI64}, false)
	assert.Panics(t, func() {
		s.MakeStruct("Pair", []types.Type{types.TI32, types.TI64}, false)
	})
}

func TestArrayIntern(t *testing.T) {
	s := types.NewStore()
	a := s.MakeArray(types.TI32, 3)
	b := s.MakeArray(types.TI32, 3)
	ha, _ := a.AsCompound()
	hb, _ := b.AsCompound()
	assert.Equal(t, ha, hb)
}

func TestStructDefAndArrayDef(t *testing.T) {
	s := types.NewStore()
	st := s.MakeStruct("Point", []types.Type{types.TI32, types.TI32}, false)
	def, ok := s.StructDef(st)
	assert.True(t, ok)
	assert.Equal(t, "Point", def.Name)
	assert.Len(t, def.Fields, 2)

	arr := s.MakeArray(types.TI8, 10)
	elem, length, ok := s.ArrayDef(arr)
	assert.True(t, ok)
	assert.Equal(t, types.TI8, elem)
	assert.Equal(t, uint(10), length)
}

func TestDeref(t *testing.T) {
	s := types.NewStore()
	p := s.MakePtr(types.TI64)
	pointee, ok := s.Deref(p)
	assert.True(t, ok)
	assert.Equal(t, types.TI64, pointee)

	_, ok = s.Deref(types.TI32)
	assert.False(t, ok)
}

func TestStructTypeByNameAndAllStructData(t *testing.T) {
	s := types.NewStore()
	s.MakeStruct("A", []types.Type{types.TI8}, false)
	s.MakeStruct("B", []types.Type{types.TI16}, true)

	ty, ok := s.StructTypeByName("A")
	assert.True(t, ok)
	def, _ := s.StructDef(ty)
	assert.Equal(t, "A", def.Name)

	all := s.AllStructData()
	assert.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Name)
	assert.Equal(t, "B", all[1].Name)
	assert.True(t, all[1].Packed)
}

func TestComparePartialOrder(t *testing.T) {
	assert.Equal(t, types.Less, types.Compare(types.TI8, types.TI32))
	assert.Equal(t, types.Greater, types.Compare(types.TI64, types.TI16))
	assert.Equal(t, types.Equal, types.Compare(types.TI32, types.TI32))

	s := types.NewStore()
	st := s.MakeStruct("Opaque", nil, false)
	assert.Equal(t, types.Unordered, types.Compare(st, types.TI32))
	assert.Equal(t, types.Unordered, types.Compare(types.TVoid, types.TI1))
}

func TestPredicates(t *testing.T) {
	s := types.NewStore()
	ptr := s.MakePtr(types.TI32)
	arr := s.MakeArray(types.TI32, 2)
	assert.True(t, s.IsPtr(ptr))
	assert.False(t, s.IsPtr(arr))
	assert.True(t, s.IsArray(arr))
	assert.True(t, types.TI32.IsIntegral())
	assert.False(t, types.TVoid.IsIntegral())
}
