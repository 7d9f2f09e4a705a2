package inst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonatina-go/sonatina/ir/inst/arith"
	"github.com/sonatina-go/sonatina/ir/inst/cast"
	"github.com/sonatina-go/sonatina/ir/inst/cmp"
	"github.com/sonatina-go/sonatina/ir/inst/data"
	"github.com/sonatina-go/sonatina/ir/inst/evm"
	"github.com/sonatina-go/sonatina/ir/inst/logic"
	"github.com/sonatina-go/sonatina/ir/types"
	"github.com/sonatina-go/sonatina/ir/val"
)

func TestArithBinaryOpVisitsInOrder(t *testing.T) {
	add := &arith.Add{BinaryOp: arith.BinaryOp{Lhs: 1, Rhs: 2}}
	var seen []val.Value
	add.VisitValues(func(v val.Value) { seen = append(seen, v) })
	assert.Equal(t, []val.Value{1, 2}, seen)
	assert.Equal(t, "add", add.AsText())
	assert.False(t, add.HasSideEffect())
}

func TestCastUnaryKeepsTargetType(t *testing.T) {
	s := &cast.Sext{Unary: cast.Unary{Operand: 0, To: types.TI64}}
	assert.Equal(t, "sext", s.AsText())
	assert.Equal(t, types.TI64, s.To)

	var seen []val.Value
	s.VisitValues(func(v val.Value) { seen = append(seen, v) })
	assert.Equal(t, []val.Value{0}, seen)
}

func TestCmpProducesNoSideEffect(t *testing.T) {
	eq := &cmp.Eq{BinaryOp: cmp.BinaryOp{Lhs: 0, Rhs: 1}}
	assert.Equal(t, "eq", eq.AsText())
	assert.False(t, eq.HasSideEffect())
}

func TestDataStoreHasSideEffectLoadDoesNot(t *testing.T) {
	st := &data.Store{Addr: 0, Src: 1}
	assert.True(t, st.HasSideEffect())

	ld := &data.Load{Addr: 0, Ty: types.TI32}
	assert.False(t, ld.HasSideEffect())

	var seen []val.Value
	st.VisitValues(func(v val.Value) { seen = append(seen, v) })
	assert.Equal(t, []val.Value{0, 1}, seen)
}

func TestFieldGepRecordsIndex(t *testing.T) {
	fg := &data.FieldGep{Base: 3, FieldIndex: 2}
	assert.Equal(t, "field_gep", fg.AsText())
	assert.Equal(t, 2, fg.FieldIndex)
}

func TestAllocaHasNoOperands(t *testing.T) {
	a := &data.Alloca{Ty: types.TI32}
	var seen []val.Value
	a.VisitValues(func(v val.Value) { seen = append(seen, v) })
	assert.Empty(t, seen)
}

func TestLogicNotIsUnary(t *testing.T) {
	n := &logic.Not{Operand: 5}
	assert.Equal(t, "not", n.AsText())
	var seen []val.Value
	n.VisitValues(func(v val.Value) { seen = append(seen, v) })
	assert.Equal(t, []val.Value{5}, seen)
}

func TestEvmSstoreHasSideEffectSloadDoesNot(t *testing.T) {
	st := &evm.Sstore{Key: 0, Val: 1}
	assert.True(t, st.HasSideEffect())

	ld := &evm.Sload{Key: 0}
	assert.False(t, ld.HasSideEffect())

	sb := &evm.SelfBalance{}
	assert.Equal(t, "selfbalance", sb.AsText())
	var seen []val.Value
	sb.VisitValues(func(v val.Value) { seen = append(seen, v) })
	assert.Empty(t, seen)
}
