package inst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonatina-go/sonatina/ir/blockid"
	"github.com/sonatina-go/sonatina/ir/inst"
	"github.com/sonatina-go/sonatina/ir/inst/arith"
	"github.com/sonatina-go/sonatina/ir/inst/controlflow"
	"github.com/sonatina-go/sonatina/ir/inst/evm"
	"github.com/sonatina-go/sonatina/ir/val"
)

func TestHasInstAndAsWitness(t *testing.T) {
	set := inst.NewSet("test", &arith.Add{}, &arith.Sub{})
	assert.True(t, inst.HasInst[*arith.Add](set))
	assert.False(t, inst.HasInst[*arith.Mul](set))

	var i inst.Inst = &arith.Add{BinaryOp: arith.BinaryOp{Lhs: 0, Rhs: 1}}
	got, ok := inst.As[*arith.Add](set, i)
	assert.True(t, ok)
	assert.Equal(t, i, got)

	_, ok = inst.As[*arith.Mul](set, i)
	assert.False(t, ok, "As must fail when the witness lacks the capability even if the dynamic type matched")
}

func TestAnalyzeBranchNonBrancherIsEmpty(t *testing.T) {
	var r inst.Inst = &controlflow.Return{HasVal: false}
	bi := inst.AnalyzeBranch(r)
	assert.Empty(t, bi.IterDests())
}

func TestAnalyzeBranchJump(t *testing.T) {
	j := &controlflow.Jump{Dest: blockid.BlockId(3)}
	bi := inst.AnalyzeBranch(j)
	assert.Equal(t, []blockid.BlockId{blockid.BlockId(3)}, bi.IterDests())
}

func TestAnalyzeBranchSwitchEnumeratesCasesAndDefault(t *testing.T) {
	sw := &controlflow.Switch{
		Cases: []controlflow.SwitchCase{
			{Target: blockid.BlockId(1)},
			{Target: blockid.BlockId(2)},
		},
		Default: blockid.BlockId(9),
	}
	bi := inst.AnalyzeBranch(sw)
	assert.Equal(t, []blockid.BlockId{1, 2, 9}, bi.IterDests())
}

func TestHasSideEffectContract(t *testing.T) {
	assert.False(t, (&arith.Add{}).HasSideEffect())
	assert.True(t, (&controlflow.Call{}).HasSideEffect(), "calls have unknown effects")
	assert.True(t, (&controlflow.Return{}).HasSideEffect())
	assert.True(t, (&evm.Sstore{}).HasSideEffect())
	assert.False(t, (&evm.Sload{}).HasSideEffect())
}

func TestVisitValuesMutRewritesOperands(t *testing.T) {
	add := &arith.Add{BinaryOp: arith.BinaryOp{Lhs: 0, Rhs: 1}}
	add.VisitValuesMut(func(v *val.Value) { *v += 10 })
	assert.Equal(t, val.Value(10), add.Lhs)
	assert.Equal(t, val.Value(11), add.Rhs)
}
