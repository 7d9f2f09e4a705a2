package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonatina-go/sonatina/ir/blockid"
	"github.com/sonatina-go/sonatina/ir/builder"
	"github.com/sonatina-go/sonatina/ir/cfg"
	"github.com/sonatina-go/sonatina/ir/function"
	"github.com/sonatina-go/sonatina/ir/gvar"
	"github.com/sonatina-go/sonatina/ir/inst/controlflow"
	"github.com/sonatina-go/sonatina/ir/types"
	"github.com/sonatina-go/sonatina/isa"
)

// buildDiamond constructs entry -> {then, els} -> merge -> ret, the
// scenario S4 diamond shape.
func buildDiamond() *function.Function {
	mb := builder.NewModuleBuilder(isa.Amd64())
	sig := function.NewSignature("diamond", gvar.Public)
	sig.AppendArg(types.TI1)
	ref := mb.DeclareFunction(sig)

	fb := mb.FuncBuilder(ref)
	entry := fb.AppendBlock()
	fn := fb.Function()

	thenB := fb.AppendBlock()
	elsB := fb.AppendBlock()
	mergeB := fb.AppendBlock()

	fb.SwitchToBlock(entry)
	fb.AppendInst(&controlflow.Br{Cond: fn.ArgValues[0], Then: thenB, Else: elsB}, nil)

	fb.SwitchToBlock(thenB)
	fb.AppendInst(&controlflow.Jump{Dest: mergeB}, nil)

	fb.SwitchToBlock(elsB)
	fb.AppendInst(&controlflow.Jump{Dest: mergeB}, nil)

	fb.SwitchToBlock(mergeB)
	fb.AppendInst(&controlflow.Return{HasVal: false}, nil)

	return fn
}

func TestComputeDiamondEdges(t *testing.T) {
	fn := buildDiamond()
	blocks := fn.Layout.IterBlock()
	entry, thenB, elsB, mergeB := blocks[0], blocks[1], blocks[2], blocks[3]

	c := cfg.New()
	c.Compute(fn)

	got, ok := c.Entry()
	assert.True(t, ok)
	assert.Equal(t, entry, got)

	assert.Equal(t, []blockid.BlockId{thenB, elsB}, c.SuccsOf(entry))
	assert.Equal(t, 2, c.SuccNumOf(entry))
	assert.Equal(t, 2, c.PredNumOf(mergeB))
	assert.Equal(t, []blockid.BlockId{mergeB}, c.SuccsOf(thenB))
	assert.Contains(t, c.PredsOf(mergeB), thenB)
	assert.Contains(t, c.PredsOf(mergeB), elsB)
	assert.Equal(t, []blockid.BlockId{mergeB}, c.Exits())
}

func TestPostOrderDiamond(t *testing.T) {
	fn := buildDiamond()
	blocks := fn.Layout.IterBlock()
	entry, thenB, elsB, mergeB := blocks[0], blocks[1], blocks[2], blocks[3]

	c := cfg.New()
	c.Compute(fn)
	order := c.PostOrder()

	assert.Equal(t, mergeB, order[0], "merge block finishes first: both diamond arms reach it before returning")
	assert.Equal(t, entry, order[len(order)-1], "entry finishes last in a post-order DFS")
	assert.Contains(t, order, thenB)
	assert.Contains(t, order, elsB)
	assert.Len(t, order, 4)
}

func TestRemoveEdge(t *testing.T) {
	fn := buildDiamond()
	blocks := fn.Layout.IterBlock()
	entry, thenB := blocks[0], blocks[1]

	c := cfg.New()
	c.Compute(fn)
	c.RemoveEdge(entry, thenB)
	assert.NotContains(t, c.SuccsOf(entry), thenB)
	assert.NotContains(t, c.PredsOf(thenB), entry)
}

