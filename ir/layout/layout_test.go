package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonatina-go/sonatina/ir/blockid"
	"github.com/sonatina-go/sonatina/ir/layout"
	"github.com/sonatina-go/sonatina/ir/val"
)

func TestAppendBlockSetsEntry(t *testing.T) {
	l := layout.New()
	l.AppendBlock(blockid.BlockId(0))
	l.AppendBlock(blockid.BlockId(1))

	entry, ok := l.EntryBlock()
	assert.True(t, ok)
	assert.Equal(t, blockid.BlockId(0), entry)
	assert.Equal(t, []blockid.BlockId{0, 1}, l.IterBlock())
}

func TestAppendBlockDuplicatePanics(t *testing.T) {
	l := layout.New()
	l.AppendBlock(blockid.BlockId(0))
	assert.Panics(t, func() { l.AppendBlock(blockid.BlockId(0)) })
}

func TestInsertBlockBeforeEntryBecomesNewEntry(t *testing.T) {
	l := layout.New()
	l.AppendBlock(blockid.BlockId(1))
	l.InsertBlockBefore(blockid.BlockId(0), blockid.BlockId(1))

	entry, _ := l.EntryBlock()
	assert.Equal(t, blockid.BlockId(0), entry)
	assert.Equal(t, []blockid.BlockId{0, 1}, l.IterBlock())
}

func TestInsertBlockAfter(t *testing.T) {
	l := layout.New()
	l.AppendBlock(blockid.BlockId(0))
	l.AppendBlock(blockid.BlockId(2))
	l.InsertBlockAfter(blockid.BlockId(1), blockid.BlockId(0))

	assert.Equal(t, []blockid.BlockId{0, 1, 2}, l.IterBlock())
}

func TestRemoveBlockMiddle(t *testing.T) {
	l := layout.New()
	l.AppendBlock(blockid.BlockId(0))
	l.AppendBlock(blockid.BlockId(1))
	l.AppendBlock(blockid.BlockId(2))
	l.RemoveBlock(blockid.BlockId(1))

	assert.Equal(t, []blockid.BlockId{0, 2}, l.IterBlock())
}

func TestRemoveBlockOrphansItsInsns(t *testing.T) {
	l := layout.New()
	l.AppendBlock(blockid.BlockId(0))
	l.AppendInsn(val.Insn(0), blockid.BlockId(0))
	l.RemoveBlock(blockid.BlockId(0))

	assert.Panics(t, func() { l.InsnBlock(val.Insn(0)) })
}

func TestAppendInsnAndIterInst(t *testing.T) {
	l := layout.New()
	l.AppendBlock(blockid.BlockId(0))
	l.AppendInsn(val.Insn(0), blockid.BlockId(0))
	l.AppendInsn(val.Insn(1), blockid.BlockId(0))

	assert.Equal(t, []val.Insn{0, 1}, l.IterInst(blockid.BlockId(0)))
	assert.Equal(t, blockid.BlockId(0), l.InsnBlock(val.Insn(1)))

	first, ok := l.FirstInsnOf(blockid.BlockId(0))
	assert.True(t, ok)
	assert.Equal(t, val.Insn(0), first)

	last, ok := l.LastInsnOf(blockid.BlockId(0))
	assert.True(t, ok)
	assert.Equal(t, val.Insn(1), last)
}

func TestInsertInsnBeforeAndAfter(t *testing.T) {
	l := layout.New()
	l.AppendBlock(blockid.BlockId(0))
	l.AppendInsn(val.Insn(0), blockid.BlockId(0))
	l.AppendInsn(val.Insn(2), blockid.BlockId(0))
	l.InsertInsnAfter(val.Insn(1), val.Insn(0))
	l.InsertInsnBefore(val.Insn(3), val.Insn(0))

	assert.Equal(t, []val.Insn{3, 0, 1, 2}, l.IterInst(blockid.BlockId(0)))
}

func TestRemoveInsnMiddle(t *testing.T) {
	l := layout.New()
	l.AppendBlock(blockid.BlockId(0))
	l.AppendInsn(val.Insn(0), blockid.BlockId(0))
	l.AppendInsn(val.Insn(1), blockid.BlockId(0))
	l.AppendInsn(val.Insn(2), blockid.BlockId(0))
	l.RemoveInsn(val.Insn(1))

	assert.Equal(t, []val.Insn{0, 2}, l.IterInst(blockid.BlockId(0)))
	assert.Panics(t, func() { l.InsnBlock(val.Insn(1)) })
}

func TestInsnBlockUnlinkedPanics(t *testing.T) {
	l := layout.New()
	assert.Panics(t, func() { l.InsnBlock(val.Insn(99)) })
}

func TestIterBlockEmptyLayout(t *testing.T) {
	l := layout.New()
	assert.Nil(t, l.IterBlock())
	_, ok := l.EntryBlock()
	assert.False(t, ok)
}
