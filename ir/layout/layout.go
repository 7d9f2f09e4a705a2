// Package layout implements the per-function ordering (spec.md §4.F):
// two doubly-linked orderings, one over blocks, one over instructions
// within each block. The DFG answers "what is this instruction" and
// "what does this instruction reference"; Layout answers "in what order
// do blocks and instructions execute."
//
// Grounded on original_source's cfg.rs post-order walk (which assumes a
// Layout-like block-order abstraction) and the doubly-linked free-list
// idiom visible across the retrieval pack's arena types; translated here
// into plain Go maps of handle → link-node rather than intrusive pointers,
// since ir/entity's arenas are value-oriented.
package layout

import (
	"fmt"

	"github.com/sonatina-go/sonatina/ir/blockid"
	"github.com/sonatina-go/sonatina/ir/val"
)

type blockLink struct {
	prev, next blockid.BlockId
	hasPrev    bool
	hasNext    bool
	firstInsn  val.Insn
	lastInsn   val.Insn
	hasInsns   bool
}

type insnLink struct {
	prev, next val.Insn
	hasPrev    bool
	hasNext    bool
	block      blockid.BlockId
}

// Layout is a function's block and instruction ordering.
//
// Invariant: InsnBlock is consistent with the block lists — an
// instruction appears in exactly the block's insn chain that InsnBlock
// reports, or not at all (testable property 8.4). Removing an
// instruction unbinds it from InsnBlock; querying the block of an
// unlinked instruction is a programmer error (panics).
type Layout struct {
	blocks   map[blockid.BlockId]*blockLink
	entry    blockid.BlockId
	hasEntry bool

	insns map[val.Insn]*insnLink
}

// New returns an empty layout.
func New() *Layout {
	return &Layout{
		blocks: make(map[blockid.BlockId]*blockLink),
		insns:  make(map[val.Insn]*insnLink),
	}
}

// EntryBlock returns the function's entry block, set by the first call
// to AppendBlock.
func (l *Layout) EntryBlock() (blockid.BlockId, bool) {
	return l.entry, l.hasEntry
}

// IterBlock returns blocks in program order.
func (l *Layout) IterBlock() []blockid.BlockId {
	if !l.hasEntry {
		return nil
	}
	out := make([]blockid.BlockId, 0, len(l.blocks))
	for b, ok := l.entry, true; ok; {
		out = append(out, b)
		link := l.blocks[b]
		if !link.hasNext {
			break
		}
		b = link.next
	}
	return out
}

// AppendBlock appends id as the new last block. The first block ever
// appended becomes the entry block.
func (l *Layout) AppendBlock(id blockid.BlockId) {
	if _, dup := l.blocks[id]; dup {
		panic(fmt.Sprintf("layout: block %s already present", id))
	}
	link := &blockLink{}
	if !l.hasEntry {
		l.entry = id
		l.hasEntry = true
		l.blocks[id] = link
		return
	}
	last := l.lastBlock()
	lastLink := l.blocks[last]
	lastLink.next = id
	lastLink.hasNext = true
	link.prev = last
	link.hasPrev = true
	l.blocks[id] = link
}

func (l *Layout) lastBlock() blockid.BlockId {
	b := l.entry
	for {
		link := l.blocks[b]
		if !link.hasNext {
			return b
		}
		b = link.next
	}
}

// InsertBlockBefore splices id immediately before anchor.
func (l *Layout) InsertBlockBefore(id, anchor blockid.BlockId) {
	anchorLink, ok := l.blocks[anchor]
	if !ok {
		panic(fmt.Sprintf("layout: unknown anchor block %s", anchor))
	}
	link := &blockLink{next: anchor, hasNext: true}
	if anchorLink.hasPrev {
		prevLink := l.blocks[anchorLink.prev]
		prevLink.next = id
		link.prev = anchorLink.prev
		link.hasPrev = true
	} else {
		l.entry = id
	}
	anchorLink.prev = id
	anchorLink.hasPrev = true
	l.blocks[id] = link
}

// InsertBlockAfter splices id immediately after anchor.
func (l *Layout) InsertBlockAfter(id, anchor blockid.BlockId) {
	anchorLink, ok := l.blocks[anchor]
	if !ok {
		panic(fmt.Sprintf("layout: unknown anchor block %s", anchor))
	}
	link := &blockLink{prev: anchor, hasPrev: true}
	if anchorLink.hasNext {
		nextLink := l.blocks[anchorLink.next]
		nextLink.prev = id
		link.next = anchorLink.next
		link.hasNext = true
	}
	anchorLink.next = id
	anchorLink.hasNext = true
	l.blocks[id] = link
}

// RemoveBlock unlinks id. Any instructions still bound to id become
// orphaned (InsnBlock on them is now a programmer error, matching the
// spec's "unlinked instruction" fault).
func (l *Layout) RemoveBlock(id blockid.BlockId) {
	link, ok := l.blocks[id]
	if !ok {
		panic(fmt.Sprintf("layout: unknown block %s", id))
	}
	switch {
	case link.hasPrev && link.hasNext:
		l.blocks[link.prev].next = link.next
		l.blocks[link.next].prev = link.prev
	case link.hasPrev:
		l.blocks[link.prev].hasNext = false
	case link.hasNext:
		l.blocks[link.next].hasPrev = false
		l.entry = link.next
	default:
		l.hasEntry = false
	}
	if link.hasInsns {
		for i, ok := link.firstInsn, true; ok; {
			next, hasNext := l.insns[i].next, l.insns[i].hasNext
			delete(l.insns, i)
			if !hasNext {
				break
			}
			i, ok = next, true
		}
	}
	delete(l.blocks, id)
}

// FirstInsnOf returns the first instruction in block id's chain.
func (l *Layout) FirstInsnOf(id blockid.BlockId) (val.Insn, bool) {
	link := l.requireBlock(id)
	return link.firstInsn, link.hasInsns
}

// LastInsnOf returns the last instruction in block id's chain.
func (l *Layout) LastInsnOf(id blockid.BlockId) (val.Insn, bool) {
	link := l.requireBlock(id)
	return link.lastInsn, link.hasInsns
}

// IterInst returns id's instructions in program order.
func (l *Layout) IterInst(id blockid.BlockId) []val.Insn {
	link := l.requireBlock(id)
	if !link.hasInsns {
		return nil
	}
	out := []val.Insn{link.firstInsn}
	for cur := link.firstInsn; l.insns[cur].hasNext; {
		cur = l.insns[cur].next
		out = append(out, cur)
	}
	return out
}

// InsnBlock returns the block insn is currently linked into. Panics if
// insn is not linked — querying the block of an unlinked instruction is
// a programmer error per §4.F.
func (l *Layout) InsnBlock(insn val.Insn) blockid.BlockId {
	link, ok := l.insns[insn]
	if !ok {
		panic(fmt.Sprintf("layout: instruction %v is not linked into any block", insn))
	}
	return link.block
}

// AppendInsn appends insn to the end of block id's chain.
func (l *Layout) AppendInsn(insn val.Insn, id blockid.BlockId) {
	blk := l.requireBlock(id)
	if _, dup := l.insns[insn]; dup {
		panic(fmt.Sprintf("layout: instruction %v already linked", insn))
	}
	link := &insnLink{block: id}
	if !blk.hasInsns {
		blk.firstInsn, blk.lastInsn, blk.hasInsns = insn, insn, true
		l.insns[insn] = link
		return
	}
	lastLink := l.insns[blk.lastInsn]
	lastLink.next, lastLink.hasNext = insn, true
	link.prev, link.hasPrev = blk.lastInsn, true
	blk.lastInsn = insn
	l.insns[insn] = link
}

// InsertInsnBefore splices insn immediately before anchor, within
// anchor's block.
func (l *Layout) InsertInsnBefore(insn, anchor val.Insn) {
	anchorLink := l.requireInsn(anchor)
	link := &insnLink{block: anchorLink.block, next: anchor, hasNext: true}
	blk := l.blocks[anchorLink.block]
	if anchorLink.hasPrev {
		prevLink := l.insns[anchorLink.prev]
		prevLink.next = insn
		link.prev, link.hasPrev = anchorLink.prev, true
	} else {
		blk.firstInsn = insn
	}
	anchorLink.prev, anchorLink.hasPrev = insn, true
	l.insns[insn] = link
}

// InsertInsnAfter splices insn immediately after anchor, within
// anchor's block.
func (l *Layout) InsertInsnAfter(insn, anchor val.Insn) {
	anchorLink := l.requireInsn(anchor)
	link := &insnLink{block: anchorLink.block, prev: anchor, hasPrev: true}
	blk := l.blocks[anchorLink.block]
	if anchorLink.hasNext {
		nextLink := l.insns[anchorLink.next]
		nextLink.prev = insn
		link.next, link.hasNext = anchorLink.next, true
	} else {
		blk.lastInsn = insn
	}
	anchorLink.next, anchorLink.hasNext = insn, true
	l.insns[insn] = link
}

// RemoveInsn unlinks insn from its block's chain and from InsnBlock.
func (l *Layout) RemoveInsn(insn val.Insn) {
	link := l.requireInsn(insn)
	blk := l.blocks[link.block]
	switch {
	case link.hasPrev && link.hasNext:
		l.insns[link.prev].next = link.next
		l.insns[link.next].prev = link.prev
	case link.hasPrev:
		l.insns[link.prev].hasNext = false
		blk.lastInsn = link.prev
	case link.hasNext:
		l.insns[link.next].hasPrev = false
		blk.firstInsn = link.next
	default:
		blk.hasInsns = false
	}
	delete(l.insns, insn)
}

func (l *Layout) requireBlock(id blockid.BlockId) *blockLink {
	link, ok := l.blocks[id]
	if !ok {
		panic(fmt.Sprintf("layout: unknown block %s", id))
	}
	return link
}

func (l *Layout) requireInsn(insn val.Insn) *insnLink {
	link, ok := l.insns[insn]
	if !ok {
		panic(fmt.Sprintf("layout: instruction %v is not linked into any block", insn))
	}
	return link
}
