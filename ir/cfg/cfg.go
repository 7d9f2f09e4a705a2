// Package cfg implements component I (spec.md §4.I): the on-demand
// control-flow graph derived from a function's layout and DFG, plus a
// deterministic post-order traversal for dataflow passes.
//
// Grounded on original_source/crates/ir/src/cfg.rs — the analyze_insn /
// per-block-successor-enumeration structure and the three-state
// (unvisited/visited/finished) post-order DFS are both taken from there;
// translated from Rust's IndexSet-backed adjacency to Go slices that
// preserve insertion order (the same determinism property, implemented
// without an ordered-set dependency the rest of the pack doesn't carry).
package cfg

import (
	"github.com/sonatina-go/sonatina/ir/blockid"
	"github.com/sonatina-go/sonatina/ir/entity"
	"github.com/sonatina-go/sonatina/ir/function"
)

type edgeSet struct {
	order []blockid.BlockId
	index map[blockid.BlockId]int
}

func (e *edgeSet) add(b blockid.BlockId) {
	if e.index == nil {
		e.index = make(map[blockid.BlockId]int)
	}
	if _, ok := e.index[b]; ok {
		return
	}
	e.index[b] = len(e.order)
	e.order = append(e.order, b)
}

func (e *edgeSet) remove(b blockid.BlockId) {
	i, ok := e.index[b]
	if !ok {
		return
	}
	e.order = append(e.order[:i], e.order[i+1:]...)
	delete(e.index, b)
	for j := i; j < len(e.order); j++ {
		e.index[e.order[j]] = j
	}
}

// ControlFlowGraph is derived state: predecessor and successor edge sets
// per block, plus the entry block and the set of exit blocks (blocks
// ending in a return).
type ControlFlowGraph struct {
	preds entity.Secondary[blockid.BlockId, edgeSet]
	succs entity.Secondary[blockid.BlockId, edgeSet]
	entry blockid.BlockId
	valid bool
	exits map[blockid.BlockId]struct{}
}

// New returns an empty, uncomputed control-flow graph.
func New() *ControlFlowGraph {
	return &ControlFlowGraph{exits: make(map[blockid.BlockId]struct{})}
}

// Clear discards all derived edges, ready for a fresh Compute.
func (c *ControlFlowGraph) Clear() {
	c.preds = entity.Secondary[blockid.BlockId, edgeSet]{}
	c.succs = entity.Secondary[blockid.BlockId, edgeSet]{}
	c.exits = make(map[blockid.BlockId]struct{})
	c.valid = false
}

// Compute derives the graph from fn's current layout and DFG: for each
// block, inspect its last instruction; a return marks the block as an
// exit, otherwise its branch destinations become successor edges (and,
// symmetrically, predecessor edges on the destination).
func (c *ControlFlowGraph) Compute(fn *function.Function) {
	c.Clear()
	entry, ok := fn.Layout.EntryBlock()
	if !ok {
		return
	}
	c.entry = entry
	c.valid = true
	for _, b := range fn.Layout.IterBlock() {
		last, ok := fn.Layout.LastInsnOf(b)
		if !ok {
			continue
		}
		if fn.DFG.IsReturn(last) {
			c.exits[b] = struct{}{}
			continue
		}
		for _, dest := range fn.DFG.AnalyzeBranch(last).IterDests() {
			c.AddEdge(b, dest)
		}
	}
}

// AddEdge records b → dest as both a successor edge of b and a
// predecessor edge of dest.
func (c *ControlFlowGraph) AddEdge(b, dest blockid.BlockId) {
	s := c.succs.Get(b)
	s.add(dest)
	c.succs.Set(b, s)

	p := c.preds.Get(dest)
	p.add(b)
	c.preds.Set(dest, p)
}

// RemoveEdge unlinks b → dest in both directions.
func (c *ControlFlowGraph) RemoveEdge(b, dest blockid.BlockId) {
	s := c.succs.Get(b)
	s.remove(dest)
	c.succs.Set(b, s)

	p := c.preds.Get(dest)
	p.remove(b)
	c.preds.Set(dest, p)
}

// PredsOf returns b's predecessors in first-recorded order.
func (c *ControlFlowGraph) PredsOf(b blockid.BlockId) []blockid.BlockId {
	return c.preds.Get(b).order
}

// SuccsOf returns b's successors in first-recorded order.
func (c *ControlFlowGraph) SuccsOf(b blockid.BlockId) []blockid.BlockId {
	return c.succs.Get(b).order
}

// PredNumOf counts b's predecessors.
func (c *ControlFlowGraph) PredNumOf(b blockid.BlockId) int { return len(c.PredsOf(b)) }

// SuccNumOf counts b's successors.
func (c *ControlFlowGraph) SuccNumOf(b blockid.BlockId) int { return len(c.SuccsOf(b)) }

// Entry returns the function's entry block.
func (c *ControlFlowGraph) Entry() (blockid.BlockId, bool) { return c.entry, c.valid }

// Exits returns the set of blocks that end in a return, in no particular
// order (callers needing determinism should sort by handle value).
func (c *ControlFlowGraph) Exits() []blockid.BlockId {
	out := make([]blockid.BlockId, 0, len(c.exits))
	for b := range c.exits {
		out = append(out, b)
	}
	return out
}

// ReverseEdges swaps the predecessor and successor tables, and replaces
// entry/exits with the caller-supplied ones — used to run PostOrder on
// the reverse graph for post-dominance analysis rooted at the exits.
func (c *ControlFlowGraph) ReverseEdges(newEntry blockid.BlockId, newExits []blockid.BlockId) {
	c.preds, c.succs = c.succs, c.preds
	c.entry = newEntry
	c.exits = make(map[blockid.BlockId]struct{}, len(newExits))
	for _, e := range newExits {
		c.exits[e] = struct{}{}
	}
}

type mark uint8

const (
	unvisited mark = iota
	visited
	finished
)

// PostOrder returns blocks reachable from the entry in post-order:
// iterative DFS, three-state marker per block, successors visited in
// their recorded (deterministic) order. Unreachable blocks never appear.
func (c *ControlFlowGraph) PostOrder() []blockid.BlockId {
	if !c.valid {
		return nil
	}
	marks := make(map[blockid.BlockId]mark)
	var order []blockid.BlockId

	type frame struct {
		block   blockid.BlockId
		pending []blockid.BlockId
	}
	stack := []frame{{block: c.entry, pending: c.SuccsOf(c.entry)}}
	marks[c.entry] = visited

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		advanced := false
		for len(top.pending) > 0 {
			next := top.pending[0]
			top.pending = top.pending[1:]
			if marks[next] == unvisited {
				marks[next] = visited
				stack = append(stack, frame{block: next, pending: c.SuccsOf(next)})
				advanced = true
				break
			}
		}
		if advanced {
			continue
		}
		marks[top.block] = finished
		order = append(order, top.block)
		stack = stack[:len(stack)-1]
	}
	return order
}
