// Package xform implements the demonstration transform passes named in
// spec.md §6 ("to passes"): consumers that walk a function's DFG+layout
// and rewrite it in place. Two passes are provided — Peephole (local
// double-negation elimination) and ADCE (aggressive dead-code
// elimination) — exercising the public instruction/layout/CFG surface
// the same way any future pass would.
//
// Grounded on the teacher's pkg/optimizer/optimizer.go (ConstantFold,
// PeepholeOptimize, DeadCodeElimination), adapted from its
// slice-of-instructions Block model to this IR's Insn-handle-addressed
// DFG+Layout split, and scoped down: the teacher's constant folding
// operates on an ir.Const AST node this IR has no equivalent of (values
// here are always either arguments or instruction results, never
// embedded literals), so constant folding itself is out of scope — see
// DESIGN.md.
package xform

import (
	"github.com/sonatina-go/sonatina/ir/blockid"
	"github.com/sonatina-go/sonatina/ir/cfg"
	"github.com/sonatina-go/sonatina/ir/dfg"
	"github.com/sonatina-go/sonatina/ir/function"
	"github.com/sonatina-go/sonatina/ir/inst/arith"
	"github.com/sonatina-go/sonatina/ir/inst/logic"
)

// Pass transforms fn in place and reports whether it changed anything —
// callers run passes to a fixpoint with RunToFixpoint.
type Pass func(fn *function.Function) bool

// RunToFixpoint applies every pass in order, repeating the whole list
// until a full pass over all of them makes no further changes.
func RunToFixpoint(fn *function.Function, passes ...Pass) {
	for {
		changed := false
		for _, p := range passes {
			if p(fn) {
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// Peephole eliminates double negation: neg(neg(x)) -> x and
// not(not(x)) -> x, rewriting every use of the outer instruction's
// result to the inner operand and deleting both instructions (the inner
// one only when nothing else still uses its result).
func Peephole(fn *function.Function) bool {
	changed := false
	for _, b := range fn.Layout.IterBlock() {
		for _, insn := range fn.Layout.IterInst(b) {
			inner, ok := doubleNegOperand(fn.DFG, insn)
			if !ok {
				continue
			}
			outerResult, hasResult := fn.DFG.InstResult(insn)
			if !hasResult {
				continue
			}
			var mid dfg.Value
			fn.DFG.Inst(insn).VisitValues(func(v dfg.Value) { mid = v })
			replaceAllUses(fn, outerResult, inner)
			fn.Layout.RemoveInsn(insn)
			midUsed := false
			for _, b2 := range fn.Layout.IterBlock() {
				for _, other := range fn.Layout.IterInst(b2) {
					fn.DFG.Inst(other).VisitValues(func(v dfg.Value) {
						if v == mid {
							midUsed = true
						}
					})
				}
			}
			if !midUsed {
				fn.Layout.RemoveInsn(fn.DFG.ValueDef(mid).ResultOf)
			}
			changed = true
		}
	}
	return changed
}

// doubleNegOperand returns the innermost operand if insn is neg(neg(_))
// or not(not(_)). Whether the inner instruction has other uses is not
// checked here; Peephole checks that before deleting it.
func doubleNegOperand(d *dfg.DataFlowGraph, insn dfg.Insn) (dfg.Value, bool) {
	switch outer := d.Inst(insn).(type) {
	case *arith.Neg:
		def := d.ValueDef(outer.Operand)
		if def.IsArg {
			return 0, false
		}
		if inner, ok := d.Inst(def.ResultOf).(*arith.Neg); ok {
			return inner.Operand, true
		}
	case *logic.Not:
		def := d.ValueDef(outer.Operand)
		if def.IsArg {
			return 0, false
		}
		if inner, ok := d.Inst(def.ResultOf).(*logic.Not); ok {
			return inner.Operand, true
		}
	}
	return 0, false
}

func replaceAllUses(fn *function.Function, from, to dfg.Value) {
	for _, b := range fn.Layout.IterBlock() {
		for _, insn := range fn.Layout.IterInst(b) {
			i := fn.DFG.Inst(insn)
			i.VisitValuesMut(func(v *dfg.Value) {
				if *v == from {
					*v = to
				}
			})
		}
	}
}

// ADCE removes instructions with no side effect whose result is never
// used, and blocks unreachable from the entry per the computed CFG,
// iterating to a fixpoint since removing one dead instruction can make
// its operand's defining instruction dead in turn.
func ADCE(fn *function.Function) bool {
	changed := removeUnreachableBlocks(fn)
	for {
		if !removeDeadInsns(fn) {
			break
		}
		changed = true
	}
	return changed
}

func removeUnreachableBlocks(fn *function.Function) bool {
	g := cfg.New()
	g.Compute(fn)
	reachable := make(map[blockid.BlockId]bool)
	for _, b := range g.PostOrder() {
		reachable[b] = true
	}
	if entry, ok := fn.Layout.EntryBlock(); ok {
		reachable[entry] = true
	}
	changed := false
	for _, b := range fn.Layout.IterBlock() {
		if !reachable[b] {
			fn.Layout.RemoveBlock(b)
			changed = true
		}
	}
	return changed
}

func removeDeadInsns(fn *function.Function) bool {
	used := make(map[dfg.Value]bool)
	for _, b := range fn.Layout.IterBlock() {
		for _, insn := range fn.Layout.IterInst(b) {
			fn.DFG.Inst(insn).VisitValues(func(v dfg.Value) { used[v] = true })
		}
	}
	changed := false
	for _, b := range fn.Layout.IterBlock() {
		for _, insn := range fn.Layout.IterInst(b) {
			i := fn.DFG.Inst(insn)
			if i.HasSideEffect() || i.IsTerminator() {
				continue
			}
			result, ok := fn.DFG.InstResult(insn)
			if !ok || used[result] {
				continue
			}
			fn.Layout.RemoveInsn(insn)
			changed = true
		}
	}
	return changed
}
