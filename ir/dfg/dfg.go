// Package dfg implements the per-function data-flow graph: the SSA value
// and instruction arenas, the map from instruction to its (optional)
// result value, and the per-value definition/type bookkeeping.
//
// Grounded on the DataFlowGraph described in original_source (the ir
// crate threads a DataFlowGraph per Function; the concrete file was
// filtered from the retrieval pack, so this follows spec.md §4.E plus the
// PrimaryMap/FxHashMap idiom visible in types.rs and global_variable.rs).
package dfg

import (
	"github.com/sonatina-go/sonatina/ir/entity"
	"github.com/sonatina-go/sonatina/ir/inst"
	"github.com/sonatina-go/sonatina/ir/modulectx"
	"github.com/sonatina-go/sonatina/ir/types"
	"github.com/sonatina-go/sonatina/ir/val"
)

// Value and Insn are the function-scope handle types, re-exported from
// ir/val so callers of this package rarely need to import it directly.
type (
	Value = val.Value
	Insn  = val.Insn
)

// ValueDef records where a Value was minted: either a function argument
// (by index and declared type) or the result of producing Insn.
type ValueDef struct {
	IsArg bool
	// Arg fields
	ArgTy  types.Type
	ArgIdx int
	// Result field
	ResultOf Insn
}

// DataFlowGraph owns a single function's SSA arenas.
//
// Invariant: InstResult(i) is non-nil iff i's opcode produces a defining
// value; result values are assigned exactly once and never re-bound
// (testable property 8.3).
type DataFlowGraph struct {
	Ctx *modulectx.Ctx

	insns   entity.Arena[Insn, inst.Inst]
	values  entity.Arena[Value, ValueDef]
	results entity.Secondary[Insn, resultSlot]
	tyCache entity.Secondary[Value, types.Type]
}

type resultSlot struct {
	value   Value
	present bool
}

// New returns an empty data-flow graph bound to ctx, exposed as the Ctx
// field. Value types are taken from argument defs and MakeInst's resultTy;
// the graph itself performs no type-store lookups.
func New(ctx *modulectx.Ctx) *DataFlowGraph {
	return &DataFlowGraph{Ctx: ctx}
}

// MakeArgValue mints the ValueDef for function argument idx of type ty.
// Call MakeValue with the result to obtain the Value handle itself — kept
// as two steps (mirroring the Rust API) so a builder can construct every
// argument's ValueDef before any Value handles exist, if ever needed.
func (d *DataFlowGraph) MakeArgValue(ty types.Type, idx int) ValueDef {
	return ValueDef{IsArg: true, ArgTy: ty, ArgIdx: idx}
}

// MakeValue mints a fresh Value for def and caches its type.
func (d *DataFlowGraph) MakeValue(def ValueDef) Value {
	v := d.values.Push(def)
	d.tyCache.Set(v, d.resolveTy(def))
	return v
}

func (d *DataFlowGraph) resolveTy(def ValueDef) types.Type {
	if def.IsArg {
		return def.ArgTy
	}
	// MakeInst mints result values itself and caches their type directly,
	// without going through MakeValue; a non-argument def passed to
	// MakeValue gets void.
	return types.TVoid
}

// MakeInst stores i in the instruction arena. If resultTy is non-nil the
// opcode produces a value: a fresh result Value is minted and bound.
// Passing resultTy == nil models an opcode with no result (e.g. Store,
// Jump, Return).
func (d *DataFlowGraph) MakeInst(i inst.Inst, resultTy *types.Type) Insn {
	insn := d.insns.Push(i)
	if resultTy == nil {
		d.results.Set(insn, resultSlot{})
		return insn
	}
	v := d.values.Push(ValueDef{ResultOf: insn})
	d.tyCache.Set(v, *resultTy)
	d.results.Set(insn, resultSlot{value: v, present: true})
	return insn
}

// InstResult returns the Value produced by insn, if any.
func (d *DataFlowGraph) InstResult(insn Insn) (Value, bool) {
	slot := d.results.Get(insn)
	return slot.value, slot.present
}

// Inst returns the type-erased instruction stored at insn.
func (d *DataFlowGraph) Inst(insn Insn) inst.Inst {
	return d.insns.Get(insn)
}

// ReplaceInst overwrites the instruction stored at insn in place, letting
// a pass rewrite an opcode without changing its position in the layout.
func (d *DataFlowGraph) ReplaceInst(insn Insn, i inst.Inst) {
	d.insns.Set(insn, i)
}

// ValueDef returns the definition site of v.
func (d *DataFlowGraph) ValueDef(v Value) ValueDef {
	return d.values.Get(v)
}

// ValueTy returns the cached type of v.
func (d *DataFlowGraph) ValueTy(v Value) types.Type {
	return d.tyCache.Get(v)
}

// IsReturn reports whether insn is a control-flow return. It is a thin
// wrapper over the Inst capability rather than an ISA-witness downcast:
// every Inst implementation directly reports IsTerminator, but "is this
// specifically a *return*, for CFG exit tracking" needs the concrete
// opcode. Packages that define Return register it via RegisterReturnPredicate so
// dfg itself stays free of a dependency on ir/inst/controlflow (which
// would otherwise be a layering inversion: controlflow depends on inst,
// not the reverse).
var isReturnFns []func(inst.Inst) bool

// RegisterReturnPredicate lets an opcode package (ir/inst/controlflow)
// teach dfg how to recognise its Return opcode without dfg importing it
// directly.
func RegisterReturnPredicate(f func(inst.Inst) bool) {
	isReturnFns = append(isReturnFns, f)
}

// IsReturn reports whether insn's opcode is a function return.
func (d *DataFlowGraph) IsReturn(insn Insn) bool {
	i := d.insns.Get(insn)
	for _, f := range isReturnFns {
		if f(i) {
			return true
		}
	}
	return false
}

// IsTerminator reports whether insn ends its block.
func (d *DataFlowGraph) IsTerminator(insn Insn) bool {
	return d.insns.Get(insn).IsTerminator()
}

// IsBranch reports whether insn has one or more branch destinations.
func (d *DataFlowGraph) IsBranch(insn Insn) bool {
	return len(d.AnalyzeBranch(insn).IterDests()) > 0
}

// AnalyzeBranch returns insn's destination set for CFG construction.
func (d *DataFlowGraph) AnalyzeBranch(insn Insn) inst.BranchInfo {
	return inst.AnalyzeBranch(d.insns.Get(insn))
}
