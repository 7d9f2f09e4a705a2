// Package builder implements component J (spec.md §4.J): the
// incremental, symbol-checked construction surface for modules and
// functions. ModuleBuilder declares functions (reserving a stable
// FuncRef before any body exists, so mutually-recursive functions can
// reference each other); FunctionBuilder appends blocks and
// instructions to one function's body.
//
// Grounded on original_source/crates/codegen/src/ir/builder/
// module_builder.rs's DeclareFunction/GetFuncRef/FuncBuilder/Build shape.
// SealBlock takes the Braun et al. "sealed block" idea (a block is sealed
// once all its predecessors are known) from the teacher's pkg/ssa/ssa.go
// stub, but only as bookkeeping: it records which blocks are sealed and
// does not create, complete or prune phis.
package builder

import (
	"fmt"

	"github.com/sonatina-go/sonatina/ir/blockid"
	"github.com/sonatina-go/sonatina/ir/dfg"
	"github.com/sonatina-go/sonatina/ir/funcref"
	"github.com/sonatina-go/sonatina/ir/function"
	"github.com/sonatina-go/sonatina/ir/inst"
	"github.com/sonatina-go/sonatina/ir/module"
	"github.com/sonatina-go/sonatina/ir/modulectx"
	"github.com/sonatina-go/sonatina/ir/types"
	"github.com/sonatina-go/sonatina/isa"
)

// ModuleBuilder accumulates functions into a Module under construction.
//
// Invariant: declared function names are unique (§3's Module invariant);
// DeclareFunction panics on a duplicate name, matching the
// duplicate-struct-name and duplicate-global-symbol programmer-error
// convention used throughout the IR (§7).
type ModuleBuilder struct {
	ctx    *modulectx.Ctx
	mod    *module.Module
	byName map[string]funcref.FuncRef
}

// NewModuleBuilder starts a fresh module build targeting target.
func NewModuleBuilder(target isa.Isa) *ModuleBuilder {
	ctx := modulectx.New(target)
	return &ModuleBuilder{
		ctx:    ctx,
		mod:    module.New(ctx),
		byName: make(map[string]funcref.FuncRef),
	}
}

// Ctx exposes the shared module context, e.g. for interning types or
// global variables ahead of declaring functions that reference them.
func (b *ModuleBuilder) Ctx() *modulectx.Ctx { return b.ctx }

// DeclareFunction reserves a FuncRef for sig. Panics if sig.Name is
// already declared.
func (b *ModuleBuilder) DeclareFunction(sig function.Signature) funcref.FuncRef {
	if _, dup := b.byName[sig.Name]; dup {
		panic(fmt.Sprintf("module builder: function %q already declared", sig.Name))
	}
	fn := function.New(b.ctx, sig)
	ref := b.mod.Funcs.Push(fn)
	b.byName[sig.Name] = ref
	return ref
}

// GetFuncRef looks up a previously declared function by name, enabling
// forward references during construction.
func (b *ModuleBuilder) GetFuncRef(name string) (funcref.FuncRef, bool) {
	ref, ok := b.byName[name]
	return ref, ok
}

// FuncBuilder returns a builder scoped to the function behind ref.
func (b *ModuleBuilder) FuncBuilder(ref funcref.FuncRef) *FunctionBuilder {
	return &FunctionBuilder{b: b, ref: ref, fn: b.mod.FuncData(ref), sealed: make(map[blockid.BlockId]bool)}
}

// Build finalises and returns the constructed module.
func (b *ModuleBuilder) Build() *module.Module { return b.mod }

// FunctionBuilder incrementally builds one function's body: blocks,
// instructions, and operand wiring.
//
// Invariant: only the last instruction appended to a block may be a
// terminator, and a block accepts no further instructions once
// terminated (§3's Block invariant) — AppendInst panics on violation.
type FunctionBuilder struct {
	b            *ModuleBuilder
	ref          funcref.FuncRef
	fn           *function.Function
	currentBlock blockid.BlockId
	hasCurrent   bool
	nextBlockID  uint32
	sealed       map[blockid.BlockId]bool
}

// Function returns the function under construction.
func (fb *FunctionBuilder) Function() *function.Function { return fb.fn }

// AppendBlock appends a fresh block to the layout and makes it current.
func (fb *FunctionBuilder) AppendBlock() blockid.BlockId {
	id := blockid.BlockId(fb.nextBlockID)
	fb.nextBlockID++
	fb.fn.Layout.AppendBlock(id)
	fb.currentBlock = id
	fb.hasCurrent = true
	return id
}

// SwitchToBlock moves the insertion point to an already-appended block.
func (fb *FunctionBuilder) SwitchToBlock(id blockid.BlockId) {
	fb.currentBlock = id
	fb.hasCurrent = true
}

// AppendInst appends i to the current block, optionally producing a
// result of type resultTy (nil for no result). Panics if called after
// the current block's terminator has already been appended.
func (fb *FunctionBuilder) AppendInst(i inst.Inst, resultTy *types.Type) dfg.Insn {
	if !fb.hasCurrent {
		panic("function builder: no current block — call AppendBlock first")
	}
	if last, ok := fb.fn.Layout.LastInsnOf(fb.currentBlock); ok {
		if fb.fn.DFG.IsTerminator(last) {
			panic(fmt.Sprintf("function builder: block %s already terminated", fb.currentBlock))
		}
	}
	insn := fb.fn.DFG.MakeInst(i, resultTy)
	fb.fn.Layout.AppendInsn(insn, fb.currentBlock)
	return insn
}

// SealBlock marks id as sealed: the caller declares that every
// predecessor that will ever jump to it is now known. It only records
// the mark (see IsSealed); phis on id are not created or modified.
func (fb *FunctionBuilder) SealBlock(id blockid.BlockId) {
	fb.sealed[id] = true
}

// IsSealed reports whether id has been sealed.
func (fb *FunctionBuilder) IsSealed(id blockid.BlockId) bool { return fb.sealed[id] }
