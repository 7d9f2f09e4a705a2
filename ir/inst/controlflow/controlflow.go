// Package controlflow implements the control-flow opcode family: the
// terminators (jump, conditional branch, switch, return, unreachable)
// that end every non-empty block, plus call and phi, which are not
// terminators but belong to the same "names other blocks/instructions"
// family.
//
// Grounded on original_source/crates/ir/src/cfg.rs's analyze_insn (the
// is_return / analyze_branch split) and Hassandahiru-Compiler-in-Go's
// Jump/Branch/Phi (internal/ir/ir.go), adapted from pointer-linked
// *BasicBlock operands to blockid.BlockId handles.
package controlflow

import (
	"github.com/sonatina-go/sonatina/ir/blockid"
	"github.com/sonatina-go/sonatina/ir/dfg"
	"github.com/sonatina-go/sonatina/ir/inst"
	"github.com/sonatina-go/sonatina/ir/val"
)

func init() {
	dfg.RegisterReturnPredicate(func(i inst.Inst) bool {
		_, ok := i.(*Return)
		return ok
	})
}

// Jump unconditionally transfers control to Dest.
type Jump struct {
	Dest blockid.BlockId
}

func (Jump) VisitValues(func(val.Value))             {}
func (Jump) VisitValuesMut(func(*val.Value))         {}
func (Jump) HasSideEffect() bool                     { return false }
func (Jump) IsTerminator() bool                      { return true }
func (Jump) Class() inst.Class                       { return inst.ClassControlFlow }
func (Jump) AsText() string                          { return "jump" }
func (j Jump) AnalyzeBranch() inst.BranchInfo        { return inst.NewBranchInfo(j.Dest) }

var (
	_ inst.Inst     = (*Jump)(nil)
	_ inst.Brancher = (*Jump)(nil)
)

// Br transfers control to Then if Cond is nonzero, else Else.
type Br struct {
	Cond       val.Value
	Then, Else blockid.BlockId
}

func (b *Br) VisitValues(f func(val.Value))     { inst.VisitValue(f, b.Cond) }
func (b *Br) VisitValuesMut(f func(*val.Value)) { inst.VisitValueMut(f, &b.Cond) }
func (Br) HasSideEffect() bool                  { return false }
func (Br) IsTerminator() bool                   { return true }
func (Br) Class() inst.Class                    { return inst.ClassControlFlow }
func (Br) AsText() string                       { return "br" }
func (b *Br) AnalyzeBranch() inst.BranchInfo     { return inst.NewBranchInfo(b.Then, b.Else) }

var (
	_ inst.Inst     = (*Br)(nil)
	_ inst.Brancher = (*Br)(nil)
)

// SwitchCase is one (value, target) arm of a Switch.
type SwitchCase struct {
	Value  val.Value
	Target blockid.BlockId
}

// Switch dispatches on Cond to the matching SwitchCase, or Default if
// none match.
type Switch struct {
	Cond    val.Value
	Cases   []SwitchCase
	Default blockid.BlockId
}

func (s *Switch) VisitValues(f func(val.Value)) {
	inst.VisitValue(f, s.Cond)
	for _, c := range s.Cases {
		inst.VisitValue(f, c.Value)
	}
}

func (s *Switch) VisitValuesMut(f func(*val.Value)) {
	inst.VisitValueMut(f, &s.Cond)
	for i := range s.Cases {
		inst.VisitValueMut(f, &s.Cases[i].Value)
	}
}

func (Switch) HasSideEffect() bool { return false }
func (Switch) IsTerminator() bool  { return true }
func (Switch) Class() inst.Class   { return inst.ClassControlFlow }
func (Switch) AsText() string      { return "switch" }

func (s *Switch) AnalyzeBranch() inst.BranchInfo {
	dests := make([]blockid.BlockId, 0, len(s.Cases)+1)
	for _, c := range s.Cases {
		dests = append(dests, c.Target)
	}
	dests = append(dests, s.Default)
	return inst.NewBranchInfo(dests...)
}

var (
	_ inst.Inst     = (*Switch)(nil)
	_ inst.Brancher = (*Switch)(nil)
)

// Return exits the function, optionally yielding Value. Per §4.D,
// terminators that observe state must report a side effect; a return is
// conservatively treated as observing the function's result state.
type Return struct {
	Value   val.Value
	HasVal  bool
}

func (r *Return) VisitValues(f func(val.Value)) {
	inst.VisitOptional(f, r.Value, r.HasVal)
}

func (r *Return) VisitValuesMut(f func(*val.Value)) {
	inst.VisitOptionalMut(f, &r.Value, r.HasVal)
}

func (Return) HasSideEffect() bool { return true }
func (Return) IsTerminator() bool  { return true }
func (Return) Class() inst.Class   { return inst.ClassControlFlow }
func (Return) AsText() string      { return "return" }

// AnalyzeBranch deliberately has no implementation: Return has no
// branch destinations, and not implementing Brancher makes
// inst.AnalyzeBranch fall through to the empty default — matching
// "return/unreachable" in the spec's BranchInfo description.
var _ inst.Inst = (*Return)(nil)

// Unreachable marks a program point the compiler has proven dead.
type Unreachable struct{}

func (Unreachable) VisitValues(func(val.Value))     {}
func (Unreachable) VisitValuesMut(func(*val.Value)) {}
func (Unreachable) HasSideEffect() bool              { return true }
func (Unreachable) IsTerminator() bool               { return true }
func (Unreachable) Class() inst.Class                { return inst.ClassControlFlow }
func (Unreachable) AsText() string                   { return "unreachable" }

var _ inst.Inst = (*Unreachable)(nil)

// Call invokes a callee (named indirectly via the owning Function's
// Callees map, keyed by the FuncRef threaded through by the builder) with
// Args, optionally producing a result. Calls are conservatively marked
// as having a side effect — "calls with unknown effects" in §4.D.
type Call struct {
	Args   []val.Value
	HasRes bool
}

func (c *Call) VisitValues(f func(val.Value))     { inst.VisitSlice(f, c.Args) }
func (c *Call) VisitValuesMut(f func(*val.Value)) { inst.VisitSliceMut(f, c.Args) }
func (Call) HasSideEffect() bool                  { return true }
func (Call) IsTerminator() bool                   { return false }
func (Call) Class() inst.Class                    { return inst.ClassControlFlow }
func (Call) AsText() string                       { return "call" }

var _ inst.Inst = (*Call)(nil)

// PhiIncoming is one (value, predecessor block) arm of a Phi.
type PhiIncoming struct {
	Value val.Value
	From  blockid.BlockId
}

// Phi selects among incoming values based on which predecessor block
// control arrived from — the standard SSA block-join construct. Phis are
// appended like any other instruction; FunctionBuilder.SealBlock does not
// build or complete them.
type Phi struct {
	Incoming []PhiIncoming
}

func (p *Phi) VisitValues(f func(val.Value)) {
	for _, inc := range p.Incoming {
		inst.VisitValue(f, inc.Value)
	}
}

func (p *Phi) VisitValuesMut(f func(*val.Value)) {
	for i := range p.Incoming {
		inst.VisitValueMut(f, &p.Incoming[i].Value)
	}
}

func (Phi) HasSideEffect() bool { return false }
func (Phi) IsTerminator() bool  { return false }
func (Phi) Class() inst.Class   { return inst.ClassControlFlow }
func (Phi) AsText() string      { return "phi" }

var _ inst.Inst = (*Phi)(nil)
