// Package inst defines the open instruction system: the Inst capability
// set every concrete opcode implements, the per-ISA capability-witness
// mechanism that gates downcasting a type-erased Inst to a concrete
// opcode, and the operand-shape visitor adapters that let opcodes declare
// their operands declaratively instead of hand-writing VisitValues.
//
// Grounded on original_source/crates/ir/src/inst/mod.rs. The Rust version
// leans on std::any::{Any, TypeId} for the capability proof; Go lacks a
// direct TypeId equivalent for interfaces, so the witness is built on
// reflect.Type, which serves the same role (a comparable, unforgeable
// identity for a concrete instruction type).
package inst

import (
	"reflect"

	"github.com/sonatina-go/sonatina/ir/blockid"
	"github.com/sonatina-go/sonatina/ir/val"
)

// Class classifies an opcode's family, used by consumers that want to
// dispatch without downcasting to a concrete type (e.g. cost models,
// textual grouping).
type Class uint8

const (
	ClassArith Class = iota
	ClassCast
	ClassCmp
	ClassControlFlow
	ClassData
	ClassLogic
	ClassTarget // target-specific, e.g. EVM opcodes
)

// Inst is the capability set every concrete opcode type implements. Its
// concrete type is erased once stored in a DataFlowGraph; callers recover
// it via the HasInst witness and As below.
type Inst interface {
	// VisitValues calls f once per operand Value, in operand order.
	VisitValues(f func(val.Value))
	// VisitValuesMut calls f with a pointer to each operand Value,
	// allowing in-place rewriting (renaming, SCCP substitution).
	VisitValuesMut(f func(*val.Value))
	// HasSideEffect is conservative: true for stores, calls with
	// unknown effects, and terminators that observe program state.
	HasSideEffect() bool
	// AsText returns the opcode's human-readable tag (e.g. "add").
	AsText() string
	// IsTerminator reports whether this opcode ends a block. Exactly
	// the block-ending opcodes return true.
	IsTerminator() bool
	// Class reports the opcode's family.
	Class() Class
}

// Brancher is implemented by terminator opcodes that name their possible
// destination blocks. Non-terminators need not implement it; AnalyzeBranch
// below treats a missing Brancher as "no destinations".
type Brancher interface {
	AnalyzeBranch() BranchInfo
}

// AnalyzeBranch returns in.AnalyzeBranch() if in implements Brancher,
// otherwise an empty BranchInfo — matching the spec's "non-terminators
// yield empty" rule without forcing every opcode to implement the method.
func AnalyzeBranch(in Inst) BranchInfo {
	if b, ok := in.(Brancher); ok {
		return b.AnalyzeBranch()
	}
	return BranchInfo{}
}

// BranchInfo enumerates a terminator's finite set of destination blocks:
// fallthrough, conditional arms, switch table, or none (return/unreachable).
type BranchInfo struct {
	dests []blockid.BlockId
}

// NewBranchInfo builds a BranchInfo from a destination list.
func NewBranchInfo(dests ...blockid.BlockId) BranchInfo {
	return BranchInfo{dests: dests}
}

// IterDests returns the destination blocks in declaration order.
func (b BranchInfo) IterDests() []blockid.BlockId { return b.dests }

// SetBase is the per-ISA instruction-set witness bundle: "this ISA's
// instruction set contains these opcodes." Concrete ISAs (package isa)
// build one by registering every concrete opcode type they support.
type SetBase interface {
	// Supports reports whether the concrete instruction type t is
	// legal to emit/downcast-to on this ISA.
	Supports(t reflect.Type) bool
	// Name identifies the instruction set, e.g. "amd64", "evm".
	Name() string
}

// Set is a concrete, buildable SetBase: a plain registry of supported
// opcode types, populated once at ISA-construction time.
type Set struct {
	name      string
	supported map[reflect.Type]struct{}
}

// NewSet builds a capability witness supporting exactly the opcode
// example values passed in (their concrete types are registered).
func NewSet(name string, opcodes ...Inst) *Set {
	s := &Set{name: name, supported: make(map[reflect.Type]struct{}, len(opcodes))}
	for _, op := range opcodes {
		s.supported[reflect.TypeOf(op)] = struct{}{}
	}
	return s
}

func (s *Set) Supports(t reflect.Type) bool {
	_, ok := s.supported[t]
	return ok
}

func (s *Set) Name() string { return s.name }

// HasInst is the capability-proof check for opcode type I: "does set
// contain I?" Building a witness once per call site (rather than per
// emit) is the Go-idiomatic analogue of the Rust trait-witness pattern —
// callers that need to emit I repeatedly should check HasInst once and
// hold onto the boolean rather than re-querying per instruction.
func HasInst[I Inst](set SetBase) bool {
	var zero I
	return set.Supports(reflect.TypeOf(zero))
}

// As downcasts in to concrete opcode type I, gated on set actually
// supporting I. Returns ok=false either when the ISA lacks the
// capability proof or when in is not in fact a value of type I.
func As[I Inst](set SetBase, in Inst) (I, bool) {
	var zero I
	if !HasInst[I](set) {
		return zero, false
	}
	v, ok := in.(I)
	return v, ok
}
