// Package function implements component G (spec.md §4's Function): the
// bundle of a signature, its data-flow graph, its layout, the Value
// handles standing for its arguments, and the set of functions it calls.
//
// Grounded on original_source/crates/codegen/src/ir/function.rs's
// Function{sig, dfg, layout} shape, translated to Go with the dfg/layout
// split kept as two concrete struct fields rather than trait objects.
package function

import (
	"github.com/sonatina-go/sonatina/ir/dfg"
	"github.com/sonatina-go/sonatina/ir/funcref"
	"github.com/sonatina-go/sonatina/ir/gvar"
	"github.com/sonatina-go/sonatina/ir/layout"
	"github.com/sonatina-go/sonatina/ir/modulectx"
	"github.com/sonatina-go/sonatina/ir/types"
)

// Signature is a value type: {name, args, rets, linkage}. Storing one in
// a Function fixes it — callers that need a mutable signature during
// construction should build a fresh Signature and replace the field.
type Signature struct {
	Name    string
	Args    []types.Type
	Rets    []types.Type
	Linkage gvar.Linkage
}

// NewSignature returns a signature with no arguments or returns yet.
func NewSignature(name string, linkage gvar.Linkage) Signature {
	return Signature{Name: name, Linkage: linkage}
}

// AppendArg appends an argument type, returning its index.
func (s *Signature) AppendArg(ty types.Type) int {
	s.Args = append(s.Args, ty)
	return len(s.Args) - 1
}

// AppendReturn appends a return type.
func (s *Signature) AppendReturn(ty types.Type) {
	s.Rets = append(s.Rets, ty)
}

// Function bundles everything needed to build, inspect, and transform one
// function body.
//
// Invariant: len(ArgValues) == len(Sig.Args), and ArgValues[i]'s DFG type
// equals Sig.Args[i] (testable property 8.4's function-argument variant);
// the entry block, once set by the first AppendBlock call during
// building, dominates every block reachable via successor edges (spec
// §3's Function invariant) — enforced by construction discipline in
// ir/builder, not re-checked here.
type Function struct {
	Name      string
	Sig       Signature
	ArgValues []dfg.Value
	DFG       *dfg.DataFlowGraph
	Layout    *layout.Layout
	// Callees records every function this one calls, keyed by the
	// stable FuncRef the caller resolved at call-construction time, so
	// a later inlining or signature-check pass can look the callee's
	// signature up without walking back through the owning Module.
	Callees map[funcref.FuncRef]Signature
}

// New constructs an empty function for sig, bound to ctx, with one Value
// minted per declared argument.
func New(ctx *modulectx.Ctx, sig Signature) *Function {
	d := dfg.New(ctx)
	argValues := make([]dfg.Value, len(sig.Args))
	for i, ty := range sig.Args {
		argValues[i] = d.MakeValue(d.MakeArgValue(ty, i))
	}
	return &Function{
		Name:      sig.Name,
		Sig:       sig,
		ArgValues: argValues,
		DFG:       d,
		Layout:    layout.New(),
		Callees:   make(map[funcref.FuncRef]Signature),
	}
}

// AddCallee records that this function calls target with signature sig.
func (f *Function) AddCallee(target funcref.FuncRef, sig Signature) {
	f.Callees[target] = sig
}

// IsExternal reports whether this function has only a declared signature
// and no body — no blocks in its layout.
func (f *Function) IsExternal() bool {
	_, ok := f.Layout.EntryBlock()
	return !ok
}
