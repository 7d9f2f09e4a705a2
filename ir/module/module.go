// Package module implements component H (spec.md §4's Module): the
// top-level container owning every function in the compilation unit,
// keyed by a stable FuncRef so functions may reference each other (calls,
// forward declarations) before every body is built.
//
// Grounded on original_source/crates/ir/src/module.rs's
// Module{funcs, ctx} shape and on the entity.Arena idiom used by
// ir/types.Store and ir/gvar.Store, here holding *Function pointers.
package module

import (
	"fmt"

	"github.com/sonatina-go/sonatina/ir/entity"
	"github.com/sonatina-go/sonatina/ir/funcref"
	"github.com/sonatina-go/sonatina/ir/function"
	"github.com/sonatina-go/sonatina/ir/modulectx"
)

// Module owns every function in a compilation unit plus the shared
// context (type store, global-variable store, target ISA) they were
// built against.
//
// Invariant: each declared function name is unique within the module
// (enforced by ir/builder.ModuleBuilder.DeclareFunction, not here —
// Module itself is a dumb container built incrementally by the builder);
// FuncRef stability is what permits a function to reference a callee
// declared but not yet defined (testable property 8.7).
type Module struct {
	Funcs entity.Arena[funcref.FuncRef, *function.Function]
	Ctx   *modulectx.Ctx
}

// New returns an empty module bound to ctx.
func New(ctx *modulectx.Ctx) *Module {
	return &Module{Ctx: ctx}
}

// IterFunctions yields every function reference in declaration order.
func (m *Module) IterFunctions() []funcref.FuncRef {
	return m.Funcs.Keys()
}

// FuncData returns the function bound to ref.
func (m *Module) FuncData(ref funcref.FuncRef) *function.Function {
	return m.Funcs.Get(ref)
}

// IsExternal reports whether ref names a declaration-only function.
func (m *Module) IsExternal(ref funcref.FuncRef) bool {
	return m.FuncData(ref).IsExternal()
}

// String renders the module's triple and function roster — a debugging
// aid distinct from irwriter's full textual form.
func (m *Module) String() string {
	return fmt.Sprintf("module<%s>(%d funcs)", m.Ctx.Isa.Triple(), len(m.Funcs.Keys()))
}
