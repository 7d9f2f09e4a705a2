// Package funcref defines FuncRef in its own package so that both
// ir/function (whose Callees map is keyed by it) and ir/module (whose
// function arena is keyed by it) can depend on the handle type without a
// cyclic package dependency between them.
package funcref

import "fmt"

// FuncRef is a module-scope opaque reference to a declared function.
// Stability of FuncRef permits forward/cross-references during
// mid-construction IR building (§4 Module invariant).
type FuncRef uint32

func (f FuncRef) String() string { return fmt.Sprintf("%%%d", uint32(f)) }
