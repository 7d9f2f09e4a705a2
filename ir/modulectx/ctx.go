// Package modulectx implements the module context (spec.md §4.C): the
// shared handle every function-building operation threads through,
// bundling the target ISA with reader/writer-locked access to the
// module's type store and global-variable store.
//
// Split out of the module-owning package (ir/module) specifically to
// break an import cycle: ir/dfg holds a module context (its Ctx field)
// but must not depend on
// ir/module, since ir/module depends on ir/function, which depends on
// ir/dfg. Splitting the shared-state handle (this package) from the
// function-container (ir/module) mirrors the same handle-package pattern
// used for ir/val, ir/blockid, and ir/funcref, just one layer up.
//
// Grounded on the locking idiom in
// sentra-language-sentra/internal/module/module.go and
// internal/database/database.go (both guard shared maps behind
// sync.RWMutex and expose scoped-callback accessors rather than raw
// lock/unlock pairs).
package modulectx

import (
	"sync"

	"github.com/sonatina-go/sonatina/ir/gvar"
	"github.com/sonatina-go/sonatina/ir/types"
	"github.com/sonatina-go/sonatina/isa"
)

// Ctx is the module-wide shared state: the target ISA plus the type and
// global-variable stores, each behind its own lock so access to one store
// never blocks access to the other. Within one store, readers and a
// writer exclude each other.
type Ctx struct {
	Isa isa.Isa

	tyMu sync.RWMutex
	ty   *types.Store

	gvMu sync.RWMutex
	gv   *gvar.Store
}

// New returns a context bound to target, with fresh empty type and
// global-variable stores.
func New(target isa.Isa) *Ctx {
	return &Ctx{Isa: target, ty: types.NewStore(), gv: gvar.NewStore()}
}

// WithTyStore runs f with read access to the type store.
func (c *Ctx) WithTyStore(f func(*types.Store)) {
	c.tyMu.RLock()
	defer c.tyMu.RUnlock()
	f(c.ty)
}

// WithTyStoreMut runs f with write access to the type store.
func (c *Ctx) WithTyStoreMut(f func(*types.Store)) {
	c.tyMu.Lock()
	defer c.tyMu.Unlock()
	f(c.ty)
}

// WithGVStore runs f with read access to the global-variable store.
func (c *Ctx) WithGVStore(f func(*gvar.Store)) {
	c.gvMu.RLock()
	defer c.gvMu.RUnlock()
	f(c.gv)
}

// WithGVStoreMut runs f with write access to the global-variable store.
func (c *Ctx) WithGVStoreMut(f func(*gvar.Store)) {
	c.gvMu.Lock()
	defer c.gvMu.Unlock()
	f(c.gv)
}

// SizeOf returns ty's size in bytes under the target ISA's type layout.
func (c *Ctx) SizeOf(ty types.Type) uint64 {
	var size uint64
	c.WithTyStore(func(s *types.Store) {
		size = c.Isa.TypeLayout().SizeOf(ty, s)
	})
	return size
}

// Endian reports the target ISA's byte order.
func (c *Ctx) Endian() isa.Endianness {
	return c.Isa.TypeLayout().Endian()
}
