// Package data implements the memory opcode family: load, store, and
// getelementptr-style address computation, plus stack allocation.
//
// Grounded on original_source's inst/mod.rs "data (load/store/gep)"
// opcode class, with field shapes following
// Hassandahiru-Compiler-in-Go/internal/ir/ir.go's Load/Store/
// GetElementPtr/Alloca (translated from pointer operands to Value
// handles and from types.Type directly rather than the teacher's
// semantic/types.Type).
package data

import (
	"github.com/sonatina-go/sonatina/ir/inst"
	"github.com/sonatina-go/sonatina/ir/types"
	"github.com/sonatina-go/sonatina/ir/val"
)

// Load reads the value stored at Addr.
type Load struct {
	Addr val.Value
	Ty   types.Type
}

func (l *Load) VisitValues(f func(val.Value))     { inst.VisitValue(f, l.Addr) }
func (l *Load) VisitValuesMut(f func(*val.Value)) { inst.VisitValueMut(f, &l.Addr) }
func (Load) HasSideEffect() bool                  { return false }
func (Load) IsTerminator() bool                   { return false }
func (Load) Class() inst.Class                    { return inst.ClassData }
func (Load) AsText() string                       { return "load" }

var _ inst.Inst = (*Load)(nil)

// Store writes Src to the value stored at Addr. Stores always have a
// side effect: they are a prime example from §4.D's HasSideEffect
// contract ("must be true for stores").
type Store struct {
	Addr, Src val.Value
}

func (s *Store) VisitValues(f func(val.Value)) {
	inst.VisitValue(f, s.Addr)
	inst.VisitValue(f, s.Src)
}

func (s *Store) VisitValuesMut(f func(*val.Value)) {
	inst.VisitValueMut(f, &s.Addr)
	inst.VisitValueMut(f, &s.Src)
}

func (Store) HasSideEffect() bool { return true }
func (Store) IsTerminator() bool  { return false }
func (Store) Class() inst.Class   { return inst.ClassData }
func (Store) AsText() string      { return "store" }

var _ inst.Inst = (*Store)(nil)

// Gep ("getelementptr") computes the address of Base offset by Index,
// used for array indexing.
type Gep struct {
	Base, Index val.Value
}

func (g *Gep) VisitValues(f func(val.Value)) {
	inst.VisitValue(f, g.Base)
	inst.VisitValue(f, g.Index)
}

func (g *Gep) VisitValuesMut(f func(*val.Value)) {
	inst.VisitValueMut(f, &g.Base)
	inst.VisitValueMut(f, &g.Index)
}

func (Gep) HasSideEffect() bool { return false }
func (Gep) IsTerminator() bool  { return false }
func (Gep) Class() inst.Class   { return inst.ClassData }
func (Gep) AsText() string      { return "gep" }

var _ inst.Inst = (*Gep)(nil)

// FieldGep computes the address of a named struct field at FieldIndex
// within Base.
type FieldGep struct {
	Base       val.Value
	FieldIndex int
}

func (g *FieldGep) VisitValues(f func(val.Value))     { inst.VisitValue(f, g.Base) }
func (g *FieldGep) VisitValuesMut(f func(*val.Value)) { inst.VisitValueMut(f, &g.Base) }
func (FieldGep) HasSideEffect() bool                  { return false }
func (FieldGep) IsTerminator() bool                   { return false }
func (FieldGep) Class() inst.Class                    { return inst.ClassData }
func (FieldGep) AsText() string                       { return "field_gep" }

var _ inst.Inst = (*FieldGep)(nil)

// Alloca allocates stack space for a value of type Ty, yielding a
// pointer to it.
type Alloca struct {
	Ty types.Type
}

func (a *Alloca) VisitValues(func(val.Value))     {}
func (a *Alloca) VisitValuesMut(func(*val.Value)) {}
func (Alloca) HasSideEffect() bool                { return false }
func (Alloca) IsTerminator() bool                 { return false }
func (Alloca) Class() inst.Class                  { return inst.ClassData }
func (Alloca) AsText() string                     { return "alloca" }

var _ inst.Inst = (*Alloca)(nil)
