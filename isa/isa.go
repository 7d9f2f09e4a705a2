// Package isa implements the target-ISA contract (spec.md §6): each
// target exposes a triple, a capability-witness instruction set, and a
// type-layout table (sizes + endianness). Concrete descriptors live in
// amd64.go, arm64.go, riscv64.go, and evm.go — the last is the
// flagship stack-machine target named in spec.md §1.
//
// Grounded on the package layout of
// GriffinCanCode-Typthon/typthon-compiler/pkg/codegen/{amd64,arm64,riscv64}
// (one package per target triple), but the contents are new: the teacher's
// packages hold concrete assembly emitters and textual-syntax validators
// for a from-scratch calling convention, which spec.md §1 explicitly
// places out of scope ("does not prescribe a calling convention"). What
// survives from the teacher is the one-target-one-descriptor shape and
// the package doc-comment register.
package isa

import (
	"github.com/sonatina-go/sonatina/ir/inst"
	"github.com/sonatina-go/sonatina/ir/irerr"
	"github.com/sonatina-go/sonatina/ir/types"
)

// Endianness is the byte order a target ISA lays values out in.
type Endianness uint8

const (
	LittleEndian Endianness = iota
	BigEndian
)

// TypeLayout answers size and byte-order questions against a live TypeStore,
// since a type's size depends on the store that interned its compound
// data (struct field layout, array length).
type TypeLayout interface {
	SizeOf(ty types.Type, store *types.Store) uint64
	Endian() Endianness
}

// Isa bundles everything ModuleCtx needs from a target: its triple
// string, the capability witness for its instruction set, and its type
// layout table.
type Isa interface {
	Triple() string
	InstSet() inst.SetBase
	TypeLayout() TypeLayout
}

// Resolve looks up a target ISA by its short CLI name. This is the
// capability-witness construction boundary named in the error-handling
// design: every other ISA accessor (Amd64, Arm64, Riscv64, Evm) is a
// zero-argument constructor that cannot fail, but a name typed by a
// human can be anything, so this is where irerr appears.
func Resolve(name string) (Isa, error) {
	switch name {
	case "amd64":
		return Amd64(), nil
	case "arm64":
		return Arm64(), nil
	case "riscv64":
		return Riscv64(), nil
	case "evm":
		return Evm(), nil
	default:
		return nil, irerr.New("isa.Resolve", name, nil)
	}
}

// wordLayout is a TypeLayout for conventional byte-addressed, fixed
// pointer-width machines (amd64, arm64, riscv64). EVM's 32-byte-word,
// big-endian layout is different enough to warrant its own type (evm.go).
type wordLayout struct {
	ptrBytes uint64
	endian   Endianness
}

func (w wordLayout) Endian() Endianness { return w.endian }

func (w wordLayout) SizeOf(ty types.Type, store *types.Store) uint64 {
	return sizeOf(ty, store, w.ptrBytes)
}

// sizeOf recurses through compound types using the owning store, shared
// by every byte-addressed layout; EVM overrides entirely (every slot is
// one 32-byte word, see evm.go).
func sizeOf(ty types.Type, store *types.Store, ptrBytes uint64) uint64 {
	if ty.IsIntegral() {
		bits := map[types.Kind]uint64{
			types.I1: 1, types.I8: 8, types.I16: 16, types.I32: 32,
			types.I64: 64, types.I128: 128, types.I256: 256,
		}[ty.Kind()]
		return (bits + 7) / 8
	}
	if ty.Kind() == types.Void {
		return 0
	}
	if store.IsPtr(ty) {
		return ptrBytes
	}
	if elem, length, ok := store.ArrayDef(ty); ok {
		return sizeOf(elem, store, ptrBytes) * uint64(length)
	}
	if def, ok := store.StructDef(ty); ok {
		var total uint64
		for _, f := range def.Fields {
			total += sizeOf(f, store, ptrBytes)
		}
		return total
	}
	panic("isa: SizeOf given a type from a different TypeStore, or an unrecognised compound kind")
}
