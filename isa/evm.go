package isa

import (
	"github.com/sonatina-go/sonatina/ir/inst"
	"github.com/sonatina-go/sonatina/ir/inst/arith"
	"github.com/sonatina-go/sonatina/ir/inst/cast"
	"github.com/sonatina-go/sonatina/ir/inst/cmp"
	"github.com/sonatina-go/sonatina/ir/inst/controlflow"
	"github.com/sonatina-go/sonatina/ir/inst/data"
	"github.com/sonatina-go/sonatina/ir/inst/evm"
	"github.com/sonatina-go/sonatina/ir/inst/logic"
	"github.com/sonatina-go/sonatina/ir/types"
)

// evmWordLayout lays every value out as one 32-byte, big-endian EVM word:
// the stack machine has no sub-word addressing, so unlike wordLayout this
// ignores the integer's declared bitwidth entirely.
type evmWordLayout struct{}

func (evmWordLayout) Endian() Endianness { return BigEndian }

func (evmWordLayout) SizeOf(ty types.Type, store *types.Store) uint64 {
	if elem, length, ok := store.ArrayDef(ty); ok {
		_ = elem
		return 32 * uint64(length)
	}
	if def, ok := store.StructDef(ty); ok {
		return 32 * uint64(len(def.Fields))
	}
	return 32
}

// evmIsa is the Ethereum Virtual Machine target: spec.md §1's flagship
// stack-machine ISA, the motivating reason the IR is block-structured
// rather than a tree of nested expressions. It supports the general
// arithmetic/comparison/cast/logic/control-flow families plus its own
// storage and environment opcodes (package evm); it drops data.Gep,
// data.FieldGep, and data.Alloca, since EVM has no flat, pointer-
// addressable stack frame for getelementptr-style address arithmetic to
// target — persistent/volatile state is reached through Sload/Sstore and
// CallDataLoad instead.
type evmIsa struct {
	set    inst.SetBase
	layout TypeLayout
}

// Evm returns the EVM ISA descriptor.
func Evm() Isa {
	opcodes := []inst.Inst{
		&arith.Add{}, &arith.Sub{}, &arith.Mul{}, &arith.Udiv{}, &arith.Sdiv{}, &arith.Umod{}, &arith.Neg{},
		&cmp.Eq{}, &cmp.Ne{}, &cmp.Lt{}, &cmp.Slt{}, &cmp.Gt{},
		&cast.Sext{}, &cast.Zext{}, &cast.Trunc{}, &cast.Bitcast{},
		&logic.And{}, &logic.Or{}, &logic.Xor{}, &logic.Shl{}, &logic.Shr{}, &logic.Not{},
		&data.Load{}, &data.Store{},
		&controlflow.Jump{}, &controlflow.Br{}, &controlflow.Switch{}, &controlflow.Return{},
		&controlflow.Unreachable{}, &controlflow.Call{}, &controlflow.Phi{},
		&evm.Sload{}, &evm.Sstore{}, &evm.Keccak256{}, &evm.CallDataLoad{}, &evm.SelfBalance{},
	}
	return evmIsa{
		set:    inst.NewSet("evm-unknown-unknown", opcodes...),
		layout: evmWordLayout{},
	}
}

func (e evmIsa) Triple() string         { return "evm-unknown-unknown" }
func (e evmIsa) InstSet() inst.SetBase  { return e.set }
func (e evmIsa) TypeLayout() TypeLayout { return e.layout }

var _ Isa = evmIsa{}
