package isa

import "github.com/sonatina-go/sonatina/ir/inst"

// riscv64Isa is the RV64GC target: 8-byte pointers, little-endian.
type riscv64Isa struct {
	set    inst.SetBase
	layout TypeLayout
}

// Riscv64 returns the RV64GC ISA descriptor.
func Riscv64() Isa {
	return riscv64Isa{
		set:    inst.NewSet("riscv64gc-unknown-unknown", generalPurposeOpcodes()...),
		layout: wordLayout{ptrBytes: 8, endian: LittleEndian},
	}
}

func (r riscv64Isa) Triple() string         { return "riscv64gc-unknown-unknown" }
func (r riscv64Isa) InstSet() inst.SetBase  { return r.set }
func (r riscv64Isa) TypeLayout() TypeLayout { return r.layout }

var _ Isa = riscv64Isa{}
