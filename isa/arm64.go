package isa

import "github.com/sonatina-go/sonatina/ir/inst"

// arm64Isa is the AArch64 target: 8-byte pointers, little-endian.
type arm64Isa struct {
	set    inst.SetBase
	layout TypeLayout
}

// Arm64 returns the AArch64 ISA descriptor.
func Arm64() Isa {
	return arm64Isa{
		set:    inst.NewSet("aarch64-unknown-unknown", generalPurposeOpcodes()...),
		layout: wordLayout{ptrBytes: 8, endian: LittleEndian},
	}
}

func (a arm64Isa) Triple() string         { return "aarch64-unknown-unknown" }
func (a arm64Isa) InstSet() inst.SetBase  { return a.set }
func (a arm64Isa) TypeLayout() TypeLayout { return a.layout }

var _ Isa = arm64Isa{}
