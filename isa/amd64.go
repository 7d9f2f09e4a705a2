package isa

import "github.com/sonatina-go/sonatina/ir/inst"

// amd64Isa is the x86-64 target: 8-byte pointers, little-endian.
type amd64Isa struct {
	set    inst.SetBase
	layout TypeLayout
}

// Amd64 returns the x86-64 ISA descriptor.
func Amd64() Isa {
	return amd64Isa{
		set:    inst.NewSet("x86_64-unknown-unknown", generalPurposeOpcodes()...),
		layout: wordLayout{ptrBytes: 8, endian: LittleEndian},
	}
}

func (a amd64Isa) Triple() string        { return "x86_64-unknown-unknown" }
func (a amd64Isa) InstSet() inst.SetBase { return a.set }
func (a amd64Isa) TypeLayout() TypeLayout { return a.layout }

var _ Isa = amd64Isa{}
