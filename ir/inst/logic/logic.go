// Package logic implements the bitwise/logical opcode family.
package logic

import (
	"github.com/sonatina-go/sonatina/ir/inst"
	"github.com/sonatina-go/sonatina/ir/val"
)

// BinaryOp is shared structure for every two-operand logic opcode.
type BinaryOp struct {
	Lhs, Rhs val.Value
}

func (b *BinaryOp) VisitValues(f func(val.Value)) {
	inst.VisitValue(f, b.Lhs)
	inst.VisitValue(f, b.Rhs)
}

func (b *BinaryOp) VisitValuesMut(f func(*val.Value)) {
	inst.VisitValueMut(f, &b.Lhs)
	inst.VisitValueMut(f, &b.Rhs)
}

func (b *BinaryOp) HasSideEffect() bool { return false }
func (b *BinaryOp) IsTerminator() bool  { return false }
func (b *BinaryOp) Class() inst.Class   { return inst.ClassLogic }

// And computes Lhs & Rhs.
type And struct{ BinaryOp }

func (And) AsText() string { return "and" }

// Or computes Lhs | Rhs.
type Or struct{ BinaryOp }

func (Or) AsText() string { return "or" }

// Xor computes Lhs ^ Rhs.
type Xor struct{ BinaryOp }

func (Xor) AsText() string { return "xor" }

// Shl computes Lhs << Rhs.
type Shl struct{ BinaryOp }

func (Shl) AsText() string { return "shl" }

// Shr computes unsigned Lhs >> Rhs.
type Shr struct{ BinaryOp }

func (Shr) AsText() string { return "shr" }

var (
	_ inst.Inst = (*And)(nil)
	_ inst.Inst = (*Or)(nil)
	_ inst.Inst = (*Xor)(nil)
	_ inst.Inst = (*Shl)(nil)
	_ inst.Inst = (*Shr)(nil)
)

// Not computes ^Operand.
type Not struct {
	Operand val.Value
}

func (n *Not) VisitValues(f func(val.Value))     { inst.VisitValue(f, n.Operand) }
func (n *Not) VisitValuesMut(f func(*val.Value)) { inst.VisitValueMut(f, &n.Operand) }
func (Not) HasSideEffect() bool                  { return false }
func (Not) IsTerminator() bool                   { return false }
func (Not) Class() inst.Class                    { return inst.ClassLogic }
func (Not) AsText() string                       { return "not" }

var _ inst.Inst = (*Not)(nil)
