// Package cmp implements the comparison opcode family: binary predicates
// that produce an i1 result.
package cmp

import (
	"github.com/sonatina-go/sonatina/ir/inst"
	"github.com/sonatina-go/sonatina/ir/val"
)

// BinaryOp is shared structure for every two-operand comparison opcode.
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
func (b *BinaryOp) Class() inst.Class   { return inst.ClassCmp }

// Eq computes Lhs == Rhs.
type Eq struct{ BinaryOp }

func (Eq) AsText() string { return "eq" }

// Ne computes Lhs != Rhs.
type Ne struct{ BinaryOp }

func (Ne) AsText() string { return "ne" }

// Lt computes unsigned Lhs < Rhs.
type Lt struct{ BinaryOp }

func (Lt) AsText() string { return "lt" }

// Slt computes signed Lhs < Rhs.
type Slt struct{ BinaryOp }

func (Slt) AsText() string { return "slt" }

// Gt computes unsigned Lhs > Rhs.
type Gt struct{ BinaryOp }

func (Gt) AsText() string { return "gt" }

var (
	_ inst.Inst = (*Eq)(nil)
	_ inst.Inst = (*Ne)(nil)
	_ inst.Inst = (*Lt)(nil)
	_ inst.Inst = (*Slt)(nil)
	_ inst.Inst = (*Gt)(nil)
)
