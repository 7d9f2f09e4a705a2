// Package arith implements the arithmetic opcode family: integer
// operations (binary ones plus unary Neg) that never branch and never
// touch memory.
package arith

import (
	"github.com/sonatina-go/sonatina/ir/inst"
	"github.com/sonatina-go/sonatina/ir/val"
)

// BinaryOp is shared structure for every two-operand arithmetic opcode.
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
func (b *BinaryOp) Class() inst.Class   { return inst.ClassArith }

// Add computes Lhs + Rhs.
type Add struct{ BinaryOp }

func (Add) AsText() string { return "add" }

// Sub computes Lhs - Rhs.
type Sub struct{ BinaryOp }

func (Sub) AsText() string { return "sub" }

// Mul computes Lhs * Rhs.
type Mul struct{ BinaryOp }

func (Mul) AsText() string { return "mul" }

// Udiv computes unsigned Lhs / Rhs.
type Udiv struct{ BinaryOp }

func (Udiv) AsText() string { return "udiv" }

// Sdiv computes signed Lhs / Rhs.
type Sdiv struct{ BinaryOp }

func (Sdiv) AsText() string { return "sdiv" }

// Umod computes unsigned Lhs % Rhs.
type Umod struct{ BinaryOp }

func (Umod) AsText() string { return "umod" }

var (
	_ inst.Inst = (*Add)(nil)
	_ inst.Inst = (*Sub)(nil)
	_ inst.Inst = (*Mul)(nil)
	_ inst.Inst = (*Udiv)(nil)
	_ inst.Inst = (*Sdiv)(nil)
	_ inst.Inst = (*Umod)(nil)
)

// Neg computes -Operand (two's complement negation).
type Neg struct {
	Operand val.Value
}

func (n *Neg) VisitValues(f func(val.Value))       { inst.VisitValue(f, n.Operand) }
func (n *Neg) VisitValuesMut(f func(*val.Value))   { inst.VisitValueMut(f, &n.Operand) }
func (Neg) HasSideEffect() bool                    { return false }
func (Neg) IsTerminator() bool                     { return false }
func (Neg) Class() inst.Class                      { return inst.ClassArith }
func (Neg) AsText() string                         { return "neg" }

var _ inst.Inst = (*Neg)(nil)
