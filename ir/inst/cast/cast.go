// Package cast implements the cast opcode family: width-changing and
// pointer/integer conversions. Each opcode records the target type so
// that DataFlowGraph.ValueTy can report the result type without a lookup
// back into the type store.
package cast

import (
	"github.com/sonatina-go/sonatina/ir/inst"
	"github.com/sonatina-go/sonatina/ir/types"
	"github.com/sonatina-go/sonatina/ir/val"
)

// Unary is shared structure for every single-operand cast opcode.
type Unary struct {
	Operand val.Value
	To      types.Type
}

func (u *Unary) VisitValues(f func(val.Value))     { inst.VisitValue(f, u.Operand) }
func (u *Unary) VisitValuesMut(f func(*val.Value)) { inst.VisitValueMut(f, &u.Operand) }
func (u *Unary) HasSideEffect() bool               { return false }
func (u *Unary) IsTerminator() bool                { return false }
func (u *Unary) Class() inst.Class                 { return inst.ClassCast }

// Sext sign-extends Operand to a wider integer type.
type Sext struct{ Unary }

func (Sext) AsText() string { return "sext" }

// Zext zero-extends Operand to a wider integer type.
type Zext struct{ Unary }

func (Zext) AsText() string { return "zext" }

// Trunc truncates Operand to a narrower integer type.
type Trunc struct{ Unary }

func (Trunc) AsText() string { return "trunc" }

// Bitcast reinterprets Operand's bits as a different type of equal width
// (e.g. pointer-to-pointer).
type Bitcast struct{ Unary }

func (Bitcast) AsText() string { return "bitcast" }

var (
	_ inst.Inst = (*Sext)(nil)
	_ inst.Inst = (*Zext)(nil)
	_ inst.Inst = (*Trunc)(nil)
	_ inst.Inst = (*Bitcast)(nil)
)
