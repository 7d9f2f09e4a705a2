package isa

import (
	"github.com/sonatina-go/sonatina/ir/inst"
	"github.com/sonatina-go/sonatina/ir/inst/arith"
	"github.com/sonatina-go/sonatina/ir/inst/cast"
	"github.com/sonatina-go/sonatina/ir/inst/cmp"
	"github.com/sonatina-go/sonatina/ir/inst/controlflow"
	"github.com/sonatina-go/sonatina/ir/inst/data"
	"github.com/sonatina-go/sonatina/ir/inst/logic"
)

// generalPurposeOpcodes lists every opcode family an ordinary
// byte-addressed ISA (amd64, arm64, riscv64) supports: arithmetic,
// comparison, cast, logic, memory, and control flow, but none of the
// EVM-only opcodes in ir/inst/evm.
func generalPurposeOpcodes() []inst.Inst {
	return []inst.Inst{
		&arith.Add{}, &arith.Sub{}, &arith.Mul{}, &arith.Udiv{}, &arith.Sdiv{}, &arith.Umod{}, &arith.Neg{},
		&cmp.Eq{}, &cmp.Ne{}, &cmp.Lt{}, &cmp.Slt{}, &cmp.Gt{},
		&cast.Sext{}, &cast.Zext{}, &cast.Trunc{}, &cast.Bitcast{},
		&logic.And{}, &logic.Or{}, &logic.Xor{}, &logic.Shl{}, &logic.Shr{}, &logic.Not{},
		&data.Load{}, &data.Store{}, &data.Gep{}, &data.FieldGep{}, &data.Alloca{},
		&controlflow.Jump{}, &controlflow.Br{}, &controlflow.Switch{}, &controlflow.Return{},
		&controlflow.Unreachable{}, &controlflow.Call{}, &controlflow.Phi{},
	}
}
