// Package irwriter implements the textual emitter described in spec.md
// §6: the one persisted form the IR round-trips through (a parser back
// from text is out of scope). The renderers are plain functions in the
// spirit of the DisplayWithFunc contract: those that need an owning
// container take it alongside the handle being rendered (TypeText and
// GlobalText a *types.Store, InstText the *dfg.DataFlowGraph,
// FunctionText the *function.Function). ValueText needs none. There is
// no DisplayWithFunc interface type.
//
// Grounded on original_source's DisplayWithFunc trait (referenced from
// cfg.rs and inst/mod.rs) and on the textual atoms spec.md §6 names
// verbatim: `i32`, `[i32;3]`, `*i64`, `{Foo}`, `<{Foo}>`, `()`.
package irwriter

import (
	"fmt"
	"strings"

	"github.com/sonatina-go/sonatina/ir/dfg"
	"github.com/sonatina-go/sonatina/ir/function"
	"github.com/sonatina-go/sonatina/ir/gvar"
	"github.com/sonatina-go/sonatina/ir/inst/arith"
	"github.com/sonatina-go/sonatina/ir/inst/cast"
	"github.com/sonatina-go/sonatina/ir/inst/cmp"
	"github.com/sonatina-go/sonatina/ir/inst/controlflow"
	"github.com/sonatina-go/sonatina/ir/inst/data"
	"github.com/sonatina-go/sonatina/ir/inst/evm"
	"github.com/sonatina-go/sonatina/ir/inst/logic"
	"github.com/sonatina-go/sonatina/ir/types"
)

// ValueText renders a Value as its textual atom, e.g. "v0".
func ValueText(v dfg.Value) string { return fmt.Sprintf("v%d", uint32(v)) }

// TypeText renders ty against store, producing the atoms named in
// spec.md §6: integer leaves print their keyword (i32, …) and void
// prints "()"; pointers
// prefix with "*"; arrays print "[elem;len]"; unpacked structs print
// "{Name}", packed structs print "<{Name}>".
func TypeText(ty types.Type, store *types.Store) string {
	switch ty.Kind() {
	case types.Void:
		return "()"
	case types.I1:
		return "i1"
	case types.I8:
		return "i8"
	case types.I16:
		return "i16"
	case types.I32:
		return "i32"
	case types.I64:
		return "i64"
	case types.I128:
		return "i128"
	case types.I256:
		return "i256"
	}
	if elem, ok := store.Deref(ty); ok {
		return "*" + TypeText(elem, store)
	}
	if elem, length, ok := store.ArrayDef(ty); ok {
		return fmt.Sprintf("[%s;%d]", TypeText(elem, store), length)
	}
	if def, ok := store.StructDef(ty); ok {
		if def.Packed {
			return fmt.Sprintf("<{%s}>", def.Name)
		}
		return fmt.Sprintf("{%s}", def.Name)
	}
	panic("irwriter: type from a different store")
}

// GlobalText renders a global's declaration per spec.md §8's S1/S2
// scenarios: "<type> [const] <linkage> <init>".
func GlobalText(d gvar.Data, store *types.Store) string {
	var b strings.Builder
	b.WriteString(TypeText(d.Ty, store))
	if d.IsConst {
		b.WriteString(" const")
	}
	b.WriteString(" ")
	b.WriteString(d.Linkage.String())
	if d.Init != nil {
		b.WriteString(" ")
		b.WriteString(d.Init.String())
	}
	return b.String()
}

// InstText renders one instruction's text, e.g. "add v0, v1" or
// "ret v2". Operand Values are rendered with ValueText; the result
// binding ("v2 = ") is not added here — FunctionText and the graphviz
// exporter prefix it.
func InstText(d *dfg.DataFlowGraph, insn dfg.Insn) string {
	i := d.Inst(insn)
	switch op := i.(type) {
	case *arith.Add, *arith.Sub, *arith.Mul, *arith.Udiv, *arith.Sdiv, *arith.Umod:
		return binaryText(i, lhsRhs(i))
	case *arith.Neg:
		return fmt.Sprintf("%s %s", i.AsText(), ValueText(op.Operand))
	case *cmp.Eq, *cmp.Ne, *cmp.Lt, *cmp.Slt, *cmp.Gt:
		return binaryText(i, lhsRhs(i))
	case *cast.Sext:
		return unaryCastText(i.AsText(), op.Unary)
	case *cast.Zext:
		return unaryCastText(i.AsText(), op.Unary)
	case *cast.Trunc:
		return unaryCastText(i.AsText(), op.Unary)
	case *cast.Bitcast:
		return unaryCastText(i.AsText(), op.Unary)
	case *logic.And, *logic.Or, *logic.Xor, *logic.Shl, *logic.Shr:
		return binaryText(i, lhsRhs(i))
	case *logic.Not:
		return fmt.Sprintf("%s %s", i.AsText(), ValueText(op.Operand))
	case *data.Load:
		return fmt.Sprintf("load %s", ValueText(op.Addr))
	case *data.Store:
		return fmt.Sprintf("store %s, %s", ValueText(op.Addr), ValueText(op.Src))
	case *data.Gep:
		return fmt.Sprintf("gep %s, %s", ValueText(op.Base), ValueText(op.Index))
	case *data.FieldGep:
		return fmt.Sprintf("field_gep %s, %d", ValueText(op.Base), op.FieldIndex)
	case *data.Alloca:
		return "alloca"
	case *controlflow.Jump:
		return fmt.Sprintf("jump %s", op.Dest)
	case *controlflow.Br:
		return fmt.Sprintf("br %s, %s, %s", ValueText(op.Cond), op.Then, op.Else)
	case *controlflow.Switch:
		parts := make([]string, len(op.Cases))
		for i, c := range op.Cases {
			parts[i] = fmt.Sprintf("%s: %s", ValueText(c.Value), c.Target)
		}
		return fmt.Sprintf("switch %s [%s] default %s", ValueText(op.Cond), strings.Join(parts, ", "), op.Default)
	case *controlflow.Return:
		if op.HasVal {
			return fmt.Sprintf("ret %s", ValueText(op.Value))
		}
		return "ret"
	case *controlflow.Unreachable:
		return "unreachable"
	case *controlflow.Call:
		args := make([]string, len(op.Args))
		for i, a := range op.Args {
			args[i] = ValueText(a)
		}
		return fmt.Sprintf("call %s", strings.Join(args, ", "))
	case *controlflow.Phi:
		parts := make([]string, len(op.Incoming))
		for i, inc := range op.Incoming {
			parts[i] = fmt.Sprintf("[%s, %s]", ValueText(inc.Value), inc.From)
		}
		return fmt.Sprintf("phi %s", strings.Join(parts, ", "))
	case *evm.Sload:
		return fmt.Sprintf("sload %s", ValueText(op.Key))
	case *evm.Sstore:
		return fmt.Sprintf("sstore %s, %s", ValueText(op.Key), ValueText(op.Val))
	case *evm.Keccak256:
		return fmt.Sprintf("keccak256 %s, %s", ValueText(op.Offset), ValueText(op.Len))
	case *evm.CallDataLoad:
		return fmt.Sprintf("calldataload %s", ValueText(op.Offset))
	case *evm.SelfBalance:
		return "selfbalance"
	default:
		return i.AsText()
	}
}

func lhsRhs(i interface{ VisitValues(func(dfg.Value)) }) (dfg.Value, dfg.Value) {
	var vals []dfg.Value
	i.VisitValues(func(v dfg.Value) { vals = append(vals, v) })
	return vals[0], vals[1]
}

func binaryText(i interface{ AsText() string }, lhs, rhs dfg.Value) string {
	return fmt.Sprintf("%s %s, %s", i.AsText(), ValueText(lhs), ValueText(rhs))
}

func unaryCastText(op string, u cast.Unary) string {
	return fmt.Sprintf("%s %s", op, ValueText(u.Operand))
}

// FunctionText renders fn's body per spec.md §8's scenario S3: each
// instruction rendered as "v<N> = <op> ..." if it has a result, else
// just "<op> ...", joined with "; " within a block.
func FunctionText(fn *function.Function) string {
	var blocks []string
	for _, b := range fn.Layout.IterBlock() {
		var insns []string
		for _, insn := range fn.Layout.IterInst(b) {
			text := InstText(fn.DFG, insn)
			if v, ok := fn.DFG.InstResult(insn); ok {
				text = fmt.Sprintf("%s = %s", ValueText(v), text)
			}
			insns = append(insns, text)
		}
		blocks = append(blocks, strings.Join(insns, "; "))
	}
	return strings.Join(blocks, "\n")
}
