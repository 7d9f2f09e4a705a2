package inst

import "github.com/sonatina-go/sonatina/ir/val"

// The functions below are the Go analogue of the Rust ValueVisitable
// adapters: each operand shape an opcode can hold (a single Value, an
// optional Value, a slice of Values) gets one small helper so opcodes
// compose VisitValues/VisitValuesMut instead of hand-rolling the same
// loop in every concrete instruction type. Go has no derive macro, so
// composition is explicit rather than mechanically synthesised, but the
// operand-shape vocabulary is identical.

// VisitValue feeds a single operand to f.
func VisitValue(f func(val.Value), v val.Value) { f(v) }

// VisitValueMut feeds a pointer to a single operand to f.
func VisitValueMut(f func(*val.Value), v *val.Value) { f(v) }

// VisitOptional feeds v to f only if present is true — the Option<Value>
// shape.
func VisitOptional(f func(val.Value), v val.Value, present bool) {
	if present {
		f(v)
	}
}

// VisitOptionalMut is the mutable counterpart of VisitOptional.
func VisitOptionalMut(f func(*val.Value), v *val.Value, present bool) {
	if present {
		f(v)
	}
}

// VisitSlice feeds every element of vs to f, in order — the []Value shape.
func VisitSlice(f func(val.Value), vs []val.Value) {
	for _, v := range vs {
		f(v)
	}
}

// VisitSliceMut is the mutable counterpart of VisitSlice.
func VisitSliceMut(f func(*val.Value), vs []val.Value) {
	for i := range vs {
		f(&vs[i])
	}
}
