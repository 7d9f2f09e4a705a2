// Package val defines the two function-scope opaque handle types, Value
// and Insn, in their own package so that both the instruction system
// (ir/inst, which must refer to operand Values) and the data-flow graph
// (ir/dfg, which must refer to the Insn producing a Value) can depend on
// the handle types without depending on each other.
package val

// Value names either a function argument or an instruction result in a
// function's DataFlowGraph. Once minted its identity is stable for the
// function's lifetime (SSA: its definition is never rewritten).
type Value uint32

// Insn addresses an instruction stored in a function's DataFlowGraph.
type Insn uint32
