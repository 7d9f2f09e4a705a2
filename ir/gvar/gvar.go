// Package gvar implements the global-variable store: module-scope
// interning of named, typed, optionally-constant global symbols.
//
// Grounded on original_source/crates/ir/src/global_variable.rs.
package gvar

import (
	"fmt"

	"github.com/sonatina-go/sonatina/ir/entity"
	"github.com/sonatina-go/sonatina/ir/types"
)

// Linkage controls external visibility of a function or global, shared
// between ir/gvar and ir/function.
type Linkage uint8

const (
	Public Linkage = iota
	Private
	External
)

func (l Linkage) String() string {
	switch l {
	case Public:
		return "public"
	case Private:
		return "private"
	case External:
		return "external"
	default:
		return "unknown"
	}
}

// GlobalVariable is an opaque reference into a Store.
type GlobalVariable uint32

// Immediate is the scalar payload of a leaf ConstantValue. It is stored
// pre-formatted to keep this package free of the arbitrary-width integer
// machinery the full EVM-oriented IR would need; irwriter is responsible
// for any type-aware re-rendering.
type Immediate struct {
	text string
}

// NewImmediate captures any value fmt can render (int64, *big.Int, bool,
// …) as an immediate constant.
func NewImmediate(v any) Immediate {
	return Immediate{text: fmt.Sprint(v)}
}

func (i Immediate) String() string { return i.text }

// ConstantValue is the recursive constant-initialiser variant.
type ConstantValue struct {
	imm      *Immediate
	array    []ConstantValue
	isStruct bool
}

// MakeImm wraps a scalar as a ConstantValue.
func MakeImm(v any) ConstantValue {
	imm := NewImmediate(v)
	return ConstantValue{imm: &imm}
}

// MakeArray wraps a slice of element constants as an array ConstantValue.
func MakeArray(elems []ConstantValue) ConstantValue {
	return ConstantValue{array: elems}
}

// MakeStruct wraps field constants as a struct ConstantValue.
func MakeStruct(fields []ConstantValue) ConstantValue {
	return ConstantValue{array: fields, isStruct: true}
}

func (c ConstantValue) String() string {
	switch {
	case c.imm != nil:
		return c.imm.String()
	case c.isStruct:
		return joinBraces(c.array, '{', '}')
	default:
		return joinBraces(c.array, '[', ']')
	}
}

func joinBraces(vals []ConstantValue, open, close byte) string {
	s := string(open)
	for i, v := range vals {
		if i > 0 {
			s += ", "
		}
		s += v.String()
	}
	return s + string(close)
}

// Data is the payload behind a GlobalVariable handle.
type Data struct {
	Symbol  string
	Ty      types.Type
	Linkage Linkage
	IsConst bool
	Init    *ConstantValue
}

// NewData builds a Data record with an optional initialiser.
func NewData(symbol string, ty types.Type, linkage Linkage, isConst bool, init *ConstantValue) Data {
	return Data{Symbol: symbol, Ty: ty, Linkage: linkage, IsConst: isConst, Init: init}
}

// Constant is a convenience constructor for a const global with a
// required initialiser.
func Constant(symbol string, ty types.Type, linkage Linkage, init ConstantValue) Data {
	return Data{Symbol: symbol, Ty: ty, Linkage: linkage, IsConst: true, Init: &init}
}

// Store interns global variables by symbol.
//
// Invariant: symbols are unique per module; re-registration is a fatal
// programmer error (§7), matching duplicate-struct-name and
// duplicate-function-name handling elsewhere in the IR.
type Store struct {
	gvData  entity.Arena[GlobalVariable, Data]
	symbols map[string]GlobalVariable
}

// NewStore returns an empty global-variable store.
func NewStore() *Store {
	return &Store{symbols: make(map[string]GlobalVariable)}
}

// MakeGV interns a new global variable. Panics if data.Symbol is already
// registered.
func (s *Store) MakeGV(data Data) GlobalVariable {
	if _, dup := s.symbols[data.Symbol]; dup {
		panic(fmt.Sprintf("global variable store: duplicate global symbol %q", data.Symbol))
	}
	gv := s.gvData.Push(data)
	s.symbols[data.Symbol] = gv
	return gv
}

// GVData returns the data behind a handle.
func (s *Store) GVData(gv GlobalVariable) Data { return s.gvData.Get(gv) }

// GVBySymbol looks a global variable up by its symbol name.
func (s *Store) GVBySymbol(symbol string) (GlobalVariable, bool) {
	gv, ok := s.symbols[symbol]
	return gv, ok
}

// InitData returns the initialiser, if any, for gv.
func (s *Store) InitData(gv GlobalVariable) (ConstantValue, bool) {
	d := s.gvData.Get(gv)
	if d.Init == nil {
		return ConstantValue{}, false
	}
	return *d.Init, true
}

// IsConst reports whether gv was declared const.
func (s *Store) IsConst(gv GlobalVariable) bool { return s.gvData.Get(gv).IsConst }

// Ty returns gv's declared type.
func (s *Store) Ty(gv GlobalVariable) types.Type { return s.gvData.Get(gv).Ty }

// AllGVData yields every global's data in declaration order.
func (s *Store) AllGVData() []Data { return s.gvData.Values() }
