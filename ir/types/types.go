// Package types implements the IR's type system: the primitive type
// leaves and the structurally-interned compound types (pointers, arrays,
// structs) shared by every function in a module.
//
// Grounded on original_source/crates/ir/src/types.rs, translated from the
// Rust PrimaryMap/FxHashMap/IndexMap trio into the generic entity.Arena
// plus two plain Go maps.
package types

import (
	"fmt"

	"github.com/sonatina-go/sonatina/ir/entity"
	"github.com/sonatina-go/sonatina/pkg/logger"
)

// Kind tags the primitive leaves of Type; compound data lives out of line
// in the type store, addressed by CompoundType.
type Kind uint8

const (
	Void Kind = iota
	I1
	I8
	I16
	I32
	I64
	I128
	I256
	Compound
)

// Type is a small value type: either a primitive leaf or a handle into
// the owning TypeStore's compound arena.
type Type struct {
	kind     Kind
	compound CompoundType
}

func leaf(k Kind) Type { return Type{kind: k} }

var (
	TVoid = leaf(Void)
	TI1   = leaf(I1)
	TI8   = leaf(I8)
	TI16  = leaf(I16)
	TI32  = leaf(I32)
	TI64  = leaf(I64)
	TI128 = leaf(I128)
	TI256 = leaf(I256)
)

// makeCompoundType wraps a compound handle as a Type, so Store can build
// Types without exporting the Kind/compound fields directly.
func makeCompoundType(c CompoundType) Type {
	return Type{kind: Compound, compound: c}
}

// Kind returns the type's tag.
func (t Type) Kind() Kind { return t.kind }

// AsCompound returns the compound handle and true if t is a compound type.
func (t Type) AsCompound() (CompoundType, bool) {
	if t.kind != Compound {
		return 0, false
	}
	return t.compound, true
}

// IsIntegral reports whether t is one of the fixed-width integer leaves.
func (t Type) IsIntegral() bool {
	switch t.kind {
	case I1, I8, I16, I32, I64, I128, I256:
		return true
	default:
		return false
	}
}

// bitwidth returns the integer width in bits, or -1 for non-integral kinds.
func (t Type) bitwidth() int {
	switch t.kind {
	case I1:
		return 1
	case I8:
		return 8
	case I16:
		return 16
	case I32:
		return 32
	case I64:
		return 64
	case I128:
		return 128
	case I256:
		return 256
	default:
		return -1
	}
}

// Ordering is the result of comparing two Types under the partial order
// defined over integer widths (testable property 8.10).
type Ordering int

const (
	Unordered Ordering = iota
	Less
	Equal
	Greater
)

// Compare implements the partial order: integer primitives order by
// bitwidth, equal types compare Equal, everything else (compounds, void,
// or a non-integral paired with an integral) is Unordered.
func Compare(a, b Type) Ordering {
	if a == b {
		return Equal
	}
	if !a.IsIntegral() || !b.IsIntegral() {
		return Unordered
	}
	aw, bw := a.bitwidth(), b.bitwidth()
	switch {
	case aw < bw:
		return Less
	case aw > bw:
		return Greater
	default:
		return Equal
	}
}

// CompoundType is an opaque reference into a TypeStore's compound arena.
type CompoundType uint32

// CompoundData is the structural payload behind a CompoundType. Exactly
// one of the three shapes (pointer, array, struct) is populated,
// discriminated by an internal tag — callers use Store.Deref/ArrayDef/
// StructDef to read it.
type CompoundData struct {
	tag   compoundTag
	ptr   Type
	elem  Type
	len   uint
	name  string
	field []Type
	pack  bool
}

type compoundTag uint8

const (
	tagPtr compoundTag = iota
	tagArray
	tagStruct
)

// StructData describes a named struct's fields, returned by StructDef.
type StructData struct {
	Name   string
	Fields []Type
	Packed bool
}

func (d CompoundData) key() string {
	// Structural equality key used for interning. Struct identity is by
	// name+fields+packed, array by elem+len, ptr by elem — exactly the
	// Rust CompoundTypeData's derived Eq/Hash.
	switch d.tag {
	case tagPtr:
		return fmt.Sprintf("ptr(%v)", d.ptr)
	case tagArray:
		return fmt.Sprintf("array(%v,%d)", d.elem, d.len)
	case tagStruct:
		return fmt.Sprintf("struct(%s,%v,%v)", d.name, d.field, d.pack)
	default:
		panic("unreachable compound tag")
	}
}

// Store interns compound types by structural equality and indexes struct
// definitions by name in declaration order.
//
// Invariant (interning): two compound types with structurally equal data
// share the same CompoundType handle (testable property 8.1).
// Invariant (struct names): struct names are unique within a store;
// duplicate declaration panics — the fault is the caller's (§7).
type Store struct {
	compounds entity.Arena[CompoundType, CompoundData]
	rev       map[string]CompoundType
	structs   []string          // insertion-ordered struct names
	byName    map[string]CompoundType
}

// NewStore returns an empty type store.
func NewStore() *Store {
	return &Store{rev: make(map[string]CompoundType), byName: make(map[string]CompoundType)}
}

// MakePtr returns (interning) the pointer-to-ty type.
func (s *Store) MakePtr(ty Type) Type {
	c, minted := s.intern(CompoundData{tag: tagPtr, ptr: ty})
	if minted {
		logger.LogTypeIntern("ptr", uint32(c))
	}
	return makeCompoundType(c)
}

// MakeArray returns (interning) the [ty; len] type.
func (s *Store) MakeArray(elem Type, length uint) Type {
	c, minted := s.intern(CompoundData{tag: tagArray, elem: elem, len: length})
	if minted {
		logger.LogTypeIntern("array", uint32(c))
	}
	return makeCompoundType(c)
}

// MakeStruct declares a new named struct type. Panics if name is already
// declared in this store (§7 programmer error).
func (s *Store) MakeStruct(name string, fields []Type, packed bool) Type {
	fieldsCopy := append([]Type(nil), fields...)
	data := CompoundData{tag: tagStruct, name: name, field: fieldsCopy, pack: packed}
	c, minted := s.intern(data)
	if _, dup := s.byName[name]; dup {
		panic(fmt.Sprintf("type store: struct %q is already defined", name))
	}
	s.structs = append(s.structs, name)
	s.byName[name] = c
	if minted {
		logger.LogTypeIntern("struct", uint32(c))
	}
	return makeCompoundType(c)
}

// intern is MakeCompound from the spec: looks up data structurally,
// returning the existing handle plus false on hit, or a freshly
// allocated handle plus true on miss.
func (s *Store) intern(data CompoundData) (CompoundType, bool) {
	key := data.key()
	if c, ok := s.rev[key]; ok {
		return c, false
	}
	c := s.compounds.Push(data)
	s.rev[key] = c
	return c, true
}

// ResolveCompound returns the structural data behind a compound handle.
func (s *Store) ResolveCompound(c CompoundType) CompoundData {
	return s.compounds.Get(c)
}

// StructDef returns the struct definition behind ty, if ty is a struct.
func (s *Store) StructDef(ty Type) (StructData, bool) {
	c, ok := ty.AsCompound()
	if !ok {
		return StructData{}, false
	}
	d := s.compounds.Get(c)
	if d.tag != tagStruct {
		return StructData{}, false
	}
	return StructData{Name: d.name, Fields: d.field, Packed: d.pack}, true
}

// ArrayDef returns (elem, len) if ty is an array type.
func (s *Store) ArrayDef(ty Type) (Type, uint, bool) {
	c, ok := ty.AsCompound()
	if !ok {
		return Type{}, 0, false
	}
	d := s.compounds.Get(c)
	if d.tag != tagArray {
		return Type{}, 0, false
	}
	return d.elem, d.len, true
}

// Deref returns the pointee type if ty is a pointer type.
func (s *Store) Deref(ty Type) (Type, bool) {
	c, ok := ty.AsCompound()
	if !ok {
		return Type{}, false
	}
	d := s.compounds.Get(c)
	if d.tag != tagPtr {
		return Type{}, false
	}
	return d.ptr, true
}

// StructTypeByName looks up a previously declared struct by name.
func (s *Store) StructTypeByName(name string) (Type, bool) {
	c, ok := s.byName[name]
	if !ok {
		return Type{}, false
	}
	return makeCompoundType(c), true
}

// AllStructData yields struct definitions in declaration order, used by
// the textual emitter (§6) and any other consumer requiring deterministic
// struct enumeration.
func (s *Store) AllStructData() []StructData {
	out := make([]StructData, 0, len(s.structs))
	for _, name := range s.structs {
		c := s.byName[name]
		d := s.compounds.Get(c)
		out = append(out, StructData{Name: d.name, Fields: d.field, Packed: d.pack})
	}
	return out
}

// IsIntegral reports whether ty is an integer primitive.
func (s *Store) IsIntegral(ty Type) bool { return ty.IsIntegral() }

// IsPtr reports whether ty is a pointer compound type.
func (s *Store) IsPtr(ty Type) bool {
	c, ok := ty.AsCompound()
	if !ok {
		return false
	}
	return s.compounds.Get(c).tag == tagPtr
}

// IsArray reports whether ty is an array compound type.
func (s *Store) IsArray(ty Type) bool {
	c, ok := ty.AsCompound()
	if !ok {
		return false
	}
	return s.compounds.Get(c).tag == tagArray
}
