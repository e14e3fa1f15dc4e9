// Package infer turns decoded JSON values into the minimal structural type
// accepting them, unifying independently observed types wherever several
// values occupy the same structural position.
package infer

// Kind discriminates the variants of Type.
type Kind uint8

const (
	// Unknown carries no information yet; it is the identity element of
	// unification and the payload inferred for null.
	Unknown Kind = iota
	// Any marks conflicting observations; it absorbs everything it is
	// unified with.
	Any
	Bool
	Integer
	Float
	String
	Array
	Object
	Optional
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Any:
		return "any"
	case Bool:
		return "bool"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	case Optional:
		return "optional"
	default:
		return "invalid"
	}
}

// Type describes the minimal shape accepting every value observed at one
// structural position. Exactly one variant is active, selected by Kind.
// The range fields track observed extremes to drive unification; they are
// never rendered. Children are exclusively owned by their parent, and every
// node of a tree lives in the arena of the Inferrer that built it.
type Type struct {
	Kind Kind

	IntMin, IntMax     int64   // Integer
	FloatMin, FloatMax float64 // Float
	LenMin, LenMax     int     // String byte length, Array element count

	// Child is the Array element type or the Optional payload. An Optional
	// never directly wraps another Optional.
	Child *Type

	// Fields is the ordered member list of an Object. Names are opaque byte
	// strings, unique within one Object; the order is established during
	// merging and is part of the observable output.
	Fields []Field
}

// Field is one named member of an Object type.
type Field struct {
	Name string
	Type *Type
}

// Equal reports whether two types are structurally identical, including
// observed ranges and field order.
func Equal(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Integer:
		return a.IntMin == b.IntMin && a.IntMax == b.IntMax
	case Float:
		return a.FloatMin == b.FloatMin && a.FloatMax == b.FloatMax
	case String:
		return a.LenMin == b.LenMin && a.LenMax == b.LenMax
	case Array:
		return a.LenMin == b.LenMin && a.LenMax == b.LenMax && Equal(a.Child, b.Child)
	case Optional:
		return Equal(a.Child, b.Child)
	case Object:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].Name != b.Fields[i].Name || !Equal(a.Fields[i].Type, b.Fields[i].Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

const arenaChunkSize = 64

// arena hands out Type nodes from fixed-capacity chunks so node pointers
// stay stable while the pool grows. The pool is released as a single unit
// when the owning Inferrer is dropped; inferred trees are acyclic, so no
// per-node bookkeeping is needed.
type arena struct {
	chunks [][]Type
}

func (a *arena) newType(kind Kind) *Type {
	n := len(a.chunks)
	if n == 0 || len(a.chunks[n-1]) == cap(a.chunks[n-1]) {
		a.chunks = append(a.chunks, make([]Type, 0, arenaChunkSize))
		n++
	}
	chunk := &a.chunks[n-1]
	*chunk = append(*chunk, Type{Kind: kind})
	return &(*chunk)[len(*chunk)-1]
}
