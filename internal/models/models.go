package models

// Kind discriminates the variants of a JSON value.
type Kind int

const (
	Null Kind = iota
	Bool
	Integer
	Float
	String
	Array
	Object
)

// String returns a human-readable name for the kind, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
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
	default:
		return "invalid"
	}
}

// Value is one node of a decoded JSON document. Exactly one payload field is
// meaningful, selected by Kind. Object members keep the key order in which
// they first appeared in the document; that order flows through inference
// into the rendered output.
type Value struct {
	Kind Kind

	Bool  bool
	Int   int64
	Float float64
	Str   string

	Items   []Value  // Array elements, in document order
	Members []Member // Object members, in first-occurrence key order
}

// Member is a single key/value pair of a JSON object.
type Member struct {
	Key   string
	Value Value
}
