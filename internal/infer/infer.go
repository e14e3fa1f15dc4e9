package infer

import (
	"shapegen/internal/models"
)

// Inferrer owns the arena that all Type nodes of one inference live in. One
// Inferrer serves one document; dropping it releases the whole tree at once.
// It carries no other state, so inference stays a pure recursive walk.
type Inferrer struct {
	arena arena
}

// New creates an Inferrer with an empty arena.
func New() *Inferrer {
	return &Inferrer{}
}

// Infer walks a decoded JSON value and produces the minimal Type accepting
// it. String content is discarded (only byte lengths are kept), and numeric
// ranges record the single observed value. A root null infers Optional of
// Unknown like any other null rather than being rejected.
func (in *Inferrer) Infer(v models.Value) *Type {
	switch v.Kind {
	case models.Null:
		t := in.arena.newType(Optional)
		t.Child = in.arena.newType(Unknown)
		return t
	case models.Bool:
		return in.arena.newType(Bool)
	case models.Integer:
		t := in.arena.newType(Integer)
		t.IntMin, t.IntMax = v.Int, v.Int
		return t
	case models.Float:
		t := in.arena.newType(Float)
		t.FloatMin, t.FloatMax = v.Float, v.Float
		return t
	case models.String:
		t := in.arena.newType(String)
		n := len(v.Str)
		t.LenMin, t.LenMax = n, n
		return t
	case models.Array:
		// Fold the element types pairwise through Unify, starting from the
		// identity. An empty array keeps Unknown as its element type.
		child := in.arena.newType(Unknown)
		for _, elem := range v.Items {
			child = in.Unify(child, in.Infer(elem))
		}
		t := in.arena.newType(Array)
		t.LenMin, t.LenMax = len(v.Items), len(v.Items)
		t.Child = child
		return t
	case models.Object:
		// Sibling fields are inferred independently; merging across fields
		// only ever happens through Unify on two Object types.
		t := in.arena.newType(Object)
		t.Fields = make([]Field, 0, len(v.Members))
		for _, m := range v.Members {
			t.Fields = append(t.Fields, Field{Name: m.Key, Type: in.Infer(m.Value)})
		}
		return t
	default:
		return in.arena.newType(Any)
	}
}
