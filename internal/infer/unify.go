package infer

// Unify merges two types into the smallest type accepting values of both.
// It is deterministic and total over all kind pairs: Unknown is the
// identity, Any absorbs, Optional distributes over the other operand, and
// integers widen one-directionally to floats. Any kind pair not covered by
// those rules or by a same-kind merge degrades to Any. Both operands must
// come from this Inferrer's arena; the result does too.
func (in *Inferrer) Unify(a, b *Type) *Type {
	// Identity, absorption and Optional distribution take precedence over
	// the kind-mismatch fallback.
	switch {
	case a.Kind == Unknown:
		return b
	case b.Kind == Unknown:
		return a
	case a.Kind == Any || b.Kind == Any:
		return in.arena.newType(Any)
	case a.Kind == Optional && b.Kind == Optional:
		t := in.arena.newType(Optional)
		t.Child = in.Unify(a.Child, b.Child)
		return t
	case a.Kind == Optional:
		t := in.arena.newType(Optional)
		t.Child = in.Unify(a.Child, b)
		return t
	case b.Kind == Optional:
		t := in.arena.newType(Optional)
		t.Child = in.Unify(a, b.Child)
		return t
	}

	switch {
	case a.Kind == Bool && b.Kind == Bool:
		return in.arena.newType(Bool)
	case a.Kind == Integer && b.Kind == Integer:
		t := in.arena.newType(Integer)
		t.IntMin = min(a.IntMin, b.IntMin)
		t.IntMax = max(a.IntMax, b.IntMax)
		return t
	case a.Kind == Float && b.Kind == Float:
		t := in.arena.newType(Float)
		t.FloatMin = min(a.FloatMin, b.FloatMin)
		t.FloatMax = max(a.FloatMax, b.FloatMax)
		return t
	case a.Kind == Integer && b.Kind == Float:
		return in.widen(a, b)
	case a.Kind == Float && b.Kind == Integer:
		return in.widen(b, a)
	case a.Kind == String && b.Kind == String:
		t := in.arena.newType(String)
		t.LenMin = min(a.LenMin, b.LenMin)
		t.LenMax = max(a.LenMax, b.LenMax)
		return t
	case a.Kind == Array && b.Kind == Array:
		t := in.arena.newType(Array)
		t.LenMin = min(a.LenMin, b.LenMin)
		t.LenMax = max(a.LenMax, b.LenMax)
		t.Child = in.Unify(a.Child, b.Child)
		return t
	case a.Kind == Object && b.Kind == Object:
		return in.mergeObjects(a, b)
	}

	return in.arena.newType(Any)
}

// widen merges an Integer with a Float over the union of their ranges.
// Promotion is one-directional: a float never narrows back to an integer.
func (in *Inferrer) widen(i, f *Type) *Type {
	t := in.arena.newType(Float)
	t.FloatMin = min(float64(i.IntMin), f.FloatMin)
	t.FloatMax = max(float64(i.IntMax), f.FloatMax)
	return t
}

// mergeObjects reconciles two ordered field lists by exact byte-equal name
// match. The merged list preserves a's order. A field present on both sides
// merges structurally; a field seen on one side only was possibly absent in
// the other observation and becomes Optional. Fields only b has splice in
// right after their nearest preceding matched neighbour, keeping b's
// relative order; those with no preceding match are appended at the end.
// The merged list has exactly len(a)+len(b)-matched fields.
func (in *Inferrer) mergeObjects(a, b *Type) *Type {
	bIndex := make(map[string]int, len(b.Fields))
	for i, f := range b.Fields {
		bIndex[f.Name] = i
	}
	matched := make([]bool, len(b.Fields))
	for _, af := range a.Fields {
		if i, ok := bIndex[af.Name]; ok {
			matched[i] = true
		}
	}

	out := make([]Field, 0, len(a.Fields)+len(b.Fields))
	emitted := make([]bool, len(b.Fields))

	for _, af := range a.Fields {
		bi, ok := bIndex[af.Name]
		if !ok {
			out = append(out, Field{Name: af.Name, Type: in.optional(af.Type)})
			continue
		}
		out = append(out, Field{Name: af.Name, Type: in.Unify(af.Type, b.Fields[bi].Type)})
		emitted[bi] = true

		// Unmatched fields of b strictly between this match and b's next
		// matched field surface here, in b's own order.
		for j := bi + 1; j < len(b.Fields) && !matched[j]; j++ {
			if emitted[j] {
				continue
			}
			out = append(out, Field{Name: b.Fields[j].Name, Type: in.optional(b.Fields[j].Type)})
			emitted[j] = true
		}
	}

	// Whatever b still holds (trailing fields after its last match, or all
	// of b when nothing matched) goes at the end, in b's order.
	for j, bf := range b.Fields {
		if emitted[j] {
			continue
		}
		out = append(out, Field{Name: bf.Name, Type: in.optional(bf.Type)})
	}

	t := in.arena.newType(Object)
	t.Fields = out
	return t
}

// optional wraps t in Optional, flattening when t is already Optional so
// that optional-of-optional never appears.
func (in *Inferrer) optional(t *Type) *Type {
	if t.Kind == Optional {
		return t
	}
	o := in.arena.newType(Optional)
	o.Child = t
	return o
}
