package types

// Substitution is an insertion-only map from type-variable id to the
// Type it was bound to. Set is called at most once per id during a
// single unification session; lookups resolve transitively so a chain
// v -> u -> Int returns Int directly (path compression on read).
type Substitution struct {
	m map[int]Type
}

// NewSubstitution returns an empty Substitution.
func NewSubstitution() *Substitution {
	return &Substitution{m: make(map[int]Type)}
}

// Get returns the type v.ID is bound to, resolving transitively
// through any chain of variable-to-variable bindings, and whether a
// binding exists at all.
func (s *Substitution) Get(id int) (Type, bool) {
	t, ok := s.m[id]
	if !ok {
		return nil, false
	}
	if tv, isVar := t.(*TVar); isVar {
		if next, ok := s.Get(tv.ID); ok {
			return next, true
		}
	}
	return t, true
}

// Set binds v.ID to t. Callers must not call Set twice for the same
// id within one unification session.
func (s *Substitution) Set(id int, t Type) {
	s.m[id] = t
}

// Substitute applies s to every variable occurrence in t, returning a
// freshly-constructed tree only if at least one subtype actually
// changed; otherwise t itself is returned unchanged (structural
// sharing, per §4.1).
func Substitute(t Type, s *Substitution) Type {
	switch v := t.(type) {
	case *TVar:
		if resolved, ok := s.Get(v.ID); ok {
			return Substitute(resolved, s)
		}
		return t
	case *TCon:
		changed := false
		newArgs := make([]Type, len(v.Args))
		for i, a := range v.Args {
			na := Substitute(a, s)
			newArgs[i] = na
			if na != a {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return &TCon{ID: v.ID, DisplayName: v.DisplayName, Args: newArgs}
	case *TArrow:
		changed := false
		newParams := make([]Type, len(v.Params))
		for i, p := range v.Params {
			np := Substitute(p, s)
			newParams[i] = np
			if np != p {
				changed = true
			}
		}
		newResult := Substitute(v.Result, s)
		if newResult != v.Result {
			changed = true
		}
		if !changed {
			return t
		}
		return &TArrow{Params: newParams, Result: newResult}
	case *TTuple:
		changed := false
		newElems := make([]Type, len(v.Elements))
		for i, e := range v.Elements {
			ne := Substitute(e, s)
			newElems[i] = ne
			if ne != e {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return &TTuple{Elements: newElems}
	default:
		return t
	}
}
