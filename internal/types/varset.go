package types

// TypeVarSet supports insertion, membership, deletion, and an
// Intersects query, used to decide which InferContext frame owns a
// constraint (§4.1/§4.4).
type TypeVarSet struct {
	ids map[int]struct{}
}

// NewTypeVarSet returns an empty TypeVarSet.
func NewTypeVarSet() *TypeVarSet {
	return &TypeVarSet{ids: make(map[int]struct{})}
}

// Add inserts v into the set.
func (s *TypeVarSet) Add(v *TVar) { s.ids[v.ID] = struct{}{} }

// Contains reports whether id is a member of the set.
func (s *TypeVarSet) Contains(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Delete removes id from the set.
func (s *TypeVarSet) Delete(id int) { delete(s.ids, id) }

// Len reports the number of members.
func (s *TypeVarSet) Len() int { return len(s.ids) }

// Vars returns the set's members as a slice, in unspecified order.
func (s *TypeVarSet) Vars() []*TVar {
	out := make([]*TVar, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, &TVar{ID: id})
	}
	return out
}

// Intersects reports whether any free variable of t is a member of
// the set.
func (s *TypeVarSet) Intersects(t Type) bool {
	for _, v := range FreeVars(t) {
		if s.Contains(v.ID) {
			return true
		}
	}
	return false
}
