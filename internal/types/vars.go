package types

// FreeVars returns every type variable occurring in t, duplicates
// permitted (callers that need a set wrap the result in a TypeVarSet).
func FreeVars(t Type) []*TVar {
	var out []*TVar
	collectFreeVars(t, &out)
	return out
}

func collectFreeVars(t Type, out *[]*TVar) {
	switch v := t.(type) {
	case *TVar:
		*out = append(*out, v)
	case *TCon:
		for _, a := range v.Args {
			collectFreeVars(a, out)
		}
	case *TArrow:
		for _, p := range v.Params {
			collectFreeVars(p, out)
		}
		collectFreeVars(v.Result, out)
	case *TTuple:
		for _, e := range v.Elements {
			collectFreeVars(e, out)
		}
	case *TAny:
		// contributes no variables
	}
}

// HasVar reports whether v's id occurs anywhere in t.
func HasVar(t Type, v *TVar) bool {
	switch n := t.(type) {
	case *TVar:
		return n.ID == v.ID
	case *TCon:
		for _, a := range n.Args {
			if HasVar(a, v) {
				return true
			}
		}
		return false
	case *TArrow:
		for _, p := range n.Params {
			if HasVar(p, v) {
				return true
			}
		}
		return HasVar(n.Result, v)
	case *TTuple:
		for _, e := range n.Elements {
			if HasVar(e, v) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
