package check

import (
	"github.com/lam-lang/checklam/internal/config"
	"github.com/lam-lang/checklam/internal/diagnostics"
	"github.com/lam-lang/checklam/internal/types"
)

// solve processes the accumulated root constraint with an explicit
// LIFO worklist, per §4.4's "Solver (unification)".
func (c *Checker) solve(root types.Constraint) {
	worklist := []types.Constraint{root}
	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		switch v := cur.(type) {
		case types.Many:
			for _, e := range v.Elements {
				worklist = append(worklist, e)
			}
		case types.Equal:
			worklist = c.unifyEqual(v, worklist)
		}
	}
}

// resolve applies single-step path compression: if t is a variable
// bound in the substitution, its (transitively resolved) image is
// returned; otherwise t itself.
func (c *Checker) resolve(t types.Type) types.Type {
	if v, ok := t.(*types.TVar); ok {
		if bound, ok := c.subst.Get(v.ID); ok {
			return bound
		}
	}
	return t
}

func (c *Checker) unifyEqual(eq types.Equal, worklist []types.Constraint) []types.Constraint {
	l := c.resolve(eq.Left)
	r := c.resolve(eq.Right)

	if lv, ok := l.(*types.TVar); ok {
		return c.bindVar(lv, r, eq, worklist)
	}
	if rv, ok := r.(*types.TVar); ok {
		return c.bindVar(rv, l, eq, worklist)
	}

	if types.IsAny(l) || types.IsAny(r) {
		return worklist
	}

	lArrow, lIsArrow := l.(*types.TArrow)
	rArrow, rIsArrow := r.(*types.TArrow)
	if lIsArrow && rIsArrow {
		if len(lArrow.Params) != len(rArrow.Params) {
			c.sink.Add(&diagnostics.ArityMismatch{Left: types.Substitute(l, c.subst), Right: types.Substitute(r, c.subst), Origin: eq.Origin})
			return worklist
		}
		for i := range lArrow.Params {
			worklist = append(worklist, types.Equal{Left: lArrow.Params[i], Right: rArrow.Params[i], Origin: eq.Origin})
		}
		worklist = append(worklist, types.Equal{Left: lArrow.Result, Right: rArrow.Result, Origin: eq.Origin})
		return worklist
	}

	if lIsArrow && len(lArrow.Params) == 0 {
		return append(worklist, types.Equal{Left: lArrow.Result, Right: r, Origin: eq.Origin})
	}

	lCon, lIsCon := l.(*types.TCon)
	rCon, rIsCon := r.(*types.TCon)
	if lIsCon && rIsCon {
		if !lCon.SameHead(rCon) || len(lCon.Args) != len(rCon.Args) {
			c.sink.Add(&diagnostics.UnificationFailed{Left: types.Substitute(l, c.subst), Right: types.Substitute(r, c.subst), Origin: eq.Origin})
			return worklist
		}
		for i := range lCon.Args {
			worklist = append(worklist, types.Equal{Left: lCon.Args[i], Right: rCon.Args[i], Origin: eq.Origin})
		}
		return worklist
	}

	c.sink.Add(&diagnostics.UnificationFailed{Left: types.Substitute(l, c.subst), Right: types.Substitute(r, c.subst), Origin: eq.Origin})
	return worklist
}

// bindVar binds v to other in the global substitution, after an occurs
// check. A violation either reports InfiniteType and fails just this
// branch, or fails silently, per config.OccursCheckMode; either way
// the worklist continues processing remaining subterms (§4.4,
// "continues with remaining subterms so that multiple diagnostics can
// surface from one check pass").
func (c *Checker) bindVar(v *types.TVar, other types.Type, eq types.Equal, worklist []types.Constraint) []types.Constraint {
	if tv, ok := other.(*types.TVar); ok && tv.ID == v.ID {
		return worklist
	}
	if types.HasVar(other, v) {
		if c.opts.OccursCheck == config.OccursCheckReport {
			c.sink.Add(&diagnostics.InfiniteType{Var: v, Type: types.Substitute(other, c.subst), Origin: eq.Origin})
		}
		return worklist
	}
	c.subst.Set(v.ID, other)
	return worklist
}
