// Package check implements constraint generation and unification: the
// checker walks a source file's top-level declarations in SCC order,
// emitting equality constraints into a stack of InferContext frames,
// then solves the accumulated constraint set with an occurs-checked
// unifier, reporting failures to an internal/diagnostics.Sink.
package check

import (
	"github.com/lam-lang/checklam/internal/types"
)

// InferContext is one stack frame: the type variables introduced
// while this frame was active, the constraints attached to it, the
// environment frame in scope, and the type expected of a
// ReturnStatement owned by the nearest enclosing declaration (nil at
// the file level, where no ReturnStatement can legally occur).
type InferContext struct {
	typeVars    *types.TypeVarSet
	constraints []types.Constraint
	env         *types.TypeEnv
	returnType  types.Type
}

func newRootContext() *InferContext {
	return &InferContext{
		typeVars: types.NewTypeVarSet(),
		env:      types.NewTypeEnv(),
	}
}

// child returns a child frame inheriting typeVars/constraints from
// group (the §4.4 "fresh env, returnType = fresh_var()" shape used for
// each declaration's own frame within an SCC), leaving group itself
// untouched until generalization.
func (c *InferContext) child(returnType types.Type) *InferContext {
	return &InferContext{
		typeVars:    c.typeVars,
		constraints: c.constraints,
		env:         c.env.Child(),
		returnType:  returnType,
	}
}

// stack is the checker's InferContext stack. Push/pop must be
// balanced and LIFO, per spec.md §3's lifecycle note. The only
// imbalance detected is a pop (or top) on an empty stack, which panics
// rather than being a silent no-op, since an unbalanced stack is a
// checker bug, not a user-triggerable error; a missing pop, or a pop
// of a frame other than the one the caller pushed, is not detected.
type stack struct {
	frames []*InferContext
}

func (s *stack) push(f *InferContext) { s.frames = append(s.frames, f) }

// pop removes and returns the innermost frame. Its constraints are
// folded into the new top frame first: a child frame shares its
// parent's typeVars (see child, above), so addConstraint's
// innermost-first scan routinely attaches a constraint to a
// short-lived per-declaration frame rather than the longer-lived group
// frame it logically belongs to. Folding on pop ensures those
// constraints are still part of "the group's collected constraints"
// by the time generalization reads them, without having to special-
// case which frame addConstraint picked.
func (s *stack) pop() *InferContext {
	if len(s.frames) == 0 {
		panic("check: pop on empty context stack")
	}
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	if len(s.frames) > 0 && len(top.constraints) > 0 {
		parent := s.frames[len(s.frames)-1]
		parent.constraints = append(parent.constraints, top.constraints...)
	}
	return top
}

func (s *stack) top() *InferContext {
	if len(s.frames) == 0 {
		panic("check: top of empty context stack")
	}
	return s.frames[len(s.frames)-1]
}

// innerToOuter returns the stack from innermost to outermost, for
// addConstraint's outward scan.
func (s *stack) innerToOuter() []*InferContext {
	out := make([]*InferContext, len(s.frames))
	for i := range s.frames {
		out[i] = s.frames[len(s.frames)-1-i]
	}
	return out
}
