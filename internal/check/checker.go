package check

import (
	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/config"
	"github.com/lam-lang/checklam/internal/diagnostics"
	"github.com/lam-lang/checklam/internal/refgraph"
	"github.com/lam-lang/checklam/internal/scope"
	"github.com/lam-lang/checklam/internal/types"
)

// Checker owns everything a single check session needs: the context
// stack, the type-variable and constructor-id counters, the global
// substitution, and the scope table. None of this is safe to share
// between concurrent checks (spec.md §5); a fresh Checker must be
// built per session.
type Checker struct {
	stack      stack
	subst      *types.Substitution
	nextTVar   int
	nextConID  int
	scopeTable *scope.Table
	sink       *diagnostics.Sink
	opts       *config.Options

	builtinInt    *types.TCon
	builtinString *types.TCon
	builtinBool   *types.TCon
}

// NewChecker returns a Checker ready to check one source file. opts
// may be nil, in which case config.Default() applies.
func NewChecker(opts *config.Options) *Checker {
	if opts == nil {
		opts = config.Default()
	}
	c := &Checker{
		subst:      types.NewSubstitution(),
		scopeTable: scope.NewTable(),
		sink:       diagnostics.NewSink(),
		opts:       opts,
	}
	c.installBuiltins()
	return c
}

// Sink returns the diagnostics accumulated so far.
func (c *Checker) Sink() *diagnostics.Sink { return c.sink }

// Substitution returns the checker's global substitution, inspected at
// diagnostic time and by any downstream tooling.
func (c *Checker) Substitution() *types.Substitution { return c.subst }

// createTypeVar appends a fresh variable to the innermost frame and
// returns it.
func (c *Checker) createTypeVar() *types.TVar {
	v := &types.TVar{ID: c.nextTVar}
	c.nextTVar++
	c.stack.top().typeVars.Add(v)
	return v
}

// createConID allocates the next globally unique TCon id.
func (c *Checker) createConID() int {
	id := c.nextConID
	c.nextConID++
	return id
}

// addConstraint implements §4.4's context-discipline rule: a Many
// recurses into its elements; an Equal is attached to the first frame
// (scanning innermost to outermost, never past the root) whose
// typeVars intersects either side, or the root if none do.
func (c *Checker) addConstraint(con types.Constraint) {
	switch v := con.(type) {
	case types.Many:
		for _, e := range v.Elements {
			c.addConstraint(e)
		}
	case types.Equal:
		frames := c.stack.innerToOuter()
		for i, f := range frames {
			if f.typeVars.Intersects(v.Left) || f.typeVars.Intersects(v.Right) {
				f.constraints = append(f.constraints, v)
				return
			}
			if i == len(frames)-1 {
				f.constraints = append(f.constraints, v)
				return
			}
		}
	}
}

// instantiate allocates a fresh type variable for each of scheme's
// generalized variables, substitutes them into its body, and re-emits
// each deferred constraint (with the same substitution) into the
// current context.
func (c *Checker) instantiate(scheme *types.Scheme) types.Type {
	if len(scheme.Vars) == 0 && len(scheme.Deferred) == 0 {
		return scheme.Body
	}
	fresh := types.NewSubstitution()
	for _, v := range scheme.Vars {
		fresh.Set(v.ID, c.createTypeVar())
	}
	body := types.Substitute(scheme.Body, fresh)
	for _, d := range scheme.Deferred {
		c.addConstraint(substituteConstraint(d, fresh))
	}
	return body
}

func substituteConstraint(con types.Constraint, s *types.Substitution) types.Constraint {
	switch v := con.(type) {
	case types.Many:
		out := make([]types.Constraint, len(v.Elements))
		for i, e := range v.Elements {
			out[i] = substituteConstraint(e, s)
		}
		return types.Many{Elements: out}
	case types.Equal:
		return types.Equal{Left: types.Substitute(v.Left, s), Right: types.Substitute(v.Right, s), Origin: v.Origin}
	default:
		return con
	}
}

// CheckFile runs the full pipeline over file: set parent links, build
// the reference graph, order it into SCCs, generate constraints for
// each group in order, then solve the accumulated root constraint.
// Diagnostics and the final substitution are retrieved afterward via
// Sink/Substitution.
func (c *Checker) CheckFile(file *ast.SourceFile) {
	ast.SetParentsIfUnset(file)

	g := refgraph.Build(file, c.scopeTable)
	sccs := g.SCCs()

	root := newRootContext()
	c.stack.push(root)
	c.installBuiltinsInto(root.env)
	c.installConstructors(file, root.env)

	for _, group := range sccs {
		c.checkGroup(group)
	}

	// Solve whatever accumulated on the root frame: checkGroup pops
	// each group frame, and stack.pop folds the popped frame's
	// constraints into the root, so the root now holds every
	// constraint generated during the walk.
	c.solve(types.Many{Elements: c.stack.top().constraints})
	c.stack.pop()
}
