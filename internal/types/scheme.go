package types

import "github.com/lam-lang/checklam/internal/ast"

// Constraint is a tagged variant: Equal or Many. It is defined here
// rather than in a separate package because Scheme.Deferred stores
// constraints directly (§3's Forall triple).
type Constraint interface {
	isConstraint()
}

// Equal is structural equality between two types; Origin carries the
// source node for diagnostics.
type Equal struct {
	Left, Right Type
	Origin      ast.Node
}

func (Equal) isConstraint() {}

// Many is a grouped list of constraints, traversed recursively.
type Many struct {
	Elements []Constraint
}

func (Many) isConstraint() {}

// Scheme is the Forall triple: generalized variables, deferred
// constraints that could not be discharged before generalization, and
// the body type. Instantiation allocates a fresh variable per
// generalized var, substitutes it into Body, and re-emits Deferred
// with the same substitution.
type Scheme struct {
	Vars     []*TVar
	Deferred []Constraint
	Body     Type
}

// NewMonoScheme wraps t with no generalized variables, the scheme used
// for function parameters (§4.4's "Scheme with no generalized
// variables").
func NewMonoScheme(t Type) *Scheme {
	return &Scheme{Body: t}
}
