// Package types implements the checker's type universe: a small
// algebraic Type variant, free-variable/substitution operations, type
// schemes, and the type environment stack, via a Type-interface-plus-
// concrete-struct shape trimmed to the five cases this checker
// actually infers (no row polymorphism, no dictionaries, no effect
// rows — kind inference beyond the trivial is out of scope).
package types

import (
	"fmt"
	"strings"
)

// Type is a tagged variant: TVar, TCon, TArrow, TTuple, or TAny.
type Type interface {
	String() string
	isType()
}

// TVar is a type variable identified by a globally unique,
// monotonically assigned, non-negative id.
type TVar struct {
	ID int
}

func (t *TVar) isType() {}
func (t *TVar) String() string {
	return fmt.Sprintf("t%d", t.ID)
}

// TCon is a nominal type constructor: a type head identified by ID and
// applied to zero or more type arguments. Equality is by ID, not
// DisplayName; Args' length is invariant for a given ID.
type TCon struct {
	ID          int
	DisplayName string
	Args        []Type
}

func (t *TCon) isType() {}
func (t *TCon) String() string {
	if len(t.Args) == 0 {
		return t.DisplayName
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", t.DisplayName, strings.Join(parts, ", "))
}

// SameHead reports whether t and other share the same constructor id,
// the equality rule §3 specifies for TCon.
func (t *TCon) SameHead(other *TCon) bool { return t.ID == other.ID }

// TArrow is a function type; Params is an ordered, possibly empty,
// finite sequence. A zero-parameter TArrow models a thunk/value,
// unified against a non-arrow by coercing through its Result (§4.4.5).
type TArrow struct {
	Params []Type
	Result Type
}

func (t *TArrow) isType() {}
func (t *TArrow) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), t.Result)
}

// TTuple is an ordered, finite sequence of element types.
type TTuple struct {
	Elements []Type
}

func (t *TTuple) isType() {}
func (t *TTuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

// TAny is the top/error sentinel returned when name resolution fails;
// it unifies trivially with anything so checking can continue.
type TAny struct{}

func (t *TAny) isType()        {}
func (t *TAny) String() string { return "Any" }

// Any is the shared TAny sentinel, returned directly rather than
// allocating a fresh &TAny{} at every failed lookup.
var Any Type = &TAny{}

// IsAny reports whether t is the Any sentinel.
func IsAny(t Type) bool {
	_, ok := t.(*TAny)
	return ok
}
