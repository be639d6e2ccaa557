package scope

import (
	"github.com/google/uuid"

	"github.com/lam-lang/checklam/internal/ast"
)

// Table is the side table scope construction memoizes onto, keyed by
// anchor node rather than storing the Scope on the node itself (the
// AST carries no scope field). Each Table gets a stable session tag so
// that if two checker instances are ever run against overlapping
// trees in the same process (non-goal §5 forbids sharing *within* one
// instance, not across instances), which table served a given lookup
// is unambiguous in logs.
type Table struct {
	SessionID string
	memo      map[ast.Node]*Scope
}

// NewTable returns an empty, freshly-tagged memoization table.
func NewTable() *Table {
	return &Table{SessionID: uuid.NewString(), memo: make(map[ast.Node]*Scope)}
}

// Get returns the Scope anchored at node, building and memoizing it on
// first access. parent is the enclosing scope-bearing ancestor's
// Scope, or nil for a SourceFile; callers are responsible for passing
// the correct parent the first time a given anchor is requested.
func (t *Table) Get(node ast.Node, parent *Scope) *Scope {
	if s, ok := t.memo[node]; ok {
		return s
	}
	s := build(node, parent)
	t.memo[node] = s
	return s
}

// Reset clears every memoized scope, required before re-checking the
// same tree (per spec.md §5).
func (t *Table) Reset() {
	t.memo = make(map[ast.Node]*Scope)
}
