package scope

import "github.com/lam-lang/checklam/internal/ast"

// isAnchor reports whether node is scope-bearing per spec.md §4.2:
// SourceFile, ModuleDeclaration, or LetDeclaration.
func isAnchor(node ast.Node) bool {
	switch node.(type) {
	case *ast.SourceFile, *ast.ModuleDeclaration, *ast.LetDeclaration:
		return true
	default:
		return false
	}
}

// nearestAnchor walks node and its ancestors (via Parent, not a
// scope's own Parent chain) to find the nearest scope-bearing node,
// inclusive of node itself.
func nearestAnchor(node ast.Node) ast.Node {
	for n := node; n != nil; n = n.Parent() {
		if isAnchor(n) {
			return n
		}
	}
	return nil
}

// For returns the Scope that resolves names visible at node: the
// Scope anchored at node's nearest scope-bearing ancestor (inclusive),
// building it and every enclosing scope on the way out as needed.
// Requires node's Parent links to already be set (ast.SetParentsIfUnset).
func For(node ast.Node, t *Table) *Scope {
	anchor := nearestAnchor(node)
	if anchor == nil {
		return nil
	}
	return scopeOf(anchor, t)
}

func scopeOf(anchor ast.Node, t *Table) *Scope {
	var parentScope *Scope
	if p := anchor.Parent(); p != nil {
		if parentAnchor := nearestAnchor(p); parentAnchor != nil {
			parentScope = scopeOf(parentAnchor, t)
		}
	}
	return t.Get(anchor, parentScope)
}
