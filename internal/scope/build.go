package scope

import "github.com/lam-lang/checklam/internal/ast"

// build constructs anchor's Scope by walking its direct children,
// following the per-node-kind rules of spec.md §4.2. It is called at
// most once per anchor; see Table.Get for the memoization boundary.
func build(anchor ast.Node, parent *Scope) *Scope {
	s := newScope(anchor, parent)

	switch n := anchor.(type) {
	case *ast.SourceFile:
		addChildren(s, n.Decls)
	case *ast.ModuleDeclaration:
		addChildren(s, n.Body)
	case *ast.LetDeclaration:
		addLetOwnScope(s, n)
	}

	return s
}

// addChildren folds each direct child declaration into s, following
// the per-kind rule. A child that is itself scope-bearing
// (ModuleDeclaration, LetDeclaration) contributes only the name(s)
// visible from outside it; its own internals are a separate Scope,
// built lazily if and when something queries it as an anchor.
func addChildren(s *Scope, children []ast.Node) {
	for _, child := range children {
		switch n := child.(type) {
		case *ast.ModuleDeclaration:
			s.add(n.Name, Module, n)
		case *ast.StructDeclaration:
			s.add(n.Name, Type|Var, n)
		case *ast.EnumDeclaration:
			s.add(n.Name, Type, n)
			for _, m := range n.Members {
				s.add(m.Name, Var, m)
			}
		case *ast.TypeDeclaration:
			s.add(n.Name, Type, n)
		case *ast.LetDeclaration:
			addPatternBindings(s, n.Pattern, n)
		case *ast.ImportDeclaration:
			// Imports carry no local bindings this checker resolves;
			// module loading across files is out of scope.
		}
	}
}

// addLetOwnScope populates a LetDeclaration's own scope: its
// parameters (visible throughout the body) and its own pattern-bound
// name (so a recursive reference inside the body resolves to itself).
// spec.md §4.2 also calls for "collecting nested let bindings" from
// the body when the declaration is the anchor; this grammar has no
// LetStatement form (block bodies hold only ExpressionStatement,
// IfStatement, ReturnStatement), so there is nothing to collect today.
func addLetOwnScope(s *Scope, d *ast.LetDeclaration) {
	addPatternBindings(s, d.Pattern, d)
	for _, p := range d.Params {
		s.add(p.Name, Var, p)
	}
}

// addPatternBindings adds the name(s) a pattern binds, per spec.md
// §4.2's pattern rules. Any Pattern kind besides BindPattern,
// StructPattern, and WrappedOperator reaching here is an internal
// invariant violation: scope construction only ever sees a
// LetDeclaration's own Pattern, which the parser restricts to those
// three forms.
func addPatternBindings(s *Scope, pat ast.Pattern, node ast.Node) {
	switch p := pat.(type) {
	case *ast.BindPattern:
		s.add(p.Name, Var, node)
	case *ast.WrappedOperator:
		s.add(p.Op.Text, Var, node)
	case *ast.StructPattern:
		for _, f := range p.Fields {
			addStructPatternField(s, f, node)
		}
	default:
		panic("scope: unsupported pattern kind reached scope construction")
	}
}

func addStructPatternField(s *Scope, f ast.StructPatternField, node ast.Node) {
	switch field := f.(type) {
	case *ast.PunnedStructPatternField:
		s.add(field.Name, Var, node)
	case *ast.BoundStructPatternField:
		addPatternBindings(s, field.Pattern, node)
	case *ast.VariadicStructPatternElement:
		if field.Inner != nil {
			addPatternBindings(s, field.Inner, node)
		}
	}
}
