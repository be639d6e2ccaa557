package refgraph

import (
	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/scope"
)

// Build constructs the reference graph over file's top-level
// LetDeclarations, per spec.md §4.3. Requires file's parent links to
// already be set (ast.SetParentsIfUnset) so scope.For can walk
// ancestors.
func Build(file *ast.SourceFile, table *scope.Table) *Graph {
	g := NewGraph()

	var decls []*ast.LetDeclaration
	for _, d := range file.Decls {
		if ld, ok := d.(*ast.LetDeclaration); ok {
			decls = append(decls, ld)
			g.AddVertex(ld)
		}
	}

	for _, d := range decls {
		w := &walker{owner: d, table: table, graph: g}
		if d.Expr != nil {
			w.expr(d.Expr)
		}
		for _, s := range d.Stmts {
			w.stmt(s)
		}
	}

	return g
}

// walker threads the owning top-level declaration and scope table
// through a recursive descent over one declaration's body, recording
// an edge each time a ReferenceExpression resolves to another
// top-level declaration (or to a captured parameter, modeled as an
// edge to that parameter's enclosing declaration).
type walker struct {
	owner *ast.LetDeclaration
	table *scope.Table
	graph *Graph
}

func (w *walker) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.ConstantExpression:
		// leaf
	case *ast.NestedExpression:
		w.expr(n.Inner)
	case *ast.ReferenceExpression:
		w.reference(n)
	case *ast.NamedTupleExpression:
		w.reference(n.Constructor)
		for _, a := range n.Args {
			w.expr(a)
		}
	case *ast.CallExpression:
		w.expr(n.Func)
		for _, a := range n.Args {
			w.expr(a)
		}
	case *ast.InfixExpression:
		w.expr(n.Left)
		w.expr(n.Right)
	}
}

func (w *walker) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.ExpressionStatement:
		w.expr(n.Expr)
	case *ast.IfStatement:
		for _, c := range n.Cases {
			if c.Test != nil {
				w.expr(c.Test)
			}
			for _, body := range c.Body {
				w.stmt(body)
			}
		}
	case *ast.ReturnStatement:
		if n.Expr != nil {
			w.expr(n.Expr)
		}
	}
}

func (w *walker) reference(ref *ast.ReferenceExpression) {
	if len(ref.ModulePath) > 0 {
		panic("refgraph: module-qualified references are unsupported (spec.md §4.3)")
	}

	sc := scope.For(ref, w.table)
	if sc == nil {
		return
	}
	decl, ok := sc.Lookup(ref.Name, scope.Var)
	if !ok {
		return
	}

	target := decl.Node
	if param, isParam := target.(*ast.Param); isParam {
		enclosing, ok := param.Parent().(*ast.LetDeclaration)
		if !ok {
			return
		}
		target = enclosing
	}

	if letTarget, ok := target.(*ast.LetDeclaration); ok {
		w.graph.AddEdge(w.owner, letTarget)
	}
}
