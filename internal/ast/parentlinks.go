package ast

// SetParentsIfUnset walks the tree from file and assigns Parent links
// to every descendant whose Parent is still nil. It is idempotent: a
// second call over an already-linked tree is a no-op, matching
// spec.md §6 ("The checker sets parent links transitively before
// checking if not already set").
//
// This is an explicit traversal over the sealed node union rather
// than a reflection-based field walk (spec.md §9, "Dynamically typed
// AST walking").
func SetParentsIfUnset(file *SourceFile) {
	for _, d := range file.Decls {
		linkIfUnset(d, file)
		linkDecl(d)
	}
}

func linkIfUnset(n, parent Node) {
	if n.Parent() == nil {
		n.SetParent(parent)
	}
}

func linkDecl(n Node) {
	switch d := n.(type) {
	case *ModuleDeclaration:
		for _, c := range d.Body {
			linkIfUnset(c, d)
			linkDecl(c)
		}
	case *ImportDeclaration:
		// leaf
	case *LetDeclaration:
		linkIfUnset(d.Pattern, d)
		linkPattern(d.Pattern)
		for _, p := range d.Params {
			linkIfUnset(p, d)
			if p.Type != nil {
				linkIfUnset(p.Type, p)
				linkTypeExpr(p.Type)
			}
		}
		if d.Assert != nil {
			linkIfUnset(d.Assert, d)
			linkIfUnset(d.Assert.Type, d.Assert)
			linkTypeExpr(d.Assert.Type)
		}
		if d.Expr != nil {
			linkIfUnset(d.Expr, d)
			linkExpr(d.Expr)
		}
		for _, s := range d.Stmts {
			linkIfUnset(s, d)
			linkStmt(s)
		}
	case *StructDeclaration:
		for _, f := range d.Fields {
			linkIfUnset(f, d)
			linkIfUnset(f.Type, f)
			linkTypeExpr(f.Type)
		}
	case *EnumDeclaration:
		for _, m := range d.Members {
			linkIfUnset(m, d)
			for _, a := range m.Args {
				linkIfUnset(a, m)
				linkTypeExpr(a)
			}
		}
	case *TypeDeclaration:
		linkIfUnset(d.Type, d)
		linkTypeExpr(d.Type)
	}
}

func linkPattern(n Pattern) {
	switch p := n.(type) {
	case *StructPattern:
		for _, f := range p.Fields {
			linkIfUnset(f, p)
			switch ff := f.(type) {
			case *BoundStructPatternField:
				linkIfUnset(ff.Pattern, ff)
				linkPattern(ff.Pattern)
			case *VariadicStructPatternElement:
				if ff.Inner != nil {
					linkIfUnset(ff.Inner, ff)
					linkPattern(ff.Inner)
				}
			}
		}
	}
}

func linkExpr(n Expr) {
	switch e := n.(type) {
	case *NestedExpression:
		linkIfUnset(e.Inner, e)
		linkExpr(e.Inner)
	case *NamedTupleExpression:
		linkIfUnset(e.Constructor, e)
		for _, a := range e.Args {
			linkIfUnset(a, e)
			linkExpr(a)
		}
	case *CallExpression:
		linkIfUnset(e.Func, e)
		linkExpr(e.Func)
		for _, a := range e.Args {
			linkIfUnset(a, e)
			linkExpr(a)
		}
	case *InfixExpression:
		linkIfUnset(e.Left, e)
		linkExpr(e.Left)
		linkIfUnset(e.Right, e)
		linkExpr(e.Right)
	}
}

func linkStmt(n Stmt) {
	switch s := n.(type) {
	case *ExpressionStatement:
		linkIfUnset(s.Expr, s)
		linkExpr(s.Expr)
	case *IfStatement:
		for i := range s.Cases {
			c := &s.Cases[i]
			if c.Test != nil {
				linkIfUnset(c.Test, s)
				linkExpr(c.Test)
			}
			for _, b := range c.Body {
				linkIfUnset(b, s)
				linkStmt(b)
			}
		}
	case *ReturnStatement:
		if s.Expr != nil {
			linkIfUnset(s.Expr, s)
			linkExpr(s.Expr)
		}
	}
}

func linkTypeExpr(n TypeExpr) {
	switch t := n.(type) {
	case *TypeName:
		for _, a := range t.Args {
			linkIfUnset(a, t)
			linkTypeExpr(a)
		}
	case *TypeArrow:
		for _, p := range t.Params {
			linkIfUnset(p, t)
			linkTypeExpr(p)
		}
		linkIfUnset(t.Result, t)
		linkTypeExpr(t.Result)
	case *TypeTuple:
		for _, el := range t.Elements {
			linkIfUnset(el, t)
			linkTypeExpr(el)
		}
	}
}
