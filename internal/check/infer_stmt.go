package check

import (
	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/types"
)

// inferStmt implements §4.4's "Statement inference" over the three
// statement forms, threading frame along so a ReturnStatement can
// reach the nearest enclosing declaration's return type.
func (c *Checker) inferStmt(s ast.Stmt, frame *InferContext) {
	switch n := s.(type) {
	case *ast.ExpressionStatement:
		c.inferExpr(n.Expr)
	case *ast.IfStatement:
		for _, cs := range n.Cases {
			if cs.Test != nil {
				testT := c.inferExpr(cs.Test)
				c.addConstraint(types.Equal{Left: testT, Right: c.builtinBool, Origin: cs.Test})
			}
			for _, body := range cs.Body {
				c.inferStmt(body, frame)
			}
		}
	case *ast.ReturnStatement:
		var t types.Type = &types.TTuple{}
		if n.Expr != nil {
			t = c.inferExpr(n.Expr)
		}
		c.addConstraint(types.Equal{Left: frame.returnType, Right: t, Origin: n})
	}
}
