package check

import (
	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/diagnostics"
	"github.com/lam-lang/checklam/internal/types"
)

// resolveTypeExpr converts a surface TypeAssert annotation into the
// checker's own algebra. Builtins resolve directly; a nominal name
// bound by a struct or enum declaration resolves through the current
// environment (installConstructors populates it with a mono scheme per
// constructor); any other name is treated as an unconstrained fresh
// variable rather than an error, since annotation-target resolution
// beyond this is outside what spec.md's five-case model defines. That
// fallback also raises a DeferredAmbiguity warning: unlike an ordinary
// polymorphic inference variable, this one stands in for a name the
// programmer wrote and meant to pin the type down with, so leaving it
// free is worth flagging even though checking still proceeds.
func (c *Checker) resolveTypeExpr(t ast.TypeExpr) types.Type {
	switch n := t.(type) {
	case *ast.TypeName:
		switch n.Name {
		case "Int":
			return c.builtinInt
		case "String":
			return c.builtinString
		case "Bool":
			return c.builtinBool
		}
		if scheme, ok := c.stack.top().env.Lookup(n.Name); ok {
			return c.instantiate(scheme)
		}
		c.sink.Add(&diagnostics.DeferredAmbiguity{Name: n.Name, At: n.First()})
		return c.createTypeVar()
	case *ast.TypeArrow:
		params := make([]types.Type, len(n.Params))
		for i, p := range n.Params {
			params[i] = c.resolveTypeExpr(p)
		}
		return &types.TArrow{Params: params, Result: c.resolveTypeExpr(n.Result)}
	case *ast.TypeTuple:
		elems := make([]types.Type, len(n.Elements))
		for i, e := range n.Elements {
			elems[i] = c.resolveTypeExpr(e)
		}
		return &types.TTuple{Elements: elems}
	default:
		return types.Any
	}
}
