package check

import (
	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/diagnostics"
	"github.com/lam-lang/checklam/internal/scope"
	"github.com/lam-lang/checklam/internal/types"
)

// inferExpr implements §4.4's "Expression inference" over the six
// forms parsing ever produces.
func (c *Checker) inferExpr(e ast.Expr) types.Type {
	switch n := e.(type) {
	case *ast.ConstantExpression:
		return c.inferConstant(n)
	case *ast.NestedExpression:
		return c.inferExpr(n.Inner)
	case *ast.ReferenceExpression:
		return c.inferReference(n)
	case *ast.NamedTupleExpression:
		return c.inferNamedTuple(n)
	case *ast.CallExpression:
		return c.inferCall(n)
	case *ast.InfixExpression:
		return c.inferInfix(n)
	default:
		return types.Any
	}
}

func (c *Checker) inferConstant(n *ast.ConstantExpression) types.Type {
	switch n.ConstKind {
	case ast.IntegerConstant:
		return c.builtinInt
	case ast.StringConstant:
		return c.builtinString
	default:
		return types.Any
	}
}

// inferReference resolves a name to a type, per §4.4: a mid-SCC cached
// declaration resolves directly (no instantiation, so mutual recursion
// shares type variables); otherwise a scheme found in the environment
// stack is instantiated; otherwise a BindingNotFound diagnostic is
// emitted and Any returned.
func (c *Checker) inferReference(n *ast.ReferenceExpression) types.Type {
	if len(n.ModulePath) > 0 {
		panic("check: module-qualified references are unsupported (spec.md §4.4)")
	}

	if sc := scope.For(n, c.scopeTable); sc != nil {
		if decl, ok := sc.Lookup(n.Name, scope.Var); ok {
			if ld, isLet := decl.Node.(*ast.LetDeclaration); isLet && ld.InferredType != nil {
				return ld.InferredType.(types.Type)
			}
		}
	}

	if scheme, ok := c.stack.top().env.Lookup(n.Name); ok {
		return c.instantiate(scheme)
	}

	c.sink.Add(&diagnostics.BindingNotFound{Name: n.Name, At: n.First()})
	return types.Any
}

// inferNamedTuple implements §4.4's data-constructor application rule:
// the constructor's scheme must resolve to a TCon; the result reuses
// that TCon's id and display name but is rebuilt with the inferred
// argument types, since struct/enum declarations are not otherwise
// type-checked (spec.md's forward-declaration open question).
func (c *Checker) inferNamedTuple(n *ast.NamedTupleExpression) types.Type {
	conType := c.inferReference(n.Constructor)
	args := make([]types.Type, len(n.Args))
	for i, a := range n.Args {
		args[i] = c.inferExpr(a)
	}

	con, ok := conType.(*types.TCon)
	if !ok {
		return types.Any
	}
	return &types.TCon{ID: con.ID, DisplayName: con.DisplayName, Args: args}
}

func (c *Checker) inferCall(n *ast.CallExpression) types.Type {
	opT := c.inferExpr(n.Func)
	args := make([]types.Type, len(n.Args))
	for i, a := range n.Args {
		args[i] = c.inferExpr(a)
	}
	ret := c.createTypeVar()
	c.addConstraint(types.Equal{Left: opT, Right: &types.TArrow{Params: args, Result: ret}, Origin: n})
	return ret
}

func (c *Checker) inferInfix(n *ast.InfixExpression) types.Type {
	leftT := c.inferExpr(n.Left)
	rightT := c.inferExpr(n.Right)

	var opT types.Type
	if scheme, ok := c.stack.top().env.Lookup(n.Op); ok {
		opT = c.instantiate(scheme)
	} else {
		c.sink.Add(&diagnostics.BindingNotFound{Name: n.Op, At: n.First()})
		opT = types.Any
	}

	ret := c.createTypeVar()
	c.addConstraint(types.Equal{
		Left:   &types.TArrow{Params: []types.Type{leftT, rightT}, Result: ret},
		Right:  opT,
		Origin: n,
	})
	return ret
}
