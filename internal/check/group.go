package check

import (
	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/types"
)

// checkGroup runs §4.4's "Main pass per SCC" over one strongly
// connected group: a signature pass that allocates each member's
// arrow type and binds it (polymorphically, over the group's
// accumulated type variables and constraints) into the enclosing
// frame, followed by a body pass that unifies each member's body
// against its own return variable.
func (c *Checker) checkGroup(group []*ast.LetDeclaration) {
	enclosing := c.stack.top()
	groupFrame := &InferContext{
		typeVars: types.NewTypeVarSet(),
		env:      enclosing.env,
	}
	c.stack.push(groupFrame)
	defer c.stack.pop()

	signatures := make(map[*ast.LetDeclaration]*types.TArrow, len(group))

	for _, d := range group {
		returnVar := c.createTypeVar()
		frame := groupFrame.child(returnVar)
		c.stack.push(frame)

		paramVars := make([]types.Type, len(d.Params))
		for i, p := range d.Params {
			pv := c.createTypeVar()
			paramVars[i] = pv
			frame.env.Bind(p.Name, types.NewMonoScheme(pv))
		}

		sig := &types.TArrow{Params: paramVars, Result: returnVar}

		if d.Assert != nil {
			assertType := c.resolveTypeExpr(d.Assert.Type)
			c.addConstraint(types.Equal{Left: assertType, Right: sig, Origin: d.Assert.Type})
		}

		c.stack.pop()

		signatures[d] = sig
		d.InferredType = sig
		c.bindGroupScheme(groupFrame, d, sig)
	}

	for _, d := range group {
		sig := signatures[d]
		frame := groupFrame.child(sig.Result)
		for i, p := range d.Params {
			frame.env.Bind(p.Name, types.NewMonoScheme(sig.Params[i]))
		}
		c.stack.push(frame)

		if d.Expr != nil {
			t := c.inferExpr(d.Expr)
			c.addConstraint(types.Equal{Left: t, Right: frame.returnType, Origin: d.Expr})
		} else {
			for _, s := range d.Stmts {
				c.inferStmt(s, frame)
			}
		}

		c.stack.pop()
	}

	for _, d := range group {
		d.InferredType = nil
		// Regenerate the final scheme: the body pass (and, for earlier
		// members, a later member's TypeAssert in the signature pass)
		// may have grown groupFrame's typeVars/constraints further, so
		// the scheme bound during the signature pass above may be
		// stale.
		c.bindGroupScheme(groupFrame, d, signatures[d])
	}
}

func (c *Checker) bindGroupScheme(groupFrame *InferContext, d *ast.LetDeclaration, sig *types.TArrow) {
	name := d.Name()
	if name == "" {
		return
	}
	groupFrame.env.Bind(name, &types.Scheme{
		Vars:     groupFrame.typeVars.Vars(),
		Deferred: groupFrame.constraints,
		Body:     sig,
	})
}
