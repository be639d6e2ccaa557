package check

import "github.com/lam-lang/checklam/internal/types"

// installBuiltins allocates the three built-in type constructors with
// distinct ids, per spec.md §3: "Built-ins Int, String, Bool are
// pre-instantiated at checker startup with distinct ids." The ids come
// from the same counter as every other TCon the checker ever mints, so
// a user-defined struct or enum can never collide with one of these.
func (c *Checker) installBuiltins() {
	c.builtinInt = &types.TCon{ID: c.createConID(), DisplayName: "Int"}
	c.builtinString = &types.TCon{ID: c.createConID(), DisplayName: "String"}
	c.builtinBool = &types.TCon{ID: c.createConID(), DisplayName: "Bool"}
}

func binOp(t types.Type) *types.Scheme {
	return types.NewMonoScheme(&types.TArrow{Params: []types.Type{t, t}, Result: t})
}

// installBuiltinsInto preloads the root environment frame with the
// fixed operator and literal-constant bindings spec.md §4.4 always
// assumes are present, plus this implementation's supplemented extras
// gated by opts.Builtins.
func (c *Checker) installBuiltinsInto(env *types.TypeEnv) {
	env.Bind("Int", types.NewMonoScheme(c.builtinInt))
	env.Bind("String", types.NewMonoScheme(c.builtinString))
	env.Bind("Bool", types.NewMonoScheme(c.builtinBool))

	env.Bind("True", types.NewMonoScheme(c.builtinBool))
	env.Bind("False", types.NewMonoScheme(c.builtinBool))

	env.Bind("+", binOp(c.builtinInt))
	env.Bind("-", binOp(c.builtinInt))
	env.Bind("*", binOp(c.builtinInt))
	env.Bind("/", binOp(c.builtinInt))

	a := c.createTypeVar()
	env.Bind("==", &types.Scheme{
		Vars: []*types.TVar{a},
		Body: &types.TArrow{Params: []types.Type{a, a}, Result: c.builtinBool},
	})

	env.Bind("not", types.NewMonoScheme(&types.TArrow{
		Params: []types.Type{c.builtinBool},
		Result: c.builtinBool,
	}))

	for _, name := range c.opts.Builtins {
		c.installSupplementedBuiltin(env, name)
	}
}

// installSupplementedBuiltin wires one of the option file's extra
// names. Unrecognized names are ignored rather than rejected: an
// option file authored against a future checker version should still
// load today.
func (c *Checker) installSupplementedBuiltin(env *types.TypeEnv, name string) {
	switch name {
	case "double":
		env.Bind("double", types.NewMonoScheme(&types.TArrow{
			Params: []types.Type{c.builtinInt},
			Result: c.builtinInt,
		}))
	case "concat":
		env.Bind("concat", types.NewMonoScheme(&types.TArrow{
			Params: []types.Type{c.builtinString, c.builtinString},
			Result: c.builtinString,
		}))
	}
}
