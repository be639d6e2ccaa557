package check

import (
	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/types"
)

// installConstructors binds each top-level struct name and enum member
// name into env as a nullary TCon scheme, so NamedTupleExpression's
// inference rule ("instantiate c's scheme, must resolve to a TCon")
// has something to resolve. Struct/enum declarations are otherwise
// untouched beyond scope introduction (spec.md's forward-declaration
// open question): no field-type checking happens here or anywhere
// else, and a struct/enum's own id is shared across all of its enum
// members so two variants of one enum unify against each other.
func (c *Checker) installConstructors(file *ast.SourceFile, env *types.TypeEnv) {
	for _, n := range file.Decls {
		switch d := n.(type) {
		case *ast.StructDeclaration:
			con := &types.TCon{ID: c.createConID(), DisplayName: d.Name}
			env.Bind(d.Name, types.NewMonoScheme(con))
		case *ast.EnumDeclaration:
			id := c.createConID()
			for _, m := range d.Members {
				con := &types.TCon{ID: id, DisplayName: d.Name}
				env.Bind(m.Name, types.NewMonoScheme(con))
			}
		}
	}
}
