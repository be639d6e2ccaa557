package ast

// Decl is the marker interface for declaration nodes.
type Decl interface {
	Node
	declNode()
}

// ModuleDeclaration introduces a named module. Module-qualified
// references are unsupported by the checker (spec.md Open Question);
// the node exists for scope contribution only (adds its own name under
// Module) and surface-syntax completeness.
type ModuleDeclaration struct {
	base
	Name string
	Body []Node
}

func (d *ModuleDeclaration) Kind() Kind { return KindModuleDeclaration }
func (d *ModuleDeclaration) declNode()  {}

// ImportDeclaration is parsed but not resolved: module loading across
// files is a non-goal.
type ImportDeclaration struct {
	base
	Path string
}

func (d *ImportDeclaration) Kind() Kind { return KindImportDeclaration }
func (d *ImportDeclaration) declNode()  {}

// Param is a declaration-bearing node: a function parameter, which
// reference-graph construction redirects references to its enclosing
// LetDeclaration (spec.md §4.3 step 2).
type Param struct {
	base
	Name string
	Type TypeExpr // optional annotation, nil if absent
}

func (p *Param) Kind() Kind { return KindParam }
func (p *Param) declNode()  {}

// TypeAssertClause is the optional `: Type` annotation on a
// LetDeclaration (spec.md §4.4, "If d has a TypeAssert").
type TypeAssertClause struct {
	base
	Type TypeExpr
}

func (c *TypeAssertClause) Kind() Kind { return KindTypeAssertClause }

// LetDeclaration is the unit of the reference graph and SCC ordering.
// Body is either a single expression (Expr != nil) or a statement
// block (Stmts != nil); exactly one is set.
type LetDeclaration struct {
	base
	Pattern   Pattern
	Params    []*Param
	Assert    *TypeAssertClause // nil if absent
	Expr      Expr              // expression-body form: `= e`
	Stmts     []Stmt            // block-body form

	// InferredType is populated mid-SCC so mutually-recursive
	// references can be unified against the declaration being
	// checked before its scheme is final (spec.md §4.4 "Main pass",
	// and the ReferenceExpression inference rule: "If the scope
	// returns a declaration with a cached type (mid-SCC), use it
	// directly").
	InferredType interface{} // types.Type, set by internal/check; interface{} avoids an import cycle
}

func (d *LetDeclaration) Kind() Kind { return KindLetDeclaration }
func (d *LetDeclaration) declNode()  {}

// Name returns the bound name for declarations whose pattern is a
// simple BindPattern or WrappedOperator, which covers every
// LetDeclaration the reference graph treats as a vertex (top-level
// declarations). Returns "" for a destructuring pattern.
func (d *LetDeclaration) Name() string {
	switch p := d.Pattern.(type) {
	case *BindPattern:
		return p.Name
	case *WrappedOperator:
		return p.Op.Text
	default:
		return ""
	}
}

// StructField is one field of a StructDeclaration.
type StructField struct {
	base
	Name string
	Type TypeExpr
}

func (f *StructField) Kind() Kind { return KindStructField }

// StructDeclaration introduces a nominal record type and, per
// spec.md §4.2, its own name under both Type and Var kinds (for
// constructor use).
type StructDeclaration struct {
	base
	Name   string
	Fields []*StructField
}

func (d *StructDeclaration) Kind() Kind { return KindStructDeclaration }
func (d *StructDeclaration) declNode()  {}

// EnumMember is one variant of an EnumDeclaration, optionally carrying
// positional payload types (a data constructor).
type EnumMember struct {
	base
	Name string
	Args []TypeExpr
}

func (m *EnumMember) Kind() Kind { return KindEnumMember }

// EnumDeclaration introduces a sum type; each member name is added
// under Var (spec.md §4.2).
type EnumDeclaration struct {
	base
	Name    string
	Members []*EnumMember
}

func (d *EnumDeclaration) Kind() Kind { return KindEnumDeclaration }
func (d *EnumDeclaration) declNode()  {}

// TypeDeclaration is a type alias; added under Type only.
type TypeDeclaration struct {
	base
	Name string
	Type TypeExpr
}

func (d *TypeDeclaration) Kind() Kind { return KindTypeDeclaration }
func (d *TypeDeclaration) declNode()  {}
