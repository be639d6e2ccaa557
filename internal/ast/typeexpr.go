package ast

// TypeExpr is the marker interface for surface type annotations
// (struct field types, type asserts, enum member payloads). These are
// distinct from internal/types.Type, which is the checker's own
// algebraic representation; internal/check converts one to the other.
type TypeExpr interface {
	Node
	typeExprNode()
}

// TypeName is a nominal type reference, possibly applied to arguments
// (`Maybe Int`).
type TypeName struct {
	base
	Name string
	Args []TypeExpr
}

func (t *TypeName) Kind() Kind    { return KindTypeName }
func (t *TypeName) typeExprNode() {}

// TypeArrow is a function type (`Int -> Int`, `(Int, Int) -> Bool`).
type TypeArrow struct {
	base
	Params []TypeExpr
	Result TypeExpr
}

func (t *TypeArrow) Kind() Kind    { return KindTypeArrow }
func (t *TypeArrow) typeExprNode() {}

// TypeTuple is a tuple type.
type TypeTuple struct {
	base
	Elements []TypeExpr
}

func (t *TypeTuple) Kind() Kind    { return KindTypeTuple }
func (t *TypeTuple) typeExprNode() {}
