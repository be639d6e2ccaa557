package ast

// Expr is the marker interface for expression nodes. The constraint
// generator understands exactly six forms: ConstantExpression,
// NestedExpression, ReferenceExpression, NamedTupleExpression,
// CallExpression, and InfixExpression — every Expr concrete type below
// is one of those.
type Expr interface {
	Node
	exprNode()
}

// ConstantKind distinguishes the two literal forms spec.md §4.4 types.
type ConstantKind int

const (
	IntegerConstant ConstantKind = iota
	StringConstant
)

// ConstantExpression is an integer or string literal.
type ConstantExpression struct {
	base
	ConstKind ConstantKind
	Text      string // original lexeme; integers are parsed by the checker
}

func (e *ConstantExpression) Kind() Kind { return KindConstantExpression }
func (e *ConstantExpression) exprNode()  {}

// NestedExpression is a parenthesized expression; its type is simply
// the type of Inner.
type NestedExpression struct {
	base
	Inner Expr
}

func (e *NestedExpression) Kind() Kind { return KindNestedExpression }
func (e *NestedExpression) exprNode()  {}

// ReferenceExpression names a value, type-level builtin (True/False),
// or enum/struct constructor. ModulePath is always empty in this
// implementation (spec.md Open Question: module-qualified references
// are unsupported).
type ReferenceExpression struct {
	base
	ModulePath []string
	Name       string
}

func (e *ReferenceExpression) Kind() Kind { return KindReferenceExpression }
func (e *ReferenceExpression) exprNode()  {}

// NamedTupleExpression applies a data constructor to positional
// arguments (nullary-or-curried construction, spec.md §4.4).
type NamedTupleExpression struct {
	base
	Constructor *ReferenceExpression
	Args        []Expr
}

func (e *NamedTupleExpression) Kind() Kind { return KindNamedTupleExpression }
func (e *NamedTupleExpression) exprNode()  {}

// CallExpression applies a function value to arguments.
type CallExpression struct {
	base
	Func Expr
	Args []Expr
}

func (e *CallExpression) Kind() Kind { return KindCallExpression }
func (e *CallExpression) exprNode()  {}

// InfixExpression is a binary operator application; Op is the
// operator's source text, looked up as a reference in the current
// scope the same way a named function would be.
type InfixExpression struct {
	base
	Left  Expr
	Op    string
	Right Expr
}

func (e *InfixExpression) Kind() Kind { return KindInfixExpression }
func (e *InfixExpression) exprNode()  {}
