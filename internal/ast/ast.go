// Package ast defines the concrete syntax tree the checker consumes.
// Node kinds are a sealed tagged union dispatched by a Kind
// discriminant and exhaustive type switches, per the surface syntax
// spec.md's data model names (LetDeclaration, ReferenceExpression,
// BindPattern, ...). There is no generic reflection-based traversal:
// every walk that needs one is written as an explicit switch over the
// relevant marker interface.
package ast

import "github.com/lam-lang/checklam/internal/token"

// Kind discriminates every concrete node type in the tree.
type Kind int

const (
	KindSourceFile Kind = iota
	KindModuleDeclaration
	KindImportDeclaration
	KindLetDeclaration
	KindStructDeclaration
	KindEnumDeclaration
	KindTypeDeclaration
	KindParam
	KindTypeAssertClause
	KindStructField
	KindEnumMember

	KindConstantExpression
	KindNestedExpression
	KindReferenceExpression
	KindNamedTupleExpression
	KindCallExpression
	KindInfixExpression

	KindExpressionStatement
	KindIfStatement
	KindReturnStatement

	KindBindPattern
	KindStructPattern
	KindPunnedStructPatternField
	KindStructPatternField
	KindVariadicStructPatternElement
	KindWrappedOperator
	KindWildcardPattern
	KindLiteralPattern

	KindTypeName
	KindTypeArrow
	KindTypeTuple
)

func (k Kind) String() string {
	switch k {
	case KindSourceFile:
		return "SourceFile"
	case KindModuleDeclaration:
		return "ModuleDeclaration"
	case KindImportDeclaration:
		return "ImportDeclaration"
	case KindLetDeclaration:
		return "LetDeclaration"
	case KindStructDeclaration:
		return "StructDeclaration"
	case KindEnumDeclaration:
		return "EnumDeclaration"
	case KindTypeDeclaration:
		return "TypeDeclaration"
	case KindParam:
		return "Param"
	case KindTypeAssertClause:
		return "TypeAssertClause"
	case KindStructField:
		return "StructField"
	case KindEnumMember:
		return "EnumMember"
	case KindConstantExpression:
		return "ConstantExpression"
	case KindNestedExpression:
		return "NestedExpression"
	case KindReferenceExpression:
		return "ReferenceExpression"
	case KindNamedTupleExpression:
		return "NamedTupleExpression"
	case KindCallExpression:
		return "CallExpression"
	case KindInfixExpression:
		return "InfixExpression"
	case KindExpressionStatement:
		return "ExpressionStatement"
	case KindIfStatement:
		return "IfStatement"
	case KindReturnStatement:
		return "ReturnStatement"
	case KindBindPattern:
		return "BindPattern"
	case KindStructPattern:
		return "StructPattern"
	case KindPunnedStructPatternField:
		return "PunnedStructPatternField"
	case KindStructPatternField:
		return "StructPatternField"
	case KindVariadicStructPatternElement:
		return "VariadicStructPatternElement"
	case KindWrappedOperator:
		return "WrappedOperator"
	case KindWildcardPattern:
		return "WildcardPattern"
	case KindLiteralPattern:
		return "LiteralPattern"
	case KindTypeName:
		return "TypeName"
	case KindTypeArrow:
		return "TypeArrow"
	case KindTypeTuple:
		return "TypeTuple"
	default:
		return "Unknown"
	}
}

// Node is the base interface every concrete syntax node implements.
// Parent is assignable: the checker sets parent links transitively
// before checking if they are not already set (see SetParentsIfUnset).
type Node interface {
	Kind() Kind
	Parent() Node
	SetParent(Node)
	First() token.Token
	Last() token.Token
}

// base is embedded by every concrete node to supply the common Node
// fields without reflection.
type base struct {
	parent     Node
	first, last token.Token
}

func (b *base) Parent() Node       { return b.parent }
func (b *base) SetParent(p Node)   { b.parent = p }
func (b *base) First() token.Token { return b.first }
func (b *base) Last() token.Token  { return b.last }

// SetSpan stamps the node's first/last tokens; called by the parser
// once a production completes.
func (b *base) SetSpan(first, last token.Token) {
	b.first = first
	b.last = last
}

// SourceFile is the root of the tree the parser produces.
type SourceFile struct {
	base
	Path  string
	Decls []Node // top-level declarations: *LetDeclaration, *StructDeclaration, *EnumDeclaration, *TypeDeclaration, *ModuleDeclaration, *ImportDeclaration
}

func (f *SourceFile) Kind() Kind { return KindSourceFile }

// NewSourceFile constructs a SourceFile and sets parent links on its
// direct children; deeper links are set lazily by SetParentsIfUnset.
func NewSourceFile(path string, decls []Node) *SourceFile {
	f := &SourceFile{Path: path, Decls: decls}
	for _, d := range decls {
		if d.Parent() == nil {
			d.SetParent(f)
		}
	}
	return f
}
