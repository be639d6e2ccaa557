package ast

import "github.com/lam-lang/checklam/internal/token"

// Pattern is the marker interface for pattern nodes. Scope
// construction (internal/scope) only understands BindPattern,
// StructPattern (and its field variants), and WrappedOperator; any
// other concrete Pattern reaching scope construction is a programmer
// error per spec.md §4.2/§7 ("other pattern kinds are errors at scope
// construction time").
type Pattern interface {
	Node
	patternNode()
}

// BindPattern binds a single name.
type BindPattern struct {
	base
	Name string
}

func (p *BindPattern) Kind() Kind  { return KindBindPattern }
func (p *BindPattern) patternNode() {}

// StructPatternField is the marker interface for one field entry
// inside a StructPattern.
type StructPatternField interface {
	Node
	structPatternFieldNode()
}

// PunnedStructPatternField binds a field to a new binding of the same
// name (`{ x }`).
type PunnedStructPatternField struct {
	base
	Name string
}

func (f *PunnedStructPatternField) Kind() Kind              { return KindPunnedStructPatternField }
func (f *PunnedStructPatternField) structPatternFieldNode() {}

// BoundStructPatternField binds a field to a nested pattern (`{ x: pat }`).
type BoundStructPatternField struct {
	base
	Name    string
	Pattern Pattern
}

func (f *BoundStructPatternField) Kind() Kind              { return KindStructPatternField }
func (f *BoundStructPatternField) structPatternFieldNode() {}

// VariadicStructPatternElement is the `...rest` tail of a struct
// pattern; Inner is nil when the remaining fields are simply ignored.
type VariadicStructPatternElement struct {
	base
	Inner Pattern // nil if absent
}

func (f *VariadicStructPatternElement) Kind() Kind { return KindVariadicStructPatternElement }
func (f *VariadicStructPatternElement) structPatternFieldNode() {}

// StructPattern recursively binds member patterns, per spec.md §4.2:
// PunnedStructPatternField binds the field name, StructPatternField
// binds its nested pattern, and VariadicStructPatternElement binds
// nothing unless its inner pattern exists.
type StructPattern struct {
	base
	TypeName string // optional nominal tag, "" if untagged
	Fields   []StructPatternField
}

func (p *StructPattern) Kind() Kind  { return KindStructPattern }
func (p *StructPattern) patternNode() {}

// WrappedOperator binds an operator's text as a name, for redefining
// an infix operator via a let-declaration (`let (+) x y = ...`).
type WrappedOperator struct {
	base
	Op token.Token
}

func (p *WrappedOperator) Kind() Kind  { return KindWrappedOperator }
func (p *WrappedOperator) patternNode() {}

// WildcardPattern (`_`) and LiteralPattern (a constant used as a match
// guard) belong to the surface grammar's match-expression forms, which
// spec.md does not type or scope; they are represented here only so
// the parser has somewhere to put them, and scope construction treats
// encountering one as an internal invariant violation (see
// internal/scope).
type WildcardPattern struct{ base }

func (p *WildcardPattern) Kind() Kind  { return KindWildcardPattern }
func (p *WildcardPattern) patternNode() {}

type LiteralPattern struct {
	base
	Text string
}

func (p *LiteralPattern) Kind() Kind  { return KindLiteralPattern }
func (p *LiteralPattern) patternNode() {}
