// Package scope builds the lazy lexical scope tree the checker
// resolves names against: one Scope per scope-bearing syntax node
// (source file, module, let-declaration), populated on first access
// and memoized in a side table rather than on the node itself.
package scope

import "github.com/lam-lang/checklam/internal/ast"

// Kind is a bitmask of symbol kinds, letting a single lookup ask for
// more than one kind at once (e.g. a struct name is both Type and Var).
type Kind uint8

const (
	Var Kind = 1 << iota
	Type
	Module
)

// Any matches a declaration of any kind.
const Any Kind = Var | Type | Module

func (k Kind) has(other Kind) bool { return k&other != 0 }

// Declaration is one entry in a Scope's multimap: a name bound under a
// particular kind, pointing at the syntax node that introduced it.
type Declaration struct {
	Name string
	Kind Kind
	Node ast.Node
}

// Scope is a lazily-built multimap from name to the declarations bound
// under that name, anchored at a scope-bearing node. Its Parent is the
// nearest enclosing scope-bearing ancestor, not the raw AST parent.
type Scope struct {
	Anchor  ast.Node
	Parent  *Scope
	entries map[string][]*Declaration
}

func newScope(anchor ast.Node, parent *Scope) *Scope {
	return &Scope{Anchor: anchor, Parent: parent, entries: make(map[string][]*Declaration)}
}

func (s *Scope) add(name string, kind Kind, node ast.Node) {
	s.entries[name] = append(s.entries[name], &Declaration{Name: name, Kind: kind, Node: node})
}

// LookupLocal returns the declarations bound to name in this scope
// only (no outward walk), for callers that need to distinguish
// shadowing from absence.
func (s *Scope) LookupLocal(name string) []*Declaration {
	return s.entries[name]
}

// Lookup walks this scope and its ancestors outward, returning the
// first declaration bound to name whose kind intersects mask.
func (s *Scope) Lookup(name string, mask Kind) (*Declaration, bool) {
	for sc := s; sc != nil; sc = sc.Parent {
		for _, d := range sc.entries[name] {
			if d.Kind.has(mask) {
				return d, true
			}
		}
	}
	return nil, false
}
