// Package refgraph builds the reference graph among a source file's
// top-level let-declarations and orders its strongly-connected
// components with Tarjan's algorithm, so the checker can process
// mutually-recursive groups leaves-first.
package refgraph

import "github.com/lam-lang/checklam/internal/ast"

// Graph is a directed graph over *ast.LetDeclaration vertices. An edge
// u -> v means u references v, so v must be generalized before u.
type Graph struct {
	vertices []*ast.LetDeclaration
	known    map[*ast.LetDeclaration]bool
	edges    map[*ast.LetDeclaration][]*ast.LetDeclaration
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{known: make(map[*ast.LetDeclaration]bool), edges: make(map[*ast.LetDeclaration][]*ast.LetDeclaration)}
}

// AddVertex registers d as a vertex if it isn't already one.
func (g *Graph) AddVertex(d *ast.LetDeclaration) {
	if !g.known[d] {
		g.known[d] = true
		g.vertices = append(g.vertices, d)
		g.edges[d] = nil
	}
}

// AddEdge adds a from -> to edge, registering either endpoint as a
// vertex first if needed.
func (g *Graph) AddEdge(from, to *ast.LetDeclaration) {
	g.AddVertex(from)
	g.AddVertex(to)
	g.edges[from] = append(g.edges[from], to)
}

// Vertices returns every registered vertex, in insertion order.
func (g *Graph) Vertices() []*ast.LetDeclaration { return g.vertices }
