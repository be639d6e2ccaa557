package refgraph

import "github.com/lam-lang/checklam/internal/ast"

// SCCs computes the graph's strongly connected components with
// Tarjan's algorithm, returning them in reverse-finish (leaves-first)
// order: each element is one mutually-recursive group, a singleton for
// an ordinary non-recursive declaration.
//
// Keyed on *ast.LetDeclaration identity instead of a function-name
// string.
func (g *Graph) SCCs() [][]*ast.LetDeclaration {
	index := 0
	var stack []*ast.LetDeclaration
	indices := make(map[*ast.LetDeclaration]int)
	lowlinks := make(map[*ast.LetDeclaration]int)
	onStack := make(map[*ast.LetDeclaration]bool)
	var sccs [][]*ast.LetDeclaration

	var strongconnect func(*ast.LetDeclaration)
	strongconnect = func(v *ast.LetDeclaration) {
		indices[v] = index
		lowlinks[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range g.edges[v] {
			if _, ok := indices[w]; !ok {
				strongconnect(w)
				lowlinks[v] = min(lowlinks[v], lowlinks[w])
			} else if onStack[w] {
				lowlinks[v] = min(lowlinks[v], indices[w])
			}
		}

		if lowlinks[v] == indices[v] {
			var scc []*ast.LetDeclaration
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for _, v := range g.vertices {
		if _, ok := indices[v]; !ok {
			strongconnect(v)
		}
	}

	return sccs
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
