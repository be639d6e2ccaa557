package refgraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/parser"
	"github.com/lam-lang/checklam/internal/scope"
)

func bindName(t *testing.T, d *ast.LetDeclaration) string {
	t.Helper()
	bp, ok := d.Pattern.(*ast.BindPattern)
	require.True(t, ok, "expected a BindPattern")
	return bp.Name
}

func TestMutuallyRecursivePairFormsOneSCC(t *testing.T) {
	file, errs := parser.ParseFile([]byte("let isEven n = isOdd n\nlet isOdd n = isEven n\n"), "t.lam")
	require.Empty(t, errs)

	g := Build(file, scope.NewTable())
	sccs := g.SCCs()

	require.Len(t, sccs, 1)
	require.Len(t, sccs[0], 2)
}

func TestIndependentDeclarationsAreSeparateSingletons(t *testing.T) {
	file, errs := parser.ParseFile([]byte("let a x = x\nlet b x = x\n"), "t.lam")
	require.Empty(t, errs)

	g := Build(file, scope.NewTable())
	sccs := g.SCCs()

	require.Len(t, sccs, 2)
	require.Len(t, sccs[0], 1)
	require.Len(t, sccs[1], 1)
}

func TestSCCsAreLeavesFirst(t *testing.T) {
	file, errs := parser.ParseFile([]byte("let top x = helper x\nlet helper x = x\n"), "t.lam")
	require.Empty(t, errs)

	g := Build(file, scope.NewTable())
	sccs := g.SCCs()
	require.Len(t, sccs, 2)

	require.Equal(t, "helper", bindName(t, sccs[0][0]), "expected the leaf helper to finish before top")
	require.Equal(t, "top", bindName(t, sccs[1][0]))
}

func TestSelfRecursiveDeclarationIsSingleton(t *testing.T) {
	file, errs := parser.ParseFile([]byte("let fact n = fact n\n"), "t.lam")
	require.Empty(t, errs)

	g := Build(file, scope.NewTable())
	sccs := g.SCCs()
	require.Len(t, sccs, 1)
	require.Len(t, sccs[0], 1)
}
