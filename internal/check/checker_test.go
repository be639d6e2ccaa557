package check

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lam-lang/checklam/internal/diagnostics"
	"github.com/lam-lang/checklam/internal/parser"
)

func checkSrc(t *testing.T, src string) *Checker {
	t.Helper()
	file, errs := parser.ParseFile([]byte(src), "t.lam")
	require.Empty(t, errs)

	c := NewChecker(nil)
	c.CheckFile(file)
	return c
}

func TestIdentityGeneralizesAcrossCallSites(t *testing.T) {
	c := checkSrc(t, "let id x = x\n\nlet a = id 1\nlet b = id \"x\"\n")
	require.True(t, c.Sink().Empty(), "diagnostics: %+v", c.Sink().All())
}

func TestMutualRecursionChecksCleanly(t *testing.T) {
	src := "" +
		"let isEven n =\n" +
		"    if n == 0 then\n" +
		"        return True\n" +
		"    else\n" +
		"        return isOdd (n - 1)\n" +
		"\n" +
		"let isOdd n =\n" +
		"    if n == 0 then\n" +
		"        return False\n" +
		"    else\n" +
		"        return isEven (n - 1)\n"
	c := checkSrc(t, src)
	require.True(t, c.Sink().Empty(), "diagnostics: %+v", c.Sink().All())
}

func TestArityMismatchIsReported(t *testing.T) {
	c := checkSrc(t, "let f x y = x + y\nlet r = f 1\n")
	require.False(t, c.Sink().Empty())
	require.Equal(t, "TYP002", c.Sink().All()[0].Code())
}

func TestUnknownNameIsReported(t *testing.T) {
	c := checkSrc(t, "let g x = frobnicate x + 1\n")
	require.False(t, c.Sink().Empty())
	require.Equal(t, "NAME001", c.Sink().All()[0].Code())
}

func TestTypeAssertMismatchIsReported(t *testing.T) {
	c := checkSrc(t, "let h : Int -> Int = \\x -> \"oops\"\n")
	require.False(t, c.Sink().Empty())
}

func TestConstructorApplicationChecksCleanly(t *testing.T) {
	src := "struct Point:\n    x: Int\n    y: Int\n\nlet origin = Point 0 0\n"
	c := checkSrc(t, src)
	require.True(t, c.Sink().Empty(), "diagnostics: %+v", c.Sink().All())
}

func TestUnresolvedAnnotationNameWarns(t *testing.T) {
	c := checkSrc(t, "let h : Frobnicator -> Int = \\x -> 1\n")
	require.False(t, c.Sink().Empty())
	require.Equal(t, "TC007", c.Sink().All()[0].Code())
	require.Equal(t, diagnostics.SeverityWarning, c.Sink().All()[0].Severity())
}
