package lexer

import (
	"testing"

	"github.com/lam-lang/checklam/internal/token"
)

func kinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	l := New(src, "test.lam")
	var out []token.Kind
	for {
		tok := l.NextToken()
		out = append(out, tok.Kind)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func TestLexSiblingLetsFoldBoundary(t *testing.T) {
	src := "let id x = x\n\nlet a = id 1\nlet b = id \"x\"\n"
	got := kinds(t, src)

	want := []token.Kind{
		token.Let, token.Ident, token.Ident, token.Equals, token.Ident, token.LineFoldEnd,
		token.Let, token.Ident, token.Equals, token.Ident, token.Int, token.LineFoldEnd,
		token.Let, token.Ident, token.Equals, token.Ident, token.String, token.LineFoldEnd,
		token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexIndentedLetBody(t *testing.T) {
	src := "let f x =\n  let y = x\n  y\n"
	got := kinds(t, src)

	want := []token.Kind{
		token.Let, token.Ident, token.Ident, token.Equals,
		token.BlockStart,
		token.Let, token.Ident, token.Equals, token.Ident, token.LineFoldEnd,
		token.Ident, token.LineFoldEnd,
		token.BlockEnd,
		token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexOperatorsAndArrow(t *testing.T) {
	src := "n == 0\nf x -> x\n"
	got := kinds(t, src)
	want := []token.Kind{
		token.Ident, token.Operator, token.Int, token.LineFoldEnd,
		token.Ident, token.Ident, token.Arrow, token.Ident, token.LineFoldEnd,
		token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexComment(t *testing.T) {
	src := "-- a comment\nlet x = 1\n"
	got := kinds(t, src)
	want := []token.Kind{token.Let, token.Ident, token.Equals, token.Int, token.LineFoldEnd, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
}
