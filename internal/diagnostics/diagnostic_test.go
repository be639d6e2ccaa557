package diagnostics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lam-lang/checklam/internal/ast"
	"github.com/lam-lang/checklam/internal/token"
	"github.com/lam-lang/checklam/internal/types"
)

func originNode() ast.Node {
	ref := &ast.ReferenceExpression{Name: "x"}
	tok := token.Token{Kind: token.Ident, Text: "x", Pos: token.Pos{File: "f.lam", Line: 3, Column: 5}}
	ref.SetSpan(tok, tok)
	return ref
}

func TestSinkAccumulatesInOrder(t *testing.T) {
	sink := NewSink()
	if !sink.Empty() {
		t.Fatalf("expected new sink to be empty")
	}
	sink.Add(&BindingNotFound{Name: "frobnicate"})
	sink.Add(&ArityMismatch{
		Left:   &types.TArrow{Params: []types.Type{&types.TCon{ID: 1, DisplayName: "Int"}}, Result: &types.TCon{ID: 1, DisplayName: "Int"}},
		Right:  &types.TArrow{Result: &types.TCon{ID: 1, DisplayName: "Int"}},
		Origin: originNode(),
	})

	all := sink.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(all))
	}
	if all[0].Code() != CodeBindingNotFound {
		t.Fatalf("expected first diagnostic to be %s, got %s", CodeBindingNotFound, all[0].Code())
	}
	if all[1].Code() != CodeArityMismatch {
		t.Fatalf("expected second diagnostic to be %s, got %s", CodeArityMismatch, all[1].Code())
	}
}

func TestUnificationFailedMessage(t *testing.T) {
	d := &UnificationFailed{
		Left:   &types.TCon{ID: 1, DisplayName: "String"},
		Right:  &types.TCon{ID: 2, DisplayName: "Int"},
		Origin: originNode(),
	}
	if !strings.Contains(d.Message(), "String") || !strings.Contains(d.Message(), "Int") {
		t.Fatalf("expected message to mention both types, got %q", d.Message())
	}
	if d.Pos().Line != 3 {
		t.Fatalf("expected Pos to come from Origin, got %v", d.Pos())
	}
}

func TestFormatCLINoColor(t *testing.T) {
	var buf bytes.Buffer
	FormatCLI(&buf, []Diagnostic{&BindingNotFound{Name: "g", At: token.Token{Pos: token.Pos{File: "f.lam", Line: 1, Column: 1}}}}, false)
	out := buf.String()
	if !strings.Contains(out, "NAME001") || !strings.Contains(out, "g") {
		t.Fatalf("expected plain-text diagnostic line, got %q", out)
	}
}

func TestEncodeAllPreservesOrderAndContext(t *testing.T) {
	diags := []Diagnostic{
		&BindingNotFound{Name: "frobnicate", At: token.Token{Pos: token.Pos{File: "f.lam", Line: 2, Column: 1}}},
		&InfiniteType{Var: &types.TVar{ID: 0}, Type: &types.TArrow{Params: []types.Type{&types.TVar{ID: 0}}, Result: &types.TCon{ID: 1, DisplayName: "Int"}}, Origin: originNode()},
	}
	encoded := EncodeAll(diags, "session-1")
	if len(encoded) != 2 {
		t.Fatalf("expected 2 encoded diagnostics, got %d", len(encoded))
	}
	if encoded[0].Code != CodeBindingNotFound || encoded[0].Context["name"] != "frobnicate" {
		t.Fatalf("unexpected encoding for first diagnostic: %+v", encoded[0])
	}
	if encoded[1].Code != CodeInfiniteType {
		t.Fatalf("unexpected encoding for second diagnostic: %+v", encoded[1])
	}
	if encoded[0].SID != "session-1" {
		t.Fatalf("expected SID to be threaded through, got %q", encoded[0].SID)
	}
}
