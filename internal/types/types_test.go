package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSubstituteStructuralSharing(t *testing.T) {
	intTy := &TCon{ID: 1, DisplayName: "Int"}
	s := NewSubstitution()
	got := Substitute(intTy, s)
	if got != Type(intTy) {
		t.Fatalf("expected Substitute to return the same value when nothing changes, got %v", got)
	}
}

func TestSubstituteRebuildsOnChange(t *testing.T) {
	v := &TVar{ID: 0}
	intTy := &TCon{ID: 1, DisplayName: "Int"}
	s := NewSubstitution()
	s.Set(v.ID, intTy)

	arrow := &TArrow{Params: []Type{v}, Result: v}
	got := Substitute(arrow, s)

	want := &TArrow{Params: []Type{intTy}, Result: intTy}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Substitute mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstituteTransitiveChain(t *testing.T) {
	a := &TVar{ID: 0}
	b := &TVar{ID: 1}
	intTy := &TCon{ID: 1, DisplayName: "Int"}

	s := NewSubstitution()
	s.Set(a.ID, b)
	s.Set(b.ID, intTy)

	got := Substitute(a, s)
	if got.String() != "Int" {
		t.Fatalf("expected transitive resolution to Int, got %s", got)
	}
}

func TestFreeVarsAndHasVar(t *testing.T) {
	v0 := &TVar{ID: 0}
	v1 := &TVar{ID: 1}
	tup := &TTuple{Elements: []Type{v0, &TCon{ID: 2, DisplayName: "String"}, v1}}

	fv := FreeVars(tup)
	if len(fv) != 2 {
		t.Fatalf("expected 2 free vars, got %d", len(fv))
	}
	if !HasVar(tup, v0) || !HasVar(tup, v1) {
		t.Fatalf("expected both v0 and v1 to occur in %s", tup)
	}
	if HasVar(tup, &TVar{ID: 99}) {
		t.Fatalf("expected v99 not to occur in %s", tup)
	}
}

func TestTypeVarSetIntersects(t *testing.T) {
	set := NewTypeVarSet()
	v0 := &TVar{ID: 0}
	set.Add(v0)

	arrow := &TArrow{Params: []Type{v0}, Result: &TCon{ID: 1, DisplayName: "Int"}}
	if !set.Intersects(arrow) {
		t.Fatalf("expected set containing v0 to intersect %s", arrow)
	}

	other := &TArrow{Params: []Type{&TVar{ID: 2}}, Result: &TCon{ID: 1, DisplayName: "Int"}}
	if set.Intersects(other) {
		t.Fatalf("expected set containing only v0 not to intersect %s", other)
	}
}

func TestTypeEnvShadowing(t *testing.T) {
	root := NewTypeEnv()
	root.Bind("x", NewMonoScheme(&TCon{ID: 1, DisplayName: "Int"}))

	child := root.Child()
	child.Bind("x", NewMonoScheme(&TCon{ID: 2, DisplayName: "String"}))

	s, ok := child.Lookup("x")
	if !ok || s.Body.String() != "String" {
		t.Fatalf("expected inner binding to shadow outer, got %v", s)
	}

	s, ok = root.Lookup("x")
	if !ok || s.Body.String() != "Int" {
		t.Fatalf("expected outer binding unaffected, got %v", s)
	}

	if _, ok := child.Lookup("y"); ok {
		t.Fatalf("expected lookup of unbound name to fail")
	}
}

func TestTConSameHeadByID(t *testing.T) {
	a := &TCon{ID: 5, DisplayName: "List"}
	b := &TCon{ID: 5, DisplayName: "List"}
	c := &TCon{ID: 6, DisplayName: "List"}
	if !a.SameHead(b) {
		t.Fatalf("expected same id to match")
	}
	if a.SameHead(c) {
		t.Fatalf("expected different id not to match")
	}
}

func TestIsAny(t *testing.T) {
	if !IsAny(Any) {
		t.Fatalf("expected Any to report IsAny")
	}
	if IsAny(&TCon{ID: 1, DisplayName: "Int"}) {
		t.Fatalf("expected a concrete TCon not to report IsAny")
	}
}
