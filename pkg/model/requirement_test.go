package model

import "testing"

func TestAndOrCollapseSingleChild(t *testing.T) {
	leaf := TechReq(5)
	if And(leaf) != leaf {
		t.Fatalf("And of one child should return that child unwrapped")
	}
	if Or(leaf) != leaf {
		t.Fatalf("Or of one child should return that child unwrapped")
	}
}

func TestRequirementStringRendersCompounds(t *testing.T) {
	req := And(ItemReq(Morph), Or(MissilesReq(5), SupersReq(1)))
	got := req.String()
	want := "And(Item(Morph), Or(Missiles(5), Supers(1)))"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestNilRequirementStringIsNever(t *testing.T) {
	var r *Requirement
	if r.String() != "Never" {
		t.Fatalf("nil Requirement should render as Never, got %q", r.String())
	}
}
