package traversal

import (
	"testing"

	"github.com/exploro/maprando/pkg/model"
)

func TestApplyRequirementFreeAndNever(t *testing.T) {
	g := model.NewGlobalState()
	local := model.NewLocalState()

	if got := ApplyRequirement(model.Free(), g, local); got.IsImpossible() {
		t.Fatalf("Free() should never be impossible")
	}
	if got := ApplyRequirement(model.Never(), g, local); !got.IsImpossible() {
		t.Fatalf("Never() should always be impossible")
	}
}

func TestApplyRequirementGatesOnTechAndItem(t *testing.T) {
	g := model.NewGlobalState()
	local := model.NewLocalState()

	if got := ApplyRequirement(model.TechReq(1), g, local); !got.IsImpossible() {
		t.Fatalf("missing tech should be impossible")
	}
	g.EnableTech(1)
	if got := ApplyRequirement(model.TechReq(1), g, local); got.IsImpossible() {
		t.Fatalf("enabled tech should succeed")
	}

	if got := ApplyRequirement(model.ItemReq(model.Morph), g, local); !got.IsImpossible() {
		t.Fatalf("missing item should be impossible")
	}
	g.Collect(model.Morph)
	if got := ApplyRequirement(model.ItemReq(model.Morph), g, local); got.IsImpossible() {
		t.Fatalf("collected item should succeed")
	}
}

func TestApplyRequirementEnergyExceedsMaxima(t *testing.T) {
	g := model.NewGlobalState() // MaxEnergy 99
	local := model.NewLocalState()

	got := ApplyRequirement(model.EnergyReq(99), g, local)
	if !got.IsImpossible() {
		t.Fatalf("spending all 99 energy should exceed budget (1 must remain)")
	}

	got = ApplyRequirement(model.EnergyReq(50), g, local)
	if got.IsImpossible() {
		t.Fatalf("spending 50 of 99 energy should be fine")
	}
	if got.EnergyUsed != 50 {
		t.Fatalf("expected EnergyUsed 50, got %v", got.EnergyUsed)
	}
}

func TestApplyRequirementAndShortCircuits(t *testing.T) {
	g := model.NewGlobalState()
	local := model.NewLocalState()
	req := model.And(model.Free(), model.Never(), model.EnergyReq(5))

	got := ApplyRequirement(req, g, local)
	if !got.IsImpossible() {
		t.Fatalf("And with a Never child must be impossible")
	}
}

func TestApplyRequirementOrPicksCheapestSurvivor(t *testing.T) {
	g := model.NewGlobalState()
	local := model.NewLocalState()
	req := model.Or(model.Never(), model.EnergyReq(30), model.EnergyReq(10))

	got := ApplyRequirement(req, g, local)
	if got.IsImpossible() {
		t.Fatalf("Or with a viable child should succeed")
	}
	if got.EnergyUsed != 10 {
		t.Fatalf("Or should pick the cheapest surviving branch, got EnergyUsed=%v", got.EnergyUsed)
	}
}

func TestApplyLinkRequiresPriorShinecharge(t *testing.T) {
	g := model.NewGlobalState()
	local := model.NewLocalState()
	link := model.NewLink(0, 1, model.Free()).WithShinecharge(true, false)

	if got := ApplyLink(link, g, local); !got.IsImpossible() {
		t.Fatalf("a link requiring a prior shinecharge should fail without one")
	}

	local.ShinechargeFramesRemaining = 10
	if got := ApplyLink(link, g, local); got.IsImpossible() {
		t.Fatalf("a link requiring a prior shinecharge should succeed when one is held")
	}
}

func TestApplyLinkEndsWithShinechargeOverridesDecay(t *testing.T) {
	g := model.NewGlobalState()
	local := model.NewLocalState()
	link := model.NewLink(0, 1, model.Free()).WithShinecharge(false, true)

	got := ApplyLink(link, g, local)
	if got.IsImpossible() {
		t.Fatalf("link should succeed")
	}
	if got.ShinechargeFramesRemaining != 85 {
		t.Fatalf("expected a fresh 85-frame shinecharge on arrival, got %d", got.ShinechargeFramesRemaining)
	}
}
