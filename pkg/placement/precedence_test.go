package placement

import (
	"testing"

	"github.com/exploro/maprando/pkg/config"
	"github.com/exploro/maprando/pkg/model"
	"github.com/exploro/maprando/pkg/rng"
)

func TestGeneratePrecedenceContainsEveryGroupItem(t *testing.T) {
	groups := PriorityGroups{
		Early:  []model.Item{model.Morph, model.Bombs},
		Normal: []model.Item{model.SpeedBooster},
		Late:   []model.Item{model.SpaceJump},
	}
	cfg := config.Default()
	r := rng.NewFromSeed(1)

	order := GeneratePrecedence(cfg, groups, r)

	want := map[model.Item]bool{model.Morph: true, model.Bombs: true, model.SpeedBooster: true, model.SpaceJump: true}
	got := map[model.Item]bool{}
	for _, it := range order {
		got[it] = true
	}
	for it := range want {
		if !got[it] {
			t.Fatalf("expected %v in generated precedence %v", it, order)
		}
	}
}

func TestApplyProgressionPlacementPrependsUnderSlow(t *testing.T) {
	cfg := config.Default()
	cfg.ProgressionRate = config.ProgressionSlow
	order := applyProgressionPlacement(cfg, []model.Item{model.Morph})
	if order[0] != model.Nothing || order[1] != model.Missile {
		t.Fatalf("slow progression should prepend Nothing, Missile; got %v", order)
	}
}

func TestApplyProgressionPlacementAppendsOtherwise(t *testing.T) {
	cfg := config.Default()
	cfg.ProgressionRate = config.ProgressionUniform
	order := applyProgressionPlacement(cfg, []model.Item{model.Morph})
	last := order[len(order)-1]
	if last != model.Missile {
		t.Fatalf("uniform progression should append filler at the end, got %v", order)
	}
}

func TestSwapSpazerBeforePlasma(t *testing.T) {
	order := []model.Item{model.Plasma, model.Spazer}
	swapSpazerBeforePlasma(order)
	if order[0] != model.Spazer || order[1] != model.Plasma {
		t.Fatalf("expected Spazer before Plasma after swap, got %v", order)
	}
}
