package placement

import (
	"testing"

	"github.com/exploro/maprando/pkg/model"
)

func TestBaseItemCountsMatchesSpecTable(t *testing.T) {
	counts := BaseItemCounts()
	if counts[model.Super] != 10 {
		t.Fatalf("expected 10 supers, got %d", counts[model.Super])
	}
	if counts[model.PowerBomb] != 10 {
		t.Fatalf("expected 10 power bombs, got %d", counts[model.PowerBomb])
	}
	if counts[model.ETank] != 14 {
		t.Fatalf("expected 14 e-tanks, got %d", counts[model.ETank])
	}
	if counts[model.ReserveTank] != 4 {
		t.Fatalf("expected 4 reserve tanks, got %d", counts[model.ReserveTank])
	}
	if counts[model.Morph] != 1 {
		t.Fatalf("expected exactly 1 morph ball, got %d", counts[model.Morph])
	}
}

func TestRidleyProficiencyTankFloorOrdering(t *testing.T) {
	want := []int{11, 9, 7, 3}
	for tier, w := range want {
		if got := RidleyProficiencyTankFloor(tier); got != w {
			t.Fatalf("tier %d floor = %d, want %d", tier, got, w)
		}
	}
}

func TestEnsureTankFloorAddsETanksOnly(t *testing.T) {
	counts := map[model.Item]int{model.ETank: 2, model.ReserveTank: 1}
	EnsureTankFloor(counts, 11)
	if counts[model.ReserveTank] != 1 {
		t.Fatalf("EnsureTankFloor should never touch ReserveTank count, got %d", counts[model.ReserveTank])
	}
	if counts[model.ETank]+counts[model.ReserveTank] < 11 {
		t.Fatalf("combined tank count should reach the floor, got %d", counts[model.ETank]+counts[model.ReserveTank])
	}
}

func TestCapByLocationCountShrinksToFit(t *testing.T) {
	counts := map[model.Item]int{model.Missile: 50, model.Morph: 1}
	CapByLocationCount(counts, 10)
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 10 {
		t.Fatalf("expected total capped to 10 locations, got %d", total)
	}
}

func TestApplyPoolOverridesAddsAndFloorsAtZero(t *testing.T) {
	counts := map[model.Item]int{model.ETank: 5, model.Super: 10}
	ApplyPoolOverrides(counts, map[string]int{"ETank": 3, "Super": -20, "NotAnItem": 9})
	if counts[model.ETank] != 8 {
		t.Fatalf("expected ETank raised to 8, got %d", counts[model.ETank])
	}
	if counts[model.Super] != 0 {
		t.Fatalf("expected Super floored at 0, got %d", counts[model.Super])
	}
}

func TestSubtractStartingItemsRemovesOneCopyPerOccurrence(t *testing.T) {
	counts := map[model.Item]int{model.Morph: 1, model.Missile: 10}
	SubtractStartingItems(counts, []model.Item{model.Morph, model.Missile, model.Missile})
	if counts[model.Morph] != 0 {
		t.Fatalf("expected Morph consumed by starting item, got %d", counts[model.Morph])
	}
	if counts[model.Missile] != 8 {
		t.Fatalf("expected Missile subtracted once per occurrence in the starting list, got %d", counts[model.Missile])
	}
}

func TestCapByLocationCountFillsShortfallWithMissiles(t *testing.T) {
	counts := map[model.Item]int{model.Morph: 1}
	CapByLocationCount(counts, 5)
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 5 {
		t.Fatalf("expected shortfall filled with missiles up to 5, got total %d", total)
	}
}
