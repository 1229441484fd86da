package placement

import (
	"testing"

	"github.com/exploro/maprando/pkg/config"
)

func TestNumKeyItemsToPlaceSlowIsAlwaysOne(t *testing.T) {
	cfg := config.Default()
	cfg.ProgressionRate = config.ProgressionSlow
	if got := NumKeyItemsToPlace(cfg, 10, 100, 5, 5); got != 1 {
		t.Fatalf("slow progression should always place exactly 1 key item per step, got %d", got)
	}
}

func TestNumKeyItemsToPlaceEndgameOverride(t *testing.T) {
	cfg := config.Default()
	cfg.ProgressionRate = config.ProgressionUniform
	// totalRemaining (15) < (b+o)+20 = 25, so the endgame override applies:
	// place all remaining key items, bounded by b.
	got := NumKeyItemsToPlace(cfg, 10, 15, 3, 2)
	if got != 3 {
		t.Fatalf("endgame override should place min(keyRemaining, b) = 3, got %d", got)
	}
}

func TestNumKeyItemsToPlaceNeverExceedsBireachableOrRemaining(t *testing.T) {
	cfg := config.Default()
	cfg.ProgressionRate = config.ProgressionFast
	got := NumKeyItemsToPlace(cfg, 2, 200, 50, 50)
	if got > 2 {
		t.Fatalf("should never exceed keyRemaining, got %d", got)
	}
}

func TestNumKeyItemsToPlaceZeroWhenNoKeysRemain(t *testing.T) {
	cfg := config.Default()
	if got := NumKeyItemsToPlace(cfg, 0, 100, 5, 5); got != 0 {
		t.Fatalf("expected 0 when no key items remain, got %d", got)
	}
}
