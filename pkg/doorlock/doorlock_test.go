package doorlock

import (
	"testing"

	"github.com/exploro/maprando/pkg/config"
)

func TestIsEligibleRejectsDenyListedKinds(t *testing.T) {
	deny := []DoorKind{DoorGray, DoorSave, DoorMapStation, DoorRefillStation, DoorPantsInternal, DoorItemAdjacent}
	for _, kind := range deny {
		if IsEligible(Candidate{Kind: kind}) {
			t.Fatalf("door kind %v should be deny-listed", kind)
		}
	}
	if !IsEligible(Candidate{Kind: DoorOrdinary}) {
		t.Fatalf("an ordinary door should be eligible")
	}
}

func TestAssignRespectsBlueMode(t *testing.T) {
	cfg := config.Default()
	cfg.DoorsMode = config.DoorsModeBlue
	got := Assign(cfg, []Candidate{{Kind: DoorOrdinary, MapTileX: 1, MapTileY: 1}}, 1)
	if got != nil {
		t.Fatalf("blue doors mode should lock nothing, got %v", got)
	}
}

func TestAssignNeverLocksTwoDoorsOnSameTile(t *testing.T) {
	cfg := config.Default()
	cfg.DoorsMode = config.DoorsModeAmmo
	doors := []Candidate{
		{Kind: DoorOrdinary, MapTileX: 5, MapTileY: 5, RoomIdx: 1, NodeIdx: 1},
		{Kind: DoorOrdinary, MapTileX: 5, MapTileY: 5, RoomIdx: 2, NodeIdx: 1},
	}
	locked := Assign(cfg, doors, 42)
	if len(locked) != 1 {
		t.Fatalf("expected exactly one lock assigned for two doors sharing a tile, got %d", len(locked))
	}
}

func TestAssignAmmoModeMatchesExactColorCounts(t *testing.T) {
	cfg := config.Default()
	cfg.DoorsMode = config.DoorsModeAmmo

	var doors []Candidate
	for i := 0; i < 200; i++ {
		doors = append(doors, Candidate{
			Kind: DoorOrdinary, RoomIdx: i, NodeIdx: 1,
			MapTileX: i, MapTileY: i,
		})
	}

	locked := Assign(cfg, doors, 99)
	if len(locked) != 55 {
		t.Fatalf("expected exactly 55 locked doors, got %d", len(locked))
	}

	counts := map[LockColor]int{}
	for _, d := range locked {
		counts[d.Color]++
	}
	if counts[LockMissile] != 30 || counts[LockSuper] != 15 || counts[LockPowerBomb] != 10 {
		t.Fatalf("expected 30 missile / 15 super / 10 power_bomb, got %+v", counts)
	}
}

func TestAssignBeamModeMatchesExactColorCounts(t *testing.T) {
	cfg := config.Default()
	cfg.DoorsMode = config.DoorsModeBeam

	var doors []Candidate
	for i := 0; i < 200; i++ {
		doors = append(doors, Candidate{
			Kind: DoorOrdinary, RoomIdx: i, NodeIdx: 1,
			MapTileX: i, MapTileY: i, BeamEligible: true,
		})
	}

	locked := Assign(cfg, doors, 99)
	if len(locked) != 55 {
		t.Fatalf("expected exactly 55 locked doors, got %d", len(locked))
	}

	counts := map[LockColor]int{}
	for _, d := range locked {
		counts[d.Color]++
	}
	if counts[LockMissile] != 18 || counts[LockSuper] != 10 || counts[LockPowerBomb] != 7 {
		t.Fatalf("expected 18/10/7 ammo locks, got %+v", counts)
	}
	for _, c := range []LockColor{LockCharge, LockIce, LockWave, LockSpazer, LockPlasma} {
		if counts[c] != 4 {
			t.Fatalf("expected exactly 4 locks of color %v, got %d", c, counts[c])
		}
	}
}

func TestAssignIsDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.DoorsMode = config.DoorsModeBeam
	doors := []Candidate{
		{Kind: DoorOrdinary, MapTileX: 1, MapTileY: 1, RoomIdx: 1, BeamEligible: true},
		{Kind: DoorOrdinary, MapTileX: 2, MapTileY: 2, RoomIdx: 1, BeamEligible: true},
		{Kind: DoorOrdinary, MapTileX: 3, MapTileY: 3, RoomIdx: 2, BeamEligible: true},
	}
	a := Assign(cfg, doors, 7)
	b := Assign(cfg, doors, 7)
	if len(a) != len(b) {
		t.Fatalf("same seed should assign the same number of locks, got %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed should assign identical locks at index %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
