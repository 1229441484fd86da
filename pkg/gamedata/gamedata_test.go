package gamedata

import (
	"testing"

	"github.com/exploro/maprando/pkg/model"
)

func TestNewGameDataMapsAreUsable(t *testing.T) {
	gd := New()
	gd.Rooms[1] = &RoomGeometry{RoomID: 1, Name: "Landing Site", NumNodes: 4}
	gd.NodeDoorUnlock[[2]int{1, 2}] = 42

	if gd.Rooms[1].Name != "Landing Site" {
		t.Fatalf("room lookup failed")
	}
	if gd.NodeDoorUnlock[[2]int{1, 2}] != 42 {
		t.Fatalf("node door unlock lookup failed")
	}
}

func TestWeaponMaskReflectsCollectedBeams(t *testing.T) {
	g := model.NewGlobalState()
	if WeaponMask(g) != 0 {
		t.Fatalf("expected zero weapon mask on a fresh state")
	}
	g.Collect(model.Wave)
	g.Collect(model.Plasma)
	mask := WeaponMask(g)
	if mask&(1<<2) == 0 {
		t.Fatalf("expected wave bit set in weapon mask %#x", mask)
	}
	if mask&(1<<4) == 0 {
		t.Fatalf("expected plasma bit set in weapon mask %#x", mask)
	}
}
