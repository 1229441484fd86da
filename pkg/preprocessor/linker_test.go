package preprocessor

import (
	"testing"

	"github.com/exploro/maprando/pkg/gamedata"
	"github.com/exploro/maprando/pkg/mapdata"
)

func TestBuildLinksSimpleDoorProducesFreeLink(t *testing.T) {
	gd := gamedata.New()
	m := &mapdata.Map{
		Rooms: []mapdata.RoomPlacement{{}, {}},
		Area:  []int{0, 0},
		Doors: []mapdata.Door{
			{FromRoomIdx: 1, FromNodeIdx: 1, ToRoomIdx: 2, ToNodeIdx: 1, Bidirectional: true},
		},
	}

	links := BuildLinks(gd, m, nil)
	if len(links) != 2 {
		t.Fatalf("expected 2 links (one per direction) for a plain bidirectional door, got %d", len(links))
	}
}

func TestBuildLinksToiletDowngradesGMode(t *testing.T) {
	gd := gamedata.New()
	gd.ToiletRoomIdx = 2
	gd.NodeEntranceConditions[[2]int{2, 1}] = []string{"with_gmode"}

	m := &mapdata.Map{
		Rooms: []mapdata.RoomPlacement{{}, {}},
		Doors: []mapdata.Door{
			{FromRoomIdx: 1, FromNodeIdx: 1, ToRoomIdx: 2, ToNodeIdx: 1},
		},
	}
	gd.NodeExitConditions[[2]int{1, 1}] = []string{"normally"}

	links := BuildLinks(gd, m, nil)
	if len(links) != 1 {
		t.Fatalf("expected exactly one synthesized link into the Toilet, got %d", len(links))
	}
}
