package spoiler

import (
	"testing"

	"github.com/exploro/maprando/pkg/gamedata"
	"github.com/exploro/maprando/pkg/model"
	"github.com/exploro/maprando/pkg/placement"
	"github.com/exploro/maprando/pkg/traversal"
)

func TestBuildWithNoCurrentDebugDataStillReturnsAllItems(t *testing.T) {
	gd := gamedata.New()
	locs := []gamedata.ItemLocation{{RoomID: 1, NodeID: 1, Name: "Morph Ball"}}
	state := placement.NewRandomizationState(locs, gd.Interner)
	state.Locations[0].Item = model.Morph
	state.Locations[0].Placed = true

	engine := traversal.NewEngine(gd.Interner.Len(), nil)

	log, err := Build(state, gd, engine, nil)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if log.AllItems["Morph Ball"] != "Morph" {
		t.Fatalf("expected Morph Ball -> Morph in AllItems, got %v", log.AllItems)
	}
}

func TestBuildWithNoCurrentStateStillReportsAllRooms(t *testing.T) {
	gd := gamedata.New()
	gd.Rooms[1] = &gamedata.RoomGeometry{
		RoomID: 1, Name: "Landing Site",
		NodeTileCoords: map[int][2]int{1: {3, 4}, 2: {5, 6}},
	}

	state := placement.NewRandomizationState(nil, gd.Interner)
	state.FirstReachableStep[[2]int{1, 1}] = 0
	engine := traversal.NewEngine(gd.Interner.Len(), nil)

	log, err := Build(state, gd, engine, nil)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if len(log.Summary) != 0 || len(log.Items) != 0 {
		t.Fatalf("expected empty summary/items for a state with no current traversal, got %+v / %+v", log.Summary, log.Items)
	}
	if len(log.AllRooms) != 1 {
		t.Fatalf("expected all_rooms to report the one known room regardless of summary/items, got %v", log.AllRooms)
	}
	room := log.AllRooms[0]
	if room.RoomID != 1 || room.Name != "Landing Site" || len(room.Nodes) != 2 {
		t.Fatalf("unexpected room reachability entry: %+v", room)
	}
	var node1, node2 *NodeReachability
	for i := range room.Nodes {
		switch room.Nodes[i].NodeID {
		case 1:
			node1 = &room.Nodes[i]
		case 2:
			node2 = &room.Nodes[i]
		}
	}
	if node1 == nil || node1.FirstStep != 0 {
		t.Fatalf("expected node 1 to report first-reached step 0, got %+v", node1)
	}
	if node2 == nil || node2.FirstStep != -1 {
		t.Fatalf("expected node 2 to report -1 (never reached), got %+v", node2)
	}
}

func TestBuildDefaultsToNoEscapeTimer(t *testing.T) {
	gd := gamedata.New()
	state := placement.NewRandomizationState(nil, gd.Interner)
	engine := traversal.NewEngine(0, nil)

	log, err := Build(state, gd, engine, nil)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if log.Escape.TimeAllottedSeconds != 0 {
		t.Fatalf("expected zero-value escape spoiler from the default timer")
	}
}
