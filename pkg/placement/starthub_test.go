package placement

import (
	"testing"

	"github.com/exploro/maprando/pkg/config"
	"github.com/exploro/maprando/pkg/gamedata"
	"github.com/exploro/maprando/pkg/model"
	"github.com/exploro/maprando/pkg/traversal"
)

// TestSelectStartAndHubSkipsACandidateWithAnUnsatisfiableArrivalRequirement
// regression-tests the fix where a random start's arrival requirement was
// never actually evaluated: a candidate tagged "with_spacejump_below" needs
// SpaceJump on arrival, which a fresh attempt never has, so it must be
// skipped in favor of a plain candidate with no entrance condition at all.
func TestSelectStartAndHubSkipsACandidateWithAnUnsatisfiableArrivalRequirement(t *testing.T) {
	gd := gamedata.New()

	badStart := gamedata.StartLocation{RoomID: 10, NodeID: 1, Name: "bad"}
	goodStart := gamedata.StartLocation{RoomID: 20, NodeID: 1, Name: "good"}
	gd.StartLocations = []gamedata.StartLocation{badStart, goodStart}
	gd.NodeEntranceConditions[[2]int{10, 1}] = []string{"with_spacejump_below"}

	hubLoc := gamedata.ItemLocation{RoomID: 30, NodeID: 1, Name: "hub"}
	gd.HubLocations = []gamedata.ItemLocation{hubLoc}

	goodVertex := internVertex(gd, 20, 1)
	hubVertex := internVertex(gd, 30, 1)

	links := []*model.Link{
		model.NewLink(goodVertex, hubVertex, model.Free()).WithLabel("to hub"),
		model.NewLink(hubVertex, goodVertex, model.Free()).WithLabel("from hub"),
	}
	engine := traversal.NewEngine(gd.Interner.Len(), links)
	trail := traversal.NewTrail()

	cfg := &config.DifficultyConfig{StartLocationMode: config.StartRandom}

	result, err := SelectStartAndHub(cfg, gd, engine, model.NewGlobalState(), 0, 0, trail, 42)
	if err != nil {
		t.Fatalf("SelectStartAndHub returned error: %v", err)
	}
	if result.Start != goodVertex {
		t.Fatalf("expected the good start (no unsatisfiable arrival requirement) to be chosen, got vertex %d", result.Start)
	}
	if result.Hub != hubVertex {
		t.Fatalf("expected the hub to be the one reachable from the good start, got vertex %d", result.Hub)
	}
}

// TestSelectStartAndHubExhaustsWhenEveryCandidateIsUnsatisfiable confirms
// ErrStartLocationSearchExhausted surfaces when no candidate's arrival
// requirement can ever be met.
func TestSelectStartAndHubExhaustsWhenEveryCandidateIsUnsatisfiable(t *testing.T) {
	gd := gamedata.New()

	badStart := gamedata.StartLocation{RoomID: 10, NodeID: 1, Name: "bad"}
	gd.StartLocations = []gamedata.StartLocation{badStart}
	gd.NodeEntranceConditions[[2]int{10, 1}] = []string{"with_spacejump_below"}

	engine := traversal.NewEngine(gd.Interner.Len(), nil)
	trail := traversal.NewTrail()
	cfg := &config.DifficultyConfig{StartLocationMode: config.StartRandom}

	_, err := SelectStartAndHub(cfg, gd, engine, model.NewGlobalState(), 0, 0, trail, 1)
	if err != ErrStartLocationSearchExhausted {
		t.Fatalf("expected ErrStartLocationSearchExhausted, got %v", err)
	}
}
