package placement

import (
	"github.com/exploro/maprando/pkg/gamedata"
	"github.com/exploro/maprando/pkg/model"
	"github.com/exploro/maprando/pkg/traversal"
)

// runTraversals runs a forward and reverse search from hub under global for
// every cost metric, returning the per-metric result slices used both for
// bireachability classification and for DebugData snapshots.
func runTraversals(engine *traversal.Engine, global *model.GlobalState, hub model.VertexID, hubLocal model.LocalState, trail *traversal.Trail) (forward, reverse []*traversal.TraverseResult) {
	for metric := 0; metric < model.NumCostMetrics; metric++ {
		forward = append(forward, engine.Traverse(metric, global, hub, hubLocal, true, trail))
		reverse = append(reverse, engine.Traverse(metric, global, hub, hubLocal, false, trail))
	}
	return forward, reverse
}

// closeFixedPoint repeatedly sets any bireachable flag and unlocks any
// bireachable locked door until neither traversal result changes, per
// §4.3's phase 1. The Mother Brain flag is special-cased to only require
// forward-reachability, since its location sits past a point of no return
// the reverse search cannot walk back through.
func closeFixedPoint(engine *traversal.Engine, gd *gamedata.GameData, global *model.GlobalState, hub model.VertexID, trail *traversal.Trail) (forward, reverse []*traversal.TraverseResult) {
	for {
		forward, reverse = runTraversals(engine, global, hub, model.NewLocalState(), trail)
		bireachable := traversal.GetBireachableVertices(forward, reverse)
		forwardOnly := traversal.GetOneWayReachableVertices(forward)

		bireachSet := vertexSet(bireachable)
		forwardSet := vertexSet(forwardOnly)

		changed := false

		for id, name := range gd.FlagNames {
			_ = name
			if global.HasFlag(id) {
				continue
			}
			vid, ok := flagVertex(gd, id)
			if !ok {
				continue
			}
			reachable := bireachSet[vid]
			if id == gd.MotherBrainDefeatedFlagID {
				reachable = forwardSet[vid]
			}
			if reachable {
				global.SetFlag(id)
				changed = true
			}
		}

		for pairID, vid := range gd.NodeDoorUnlock {
			_ = pairID
			if global.DoorUnlocked(vid) {
				continue
			}
			if bireachSet[model.VertexID(vid)] {
				global.UnlockDoor(vid)
				changed = true
			}
		}

		if !changed {
			return forward, reverse
		}
	}
}

func vertexSet(ids []model.VertexID) map[model.VertexID]bool {
	out := make(map[model.VertexID]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

// flagVertex resolves which vertex, once bireachable, triggers a given flag
// (a boss's arena node, an event trigger node). It reads
// gd.NodeDoorUnlock under the sentinel key {-1, flagID}; a flag with no such
// entry has no vertex and is never set.
func flagVertex(gd *gamedata.GameData, flagID int) (model.VertexID, bool) {
	vid, ok := gd.NodeDoorUnlock[[2]int{-1, flagID}]
	return model.VertexID(vid), ok
}

// Classification buckets every item location by its current reachability.
type Classification struct {
	PickUp             []*ItemLocationState // already placed, uncollected, now bireachable
	UnplacedBireachable []*ItemLocationState
	UnplacedOneWay      []*ItemLocationState
	Other               []*ItemLocationState
}

// Classify partitions state.Locations per §4.3 phase 2.
func Classify(state *RandomizationState, forward, reverse []*traversal.TraverseResult) Classification {
	bireachSet := vertexSet(traversal.GetBireachableVertices(forward, reverse))
	oneWaySet := vertexSet(traversal.GetOneWayReachableVertices(forward))

	var c Classification
	for _, loc := range state.Locations {
		loc.Reachable = bireachSet[loc.Vertex] || oneWaySet[loc.Vertex]
		loc.Bireachable = bireachSet[loc.Vertex]
		if loc.Bireachable {
			loc.BireachableVertexID = loc.Vertex
		} else {
			loc.BireachableVertexID = -1
		}

		switch {
		case loc.Placed && !loc.Collected && bireachSet[loc.Vertex]:
			c.PickUp = append(c.PickUp, loc)
		case !loc.Placed && bireachSet[loc.Vertex]:
			c.UnplacedBireachable = append(c.UnplacedBireachable, loc)
		case !loc.Placed && oneWaySet[loc.Vertex]:
			c.UnplacedOneWay = append(c.UnplacedOneWay, loc)
		default:
			c.Other = append(c.Other, loc)
		}
	}
	return c
}
