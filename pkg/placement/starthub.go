package placement

import (
	"github.com/exploro/maprando/pkg/config"
	"github.com/exploro/maprando/pkg/gamedata"
	"github.com/exploro/maprando/pkg/model"
	"github.com/exploro/maprando/pkg/preprocessor"
	"github.com/exploro/maprando/pkg/rng"
	"github.com/exploro/maprando/pkg/traversal"
)

// StartHubResult is the outcome of SelectStartAndHub: the chosen vertices
// and the traversal results computed while validating them. Randomize reads
// only Start, Hub and StartingItems; the first placement step runs its own
// traversals.
type StartHubResult struct {
	Start model.VertexID
	Hub   model.VertexID

	Forward  []*traversal.TraverseResult // anchored on the start's post-arrival local state
	Forward0 []*traversal.TraverseResult // anchored on an empty local state
	Reverse  []*traversal.TraverseResult

	// StartingItems are the items the chosen start location already grants
	// on arrival, resolved from gamedata.StartLocation.StartingItems.
	StartingItems []model.Item
}

const defaultNumStartAttempts = 64

// SelectStartAndHub implements §4.4. Ship mode returns the fixed ship
// location unconditionally. Escape mode is handled by the caller before
// this is ever invoked, since it short-circuits the entire randomizer
// rather than merely picking a start. Random mode samples candidates and
// validates each against the three traversal conditions.
func SelectStartAndHub(cfg *config.DifficultyConfig, gd *gamedata.GameData, engine *traversal.Engine, global *model.GlobalState, shipVertex, shipHub model.VertexID, trail *traversal.Trail, seed uint64) (*StartHubResult, error) {
	if cfg.StartLocationMode == config.StartShip {
		return buildStartHubResult(engine, global, shipVertex, shipHub, trail), nil
	}

	r := rng.NewFromSeed(seed)
	candidates := gd.StartLocations
	if len(candidates) == 0 {
		return buildStartHubResult(engine, global, shipVertex, shipHub, trail), nil
	}

	for attempt := 0; attempt < defaultNumStartAttempts; attempt++ {
		idx := r.Intn(len(candidates))
		startLoc := candidates[idx]
		startVertex := gd.Interner.Intern(model.NewVertexKey(startLoc.RoomID, startLoc.NodeID, 0, nil))

		arrivalReq := preprocessor.ArrivalRequirement(gd, startLoc.RoomID, startLoc.NodeID)
		arrivalLocal := traversal.ApplyRequirement(arrivalReq, global, model.NewLocalState())
		if arrivalLocal.IsImpossible() {
			continue // this start's arrival requirement can never be satisfied; try another candidate
		}

		forward0 := engine.Traverse(model.MetricFull, global, startVertex, model.NewLocalState(), true, trail)
		reverse := engine.Traverse(model.MetricFull, global, startVertex, model.NewLocalState(), false, trail)
		forward := engine.Traverse(model.MetricFull, global, startVertex, arrivalLocal, true, trail)

		hub, ok := findUsableHub(gd, forward, forward0, reverse)
		if !ok {
			continue
		}

		return &StartHubResult{
			Start:         startVertex,
			Hub:           hub,
			Forward:       []*traversal.TraverseResult{forward},
			Forward0:      []*traversal.TraverseResult{forward0},
			Reverse:       []*traversal.TraverseResult{reverse},
			StartingItems: startingItemsFor(startLoc),
		}, nil
	}

	return nil, ErrStartLocationSearchExhausted
}

// startingItemsFor resolves a start location's named starting items to
// model.Item values, silently skipping any name gamedata does not recognize
// (see model.ItemFromName).
func startingItemsFor(loc gamedata.StartLocation) []model.Item {
	var items []model.Item
	for _, name := range loc.StartingItems {
		if it, ok := model.ItemFromName(name); ok {
			items = append(items, it)
		}
	}
	return items
}

func findUsableHub(gd *gamedata.GameData, forward, forward0, reverse *traversal.TraverseResult) (model.VertexID, bool) {
	for _, hubLoc := range gd.HubLocations {
		hubVertex := gd.Interner.Intern(model.NewVertexKey(hubLoc.RoomID, hubLoc.NodeID, 0, nil))
		if !forward.Reachable[hubVertex] {
			continue
		}
		if !forward0.Reachable[hubVertex] || !reverse.Reachable[hubVertex] {
			continue
		}
		return hubVertex, true
	}
	return 0, false
}

func buildStartHubResult(engine *traversal.Engine, global *model.GlobalState, start, hub model.VertexID, trail *traversal.Trail) *StartHubResult {
	forward := engine.Traverse(model.MetricFull, global, start, model.NewLocalState(), true, trail)
	reverse := engine.Traverse(model.MetricFull, global, start, model.NewLocalState(), false, trail)
	return &StartHubResult{
		Start:    start,
		Hub:      hub,
		Forward:  []*traversal.TraverseResult{forward},
		Forward0: []*traversal.TraverseResult{forward},
		Reverse:  []*traversal.TraverseResult{reverse},
	}
}
