package placement

import (
	"fmt"

	"github.com/exploro/maprando/pkg/config"
	"github.com/exploro/maprando/pkg/gamedata"
	"github.com/exploro/maprando/pkg/model"
	"github.com/exploro/maprando/pkg/rng"
	"github.com/exploro/maprando/pkg/traversal"
)

// Randomizer holds everything one attempt needs that does not itself
// change across attempts: the static game data, the preprocessed link
// engine, the active difficulty config, the fixed ship start/hub, the
// forced-mode tier ladder, and the key-item priority groups.
type Randomizer struct {
	GameData *gamedata.GameData
	Engine   *traversal.Engine
	Config   *config.DifficultyConfig
	Priority PriorityGroups
	Tiers    []DifficultyTier

	ShipVertex model.VertexID
	ShipHub    model.VertexID
}

// NewRandomizer constructs a Randomizer ready to run repeated attempts
// against the same game data, map and difficulty config.
func NewRandomizer(gd *gamedata.GameData, engine *traversal.Engine, cfg *config.DifficultyConfig, priority PriorityGroups, tiers []DifficultyTier, shipVertex, shipHub model.VertexID) *Randomizer {
	return &Randomizer{
		GameData: gd, Engine: engine, Config: cfg,
		Priority: priority, Tiers: tiers,
		ShipVertex: shipVertex, ShipHub: shipHub,
	}
}

// oneWayReachableLimit is the threshold on unplaced one-way-reachable
// locations above which a key-item placement is rejected as not providing
// progression, even if it made something newly bireachable.
const oneWayReachableLimit = 20

// Randomize runs one full placement attempt for the given attempt number,
// seed, and display seed name, returning the resulting RandomizationState
// or one of the sentinel errors in errors.go.
func (rz *Randomizer) Randomize(attemptNum int, seed uint64, displaySeedName string) (*RandomizationState, error) {
	if rz.Config.StartLocationMode == config.StartEscape {
		return rz.dummyEscapeState(), nil
	}

	trail := traversal.NewTrail()
	r := rng.NewFromSeed(seed)

	startHub, err := SelectStartAndHub(rz.Config, rz.GameData, rz.Engine, model.NewGlobalState(), rz.ShipVertex, rz.ShipHub, trail, seed)
	if err != nil {
		return nil, err
	}

	state := NewRandomizationState(rz.GameData.ItemLocations, rz.GameData.Interner)
	state.StartVertex = startHub.Start
	state.HubVertex = startHub.Hub
	state.StartingItems = startHub.StartingItems

	if err := rz.init(state, r); err != nil {
		return nil, err
	}

	for {
		progressed, err := rz.step(state, attemptNum, trail)
		if err != nil {
			return nil, err
		}
		state.Step++
		if rz.beatable(state) {
			break
		}
		if !progressed {
			return nil, ErrGameNotBeatable
		}
		if state.Step == 1 && rz.Config.EarlySave && !rz.saveReachable(state, trail) {
			return nil, ErrNoAccessibleSaveAtStepOne
		}
	}

	rz.finish(state)

	for it, count := range state.ItemsRemaining {
		if count > 0 && it.IsUnique() {
			return nil, ErrKeyItemsNotCollectible
		}
	}

	return state, nil
}

func (rz *Randomizer) dummyEscapeState() *RandomizationState {
	state := NewRandomizationState(nil, rz.GameData.Interner)
	for _, it := range model.AllItems() {
		if it != model.Nothing {
			state.Global.Collect(it)
		}
	}
	return state
}

func (rz *Randomizer) init(state *RandomizationState, r *rng.RNG) error {
	counts := BaseItemCounts()
	ApplyPoolOverrides(counts, rz.Config.ItemPoolOverrides)
	EnsureTankFloor(counts, RidleyProficiencyTankFloor(rz.Config.RidleyProficiency))
	SubtractStartingItems(counts, state.StartingItems)
	CapByLocationCount(counts, len(state.Locations))
	state.ItemsRemaining = counts
	state.Precedence = GeneratePrecedence(rz.Config, rz.Priority, r)

	for _, it := range state.StartingItems {
		state.Global.Collect(it)
	}
	return nil
}

func (rz *Randomizer) beatable(state *RandomizationState) bool {
	return state.Global.HasFlag(rz.GameData.MotherBrainDefeatedFlagID)
}

func (rz *Randomizer) saveReachable(state *RandomizationState, trail *traversal.Trail) bool {
	forward, _ := closeFixedPoint(rz.Engine, rz.GameData, state.Global, state.HubVertex, trail)
	reachable := vertexSet(traversal.GetOneWayReachableVertices(forward))
	for _, save := range rz.GameData.SaveLocations {
		vid := rz.GameData.Interner.Intern(model.NewVertexKey(save.RoomID, save.NodeID, 0, nil))
		if reachable[vid] {
			return true
		}
	}
	return len(rz.GameData.SaveLocations) == 0
}

// step runs one full placement step and reports whether it made progress
// (picked up or placed at least one item). Flags and doors set by the
// reachability closure are not counted on their own.
func (rz *Randomizer) step(state *RandomizationState, attemptNum int, trail *traversal.Trail) (bool, error) {
	forward, reverse := closeFixedPoint(rz.Engine, rz.GameData, state.Global, state.HubVertex, trail)

	state.Previous = state.Current
	state.Current = &DebugData{Global: state.Global.Clone(), Forward: forward, Reverse: reverse}

	cls := Classify(state, forward, reverse)
	rz.recordFirstReachable(state, forward, reverse)
	if state.Step == 0 && len(cls.UnplacedBireachable) == 0 {
		return false, ErrNoInitialBireachable
	}

	keyRemaining := 0
	totalRemaining := 0
	for it, n := range state.ItemsRemaining {
		totalRemaining += n
		if it.IsUnique() {
			keyRemaining += n
		}
	}

	b, o := len(cls.UnplacedBireachable), len(cls.UnplacedOneWay)
	numKey := NumKeyItemsToPlace(rz.Config, keyRemaining, totalRemaining, b, o)

	progressed := len(cls.PickUp) > 0

	for _, loc := range cls.PickUp {
		loc.Collected = true
		state.Global.Collect(loc.Item)
	}

	placedKeys, err := rz.selectAndPlaceKeys(state, cls, numKey, attemptNum, trail)
	if err != nil {
		return progressed, err
	}
	if placedKeys > 0 {
		progressed = true
	}

	fillerQuota := (b + o) - placedKeys
	if fillerQuota > 0 {
		before := len(state.UnplacedLocations())
		rz.placeFiller(state, cls, fillerQuota)
		if len(state.UnplacedLocations()) < before {
			progressed = true
		}
	}

	return progressed, nil
}

// recordFirstReachable stamps the current step number onto every
// (room, node) pair that just became forward- or bireachable for the first
// time, for the spoiler log's per-room reachability timeline.
func (rz *Randomizer) recordFirstReachable(state *RandomizationState, forward, reverse []*traversal.TraverseResult) {
	seen := vertexSet(traversal.GetOneWayReachableVertices(forward))
	for vid := range seen {
		key := rz.GameData.Interner.Key(vid)
		rc := [2]int{key.RoomID, key.NodeID}
		if _, ok := state.FirstReachableStep[rc]; !ok {
			state.FirstReachableStep[rc] = state.Step
		}
	}
}

// chooseKeyLocation picks which unplaced-bireachable location should
// receive the next key item: under forced-mode placement it steers toward
// the hardest currently-reachable location per the tier ladder, marking the
// route key-visited so a later slot in the same attempt cannot reuse the
// identical strat; under neutral placement it simply takes locs in order.
func (rz *Randomizer) chooseKeyLocation(state *RandomizationState, locs []*ItemLocationState, trail *traversal.Trail) *ItemLocationState {
	if rz.Config.ItemPlacementStyle != config.PlacementForced || len(rz.Tiers) == 0 {
		return locs[0]
	}

	candidates := make([]model.VertexID, len(locs))
	byVertex := make(map[model.VertexID]*ItemLocationState, len(locs))
	for i, loc := range locs {
		candidates[i] = loc.Vertex
		byVertex[loc.Vertex] = loc
	}

	chosen, tier := ChooseHardestLocation(rz.Engine, rz.Tiers, state.StartVertex, model.NewLocalState(), candidates, state.KeyVisitedVertices, trail)
	loc := byVertex[chosen]
	loc.DifficultyTier = tier

	full := rz.Engine.Traverse(model.MetricFull, state.Global, state.StartVertex, model.NewLocalState(), true, trail)
	if full.Reachable[chosen] {
		MarkKeyVisited(rz.Engine, state.KeyVisitedVertices, traversal.GetSpoilerRoute(full, chosen))
	}

	return loc
}

// providesProgression tentatively collects candidate into a clone of
// state.Global and re-runs the reachability closure, accepting the
// candidate only if it yields at least one location that is newly
// bireachable (i.e. was not even one-way-reachable before) while keeping
// the unplaced one-way backlog under oneWayReachableLimit.
func (rz *Randomizer) providesProgression(state *RandomizationState, candidate model.Item, trail *traversal.Trail) bool {
	before := vertexSet(traversal.GetOneWayReachableVertices(state.Current.Forward))

	trial := state.Global.Clone()
	trial.Collect(candidate)

	forward, reverse := closeFixedPoint(rz.Engine, rz.GameData, trial, state.HubVertex, trail)
	bireachAfter := vertexSet(traversal.GetBireachableVertices(forward, reverse))
	oneWayAfter := traversal.GetOneWayReachableVertices(forward)

	newlyBireachable := false
	for _, loc := range state.Locations {
		if loc.Placed {
			continue
		}
		if bireachAfter[loc.Vertex] && !before[loc.Vertex] {
			newlyBireachable = true
			break
		}
	}
	if !newlyBireachable {
		return false
	}

	unplacedOneWay := 0
	for _, vid := range oneWayAfter {
		if bireachAfter[vid] {
			continue
		}
		for _, loc := range state.Locations {
			if loc.Vertex == vid && !loc.Placed {
				unplacedOneWay++
				break
			}
		}
	}
	return unplacedOneWay < oneWayReachableLimit
}

func (rz *Randomizer) selectAndPlaceKeys(state *RandomizationState, cls Classification, numKey, attemptNum int, trail *traversal.Trail) (int, error) {
	if numKey <= 0 || len(cls.UnplacedBireachable) == 0 {
		return 0, nil
	}

	partiallyPlaced := map[model.Item]bool{}
	for _, loc := range state.Locations {
		if loc.Placed {
			partiallyPlaced[loc.Item] = true
		}
	}

	candidates := SelectKeyCandidates(rz.Config, state.Precedence, state.ItemsRemaining, partiallyPlaced)
	if len(candidates) == 0 {
		return 0, nil
	}
	if numKey > len(candidates) {
		numKey = len(candidates)
	}

	placed := 0
	locs := append([]*ItemLocationState(nil), cls.UnplacedBireachable...)

	for i := 0; i < numKey && i < len(candidates) && len(locs) > 0; i++ {
		var it model.Item
		ok := true
		if i == numKey-1 {
			remainder := candidates[i:]
			for attempt := attemptNum; attempt < attemptNum+len(remainder); attempt++ {
				chosen, found := SelectKthCandidate(remainder, attempt)
				if !found {
					ok = false
					break
				}
				if rz.providesProgression(state, chosen, trail) {
					it = chosen
					ok = true
					break
				}
				ok = false
			}
		} else {
			it = candidates[i]
		}
		if !ok {
			break
		}

		loc := rz.chooseKeyLocation(state, locs, trail)
		for j, l := range locs {
			if l == loc {
				locs = append(locs[:j], locs[j+1:]...)
				break
			}
		}

		loc.Item = it
		loc.Placed = true
		loc.Collected = true
		state.Global.Collect(it)
		state.ItemsRemaining[it]--
		placed++
	}

	return placed, nil
}

func (rz *Randomizer) placeFiller(state *RandomizationState, cls Classification, quota int) {
	spentFirstCopy := map[model.Item]bool{}
	for _, loc := range state.Locations {
		if loc.Placed {
			spentFirstCopy[loc.Item] = true
		}
	}
	buckets := BucketFiller(state.Precedence, state.ItemsRemaining, spentFirstCopy)
	r := rng.NewFromSeed(uint64(state.Step) + 1)
	filler := SelectFiller(rz.Config, buckets, quota, r)

	targets := append([]*ItemLocationState(nil), cls.UnplacedBireachable...)
	targets = append(targets, cls.UnplacedOneWay...)

	next := 0
	for _, loc := range targets {
		if next >= len(filler) {
			break
		}
		if loc.Placed {
			continue
		}
		it := filler[next]
		next++
		loc.Item = it
		loc.Placed = true
		if state.ItemsRemaining[it] > 0 {
			state.ItemsRemaining[it]--
		}
	}
}

func (rz *Randomizer) finish(state *RandomizationState) {
	for _, loc := range state.Locations {
		if !loc.Placed {
			loc.Item = model.Nothing
			loc.Placed = true
		}
	}
}

// attemptError wraps a failure with the attempt number so failures logged
// across many parallel attempts can be told apart.
func attemptError(attemptNum int, err error) error {
	return fmt.Errorf("attempt %d: %w", attemptNum, err)
}
