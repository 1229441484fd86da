package placement

import (
	"github.com/exploro/maprando/pkg/gamedata"
	"github.com/exploro/maprando/pkg/model"
	"github.com/exploro/maprando/pkg/traversal"
)

// ItemLocationState tracks one item location's placement, collection, and
// reachability status across the attempt.
type ItemLocationState struct {
	Location gamedata.ItemLocation
	Vertex   model.VertexID
	Item     model.Item
	Placed   bool
	Collected bool

	// Reachable reports whether this location was at least one-way
	// reachable as of the most recently completed step's classification.
	Reachable bool
	// Bireachable reports whether it was fully bireachable (reachable and
	// returnable under one consistent GlobalState) as of that same step.
	Bireachable bool
	// BireachableVertexID is the vertex this location was bireachable
	// through on the step it was classified, or -1 when it was not
	// bireachable that step.
	BireachableVertexID model.VertexID
	// DifficultyTier is the forced-mode tier index (see
	// ChooseHardestLocation) at which this location was selected to receive
	// a key item, or -1 if it never went through forced-mode selection.
	DifficultyTier int
}

// DebugData is the {global, forward, reverse} snapshot taken at the end of
// a step, kept around so the spoiler builder can replay per-step
// reachability without re-running traversal.
type DebugData struct {
	Global  *model.GlobalState
	Forward []*traversal.TraverseResult
	Reverse []*traversal.TraverseResult
}

// RandomizationState is the full evolving state of one placement attempt.
// It is created once at the top of Randomize, mutated step by step, and
// never shared across attempts or goroutines.
type RandomizationState struct {
	Step int

	StartVertex model.VertexID
	HubVertex   model.VertexID

	Precedence []model.Item
	Locations  []*ItemLocationState

	ItemsRemaining map[model.Item]int

	Global *model.GlobalState

	Current  *DebugData
	Previous *DebugData

	// KeyVisitedVertices discourages forced-mode placement from reusing the
	// same hard-won strat for more than one key item in a row.
	KeyVisitedVertices map[model.VertexID]bool

	// StartingItems are the items the chosen start location already grants
	// the player before Init ever runs, subtracted from the base item pool
	// and collected into Global up front.
	StartingItems []model.Item

	// FirstReachableStep records, for every (room, node) pair, the step
	// number at which it first became forward- or bireachable, keyed by
	// room/node rather than vertex so obstacle-mask variants of the same
	// tile collapse to one timestamp. Consumed by the spoiler builder's
	// per-room reachability timeline.
	FirstReachableStep map[[2]int]int

	// StepSummaries is read by the spoiler builder's per-step summary
	// section. Randomize never appends to it, so it is empty unless a caller
	// fills it.
	StepSummaries []StepSummary
}

// StepSummary records what one placement step accomplished, for the
// spoiler log's per-step listing.
type StepSummary struct {
	Step          int
	ItemsPlaced   map[gamedata.ItemLocation]model.Item
	FlagsSet      []int
	DoorsUnlocked []int
}

// NewRandomizationState builds the state Init populates: an empty global
// state, one ItemLocationState per item location, and a zeroed counts map.
func NewRandomizationState(locations []gamedata.ItemLocation, interner *model.Interner) *RandomizationState {
	locStates := make([]*ItemLocationState, len(locations))
	for i, loc := range locations {
		vid := interner.Intern(model.NewVertexKey(loc.RoomID, loc.NodeID, 0, nil))
		locStates[i] = &ItemLocationState{Location: loc, Vertex: vid, BireachableVertexID: -1, DifficultyTier: -1}
	}
	return &RandomizationState{
		Locations:           locStates,
		ItemsRemaining:      make(map[model.Item]int),
		Global:              model.NewGlobalState(),
		KeyVisitedVertices:  make(map[model.VertexID]bool),
		FirstReachableStep:  make(map[[2]int]int),
	}
}

// UnplacedLocations returns every location still awaiting an item.
func (s *RandomizationState) UnplacedLocations() []*ItemLocationState {
	var out []*ItemLocationState
	for _, l := range s.Locations {
		if !l.Placed {
			out = append(out, l)
		}
	}
	return out
}
