package main

import (
	"fmt"

	"github.com/exploro/maprando/pkg/config"
	"github.com/exploro/maprando/pkg/doorlock"
	"github.com/exploro/maprando/pkg/gamedata"
	"github.com/exploro/maprando/pkg/mapdata"
	"github.com/exploro/maprando/pkg/model"
	"github.com/exploro/maprando/pkg/placement"
	"github.com/exploro/maprando/pkg/preprocessor"
	"github.com/exploro/maprando/pkg/traversal"
)

// loadInputs reads the game data and map files named on the command line,
// required by every subcommand that touches traversal.
func loadInputs() (*gamedata.GameData, *mapdata.Map, error) {
	if gameData == "" || mapFile == "" {
		return nil, nil, fmt.Errorf("both --gamedata and --map are required")
	}
	gd, err := gamedata.Load(gameData)
	if err != nil {
		return nil, nil, err
	}
	m, err := mapdata.Load(mapFile)
	if err != nil {
		return nil, nil, err
	}
	return gd, m, nil
}

// loadDifficulty loads the difficulty config named by --config, or the
// built-in defaults when no path was given.
func loadDifficulty() (*config.DifficultyConfig, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadConfig(cfgFile)
}

// buildEngine synthesizes links for m's doors from gd's node tables and
// wraps them in a traversal.Engine sized to however many vertices got
// interned along the way.
func buildEngine(gd *gamedata.GameData, m *mapdata.Map) *traversal.Engine {
	links := preprocessor.BuildLinks(gd, m, preprocessor.DefaultTwinRoomAliases)
	return traversal.NewEngine(gd.Interner.Len(), links)
}

// defaultPriorityGroups buckets every unique key item into the config's
// Normal tier; a real deployment would read per-item tier overrides from
// the difficulty config, but the core split (Early/Normal/Late) only
// matters once a catalog supplies non-default groupings.
func defaultPriorityGroups() placement.PriorityGroups {
	var normal []model.Item
	for _, it := range model.AllItems() {
		if it.IsUnique() {
			normal = append(normal, it)
		}
	}
	return placement.PriorityGroups{Normal: normal}
}

// defaultTiers is the single-tier forced-mode ladder used when a
// difficulty config does not define its own progression of tech/item
// unlocks. ApplyTier with an empty tier yields a GlobalState with no items,
// techs or strats, so under this ladder a forced-mode candidate scores 1 only
// if it is reachable with nothing collected, and 0 otherwise.
func defaultTiers() []placement.DifficultyTier {
	return []placement.DifficultyTier{{}}
}

// shipVertexAndHub resolves the fixed ship start/hub vertices from gd's
// StartLocations, using the first entry as both start and hub. When the
// catalog has no start locations it returns vertex 0 for both.
func shipVertexAndHub(gd *gamedata.GameData) (model.VertexID, model.VertexID) {
	if len(gd.StartLocations) == 0 {
		return 0, 0
	}
	ship := gd.StartLocations[0]
	vid := gd.Interner.Intern(model.NewVertexKey(ship.RoomID, ship.NodeID, 0, nil))
	return vid, vid
}

// doorKindClassifier builds the per-candidate classification function
// CandidatesFromMap needs. It reports every door as doorlock.DoorOrdinary
// and beam-eligible, whatever its room or node; it reads no node tags, so
// doorlock.IsEligible's deny-list never excludes a door classified here.
func doorKindClassifier(gd *gamedata.GameData) func(roomIdx, nodeIdx int) (doorlock.DoorKind, bool) {
	return func(roomIdx, nodeIdx int) (doorlock.DoorKind, bool) {
		_, ok := gd.Rooms[roomIdx]
		if !ok {
			return doorlock.DoorOrdinary, true
		}
		return doorlock.DoorOrdinary, true
	}
}
