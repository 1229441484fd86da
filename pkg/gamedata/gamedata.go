package gamedata

import "github.com/exploro/maprando/pkg/model"

// RoomGeometry is the static, non-randomized description of one room: its
// node count, whether it is heated, and the tile coordinates of each node
// used by the numeric run-frame/heat sub-models in pkg/preprocessor.
type RoomGeometry struct {
	RoomID    int
	Name      string
	NumNodes  int
	Heated    bool
	TileWidth int
	TileHeight int
	// NodeTileCoords maps a node ID to its (x, y) tile position within the
	// room, used to compute runway lengths between nodes that share a floor.
	NodeTileCoords map[int][2]int
}

// DoorPtrPair identifies one side of a vanilla door connection by its two
// PLM/door pointer values, the key the original game data indexes
// connections by. GameData.RoomIdxByPtr and RoomPtrByID map pointers to
// rooms and back; the preprocessor does not read them.
type DoorPtrPair struct {
	ExitPtr  int
	EntryPtr int
}

// ItemLocation is one of the game's fixed item pickup slots: a room/node
// pair that the placement engine assigns an Item to.
type ItemLocation struct {
	RoomID int
	NodeID int
	Name   string // e.g. "Morph Ball", "Ridley Tank"
}

// SaveLocation is a room/node pair that fully restores the player on use,
// read by placement's early_save check.
type SaveLocation struct {
	RoomID int
	NodeID int
}

// StartLocation is a room/node pair eligible to begin an attempt, plus
// whatever items the player already holds on arrival there (a save-room
// start never truly begins from scratch). StartingItems holds item display
// names rather than model.Item directly, since gamedata is loaded from a
// plain data file; see model.ItemFromName.
type StartLocation struct {
	RoomID        int
	NodeID        int
	Name          string
	StartingItems []string
}

// GameData is the full static table set the core consumes. None of its
// fields are mutated after construction; per-attempt state lives in
// model.GlobalState and model.LocalState instead.
type GameData struct {
	Interner *model.Interner

	Rooms map[int]*RoomGeometry

	DoorPtrPairMap map[DoorPtrPair]bool
	RoomIdxByPtr   map[int]int
	RoomPtrByID    map[int]int

	// NodeDoorUnlock maps a (room, node) to the vertex-pair ID whose
	// GlobalState.DoorUnlocked bit gates passing through it, for nodes that
	// sit behind a randomized door lock.
	NodeDoorUnlock map[[2]int]int

	// NodeExitConditions and NodeEntranceConditions hold the named
	// conditions attached to a node, keyed the same way and consumed by the
	// preprocessor's exit/entrance dispatch table (see pkg/preprocessor).
	NodeExitConditions     map[[2]int][]string
	NodeEntranceConditions map[[2]int][]string

	// NodeGModeRegainMobility lists nodes at which a player stuck in g-mode
	// immobile can regain mobility, consumed by the Toilet g-mode rule.
	NodeGModeRegainMobility map[[2]int]bool

	ItemLocations []ItemLocation
	SaveLocations []SaveLocation
	HubLocations  []ItemLocation
	StartLocations []StartLocation

	// ToiletRoomIdx identifies the Toilet room for the special g-mode
	// traversal rule that downgrades Any-mode links to Indirect within it.
	ToiletRoomIdx int

	MotherBrainDefeatedFlagID int

	TechNames  map[int]string
	StratNames map[int]string
	FlagNames  map[int]string
}

// New returns an empty GameData with its maps initialized, ready for a
// fixture builder (or, eventually, a real loader) to populate.
func New() *GameData {
	return &GameData{
		Interner:                model.NewInterner(),
		Rooms:                   make(map[int]*RoomGeometry),
		DoorPtrPairMap:          make(map[DoorPtrPair]bool),
		RoomIdxByPtr:            make(map[int]int),
		RoomPtrByID:             make(map[int]int),
		NodeDoorUnlock:          make(map[[2]int]int),
		NodeExitConditions:      make(map[[2]int][]string),
		NodeEntranceConditions:  make(map[[2]int][]string),
		NodeGModeRegainMobility: make(map[[2]int]bool),
		TechNames:               make(map[int]string),
		StratNames:              make(map[int]string),
		FlagNames:               make(map[int]string),
	}
}

// WeaponMask returns a bitmask of the beams/charge the player currently has
// equipped, derived from items collected. Preprocessor requirement leaves
// that gate on "any of these weapons" test against this mask rather than
// checking each item individually.
func WeaponMask(g *model.GlobalState) uint64 {
	var mask uint64
	for i, it := range []model.Item{model.Charge, model.Ice, model.Wave, model.Spazer, model.Plasma} {
		if g.HasItem(it) {
			mask |= 1 << uint(i)
		}
	}
	return mask
}
