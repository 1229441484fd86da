package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// jsonRoom is RoomGeometry with NodeTileCoords flattened to a list, since
// JSON object keys must be strings and node IDs are ints.
type jsonRoom struct {
	RoomID         int       `json:"room_id"`
	Name           string    `json:"name"`
	NumNodes       int       `json:"num_nodes"`
	Heated         bool      `json:"heated"`
	TileWidth      int       `json:"tile_width"`
	TileHeight     int       `json:"tile_height"`
	NodeTileCoords [][3]int  `json:"node_tile_coords"` // [nodeID, x, y]
}

// jsonDocument is the on-disk shape of a game-data file: everything
// GameData needs except the Interner, which is always built fresh since
// vertex IDs are only ever assigned during a run.
type jsonDocument struct {
	Rooms                  []jsonRoom   `json:"rooms"`
	DoorPtrPairs           [][2]int     `json:"door_ptr_pairs"`
	RoomIdxByPtr           map[string]int `json:"room_idx_by_ptr"`
	RoomPtrByID            map[string]int `json:"room_ptr_by_id"`
	NodeDoorUnlock         [][3]int     `json:"node_door_unlock"`          // [room, node, vertexPairID]
	NodeExitConditions     []nodeTags   `json:"node_exit_conditions"`
	NodeEntranceConditions []nodeTags   `json:"node_entrance_conditions"`
	NodeGModeRegainMobility [][2]int    `json:"node_gmode_regain_mobility"` // [room, node]

	ItemLocations  []ItemLocation  `json:"item_locations"`
	SaveLocations  []SaveLocation  `json:"save_locations"`
	HubLocations   []ItemLocation  `json:"hub_locations"`
	StartLocations []StartLocation `json:"start_locations"`

	ToiletRoomIdx             int `json:"toilet_room_idx"`
	MotherBrainDefeatedFlagID int `json:"mother_brain_defeated_flag_id"`

	TechNames  map[string]string `json:"tech_names"`
	StratNames map[string]string `json:"strat_names"`
	FlagNames  map[string]string `json:"flag_names"`
}

type nodeTags struct {
	Room int      `json:"room"`
	Node int      `json:"node"`
	Tags []string `json:"tags"`
}

// Load reads a game-data JSON document from path and builds a GameData,
// the way BuildLinks and the placement package expect to find it: plain
// Go maps keyed by room/node pairs rather than the file's flattened lists.
func Load(path string) (*GameData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gamedata: reading %s: %w", path, err)
	}

	var doc jsonDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("gamedata: parsing %s: %w", path, err)
	}

	gd := New()
	for _, r := range doc.Rooms {
		room := &RoomGeometry{
			RoomID: r.RoomID, Name: r.Name, NumNodes: r.NumNodes,
			Heated: r.Heated, TileWidth: r.TileWidth, TileHeight: r.TileHeight,
			NodeTileCoords: make(map[int][2]int, len(r.NodeTileCoords)),
		}
		for _, nc := range r.NodeTileCoords {
			room.NodeTileCoords[nc[0]] = [2]int{nc[1], nc[2]}
		}
		gd.Rooms[r.RoomID] = room
	}
	for _, pair := range doc.DoorPtrPairs {
		gd.DoorPtrPairMap[DoorPtrPair{ExitPtr: pair[0], EntryPtr: pair[1]}] = true
	}
	for k, v := range doc.RoomIdxByPtr {
		gd.RoomIdxByPtr[atoi(k)] = v
	}
	for k, v := range doc.RoomPtrByID {
		gd.RoomPtrByID[atoi(k)] = v
	}
	for _, e := range doc.NodeDoorUnlock {
		gd.NodeDoorUnlock[[2]int{e[0], e[1]}] = e[2]
	}
	for _, e := range doc.NodeExitConditions {
		gd.NodeExitConditions[[2]int{e.Room, e.Node}] = e.Tags
	}
	for _, e := range doc.NodeEntranceConditions {
		gd.NodeEntranceConditions[[2]int{e.Room, e.Node}] = e.Tags
	}
	for _, e := range doc.NodeGModeRegainMobility {
		gd.NodeGModeRegainMobility[[2]int{e[0], e[1]}] = true
	}

	gd.ItemLocations = doc.ItemLocations
	gd.SaveLocations = doc.SaveLocations
	gd.HubLocations = doc.HubLocations
	gd.StartLocations = doc.StartLocations
	gd.ToiletRoomIdx = doc.ToiletRoomIdx
	gd.MotherBrainDefeatedFlagID = doc.MotherBrainDefeatedFlagID

	for k, v := range doc.TechNames {
		gd.TechNames[atoi(k)] = v
	}
	for k, v := range doc.StratNames {
		gd.StratNames[atoi(k)] = v
	}
	for k, v := range doc.FlagNames {
		gd.FlagNames[atoi(k)] = v
	}

	return gd, nil
}

// atoi parses a JSON object key back into the int it came from. Malformed
// keys collapse to 0 rather than aborting the load, since one bad
// tech/flag name entry should not sink the whole file.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
