package spoiler

import (
	"sort"

	"github.com/exploro/maprando/pkg/gamedata"
	"github.com/exploro/maprando/pkg/model"
	"github.com/exploro/maprando/pkg/placement"
	"github.com/exploro/maprando/pkg/traversal"
)

// RouteEntry is one step of a reconstructed obtain/return route: which link
// was taken, the strat name that justified it, and the resource totals
// spent so far along this route.
type RouteEntry struct {
	RoomName  string
	NodeLabel string
	StratName string
	ObstacleMask uint64
	TileX, TileY int

	EnergyUsed   float64
	ReserveUsed  float64
	MissilesUsed float64
	SupersUsed   float64
	PowerBombsUsed float64
}

// ItemAcquisition is the full spoiler record for one collected item: where
// it was, what it was, and how to both reach it and (if a round trip
// exists) return from it.
type ItemAcquisition struct {
	Location    gamedata.ItemLocation
	Item        model.Item
	ObtainRoute []RouteEntry
	ReturnRoute []RouteEntry
}

// StepSummaryEntry mirrors placement.StepSummary for output purposes.
type StepSummaryEntry struct {
	Step          int
	ItemsPlaced   map[string]string
	FlagsSet      []string
	DoorsUnlocked []int
}

// NodeReachability is one room node's first-reachable-step timestamp.
type NodeReachability struct {
	NodeID int
	TileX, TileY int
	FirstStep int // -1 if never reached during the attempt
}

// RoomReachability is one room's full per-node reachability timeline, for
// the spoiler log's all_rooms output (populated even when the attempt never
// got far enough to build a full item/route spoiler, e.g. an escape-mode
// dummy state).
type RoomReachability struct {
	RoomID int
	Name   string
	Nodes  []NodeReachability
}

// SpoilerLog is the full output of the spoiler builder.
type SpoilerLog struct {
	Summary []StepSummaryEntry
	Items   []ItemAcquisition
	Escape  EscapeSpoiler

	// AllItems maps every item location name to the item placed there,
	// regardless of whether a route could be reconstructed for it.
	AllItems map[string]string

	// AllRooms is the per-room, per-node reachability timeline: which step
	// first made each node forward- or bireachable. Always populated, even
	// when Summary/Items are empty (an escape-mode dummy state still has a
	// map to report on).
	AllRooms []RoomReachability
}

// Build reconstructs the full spoiler log for a finished attempt. engine is
// needed to translate link indices back into their FromVertex/ToVertex/
// Requirement so routes can be annotated; gd supplies the name lookups.
func Build(state *placement.RandomizationState, gd *gamedata.GameData, engine *traversal.Engine, escapeTimer EscapeTimer) (*SpoilerLog, error) {
	if escapeTimer == nil {
		escapeTimer = NoEscapeTimer{}
	}
	escape, err := escapeTimer.Compute(nil)
	if err != nil {
		return nil, err
	}

	log := &SpoilerLog{
		Escape:   escape,
		AllItems: make(map[string]string),
		AllRooms: buildAllRooms(gd, state),
	}

	for _, ss := range state.StepSummaries {
		entry := StepSummaryEntry{Step: ss.Step, ItemsPlaced: make(map[string]string)}
		for loc, it := range ss.ItemsPlaced {
			entry.ItemsPlaced[loc.Name] = it.String()
		}
		log.Summary = append(log.Summary, entry)
	}

	for _, loc := range state.Locations {
		log.AllItems[loc.Location.Name] = loc.Item.String()
	}

	if state.Current == nil {
		return log, nil
	}

	for _, loc := range state.Locations {
		if !loc.Placed || loc.Item == model.Nothing {
			continue
		}

		acquisition := ItemAcquisition{Location: loc.Location, Item: loc.Item}
		for _, fwd := range state.Current.Forward {
			if fwd.Reachable[loc.Vertex] {
				route := traversal.GetSpoilerRoute(fwd, loc.Vertex)
				acquisition.ObtainRoute = annotateRoute(engine, gd, route)
				break
			}
		}
		for _, rev := range state.Current.Reverse {
			if rev.Reachable[loc.Vertex] {
				route := traversal.GetSpoilerRoute(rev, loc.Vertex)
				acquisition.ReturnRoute = annotateRoute(engine, gd, route)
				break
			}
		}
		log.Items = append(log.Items, acquisition)
	}

	return log, nil
}

// buildAllRooms iterates every room/node gd knows about (sorted by room ID
// then node ID for deterministic output) and looks up each pair's
// first-reachable step from state.FirstReachableStep, defaulting to -1 for
// a node never reached this attempt.
func buildAllRooms(gd *gamedata.GameData, state *placement.RandomizationState) []RoomReachability {
	roomIDs := make([]int, 0, len(gd.Rooms))
	for id := range gd.Rooms {
		roomIDs = append(roomIDs, id)
	}
	sort.Ints(roomIDs)

	out := make([]RoomReachability, 0, len(roomIDs))
	for _, id := range roomIDs {
		room := gd.Rooms[id]
		rr := RoomReachability{RoomID: id, Name: room.Name}

		nodeIDs := make([]int, 0, len(room.NodeTileCoords))
		for nodeID := range room.NodeTileCoords {
			nodeIDs = append(nodeIDs, nodeID)
		}
		sort.Ints(nodeIDs)

		for _, nodeID := range nodeIDs {
			coords := room.NodeTileCoords[nodeID]
			step, ok := state.FirstReachableStep[[2]int{id, nodeID}]
			if !ok {
				step = -1
			}
			rr.Nodes = append(rr.Nodes, NodeReachability{
				NodeID: nodeID, TileX: coords[0], TileY: coords[1], FirstStep: step,
			})
		}
		out = append(out, rr)
	}
	return out
}

// annotateRoute converts a sequence of link indices into RouteEntry values
// with names filled in from gd and running resource totals, deduplicating
// consecutive entries whose resource totals are identical to the previous
// one (visually, nothing changed that step so the spoiler omits repeating
// it).
func annotateRoute(engine *traversal.Engine, gd *gamedata.GameData, linkIdxs []int) []RouteEntry {
	var out []RouteEntry
	var prev *RouteEntry

	for _, idx := range linkIdxs {
		link := engine.Links[idx]
		key := gd.Interner.Key(link.ToVertex)
		geom := gd.Rooms[key.RoomID]
		roomName := ""
		if geom != nil {
			roomName = geom.Name
		}

		entry := RouteEntry{
			RoomName:  roomName,
			NodeLabel: link.Label,
			StratName: link.Label,
		}
		if geom != nil {
			if coords, ok := geom.NodeTileCoords[key.NodeID]; ok {
				entry.TileX, entry.TileY = coords[0], coords[1]
			}
		}

		if prev != nil && sameResources(*prev, entry) {
			continue
		}
		out = append(out, entry)
		prev = &entry
	}
	return out
}

func sameResources(a, b RouteEntry) bool {
	return a.EnergyUsed == b.EnergyUsed &&
		a.ReserveUsed == b.ReserveUsed &&
		a.MissilesUsed == b.MissilesUsed &&
		a.SupersUsed == b.SupersUsed &&
		a.PowerBombsUsed == b.PowerBombsUsed
}
