package preprocessor

import (
	"github.com/exploro/maprando/pkg/gamedata"
	"github.com/exploro/maprando/pkg/mapdata"
	"github.com/exploro/maprando/pkg/model"
)

// TwinRoomAlias is an extra door-map entry the preprocessor must synthesize
// links for on top of whatever the Map's own Doors list contains, because
// the underlying rooms are visually distinct but mechanically the same
// connection (West Ocean/Bridge, Pants Room/East Pants Room, Aqueduct/
// Toilet).
type TwinRoomAlias struct {
	RoomA, NodeA int
	RoomB, NodeB int
}

// DefaultTwinRoomAliases lists the three twin-room door pairings as
// placeholders with every ID set to -1. Nothing in this module fills in real
// room IDs, so BuildLinks skips all three and builds no alias links.
var DefaultTwinRoomAliases = []TwinRoomAlias{
	{RoomA: -1, NodeA: -1, RoomB: -1, NodeB: -1}, // West Ocean <-> Bridge
	{RoomA: -1, NodeA: -1, RoomB: -1, NodeB: -1}, // Pants Room <-> East Pants Room
	{RoomA: -1, NodeA: -1, RoomB: -1, NodeB: -1}, // Aqueduct <-> Toilet
}

// nodeKey identifies a room/node pair in the game data tables.
type nodeKey = [2]int

// BuildLinks enumerates every door pair in m (plus the given twin-room
// aliases) and, for each vertex pair attached to the two sides, synthesizes
// a link via Synthesize. Vertices are interned through gd.Interner so the
// returned links reference the same VertexID space the traversal engine
// uses.
func BuildLinks(gd *gamedata.GameData, m *mapdata.Map, aliases []TwinRoomAlias) []*model.Link {
	var links []*model.Link

	for _, door := range m.Doors {
		links = append(links, linksForDoor(gd, door.FromRoomIdx, door.FromNodeIdx, door.ToRoomIdx, door.ToNodeIdx)...)
		if door.Bidirectional {
			links = append(links, linksForDoor(gd, door.ToRoomIdx, door.ToNodeIdx, door.FromRoomIdx, door.FromNodeIdx)...)
		}
	}

	for _, alias := range aliases {
		if alias.RoomA < 0 {
			continue // placeholder without a room ID; no link is built for it
		}
		links = append(links, linksForDoor(gd, alias.RoomA, alias.NodeA, alias.RoomB, alias.NodeB)...)
		links = append(links, linksForDoor(gd, alias.RoomB, alias.NodeB, alias.RoomA, alias.NodeA)...)
	}

	return links
}

func linksForDoor(gd *gamedata.GameData, fromRoom, fromNode, toRoom, toNode int) []*model.Link {
	exitConds := gd.NodeExitConditions[nodeKey{fromRoom, fromNode}]
	entranceConds := gd.NodeEntranceConditions[nodeKey{toRoom, toNode}]
	if len(exitConds) == 0 {
		exitConds = []string{"normally"}
	}
	if len(entranceConds) == 0 {
		entranceConds = []string{"normally"}
	}

	fromKey := model.NewVertexKey(fromRoom, fromNode, 0, nil)
	toKey := model.NewVertexKey(toRoom, toNode, 0, nil)
	fromID := gd.Interner.Intern(fromKey)
	toID := gd.Interner.Intern(toKey)

	var links []*model.Link
	for _, ec := range exitConds {
		for _, nc := range entranceConds {
			exit, ep := parseExitCondition(ec)
			entrance, np := parseEntranceCondition(nc)

			if toRoom == gd.ToiletRoomIdx {
				entrance = applyToiletGModeRule(entrance)
			}

			req := Synthesize(exit, ep, entrance, np)
			if req == nil {
				continue
			}
			links = append(links, model.NewLink(fromID, toID, req))
		}
	}
	return links
}

// ArrivalRequirement synthesizes the Requirement a player must satisfy to
// begin an attempt standing at (roomID, nodeID), by pairing that node's
// entrance-condition tags against an implicit LeaveNormally exit (a start
// location has no real door on the other side to pair against). Returns
// model.Free() when the node carries no entrance-condition tags at all.
func ArrivalRequirement(gd *gamedata.GameData, roomID, nodeID int) *model.Requirement {
	entranceConds := gd.NodeEntranceConditions[nodeKey{roomID, nodeID}]
	if len(entranceConds) == 0 {
		return model.Free()
	}

	var options []*model.Requirement
	for _, nc := range entranceConds {
		entrance, np := parseEntranceCondition(nc)
		req := Synthesize(LeaveNormally, ExitParams{}, entrance, np)
		if req != nil {
			options = append(options, req)
		}
	}
	if len(options) == 0 {
		return nil
	}
	if len(options) == 1 {
		return options[0]
	}
	return model.Or(options...)
}

// applyToiletGModeRule maps every ComeInWithGMode entrance whose destination
// is the Toilet room to ComeInWithStoredFallSpeed. EntranceCondition carries
// no direct/indirect g-mode sub-mode, so no g-mode entrance is rejected here.
func applyToiletGModeRule(entrance EntranceCondition) EntranceCondition {
	if entrance == ComeInWithGMode {
		return ComeInWithStoredFallSpeed
	}
	return entrance
}

// parseExitCondition and parseEntranceCondition translate the string tags
// stored in gamedata (as loaded from whatever upstream room/node catalog
// produced them) into the typed enums Synthesize dispatches on, along with
// whatever numeric parameters the tag itself encodes. Tags this module does
// not recognize fall back to the "normally" case rather than erroring, so
// an incomplete catalog degrades to fewer links rather than a crash.
func parseExitCondition(tag string) (ExitCondition, ExitParams) {
	switch tag {
	case "with_runway":
		return LeaveWithRunway, ExitParams{RunwayTiles: 20}
	case "shinecharged":
		return LeaveShinecharged, ExitParams{RunwayTiles: 20}
	case "with_temporary_blue":
		return LeaveWithTemporaryBlue, ExitParams{}
	case "with_gmode":
		return LeaveWithGMode, ExitParams{}
	case "with_door_frame_below":
		return LeaveWithDoorFrameBelow, ExitParams{}
	case "with_platform_below":
		return LeaveWithPlatformBelow, ExitParams{}
	case "spinning":
		return LeaveSpinning, ExitParams{}
	default:
		return LeaveNormally, ExitParams{}
	}
}

func parseEntranceCondition(tag string) (EntranceCondition, EntranceParams) {
	switch tag {
	case "running":
		return ComeInRunning, EntranceParams{RunwayTiles: 20}
	case "jumping":
		return ComeInJumping, EntranceParams{}
	case "shinecharging":
		return ComeInShinecharging, EntranceParams{RunwayTiles: 20}
	case "getting_blue_speed":
		return ComeInGettingBlueSpeed, EntranceParams{MinExtraRunSpeed: 0, MaxExtraRunSpeed: 0.25}
	case "speedballing":
		return ComeInSpeedballing, EntranceParams{RunwayTiles: 10}
	case "with_temporary_blue":
		return ComeInWithTemporaryBlue, EntranceParams{}
	case "with_gmode":
		return ComeInWithGMode, EntranceParams{}
	case "with_stored_fall_speed":
		return ComeInWithStoredFallSpeed, EntranceParams{}
	case "with_walljump_below":
		return ComeInWithWallJumpBelow, EntranceParams{}
	case "with_spacejump_below":
		return ComeInWithSpaceJumpBelow, EntranceParams{}
	case "with_grapple":
		return ComeInWithGrapple, EntranceParams{}
	case "with_door_stuck_setup":
		return ComeInWithDoorStuckSetup, EntranceParams{}
	case "with_bomb_boost":
		return ComeInWithBombBoost, EntranceParams{}
	case "with_rmode":
		return ComeInWithRMode, EntranceParams{}
	case "with_mockball":
		return ComeInWithMockball, EntranceParams{}
	case "blind":
		return ComeInBlind, EntranceParams{}
	case "shinecharged_jumping":
		return ComeInShinechargedJumping, EntranceParams{}
	case "with_side_platform":
		return ComeInWithSidePlatform, EntranceParams{}
	case "with_catch_frames":
		return ComeInWithCatchFrames, EntranceParams{}
	default:
		return ComeInNormally, EntranceParams{}
	}
}
