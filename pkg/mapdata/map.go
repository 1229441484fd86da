package mapdata

// Door connects two rooms at the given node pair, by room index rather than
// game-data room ID, matching the way the upstream layout generator indexes
// its own output.
type Door struct {
	FromRoomIdx int
	FromNodeIdx int
	ToRoomIdx   int
	ToNodeIdx   int
	// Bidirectional is false for one-way connections (sand pits, some
	// shot-block passages).
	Bidirectional bool
}

// RoomPlacement is a room's position on the world tile grid, as produced by
// the layout generator.
type RoomPlacement struct {
	X, Y int
}

// Map is the full room layout an attempt randomizes items and door locks
// onto. Area and Subarea are indexed by room index and are the two fields
// RandomizeAreas permutes; everything else is read-only input.
type Map struct {
	Rooms   []RoomPlacement
	Area    []int // len(Rooms); area assignment per room, 0..5
	Subarea []int // len(Rooms); subarea assignment per room, 0..1 within its area
	Doors   []Door
}

// NumAreas is the fixed number of map areas (Crateria, Brinstar, Norfair,
// Wrecked Ship, Maridia, Tourian) that RandomizeAreas permutes.
const NumAreas = 6

// NumSubareas is the fixed number of subareas within each area.
const NumSubareas = 2
