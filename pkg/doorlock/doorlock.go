package doorlock

import (
	"github.com/exploro/maprando/pkg/config"
	"github.com/exploro/maprando/pkg/mapdata"
	"github.com/exploro/maprando/pkg/rng"
)

// LockColor names the randomized door lock colors, which gate traversal on
// possessing the matching ammo or beam.
type LockColor int

const (
	LockNone LockColor = iota
	LockMissile
	LockSuper
	LockPowerBomb
	LockCharge
	LockIce
	LockWave
	LockSpazer
	LockPlasma
)

var lockColorNames = map[LockColor]string{
	LockNone:      "none",
	LockMissile:   "missile",
	LockSuper:     "super",
	LockPowerBomb: "power_bomb",
	LockCharge:    "charge",
	LockIce:       "ice",
	LockWave:      "wave",
	LockSpazer:    "spazer",
	LockPlasma:    "plasma",
}

func (c LockColor) String() string { return lockColorNames[c] }

// LockedDoor is one door the randomizer has decided to color.
type LockedDoor struct {
	RoomIdx int
	NodeIdx int
	MapTileX, MapTileY int
	Color LockColor
}

// DoorKind classifies a door for deny-list purposes. The placement engine
// never sees these; they exist only to drive IsEligible.
type DoorKind int

const (
	DoorOrdinary DoorKind = iota
	DoorGray
	DoorSave
	DoorMapStation
	DoorRefillStation
	DoorPantsInternal
	DoorItemAdjacent
)

// Candidate is one door under consideration, with enough context to apply
// both the deny-list and the tile/room exclusion constraints.
type Candidate struct {
	RoomIdx, NodeIdx int
	MapTileX, MapTileY int
	Kind DoorKind
	// BeamEligible is false for doors whose geometry cannot host a beam
	// (rather than ammo) lock, per the original's door-size distinction.
	BeamEligible bool
}

// IsEligible reports whether a candidate door may receive any lock at all,
// applying the deny-list from §4.2a.
func IsEligible(c Candidate) bool {
	switch c.Kind {
	case DoorGray, DoorSave, DoorMapStation, DoorRefillStation, DoorPantsInternal, DoorItemAdjacent:
		return false
	default:
		return true
	}
}

// lockTargets returns, for one door mode, the exact number of doors Assign
// must lock in each color: Ammo is 30 Red (Missile) + 15 Green (Super) + 10
// Yellow (PowerBomb); Beam locks 18 Red, 10 Green and 7 Yellow and adds 4
// doors of each of the five beam colors.
func lockTargets(mode config.DoorsMode) map[LockColor]int {
	switch mode {
	case config.DoorsModeBeam:
		return map[LockColor]int{
			LockMissile: 18, LockSuper: 10, LockPowerBomb: 7,
			LockCharge: 4, LockIce: 4, LockWave: 4, LockSpazer: 4, LockPlasma: 4,
		}
	default:
		return map[LockColor]int{
			LockMissile: 30, LockSuper: 15, LockPowerBomb: 10,
		}
	}
}

// Assign chooses lock colors for as many eligible candidates as the active
// DoorsMode and exclusion constraints allow: at most one ammo lock per map
// tile, at most one beam lock per room, and exactly the per-color target
// count from lockTargets once enough eligible candidates exist.
func Assign(cfg *config.DifficultyConfig, doors []Candidate, seed uint64) []LockedDoor {
	if cfg.DoorsMode == config.DoorsModeBlue {
		return nil
	}

	r := rng.NewFromSeed(seed)
	order := make([]int, len(doors))
	for i := range order {
		order[i] = i
	}
	r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	ammoColors := []LockColor{LockMissile, LockSuper, LockPowerBomb}
	beamColors := []LockColor{LockCharge, LockIce, LockWave, LockSpazer, LockPlasma}

	remaining := lockTargets(cfg.DoorsMode)
	total := 0
	for _, n := range remaining {
		total += n
	}

	tileUsed := make(map[[2]int]bool)
	roomBeamUsed := make(map[int]bool)

	var out []LockedDoor
	for _, idx := range order {
		if total <= 0 {
			break
		}
		c := doors[idx]
		if !IsEligible(c) {
			continue
		}
		tile := [2]int{c.MapTileX, c.MapTileY}
		if tileUsed[tile] {
			continue
		}

		color, ok := pickColor(r, remaining, ammoColors, beamColors, cfg.DoorsMode == config.DoorsModeBeam && c.BeamEligible && !roomBeamUsed[c.RoomIdx])
		if !ok {
			continue
		}
		if isBeamColor(color) {
			roomBeamUsed[c.RoomIdx] = true
		}

		tileUsed[tile] = true
		remaining[color]--
		total--
		out = append(out, LockedDoor{
			RoomIdx: c.RoomIdx, NodeIdx: c.NodeIdx,
			MapTileX: c.MapTileX, MapTileY: c.MapTileY,
			Color: color,
		})
	}
	return out
}

// pickColor chooses a still-needed color for this candidate: a beam color
// when beamEligible allows it and at least one beam target remains,
// otherwise an ammo color, falling back to a beam color (again only when
// beamEligible) once every ammo target is exhausted.
func pickColor(r *rng.RNG, remaining map[LockColor]int, ammoColors, beamColors []LockColor, beamEligible bool) (LockColor, bool) {
	tryFamily := func(colors []LockColor) (LockColor, bool) {
		var avail []LockColor
		for _, c := range colors {
			if remaining[c] > 0 {
				avail = append(avail, c)
			}
		}
		if len(avail) == 0 {
			return LockNone, false
		}
		return avail[r.Intn(len(avail))], true
	}

	if beamEligible && r.Bool() {
		if c, ok := tryFamily(beamColors); ok {
			return c, true
		}
	}
	if c, ok := tryFamily(ammoColors); ok {
		return c, true
	}
	if !beamEligible {
		return LockNone, false
	}
	return tryFamily(beamColors)
}

func isBeamColor(c LockColor) bool {
	switch c {
	case LockCharge, LockIce, LockWave, LockSpazer, LockPlasma:
		return true
	default:
		return false
	}
}

// CandidatesFromMap derives door candidates from a Map's door list with a
// caller-supplied classifier, since Map itself carries no room-type
// metadata (that lives in gamedata).
func CandidatesFromMap(m *mapdata.Map, classify func(roomIdx, nodeIdx int) (DoorKind, bool)) []Candidate {
	var out []Candidate
	for _, d := range m.Doors {
		kind, beamOK := classify(d.FromRoomIdx, d.FromNodeIdx)
		out = append(out, Candidate{
			RoomIdx: d.FromRoomIdx, NodeIdx: d.FromNodeIdx,
			MapTileX: m.Rooms[d.FromRoomIdx].X, MapTileY: m.Rooms[d.FromRoomIdx].Y,
			Kind: kind, BeamEligible: beamOK,
		})
	}
	return out
}
