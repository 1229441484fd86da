package model

// Flag identifies a boolean event in the game's progress that traversal can
// both depend on (via a Requirement leaf resolved by pkg/gamedata into a
// ReqTech-like flag check) and set (via GlobalState.SetFlag once a vertex
// that triggers it is reached). Boss-kill flags and the two escape-related
// flags are fixed across every room table; area-specific event flags are
// looked up from pkg/gamedata by name instead of by one of these constants.
type Flag int

const (
	FlagNone Flag = iota
	FlagKraidDead
	FlagPhantoonDead
	FlagDraygonDead
	FlagRidleyDead
	FlagSporeSpawnDead
	FlagCrocomireDead
	FlagBotwoonDead
	FlagGoldenTorizoDead
	FlagMotherBrainDead
	FlagMotherBrainGlassBroken
	FlagZebesAblaze
	FlagAcidChozoStatueDisabled
	FlagShaktoolDoneDigging
	FlagAnimalsRescued

	numFlags
)

var flagNames = [numFlags]string{
	FlagKraidDead:               "f_KraidDead",
	FlagPhantoonDead:            "f_PhantoonDead",
	FlagDraygonDead:             "f_DraygonDead",
	FlagRidleyDead:              "f_RidleyDead",
	FlagSporeSpawnDead:          "f_SporeSpawnDead",
	FlagCrocomireDead:           "f_CrocomireDead",
	FlagBotwoonDead:             "f_BotwoonDead",
	FlagGoldenTorizoDead:        "f_GoldenTorizoDead",
	FlagMotherBrainDead:         "f_MotherBrainDead",
	FlagMotherBrainGlassBroken:  "f_MotherBrainGlassBroken",
	FlagZebesAblaze:             "f_ZebesAblaze",
	FlagAcidChozoStatueDisabled: "f_AcidChozoStatueDisabled",
	FlagShaktoolDoneDigging:     "f_ShaktoolDoneDigging",
	FlagAnimalsRescued:          "f_AnimalsRescued",
}

func (f Flag) String() string {
	if f < 0 || int(f) >= len(flagNames) || flagNames[f] == "" {
		return "f_Unknown"
	}
	return flagNames[f]
}

// NumFlags is the count of fixed flags, excluding FlagNone.
func NumFlags() int { return int(numFlags) - 1 }
