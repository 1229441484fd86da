package preprocessor

import "github.com/exploro/maprando/pkg/model"

// Tech/strat IDs referenced by the dispatch table below. These are the same
// numbering space gamedata.GameData.TechNames/StratNames index into; they
// are declared here rather than in gamedata because the dispatch table is
// the only place that needs to name them directly.
const (
	TechWallJump    = 100
	TechGrapple     = 101
	TechMockball    = 102
	TechBombBoost   = 103
	TechRMode       = 104
	TechGMode       = 105
	TechCatchFrames = 106
	TechBlindJump   = 107
)

// Synthesize matches an exit condition against an entrance condition and
// returns the Requirement a link must satisfy to traverse that combination,
// or nil if the combination admits no link at all. It never panics on an
// unhandled combination, per the numeric sub-models' never-fail contract —
// callers treat a nil Requirement exactly like a false case-table cell.
func Synthesize(exit ExitCondition, ep ExitParams, entrance EntranceCondition, np EntranceParams) *model.Requirement {
	switch entrance {
	case ComeInNormally:
		return model.Free()

	case ComeInRunning:
		if exit != LeaveWithRunway && exit != LeaveWithGMode {
			return nil
		}
		combined := ep.RunwayTiles + np.RunwayTiles
		frames := RunFrames(combined)
		return model.And(
			runwayHeatRequirement(frames, ep.Heated || np.Heated),
		)

	case ComeInJumping:
		if exit == LeaveWithDoorFrameBelow || exit == LeaveWithPlatformBelow || exit == LeaveNormally {
			return model.Free()
		}
		return nil

	case ComeInShinecharging:
		if exit != LeaveWithRunway && exit != LeaveShinecharged {
			return nil
		}
		combined := ep.RunwayTiles + np.RunwayTiles
		threshold := ShortchargeTileThresholdUnheated
		if ep.FromExitNode {
			threshold = 33.0
		}
		if combined < threshold {
			return nil
		}
		_, remaining := ShinechargeFrames(ep.RunwayTiles, np.RunwayTiles)
		return model.ShinechargeFramesReq(int(remaining))

	case ComeInGettingBlueSpeed:
		if exit != LeaveWithRunway {
			return nil
		}
		min, max, ok := BlueSpeedBounds(ep.RunwayTiles, ShortchargeTileThresholdUnheated)
		if !ok {
			return nil
		}
		min, max, ok = IntersectSpeedRanges(min, max, np.MinExtraRunSpeed, np.MaxExtraRunSpeed)
		if !ok {
			return nil
		}
		return model.BlueSpeed(ep.RunwayTiles, ep.Heated || np.Heated)

	case ComeInSpeedballing:
		if exit != LeaveWithRunway && exit != LeaveSpinning {
			return nil
		}
		return model.And(model.TechReq(TechMockball), model.Speedball(np.RunwayTiles, ep.Heated || np.Heated))

	case ComeInWithTemporaryBlue:
		if exit != LeaveWithTemporaryBlue {
			return nil
		}
		return model.Free()

	case ComeInWithGMode:
		if exit != LeaveWithGMode {
			return nil
		}
		return model.TechReq(TechGMode)

	case ComeInWithStoredFallSpeed:
		if exit == LeaveWithGMode {
			return nil
		}
		return model.Free()

	case ComeInWithWallJumpBelow:
		return model.WallJumpReq()

	case ComeInWithSpaceJumpBelow:
		return model.ItemReq(model.SpaceJump)

	case ComeInWithGrapple:
		return model.And(model.ItemReq(model.Grapple), model.TechReq(TechGrapple))

	case ComeInWithDoorStuckSetup:
		if exit == LeaveWithGMode {
			return nil
		}
		return model.Free()

	case ComeInWithBombBoost:
		return model.And(model.ItemReq(model.Bombs), model.TechReq(TechBombBoost))

	case ComeInWithRMode:
		return model.And(model.TechReq(TechRMode), model.TechReq(TechGMode))

	case ComeInWithMockball:
		return model.And(model.ItemReq(model.Morph), model.TechReq(TechMockball))

	case ComeInBlind:
		return model.TechReq(TechBlindJump)

	case ComeInShinechargedJumping:
		if exit != LeaveShinecharged {
			return nil
		}
		return model.Free()

	case ComeInWithSidePlatform:
		if exit == LeaveWithGMode {
			return nil
		}
		return model.Free()

	case ComeInWithCatchFrames:
		return model.TechReq(TechCatchFrames)

	default:
		return nil
	}
}

// runwayHeatRequirement folds a run-frame cost into an energy requirement
// when the relevant room is heated, or returns Free otherwise.
func runwayHeatRequirement(frames model.Capacity, heated bool) *model.Requirement {
	if !heated {
		return model.Free()
	}
	cost := HeatFrameCost(frames)
	return model.EnergyReq(int(cost))
}
