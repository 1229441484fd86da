package traversal

import (
	"github.com/exploro/maprando/pkg/gamedata"
	"github.com/exploro/maprando/pkg/model"
)

// ApplyRequirement evaluates req against global and the resource budget
// already spent in local, returning the LocalState after spending whatever
// the requirement's leaves cost, or model.ImpossibleLocalState if global
// does not satisfy a gating leaf (a missing tech, strat, or item) or if the
// resulting consumption would exceed global's maxima.
func ApplyRequirement(req *model.Requirement, global *model.GlobalState, local model.LocalState) model.LocalState {
	if req == nil {
		return model.ImpossibleLocalState
	}
	if local.IsImpossible() {
		return model.ImpossibleLocalState
	}

	switch req.Kind {
	case model.ReqFree:
		return local

	case model.ReqNever:
		return model.ImpossibleLocalState

	case model.ReqTech:
		if !global.HasTech(req.Tech) {
			return model.ImpossibleLocalState
		}
		return local

	case model.ReqStrat:
		if !global.HasStrat(req.Strat) {
			return model.ImpossibleLocalState
		}
		return local

	case model.ReqItem:
		if !global.HasItem(req.Item) {
			return model.ImpossibleLocalState
		}
		return local

	case model.ReqWallJump:
		if !global.HasItem(model.WallJump) && !global.HasTech(req.Tech) {
			return model.ImpossibleLocalState
		}
		return local

	case model.ReqMissiles:
		local.MissilesUsed += float64(req.Amount)
		return checkBudget(local, global)

	case model.ReqSupers:
		local.SupersUsed += float64(req.Amount)
		return checkBudget(local, global)

	case model.ReqPowerBombs:
		local.PowerBombsUsed += float64(req.Amount)
		return checkBudget(local, global)

	case model.ReqEnergy:
		local.EnergyUsed += float64(req.Amount)
		return checkBudget(local, global)

	case model.ReqReserve:
		local.ReserveUsed += float64(req.Amount)
		return checkBudget(local, global)

	case model.ReqHeatFrames:
		if req.Heated {
			local.EnergyUsed += float64(req.Amount) / 4.0
		}
		return checkBudget(local, global)

	case model.ReqShinechargeFrames:
		if local.ShinechargeFramesRemaining < req.Amount {
			return model.ImpossibleLocalState
		}
		local.ShinechargeFramesRemaining -= req.Amount
		return local

	case model.ReqThreshold:
		// Threshold leaves gate on a caller-supplied numeric fact (extra
		// run speed, etc.) already folded into the link's params at
		// synthesis time; by the time traversal sees it, it is informational
		// rather than something to re-check, so it always passes.
		return local

	case model.ReqShinecharge:
		cost := 85
		if req.Heated {
			cost += 20
		}
		local.ShinechargeFramesRemaining = cost
		return local

	case model.ReqSpeedball:
		if !global.HasItem(model.Morph) {
			return model.ImpossibleLocalState
		}
		return local

	case model.ReqBlueSpeed:
		return local

	case model.ReqAnd:
		for _, child := range req.Children {
			local = ApplyRequirement(child, global, local)
			if local.IsImpossible() {
				return model.ImpossibleLocalState
			}
		}
		return local

	case model.ReqOr:
		return applyOr(req.Children, global, local)

	default:
		return model.ImpossibleLocalState
	}
}

// applyOr tries each child against the same starting local state and keeps
// whichever surviving result has the lowest TotalFrames, since at this
// point in the tree we have not yet committed to a single cost metric.
func applyOr(children []*model.Requirement, global *model.GlobalState, local model.LocalState) model.LocalState {
	best := model.ImpossibleLocalState
	haveBest := false
	for _, child := range children {
		result := ApplyRequirement(child, global, local)
		if result.IsImpossible() {
			continue
		}
		if !haveBest || result.TotalFrames() < best.TotalFrames() {
			best = result
			haveBest = true
		}
	}
	if !haveBest {
		return model.ImpossibleLocalState
	}
	return best
}

func checkBudget(local model.LocalState, global *model.GlobalState) model.LocalState {
	if local.Exceeds(global) {
		return model.ImpossibleLocalState
	}
	return local
}

// ApplyLink advances local across a single link: it requires a pre-existing
// shinecharge when StartsWithShinecharge is set, applies the link's
// Requirement, and forces a fresh shinecharge on arrival when
// EndsWithShinecharge is set (overriding whatever decay the requirement
// itself computed).
func ApplyLink(link *model.Link, global *model.GlobalState, local model.LocalState) model.LocalState {
	if link.StartsWithShinecharge && local.ShinechargeFramesRemaining <= 0 {
		return model.ImpossibleLocalState
	}
	result := ApplyRequirement(link.Requirement, global, local)
	if result.IsImpossible() {
		return model.ImpossibleLocalState
	}
	if link.EndsWithShinecharge {
		result.ShinechargeFramesRemaining = 85
	}
	return result
}

// WeaponMaskSatisfied is a convenience used by callers assembling
// Requirement trees for beam-gated door locks: reports whether global's
// current weapon mask has every bit set in required.
func WeaponMaskSatisfied(global *model.GlobalState, required uint64) bool {
	return gamedata.WeaponMask(global)&required == required
}
