package placement

import (
	"github.com/exploro/maprando/pkg/model"
	"github.com/exploro/maprando/pkg/traversal"
)

// DifficultyTier is one rung of the forced-mode tier ladder: a
// progressively weaker subset of enabled techs/strats than the attempt's
// actual settings, used only to measure how hard a placement is, never to
// gate real traversal.
type DifficultyTier struct {
	Techs  []int
	Strats []int
}

// ApplyTier returns a fresh GlobalState that copies only global's resource
// maxima and enables only the techs/strats this tier names, for a throwaway
// auxiliary traversal. Items, flags and doors from global are not carried.
func ApplyTier(global *model.GlobalState, tier DifficultyTier) *model.GlobalState {
	g := model.NewGlobalState()
	g.MaxEnergy, g.MaxReserve = global.MaxEnergy, global.MaxReserve
	g.MaxMissiles, g.MaxSupers, g.MaxPowerBombs = global.MaxMissiles, global.MaxSupers, global.MaxPowerBombs
	for _, t := range tier.Techs {
		g.EnableTech(t)
	}
	for _, s := range tier.Strats {
		g.EnableStrat(s)
	}
	return g
}

// HardestTierReaching runs an auxiliary forward search at each tier (easiest
// first per the caller's ordering) and returns the index of the first tier
// at which candidate is NOT reachable — that tier identifies the candidate's
// difficulty. If every tier reaches it, returns len(tiers).
//
// Each tier is applied to a new empty GlobalState. A candidate that is
// itself in keyVisited counts as not reachable at the first tier, so the
// function returns 0 for it; other keyVisited vertices do not affect the
// search.
func HardestTierReaching(engine *traversal.Engine, tiers []DifficultyTier, start model.VertexID, startLocal model.LocalState, candidate model.VertexID, keyVisited map[model.VertexID]bool, trail *traversal.Trail) int {
	for i, tier := range tiers {
		g := ApplyTier(model.NewGlobalState(), tier)
		result := engine.Traverse(model.MetricFull, g, start, startLocal, true, trail)
		if !result.Reachable[candidate] || keyVisited[candidate] {
			return i
		}
	}
	return len(tiers)
}

// ChooseHardestLocation picks, among candidates, the one whose
// HardestTierReaching index is largest (fails at the deepest tier), marking
// ties by input order so the choice stays deterministic given fixed input
// order (callers shuffle candidates upstream via the item-precedence RNG
// when tie-breaking randomness is desired).
func ChooseHardestLocation(engine *traversal.Engine, tiers []DifficultyTier, start model.VertexID, startLocal model.LocalState, candidates []model.VertexID, keyVisited map[model.VertexID]bool, trail *traversal.Trail) (model.VertexID, int) {
	best := candidates[0]
	bestTier := -1
	for _, c := range candidates {
		tier := HardestTierReaching(engine, tiers, start, startLocal, c, keyVisited, trail)
		if tier > bestTier {
			bestTier = tier
			best = c
		}
	}
	return best, bestTier
}

// MarkKeyVisited marks every vertex on the given route (forward path to a
// chosen hard location) as key-visited, discouraging subsequent placements
// from reusing the same strat.
func MarkKeyVisited(engine *traversal.Engine, keyVisited map[model.VertexID]bool, route []int) {
	for _, linkIdx := range route {
		link := engine.Links[linkIdx]
		keyVisited[link.FromVertex] = true
		keyVisited[link.ToVertex] = true
	}
}
