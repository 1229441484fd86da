package placement

import (
	"github.com/exploro/maprando/pkg/config"
	"github.com/exploro/maprando/pkg/model"
	"github.com/exploro/maprando/pkg/rng"
)

// PriorityGroups is the difficulty-config-supplied bucketing of key items
// into Early/Normal/Late precedence tiers that GeneratePrecedence shuffles.
type PriorityGroups struct {
	Early  []model.Item
	Normal []model.Item
	Late   []model.Item
}

// GeneratePrecedence builds the ordering of distinct key items the step
// loop consults when picking which item to place next, per §4.3.3.
func GeneratePrecedence(cfg *config.DifficultyConfig, groups PriorityGroups, r *rng.RNG) []model.Item {
	var order []model.Item
	switch cfg.ItemPriorityStrength {
	case config.PriorityHeavy:
		order = heavyPrecedence(groups, r)
	default:
		order = moderatePrecedence(groups, r)
	}

	order = applyProgressionPlacement(cfg, order)
	order = swapSpazerBeforePlasma(order)
	return order
}

func heavyPrecedence(groups PriorityGroups, r *rng.RNG) []model.Item {
	early := shuffledCopy(groups.Early, r)
	normal := shuffledCopy(groups.Normal, r)
	late := shuffledCopy(groups.Late, r)

	out := make([]model.Item, 0, len(early)+len(normal)+len(late))
	out = append(out, early...)
	out = append(out, normal...)
	out = append(out, late...)
	return out
}

// moderatePrecedence implements the duplicate-shuffle-deduplicate
// construction: duplicating Early and Late items before one shared shuffle
// biases them toward (respectively) the front and back of the bag on
// average, without forcing them there outright the way heavy mode does.
func moderatePrecedence(groups PriorityGroups, r *rng.RNG) []model.Item {
	bag := make([]model.Item, 0, 2*len(groups.Early)+len(groups.Normal)+2*len(groups.Late))
	bag = append(bag, groups.Early...)
	bag = append(bag, groups.Early...)
	bag = append(bag, groups.Normal...)
	bag = append(bag, groups.Late...)
	bag = append(bag, groups.Late...)

	r.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })

	bag = removeLaterDuplicate(bag, groups.Early)
	reverseItems(bag)
	bag = removeLaterDuplicate(bag, groups.Late)
	reverseItems(bag)
	return bag
}

// removeLaterDuplicate drops, for each item in tracked, the second
// occurrence encountered while scanning bag left to right, keeping the
// first (earliest) occurrence.
func removeLaterDuplicate(bag []model.Item, tracked []model.Item) []model.Item {
	isTracked := make(map[model.Item]bool, len(tracked))
	for _, it := range tracked {
		isTracked[it] = true
	}
	seen := make(map[model.Item]bool, len(tracked))
	out := bag[:0:0]
	for _, it := range bag {
		if isTracked[it] {
			if seen[it] {
				continue
			}
			seen[it] = true
		}
		out = append(out, it)
	}
	return out
}

func reverseItems(s []model.Item) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func shuffledCopy(items []model.Item, r *rng.RNG) []model.Item {
	out := append([]model.Item(nil), items...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// applyProgressionPlacement prepends Nothing/Missile under Slow progression
// (so they spread throughout placement) or appends them otherwise (so true
// key items keep precedence over filler-like entries).
func applyProgressionPlacement(cfg *config.DifficultyConfig, order []model.Item) []model.Item {
	filler := []model.Item{model.Nothing, model.Missile}
	if cfg.ProgressionRate == config.ProgressionSlow {
		return append(append([]model.Item{}, filler...), order...)
	}
	return append(append([]model.Item{}, order...), filler...)
}

// swapSpazerBeforePlasma swaps Spazer and Plasma's positions if Plasma
// currently precedes Spazer, since Plasma supersedes Spazer and a player
// who gets Plasma first logically never needs Spazer's strats.
func swapSpazerBeforePlasma(order []model.Item) []model.Item {
	spazerIdx, plasmaIdx := -1, -1
	for i, it := range order {
		switch it {
		case model.Spazer:
			spazerIdx = i
		case model.Plasma:
			plasmaIdx = i
		}
	}
	if spazerIdx >= 0 && plasmaIdx >= 0 && plasmaIdx < spazerIdx {
		order[spazerIdx], order[plasmaIdx] = order[plasmaIdx], order[spazerIdx]
	}
	return order
}

// MaybeSwapTankType performs the per-step 50% E-tank/Reserve-tank swap when
// random_tank is set, returning a possibly-modified copy of order.
func MaybeSwapTankType(cfg *config.DifficultyConfig, order []model.Item, r *rng.RNG) []model.Item {
	if !cfg.RandomTank || !r.Bool() {
		return order
	}
	out := append([]model.Item(nil), order...)
	for i, it := range out {
		switch it {
		case model.ETank:
			out[i] = model.ReserveTank
		case model.ReserveTank:
			out[i] = model.ETank
		}
	}
	return out
}
