package placement

import (
	"github.com/exploro/maprando/pkg/config"
	"github.com/exploro/maprando/pkg/model"
	"github.com/exploro/maprando/pkg/rng"
)

// NumKeyItemsToPlace implements §4.3 phase 3's item split: how many of the
// B bireachable + O one-way-reachable unplaced slots should receive key
// items this step, the rest going to filler.
func NumKeyItemsToPlace(cfg *config.DifficultyConfig, keyRemaining, totalRemaining, b, o int) int {
	if keyRemaining <= 0 {
		return 0
	}
	if totalRemaining < (b+o)+20 {
		if b < keyRemaining {
			return b
		}
		return keyRemaining
	}

	switch cfg.ProgressionRate {
	case config.ProgressionSlow:
		return clampInt(1, 1, minInt(b, keyRemaining))

	case config.ProgressionFast:
		n := roundRatio(keyRemaining, totalRemaining, b+o) * 2
		return clampInt(n, 1, minInt(b, keyRemaining))

	default: // Uniform
		n := roundRatio(keyRemaining, totalRemaining, b+o)
		return clampInt(n, 1, minInt(b, keyRemaining))
	}
}

func roundRatio(num, den, scale int) int {
	if den == 0 {
		return 0
	}
	return int(float64(num)/float64(den)*float64(scale) + 0.5)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// fillerBuckets is the output of bucketing the item-precedence order per
// §4.3 phase 4.
type fillerBuckets struct {
	Prioritize []model.Item
	Mix        []model.Item
	Delay      []model.Item
	ExtraDelay []model.Item
}

// BucketFiller partitions precedence order into the four filler buckets.
// spentFirstCopy reports, for a given item, whether its first copy has
// already been placed somewhere (demoting it from "prioritize" to
// "extra delay").
func BucketFiller(precedence []model.Item, remaining map[model.Item]int, spentFirstCopy map[model.Item]bool) fillerBuckets {
	var b fillerBuckets
	for _, it := range precedence {
		if remaining[it] <= 0 {
			continue
		}
		switch {
		case it.IsFiller():
			b.Mix = append(b.Mix, it)
		case it.IsExpansion():
			b.Delay = append(b.Delay, it)
		case !spentFirstCopy[it]:
			b.Prioritize = append(b.Prioritize, it)
		default:
			b.ExtraDelay = append(b.ExtraDelay, it)
		}
	}
	return b
}

// SelectFiller concatenates prioritize -> shuffled(mix) -> delay ->
// extra-delay, truncated to quota, and collapses extra-delay entries to
// Nothing when the difficulty config says to stop placing items early.
func SelectFiller(cfg *config.DifficultyConfig, buckets fillerBuckets, quota int, r *rng.RNG) []model.Item {
	mix := append([]model.Item(nil), buckets.Mix...)
	r.Shuffle(len(mix), func(i, j int) { mix[i], mix[j] = mix[j], mix[i] })

	extraDelay := buckets.ExtraDelay
	if cfg.StopItemPlacementEarly {
		extraDelay = make([]model.Item, len(buckets.ExtraDelay))
		for i := range extraDelay {
			extraDelay[i] = model.Nothing
		}
	}

	var out []model.Item
	out = append(out, buckets.Prioritize...)
	out = append(out, mix...)
	out = append(out, buckets.Delay...)
	out = append(out, extraDelay...)

	if len(out) > quota {
		out = out[:quota]
	}
	return out
}

// SelectKeyCandidates rebuilds the priority order for key selection: under
// Slow progression the original precedence is kept as-is; otherwise items
// with at least one copy already placed are pushed to the back, so that
// genuinely fresh key items win precedence for the remaining slots.
func SelectKeyCandidates(cfg *config.DifficultyConfig, precedence []model.Item, remaining map[model.Item]int, partiallyPlaced map[model.Item]bool) []model.Item {
	var candidates []model.Item
	for _, it := range precedence {
		if remaining[it] > 0 && it.IsUnique() {
			candidates = append(candidates, it)
		}
	}
	if cfg.ProgressionRate == config.ProgressionSlow {
		return candidates
	}

	var fresh, placed []model.Item
	for _, it := range candidates {
		if partiallyPlaced[it] {
			placed = append(placed, it)
		} else {
			fresh = append(fresh, it)
		}
	}
	return append(fresh, placed...)
}

// SelectKthCandidate returns the attemptNum-th candidate (modulo the
// remainder length) for the k-th key item slot, implementing the retry rule
// that varies only the final selection across attempts while keeping the
// first k-1 choices fixed.
func SelectKthCandidate(remainder []model.Item, attemptNum int) (model.Item, bool) {
	if len(remainder) == 0 {
		return model.Nothing, false
	}
	return remainder[attemptNum%len(remainder)], true
}
