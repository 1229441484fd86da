package placement

import "github.com/exploro/maprando/pkg/model"

// BaseItemCounts returns the starting items_remaining vector before
// difficulty overrides, location-count capping, or starting-item
// subtraction: one of each unique key item, and the base expansion counts.
func BaseItemCounts() map[model.Item]int {
	counts := make(map[model.Item]int)
	for _, it := range model.AllItems() {
		if it.IsUnique() {
			counts[it] = 1
		}
	}
	counts[model.Super] = 10
	counts[model.PowerBomb] = 10
	counts[model.ETank] = 14
	counts[model.ReserveTank] = 4
	counts[model.Nothing] = 0
	return counts
}

// RidleyProficiencyTankFloor returns the minimum combined E-tank +
// Reserve-tank count required for a given Ridley-proficiency tier
// (0 = hardest, 3 = easiest), so that EnsureTankFloor can top up the base
// count when a harder tier demands more guaranteed health.
func RidleyProficiencyTankFloor(tier int) int {
	floors := []int{11, 9, 7, 3}
	if tier < 0 || tier >= len(floors) {
		return floors[len(floors)-1]
	}
	return floors[tier]
}

// EnsureTankFloor raises counts[ETank]+counts[ReserveTank] up to the given
// floor by adding E-tanks, leaving Reserve tanks untouched (matching the
// base game's preference for guaranteed max-energy over reserve capacity).
func EnsureTankFloor(counts map[model.Item]int, floor int) {
	combined := counts[model.ETank] + counts[model.ReserveTank]
	if combined < floor {
		counts[model.ETank] += floor - combined
	}
}

// CapByLocationCount reduces Missile and then Nothing counts while the total
// item count exceeds the number of item locations, then fills any remaining
// shortfall with Missiles. Other items are never trimmed, so the total can
// still exceed the location count once both are at zero.
func CapByLocationCount(counts map[model.Item]int, numLocations int) {
	total := func() int {
		sum := 0
		for _, n := range counts {
			sum += n
		}
		return sum
	}

	for total() > numLocations && counts[model.Missile] > 0 {
		counts[model.Missile]--
	}
	for total() > numLocations && counts[model.Nothing] > 0 {
		counts[model.Nothing]--
	}

	if remainder := numLocations - total(); remainder > 0 {
		counts[model.Missile] += remainder
	}
}

// ApplyPoolOverrides adds each named override's delta to counts, ignoring
// unrecognized item names and flooring any count at zero rather than
// letting an aggressive negative override go negative.
func ApplyPoolOverrides(counts map[model.Item]int, overrides map[string]int) {
	for name, delta := range overrides {
		it, ok := model.ItemFromName(name)
		if !ok {
			continue
		}
		counts[it] += delta
		if counts[it] < 0 {
			counts[it] = 0
		}
	}
}

// SubtractStartingItems removes one count for every item the chosen start
// location already grants the player (e.g. an escape-mode dummy start that
// begins fully equipped).
func SubtractStartingItems(counts map[model.Item]int, starting []model.Item) {
	for _, it := range starting {
		if counts[it] > 0 {
			counts[it]--
		}
	}
}
