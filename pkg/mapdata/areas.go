package mapdata

import "github.com/exploro/maprando/pkg/rng"

// RandomizeAreas permutes which of the map's six fixed areas each room's
// Area value maps to, and independently permutes the two subareas within
// each destination area. A room whose Area was 2 and Subarea was 0 ends up
// with whatever area areaMapping[2] names, and whatever subarea
// subareaMapping[areaMapping[2]][0] names — the subarea permutation is
// chosen per destination area, not per source area, so two source areas
// landing on the same destination area still only contribute one subarea
// shuffle between them.
func RandomizeAreas(m *Map, seed uint64) {
	r := rng.NewFromSeed(seed)

	areaMapping := make([]int, NumAreas)
	for i := range areaMapping {
		areaMapping[i] = i
	}
	r.Shuffle(len(areaMapping), func(i, j int) {
		areaMapping[i], areaMapping[j] = areaMapping[j], areaMapping[i]
	})

	subareaMapping := make([][]int, NumAreas)
	for i := range subareaMapping {
		sub := make([]int, NumSubareas)
		for j := range sub {
			sub[j] = j
		}
		r.Shuffle(len(sub), func(i, j int) {
			sub[i], sub[j] = sub[j], sub[i]
		})
		subareaMapping[i] = sub
	}

	for i := range m.Rooms {
		newArea := areaMapping[m.Area[i]]
		m.Subarea[i] = subareaMapping[newArea][m.Subarea[i]]
		m.Area[i] = newArea
	}
}
