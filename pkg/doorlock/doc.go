// Package doorlock assigns randomized lock colors to a subset of a map's
// doors. Candidate doors are filtered by a deny-list (gray, save, map
// station, refill station, Pants-room internal, and item-adjacent doors)
// and by per-tile/per-room exclusion constraints (no two ammo locks on the
// same map tile, no two beam locks in the same room) before the remainder
// are shuffled and assigned colors under the active DoorsMode.
package doorlock
