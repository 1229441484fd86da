// Package placement implements the item placement engine: the iterative,
// bidirectional-reachability-driven filler that decides which item goes at
// which location. Randomizer.Randomize runs start/hub selection, then loops
// placement steps (flag/door closure, classification, item split, filler
// selection, key selection & verification) until a step makes no more
// progress, then finalizes and hands off to pkg/spoiler.
package placement
