package placement

import "errors"

// Sentinel errors returned by Randomize, one per logical failure condition
// a placement attempt can end in. None of these represent a bug; a caller
// retrying attempts should expect to see them and move to the next seed.
var (
	// ErrNoInitialBireachable is returned when the very first step finds no
	// bireachable item location at all.
	ErrNoInitialBireachable = errors.New("placement: no item location is bireachable from the starting hub")

	// ErrGameNotBeatable is returned when the step loop terminates without
	// the game becoming logically beatable.
	ErrGameNotBeatable = errors.New("placement: attempt finished without the game becoming beatable")

	// ErrKeyItemsNotCollectible is returned when at least one unique (key)
	// item still has a remaining count after the whole attempt.
	ErrKeyItemsNotCollectible = errors.New("placement: not all required key items could be placed")

	// ErrPhantoonNotDefeatable names the failure of a final-state Phantoon
	// defeat check. Randomize makes no such check and never returns it.
	ErrPhantoonNotDefeatable = errors.New("placement: Phantoon is not defeatable in the final state")

	// ErrNoAccessibleSaveAtStepOne is returned when early_save is set and
	// no save location is reachable after the very first step.
	ErrNoAccessibleSaveAtStepOne = errors.New("placement: no save location is reachable after step 1 with early_save set")

	// ErrStartLocationSearchExhausted is returned when start/hub selection
	// tries every sampled candidate without finding a usable pair.
	ErrStartLocationSearchExhausted = errors.New("placement: exhausted every candidate start location without finding a usable hub")
)
