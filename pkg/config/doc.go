// Package config defines DifficultyConfig, the YAML-backed tunable set that
// governs how hard a placement attempt assumes the player is willing to
// play: which techs and notable strats are enabled, how aggressively items
// progress, and how doors and the start location are randomized. It is a
// validated YAML struct with a content hash, in the same shape as other
// difficulty-style config types in this module's lineage, but every field
// is this randomizer's own vocabulary.
package config
