package config

import (
	"crypto/sha256"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProgressionRate controls how evenly key items are spread across the
// filler-item timeline: Slow backloads them, Fast frontloads them, Uniform
// spreads them evenly.
type ProgressionRate string

const (
	ProgressionSlow    ProgressionRate = "slow"
	ProgressionUniform ProgressionRate = "uniform"
	ProgressionFast    ProgressionRate = "fast"
)

// ItemPlacementStyle chooses between placing items as soon as they become
// reachable (Neutral) or deliberately steering toward the hardest currently
// reachable location (Forced), per the forced-mode tier ladder.
type ItemPlacementStyle string

const (
	PlacementNeutral ItemPlacementStyle = "neutral"
	PlacementForced  ItemPlacementStyle = "forced"
)

// ItemPriorityStrength controls how strongly the precedence generator
// groups items into Early/Normal/Late buckets: Moderate allows more
// shuffling across bucket boundaries, Heavy enforces them strictly.
type ItemPriorityStrength string

const (
	PriorityModerate ItemPriorityStrength = "moderate"
	PriorityHeavy    ItemPriorityStrength = "heavy"
)

// DoorsMode controls how many of a room's doors are eligible to receive a
// randomized lock color.
type DoorsMode string

const (
	DoorsModeBlue   DoorsMode = "blue"   // vanilla doors only, no locks added
	DoorsModeAmmo   DoorsMode = "ammo"   // ammo-only colored locks
	DoorsModeBeam   DoorsMode = "beam"   // ammo and beam colored locks
)

// StartLocationMode controls where an attempt may begin.
type StartLocationMode string

const (
	StartShip   StartLocationMode = "ship"
	StartEscape StartLocationMode = "escape"
	StartRandom StartLocationMode = "random"
)

// DifficultyConfig is the full set of tunables for one placement attempt.
// It is immutable once loaded; Randomizer.Randomize takes it by value
// reference but never mutates it, so the same config can drive many
// attempts within a single randoserver process.
type DifficultyConfig struct {
	ProgressionRate        ProgressionRate      `yaml:"progression_rate" json:"progression_rate"`
	ItemPlacementStyle     ItemPlacementStyle   `yaml:"item_placement_style" json:"item_placement_style"`
	ItemPriorityStrength   ItemPriorityStrength `yaml:"item_priority_strength" json:"item_priority_strength"`
	DoorsMode              DoorsMode            `yaml:"doors_mode" json:"doors_mode"`
	StartLocationMode      StartLocationMode    `yaml:"start_location_mode" json:"start_location_mode"`
	StopItemPlacementEarly bool                 `yaml:"stop_item_placement_early" json:"stop_item_placement_early"`
	EarlySave              bool                 `yaml:"early_save" json:"early_save"`
	RandomTank             bool                 `yaml:"random_tank" json:"random_tank"`

	// Techs and Strats are the numbered IDs (see pkg/gamedata) enabled for
	// this difficulty tier. A forced-mode tier ladder walks a list of
	// progressively smaller DifficultyConfigs, so these are plain slices
	// rather than a single canonical "difficulty level" enum.
	Techs  []int `yaml:"techs" json:"techs"`
	Strats []int `yaml:"strats" json:"strats"`

	SupersDoubleDamage bool `yaml:"supers_double_damage" json:"supers_double_damage"`

	QualityOfLifeItemsInVanillaLocations bool `yaml:"qol_items_in_vanilla_locations" json:"qol_items_in_vanilla_locations"`

	// RidleyProficiency selects how large a guaranteed health floor (combined
	// E-tank + Reserve-tank count) Init enforces before location-count
	// capping: 0 assumes the least Ridley proficiency and so guarantees the
	// largest floor, 3 the most proficiency and the smallest.
	RidleyProficiency int `yaml:"ridley_proficiency" json:"ridley_proficiency"`

	// ItemPoolOverrides adjusts the base item pool by display name before
	// starting-item subtraction and location-count capping: a positive delta
	// adds that many extra copies, a negative one removes them (floored at
	// zero). Unrecognized names are ignored rather than rejected, so a typo
	// degrades to "no override" instead of failing the whole config.
	ItemPoolOverrides map[string]int `yaml:"item_pool_overrides" json:"item_pool_overrides"`
}

// Default returns a permissive starting config: uniform progression,
// neutral placement, moderate priority strength, ammo-only door locks,
// ship start.
func Default() *DifficultyConfig {
	return &DifficultyConfig{
		ProgressionRate:      ProgressionUniform,
		ItemPlacementStyle:   PlacementNeutral,
		ItemPriorityStrength: PriorityModerate,
		DoorsMode:            DoorsModeAmmo,
		StartLocationMode:    StartShip,
		RidleyProficiency:    2,
	}
}

// LoadConfig reads a YAML difficulty config from path and validates it.
func LoadConfig(path string) (*DifficultyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports whether every enumerated field holds a recognized value.
func (c *DifficultyConfig) Validate() error {
	switch c.ProgressionRate {
	case ProgressionSlow, ProgressionUniform, ProgressionFast:
	default:
		return fmt.Errorf("invalid progression_rate: %q", c.ProgressionRate)
	}
	switch c.ItemPlacementStyle {
	case PlacementNeutral, PlacementForced:
	default:
		return fmt.Errorf("invalid item_placement_style: %q", c.ItemPlacementStyle)
	}
	switch c.ItemPriorityStrength {
	case PriorityModerate, PriorityHeavy:
	default:
		return fmt.Errorf("invalid item_priority_strength: %q", c.ItemPriorityStrength)
	}
	switch c.DoorsMode {
	case DoorsModeBlue, DoorsModeAmmo, DoorsModeBeam:
	default:
		return fmt.Errorf("invalid doors_mode: %q", c.DoorsMode)
	}
	switch c.StartLocationMode {
	case StartShip, StartEscape, StartRandom:
	default:
		return fmt.Errorf("invalid start_location_mode: %q", c.StartLocationMode)
	}
	if c.RidleyProficiency < 0 || c.RidleyProficiency > 3 {
		return fmt.Errorf("invalid ridley_proficiency: %d (must be 0-3)", c.RidleyProficiency)
	}
	return nil
}

// Hash returns a stable content hash of the config: the SHA-256 of its YAML
// encoding, in the form rng.NewRNG takes as its configHash argument.
func (c *DifficultyConfig) Hash() []byte {
	data, err := yaml.Marshal(c)
	if err != nil {
		// Marshaling a struct of plain scalars and slices cannot fail; a
		// panic here would indicate a field type this function has not
		// been updated for.
		panic(fmt.Sprintf("config: marshal for hash: %v", err))
	}
	sum := sha256.Sum256(data)
	return sum[:]
}
