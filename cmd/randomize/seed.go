package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/exploro/maprando/pkg/export"
	"github.com/exploro/maprando/pkg/logging"
	"github.com/exploro/maprando/pkg/placement"
	"github.com/exploro/maprando/pkg/spoiler"
)

var (
	outputDir   string
	seedFlag    uint64
	maxAttempts int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run item and door placement and write a spoiler log",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&outputDir, "output", ".", "directory to write the spoiler log and map exports")
	seedCmd.Flags().Uint64Var(&seedFlag, "seed", 0, "numeric seed (0 picks one from the current time)")
	seedCmd.Flags().IntVar(&maxAttempts, "attempts", 20, "maximum placement attempts before giving up")
}

func runSeed(cmd *cobra.Command, args []string) error {
	level := "info"
	if verbose {
		level = "debug"
	}
	logging.InitGlobalLogger(logging.Config{Level: level})

	gd, m, err := loadInputs()
	if err != nil {
		return err
	}
	cfg, err := loadDifficulty()
	if err != nil {
		return fmt.Errorf("loading difficulty config: %w", err)
	}

	engine := buildEngine(gd, m)
	shipVertex, shipHub := shipVertexAndHub(gd)
	rz := placement.NewRandomizer(gd, engine, cfg, defaultPriorityGroups(), defaultTiers(), shipVertex, shipHub)

	seed := seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	displayName := placement.NewSeedName()

	var state *placement.RandomizationState
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		logging.Info("starting placement attempt", "attempt", attempt, "seed", seed+uint64(attempt))
		state, lastErr = rz.Randomize(attempt, seed+uint64(attempt), displayName)
		if lastErr == nil {
			break
		}
		logging.Warn("attempt failed", "attempt", attempt, "error", lastErr.Error())
	}
	if state == nil {
		return fmt.Errorf("no attempt succeeded after %d tries: %w", maxAttempts, lastErr)
	}

	log, err := spoiler.Build(state, gd, engine, nil)
	if err != nil {
		return fmt.Errorf("building spoiler log: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	jsonPath := filepath.Join(outputDir, fmt.Sprintf("spoiler_%s.json", displayName))
	f, err := os.Create(jsonPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", jsonPath, err)
	}
	defer f.Close()
	if err := export.WriteJSON(f, log); err != nil {
		return fmt.Errorf("writing spoiler JSON: %w", err)
	}

	svgPath := filepath.Join(outputDir, fmt.Sprintf("map_%s.svg", displayName))
	sf, err := os.Create(svgPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", svgPath, err)
	}
	defer sf.Close()
	export.WriteMapSVG(sf, m)

	fmt.Printf("Seed %s placed successfully (%d items, %d locations)\n", displayName, len(log.Items), len(state.Locations))
	fmt.Printf("Wrote %s\n", jsonPath)
	fmt.Printf("Wrote %s\n", svgPath)
	return nil
}
