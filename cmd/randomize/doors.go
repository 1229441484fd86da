package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/exploro/maprando/pkg/doorlock"
)

var doorsSeed uint64

var doorsCmd = &cobra.Command{
	Use:   "doors",
	Short: "Assign door lock colors for a map without running full placement",
	Args:  cobra.NoArgs,
	RunE:  runDoors,
}

func init() {
	doorsCmd.Flags().Uint64Var(&doorsSeed, "seed", 0, "numeric seed (0 picks a random one)")
}

func runDoors(cmd *cobra.Command, args []string) error {
	gd, m, err := loadInputs()
	if err != nil {
		return err
	}
	cfg, err := loadDifficulty()
	if err != nil {
		return err
	}

	seed := doorsSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	candidates := doorlock.CandidatesFromMap(m, doorKindClassifier(gd))
	locked := doorlock.Assign(cfg, candidates, seed)

	fmt.Printf("Assigned %d door locks out of %d candidates (mode=%s, seed=%d)\n", len(locked), len(candidates), cfg.DoorsMode, seed)
	for _, d := range locked {
		fmt.Printf("  room=%d node=%d tile=(%d,%d) color=%s\n", d.RoomIdx, d.NodeIdx, d.MapTileX, d.MapTileY, d.Color)
	}
	return nil
}
