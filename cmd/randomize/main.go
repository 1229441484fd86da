package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	gameData string
	mapFile  string
	verbose  bool
	version  = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "randomize",
	Short:   "Item and door randomizer for a Metroid-style exploration platformer",
	Long:    `randomize builds a logically-validated item and door placement for a given map and difficulty configuration, then writes a spoiler log and map exports.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "difficulty configuration YAML file (default is built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&gameData, "gamedata", "", "game-data JSON file (required)")
	rootCmd.PersistentFlags().StringVar(&mapFile, "map", "", "map layout JSON file (required)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(doorsCmd)
	rootCmd.AddCommand(areasCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
