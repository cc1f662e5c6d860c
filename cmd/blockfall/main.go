// blockfall is a terminal falling-block puzzle game with score-based
// piece unlocks.
//
// Usage:
//
//	blockfall play           - Play the game
//	blockfall menu           - Start the interactive menu
//	blockfall list           - List available games
//	blockfall scores <game>  - Show high scores
//	blockfall replay         - List and verify recorded replays
//	blockfall serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blockfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling-block puzzle in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle game. Clear lines,
build combos, and unlock new piece shapes as your score grows.
Every run is recorded as a seed plus input log, so finished games
can be replayed and verified bit for bit.

Available commands:
  play     - Play the game directly
  menu     - Interactive game picker menu
  list     - Show all available games
  scores   - View high scores
  replay   - List and verify recorded replays
  serve    - Start SSH server for remote play

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall play --seed 42
  blockfall scores blockfall
  blockfall replay list blockfall
  blockfall serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}
