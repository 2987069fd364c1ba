// 2048 is a terminal version of the sliding-tile merge puzzle.
//
// Usage:
//
//	2048 play            - Play in the current terminal
//	2048 scores          - Show high scores
//	2048 serve           - Serve the game over SSH
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.2048/scores.db)
//	--config <path> - Path to a custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `2048 is a terminal version of the classic sliding-tile merge puzzle.

Slide tiles in four directions; equal tiles merge into the next one up,
and every move spawns a new tile. Reach the 2048 tile to win.

Examples:
  2048 play
  2048 play --resume
  2048 play --config ./my-rules.yaml
  2048 scores
  2048 serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
