// skyflap is a terminal flappy-style arcade game.
//
// Usage:
//
//	skyflap play             - Play in the current terminal
//	skyflap scores           - Show run history and best score
//	skyflap serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.skyflap/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "skyflap",
	Short: "Skyflap - a flappy bird for your terminal",
	Long: `Skyflap is a terminal arcade game: flap through the pipe gaps,
rack up a score, and chase your persistent best.

Available commands:
  play     - Play in the current terminal
  scores   - View run history and best score
  serve    - Start SSH server for remote play

Examples:
  skyflap play
  skyflap play --difficulty hard
  skyflap scores --tui
  skyflap serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyflap/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
