// derelict drops a remote inspection bot onto an abandoned station to
// work out what killed it.
//
// Usage:
//
//	derelict play                 - Explore a station interactively
//	derelict generate             - Print the full map for a seed
//	derelict replay <script>      - Re-run a recorded session headlessly
//
// Global flags:
//
//	--seed <value>  - World seed (0 = derived from the clock)
//	--rules <path>  - YAML rules overlay (missing file = defaults)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"derelict/pkg/logger"
)

var (
	flagSeed  int64
	flagRules string
)

func main() {
	logger.Init()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "derelict",
	Short: "Investigate a dead station by remote bot",
	Long: `derelict generates an abandoned station from a seed and puts you in
control of an inspection bot. Restore the relay grid, survive the
hazards, gather evidence, and name the incident that killed the crew.

The same seed always produces the same station and the same outcome
for the same inputs, so sessions can be recorded and replayed.

Examples:
  derelict play
  derelict play --seed 77 --record run.json
  derelict generate --seed 77
  derelict replay run.json`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed (0 = derived from the clock)")
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "rules.yaml", "Path to a YAML rules overlay")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(replayCmd)
}
