package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"derelict/pkg/game/config"
	"derelict/pkg/game/devtools"
	"derelict/pkg/game/generator"
	"derelict/pkg/game/state"
	"derelict/pkg/logger"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a station and print the revealed map",
	Long: `Generate the station for a seed and print the fully revealed map
with a summary, without starting a session. Useful for inspecting what
a seed produces.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Re-run a recorded session and print the outcome",
	Long: `Load a recorded script, regenerate its station from the embedded
seed, apply every action in order, and print the final map and
summary. A replayed script always ends in the same state it was
recorded in.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

// resolveSeed turns the --seed flag into a concrete seed.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	seed := time.Now().UnixNano()
	logger.Log.WithField("seed", seed).Info("no seed given, derived one from the clock")
	return seed
}

// newWorld builds a fresh station from the flags.
func newWorld(seed int64) (*state.GameState, error) {
	rules, err := config.LoadIfPresent(flagRules)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	return generator.GenerateWithRules(seed, rules)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	seed := resolveSeed()
	s, err := newWorld(seed)
	if err != nil {
		return err
	}

	fmt.Print(devtools.DumpMap(s, true))
	fmt.Println(devtools.Summary(s))
	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	script, err := devtools.LoadScript(args[0])
	if err != nil {
		return err
	}

	s, err := devtools.Run(script)
	if err != nil {
		return err
	}

	fmt.Print(devtools.DumpMap(s, true))
	fmt.Println(devtools.Summary(s))

	for _, sub := range s.Submissions {
		fmt.Printf("deduction %q answered %q: %s\n", sub.CaseID, sub.Answer, sub.Verdict)
	}
	fmt.Println(outcomeLine(s))
	return nil
}

// outcomeLine summarizes how a session ended.
func outcomeLine(s *state.GameState) string {
	switch {
	case s.Victory:
		return "outcome: data core recovered"
	case s.Defeat != "":
		return "outcome: bot lost (" + s.Defeat + ")"
	default:
		return "outcome: session still in progress"
	}
}
