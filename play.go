package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"derelict/pkg/engine/grid"
	"derelict/pkg/engine/input"
	"derelict/pkg/game/deduction"
	"derelict/pkg/game/devtools"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/renderer"
	"derelict/pkg/game/renderer/tui"
	"derelict/pkg/game/state"
	"derelict/pkg/game/turn"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Explore a station interactively",
	Long: `Start an interactive session. Move with the arrow keys or compass
words (n, ne, east, ...), press i to interact with something adjacent,
x to scan, c to clean, j to take a note, d to submit a deduction, and
? for the full key list.

Pass --record to write every turn to a script that replay can re-run.`,
	Args: cobra.NoArgs,
	RunE: runPlayCmd,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write the session to a replay script at this path")
}

func runPlayCmd(cmd *cobra.Command, args []string) error {
	seed := resolveSeed()
	s, err := newWorld(seed)
	if err != nil {
		return err
	}

	var rec *devtools.Recorder
	if flagRecord != "" {
		rec = devtools.NewRecorder(seed)
	}

	r := tui.New()
	r.Init()
	engine := turn.NewEngine()

	for {
		r.Clear()
		r.RenderFrame(s)

		if s.GameOver {
			showOutcome(r, s)
			break
		}

		intent, err := r.ReadIntent()
		if err != nil {
			return err
		}
		if intent.Action == input.ActionQuit {
			r.ShowMessage("")
			r.ShowMessage(r.StyleText("Connection closed.", renderer.StyleSubtle))
			break
		}

		action, ok, err := buildAction(r, s, intent)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		next := engine.Step(s, action)
		if next != s && rec != nil {
			rec.Note(action)
		}
		s = next
	}

	if rec != nil {
		if err := rec.Save(flagRecord); err != nil {
			return fmt.Errorf("saving recording: %w", err)
		}
		r.ShowMessage(fmt.Sprintf("Session recorded to %s", flagRecord))
	}
	return nil
}

var moveIntents = map[input.Action]grid.Direction{
	input.ActionMoveNorth:     grid.North,
	input.ActionMoveNorthEast: grid.NorthEast,
	input.ActionMoveEast:      grid.East,
	input.ActionMoveSouthEast: grid.SouthEast,
	input.ActionMoveSouth:     grid.South,
	input.ActionMoveSouthWest: grid.SouthWest,
	input.ActionMoveWest:      grid.West,
	input.ActionMoveNorthWest: grid.NorthWest,
}

// buildAction turns an intent into a turn action, prompting where the
// intent needs a target or free text. ok=false means nothing to step
// (meta intents, cancelled prompts).
func buildAction(r renderer.Renderer, s *state.GameState, intent input.Intent) (turn.Action, bool, error) {
	if dir, isMove := moveIntents[intent.Action]; isMove {
		return turn.MoveAction(dir), true, nil
	}

	switch intent.Action {
	case input.ActionScan:
		return turn.ScanAction(), true, nil
	case input.ActionClean:
		return turn.CleanAction(), true, nil
	case input.ActionWait:
		return turn.WaitAction(), true, nil
	case input.ActionLook:
		return turn.LookAction(), true, nil

	case input.ActionInteract:
		return pickInteraction(r, s)

	case input.ActionJournal:
		text, err := r.Prompt("Note")
		if err != nil {
			return turn.Action{}, false, err
		}
		if strings.TrimSpace(text) == "" {
			return turn.Action{}, false, nil
		}
		return turn.JournalAction(text), true, nil

	case input.ActionDeduce:
		return pickDeduction(r, s)

	case input.ActionHelp:
		showHelp(r)
		return turn.Action{}, false, nil
	case input.ActionViewJournal:
		showJournal(r, s)
		return turn.Action{}, false, nil
	}

	return turn.Action{}, false, nil
}

// pickInteraction finds what the bot is standing next to. One candidate
// is used directly; several prompt for a choice.
func pickInteraction(r renderer.Renderer, s *state.GameState) (turn.Action, bool, error) {
	var candidates []entities.Entity
	pp := s.PlayerPos()
	s.Entities.Each(func(e entities.Entity) {
		if e.Kind() == entities.KindPlayer {
			return
		}
		if pp.Chebyshev(e.Pos()) <= 1 {
			candidates = append(candidates, e)
		}
	})
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID() < candidates[j].ID() })

	switch len(candidates) {
	case 0:
		r.ShowMessage(r.StyleText("Nothing in reach.", renderer.StyleSubtle))
		pause(r)
		return turn.Action{}, false, nil
	case 1:
		return turn.InteractAction(candidates[0].ID()), true, nil
	}

	for i, e := range candidates {
		r.ShowMessage(fmt.Sprintf("  %d) %s", i+1, e.Label()))
	}
	choice, err := r.Prompt("Interact with")
	if err != nil {
		return turn.Action{}, false, err
	}
	idx, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || idx < 1 || idx > len(candidates) {
		return turn.Action{}, false, nil
	}
	return turn.InteractAction(candidates[idx-1].ID()), true, nil
}

// pickDeduction lists the open cases and prompts for an answer.
func pickDeduction(r renderer.Renderer, s *state.GameState) (turn.Action, bool, error) {
	for i, c := range s.Cases {
		status := ""
		for _, sub := range s.Submissions {
			if sub.CaseID == c.ID {
				status = fmt.Sprintf(" [%s]", sub.Verdict)
			}
		}
		r.ShowMessage(fmt.Sprintf("  %d) %s — %s%s", i+1, c.ID, c.Question, status))
	}

	choice, err := r.Prompt("Case")
	if err != nil {
		return turn.Action{}, false, err
	}
	idx, convErr := strconv.Atoi(strings.TrimSpace(choice))
	if convErr != nil || idx < 1 || idx > len(s.Cases) {
		return turn.Action{}, false, nil
	}

	answer, err := r.Prompt("Answer")
	if err != nil {
		return turn.Action{}, false, err
	}
	if strings.TrimSpace(answer) == "" {
		return turn.Action{}, false, nil
	}
	return turn.SubmitAction(s.Cases[idx-1].ID, answer), true, nil
}

func showHelp(r renderer.Renderer) {
	r.ShowMessage(r.StyleText("Controls", renderer.StyleTitle))
	grouped := input.GetBindingsByAction()

	actions := make([]input.Action, 0, len(grouped))
	for a := range grouped {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	for _, a := range actions {
		r.ShowMessage(fmt.Sprintf("  %-14s %s", input.ActionName(a), strings.Join(grouped[a], ", ")))
	}
	pause(r)
}

func showJournal(r renderer.Renderer, s *state.GameState) {
	r.ShowMessage(r.StyleText("Journal", renderer.StyleTitle))
	if len(s.Journal) == 0 {
		r.ShowMessage(r.StyleText("  (no notes yet)", renderer.StyleSubtle))
	}
	for _, entry := range s.Journal {
		r.ShowMessage(fmt.Sprintf("  [%d] %s", entry.Turn, entry.Text))
	}

	if len(s.CollectedTags) > 0 {
		tags := make([]string, len(s.CollectedTags))
		for i, t := range s.CollectedTags {
			tags[i] = string(t)
		}
		r.ShowMessage(fmt.Sprintf("Evidence tags: %s", strings.Join(tags, ", ")))
	}
	pause(r)
}

func showOutcome(r renderer.Renderer, s *state.GameState) {
	r.ShowMessage("")
	switch {
	case s.Victory:
		r.ShowMessage(r.StyleText("Data core recovered. Uplink complete.", renderer.StyleGood))
	default:
		r.ShowMessage(r.StyleText(fmt.Sprintf("Bot lost: %s", s.Defeat), renderer.StyleDenied))
	}

	accepted := 0
	for _, sub := range s.Submissions {
		if sub.Verdict == deduction.VerdictAccepted {
			accepted++
		}
	}
	r.ShowMessage(fmt.Sprintf("Turns: %d  Deductions accepted: %d/%d", s.Turn, accepted, len(s.Cases)))
}

// pause holds the screen until the player presses enter.
func pause(r renderer.Renderer) {
	r.Prompt("(enter to continue)")
}
