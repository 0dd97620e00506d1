package turn

import (
	"derelict/pkg/engine/grid"
	"derelict/pkg/game/deduction"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/hazards"
	"derelict/pkg/game/state"
	"derelict/pkg/game/vision"
)

// Engine sequences one turn. It carries no per-run state of its own, so
// one engine can drive any number of snapshots.
type Engine struct {
	// Scorer judges deduction submissions. Nil leaves submissions
	// recorded but unscored.
	Scorer deduction.Scorer
}

// NewEngine returns an engine using the reference scorer.
func NewEngine() *Engine {
	return &Engine{Scorer: deduction.ReferenceScorer{}}
}

// Step advances the simulation by one action. Terminal snapshots and
// invalid actions come back unchanged, same pointer, no turn cost;
// everything else returns a fresh snapshot one turn later.
func (e *Engine) Step(s *state.GameState, a Action) *state.GameState {
	if s.GameOver {
		return s
	}
	if !e.valid(s, a) {
		return s
	}

	n := s.Clone()
	n.Turn++

	e.apply(n, a)

	droneTurn(n)
	hazards.Tick(n)
	vision.Update(n)
	e.settle(n)

	return n
}

// valid gates the action against the current snapshot. A stunned player
// can only wait it out.
func (e *Engine) valid(s *state.GameState, a Action) bool {
	if s.Player.StunnedFor > 0 {
		return a.Type == Wait
	}

	switch a.Type {
	case Move:
		if !a.Dir.IsValid() {
			return false
		}
		return s.Grid.CanTraverse(s.PlayerPos(), a.Dir, s.Grid.Walkable)
	case Interact:
		target, ok := s.Entities.Get(a.TargetID)
		if !ok {
			return false
		}
		return inReach(s, target.Pos())
	case Journal:
		return a.Text != ""
	case SubmitDeduction:
		return findCase(s, a.TargetID) != nil
	case Scan, Clean, Wait, Look:
		return true
	default:
		return false
	}
}

// inReach reports whether the player can work on target: same tile or
// one step away, with diagonal reach subject to the same corner rule as
// movement.
func inReach(s *state.GameState, target grid.Point) bool {
	p := s.PlayerPos()
	if p == target {
		return true
	}
	dx := target.X - p.X
	dy := target.Y - p.Y
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
		return false
	}
	if dx != 0 && dy != 0 {
		if !s.Grid.Walkable(grid.Point{X: p.X + dx, Y: p.Y}) {
			return false
		}
		if !s.Grid.Walkable(grid.Point{X: p.X, Y: p.Y + dy}) {
			return false
		}
	}
	return true
}

// apply runs the validated action's effect on the cloned snapshot.
func (e *Engine) apply(n *state.GameState, a Action) {
	switch a.Type {
	case Move:
		n.Entities.Move(entities.PlayerID, n.PlayerPos().Add(a.Dir.Delta()))
	case Interact:
		resolveInteraction(n, a.TargetID)
	case Scan:
		scan(n)
	case Clean:
		clean(n)
	case Wait:
		if n.Player.StunnedFor > 0 {
			n.Player.StunnedFor--
			if n.Player.StunnedFor == 0 {
				n.Logf("Servos respond again.")
			} else {
				n.Logf("Servos locked. %d turns to recover.", n.Player.StunnedFor)
			}
		}
	case Look:
		look(n)
	case Journal:
		n.Journal = append(n.Journal, state.JournalEntry{Turn: n.Turn, Text: a.Text})
	case SubmitDeduction:
		e.submit(n, a.TargetID, a.Text)
	}
}

// findCase looks a deduction case up by ID.
func findCase(s *state.GameState, id string) *deduction.Case {
	for i := range s.Cases {
		if s.Cases[i].ID == id {
			return &s.Cases[i]
		}
	}
	return nil
}

// submit routes a deduction answer through the scorer and records the
// verdict. The scoring presentation lives outside the core.
func (e *Engine) submit(n *state.GameState, caseID, answer string) {
	c := findCase(n, caseID)

	verdict := deduction.VerdictUnscored
	if e.Scorer != nil {
		verdict = e.Scorer.Score(*c, answer, n.CollectedTags)
	}

	n.Submissions = append(n.Submissions, deduction.Submission{
		CaseID:  caseID,
		Answer:  answer,
		Turn:    n.Turn,
		Verdict: verdict,
	})
	n.Logf("Deduction filed for %q: %s.", c.Question, verdict)
}

// settle evaluates the end-of-turn outcome: download complete, player
// destroyed, or the station's power finally gone.
func (e *Engine) settle(n *state.GameState) {
	if core := dataCore(n); core != nil && core.Downloaded {
		n.GameOver = true
		n.Victory = true
		n.Logf("Archive download complete. The station's story is recovered.")
		return
	}

	if !n.Player.Alive {
		if bot := primedRecoveryBot(n); bot != nil {
			revive(n, bot)
		} else {
			n.GameOver = true
			n.Defeat = "chassis destroyed"
			n.Logf("Critical failure. The custodian goes dark.")
			return
		}
	}

	if n.Turn >= n.Rules.MaxTurns {
		n.GameOver = true
		n.Defeat = "power depleted"
		n.Logf("Station power exhausted. Everything goes quiet.")
	}
}

// dataCore returns the victory entity, if the map has one.
func dataCore(s *state.GameState) *entities.DataCore {
	for _, e := range s.Entities.ByKind(entities.KindDataCore) {
		return e.(*entities.DataCore)
	}
	return nil
}

// primedRecoveryBot returns the one rescue unit if it is armed.
func primedRecoveryBot(s *state.GameState) *entities.RecoveryBot {
	for _, e := range s.Entities.ByKind(entities.KindRecoveryBot) {
		if bot := e.(*entities.RecoveryBot); bot.Primed {
			return bot
		}
	}
	return nil
}

// revive transfers the wrecked player to the recovery bot's tile,
// restores a fraction of hull, and consumes the bot.
func revive(n *state.GameState, bot *entities.RecoveryBot) {
	pos := bot.Pos()
	n.Entities.Move(entities.PlayerID, pos)
	n.Entities.Remove(bot.ID())

	n.Player.HP = n.Player.MaxHP * n.Rules.RevivePercent / 100
	if n.Player.HP < 1 {
		n.Player.HP = 1
	}
	n.Player.Alive = true
	n.Player.StunnedFor = 0

	n.Logf("Recovery bot hauls the chassis clear and restarts it at %d%% integrity.", n.Player.HP)
}
