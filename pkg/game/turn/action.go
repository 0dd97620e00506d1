// Package turn runs the simulation's step function: it validates one
// player action against the current snapshot, applies its effect, gives
// the drones their move, advances the hazards, recomputes vision, and
// settles whether the run is over. Every accepted action costs exactly
// one turn; a rejected action costs nothing.
package turn

import (
	"fmt"
	"strings"

	"derelict/pkg/engine/grid"
)

// Type discriminates the closed action set
type Type int

// Action types
const (
	Move Type = iota
	Interact
	Scan
	Clean
	Wait
	Look
	Journal
	SubmitDeduction
)

// String returns the action type's wire name
func (t Type) String() string {
	switch t {
	case Move:
		return "move"
	case Interact:
		return "interact"
	case Scan:
		return "scan"
	case Clean:
		return "clean"
	case Wait:
		return "wait"
	case Look:
		return "look"
	case Journal:
		return "journal"
	case SubmitDeduction:
		return "submit"
	default:
		return "unknown"
	}
}

// Action is one player intent. Only the fields the type reads are set.
type Action struct {
	Type Type
	// Dir is the compass point for Move.
	Dir grid.Direction
	// TargetID names the entity for Interact and the case for
	// SubmitDeduction.
	TargetID string
	// Text carries the journal note or the submitted answer.
	Text string
}

// MoveAction builds a Move toward d.
func MoveAction(d grid.Direction) Action {
	return Action{Type: Move, Dir: d}
}

// InteractAction builds an Interact with the named entity.
func InteractAction(targetID string) Action {
	return Action{Type: Interact, TargetID: targetID}
}

// ScanAction builds a sensor sweep.
func ScanAction() Action {
	return Action{Type: Scan}
}

// CleanAction builds a Clean of the player's tile.
func CleanAction() Action {
	return Action{Type: Clean}
}

// WaitAction builds a Wait.
func WaitAction() Action {
	return Action{Type: Wait}
}

// LookAction builds a Look around the player.
func LookAction() Action {
	return Action{Type: Look}
}

// JournalAction builds a journal note.
func JournalAction(text string) Action {
	return Action{Type: Journal, Text: text}
}

// SubmitAction builds a deduction submission for a case.
func SubmitAction(caseID, answer string) Action {
	return Action{Type: SubmitDeduction, TargetID: caseID, Text: answer}
}

// Encode renders the action in the replay-script form Parse reads back.
func (a Action) Encode() string {
	switch a.Type {
	case Move:
		return "move " + strings.ToLower(a.Dir.String())
	case Interact:
		return "interact " + a.TargetID
	case Journal:
		return "journal " + a.Text
	case SubmitDeduction:
		return fmt.Sprintf("submit %s %s", a.TargetID, a.Text)
	default:
		return a.Type.String()
	}
}

// Parse reads one replay-script line back into an Action.
func Parse(line string) (Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("parse action: empty line")
	}

	switch fields[0] {
	case "move":
		if len(fields) != 2 {
			return Action{}, fmt.Errorf("parse action %q: move wants a direction", line)
		}
		d, ok := grid.ParseDirection(fields[1])
		if !ok {
			return Action{}, fmt.Errorf("parse action %q: unknown direction %q", line, fields[1])
		}
		return MoveAction(d), nil
	case "interact":
		if len(fields) != 2 {
			return Action{}, fmt.Errorf("parse action %q: interact wants a target id", line)
		}
		return InteractAction(fields[1]), nil
	case "scan":
		return ScanAction(), nil
	case "clean":
		return CleanAction(), nil
	case "wait":
		return WaitAction(), nil
	case "look":
		return LookAction(), nil
	case "journal":
		if len(fields) < 2 {
			return Action{}, fmt.Errorf("parse action %q: journal wants text", line)
		}
		return JournalAction(strings.TrimSpace(strings.TrimPrefix(line, "journal"))), nil
	case "submit":
		if len(fields) < 3 {
			return Action{}, fmt.Errorf("parse action %q: submit wants a case id and an answer", line)
		}
		return SubmitAction(fields[1], strings.Join(fields[2:], " ")), nil
	default:
		return Action{}, fmt.Errorf("parse action %q: unknown verb %q", line, fields[0])
	}
}
