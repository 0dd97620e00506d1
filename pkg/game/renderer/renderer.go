// Package renderer defines the collaborator surface for drawing the
// game. The core never calls a renderer; renderers consume snapshots
// read-only and feed intents back through the turn engine. Backends
// implement Renderer; the TUI implementation lives in the tui
// subpackage.
package renderer

import (
	"derelict/pkg/engine/input"
	"derelict/pkg/game/state"
)

// TextStyle selects one of the renderer's semantic text styles.
type TextStyle int

// Text styles
const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleSubtle
	StylePlayer
	StyleHazard
	StyleWarning
	StyleGood
	StyleDoor
	StyleObjective
	StyleEvidence
	StyleDenied
)

// Renderer is a display backend. Implementations draw a snapshot and
// collect player intents; they never mutate game state.
type Renderer interface {
	// Init prepares colors and terminal state.
	Init()

	// Clear wipes the display before a frame.
	Clear()

	// RenderFrame draws one full frame for the snapshot.
	RenderFrame(s *state.GameState)

	// ReadIntent blocks for the next player intent.
	ReadIntent() (input.Intent, error)

	// Prompt asks for one line of free text.
	Prompt(label string) (string, error)

	// ShowMessage prints a line outside the frame.
	ShowMessage(msg string)

	// StyleText applies a semantic style for out-of-frame text.
	StyleText(text string, style TextStyle) string
}
