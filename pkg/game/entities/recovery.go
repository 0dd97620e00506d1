package entities

import "derelict/pkg/engine/grid"

// RecoveryBot is a single-use rescue unit. While primed, a fatal hit
// pulls the player to its tile instead of ending the run, and the bot
// is consumed.
type RecoveryBot struct {
	Base
	Primed bool
}

// NewRecoveryBot creates a dormant recovery bot.
func NewRecoveryBot(id string, at grid.Point) *RecoveryBot {
	return &RecoveryBot{Base: Base{EID: id, At: at}}
}

// Kind returns KindRecoveryBot.
func (r *RecoveryBot) Kind() Kind {
	return KindRecoveryBot
}

// Label returns the display name for log lines.
func (r *RecoveryBot) Label() string {
	return "recovery bot"
}

func (r *RecoveryBot) clone() Entity {
	c := *r
	return &c
}
