package entities

import "derelict/pkg/engine/grid"

// PlayerID is the fixed identifier of the player bot in the collection.
const PlayerID = "player"

// PlayerBot marks the player's position in the entity collection. The
// mutable condition (health, sensors, stun) lives on the snapshot's
// player state, not here.
type PlayerBot struct {
	Base
}

// NewPlayerBot creates the player marker.
func NewPlayerBot(at grid.Point) *PlayerBot {
	return &PlayerBot{Base: Base{EID: PlayerID, At: at}}
}

// Kind returns KindPlayer.
func (p *PlayerBot) Kind() Kind {
	return KindPlayer
}

// Label returns the display name for log lines.
func (p *PlayerBot) Label() string {
	return "custodian bot"
}

func (p *PlayerBot) clone() Entity {
	c := *p
	return &c
}
