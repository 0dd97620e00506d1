package entities

import "derelict/pkg/engine/grid"

// Relay is one of the power nodes gating the data-core vault. When all
// of them are active, every gate door on the map unlocks.
type Relay struct {
	Base
	Active bool
}

// NewRelay creates an inactive relay.
func NewRelay(id string, at grid.Point) *Relay {
	return &Relay{Base: Base{EID: id, At: at}}
}

// Kind returns KindRelay.
func (r *Relay) Kind() Kind {
	return KindRelay
}

// Label returns the display name for log lines.
func (r *Relay) Label() string {
	return "power relay"
}

func (r *Relay) clone() Entity {
	c := *r
	return &c
}
