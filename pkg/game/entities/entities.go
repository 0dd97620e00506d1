// Package entities contains the interactive objects that populate a
// station: the player bot, doors, power relays, sensor pickups,
// evidence, the data core, drones, the recovery bot, and hazard vents.
// Each kind is its own struct, so interaction code can type-switch over
// a closed set instead of probing property maps.
package entities

import "derelict/pkg/engine/grid"

// Kind discriminates the concrete entity types
type Kind int

// Entity kinds
const (
	KindPlayer Kind = iota
	KindDoor
	KindRelay
	KindSensorPickup
	KindEvidence
	KindDataCore
	KindDrone
	KindRecoveryBot
	KindVent
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindDoor:
		return "door"
	case KindRelay:
		return "relay"
	case KindSensorPickup:
		return "sensor"
	case KindEvidence:
		return "evidence"
	case KindDataCore:
		return "data core"
	case KindDrone:
		return "drone"
	case KindRecoveryBot:
		return "recovery bot"
	case KindVent:
		return "vent"
	default:
		return "unknown"
	}
}

// Entity is implemented by every concrete kind. All mutation goes
// through Collection.Mutate so snapshot sharing stays safe.
type Entity interface {
	ID() string
	Kind() Kind
	Pos() grid.Point
	// Label is the short name used in log lines.
	Label() string

	setPos(grid.Point)
	clone() Entity
}

// Base carries the fields every kind shares. Embed it by value; the
// per-kind clone method copies the whole struct.
type Base struct {
	EID string
	At  grid.Point
}

// ID returns the entity's stable identifier.
func (b *Base) ID() string {
	return b.EID
}

// Pos returns the entity's tile.
func (b *Base) Pos() grid.Point {
	return b.At
}

func (b *Base) setPos(p grid.Point) {
	b.At = p
}
