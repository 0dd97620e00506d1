package state

import "derelict/pkg/engine/grid"

// Zone labels a room's function. Evidence templates, vent placement,
// and dirt levels key off it.
type Zone string

// Station zones
const (
	ZoneEngineering Zone = "Engineering"
	ZoneMedical     Zone = "Medical"
	ZoneScience     Zone = "Science"
	ZoneQuarters    Zone = "Quarters"
	ZoneCargo       Zone = "Cargo"
	ZoneCommand     Zone = "Command"
)

// Room is a named rectangular region of the station, fixed at
// generation time. Bounds cover the walkable interior only.
type Room struct {
	ID     int
	Name   string
	Zone   Zone
	Bounds grid.Rect
}

// Center returns the room's middle tile.
func (r Room) Center() grid.Point {
	return r.Bounds.Center()
}
