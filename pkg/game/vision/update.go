// Package vision recomputes what the player can see each turn: the
// current room revealed outright, a shadowcast field of view past it,
// and sensor overlays that read hazards straight through the hull.
// Everything seen once stays explored.
package vision

import (
	"derelict/pkg/engine/grid"
	"derelict/pkg/game/config"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/state"
)

// Update recomputes the visibility flags for the snapshot's current
// player position. It runs once per turn, after the hazard tick, and
// uses no randomness: the same position and grid always see the same
// tiles.
func Update(s *state.GameState) {
	s.Grid.UpdateAll(func(_ grid.Point, t *grid.Tile) {
		t.Visible = false
	})

	origin := s.PlayerPos()

	mark := func(p grid.Point) {
		s.Grid.Update(p, func(t *grid.Tile) {
			t.Visible = true
			t.Explored = true
		})
	}

	// Standing inside a room reveals the whole room and its wall ring,
	// line of sight or not. Interior lighting still works.
	if room, ok := s.RoomAt(origin); ok {
		halo := room.Bounds.Grow(1)
		halo.Each(func(p grid.Point) {
			if s.Grid.InBounds(p) {
				mark(p)
			}
		})
	}

	fieldOfView(s.Grid, origin, s.Rules.FOVRadius, mark)

	for _, sensor := range entities.AllSensors() {
		if s.Player.Sensors.Has(sensor) {
			sweepSensor(s, origin, sensor, mark)
		}
	}
}

// sweepSensor marks every tile within the sensor radius whose hazard
// reading trips the capability's predicate. Sensors measure the field,
// not the light path, so walls do not block them.
func sweepSensor(s *state.GameState, origin grid.Point, sensor entities.Sensor, mark func(grid.Point)) {
	radius := s.Rules.SensorRadius
	radiusSq := radius * radius

	bounds := grid.Rect{
		MinX: origin.X - radius,
		MinY: origin.Y - radius,
		MaxX: origin.X + radius,
		MaxY: origin.Y + radius,
	}
	bounds.Each(func(p grid.Point) {
		if !s.Grid.InBounds(p) || origin.DistSq(p) > radiusSq {
			return
		}
		if senses(s.Rules, sensor, s.Grid.At(p)) {
			mark(p)
		}
	})
}

// senses reports whether one tile's readings trip the given capability.
func senses(rules config.Rules, sensor entities.Sensor, t grid.Tile) bool {
	switch sensor {
	case entities.SensorThermal:
		return t.Heat >= rules.ThermalSeesHeat
	case entities.SensorBarometric:
		return t.Walkable && t.Pressure <= rules.BarometricSeesBelow
	case entities.SensorParticulate:
		return t.Smoke >= rules.ParticulateSeesSmoke
	default:
		return false
	}
}
