package turn

import (
	"derelict/pkg/engine/grid"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/state"
)

// droneTurn runs every active drone once the player's action has
// landed. A drone acts only on its movement interval: it strikes when
// the player is within reach, otherwise it takes one step closer.
// Drones are visited in sorted-ID order and never share a tile with
// another entity, so the whole phase is deterministic.
func droneTurn(n *state.GameState) {
	for _, e := range n.Entities.ByKind(entities.KindDrone) {
		drone := e.(*entities.Drone)
		if drone.Disabled {
			continue
		}
		if drone.MoveEvery > 1 && n.Turn%drone.MoveEvery != 0 {
			continue
		}

		playerPos := n.PlayerPos()
		if n.Player.Alive && drone.Pos().Chebyshev(playerPos) <= 1 {
			n.DamagePlayer(n.Rules.DroneDamage)
			n.Logf("A maintenance drone attacks! Integrity %d%%.", n.Player.HP)
			continue
		}

		if next, ok := chaseStep(n, drone.Pos(), playerPos); ok {
			n.Entities.Move(drone.ID(), next)
		}
	}
}

// chaseStep picks the drone's single step toward target: close the
// longer axis first, slide along the other when the first is blocked.
// Ties prefer the horizontal axis so the choice never depends on
// anything but positions.
func chaseStep(n *state.GameState, from, target grid.Point) (grid.Point, bool) {
	dx := sign(target.X - from.X)
	dy := sign(target.Y - from.Y)
	if dx == 0 && dy == 0 {
		return grid.Point{}, false
	}

	stepX := grid.Point{X: from.X + dx, Y: from.Y}
	stepY := grid.Point{X: from.X, Y: from.Y + dy}

	first, second := stepX, stepY
	if abs(target.Y-from.Y) > abs(target.X-from.X) {
		first, second = stepY, stepX
	}

	for _, p := range []grid.Point{first, second} {
		if p == from {
			continue
		}
		if droneCanEnter(n, p) {
			return p, true
		}
	}
	return grid.Point{}, false
}

// droneCanEnter reports whether a drone may occupy p: walkable and
// clear of everything solid, the player included. Open doorways pass;
// their walkability already lives on the tile.
func droneCanEnter(n *state.GameState, p grid.Point) bool {
	if !n.Grid.Walkable(p) {
		return false
	}
	for _, e := range n.Entities.At(p) {
		if e.Kind() != entities.KindDoor {
			return false
		}
	}
	return true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
