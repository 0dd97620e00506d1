// Package devtools holds the collaborator-facing harness helpers: an
// ASCII dump of a snapshot for eyeballing generated maps, and the
// replay script format the headless runner and regression tooling use.
// Nothing in here mutates a snapshot except through the turn engine.
package devtools

import (
	"fmt"
	"strings"

	"derelict/pkg/engine/grid"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/state"
)

// entityGlyph is the overlay character for each entity kind in a dump.
func entityGlyph(e entities.Entity) (rune, bool) {
	switch v := e.(type) {
	case *entities.PlayerBot:
		return '@', true
	case *entities.Relay:
		if v.Active {
			return 'R', true
		}
		return 'r', true
	case *entities.SensorPickup:
		return 's', true
	case *entities.Evidence:
		if v.Buried {
			return 0, false
		}
		return 'e', true
	case *entities.DataCore:
		return 'C', true
	case *entities.Drone:
		if v.Disabled {
			return 'x', true
		}
		return 'D', true
	case *entities.RecoveryBot:
		return 'B', true
	case *entities.Vent:
		return 'V', true
	default:
		return 0, false
	}
}

// DumpMap renders the snapshot as one ASCII frame. With revealAll the
// whole board prints; otherwise unexplored tiles print as blanks, the
// way the player has seen the station so far.
func DumpMap(s *state.GameState, revealAll bool) string {
	overlay := make(map[grid.Point]rune)
	s.Entities.Each(func(e entities.Entity) {
		if g, ok := entityGlyph(e); ok {
			overlay[e.Pos()] = g
		}
	})

	var b strings.Builder
	b.Grow((s.Grid.Width + 1) * s.Grid.Height)

	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			p := grid.Point{X: x, Y: y}
			t := s.Grid.At(p)
			if !revealAll && !t.Explored {
				b.WriteRune(' ')
				continue
			}
			if g, ok := overlay[p]; ok {
				b.WriteRune(g)
				continue
			}
			b.WriteRune(t.Glyph)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Summary prints the one-paragraph state readout the generate and
// replay commands finish with.
func Summary(s *state.GameState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "seed %d, incident %q, turn %d\n", s.Seed, s.Incident, s.Turn)
	fmt.Fprintf(&b, "%d rooms, %d entities, player at %v with %d/%d HP\n",
		len(s.Rooms), s.Entities.Len(), s.PlayerPos(), s.Player.HP, s.Player.MaxHP)

	switch {
	case s.Victory:
		b.WriteString("outcome: victory — archive recovered\n")
	case s.GameOver:
		fmt.Fprintf(&b, "outcome: defeat — %s\n", s.Defeat)
	default:
		b.WriteString("outcome: run still open\n")
	}
	return b.String()
}
