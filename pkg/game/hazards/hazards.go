// Package hazards advances the station's hazard fields one turn: decay,
// neighbor spread, vent injection, bulkhead seals on pressure collapse,
// soot fallout, scheduled deterioration, and the damage all of it does
// to anything alive. Heat and smoke run on their stored scale; pressure
// runs inverted, as vacuum, so the three fields share one pipeline and
// a hull breach spreads exactly like a fire does.
package hazards

import (
	"derelict/pkg/engine/grid"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/state"
)

// Tick advances every hazard field by one turn. The snapshot has
// already been cloned by the turn engine; Tick mutates it in place and
// must be called exactly once per accepted action.
func Tick(s *state.GameState) {
	for _, f := range grid.AllFields() {
		diffuse(s, f)
	}
	inject(s)
	if due(s) {
		deteriorate(s)
	}
	sealBulkheads(s)
	depositSoot(s)
	applyDamage(s)
}

// level reads field f on the hazard scale. Pressure reads as vacuum so
// its decay restores atmosphere and its spread drains neighbors.
func level(t grid.Tile, f grid.Field) int {
	if f == grid.Pressure {
		return grid.MaxLevel - t.Pressure
	}
	return t.Level(f)
}

// setLevel writes v back through the same scale as level.
func setLevel(t *grid.Tile, f grid.Field, v int) {
	if f == grid.Pressure {
		t.Pressure = grid.MaxLevel - v
		return
	}
	t.SetLevel(f, v)
}

// ceilFrac returns ceil(a*b/100) for non-negative a and b.
func ceilFrac(a, b int) int {
	return (a*b + 99) / 100
}

// clamp bounds v to [0, MaxLevel].
func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > grid.MaxLevel {
		return grid.MaxLevel
	}
	return v
}

// diffuse applies one field's decay and spread. All reads come from a
// buffer of the previous turn's values, so iteration order cannot
// change the outcome: a neighbor's net gain is the pushed amount minus
// its own decay, floored at zero.
func diffuse(s *state.GameState, f grid.Field) {
	tuning := s.Rules.Tuning(f.String())
	g := s.Grid

	prev := make([][]int, g.Height)
	walk := make([][]bool, g.Height)
	for y := range prev {
		prev[y] = make([]int, g.Width)
		walk[y] = make([]bool, g.Width)
	}
	g.ForEach(func(p grid.Point, t grid.Tile) {
		prev[p.Y][p.X] = level(t, f)
		walk[p.Y][p.X] = t.Walkable
	})

	// Decay first, spread on top, floor once at write time: a tile
	// receiving spread nets the pushed amount minus its own decay.
	next := make([][]int, g.Height)
	for y := range next {
		next[y] = make([]int, g.Width)
		for x := range next[y] {
			next[y][x] = prev[y][x] - tuning.Decay
		}
	}

	// Spread crosses only mutually walkable pairs; a wall or a shut
	// door on either side stops it cold.
	g.ForEach(func(p grid.Point, t grid.Tile) {
		v := prev[p.Y][p.X]
		if v < tuning.SpreadMin || !walk[p.Y][p.X] {
			return
		}
		amount := ceilFrac(tuning.SpreadRate, v)
		if amount <= 0 {
			return
		}
		for _, d := range grid.CardinalDirections() {
			n := p.Add(d.Delta())
			if !g.InBounds(n) || !walk[n.Y][n.X] {
				continue
			}
			next[n.Y][n.X] += amount
		}
	})

	g.UpdateAll(func(p grid.Point, t *grid.Tile) {
		setLevel(t, f, clamp(next[p.Y][p.X]))
	})
}

// inject runs every unsuppressed vent's per-turn feed, capped at the
// vent's own limit and independent of decay and spread.
func inject(s *state.GameState) {
	for _, e := range s.Entities.ByKind(entities.KindVent) {
		v := e.(*entities.Vent)
		if v.Suppressed {
			continue
		}
		injectVent(s, v)
	}
}

// injectVent adds one feed of the vent's field to its tile.
func injectVent(s *state.GameState, v *entities.Vent) {
	s.Grid.Update(v.Pos(), func(t *grid.Tile) {
		cur := level(*t, v.Field)
		if cur >= v.Cap {
			return
		}
		cur += v.Rate
		if cur > v.Cap {
			cur = v.Cap
		}
		setLevel(t, v.Field, clamp(cur))
	})
}

// due reports whether this turn is a deterioration turn.
func due(s *state.GameState) bool {
	every := s.Rules.DeteriorationEvery
	return every > 0 && s.Turn > 0 && s.Turn%every == 0
}

// deteriorate is the station getting worse on a schedule: every vent
// feeds a second time, and a few corridor tiles picked from the
// snapshot's own random stream fill with smoke. The stream's cursor
// travels with the state, so a replayed action sequence deteriorates
// identically.
func deteriorate(s *state.GameState) {
	for _, e := range s.Entities.ByKind(entities.KindVent) {
		v := e.(*entities.Vent)
		if v.Suppressed {
			continue
		}
		injectVent(s, v)
	}

	var corridors []grid.Point
	s.Grid.ForEach(func(p grid.Point, t grid.Tile) {
		if t.Kind == grid.Corridor {
			corridors = append(corridors, p)
		}
	})
	if len(corridors) == 0 {
		return
	}

	for i := 0; i < s.Rules.DeteriorationTiles; i++ {
		p := corridors[s.Rng.IntN(len(corridors))]
		s.Grid.Update(p, func(t *grid.Tile) {
			t.Smoke = clamp(t.Smoke + s.Rules.DeteriorationSmoke)
		})
	}

	s.Logf("The station shudders. Somewhere, something else gives way.")
}

// sealBulkheads slams open doors shut next to any tile whose pressure
// has collapsed below the bulkhead threshold. Runs after the spread
// pass in the same tick.
func sealBulkheads(s *state.GameState) {
	var seal []grid.Point
	s.Grid.ForEach(func(p grid.Point, t grid.Tile) {
		if !t.Walkable || t.Pressure >= s.Rules.BulkheadPressure {
			return
		}
		for _, d := range grid.CardinalDirections() {
			n := p.Add(d.Delta())
			if !s.Grid.InBounds(n) {
				continue
			}
			if nt := s.Grid.At(n); nt.Kind == grid.Door && nt.Walkable {
				seal = append(seal, n)
			}
		}
	})

	for _, p := range seal {
		t := s.Grid.At(p)
		if !t.Walkable {
			continue // already slammed by an earlier neighbor
		}
		s.Grid.Update(p, func(t *grid.Tile) {
			t.Walkable = false
			t.Glyph = grid.GlyphDoorSealed
		})
		for _, e := range s.Entities.At(p) {
			if door, ok := e.(*entities.Door); ok && !door.Sealed {
				m, _ := s.Entities.Mutate(door.ID())
				md := m.(*entities.Door)
				md.Sealed = true
				md.Open = false
				s.Logf("Pressure collapse: a bulkhead slams shut.")
			}
		}
	}
}

// depositSoot settles thick smoke into grime the cleaning action has to
// deal with later.
func depositSoot(s *state.GameState) {
	s.Grid.UpdateAll(func(p grid.Point, t *grid.Tile) {
		if t.Smoke >= s.Rules.SootSmoke && t.Dirt < grid.MaxLevel {
			t.Dirt++
		}
	})
}

// applyDamage hurts anything alive standing in a hazard. Amounts follow
// straight from the tile values; there is no roll involved.
func applyDamage(s *state.GameState) {
	if s.Player.Alive {
		t := s.Grid.At(s.PlayerPos())
		if t.Heat >= s.Rules.PainHeat {
			s.DamagePlayer(s.Rules.HeatDamage)
			s.Logf("Heat sears through the chassis. Integrity %d%%.", s.Player.HP)
		}
		if t.Pressure < s.Rules.LowPressure {
			s.DamagePlayer(s.Rules.PressureDamage)
			s.Logf("Atmosphere critical. Seals straining. Integrity %d%%.", s.Player.HP)
		}
	}

	for _, e := range s.Entities.ByKind(entities.KindDrone) {
		d := e.(*entities.Drone)
		if d.Disabled {
			continue
		}
		t := s.Grid.At(d.Pos())
		dmg := 0
		if t.Heat >= s.Rules.PainHeat {
			dmg += s.Rules.HeatDamage
		}
		if t.Pressure < s.Rules.LowPressure {
			dmg += s.Rules.PressureDamage
		}
		if dmg == 0 {
			continue
		}
		m, _ := s.Entities.Mutate(d.ID())
		md := m.(*entities.Drone)
		md.Damage(dmg)
		if md.Disabled {
			s.Logf("A maintenance drone seizes up and goes dark.")
		}
	}
}
