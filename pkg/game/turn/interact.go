package turn

import (
	"fmt"
	"strings"

	"derelict/pkg/engine/grid"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/state"
)

// resolveInteraction dispatches on the target's concrete kind. The type
// switch is exhaustive over the entity set; a kind with no interaction
// logs a refusal rather than failing, since the action already cost the
// turn.
func resolveInteraction(n *state.GameState, targetID string) {
	target, _ := n.Entities.Get(targetID)

	switch target.(type) {
	case *entities.Door:
		toggleDoor(n, targetID)
	case *entities.Relay:
		activateRelay(n, targetID)
	case *entities.SensorPickup:
		pickUpSensor(n, targetID)
	case *entities.Evidence:
		collectEvidence(n, targetID)
	case *entities.DataCore:
		downloadCore(n, targetID)
	case *entities.Vent:
		suppressVent(n, targetID)
	case *entities.RecoveryBot:
		primeRecoveryBot(n, targetID)
	case *entities.Drone:
		n.Logf("The drone offers no interface, only intent.")
	default:
		n.Logf("Nothing to work with there.")
	}
}

// toggleDoor opens or closes a door. Locked gate doors hold until the
// relay gate releases them; sealed bulkheads hold until the pressure
// behind them recovers.
func toggleDoor(n *state.GameState, id string) {
	e, _ := n.Entities.Get(id)
	door := e.(*entities.Door)

	if door.Locked {
		n.Logf("The gate door refuses: relay grid incomplete.")
		return
	}
	if door.Sealed {
		if lowPressureNearby(n, door.Pos()) {
			n.Logf("The bulkhead refuses to release against the pressure differential.")
			return
		}
		m, _ := n.Entities.Mutate(id)
		md := m.(*entities.Door)
		md.Sealed = false
		md.Open = true
		setDoorTile(n, md.Pos(), true)
		n.Logf("The bulkhead unseals with a long hiss.")
		return
	}

	m, _ := n.Entities.Mutate(id)
	md := m.(*entities.Door)
	md.Open = !md.Open
	setDoorTile(n, md.Pos(), md.Open)
	if md.Open {
		n.Logf("A door grinds open.")
	} else {
		n.Logf("A door rolls shut.")
	}
}

// lowPressureNearby reports whether any walkable neighbor of p is still
// below the bulkhead threshold.
func lowPressureNearby(n *state.GameState, p grid.Point) bool {
	for _, d := range grid.CardinalDirections() {
		q := p.Add(d.Delta())
		if !n.Grid.InBounds(q) {
			continue
		}
		if t := n.Grid.At(q); t.Walkable && t.Pressure < n.Rules.BulkheadPressure {
			return true
		}
	}
	return false
}

// setDoorTile keeps the tile's walkability and glyph in step with the
// door entity.
func setDoorTile(n *state.GameState, p grid.Point, open bool) {
	n.Grid.Update(p, func(t *grid.Tile) {
		t.Walkable = open
		if open {
			t.Glyph = grid.GlyphDoorOpen
		} else {
			t.Glyph = grid.GlyphDoorClosed
		}
	})
}

// activateRelay powers one gate relay. Powering a relay on an
// overheated tile discharges into the chassis and stuns the player.
// The last relay releases every gate door at once.
func activateRelay(n *state.GameState, id string) {
	e, _ := n.Entities.Get(id)
	relay := e.(*entities.Relay)

	if relay.Active {
		n.Logf("The relay is already humming.")
		return
	}

	m, _ := n.Entities.Mutate(id)
	m.(*entities.Relay).Active = true
	n.Logf("Power relay online.")

	if n.Grid.At(relay.Pos()).Heat >= n.Rules.DischargeHeat {
		n.Player.StunnedFor = n.Rules.StunTurns
		n.Logf("The overheated relay discharges. Servos lock for %d turns.", n.Rules.StunTurns)
	}

	if allRelaysActive(n) {
		releaseGate(n)
	}
}

// allRelaysActive reports whether the relay grid is complete.
func allRelaysActive(n *state.GameState) bool {
	for _, e := range n.Entities.ByKind(entities.KindRelay) {
		if !e.(*entities.Relay).Active {
			return false
		}
	}
	return true
}

// releaseGate unlocks every gate door: the tiles become plain closed
// doors and the door entities drop their lock.
func releaseGate(n *state.GameState) {
	for _, e := range n.Entities.ByKind(entities.KindDoor) {
		door := e.(*entities.Door)
		if !door.Locked {
			continue
		}
		m, _ := n.Entities.Mutate(door.ID())
		m.(*entities.Door).Locked = false
		n.Grid.Update(door.Pos(), func(t *grid.Tile) {
			t.Kind = grid.Door
			t.Glyph = grid.GlyphDoorClosed
		})
	}
	n.Logf("Relay grid complete. Somewhere deep in the station, the vault gate releases.")
}

// pickUpSensor mounts the module and consumes the pickup.
func pickUpSensor(n *state.GameState, id string) {
	e, _ := n.Entities.Get(id)
	pickup := e.(*entities.SensorPickup)

	n.Player.Sensors = n.Player.Sensors.With(pickup.Grants)
	n.Entities.Remove(id)
	n.Logf("Mounted a %s. New readings come online.", pickup.Label())
}

// collectEvidence catalogues a fragment, banking its tags for the
// deduction layer. Buried fragments stay out of reach until their tile
// is cleaned.
func collectEvidence(n *state.GameState, id string) {
	e, _ := n.Entities.Get(id)
	ev := e.(*entities.Evidence)

	if ev.Buried {
		n.Logf("Something is under the grime here. It needs cleaning first.")
		return
	}
	if ev.Collected {
		n.Logf("%q is already catalogued.", ev.Title)
		return
	}

	m, _ := n.Entities.Mutate(id)
	m.(*entities.Evidence).Collected = true
	n.CollectTags(ev.Tags)
	n.Journal = append(n.Journal, state.JournalEntry{
		Turn: n.Turn,
		Text: ev.Title + ": " + ev.Text,
	})
	n.Logf("Catalogued %q.", ev.Title)
}

// downloadCore starts the archive download. The vault has to be
// unlocked first, which means the relay grid has to be complete.
func downloadCore(n *state.GameState, id string) {
	e, _ := n.Entities.Get(id)
	core := e.(*entities.DataCore)

	if core.Downloaded {
		n.Logf("The archive is already copied.")
		return
	}
	if !allRelaysActive(n) {
		n.Logf("The data core is dark. It needs the full relay grid.")
		return
	}

	m, _ := n.Entities.Mutate(id)
	m.(*entities.DataCore).Downloaded = true
	n.Logf("Downloading the station archive...")
}

// suppressVent shuts one hazard source down for good.
func suppressVent(n *state.GameState, id string) {
	e, _ := n.Entities.Get(id)
	vent := e.(*entities.Vent)

	if vent.Suppressed {
		n.Logf("The %s is already sealed off.", vent.Label())
		return
	}

	m, _ := n.Entities.Mutate(id)
	m.(*entities.Vent).Suppressed = true
	n.Logf("Sealed the %s.", vent.Label())
}

// primeRecoveryBot arms or disarms the rescue unit.
func primeRecoveryBot(n *state.GameState, id string) {
	m, _ := n.Entities.Mutate(id)
	bot := m.(*entities.RecoveryBot)
	bot.Primed = !bot.Primed
	if bot.Primed {
		n.Logf("Recovery bot armed. It will answer a distress ping once.")
	} else {
		n.Logf("Recovery bot disarmed.")
	}
}

// scan sweeps the area for the strongest reading of each hazard and
// logs a bearing. Peaks become explored but not visible; the vision
// engine alone decides what is in view.
func scan(n *state.GameState) {
	origin := n.PlayerPos()
	radius := n.Rules.ScanRadius
	radiusSq := radius * radius

	var lines []string

	report := func(name string, p grid.Point, value int, found bool) {
		if !found {
			return
		}
		n.Grid.Update(p, func(t *grid.Tile) { t.Explored = true })
		lines = append(lines, fmt.Sprintf("%s %s reading %d", name, bearing(origin, p), value))
	}

	hotP, hotV, hotOK := peak(n, origin, radiusSq, func(t grid.Tile) (int, bool) {
		return t.Heat, t.Heat > 0
	})
	report("heat", hotP, hotV, hotOK)

	smokeP, smokeV, smokeOK := peak(n, origin, radiusSq, func(t grid.Tile) (int, bool) {
		return t.Smoke, t.Smoke > 0
	})
	report("smoke", smokeP, smokeV, smokeOK)

	lowP, lowV, lowOK := peak(n, origin, radiusSq, func(t grid.Tile) (int, bool) {
		return grid.MaxLevel - t.Pressure, t.Walkable && t.Pressure < grid.FullPressure
	})
	if lowOK {
		n.Grid.Update(lowP, func(t *grid.Tile) { t.Explored = true })
		lines = append(lines, fmt.Sprintf("pressure loss %s down to %d", bearing(origin, lowP), grid.MaxLevel-lowV))
	}

	if len(lines) == 0 {
		n.Logf("Scan clean. No hazard signatures in range.")
		return
	}
	n.Logf("Scan: %s.", strings.Join(lines, "; "))
}

// peak returns the strongest reading in range, row-major ties keeping
// the first hit so the result is deterministic.
func peak(n *state.GameState, origin grid.Point, radiusSq int, read func(grid.Tile) (int, bool)) (grid.Point, int, bool) {
	var best grid.Point
	bestV := -1
	found := false

	n.Grid.ForEach(func(p grid.Point, t grid.Tile) {
		if origin.DistSq(p) > radiusSq {
			return
		}
		v, ok := read(t)
		if !ok || v <= bestV {
			return
		}
		best, bestV, found = p, v, true
	})
	return best, bestV, found
}

// bearing names the compass direction from the player toward p.
func bearing(origin, p grid.Point) string {
	if origin == p {
		return "underfoot"
	}
	s := ""
	switch {
	case p.Y < origin.Y:
		s = "north"
	case p.Y > origin.Y:
		s = "south"
	}
	switch {
	case p.X > origin.X:
		s += "east"
	case p.X < origin.X:
		s += "west"
	}
	return "to the " + s
}

// clean scrubs the player's tile. Anything buried there surfaces.
func clean(n *state.GameState) {
	p := n.PlayerPos()
	had := n.Grid.At(p).Dirt

	n.Grid.Update(p, func(t *grid.Tile) { t.Dirt = 0 })
	n.Player.Cleaned++

	surfaced := false
	for _, e := range n.Entities.At(p) {
		ev, ok := e.(*entities.Evidence)
		if !ok || !ev.Buried {
			continue
		}
		m, _ := n.Entities.Mutate(ev.ID())
		m.(*entities.Evidence).Buried = false
		n.Logf("Cleaning uncovers %q.", ev.Title)
		surfaced = true
	}

	if !surfaced {
		if had > 0 {
			n.Logf("Scrubbed the deck plate clean.")
		} else {
			n.Logf("The plate was already spotless.")
		}
	}
}

// look describes the player's surroundings into the log.
func look(n *state.GameState) {
	p := n.PlayerPos()

	where := "a connecting corridor"
	if room, ok := n.RoomAt(p); ok {
		where = string(room.Zone) + " — " + room.Name
	}
	n.Logf("Location: %s.", where)

	var nearby []string
	n.Entities.Each(func(e entities.Entity) {
		if e.ID() == entities.PlayerID {
			return
		}
		if p.Chebyshev(e.Pos()) <= 1 {
			nearby = append(nearby, e.Label())
		}
	})
	if len(nearby) == 0 {
		n.Logf("Nothing within reach.")
		return
	}
	n.Logf("Within reach: %s.", strings.Join(nearby, ", "))
}
