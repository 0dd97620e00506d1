package hazards

import (
	"strings"
	"testing"

	"derelict/pkg/engine/grid"
	"derelict/pkg/engine/rng"
	"derelict/pkg/game/config"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/state"
)

// testState builds a walled box of open floor with the player parked in
// a corner, under the default tuning.
func testState(w, h int) *state.GameState {
	g := grid.New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			g.Set(grid.Point{X: x, Y: y}, grid.NewTile(grid.Floor))
		}
	}

	coll := entities.NewCollection()
	coll.Add(entities.NewPlayerBot(grid.Point{X: 1, Y: 1}))

	return &state.GameState{
		Seed:     1,
		Rules:    config.Default(),
		Grid:     g,
		Entities: coll,
		Player:   state.Player{HP: 100, MaxHP: 100, Alive: true},
		Rng:      rng.NewStream(1),
	}
}

func hasLog(s *state.GameState, substr string) bool {
	for _, entry := range s.Log {
		if strings.Contains(entry.Text, substr) {
			return true
		}
	}
	return false
}

func TestHeatDecaysAndSpreads(t *testing.T) {
	s := testState(7, 7)
	src := grid.Point{X: 3, Y: 3}
	s.Grid.Update(src, func(tile *grid.Tile) { tile.Heat = 80 })

	Tick(s)

	// Source loses only its decay; pushing costs it nothing.
	if got := s.Grid.At(src).Heat; got != 78 {
		t.Errorf("source heat = %d, want 78", got)
	}
	// Each cardinal neighbor nets ceil(25*80/100) minus its own decay.
	for _, p := range []grid.Point{{X: 3, Y: 2}, {X: 3, Y: 4}, {X: 2, Y: 3}, {X: 4, Y: 3}} {
		if got := s.Grid.At(p).Heat; got != 18 {
			t.Errorf("neighbor %v heat = %d, want 18", p, got)
		}
	}
	// Diagonals receive nothing from a 4-way spread.
	if got := s.Grid.At(grid.Point{X: 2, Y: 2}).Heat; got != 0 {
		t.Errorf("diagonal heat = %d, want 0", got)
	}
}

func TestHeatDoesNotCrossWalls(t *testing.T) {
	s := testState(7, 7)
	s.Grid.Set(grid.Point{X: 4, Y: 3}, grid.NewTile(grid.Wall))
	s.Grid.Update(grid.Point{X: 3, Y: 3}, func(tile *grid.Tile) { tile.Heat = 80 })

	Tick(s)

	if got := s.Grid.At(grid.Point{X: 4, Y: 3}).Heat; got != 0 {
		t.Errorf("wall tile heat = %d, want 0", got)
	}
	if got := s.Grid.At(grid.Point{X: 5, Y: 3}).Heat; got != 0 {
		t.Errorf("far side of wall heat = %d, want 0", got)
	}
}

func TestHeatDoesNotCrossClosedDoor(t *testing.T) {
	s := testState(7, 7)
	s.Grid.Set(grid.Point{X: 4, Y: 3}, grid.NewTile(grid.Door)) // closed, not walkable
	s.Grid.Update(grid.Point{X: 3, Y: 3}, func(tile *grid.Tile) { tile.Heat = 80 })

	Tick(s)

	if got := s.Grid.At(grid.Point{X: 4, Y: 3}).Heat; got != 0 {
		t.Errorf("closed door heat = %d, want 0", got)
	}

	// An open door passes heat like floor.
	s2 := testState(7, 7)
	door := grid.NewTile(grid.Door)
	door.Walkable = true
	door.Glyph = grid.GlyphDoorOpen
	s2.Grid.Set(grid.Point{X: 4, Y: 3}, door)
	s2.Grid.Update(grid.Point{X: 3, Y: 3}, func(tile *grid.Tile) { tile.Heat = 80 })

	Tick(s2)

	if got := s2.Grid.At(grid.Point{X: 4, Y: 3}).Heat; got != 18 {
		t.Errorf("open door heat = %d, want 18", got)
	}
}

func TestDecayFloorsAtZero(t *testing.T) {
	s := testState(5, 5)
	s.Grid.Update(grid.Point{X: 2, Y: 2}, func(tile *grid.Tile) { tile.Heat = 1; tile.Smoke = 2 })

	Tick(s)

	tile := s.Grid.At(grid.Point{X: 2, Y: 2})
	if tile.Heat != 0 || tile.Smoke != 0 {
		t.Errorf("heat/smoke = %d/%d, want 0/0", tile.Heat, tile.Smoke)
	}
}

func TestFieldsStayClamped(t *testing.T) {
	s := testState(7, 7)
	s.Grid.UpdateAll(func(p grid.Point, tile *grid.Tile) {
		if tile.Walkable {
			tile.Heat = 100
			tile.Smoke = 100
			tile.Pressure = 0
		}
	})
	s.Entities.Add(entities.NewVent("vent-1", grid.Point{X: 3, Y: 3}, grid.Heat, 12, 90))
	s.Entities.Add(entities.NewVent("vent-2", grid.Point{X: 2, Y: 3}, grid.Pressure, 15, 100))

	for i := 0; i < 5; i++ {
		Tick(s)
	}

	if err := s.Grid.Validate(); err != nil {
		t.Fatalf("grid left validation after ticks: %v", err)
	}
}

func TestPressureRepressurizesWhenCalm(t *testing.T) {
	s := testState(5, 5)
	// Vacuum 20 is below the spread minimum, so it only decays.
	s.Grid.Update(grid.Point{X: 2, Y: 2}, func(tile *grid.Tile) { tile.Pressure = 80 })

	Tick(s)

	if got := s.Grid.At(grid.Point{X: 2, Y: 2}).Pressure; got != 81 {
		t.Errorf("pressure = %d, want 81", got)
	}
}

func TestVacuumDrainsNeighbors(t *testing.T) {
	s := testState(7, 7)
	src := grid.Point{X: 3, Y: 3}
	s.Grid.Update(src, func(tile *grid.Tile) { tile.Pressure = 40 })

	Tick(s)

	// Vacuum 60 pushes ceil(40*60/100)=24; the neighbor's vacuum nets
	// 24 minus its own decay of 1.
	if got := s.Grid.At(grid.Point{X: 3, Y: 2}).Pressure; got != 77 {
		t.Errorf("neighbor pressure = %d, want 77", got)
	}
	if got := s.Grid.At(src).Pressure; got != 41 {
		t.Errorf("source pressure = %d, want 41", got)
	}
}

func TestVentInjectsUpToCap(t *testing.T) {
	s := testState(5, 5)
	at := grid.Point{X: 2, Y: 2}
	s.Entities.Add(entities.NewVent("vent-1", at, grid.Heat, 12, 90))

	Tick(s)
	if got := s.Grid.At(at).Heat; got != 12 {
		t.Errorf("heat after first injection = %d, want 12", got)
	}

	s.Grid.Update(at, func(tile *grid.Tile) { tile.Heat = 86 })
	Tick(s)
	// Decays to 84, then injection stops at the cap.
	if got := s.Grid.At(at).Heat; got != 90 {
		t.Errorf("heat at cap = %d, want 90", got)
	}
}

func TestSuppressedVentInjectsNothing(t *testing.T) {
	s := testState(5, 5)
	at := grid.Point{X: 2, Y: 2}
	v := entities.NewVent("vent-1", at, grid.Smoke, 10, 80)
	v.Suppressed = true
	s.Entities.Add(v)

	Tick(s)

	if got := s.Grid.At(at).Smoke; got != 0 {
		t.Errorf("smoke = %d, want 0 from a suppressed vent", got)
	}
}

func TestPressureCollapseSealsAdjacentDoor(t *testing.T) {
	s := testState(7, 7)
	doorAt := grid.Point{X: 4, Y: 3}
	door := grid.NewTile(grid.Door)
	door.Walkable = true
	door.Glyph = grid.GlyphDoorOpen
	s.Grid.Set(doorAt, door)
	d := entities.NewDoor("door-1", doorAt, false)
	d.Open = true
	s.Entities.Add(d)

	// Hard vacuum right next to the open door.
	s.Grid.Update(grid.Point{X: 3, Y: 3}, func(tile *grid.Tile) { tile.Pressure = 5 })

	Tick(s)

	tile := s.Grid.At(doorAt)
	if tile.Walkable {
		t.Error("door still walkable after pressure collapse")
	}
	if tile.Glyph != grid.GlyphDoorSealed {
		t.Errorf("door glyph = %q, want sealed glyph", tile.Glyph)
	}
	e, _ := s.Entities.Get("door-1")
	if de := e.(*entities.Door); !de.Sealed || de.Open {
		t.Errorf("door entity sealed=%v open=%v, want sealed and shut", de.Sealed, de.Open)
	}
	if !hasLog(s, "bulkhead") {
		t.Error("no bulkhead log entry after seal")
	}
}

func TestHeatHurtsPlayer(t *testing.T) {
	s := testState(5, 5)
	s.Grid.Update(grid.Point{X: 1, Y: 1}, func(tile *grid.Tile) { tile.Heat = 80 })

	Tick(s)

	if got := s.Player.HP; got != 100-s.Rules.HeatDamage {
		t.Errorf("HP = %d, want %d", got, 100-s.Rules.HeatDamage)
	}
	if !hasLog(s, "Integrity") {
		t.Error("no damage log entry")
	}
}

func TestVacuumHurtsPlayer(t *testing.T) {
	s := testState(5, 5)
	s.Grid.Update(grid.Point{X: 1, Y: 1}, func(tile *grid.Tile) { tile.Pressure = 5 })

	Tick(s)

	if got := s.Player.HP; got != 100-s.Rules.PressureDamage {
		t.Errorf("HP = %d, want %d", got, 100-s.Rules.PressureDamage)
	}
}

func TestDamageIsDeterministic(t *testing.T) {
	a := testState(5, 5)
	b := testState(5, 5)
	for _, s := range []*state.GameState{a, b} {
		s.Grid.Update(grid.Point{X: 1, Y: 1}, func(tile *grid.Tile) { tile.Heat = 95; tile.Pressure = 3 })
		Tick(s)
	}
	if a.Player.HP != b.Player.HP {
		t.Errorf("identical states took different damage: %d vs %d", a.Player.HP, b.Player.HP)
	}
}

func TestSmokeDepositsSoot(t *testing.T) {
	s := testState(5, 5)
	at := grid.Point{X: 2, Y: 2}
	s.Grid.Update(at, func(tile *grid.Tile) { tile.Smoke = 70; tile.Dirt = 10 })

	Tick(s)

	if got := s.Grid.At(at).Dirt; got != 11 {
		t.Errorf("dirt = %d, want 11", got)
	}
	// Thin smoke leaves no soot.
	if got := s.Grid.At(grid.Point{X: 2, Y: 1}).Dirt; got != 0 {
		t.Errorf("neighbor dirt = %d, want 0", got)
	}
}

func TestDroneSeizesInHeat(t *testing.T) {
	s := testState(5, 5)
	at := grid.Point{X: 3, Y: 3}
	s.Entities.Add(entities.NewDrone("drone-1", at, 4, 2))
	s.Grid.Update(at, func(tile *grid.Tile) { tile.Heat = 85 })

	Tick(s)

	e, _ := s.Entities.Get("drone-1")
	if d := e.(*entities.Drone); !d.Disabled {
		t.Errorf("drone HP = %d, want disabled at zero", d.HP)
	}
	if !hasLog(s, "goes dark") {
		t.Error("no drone shutdown log entry")
	}
}

func TestDeteriorationIsReplayStable(t *testing.T) {
	base := testState(9, 9)
	// A corridor strip for deterioration to pick from.
	for x := 1; x < 8; x++ {
		base.Grid.Set(grid.Point{X: x, Y: 7}, grid.NewTile(grid.Corridor))
	}
	base.Turn = base.Rules.DeteriorationEvery

	a := base.Clone()
	b := base.Clone()
	Tick(a)
	Tick(b)

	for x := 1; x < 8; x++ {
		p := grid.Point{X: x, Y: 7}
		if a.Grid.At(p).Smoke != b.Grid.At(p).Smoke {
			t.Fatalf("deterioration diverged at %v: %d vs %d", p, a.Grid.At(p).Smoke, b.Grid.At(p).Smoke)
		}
	}
	if !hasLog(a, "gives way") {
		t.Error("no deterioration log entry")
	}

	// Off-schedule turns must not deteriorate.
	c := testState(9, 9)
	c.Turn = 1
	Tick(c)
	if hasLog(c, "gives way") {
		t.Error("deterioration fired off schedule")
	}
}

func TestOlderSnapshotUnaffectedByTick(t *testing.T) {
	parent := testState(5, 5)
	parent.Grid.Update(grid.Point{X: 2, Y: 2}, func(tile *grid.Tile) { tile.Heat = 80 })

	child := parent.Clone()
	Tick(child)

	if got := parent.Grid.At(grid.Point{X: 2, Y: 2}).Heat; got != 80 {
		t.Errorf("parent heat = %d after child tick, want 80", got)
	}
}
