package vision

import (
	"testing"

	"derelict/pkg/engine/grid"
	"derelict/pkg/engine/rng"
	"derelict/pkg/game/config"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/state"
)

// testState builds a walled box of open floor with the player at p.
func testState(w, h int, p grid.Point) *state.GameState {
	g := grid.New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			g.Set(grid.Point{X: x, Y: y}, grid.NewTile(grid.Floor))
		}
	}

	coll := entities.NewCollection()
	coll.Add(entities.NewPlayerBot(p))

	return &state.GameState{
		Seed:     1,
		Rules:    config.Default(),
		Grid:     g,
		Entities: coll,
		Player:   state.Player{HP: 100, MaxHP: 100, Alive: true},
		Rng:      rng.NewStream(1),
	}
}

func TestOpenFloorIsVisibleWithinRadius(t *testing.T) {
	origin := grid.Point{X: 10, Y: 10}
	s := testState(21, 21, origin)
	s.Rules.FOVRadius = 4

	Update(s)

	if !s.Grid.At(origin).Visible {
		t.Error("player's own tile is not visible")
	}
	for _, p := range []grid.Point{{X: 10, Y: 7}, {X: 7, Y: 10}, {X: 12, Y: 10}} {
		if !s.Grid.At(p).Visible {
			t.Errorf("open tile %v within radius is not visible", p)
		}
	}
	if s.Grid.At(grid.Point{X: 10, Y: 2}).Visible {
		t.Error("tile well beyond the radius is visible")
	}
}

func TestWallsBlockSight(t *testing.T) {
	origin := grid.Point{X: 10, Y: 10}
	s := testState(21, 21, origin)
	s.Rules.FOVRadius = 6

	// A wall segment due east; everything behind it stays dark.
	for y := 8; y <= 12; y++ {
		s.Grid.Set(grid.Point{X: 12, Y: y}, grid.NewTile(grid.Wall))
	}

	Update(s)

	if !s.Grid.At(grid.Point{X: 12, Y: 10}).Visible {
		t.Error("the wall face itself should be visible")
	}
	if s.Grid.At(grid.Point{X: 13, Y: 10}).Visible {
		t.Error("tile directly behind the wall is visible")
	}
	if s.Grid.At(grid.Point{X: 14, Y: 10}).Visible {
		t.Error("tile two behind the wall is visible")
	}
}

func TestRoomRevealIgnoresLineOfSight(t *testing.T) {
	origin := grid.Point{X: 3, Y: 3}
	s := testState(30, 20, origin)
	s.Rules.FOVRadius = 2

	s.Rooms = []state.Room{
		{ID: 0, Name: "Cargo Bay", Zone: state.ZoneCargo, Bounds: grid.NewRect(1, 1, 12, 8)},
	}
	// An interior pillar hides the far corner from the player.
	s.Grid.Set(grid.Point{X: 6, Y: 3}, grid.NewTile(grid.Wall))

	Update(s)

	far := grid.Point{X: 12, Y: 8}
	if !s.Grid.At(far).Visible {
		t.Errorf("far room corner %v not revealed by room occupancy", far)
	}
	// The halo covers the room's wall ring too.
	if !s.Grid.At(grid.Point{X: 0, Y: 0}).Visible {
		t.Error("room halo tile not revealed")
	}
	// Outside the room and beyond the tiny FOV stays dark.
	if s.Grid.At(grid.Point{X: 20, Y: 10}).Visible {
		t.Error("tile outside room and radius is visible")
	}
}

func TestThermalSensorSeesThroughWalls(t *testing.T) {
	origin := grid.Point{X: 5, Y: 5}
	s := testState(30, 20, origin)
	s.Rules.FOVRadius = 3
	s.Rules.SensorRadius = 12
	s.Rules.ThermalSeesHeat = 40

	// Hot tile behind a full wall line.
	for y := 1; y < 19; y++ {
		s.Grid.Set(grid.Point{X: 9, Y: y}, grid.NewTile(grid.Wall))
	}
	hot := grid.Point{X: 12, Y: 5}
	s.Grid.Update(hot, func(tile *grid.Tile) { tile.Heat = 60 })

	Update(s)
	if s.Grid.At(hot).Visible {
		t.Fatal("hot tile visible without the thermal sensor")
	}

	s.Player.Sensors = s.Player.Sensors.With(entities.SensorThermal)
	Update(s)
	if !s.Grid.At(hot).Visible {
		t.Error("thermal sensor did not reveal the hot tile through the wall")
	}
	// A cold tile behind the same wall stays hidden.
	if s.Grid.At(grid.Point{X: 12, Y: 8}).Visible {
		t.Error("thermal sensor revealed a cold tile")
	}
}

func TestSensorRespectsRadius(t *testing.T) {
	origin := grid.Point{X: 2, Y: 2}
	s := testState(40, 20, origin)
	s.Rules.FOVRadius = 2
	s.Rules.SensorRadius = 8
	s.Player.Sensors = s.Player.Sensors.With(entities.SensorThermal)

	far := grid.Point{X: 30, Y: 2}
	s.Grid.Update(far, func(tile *grid.Tile) { tile.Heat = 90 })

	Update(s)

	if s.Grid.At(far).Visible {
		t.Error("sensor revealed a tile beyond its radius")
	}
}

func TestExploredIsSticky(t *testing.T) {
	origin := grid.Point{X: 10, Y: 10}
	s := testState(21, 21, origin)
	s.Rules.FOVRadius = 4

	Update(s)

	seen := grid.Point{X: 12, Y: 10}
	if !s.Grid.At(seen).Explored {
		t.Fatal("visible tile not marked explored")
	}

	// Walk the player away and recompute; explored must survive.
	s.Entities.Move(entities.PlayerID, grid.Point{X: 2, Y: 2})
	Update(s)

	tile := s.Grid.At(seen)
	if tile.Visible {
		t.Error("tile out of range still visible")
	}
	if !tile.Explored {
		t.Error("explored flag reset by a later update")
	}
}

func TestUpdateIsDeterministic(t *testing.T) {
	build := func() *state.GameState {
		s := testState(25, 25, grid.Point{X: 12, Y: 12})
		s.Grid.Update(grid.Point{X: 18, Y: 12}, func(tile *grid.Tile) { tile.Heat = 80 })
		s.Player.Sensors = s.Player.Sensors.With(entities.SensorThermal)
		return s
	}

	a := build()
	b := build()
	Update(a)
	Update(b)

	a.Grid.ForEach(func(p grid.Point, ta grid.Tile) {
		tb := b.Grid.At(p)
		if ta.Visible != tb.Visible || ta.Explored != tb.Explored {
			t.Fatalf("visibility at %v differs between identical runs", p)
		}
	})
}
