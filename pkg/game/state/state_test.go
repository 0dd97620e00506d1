package state

import (
	"testing"

	"derelict/pkg/engine/grid"
	"derelict/pkg/engine/rng"
	"derelict/pkg/game/config"
	"derelict/pkg/game/deduction"
	"derelict/pkg/game/entities"
)

// testState builds a minimal two-room snapshot for clone tests.
func testState() *GameState {
	g := grid.New(6, 6)
	for y := 1; y <= 4; y++ {
		for x := 1; x <= 4; x++ {
			g.Set(grid.Point{X: x, Y: y}, grid.NewTile(grid.Floor))
		}
	}

	coll := entities.NewCollection()
	coll.Add(entities.NewPlayerBot(grid.Point{X: 2, Y: 2}))
	coll.Add(entities.NewRelay("relay-1", grid.Point{X: 3, Y: 3}))

	return &GameState{
		Seed:     1,
		Rules:    config.Default(),
		Grid:     g,
		Entities: coll,
		Player:   Player{HP: 100, MaxHP: 100, Alive: true},
		Rooms: []Room{
			{ID: 0, Name: "Hold", Zone: ZoneCargo, Bounds: grid.NewRect(1, 1, 4, 4)},
		},
		Rng: rng.NewStream(1),
	}
}

func TestCloneIsolatesLog(t *testing.T) {
	parent := testState()
	parent.Logf("first entry")

	child := parent.Clone()
	child.Turn++
	child.Logf("child entry")

	if len(parent.Log) != 1 {
		t.Fatalf("parent log has %d entries after child append, want 1", len(parent.Log))
	}
	if len(child.Log) != 2 {
		t.Fatalf("child log has %d entries, want 2", len(child.Log))
	}

	// Appends on the parent after cloning must not show through either.
	parent.Logf("late parent entry")
	if child.Log[1].Text != "child entry" {
		t.Errorf("child log entry overwritten: %q", child.Log[1].Text)
	}
}

func TestCloneIsolatesGridAndEntities(t *testing.T) {
	parent := testState()
	child := parent.Clone()

	child.Grid.Update(grid.Point{X: 2, Y: 2}, func(tile *grid.Tile) { tile.Heat = 55 })
	if got := parent.Grid.At(grid.Point{X: 2, Y: 2}).Heat; got != 0 {
		t.Errorf("parent grid heat = %d after child write, want 0", got)
	}

	e, _ := child.Entities.Mutate("relay-1")
	e.(*entities.Relay).Active = true
	pe, _ := parent.Entities.Get("relay-1")
	if pe.(*entities.Relay).Active {
		t.Error("child entity mutation reached the parent")
	}
}

func TestCloneCopiesRngCursor(t *testing.T) {
	parent := testState()
	child := parent.Clone()

	childDraws := [5]int{}
	for i := range childDraws {
		childDraws[i] = child.Rng.IntN(100)
	}

	// The parent's cursor must still produce the same sequence.
	for i := range childDraws {
		if got := parent.Rng.IntN(100); got != childDraws[i] {
			t.Fatalf("parent cursor advanced by child draws at %d: got %d, want %d", i, got, childDraws[i])
		}
	}
}

func TestDamagePlayerClampsAtZero(t *testing.T) {
	s := testState()
	s.Player.HP = 5

	s.DamagePlayer(20)

	if s.Player.HP != 0 {
		t.Errorf("HP = %d, want 0", s.Player.HP)
	}
	if s.Player.Alive {
		t.Error("player still alive at zero HP")
	}

	// Further damage is a no-op on a downed player.
	s.DamagePlayer(10)
	if s.Player.HP != 0 {
		t.Errorf("HP changed on a downed player: %d", s.Player.HP)
	}
}

func TestRoomAt(t *testing.T) {
	s := testState()

	if room, ok := s.RoomAt(grid.Point{X: 2, Y: 2}); !ok || room.Name != "Hold" {
		t.Errorf("RoomAt(2,2) = %v, %v; want Hold", room, ok)
	}
	if _, ok := s.RoomAt(grid.Point{X: 5, Y: 5}); ok {
		t.Error("RoomAt found a room outside all bounds")
	}
}

func TestCollectTags(t *testing.T) {
	s := testState()
	s.CollectTags([]deduction.Tag{deduction.TagVacuum})
	s.CollectTags([]deduction.Tag{deduction.TagBreach, deduction.TagVacuum})

	if len(s.CollectedTags) != 2 {
		t.Fatalf("collected %v, want deduplicated pair", s.CollectedTags)
	}
	if s.CollectedTags[0] != deduction.TagBreach || s.CollectedTags[1] != deduction.TagVacuum {
		t.Errorf("collected %v, want [breach vacuum]", s.CollectedTags)
	}
}
