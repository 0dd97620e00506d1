// Package state defines the per-turn snapshot the subsystems hand to
// one another. A snapshot is immutable once returned: the turn engine
// clones it, mutates the clone, and returns that, so callers can keep
// any number of old snapshots for replay or rendering.
package state

import (
	"fmt"

	"derelict/pkg/engine/grid"
	"derelict/pkg/engine/rng"
	"derelict/pkg/game/config"
	"derelict/pkg/game/deduction"
	"derelict/pkg/game/entities"
)

// LogEntry is one line of the append-only event history.
type LogEntry struct {
	Turn int
	Text string
}

// JournalEntry is a player-authored note.
type JournalEntry struct {
	Turn int
	Text string
}

// Player is the player bot's mutable condition. Its position lives on
// the player entity in the collection.
type Player struct {
	HP         int
	MaxHP      int
	Alive      bool
	Sensors    entities.SensorSet
	StunnedFor int
	Cleaned    int
}

// GameState is one full snapshot: everything the renderer, the replay
// tooling, and the next turn need.
type GameState struct {
	Seed int64
	// Incident names the scripted failure this station was built around.
	Incident string
	Rules    config.Rules
	Turn     int

	Grid     *grid.Grid
	Entities *entities.Collection
	Player   Player
	Rooms    []Room

	// Rng is the single stream shared by generation and in-turn
	// effects. Its cursor is part of the snapshot.
	Rng rng.Stream

	Log           []LogEntry
	Journal       []JournalEntry
	Cases         []deduction.Case
	CollectedTags []deduction.Tag
	Submissions   []deduction.Submission

	GameOver bool
	Victory  bool
	// Defeat names the cause of a lost run; empty otherwise.
	Defeat string
}

// Clone returns the next turn's working copy. Grid rows and entity
// entries stay shared until written. History slices are capacity-capped
// so appends on either side never touch the other's view.
func (s *GameState) Clone() *GameState {
	c := *s
	c.Grid = s.Grid.Clone()
	c.Entities = s.Entities.Clone()
	c.Log = s.Log[:len(s.Log):len(s.Log)]
	c.Journal = s.Journal[:len(s.Journal):len(s.Journal)]
	c.CollectedTags = s.CollectedTags[:len(s.CollectedTags):len(s.CollectedTags)]
	c.Submissions = s.Submissions[:len(s.Submissions):len(s.Submissions)]
	return &c
}

// Logf appends a formatted line to the event history, stamped with the
// current turn.
func (s *GameState) Logf(format string, a ...any) {
	s.Log = append(s.Log, LogEntry{Turn: s.Turn, Text: fmt.Sprintf(format, a...)})
}

// PlayerPos returns the player entity's tile.
func (s *GameState) PlayerPos() grid.Point {
	e, ok := s.Entities.Get(entities.PlayerID)
	if !ok {
		return grid.Point{}
	}
	return e.Pos()
}

// RoomAt returns the room whose bounds contain p, if any.
func (s *GameState) RoomAt(p grid.Point) (*Room, bool) {
	for i := range s.Rooms {
		if s.Rooms[i].Bounds.Contains(p) {
			return &s.Rooms[i], true
		}
	}
	return nil, false
}

// DamagePlayer applies dmg to the player, clamping health at zero and
// dropping the alive flag when it hits.
func (s *GameState) DamagePlayer(dmg int) {
	if !s.Player.Alive || dmg <= 0 {
		return
	}
	s.Player.HP -= dmg
	if s.Player.HP <= 0 {
		s.Player.HP = 0
		s.Player.Alive = false
	}
}

// CollectTags merges newly established deduction tags into the
// snapshot's collected set, keeping it sorted and deduplicated.
func (s *GameState) CollectTags(tags []deduction.Tag) {
	if len(tags) == 0 {
		return
	}
	s.CollectedTags = deduction.MergeTags(s.CollectedTags, tags)
}
