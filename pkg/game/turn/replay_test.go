package turn

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"derelict/pkg/engine/grid"
	"derelict/pkg/game/generator"
	"derelict/pkg/game/state"
)

var updateGolden = flag.Bool("update", false, "rewrite the recorded replay expectations")

// goldenSeed is the canonical regression seed used across the test
// suite.
const goldenSeed = 77

// goldenActions is a fixed probe sequence: walks in a spiral, scans,
// cleans, looks, and notes the run. Some moves will be refused by
// walls; refusals are part of the contract (they must cost nothing and
// must be refused identically on every replay).
func goldenActions() []Action {
	var actions []Action
	dirs := []grid.Direction{
		grid.North, grid.East, grid.East, grid.South, grid.South,
		grid.West, grid.West, grid.West, grid.North, grid.NorthEast,
		grid.SouthEast, grid.SouthWest, grid.NorthWest, grid.East,
	}
	for _, d := range dirs {
		actions = append(actions, MoveAction(d))
	}
	actions = append(actions,
		ScanAction(),
		CleanAction(),
		LookAction(),
		JournalAction("probe sequence checkpoint"),
		WaitAction(),
		ScanAction(),
	)
	for _, d := range dirs {
		actions = append(actions, MoveAction(d.Opposite()))
	}
	return actions
}

// runSequence replays actions from a fresh generation of seed.
func runSequence(t *testing.T, seed int64, actions []Action) *state.GameState {
	t.Helper()
	s, err := generator.Generate(seed)
	if err != nil {
		t.Fatalf("Generate(%d): %v", seed, err)
	}
	e := NewEngine()
	for _, a := range actions {
		s = e.Step(s, a)
	}
	return s
}

func TestGoldenReplayIsReproducible(t *testing.T) {
	actions := goldenActions()

	a := runSequence(t, goldenSeed, actions)
	b := runSequence(t, goldenSeed, actions)

	if a.Turn != b.Turn {
		t.Fatalf("turn counters diverge: %d vs %d", a.Turn, b.Turn)
	}
	if a.PlayerPos() != b.PlayerPos() {
		t.Fatalf("player positions diverge: %v vs %v", a.PlayerPos(), b.PlayerPos())
	}
	if a.Victory != b.Victory || a.GameOver != b.GameOver {
		t.Fatalf("terminal flags diverge: %v/%v vs %v/%v",
			a.Victory, a.GameOver, b.Victory, b.GameOver)
	}
	if a.Player.HP != b.Player.HP {
		t.Fatalf("player HP diverges: %d vs %d", a.Player.HP, b.Player.HP)
	}

	a.Grid.ForEach(func(p grid.Point, ta grid.Tile) {
		if tb := b.Grid.At(p); ta != tb {
			t.Fatalf("tile %v diverges after replay: %+v vs %+v", p, ta, tb)
		}
	})

	aIDs, bIDs := a.Entities.IDs(), b.Entities.IDs()
	if len(aIDs) != len(bIDs) {
		t.Fatalf("entity counts diverge: %d vs %d", len(aIDs), len(bIDs))
	}
	for i, id := range aIDs {
		if bIDs[i] != id {
			t.Fatalf("entity id sets diverge at %d: %s vs %s", i, id, bIDs[i])
		}
		ea, _ := a.Entities.Get(id)
		eb, _ := b.Entities.Get(id)
		if ea.Pos() != eb.Pos() {
			t.Fatalf("entity %s positions diverge: %v vs %v", id, ea.Pos(), eb.Pos())
		}
	}

	if len(a.Log) != len(b.Log) {
		t.Fatalf("log lengths diverge: %d vs %d", len(a.Log), len(b.Log))
	}
	for i := range a.Log {
		if a.Log[i] != b.Log[i] {
			t.Fatalf("log entry %d diverges: %q vs %q", i, a.Log[i].Text, b.Log[i].Text)
		}
	}
}

// replayExpectations is the recorded outcome of the golden sequence.
// It lives in testdata so a change that shifts both fresh runs the same
// way (tuning, phase ordering) still trips the comparison.
type replayExpectations struct {
	Seed    int64  `json:"seed"`
	Turn    int    `json:"turn"`
	PlayerX int    `json:"player_x"`
	PlayerY int    `json:"player_y"`
	HP      int    `json:"hp"`
	Victory bool   `json:"victory"`
	Defeat  string `json:"defeat"`
	LogLen  int    `json:"log_len"`
}

func TestGoldenReplayMatchesRecordedOutcome(t *testing.T) {
	final := runSequence(t, goldenSeed, goldenActions())
	got := replayExpectations{
		Seed:    goldenSeed,
		Turn:    final.Turn,
		PlayerX: final.PlayerPos().X,
		PlayerY: final.PlayerPos().Y,
		HP:      final.Player.HP,
		Victory: final.Victory,
		Defeat:  final.Defeat,
		LogLen:  len(final.Log),
	}

	path := filepath.Join("testdata", "golden_replay.json")
	raw, err := os.ReadFile(path)
	if *updateGolden || os.IsNotExist(err) {
		data, err := json.MarshalIndent(got, "", "  ")
		if err != nil {
			t.Fatalf("marshal expectations: %v", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir testdata: %v", err)
		}
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		t.Logf("recorded replay expectations to %s", path)
		return
	}
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	var want replayExpectations
	if err := json.Unmarshal(raw, &want); err != nil {
		t.Fatalf("unmarshal %s: %v", path, err)
	}
	if got != want {
		t.Errorf("replay outcome drifted from the recorded expectations:\n got %+v\nwant %+v\n(rerun with -update if the change is intentional)", got, want)
	}
}

func TestReplayTurnCountBoundedByActions(t *testing.T) {
	actions := goldenActions()
	final := runSequence(t, goldenSeed, actions)

	// Each action costs at most one turn; refused moves cost none.
	if final.Turn > len(actions) {
		t.Errorf("turn counter %d exceeds action count %d", final.Turn, len(actions))
	}
	if final.Turn == 0 {
		t.Error("no action was accepted at all")
	}
}

func TestRetainedSnapshotsAreStable(t *testing.T) {
	start, err := generator.Generate(goldenSeed)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	startPos := start.PlayerPos()
	startTiles := make(map[grid.Point]grid.Tile)
	start.Grid.ForEach(func(p grid.Point, tile grid.Tile) {
		startTiles[p] = tile
	})

	e := NewEngine()
	s := start
	for _, a := range goldenActions() {
		s = e.Step(s, a)
	}

	if got := start.PlayerPos(); got != startPos {
		t.Errorf("start snapshot's player moved to %v", got)
	}
	if start.Turn != 0 {
		t.Errorf("start snapshot's turn advanced to %d", start.Turn)
	}
	start.Grid.ForEach(func(p grid.Point, tile grid.Tile) {
		if tile != startTiles[p] {
			t.Fatalf("start snapshot tile %v changed to %+v", p, tile)
		}
	})
}

func TestActionEncodeParseRoundTrip(t *testing.T) {
	cases := []Action{
		MoveAction(grid.NorthWest),
		InteractAction("relay-2"),
		ScanAction(),
		CleanAction(),
		WaitAction(),
		LookAction(),
		JournalAction("smoke thickening near the reactor"),
		SubmitAction("root-cause", "coolant loop"),
	}
	for _, a := range cases {
		parsed, err := Parse(a.Encode())
		if err != nil {
			t.Fatalf("Parse(%q): %v", a.Encode(), err)
		}
		if parsed != a {
			t.Errorf("round trip changed %+v into %+v", a, parsed)
		}
	}

	for _, bad := range []string{"", "move", "move upward", "fly north", "interact"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) accepted a malformed line", bad)
		}
	}
}
