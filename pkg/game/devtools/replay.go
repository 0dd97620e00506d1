package devtools

import (
	"encoding/json"
	"fmt"
	"os"

	"derelict/pkg/game/generator"
	"derelict/pkg/game/state"
	"derelict/pkg/game/turn"
)

// Script is a recorded run: the seed plus the ordered action lines, in
// the encoding turn.Parse reads. Same seed and same lines always replay
// to the same final snapshot.
type Script struct {
	Seed    int64    `json:"seed"`
	Actions []string `json:"actions"`
}

// LoadScript reads a replay script from a JSON file.
func LoadScript(path string) (Script, error) {
	var sc Script

	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("read script: %w", err)
	}
	if err := json.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("parse script %s: %w", path, err)
	}
	return sc, nil
}

// Save writes the script as indented JSON.
func (sc Script) Save(path string) error {
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode script: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write script %s: %w", path, err)
	}
	return nil
}

// Run replays the script headlessly and returns the final snapshot. A
// line that does not parse aborts the replay; the script is a
// regression artifact and a bad line means it is stale.
func Run(sc Script) (*state.GameState, error) {
	s, err := generator.Generate(sc.Seed)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	engine := turn.NewEngine()
	for i, line := range sc.Actions {
		a, err := turn.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("replay line %d: %w", i+1, err)
		}
		s = engine.Step(s, a)
	}
	return s, nil
}

// Recorder accumulates a script during an interactive run.
type Recorder struct {
	script Script
}

// NewRecorder starts a recording for seed.
func NewRecorder(seed int64) *Recorder {
	return &Recorder{script: Script{Seed: seed}}
}

// Note appends one accepted action.
func (r *Recorder) Note(a turn.Action) {
	r.script.Actions = append(r.script.Actions, a.Encode())
}

// Save writes the recording to path.
func (r *Recorder) Save(path string) error {
	return r.script.Save(path)
}
