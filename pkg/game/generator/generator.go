// Package generator builds a complete station from a seed: the BSP
// floor plan, corridors and doors, the relay gate, hazard vents,
// sensors, drones, and the evidence set backing the deduction cases.
// The same seed always yields the same station, and Generate refuses to
// return a station that fails its own reachability, gate-solvability,
// or tag-coverage checks.
package generator

import (
	"errors"
	"fmt"

	"derelict/pkg/engine/rng"
	"derelict/pkg/game/config"
	"derelict/pkg/game/state"
	"derelict/pkg/game/vision"
	"derelict/pkg/logger"
)

// Generation invariant failures. These mark defective seeds or content
// tables, not player-facing conditions.
var (
	ErrDisconnected   = errors.New("generated layout is not fully connected")
	ErrGateUnsolvable = errors.New("gate prerequisites are not reachable before the gate")
	ErrTagCoverage    = errors.New("deduction tags are not covered by reachable evidence")
	ErrNoGateRoom     = errors.New("no room can be sealed without orphaning others")
)

// Generate builds the station for seed using the default rules.
func Generate(seed int64) (*state.GameState, error) {
	return GenerateWithRules(seed, config.Default())
}

// GenerateWithRules builds the station for seed under a specific rule
// set. The rules are frozen into the returned snapshot.
func GenerateWithRules(seed int64, rules config.Rules) (*state.GameState, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	stream := rng.NewStream(seed)

	layout, err := buildLayout(&stream, rules)
	if err != nil {
		return nil, fmt.Errorf("generate seed %d: %w", seed, err)
	}

	st := &state.GameState{
		Seed:  seed,
		Rules: rules,
		Grid:  layout.grid,
		Rooms: layout.rooms,
	}

	if err := populate(st, layout, &stream); err != nil {
		return nil, fmt.Errorf("generate seed %d: %w", seed, err)
	}

	// The stream's cursor carries over so in-game effects continue the
	// sequence the map was built from.
	st.Rng = stream

	if err := validate(st); err != nil {
		logger.Log.WithField("seed", seed).WithError(err).Error("generated station failed validation")
		return nil, fmt.Errorf("generate seed %d: %w", seed, err)
	}

	st.Logf("Custodial unit %s online. Station power is failing.", playerDesignation(seed))
	st.Logf("Incident file %q opened. Reach the data core and find out what happened here.", st.Incident)

	vision.Update(st)

	return st, nil
}

// playerDesignation derives a cosmetic unit name from the seed.
func playerDesignation(seed int64) string {
	if seed < 0 {
		seed = -seed
	}
	return fmt.Sprintf("KS-%02d", seed%100)
}
