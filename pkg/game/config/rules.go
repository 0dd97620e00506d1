// Package config holds the tunable rule set for a session. A copy of
// the rules is frozen into every generated state, so a recorded seed
// replays under the numbers it was generated with.
package config

import "fmt"

// FieldTuning controls one hazard layer's per-turn behaviour. Pressure
// is tuned on the vacuum scale: its values describe the loss of
// atmosphere, not the atmosphere itself.
type FieldTuning struct {
	// Decay is subtracted from every tile each turn, floored at zero.
	Decay int `yaml:"decay"`
	// SpreadMin is the lowest value at which a tile pushes to neighbors.
	SpreadMin int `yaml:"spread_min"`
	// SpreadRate scales the pushed amount: ceil(rate * value / 100).
	SpreadRate int `yaml:"spread_rate"`
	// VentRate is what an unsuppressed vent injects per turn.
	VentRate int `yaml:"vent_rate"`
	// VentCap stops injection once the vent's own tile reaches it.
	VentCap int `yaml:"vent_cap"`
}

// Rules is every tuning value the simulation reads.
type Rules struct {
	MapWidth  int `yaml:"map_width"`
	MapHeight int `yaml:"map_height"`

	RelayCount int `yaml:"relay_count"`
	DroneCount int `yaml:"drone_count"`

	Heat   FieldTuning `yaml:"heat"`
	Smoke  FieldTuning `yaml:"smoke"`
	Vacuum FieldTuning `yaml:"vacuum"`

	// BulkheadPressure seals adjacent open doors when a tile drops
	// below it.
	BulkheadPressure int `yaml:"bulkhead_pressure"`

	PainHeat       int `yaml:"pain_heat"`
	HeatDamage     int `yaml:"heat_damage"`
	LowPressure    int `yaml:"low_pressure"`
	PressureDamage int `yaml:"pressure_damage"`

	// SootSmoke is the smoke level at which a tile gathers dirt.
	SootSmoke int `yaml:"soot_smoke"`

	DeteriorationEvery int `yaml:"deterioration_every"`
	DeteriorationSmoke int `yaml:"deterioration_smoke"`
	DeteriorationTiles int `yaml:"deterioration_tiles"`

	FOVRadius            int `yaml:"fov_radius"`
	SensorRadius         int `yaml:"sensor_radius"`
	ScanRadius           int `yaml:"scan_radius"`
	ThermalSeesHeat      int `yaml:"thermal_sees_heat"`
	BarometricSeesBelow  int `yaml:"barometric_sees_below"`
	ParticulateSeesSmoke int `yaml:"particulate_sees_smoke"`

	PlayerMaxHP int `yaml:"player_max_hp"`
	// StunTurns is how long a hot relay discharge locks the player up.
	StunTurns     int `yaml:"stun_turns"`
	DischargeHeat int `yaml:"discharge_heat"`
	// BurialDirt is the dirt level that keeps evidence hidden.
	BurialDirt int `yaml:"burial_dirt"`

	DroneHP        int `yaml:"drone_hp"`
	DroneDamage    int `yaml:"drone_damage"`
	DroneMoveEvery int `yaml:"drone_move_every"`

	RevivePercent int `yaml:"revive_percent"`
	MaxTurns      int `yaml:"max_turns"`
}

// Default returns the tuning the game ships with.
func Default() Rules {
	return Rules{
		MapWidth:  64,
		MapHeight: 40,

		RelayCount: 3,
		DroneCount: 2,

		Heat:   FieldTuning{Decay: 2, SpreadMin: 30, SpreadRate: 25, VentRate: 12, VentCap: 90},
		Smoke:  FieldTuning{Decay: 3, SpreadMin: 20, SpreadRate: 35, VentRate: 10, VentCap: 80},
		Vacuum: FieldTuning{Decay: 1, SpreadMin: 25, SpreadRate: 40, VentRate: 15, VentCap: 100},

		BulkheadPressure: 20,

		PainHeat:       70,
		HeatDamage:     6,
		LowPressure:    15,
		PressureDamage: 4,

		SootSmoke: 60,

		DeteriorationEvery: 25,
		DeteriorationSmoke: 15,
		DeteriorationTiles: 3,

		FOVRadius:            8,
		SensorRadius:         14,
		ScanRadius:           10,
		ThermalSeesHeat:      40,
		BarometricSeesBelow:  60,
		ParticulateSeesSmoke: 30,

		PlayerMaxHP:   100,
		StunTurns:     2,
		DischargeHeat: 50,
		BurialDirt:    60,

		DroneHP:        20,
		DroneDamage:    5,
		DroneMoveEvery: 2,

		RevivePercent: 40,
		MaxTurns:      1200,
	}
}

// Tuning returns the FieldTuning for one hazard layer by name, using
// the vacuum tuning for pressure.
func (r Rules) Tuning(field string) FieldTuning {
	switch field {
	case "heat":
		return r.Heat
	case "smoke":
		return r.Smoke
	default:
		return r.Vacuum
	}
}

// Validate rejects values the simulation cannot run with.
func (r Rules) Validate() error {
	if r.MapWidth < 24 || r.MapHeight < 18 {
		return fmt.Errorf("map %dx%d is too small to partition", r.MapWidth, r.MapHeight)
	}
	if r.RelayCount < 1 {
		return fmt.Errorf("relay count %d must be at least 1", r.RelayCount)
	}
	if r.PlayerMaxHP < 1 {
		return fmt.Errorf("player max hp %d must be positive", r.PlayerMaxHP)
	}
	if r.RevivePercent < 0 || r.RevivePercent > 100 {
		return fmt.Errorf("revive percent %d outside [0,100]", r.RevivePercent)
	}
	if r.DroneMoveEvery < 1 {
		return fmt.Errorf("drone move interval %d must be at least 1", r.DroneMoveEvery)
	}
	if r.MaxTurns < 1 {
		return fmt.Errorf("max turns %d must be positive", r.MaxTurns)
	}
	for _, ft := range []FieldTuning{r.Heat, r.Smoke, r.Vacuum} {
		if ft.Decay < 0 || ft.SpreadRate < 0 || ft.VentRate < 0 {
			return fmt.Errorf("field tuning must not be negative: %+v", ft)
		}
	}
	return nil
}
