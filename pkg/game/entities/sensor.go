package entities

import (
	"math/bits"

	"derelict/pkg/engine/grid"
)

// Sensor identifies one of the detection capabilities a pickup grants
type Sensor int

// Sensor capabilities
const (
	SensorThermal Sensor = iota
	SensorBarometric
	SensorParticulate
)

// AllSensors returns the capabilities in a stable order
func AllSensors() []Sensor {
	return []Sensor{SensorThermal, SensorBarometric, SensorParticulate}
}

// String returns the string representation of a sensor capability
func (s Sensor) String() string {
	switch s {
	case SensorThermal:
		return "thermal"
	case SensorBarometric:
		return "barometric"
	case SensorParticulate:
		return "particulate"
	default:
		return "unknown"
	}
}

// SensorSet is a bit set of held capabilities. It copies by value, so
// snapshots share it safely.
type SensorSet uint8

// Has reports whether the set contains s.
func (ss SensorSet) Has(s Sensor) bool {
	return ss&(1<<uint(s)) != 0
}

// With returns the set extended by s.
func (ss SensorSet) With(s Sensor) SensorSet {
	return ss | (1 << uint(s))
}

// Count returns how many capabilities the set holds.
func (ss SensorSet) Count() int {
	return bits.OnesCount8(uint8(ss))
}

// SensorPickup is a consumable module that grants a capability when
// collected. It is removed from the collection on pickup.
type SensorPickup struct {
	Base
	Grants Sensor
}

// NewSensorPickup creates a pickup granting the given capability.
func NewSensorPickup(id string, at grid.Point, grants Sensor) *SensorPickup {
	return &SensorPickup{
		Base:   Base{EID: id, At: at},
		Grants: grants,
	}
}

// Kind returns KindSensorPickup.
func (p *SensorPickup) Kind() Kind {
	return KindSensorPickup
}

// Label returns the display name for log lines.
func (p *SensorPickup) Label() string {
	return p.Grants.String() + " sensor"
}

func (p *SensorPickup) clone() Entity {
	c := *p
	return &c
}
