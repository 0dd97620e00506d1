package entities

import "derelict/pkg/engine/grid"

// Vent injects one hazard field into its tile every turn until the
// player suppresses it. For the pressure field the vent is a hull
// breach: it injects vacuum, draining the tile's atmosphere.
type Vent struct {
	Base
	Field      grid.Field
	Rate       int
	Cap        int
	Suppressed bool
}

// NewVent creates an active vent for the given field.
func NewVent(id string, at grid.Point, field grid.Field, rate, cap int) *Vent {
	return &Vent{
		Base:  Base{EID: id, At: at},
		Field: field,
		Rate:  rate,
		Cap:   cap,
	}
}

// Kind returns KindVent.
func (v *Vent) Kind() Kind {
	return KindVent
}

// Label returns the display name for log lines.
func (v *Vent) Label() string {
	switch v.Field {
	case grid.Heat:
		return "ruptured heat exchanger"
	case grid.Smoke:
		return "smoldering vent"
	default:
		return "hull breach"
	}
}

func (v *Vent) clone() Entity {
	c := *v
	return &c
}
