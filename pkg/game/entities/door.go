package entities

import "derelict/pkg/engine/grid"

// Door joins a room to a corridor. Locked doors are gate doors that
// stay shut until every gate relay is powered. Sealed doors were slammed
// by a pressure collapse and reopen only by hand once pressure returns.
type Door struct {
	Base
	Open   bool
	Locked bool
	Sealed bool
}

// NewDoor creates a closed door. Locked doors form the relay gate.
func NewDoor(id string, at grid.Point, locked bool) *Door {
	return &Door{
		Base:   Base{EID: id, At: at},
		Locked: locked,
	}
}

// Kind returns KindDoor.
func (d *Door) Kind() Kind {
	return KindDoor
}

// Label returns the display name for log lines.
func (d *Door) Label() string {
	switch {
	case d.Locked:
		return "locked door"
	case d.Sealed:
		return "sealed bulkhead"
	default:
		return "door"
	}
}

func (d *Door) clone() Entity {
	c := *d
	return &c
}
