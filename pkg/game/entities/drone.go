package entities

import "derelict/pkg/engine/grid"

// Drone is a malfunctioning maintenance unit that chases the player and
// strikes when adjacent. It acts once every MoveEvery turns. A drone
// whose HP reaches zero is disabled, not removed; its husk stays on the
// map.
type Drone struct {
	Base
	HP        int
	MoveEvery int
	Disabled  bool
}

// NewDrone creates an active drone.
func NewDrone(id string, at grid.Point, hp, moveEvery int) *Drone {
	return &Drone{
		Base:      Base{EID: id, At: at},
		HP:        hp,
		MoveEvery: moveEvery,
	}
}

// Kind returns KindDrone.
func (d *Drone) Kind() Kind {
	return KindDrone
}

// Label returns the display name for log lines.
func (d *Drone) Label() string {
	if d.Disabled {
		return "disabled drone"
	}
	return "maintenance drone"
}

// Damage applies dmg to the drone, disabling it at zero HP.
func (d *Drone) Damage(dmg int) {
	if d.Disabled || dmg <= 0 {
		return
	}
	d.HP -= dmg
	if d.HP <= 0 {
		d.HP = 0
		d.Disabled = true
	}
}

func (d *Drone) clone() Entity {
	c := *d
	return &c
}
