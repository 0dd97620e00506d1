package entities

import "derelict/pkg/engine/grid"

// DataCore is the victory objective: the sealed archive holding the
// station's final logs. Downloading it ends the run.
type DataCore struct {
	Base
	Downloaded bool
}

// NewDataCore creates the archive entity.
func NewDataCore(id string, at grid.Point) *DataCore {
	return &DataCore{Base: Base{EID: id, At: at}}
}

// Kind returns KindDataCore.
func (d *DataCore) Kind() Kind {
	return KindDataCore
}

// Label returns the display name for log lines.
func (d *DataCore) Label() string {
	return "data core"
}

func (d *DataCore) clone() Entity {
	c := *d
	return &c
}
