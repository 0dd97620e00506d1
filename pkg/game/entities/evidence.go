package entities

import (
	"derelict/pkg/engine/grid"
	"derelict/pkg/game/deduction"
)

// Evidence is a findable narrative fragment. Its tags feed the
// deduction layer; buried evidence has to be cleaned free before it can
// be collected. Tags are fixed at generation time and never mutated, so
// clones may share the slice.
type Evidence struct {
	Base
	Title     string
	Text      string
	Tags      []deduction.Tag
	Buried    bool
	Collected bool
}

// NewEvidence creates an uncollected evidence item.
func NewEvidence(id string, at grid.Point, title, text string, tags []deduction.Tag, buried bool) *Evidence {
	return &Evidence{
		Base:   Base{EID: id, At: at},
		Title:  title,
		Text:   text,
		Tags:   tags,
		Buried: buried,
	}
}

// Kind returns KindEvidence.
func (e *Evidence) Kind() Kind {
	return KindEvidence
}

// Label returns the display name for log lines.
func (e *Evidence) Label() string {
	return e.Title
}

func (e *Evidence) clone() Entity {
	c := *e
	return &c
}
