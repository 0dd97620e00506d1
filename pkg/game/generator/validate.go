package generator

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"derelict/pkg/engine/grid"
	"derelict/pkg/game/deduction"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/state"
	"derelict/pkg/logger"
)

// validate holds a freshly populated station to the three generation
// invariants: full connectivity, a solvable relay gate, and deduction
// tag coverage. A failure here is a defect in the generator or its
// content tables, never a recoverable runtime condition.
func validate(st *state.GameState) error {
	if err := st.Grid.Validate(); err != nil {
		return err
	}
	if err := checkConnectivity(st); err != nil {
		return err
	}
	if err := checkGateSolvable(st); err != nil {
		return err
	}
	return checkTagCoverage(st)
}

// anyDoorPassable is the movement predicate once every door can open:
// the world the player ends up in after the gate releases.
func anyDoorPassable(g *grid.Grid) func(grid.Point) bool {
	return func(p grid.Point) bool {
		t := g.At(p)
		return t.Walkable || t.IsDoorKind()
	}
}

// checkConnectivity walks corner-safe from the start tile with all
// doors openable and requires every room interior tile to be reached.
func checkConnectivity(st *state.GameState) error {
	reached := st.Grid.Reachable(st.PlayerPos(), anyDoorPassable(st.Grid))

	for _, room := range st.Rooms {
		missing := 0
		room.Bounds.Each(func(p grid.Point) {
			if st.Grid.Walkable(p) && !reached.Has(p) {
				missing++
			}
		})
		if missing > 0 {
			return fmt.Errorf("%w: %d tiles of %q unreached", ErrDisconnected, missing, room.Name)
		}
	}
	return nil
}

// checkGateSolvable requires every relay to be reachable while the gate
// doors are still treated as walls, so powering the gate never needs
// the gate.
func checkGateSolvable(st *state.GameState) error {
	reached := st.Grid.Reachable(st.PlayerPos(), preGatePassable(st.Grid))

	for _, e := range st.Entities.ByKind(entities.KindRelay) {
		if !reached.Has(e.Pos()) {
			return fmt.Errorf("%w: %s at %v", ErrGateUnsolvable, e.ID(), e.Pos())
		}
	}
	return nil
}

// checkTagCoverage requires the union of tags derivable from reachable
// evidence to cover every tag any generated case demands. Buried
// evidence counts: it can be cleaned free.
func checkTagCoverage(st *state.GameState) error {
	reached := st.Grid.Reachable(st.PlayerPos(), preGatePassable(st.Grid))

	available := mapset.New[deduction.Tag]()
	for _, e := range st.Entities.ByKind(entities.KindEvidence) {
		ev := e.(*entities.Evidence)
		if !reached.Has(ev.Pos()) {
			logger.Log.WithField("evidence", ev.ID()).Debug("evidence outside the pre-gate region")
			continue
		}
		for _, t := range ev.Tags {
			available.Put(t)
		}
	}

	var have []deduction.Tag
	available.Each(func(t deduction.Tag) {
		have = append(have, t)
	})

	if missing := deduction.MissingTags(st.Cases, have); len(missing) > 0 {
		return fmt.Errorf("%w: missing %v", ErrTagCoverage, missing)
	}
	return nil
}
