package entities

import (
	"testing"

	"derelict/pkg/engine/grid"
)

func TestMutateAfterCloneLeavesParentAlone(t *testing.T) {
	parent := NewCollection()
	parent.Add(NewRelay("relay-1", grid.Point{X: 3, Y: 3}))

	child := parent.Clone()
	e, ok := child.Mutate("relay-1")
	if !ok {
		t.Fatal("relay-1 missing from clone")
	}
	e.(*Relay).Active = true

	pe, _ := parent.Get("relay-1")
	if pe.(*Relay).Active {
		t.Error("mutating the clone flipped the parent's relay")
	}
	ce, _ := child.Get("relay-1")
	if !ce.(*Relay).Active {
		t.Error("clone's relay not active after Mutate")
	}
}

func TestParentWriteAfterCloneCopiesFirst(t *testing.T) {
	parent := NewCollection()
	parent.Add(NewDoor("door-1", grid.Point{X: 1, Y: 1}, false))

	child := parent.Clone()

	e, _ := parent.Mutate("door-1")
	e.(*Door).Open = true

	ce, _ := child.Get("door-1")
	if ce.(*Door).Open {
		t.Error("parent write after clone leaked into the child")
	}
}

func TestMoveRepositionsThroughCopy(t *testing.T) {
	parent := NewCollection()
	parent.Add(NewDrone("drone-1", grid.Point{X: 5, Y: 5}, 20, 2))

	child := parent.Clone()
	if !child.Move("drone-1", grid.Point{X: 6, Y: 5}) {
		t.Fatal("Move reported missing drone")
	}

	pe, _ := parent.Get("drone-1")
	if pe.Pos() != (grid.Point{X: 5, Y: 5}) {
		t.Errorf("parent drone moved to %v", pe.Pos())
	}
	ce, _ := child.Get("drone-1")
	if ce.Pos() != (grid.Point{X: 6, Y: 5}) {
		t.Errorf("child drone at %v, want {6 5}", ce.Pos())
	}
}

func TestIDsAreSorted(t *testing.T) {
	c := NewCollection()
	c.Add(NewRelay("relay-2", grid.Point{}))
	c.Add(NewRelay("relay-1", grid.Point{}))
	c.Add(NewDoor("door-1", grid.Point{}, false))

	ids := c.IDs()
	want := []string{"door-1", "relay-1", "relay-2"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() returned %d entries, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestAtFindsCoLocatedEntities(t *testing.T) {
	c := NewCollection()
	c.Add(NewEvidence("evidence-1", grid.Point{X: 2, Y: 2}, "Logbook", "", nil, false))
	c.Add(NewVent("vent-1", grid.Point{X: 2, Y: 2}, grid.Smoke, 10, 80))
	c.Add(NewRelay("relay-1", grid.Point{X: 4, Y: 4}))

	here := c.At(grid.Point{X: 2, Y: 2})
	if len(here) != 2 {
		t.Fatalf("At found %d entities, want 2", len(here))
	}
	if here[0].ID() != "evidence-1" || here[1].ID() != "vent-1" {
		t.Errorf("At order = %s, %s; want evidence-1, vent-1", here[0].ID(), here[1].ID())
	}
}

func TestRemoveDeletesOutright(t *testing.T) {
	c := NewCollection()
	c.Add(NewSensorPickup("sensor-1", grid.Point{X: 1, Y: 1}, SensorThermal))
	c.Remove("sensor-1")

	if _, ok := c.Get("sensor-1"); ok {
		t.Error("sensor-1 still present after Remove")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d after removing the only entity", c.Len())
	}
}

func TestSensorSet(t *testing.T) {
	var ss SensorSet
	if ss.Has(SensorThermal) {
		t.Error("empty set reports thermal")
	}
	ss = ss.With(SensorThermal).With(SensorParticulate)
	if !ss.Has(SensorThermal) || !ss.Has(SensorParticulate) {
		t.Error("set missing added capabilities")
	}
	if ss.Has(SensorBarometric) {
		t.Error("set reports a capability that was never added")
	}
	if got := ss.Count(); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
}
