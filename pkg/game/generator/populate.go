package generator

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"derelict/pkg/engine/grid"
	"derelict/pkg/engine/rng"
	"derelict/pkg/game/deduction"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/state"
)

// Seed levels for hazard fields around a freshly placed vent, so the
// hazard reads on the first look rather than after its first few
// injections.
const (
	ventSeedLevel    = 55
	ventAmbientLevel = 25
)

// droneMinDistance keeps drones this many walked tiles from the spawn.
const droneMinDistance = 10

// buriedPieces is how many evidence fragments start under a dirt drift.
const buriedPieces = 2

// populate places the player, seals the vault behind the relay gate,
// and lands every entity, then distributes dirt and the incident's
// evidence. Placement only uses tiles reachable before the gate opens.
func populate(st *state.GameState, lay *layout, r *rng.Stream) error {
	st.Entities = entities.NewCollection()

	// Player first: gate choice and reachability are judged from its
	// tile.
	startRoom := lay.rooms[r.IntN(len(lay.rooms))]
	startPos := startRoom.Center()
	st.Entities.Add(entities.NewPlayerBot(startPos))
	st.Player = state.Player{
		HP:    st.Rules.PlayerMaxHP,
		MaxHP: st.Rules.PlayerMaxHP,
		Alive: true,
	}

	dist := walkDistances(st.Grid, startPos)

	coreRoom, err := placeGate(st, lay, startRoom, startPos, dist)
	if err != nil {
		return err
	}

	addDoorEntities(st)

	corePos := coreRoom.Center()
	st.Entities.Add(entities.NewDataCore("core-1", corePos))

	pl := &placer{st: st, r: r, occupied: mapset.New[grid.Point]()}
	pl.occupied.Put(startPos)
	pl.occupied.Put(corePos)
	pl.reached = st.Grid.Reachable(startPos, preGatePassable(st.Grid))

	if err := pl.placeRelays(lay.rooms, coreRoom.ID); err != nil {
		return err
	}
	if err := pl.placeSensors(lay.rooms, coreRoom.ID); err != nil {
		return err
	}
	if err := pl.placeVents(lay.rooms, coreRoom.ID, startRoom.ID); err != nil {
		return err
	}
	if err := pl.placeDrones(lay.rooms, coreRoom.ID, startRoom.ID, dist); err != nil {
		return err
	}
	if err := pl.placeRecoveryBot(lay.rooms, coreRoom.ID, startRoom.ID); err != nil {
		return err
	}

	spreadDirt(st, lay.rooms, r)

	return pl.placeEvidence(lay.rooms, coreRoom.ID)
}

// placer tracks claimed tiles and the pre-gate reachable set while
// entities land.
type placer struct {
	st       *state.GameState
	r        *rng.Stream
	occupied mapset.Set[grid.Point]
	reached  *mapset.Set[grid.Point]
}

// preGatePassable is the movement predicate before the gate opens:
// plain doors count, locked gate doors do not.
func preGatePassable(g *grid.Grid) func(grid.Point) bool {
	return func(p grid.Point) bool {
		t := g.At(p)
		return t.Walkable || t.Kind == grid.Door
	}
}

// walkDistances runs a breadth-first sweep from start, treating doors
// of both kinds as passable, and returns step distances for every tile
// the crew could eventually walk.
func walkDistances(g *grid.Grid, start grid.Point) map[grid.Point]int {
	dist := map[grid.Point]int{start: 0}
	queue := []grid.Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range grid.CardinalDirections() {
			next := current.Add(d.Delta())
			if !g.InBounds(next) {
				continue
			}
			if t := g.At(next); !t.Walkable && !t.IsDoorKind() {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[current] + 1
			queue = append(queue, next)
		}
	}

	return dist
}

// sealedTile remembers a tile replaced by a gate door so a failed
// candidate can be rolled back.
type sealedTile struct {
	p    grid.Point
	prev grid.Tile
}

// placeGate picks the vault room, seals every way in with locked gate
// doors, and verifies no other room got cut off. Candidates are tried
// from farthest to nearest so the vault sits deep in the station.
func placeGate(st *state.GameState, lay *layout, startRoom state.Room, startPos grid.Point, dist map[grid.Point]int) (state.Room, error) {
	for _, room := range lay.rooms {
		if _, ok := dist[room.Center()]; !ok {
			return state.Room{}, fmt.Errorf("%w: %s is cut off", ErrDisconnected, room.Name)
		}
	}

	candidates := make([]state.Room, 0, len(lay.rooms))
	for _, room := range lay.rooms {
		if room.ID != startRoom.ID {
			candidates = append(candidates, room)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return dist[candidates[i].Center()] > dist[candidates[j].Center()]
	})

	for _, room := range candidates {
		sealed := sealRoom(st.Grid, room)
		if len(sealed) == 0 {
			continue
		}
		if gateKeepsStationOpen(st.Grid, lay, room, startPos) {
			return room, nil
		}
		// This room was a thoroughfare; put its entries back.
		for _, s := range sealed {
			st.Grid.Set(s.p, s.prev)
		}
	}

	return state.Room{}, ErrNoGateRoom
}

// sealRoom replaces every walkable or door tile bordering the room with
// a locked gate door and returns what it replaced.
func sealRoom(g *grid.Grid, room state.Room) []sealedTile {
	var sealed []sealedTile
	room.Bounds.Each(func(p grid.Point) {
		for _, d := range grid.CardinalDirections() {
			n := p.Add(d.Delta())
			if room.Bounds.Contains(n) || !g.InBounds(n) {
				continue
			}
			t := g.At(n)
			if t.Kind == grid.Corridor || t.Kind == grid.Door {
				sealed = append(sealed, sealedTile{p: n, prev: t})
				g.Set(n, grid.NewTile(grid.LockedDoor))
			}
		}
	})
	return sealed
}

// gateKeepsStationOpen verifies that with the gate sealed, every room
// but the vault is still reachable from the start tile.
func gateKeepsStationOpen(g *grid.Grid, lay *layout, gated state.Room, startPos grid.Point) bool {
	reached := g.Reachable(startPos, preGatePassable(g))
	for _, room := range lay.rooms {
		if room.ID == gated.ID {
			continue
		}
		if !reached.Has(room.Center()) {
			return false
		}
	}
	return true
}

// addDoorEntities creates one door entity per door tile, numbered in
// row-major order so IDs are stable per seed.
func addDoorEntities(st *state.GameState) {
	n := 0
	st.Grid.ForEach(func(p grid.Point, t grid.Tile) {
		if !t.IsDoorKind() {
			return
		}
		n++
		st.Entities.Add(entities.NewDoor(fmt.Sprintf("door-%d", n), p, t.Kind == grid.LockedDoor))
	})
}

// pickFloor claims a free, pre-gate-reachable floor tile in room.
func (pl *placer) pickFloor(room state.Room) (grid.Point, error) {
	var candidates []grid.Point
	room.Bounds.Each(func(p grid.Point) {
		if pl.occupied.Has(p) || !pl.st.Grid.Walkable(p) {
			return
		}
		if !pl.reached.Has(p) {
			return
		}
		candidates = append(candidates, p)
	})
	if len(candidates) == 0 {
		return grid.Point{}, fmt.Errorf("populate: no free tile in %q", room.Name)
	}
	p := candidates[pl.r.IntN(len(candidates))]
	pl.occupied.Put(p)
	return p, nil
}

// reachableRooms filters rooms to those open before the gate, skipping
// the vault. Order follows room IDs.
func (pl *placer) reachableRooms(rooms []state.Room, coreID int) []state.Room {
	var out []state.Room
	for _, room := range rooms {
		if room.ID == coreID {
			continue
		}
		if pl.reached.Has(room.Center()) {
			out = append(out, room)
		}
	}
	return out
}

// placeRelays spreads the gate relays across distinct rooms, all of
// them powered up without passing the gate they open.
func (pl *placer) placeRelays(rooms []state.Room, coreID int) error {
	candidates := pl.reachableRooms(rooms, coreID)
	if len(candidates) < pl.st.Rules.RelayCount {
		return fmt.Errorf("populate: %d rooms open before the gate, need %d for relays",
			len(candidates), pl.st.Rules.RelayCount)
	}

	pl.r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for i := 0; i < pl.st.Rules.RelayCount; i++ {
		p, err := pl.pickFloor(candidates[i])
		if err != nil {
			return err
		}
		pl.st.Entities.Add(entities.NewRelay(fmt.Sprintf("relay-%d", i+1), p))
	}
	return nil
}

// placeSensors drops one pickup per sensor capability, each in its own
// room when enough rooms are open.
func (pl *placer) placeSensors(rooms []state.Room, coreID int) error {
	candidates := pl.reachableRooms(rooms, coreID)
	if len(candidates) == 0 {
		return fmt.Errorf("populate: no rooms open for sensor pickups")
	}

	pl.r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for i, sensor := range entities.AllSensors() {
		room := candidates[i%len(candidates)]
		p, err := pl.pickFloor(room)
		if err != nil {
			return err
		}
		id := fmt.Sprintf("sensor-%d", i+1)
		pl.st.Entities.Add(entities.NewSensorPickup(id, p, sensor))
	}
	return nil
}

// placeVents opens one active vent per hazard field. The heat exchanger
// fails in engineering when possible, and the hull breach lands away
// from the spawn so a run never opens inside a vacuum.
func (pl *placer) placeVents(rooms []state.Room, coreID, startID int) error {
	candidates := pl.reachableRooms(rooms, coreID)
	if len(candidates) == 0 {
		return fmt.Errorf("populate: no rooms open for vents")
	}

	heatRooms := roomsInZone(candidates, state.ZoneEngineering)
	if len(heatRooms) == 0 {
		heatRooms = candidates
	}

	var breachRooms []state.Room
	for _, room := range candidates {
		if room.ID != startID {
			breachRooms = append(breachRooms, room)
		}
	}
	if len(breachRooms) == 0 {
		breachRooms = candidates
	}

	placements := []struct {
		field grid.Field
		rooms []state.Room
	}{
		{grid.Heat, heatRooms},
		{grid.Smoke, candidates},
		{grid.Pressure, breachRooms},
	}

	for i, pick := range placements {
		room := pick.rooms[pl.r.IntN(len(pick.rooms))]
		p, err := pl.pickFloor(room)
		if err != nil {
			return err
		}
		tuning := pl.st.Rules.Tuning(pick.field.String())
		id := fmt.Sprintf("vent-%d", i+1)
		pl.st.Entities.Add(entities.NewVent(id, p, pick.field, tuning.VentRate, tuning.VentCap))
		pl.seedField(room, p, pick.field)
	}
	return nil
}

// seedField warms a vent's room: the vent tile gets the seed level, the
// rest of the room the ambient level. Pressure seeds drain atmosphere
// instead of adding it.
func (pl *placer) seedField(room state.Room, at grid.Point, field grid.Field) {
	room.Bounds.Each(func(p grid.Point) {
		level := ventAmbientLevel
		if p == at {
			level = ventSeedLevel
		}
		pl.st.Grid.Update(p, func(t *grid.Tile) {
			if !t.Walkable {
				return
			}
			if field == grid.Pressure {
				if v := grid.FullPressure - level; v < t.Pressure {
					t.Pressure = v
				}
				return
			}
			if level > t.Level(field) {
				t.SetLevel(field, level)
			}
		})
	})
}

// placeDrones puts the malfunctioning units deep in the station, never
// in the player's starting room.
func (pl *placer) placeDrones(rooms []state.Room, coreID, startID int, dist map[grid.Point]int) error {
	candidates := pl.reachableRooms(rooms, coreID)

	var far []state.Room
	for _, room := range candidates {
		if room.ID == startID {
			continue
		}
		if dist[room.Center()] >= droneMinDistance {
			far = append(far, room)
		}
	}
	if len(far) == 0 {
		for _, room := range candidates {
			if room.ID != startID {
				far = append(far, room)
			}
		}
	}
	if len(far) == 0 {
		return fmt.Errorf("populate: no room can host drones")
	}

	for i := 0; i < pl.st.Rules.DroneCount; i++ {
		room := far[pl.r.IntN(len(far))]
		p, err := pl.pickFloor(room)
		if err != nil {
			return err
		}
		pl.st.Entities.Add(entities.NewDrone(fmt.Sprintf("drone-%d", i+1),
			p, pl.st.Rules.DroneHP, pl.st.Rules.DroneMoveEvery))
	}
	return nil
}

// placeRecoveryBot parks the one rescue unit somewhere worth walking
// to, outside the starting room when possible.
func (pl *placer) placeRecoveryBot(rooms []state.Room, coreID, startID int) error {
	candidates := pl.reachableRooms(rooms, coreID)

	var away []state.Room
	for _, room := range candidates {
		if room.ID != startID {
			away = append(away, room)
		}
	}
	if len(away) == 0 {
		away = candidates
	}
	if len(away) == 0 {
		return fmt.Errorf("populate: no room can host the recovery bot")
	}

	room := away[pl.r.IntN(len(away))]
	p, err := pl.pickFloor(room)
	if err != nil {
		return err
	}
	pl.st.Entities.Add(entities.NewRecoveryBot("recovery-1", p))
	return nil
}

// Dirt baselines by zone. Cargo handling is filthy; medical keeps
// itself scrubbed. Jitter stops rooms from reading flat.
var zoneDirt = map[state.Zone]int{
	state.ZoneEngineering: 22,
	state.ZoneQuarters:    10,
	state.ZoneScience:     8,
	state.ZoneCargo:       30,
	state.ZoneMedical:     6,
	state.ZoneCommand:     8,
}

const corridorDirt = 14

// spreadDirt lays down the grime the cleaning action works against.
// Evidence burial overwrites individual tiles afterwards.
func spreadDirt(st *state.GameState, rooms []state.Room, r *rng.Stream) {
	for _, room := range rooms {
		base := zoneDirt[room.Zone]
		room.Bounds.Each(func(p grid.Point) {
			d := base + r.IntN(16)
			st.Grid.Update(p, func(t *grid.Tile) { t.Dirt = d })
		})
	}
	st.Grid.UpdateAll(func(p grid.Point, t *grid.Tile) {
		if t.Kind == grid.Corridor {
			t.Dirt = corridorDirt + r.IntN(12)
		}
	})
}

// placeEvidence draws the seed's incident, lands its fragments plus two
// incident-neutral ones across the open rooms, and buries a couple
// under dirt drifts.
func (pl *placer) placeEvidence(rooms []state.Room, coreID int) error {
	inc := deduction.Incidents[pl.r.IntN(len(deduction.Incidents))]
	pl.st.Incident = inc.Name
	pl.st.Cases = append([]deduction.Case(nil), inc.Cases...)

	templates := append([]deduction.EvidenceTemplate(nil), inc.Evidence...)
	flavor := append([]deduction.EvidenceTemplate(nil), deduction.FlavorEvidence...)
	pl.r.Shuffle(len(flavor), func(i, j int) { flavor[i], flavor[j] = flavor[j], flavor[i] })
	templates = append(templates, flavor[0], flavor[1])

	candidates := pl.reachableRooms(rooms, coreID)
	if len(candidates) == 0 {
		return fmt.Errorf("populate: no rooms open for evidence")
	}
	pl.r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	order := make([]int, len(templates))
	for i := range order {
		order[i] = i
	}
	pl.r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	buried := mapset.New[int]()
	for i := 0; i < buriedPieces && i < len(order); i++ {
		buried.Put(order[i])
	}

	for i, tpl := range templates {
		room := candidates[i%len(candidates)]
		p, err := pl.pickFloor(room)
		if err != nil {
			return err
		}

		isBuried := buried.Has(i)
		tags := deduction.DeriveTags(tpl.Text, tpl.Forced...)
		id := fmt.Sprintf("evidence-%d", i+1)
		pl.st.Entities.Add(entities.NewEvidence(id, p, tpl.Title, tpl.Text, tags, isBuried))

		if isBuried {
			depth := pl.st.Rules.BurialDirt + 10 + pl.r.IntN(10)
			pl.st.Grid.Update(p, func(t *grid.Tile) { t.Dirt = depth })
		}
	}
	return nil
}
