package generator

import (
	"fmt"

	"derelict/pkg/engine/rng"
	"derelict/pkg/game/state"
)

// zoneOrder fixes how zones cycle across rooms. Every zone appears at
// least twice on a standard hull, which the vent and evidence placement
// relies on.
var zoneOrder = []state.Zone{
	state.ZoneEngineering,
	state.ZoneQuarters,
	state.ZoneScience,
	state.ZoneCargo,
	state.ZoneMedical,
	state.ZoneCommand,
}

// Room name pools - space station theme, keyed by zone
var zoneRoomNames = map[state.Zone][]string{
	state.ZoneEngineering: {
		"Reactor Control", "Engine Room", "Coolant Plant",
		"Power Distribution", "Maintenance Bay", "Life Support",
	},
	state.ZoneQuarters: {
		"Crew Quarters", "Mess Hall", "Bunk Room", "Rec Deck",
		"Washroom", "Officer Cabins",
	},
	state.ZoneScience: {
		"Lab", "Observatory", "Hydroponics", "Server Room",
		"Sample Vault", "Telemetry",
	},
	state.ZoneCargo: {
		"Cargo Bay", "Storage", "Freight Dock", "Supply Locker",
		"Salvage Hold", "Airlock Staging",
	},
	state.ZoneMedical: {
		"Med Bay", "Infirmary", "Surgical Suite", "Quarantine Ward",
		"Pharmacy", "Cryo Storage",
	},
	state.ZoneCommand: {
		"Bridge", "Command Center", "Communications", "Security",
		"Briefing Room", "Records Office",
	},
}

// nameRooms assigns every room a zone and a unique display name. Zones
// cycle in a fixed order; names draw from the zone's pool with a
// numeral suffix once a pool repeats.
func nameRooms(rooms []state.Room, r *rng.Stream) {
	used := make(map[string]int)
	for i := range rooms {
		zone := zoneOrder[i%len(zoneOrder)]
		pool := zoneRoomNames[zone]
		name := pool[r.IntN(len(pool))]

		used[name]++
		if n := used[name]; n > 1 {
			name = fmt.Sprintf("%s %d", name, n)
		}

		rooms[i].Zone = zone
		rooms[i].Name = name
	}
}

// roomsInZone returns the rooms carrying the given zone, in ID order.
func roomsInZone(rooms []state.Room, zone state.Zone) []state.Room {
	var out []state.Room
	for _, room := range rooms {
		if room.Zone == zone {
			out = append(out, room)
		}
	}
	return out
}
