package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

// Devices
const (
	DeviceUnknown Device = iota
	DeviceTerminal
	DeviceScript
)

// Action represents a high-level intent in the game.
type Action int

// Intents
const (
	ActionNone Action = iota

	// Movement, eight compass points
	ActionMoveNorth
	ActionMoveNorthEast
	ActionMoveEast
	ActionMoveSouthEast
	ActionMoveSouth
	ActionMoveSouthWest
	ActionMoveWest
	ActionMoveNorthWest

	// Turn actions
	ActionInteract
	ActionScan
	ActionClean
	ActionWait
	ActionLook
	ActionJournal
	ActionDeduce

	// Meta / UI
	ActionHelp
	ActionViewJournal
	ActionQuit
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the first-layer event emitted directly from an input
// device. Code is a device-specific identifier (e.g. "arrow_up", "ne").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the second-layer representation after
// debouncing/deduplication. Terminal input arrives pre-debounced, but
// the distinct type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to intents. Multiple codes may point to the
// same Action.
var bindings = map[string]Action{
	// Movement: arrows for the cardinals, compass words for all eight.
	"arrow_up":    ActionMoveNorth,
	"n":           ActionMoveNorth,
	"north":       ActionMoveNorth,
	"ne":          ActionMoveNorthEast,
	"northeast":   ActionMoveNorthEast,
	"arrow_right": ActionMoveEast,
	"e":           ActionMoveEast,
	"east":        ActionMoveEast,
	"se":          ActionMoveSouthEast,
	"southeast":   ActionMoveSouthEast,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"south":       ActionMoveSouth,
	"sw":          ActionMoveSouthWest,
	"southwest":   ActionMoveSouthWest,
	"arrow_left":  ActionMoveWest,
	"w":           ActionMoveWest,
	"west":        ActionMoveWest,
	"nw":          ActionMoveNorthWest,
	"northwest":   ActionMoveNorthWest,

	// Turn actions
	"i":        ActionInteract,
	"interact": ActionInteract,
	"x":        ActionScan,
	"scan":     ActionScan,
	"c":        ActionClean,
	"clean":    ActionClean,
	".":        ActionWait,
	"wait":     ActionWait,
	"look":     ActionLook,
	"j":        ActionJournal,
	"journal":  ActionJournal,
	"d":        ActionDeduce,
	"deduce":   ActionDeduce,
	"submit":   ActionDeduce,

	// Meta
	"?":     ActionHelp,
	"help":  ActionHelp,
	"v":     ActionViewJournal,
	"notes": ActionViewJournal,
	"q":     ActionQuit,
	"quit":  ActionQuit,
}

// MapToIntent applies the binding table to a debounced input and
// returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an intent.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveNorthEast:
		return "Move Northeast"
	case ActionMoveEast:
		return "Move East"
	case ActionMoveSouthEast:
		return "Move Southeast"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveSouthWest:
		return "Move Southwest"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveNorthWest:
		return "Move Northwest"
	case ActionInteract:
		return "Interact"
	case ActionScan:
		return "Scan"
	case ActionClean:
		return "Clean"
	case ActionWait:
		return "Wait"
	case ActionLook:
		return "Look"
	case ActionJournal:
		return "Journal"
	case ActionDeduce:
		return "Submit Deduction"
	case ActionHelp:
		return "Help"
	case ActionViewJournal:
		return "View Journal"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by intent,
// codes sorted for stable help output.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
