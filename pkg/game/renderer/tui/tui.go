// Package tui renders the game into a plain terminal: a viewport
// centered on the player, a status line, and the recent event log.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"derelict/pkg/engine/grid"
	"derelict/pkg/engine/input"
	"derelict/pkg/engine/terminal"
	"derelict/pkg/game/entities"
	"derelict/pkg/game/renderer"
	"derelict/pkg/game/state"
)

// Entity icons. Tile glyphs come from the tiles themselves; only
// entities get renderer-side icons.
const (
	IconPlayer        = '@'
	IconRelayDark     = 'r'
	IconRelayLive     = 'R'
	IconSensor        = 's'
	IconEvidence      = 'e'
	IconDataCore      = 'C'
	IconDrone         = 'D'
	IconDroneDisabled = 'x'
	IconRecoveryBot   = 'B'
	IconVent          = 'V'
)

// Space kept below the viewport for status, log, and prompt lines.
const chromeLines = 12

// logLines is how many recent events print under the map.
const logLines = 5

// TUIRenderer draws frames with ANSI styling.
type TUIRenderer struct {
	colorTitle     color.Style
	colorSubtle    color.Style
	colorPlayer    color.Style
	colorHazard    color.Style
	colorWarning   color.Style
	colorGood      color.Style
	colorDoor      color.Style
	colorObjective color.Style
	colorEvidence  color.Style
	colorDenied    color.Style
}

// New creates a TUI renderer.
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init sets up the color palette.
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorPlayer = color.Style{color.FgGreen, color.OpBold}
	t.colorHazard = color.Style{color.FgRed}
	t.colorWarning = color.Style{color.FgYellow, color.OpBold}
	t.colorGood = color.Style{color.FgGreen}
	t.colorDoor = color.Style{color.FgYellow}
	t.colorObjective = color.Style{color.FgMagenta, color.OpBold}
	t.colorEvidence = color.Style{color.FgBlue, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
}

// Clear wipes the terminal.
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// ReadIntent blocks for one keystroke and maps it through the binding
// table.
func (t *TUIRenderer) ReadIntent() (input.Intent, error) {
	code, err := input.ReadKey()
	if err != nil {
		return input.Intent{}, err
	}
	raw := input.RawInput{Device: input.DeviceTerminal, Code: code}
	return input.MapToIntent(input.NewDebouncedInput(raw)), nil
}

// Prompt asks for one line of free text.
func (t *TUIRenderer) Prompt(label string) (string, error) {
	fmt.Printf("%s: ", t.colorTitle.Sprint(label))
	return input.ReadLine()
}

// ShowMessage prints a line outside the frame.
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// StyleText applies a semantic style.
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleHazard:
		return t.colorHazard.Sprint(text)
	case renderer.StyleWarning:
		return t.colorWarning.Sprint(text)
	case renderer.StyleGood:
		return t.colorGood.Sprint(text)
	case renderer.StyleDoor:
		return t.colorDoor.Sprint(text)
	case renderer.StyleObjective:
		return t.colorObjective.Sprint(text)
	case renderer.StyleEvidence:
		return t.colorEvidence.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// RenderFrame draws one full frame.
func (t *TUIRenderer) RenderFrame(s *state.GameState) {
	t.printHeader(s)
	t.printViewport(s)
	t.printStatus(s)
	t.printLog(s)
	fmt.Print("> ")
}

// printHeader names the run and the player's current room.
func (t *TUIRenderer) printHeader(s *state.GameState) {
	where := gotext.Get("Connecting corridor")
	if room, ok := s.RoomAt(s.PlayerPos()); ok {
		where = fmt.Sprintf("%s — %s", room.Zone, room.Name)
	}
	t.colorTitle.Printf("%s %d — %s\n", gotext.Get("Turn"), s.Turn, where)
	t.colorSubtle.Printf("%s: %s\n\n", gotext.Get("Incident file"), s.Incident)
}

// viewport computes the window of the grid to draw, centered on the
// player and clipped to both the grid and the terminal.
func viewport(s *state.GameState) grid.Rect {
	termW, termH := terminal.Size()
	w := min(s.Grid.Width, termW)
	h := min(s.Grid.Height, termH-chromeLines)
	if h < 8 {
		h = 8
	}

	p := s.PlayerPos()
	minX := clampInt(p.X-w/2, 0, s.Grid.Width-w)
	minY := clampInt(p.Y-h/2, 0, s.Grid.Height-h)
	return grid.NewRect(minX, minY, w, h)
}

// printViewport draws the map window with entity overlays.
func (t *TUIRenderer) printViewport(s *state.GameState) {
	icons := make(map[grid.Point]string)
	s.Entities.Each(func(e entities.Entity) {
		if icon, ok := t.entityIcon(e); ok {
			icons[e.Pos()] = icon
		}
	})

	view := viewport(s)
	var b strings.Builder
	for y := view.MinY; y <= view.MaxY; y++ {
		for x := view.MinX; x <= view.MaxX; x++ {
			p := grid.Point{X: x, Y: y}
			tile := s.Grid.At(p)

			if !tile.Explored {
				b.WriteByte(' ')
				continue
			}
			if tile.Visible {
				if icon, ok := icons[p]; ok {
					b.WriteString(icon)
					continue
				}
				b.WriteString(t.tileString(s, tile))
				continue
			}
			// Explored but out of view: dim memory of the layout.
			b.WriteString(t.colorSubtle.Sprint(string(tile.Glyph)))
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}

// tileString styles one visible tile, hazards first. Walls hold no
// atmosphere, so hazard colors only apply to walkable tiles.
func (t *TUIRenderer) tileString(s *state.GameState, tile grid.Tile) string {
	g := string(tile.Glyph)
	switch {
	case tile.Walkable && (tile.Heat >= s.Rules.PainHeat || tile.Pressure < s.Rules.LowPressure):
		return t.colorDenied.Sprint(g)
	case tile.Walkable && (tile.Heat >= s.Rules.ThermalSeesHeat || tile.Smoke >= s.Rules.ParticulateSeesSmoke):
		return t.colorHazard.Sprint(g)
	case tile.Walkable && tile.Pressure < s.Rules.BarometricSeesBelow:
		return t.colorWarning.Sprint(g)
	case tile.IsDoorKind():
		return t.colorDoor.Sprint(g)
	case tile.Dirt >= s.Rules.BurialDirt:
		return t.colorEvidence.Sprint("%")
	default:
		return g
	}
}

// entityIcon styles one entity's map icon.
func (t *TUIRenderer) entityIcon(e entities.Entity) (string, bool) {
	switch v := e.(type) {
	case *entities.PlayerBot:
		return t.colorPlayer.Sprint(string(IconPlayer)), true
	case *entities.Relay:
		if v.Active {
			return t.colorGood.Sprint(string(IconRelayLive)), true
		}
		return t.colorObjective.Sprint(string(IconRelayDark)), true
	case *entities.SensorPickup:
		return t.colorObjective.Sprint(string(IconSensor)), true
	case *entities.Evidence:
		if v.Buried || v.Collected {
			return "", false
		}
		return t.colorEvidence.Sprint(string(IconEvidence)), true
	case *entities.DataCore:
		return t.colorObjective.Sprint(string(IconDataCore)), true
	case *entities.Drone:
		if v.Disabled {
			return t.colorSubtle.Sprint(string(IconDroneDisabled)), true
		}
		return t.colorDenied.Sprint(string(IconDrone)), true
	case *entities.RecoveryBot:
		return t.colorGood.Sprint(string(IconRecoveryBot)), true
	case *entities.Vent:
		if v.Suppressed {
			return t.colorSubtle.Sprint(string(IconVent)), true
		}
		return t.colorHazard.Sprint(string(IconVent)), true
	default:
		return "", false
	}
}

// printStatus summarizes hull, sensors, relays, and conditions.
func (t *TUIRenderer) printStatus(s *state.GameState) {
	hp := fmt.Sprintf("%s %d/%d", gotext.Get("Integrity"), s.Player.HP, s.Player.MaxHP)
	if s.Player.HP*4 <= s.Player.MaxHP {
		hp = t.colorDenied.Sprint(hp)
	} else {
		hp = t.colorGood.Sprint(hp)
	}

	var held []string
	for _, sensor := range entities.AllSensors() {
		if s.Player.Sensors.Has(sensor) {
			held = append(held, sensor.String())
		}
	}
	sensors := gotext.Get("none")
	if len(held) > 0 {
		sensors = strings.Join(held, ", ")
	}

	live := 0
	relays := s.Entities.ByKind(entities.KindRelay)
	for _, e := range relays {
		if e.(*entities.Relay).Active {
			live++
		}
	}

	fmt.Printf("\n%s | %s: %s | %s %d/%d",
		hp, gotext.Get("Sensors"), sensors, gotext.Get("Relays"), live, len(relays))

	if s.Player.StunnedFor > 0 {
		fmt.Printf(" | %s", t.colorWarning.Sprintf("%s %d", gotext.Get("STUNNED"), s.Player.StunnedFor))
	}
	fmt.Println()
}

// printLog shows the tail of the event history.
func (t *TUIRenderer) printLog(s *state.GameState) {
	fmt.Println(t.colorSubtle.Sprint(strings.Repeat("—", 40)))
	start := len(s.Log) - logLines
	if start < 0 {
		start = 0
	}
	for _, entry := range s.Log[start:] {
		fmt.Printf("%s %s\n", t.colorSubtle.Sprintf("[%d]", entry.Turn), entry.Text)
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
