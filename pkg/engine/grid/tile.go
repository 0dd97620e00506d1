package grid

// TileKind classifies a tile's terrain
type TileKind int

// Tile kinds
const (
	Wall TileKind = iota
	Floor
	Corridor
	Door
	LockedDoor
)

// String returns the string representation of a tile kind
func (k TileKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Corridor:
		return "corridor"
	case Door:
		return "door"
	case LockedDoor:
		return "locked door"
	default:
		return "unknown"
	}
}

// Display glyphs for each tile kind and door state. The glyph is part
// of the tile so a snapshot fully describes the board.
const (
	GlyphWall       = '▒'
	GlyphFloor      = '·'
	GlyphCorridor   = '░'
	GlyphDoorClosed = '+'
	GlyphDoorOpen   = '/'
	GlyphDoorLocked = '╳'
	GlyphDoorSealed = '■'
)

// MaxLevel is the upper clamp for every hazard field and for dirt.
const MaxLevel = 100

// FullPressure is nominal atmosphere.
const FullPressure = 100

// Field selects one of the scalar hazard layers on a tile
type Field int

// Hazard fields
const (
	Heat Field = iota
	Smoke
	Pressure
)

// AllFields returns the hazard layers in a stable order
func AllFields() []Field {
	return []Field{Heat, Smoke, Pressure}
}

// String returns the string representation of a hazard field
func (f Field) String() string {
	switch f {
	case Heat:
		return "heat"
	case Smoke:
		return "smoke"
	case Pressure:
		return "pressure"
	default:
		return "unknown"
	}
}

// Tile is one grid cell. Hazard fields and Dirt range 0..100. Visible
// means "in view this turn"; Explored is sticky once set.
type Tile struct {
	Kind     TileKind
	Glyph    rune
	Walkable bool
	Heat     int
	Smoke    int
	Pressure int
	Dirt     int
	Visible  bool
	Explored bool
}

// NewTile returns a tile of the given kind with its default glyph,
// walkability, and nominal atmosphere. Walls hold no atmosphere.
func NewTile(kind TileKind) Tile {
	t := Tile{Kind: kind}
	switch kind {
	case Wall:
		t.Glyph = GlyphWall
	case Floor:
		t.Glyph = GlyphFloor
		t.Walkable = true
		t.Pressure = FullPressure
	case Corridor:
		t.Glyph = GlyphCorridor
		t.Walkable = true
		t.Pressure = FullPressure
	case Door:
		t.Glyph = GlyphDoorClosed
		t.Pressure = FullPressure
	case LockedDoor:
		t.Glyph = GlyphDoorLocked
		t.Pressure = FullPressure
	}
	return t
}

// Level returns the value of hazard field f.
func (t Tile) Level(f Field) int {
	switch f {
	case Heat:
		return t.Heat
	case Smoke:
		return t.Smoke
	case Pressure:
		return t.Pressure
	default:
		return 0
	}
}

// SetLevel stores v into hazard field f.
func (t *Tile) SetLevel(f Field, v int) {
	switch f {
	case Heat:
		t.Heat = v
	case Smoke:
		t.Smoke = v
	case Pressure:
		t.Pressure = v
	}
}

// Opaque reports whether the tile blocks line of sight. Walls and
// locked doors always do; plain doors only while shut.
func (t Tile) Opaque() bool {
	switch t.Kind {
	case Wall, LockedDoor:
		return true
	case Door:
		return !t.Walkable
	default:
		return false
	}
}

// IsDoorKind reports whether the tile is a doorway of either kind.
func (t Tile) IsDoorKind() bool {
	return t.Kind == Door || t.Kind == LockedDoor
}
