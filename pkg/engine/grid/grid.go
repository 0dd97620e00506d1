// Package grid holds the tile plane every subsystem reads and writes:
// tile kinds and glyphs, hazard fields, visibility flags, and the
// snapshot-sharing machinery that keeps older turns stable.
package grid

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Grid is the tile plane. Rows share backing storage between snapshots:
// Clone marks every row shared on both sides, and the first write to a
// row under either snapshot copies it first, so a caller holding an
// older snapshot never sees later turns.
type Grid struct {
	Width  int
	Height int
	rows   [][]Tile
	shared []bool
}

// New builds a grid of the given size filled with wall tiles.
func New(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		rows:   make([][]Tile, height),
		shared: make([]bool, height),
	}
	for y := range g.rows {
		row := make([]Tile, width)
		for x := range row {
			row[x] = NewTile(Wall)
		}
		g.rows[y] = row
	}
	return g
}

// Clone returns a snapshot copy sharing row storage with g. Either side
// copies a row before its first write to it.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Width:  g.Width,
		Height: g.Height,
		rows:   make([][]Tile, g.Height),
		shared: make([]bool, g.Height),
	}
	copy(c.rows, g.rows)
	for y := range g.shared {
		g.shared[y] = true
		c.shared[y] = true
	}
	return c
}

// ownRow copies row y if its storage is shared with another snapshot.
func (g *Grid) ownRow(y int) {
	if !g.shared[y] {
		return
	}
	row := make([]Tile, g.Width)
	copy(row, g.rows[y])
	g.rows[y] = row
	g.shared[y] = false
}

// InBounds reports whether p is on the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns a copy of the tile at p. The caller must check InBounds
// first; reading off-grid is a programming error.
func (g *Grid) At(p Point) Tile {
	return g.rows[p.Y][p.X]
}

// Set replaces the tile at p.
func (g *Grid) Set(p Point, t Tile) {
	g.ownRow(p.Y)
	g.rows[p.Y][p.X] = t
}

// Update applies fn to the tile at p in place, copying the row first if
// it is shared with another snapshot.
func (g *Grid) Update(p Point, fn func(*Tile)) {
	g.ownRow(p.Y)
	fn(&g.rows[p.Y][p.X])
}

// Walkable reports whether p is on the grid and can be stood on.
func (g *Grid) Walkable(p Point) bool {
	return g.InBounds(p) && g.rows[p.Y][p.X].Walkable
}

// ForEach visits every tile in row-major order.
func (g *Grid) ForEach(fn func(Point, Tile)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			fn(Point{x, y}, g.rows[y][x])
		}
	}
}

// UpdateAll applies fn to every tile in row-major order.
func (g *Grid) UpdateAll(fn func(Point, *Tile)) {
	for y := 0; y < g.Height; y++ {
		g.ownRow(y)
		for x := 0; x < g.Width; x++ {
			fn(Point{x, y}, &g.rows[y][x])
		}
	}
}

// CanTraverse reports whether a single step from p toward d is allowed
// under passable. Diagonal steps additionally need both orthogonal
// corner tiles passable, so nothing slips between two wall corners.
func (g *Grid) CanTraverse(p Point, d Direction, passable func(Point) bool) bool {
	dest := p.Add(d.Delta())
	if !g.InBounds(dest) || !passable(dest) {
		return false
	}
	if d.IsDiagonal() {
		delta := d.Delta()
		sideA := Point{p.X + delta.X, p.Y}
		sideB := Point{p.X, p.Y + delta.Y}
		if !g.InBounds(sideA) || !passable(sideA) {
			return false
		}
		if !g.InBounds(sideB) || !passable(sideB) {
			return false
		}
	}
	return true
}

// Reachable flood-fills from start over passable tiles using
// corner-safe 8-way movement and returns every point reached.
func (g *Grid) Reachable(start Point, passable func(Point) bool) *mapset.Set[Point] {
	reached := mapset.New[Point]()
	if !g.InBounds(start) || !passable(start) {
		return &reached
	}

	queue := []Point{start}
	reached.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range AllDirections() {
			next := current.Add(d.Delta())
			if reached.Has(next) {
				continue
			}
			if !g.CanTraverse(current, d, passable) {
				continue
			}
			reached.Put(next)
			queue = append(queue, next)
		}
	}

	return &reached
}

// Validate checks structural invariants: sane dimensions, rectangular
// rows, hazard fields within range, and the visible-implies-explored
// pairing.
func (g *Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("grid has invalid dimensions %dx%d", g.Width, g.Height)
	}
	if len(g.rows) != g.Height {
		return fmt.Errorf("grid has %d rows, want %d", len(g.rows), g.Height)
	}
	for y, row := range g.rows {
		if len(row) != g.Width {
			return fmt.Errorf("row %d has %d tiles, want %d", y, len(row), g.Width)
		}
		for x, t := range row {
			for _, f := range AllFields() {
				if v := t.Level(f); v < 0 || v > MaxLevel {
					return fmt.Errorf("tile %d,%d %s is %d, outside [0,%d]", x, y, f, v, MaxLevel)
				}
			}
			if t.Dirt < 0 || t.Dirt > MaxLevel {
				return fmt.Errorf("tile %d,%d dirt is %d, outside [0,%d]", x, y, t.Dirt, MaxLevel)
			}
			if t.Visible && !t.Explored {
				return fmt.Errorf("tile %d,%d is visible but not explored", x, y)
			}
		}
	}
	return nil
}
