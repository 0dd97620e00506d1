package vision

import "derelict/pkg/engine/grid"

// Octant transforms for recursive shadowcasting. Each column maps the
// scan's local (row, col) deltas into one of the eight wedges around
// the origin.
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// fieldOfView marks every tile with an unobstructed line to origin
// within radius, origin included. Opacity comes from the tile itself;
// off-grid counts as opaque.
func fieldOfView(g *grid.Grid, origin grid.Point, radius int, mark func(grid.Point)) {
	if radius <= 0 {
		return
	}
	mark(origin)
	for i := 0; i < 8; i++ {
		castOctant(g, origin, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], mark)
	}
}

// castOctant scans one octant row by row, narrowing the open slope
// window as walls interrupt it and recursing past each wall segment's
// far edge.
func castOctant(g *grid.Grid, origin grid.Point, row int, start, end float64, radius, xx, xy, yx, yy int, mark func(grid.Point)) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for dx <= 0 {
			dx++

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			p := grid.Point{
				X: origin.X + dx*xx + dy*xy,
				Y: origin.Y + dx*yx + dy*yy,
			}

			if g.InBounds(p) && float64(dx*dx+dy*dy) < radiusSq {
				mark(p)
			}

			if blocked {
				if opaqueAt(g, p) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if opaqueAt(g, p) && j < radius {
				blocked = true
				castOctant(g, origin, j+1, start, lSlope, radius, xx, xy, yx, yy, mark)
				newStart = rSlope
			}
		}

		if blocked {
			break
		}
	}
}

// opaqueAt reports whether p blocks sight. The hull beyond the grid
// always does.
func opaqueAt(g *grid.Grid, p grid.Point) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.At(p).Opaque()
}
