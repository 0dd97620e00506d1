package grid

// Rect is an inclusive tile-aligned rectangle.
type Rect struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// NewRect builds a rect from an origin and a size. Width and height
// must be at least 1.
func NewRect(x, y, w, h int) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w - 1, MaxY: y + h - 1}
}

// W returns the rect's width in tiles.
func (r Rect) W() int {
	return r.MaxX - r.MinX + 1
}

// H returns the rect's height in tiles.
func (r Rect) H() int {
	return r.MaxY - r.MinY + 1
}

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Center returns the rect's middle tile, rounding toward the origin.
func (r Rect) Center() Point {
	return Point{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

// Grow expands the rect by n tiles on every side.
func (r Rect) Grow(n int) Rect {
	return Rect{MinX: r.MinX - n, MinY: r.MinY - n, MaxX: r.MaxX + n, MaxY: r.MaxY + n}
}

// Intersects reports whether r and o share any tile.
func (r Rect) Intersects(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX && r.MinY <= o.MaxY && o.MinY <= r.MaxY
}

// Each visits every point in the rect in row-major order.
func (r Rect) Each(fn func(Point)) {
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			fn(Point{x, y})
		}
	}
}
