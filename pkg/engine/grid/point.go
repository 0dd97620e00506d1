package grid

// Point addresses a tile by column (X) and row (Y). Y grows downward.
type Point struct {
	X int
	Y int
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Chebyshev returns the chessboard distance between p and q: the number
// of 8-way steps separating them on an open plane.
func (p Point) Chebyshev(q Point) int {
	dx := abs(p.X - q.X)
	dy := abs(p.Y - q.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// DistSq returns the squared straight-line distance between p and q.
func (p Point) DistSq(q Point) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
