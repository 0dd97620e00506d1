package generator

import (
	"fmt"

	"derelict/pkg/engine/grid"
	"derelict/pkg/engine/rng"
	"derelict/pkg/game/config"
	"derelict/pkg/game/state"
)

// bspNode represents a node in the partition tree. Leaves carry a room.
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom is a leaf's room before it becomes a state.Room.
type bspRoom struct {
	x, y, width, height int
}

// Partition limits. A node stops splitting only when neither axis can
// host two children, so leaves never exceed 2*minNodeW-1 by
// 2*minNodeH-1 tiles and the standard hull always partitions into well
// over ten rooms.
const (
	minNodeW   = 8
	minNodeH   = 6
	minRoomW   = 4
	minRoomH   = 3
	roomMargin = 1 // wall ring kept between a room and its node edge
)

// layout is the carved floor plan handed to the populate stage.
type layout struct {
	grid  *grid.Grid
	rooms []state.Room
}

// buildLayout partitions the hull, carves rooms and corridors, and
// converts corridor tiles into doors where a corridor enters a room.
func buildLayout(r *rng.Stream, rules config.Rules) (*layout, error) {
	g := grid.New(rules.MapWidth, rules.MapHeight)

	// Leave a one-tile hull wall on every side.
	root := &bspNode{
		x:      1,
		y:      1,
		width:  rules.MapWidth - 2,
		height: rules.MapHeight - 2,
	}

	splitBSP(root, r)
	createRooms(root, r)

	bspRooms := collectRooms(root)
	if len(bspRooms) < 2 {
		return nil, fmt.Errorf("layout: partition produced %d rooms", len(bspRooms))
	}

	rooms := make([]state.Room, len(bspRooms))
	for i, br := range bspRooms {
		rooms[i] = state.Room{
			ID:     i,
			Bounds: grid.NewRect(br.x, br.y, br.width, br.height),
		}
	}
	nameRooms(rooms, r)

	carveRooms(g, rooms)
	connectRooms(g, root, r)
	placeDoorTiles(g)

	return &layout{grid: g, rooms: rooms}, nil
}

// splitBSP recursively splits a node. Minimum sizes are per axis since
// the hull is wider than it is tall.
func splitBSP(node *bspNode, r *rng.Stream) {
	canVertical := node.width >= minNodeW*2
	canHorizontal := node.height >= minNodeH*2
	if !canVertical && !canHorizontal {
		return // Too small to split
	}

	// Decide split direction, preferring to cut the longer axis.
	var horizontal bool
	switch {
	case canHorizontal && !canVertical:
		horizontal = true
	case canVertical && !canHorizontal:
		horizontal = false
	case node.height > node.width:
		horizontal = true
	case node.width > node.height:
		horizontal = false
	default:
		horizontal = r.Chance(50)
	}

	if horizontal {
		// Split into top and bottom
		splitPoint := r.Between(minNodeH, node.height-minNodeH)
		node.left = &bspNode{
			x:      node.x,
			y:      node.y,
			width:  node.width,
			height: splitPoint,
		}
		node.right = &bspNode{
			x:      node.x,
			y:      node.y + splitPoint,
			width:  node.width,
			height: node.height - splitPoint,
		}
	} else {
		// Split into left and right
		splitPoint := r.Between(minNodeW, node.width-minNodeW)
		node.left = &bspNode{
			x:      node.x,
			y:      node.y,
			width:  splitPoint,
			height: node.height,
		}
		node.right = &bspNode{
			x:      node.x + splitPoint,
			y:      node.y,
			width:  node.width - splitPoint,
			height: node.height,
		}
	}

	splitBSP(node.left, r)
	splitBSP(node.right, r)
}

// createRooms places one room inside every leaf, keeping the margin so
// rooms never touch a neighboring leaf's carving.
func createRooms(node *bspNode, r *rng.Stream) {
	if node.left != nil || node.right != nil {
		// Not a leaf node, recurse
		if node.left != nil {
			createRooms(node.left, r)
		}
		if node.right != nil {
			createRooms(node.right, r)
		}
		return
	}

	maxW := node.width - roomMargin*2
	maxH := node.height - roomMargin*2
	roomWidth := r.Between(minRoomW, maxW)
	roomHeight := r.Between(minRoomH, maxH)
	roomX := node.x + roomMargin + r.IntN(maxW-roomWidth+1)
	roomY := node.y + roomMargin + r.IntN(maxH-roomHeight+1)

	node.room = &bspRoom{
		x:      roomX,
		y:      roomY,
		width:  roomWidth,
		height: roomHeight,
	}
}

// carveRooms floors every room interior.
func carveRooms(g *grid.Grid, rooms []state.Room) {
	for _, room := range rooms {
		room.Bounds.Each(func(p grid.Point) {
			g.Set(p, grid.NewTile(grid.Floor))
		})
	}
}

// connectRooms bridges the two halves of every split with an L-shaped
// corridor between a room from each side. Every split is bridged, so
// the finished floor plan is connected.
func connectRooms(g *grid.Grid, node *bspNode, r *rng.Stream) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(node.left, r)
	rightRoom := getRoom(node.right, r)

	if leftRoom != nil && rightRoom != nil {
		leftCenterX := leftRoom.x + leftRoom.width/2
		leftCenterY := leftRoom.y + leftRoom.height/2
		rightCenterX := rightRoom.x + rightRoom.width/2
		rightCenterY := rightRoom.y + rightRoom.height/2

		if r.Chance(50) {
			// Horizontal first, then vertical
			carveCorridorHorizontal(g, leftCenterY, leftCenterX, rightCenterX)
			carveCorridorVertical(g, rightCenterX, leftCenterY, rightCenterY)
		} else {
			// Vertical first, then horizontal
			carveCorridorVertical(g, leftCenterX, leftCenterY, rightCenterY)
			carveCorridorHorizontal(g, rightCenterY, leftCenterX, rightCenterX)
		}
	}

	connectRooms(g, node.left, r)
	connectRooms(g, node.right, r)
}

// carveCorridorHorizontal carves a west-east corridor along row y,
// leaving room floor untouched where the line crosses a room.
func carveCorridorHorizontal(g *grid.Grid, y, startX, endX int) {
	if startX > endX {
		startX, endX = endX, startX
	}

	for x := startX; x <= endX; x++ {
		p := grid.Point{X: x, Y: y}
		if g.At(p).Kind == grid.Wall {
			g.Set(p, grid.NewTile(grid.Corridor))
		}
	}
}

// carveCorridorVertical carves a north-south corridor along column x.
func carveCorridorVertical(g *grid.Grid, x, startY, endY int) {
	if startY > endY {
		startY, endY = endY, startY
	}

	for y := startY; y <= endY; y++ {
		p := grid.Point{X: x, Y: y}
		if g.At(p).Kind == grid.Wall {
			g.Set(p, grid.NewTile(grid.Corridor))
		}
	}
}

// getRoom returns a room from a subtree, picking randomly at forks.
func getRoom(node *bspNode, r *rng.Stream) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = getRoom(node.left, r)
	}
	if node.right != nil {
		rightRoom = getRoom(node.right, r)
	}

	if leftRoom != nil && rightRoom != nil {
		if r.Chance(50) {
			return leftRoom
		}
		return rightRoom
	}

	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms flattens the tree's rooms in a stable depth-first order.
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom

	if node.room != nil {
		rooms = append(rooms, node.room)
	}

	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}

// placeDoorTiles converts a corridor tile into a closed door where a
// room floor sits on one side and the passage continues on the other.
// Corridors merely brushing along a room's outer wall stay open.
func placeDoorTiles(g *grid.Grid) {
	var thresholds []grid.Point
	g.ForEach(func(p grid.Point, t grid.Tile) {
		if t.Kind != grid.Corridor {
			return
		}
		for _, d := range grid.CardinalDirections() {
			inward := p.Add(d.Delta())
			outward := p.Add(d.Opposite().Delta())
			if !g.InBounds(inward) || !g.InBounds(outward) {
				continue
			}
			if g.At(inward).Kind == grid.Floor && g.At(outward).Kind != grid.Wall {
				thresholds = append(thresholds, p)
				return
			}
		}
	})

	for _, p := range thresholds {
		g.Set(p, grid.NewTile(grid.Door))
	}
}
