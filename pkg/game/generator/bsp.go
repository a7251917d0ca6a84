package generator

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"labyrinth/pkg/game/build"
	"labyrinth/pkg/game/setup"
)

// BSPGenerator generates maps using Binary Space Partitioning
type BSPGenerator struct {
	rng *rand.Rand
}

// NewBSP creates a BSP generator. Generators with the same seed draw the same maps.
func NewBSP(seed uint64) *BSPGenerator {
	return &BSPGenerator{rng: rand.New(rand.NewPCG(seed, seed^0x6c61627972696e74))}
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a room within a BSP leaf node
type bspRoom struct {
	x, y, width, height int
}

type position struct {
	row, col int
}

// canvas is the map being drawn, one rune per tile
type canvas struct {
	rows, cols int
	cells      [][]rune
	corridors  mapset.Set[position]
}

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minRoomSize = 4 // Minimum size of a room
	roomPadding = 2 // Padding between room and node edge

	// Door and key placements tried before giving up on doors
	maxPlacementAttempts = 20
)

// MinSize is the smallest number of rows or columns Generate accepts
const MinSize = minNodeSize + 2

// Generate creates a new map using BSP algorithm
func (g *BSPGenerator) Generate(rows, cols, doors int) (string, error) {
	if rows < MinSize || cols < MinSize {
		return "", fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTooSmall, rows, cols, MinSize, MinSize)
	}

	c := newCanvas(rows, cols)

	// Create BSP tree (leaving 1 cell border for perimeter walls)
	root := &bspNode{
		x:      1,
		y:      1,
		width:  cols - 2,
		height: rows - 2,
	}

	g.splitBSP(root, minNodeSize)
	g.createRooms(root)
	c.carveRooms(root)
	g.connectRooms(c, root)

	// Start in a random room, leave through the border next to the furthest tile
	rooms := collectRooms(root)
	startRoom := rooms[g.rng.IntN(len(rooms))]
	start := position{startRoom.y + startRoom.height/2, startRoom.x + startRoom.width/2}
	c.carveExit(c.furthestFrom(start))
	c.set(start, build.CharStart)

	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		text := g.placeDoorsAndKeys(c, start, doors).String()
		if lab, err := build.FromASCII(text); err == nil && setup.IsSolvable(lab) {
			return text, nil
		}
	}

	// Without doors every tile is reachable, the exit included
	return c.String(), nil
}

func newCanvas(rows, cols int) *canvas {
	c := &canvas{rows: rows, cols: cols, corridors: mapset.New[position]()}
	c.cells = make([][]rune, rows)
	for row := range c.cells {
		c.cells[row] = []rune(strings.Repeat(string(build.CharCorner), cols))
	}
	return c
}

func (c *canvas) at(p position) rune {
	return c.cells[p.row][p.col]
}

func (c *canvas) set(p position, ch rune) {
	c.cells[p.row][p.col] = ch
}

func (c *canvas) isWall(p position) bool {
	return c.at(p) == build.CharCorner
}

// String returns the map in the ASCII format, one line per row
func (c *canvas) String() string {
	var sb strings.Builder
	for _, row := range c.cells {
		sb.WriteString(string(row))
		sb.WriteString("\n")
	}
	return sb.String()
}

// splitBSP recursively splits a BSP node
func (g *BSPGenerator) splitBSP(node *bspNode, minSize int) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	// Decide split direction
	var splitHorizontal bool
	if node.width > node.height && node.width >= minSize*2 {
		splitHorizontal = false // Split vertically
	} else if node.height > node.width && node.height >= minSize*2 {
		splitHorizontal = true // Split horizontally
	} else if node.width >= minSize*2 && node.height >= minSize*2 {
		splitHorizontal = g.rng.IntN(2) == 0
	} else if node.width >= minSize*2 {
		splitHorizontal = false
	} else {
		splitHorizontal = true
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + g.rng.IntN(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + g.rng.IntN(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	// Recursively split children
	g.splitBSP(node.left, minSize)
	g.splitBSP(node.right, minSize)
}

// createRooms creates rooms in leaf nodes
func (g *BSPGenerator) createRooms(node *bspNode) {
	if node.left != nil || node.right != nil {
		// Not a leaf node, recurse
		if node.left != nil {
			g.createRooms(node.left)
		}
		if node.right != nil {
			g.createRooms(node.right)
		}
		return
	}

	// Leaf node - create a room
	roomWidth := minRoomSize + g.rng.IntN(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + g.rng.IntN(node.height-minRoomSize-roomPadding+1)

	node.room = &bspRoom{
		x:      node.x + g.rng.IntN(node.width-roomWidth),
		y:      node.y + g.rng.IntN(node.height-roomHeight),
		width:  roomWidth,
		height: roomHeight,
	}
}

// carveRooms marks room tiles as walkable
func (c *canvas) carveRooms(node *bspNode) {
	if node.room != nil {
		for row := node.room.y; row < node.room.y+node.room.height; row++ {
			for col := node.room.x; col < node.room.x+node.room.width; col++ {
				c.set(position{row, col}, build.CharRoom)
			}
		}
	}

	if node.left != nil {
		c.carveRooms(node.left)
	}
	if node.right != nil {
		c.carveRooms(node.right)
	}
}

// connectRooms connects rooms with corridors
func (g *BSPGenerator) connectRooms(c *canvas, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	// Get a room from each subtree
	leftRoom := g.getRoom(node.left)
	rightRoom := g.getRoom(node.right)

	// Center points of each room
	leftX := leftRoom.x + leftRoom.width/2
	leftY := leftRoom.y + leftRoom.height/2
	rightX := rightRoom.x + rightRoom.width/2
	rightY := rightRoom.y + rightRoom.height/2

	// L-shaped corridor
	if g.rng.IntN(2) == 0 {
		// Horizontal first, then vertical
		c.carveCorridorHorizontal(leftY, leftX, rightX)
		c.carveCorridorVertical(rightX, leftY, rightY)
	} else {
		// Vertical first, then horizontal
		c.carveCorridorVertical(leftX, leftY, rightY)
		c.carveCorridorHorizontal(rightY, leftX, rightX)
	}

	// Recursively connect subtrees
	g.connectRooms(c, node.left)
	g.connectRooms(c, node.right)
}

// carveCorridorHorizontal carves a horizontal corridor
func (c *canvas) carveCorridorHorizontal(row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		c.carveCorridor(position{row, col})
	}
}

// carveCorridorVertical carves a vertical corridor
func (c *canvas) carveCorridorVertical(col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		c.carveCorridor(position{row, col})
	}
}

// carveCorridor marks a wall tile as corridor; rooms are left alone
func (c *canvas) carveCorridor(p position) {
	if c.isWall(p) {
		c.set(p, build.CharRoom)
		c.corridors.Put(p)
	}
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func (g *BSPGenerator) getRoom(node *bspNode) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = g.getRoom(node.left)
	}
	if node.right != nil {
		rightRoom = g.getRoom(node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if g.rng.IntN(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}

	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree
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

// neighbours returns the positions next to p that lie on the canvas
func (c *canvas) neighbours(p position) []position {
	var ret []position
	for _, d := range []position{{-1, 0}, {0, 1}, {1, 0}, {0, -1}} {
		n := position{p.row + d.row, p.col + d.col}
		if n.row >= 0 && n.row < c.rows && n.col >= 0 && n.col < c.cols {
			ret = append(ret, n)
		}
	}
	return ret
}

// furthestFrom uses BFS to find the walkable tile with the longest path from start.
// Prefers room tiles over corridors.
func (c *canvas) furthestFrom(start position) position {
	type tileDist struct {
		pos  position
		dist int
	}

	visited := mapset.New[position]()
	visited.Put(start)
	q := queue.New[tileDist]()
	q.Enqueue(tileDist{start, 0})

	furthest, maxDist := start, -1
	for !q.Empty() {
		current := q.Dequeue()

		if current.dist > maxDist ||
			(current.dist == maxDist && !c.corridors.Has(current.pos) && c.corridors.Has(furthest)) {
			maxDist = current.dist
			furthest = current.pos
		}

		for _, n := range c.neighbours(current.pos) {
			if !c.isWall(n) && !visited.Has(n) {
				visited.Put(n)
				q.Enqueue(tileDist{n, current.dist + 1})
			}
		}
	}

	return furthest
}

// carveExit digs a straight corridor from p to the nearest edge of the map.
// The edge tile becomes a room: the outside lies right beyond it.
func (c *canvas) carveExit(p position) {
	step := position{-1, 0}
	best := p.row
	if d := c.rows - 1 - p.row; d < best {
		best, step = d, position{1, 0}
	}
	if d := p.col; d < best {
		best, step = d, position{0, -1}
	}
	if d := c.cols - 1 - p.col; d < best {
		step = position{0, 1}
	}

	for ; p.row >= 0 && p.row < c.rows && p.col >= 0 && p.col < c.cols; p = (position{p.row + step.row, p.col + step.col}) {
		c.carveCorridor(p)
	}
}

// placeDoorsAndKeys returns a copy of the canvas where up to n corridor tiles
// became doors and as many room tiles key rooms
func (g *BSPGenerator) placeDoorsAndKeys(c *canvas, start position, n int) *canvas {
	var corridors, rooms []position
	for row := range c.cells {
		for col := range c.cells[row] {
			p := position{row, col}
			switch {
			case p == start || c.at(p) != build.CharRoom:
			case c.corridors.Has(p):
				corridors = append(corridors, p)
			default:
				rooms = append(rooms, p)
			}
		}
	}

	n = min(n, len(corridors), len(rooms))
	g.rng.Shuffle(len(corridors), func(i, j int) { corridors[i], corridors[j] = corridors[j], corridors[i] })
	g.rng.Shuffle(len(rooms), func(i, j int) { rooms[i], rooms[j] = rooms[j], rooms[i] })

	out := &canvas{rows: c.rows, cols: c.cols, corridors: c.corridors, cells: make([][]rune, c.rows)}
	for row := range c.cells {
		out.cells[row] = slices.Clone(c.cells[row])
	}
	for i := 0; i < n; i++ {
		out.set(corridors[i], build.CharDoor)
		out.set(rooms[i], build.CharKeyRoom)
	}
	return out
}
