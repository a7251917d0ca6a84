package world

// Grid represents the labyrinth map with encapsulated tile storage
type Grid struct {
	tiles [][]Tile
	rows  int
	cols  int

	startRow int
	startCol int
	hasStart bool
}

// NewGrid creates a new grid with the given dimensions, filled with walls
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g := &Grid{rows: rows, cols: cols, tiles: make([][]Tile, rows)}
	for row := 0; row < rows; row++ {
		g.tiles[row] = make([]Tile, cols)
		for col := 0; col < cols; col++ {
			g.tiles[row][col] = NewWall()
		}
	}
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Tile returns the tile at the given position, or Outside if out of bounds
func (g *Grid) Tile(row, col int) Tile {
	if !g.IsValidPosition(row, col) {
		return Outside
	}
	return g.tiles[row][col]
}

// SetTile places a tile at the given position. Returns false if out of bounds or tile is nil.
func (g *Grid) SetTile(row, col int, t Tile) bool {
	if t == nil || !g.IsValidPosition(row, col) {
		return false
	}
	g.tiles[row][col] = t
	return true
}

// TileRelative returns the tile adjacent to the given position in the specified direction
func (g *Grid) TileRelative(row, col int, dir Direction) Tile {
	if !dir.IsValid() {
		return Outside
	}
	rowRel, colRel := dir.Delta()
	return g.Tile(row+rowRel, col+colRel)
}

// SetStart sets the starting position. Returns false if out of bounds or not traversable.
func (g *Grid) SetStart(row, col int) bool {
	if !g.IsValidPosition(row, col) || !g.tiles[row][col].IsTraversable() {
		return false
	}
	g.startRow, g.startCol, g.hasStart = row, col, true
	return true
}

// ForEachTile iterates over all tiles in the grid, calling the provided function for each
func (g *Grid) ForEachTile(fn func(row, col int, t Tile)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.tiles[row][col])
		}
	}
}

// Doors returns every door of the grid in row-major order
func (g *Grid) Doors() []*Door {
	var doors []*Door
	g.ForEachTile(func(row, col int, t Tile) {
		if d, ok := t.(*Door); ok {
			doors = append(doors, d)
		}
	})
	return doors
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.rows <= 0 || g.cols <= 0 {
		return "Grid has invalid dimensions"
	}

	if !g.hasStart {
		return "Grid has no start position"
	}

	if !g.tiles[g.startRow][g.startCol].IsTraversable() {
		return "Start position is not traversable"
	}

	return ""
}
