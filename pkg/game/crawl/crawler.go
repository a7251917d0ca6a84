// Package crawl moves an agent through a labyrinth grid.
package crawl

//go:generate mockgen -destination=mock/mock_crawler.go -package=mockcrawl -source=crawler.go

import (
	"errors"
	"fmt"

	"labyrinth/pkg/engine/items"
	"labyrinth/pkg/engine/world"
)

// ErrNotTraversable is returned when walking into a tile that blocks the way
var ErrNotTraversable = errors.New("facing tile is not traversable")

// Crawler is an agent standing on a tile and facing one of its neighbours
type Crawler interface {
	// Row returns the row of the tile the crawler stands on
	Row() int

	// Col returns the column of the tile the crawler stands on
	Col() int

	// Direction returns the direction the crawler faces; turning it turns the crawler
	Direction() *world.Direction

	// FacingTile returns the tile in front of the crawler
	FacingTile() world.Tile

	// Walk steps onto the facing tile and returns its inventory so it can be emptied
	Walk() (*items.Inventory, error)
}

// GridCrawler is a Crawler moving on a world.Grid
type GridCrawler struct {
	grid      *world.Grid
	row       int
	col       int
	direction world.Direction
}

// New creates a crawler on the grid at the given position, facing dir
func New(grid *world.Grid, row, col int, dir world.Direction) *GridCrawler {
	return &GridCrawler{
		grid:      grid,
		row:       row,
		col:       col,
		direction: dir,
	}
}

// Row returns the current row
func (c *GridCrawler) Row() int {
	return c.row
}

// Col returns the current column
func (c *GridCrawler) Col() int {
	return c.col
}

// Direction returns the facing direction
func (c *GridCrawler) Direction() *world.Direction {
	return &c.direction
}

// FacingTile returns the tile in front of the crawler, Outside past the grid edge
func (c *GridCrawler) FacingTile() world.Tile {
	return c.grid.TileRelative(c.row, c.col, c.direction)
}

// Walk moves one tile forward
func (c *GridCrawler) Walk() (*items.Inventory, error) {
	facing := c.FacingTile()
	if !facing.IsTraversable() {
		rowRel, colRel := c.direction.Delta()
		return nil, fmt.Errorf("%w: (%d,%d) %T", ErrNotTraversable, c.row+rowRel, c.col+colRel, facing)
	}

	rowRel, colRel := c.direction.Delta()
	c.row += rowRel
	c.col += colRel

	return facing.Pass(), nil
}
