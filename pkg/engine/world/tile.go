// Package world provides the tiles a labyrinth is made of and the grid that holds them.
package world

import (
	"labyrinth/pkg/engine/items"
)

// Tile is a position in the labyrinth.
// Variants are Room, Door, Wall and the Outside sentinel.
type Tile interface {
	// IsTraversable reports whether a crawler may step onto the tile
	IsTraversable() bool

	// Pass returns the inventory of the tile, or nil if the tile holds none.
	// Its contents can be moved out but not enumerated.
	Pass() *items.Inventory
}

// tileBase owns the internal inventory shared by rooms and doors
type tileBase struct {
	inventory items.MyInventory
}

func newTileBase(item items.Collectable) tileBase {
	return tileBase{inventory: *items.NewMyInventory(item)}
}

// Pass returns the inventory of the tile
func (t *tileBase) Pass() *items.Inventory {
	return &t.inventory.Inventory
}

// Wall blocks movement and holds nothing
type Wall struct{}

// NewWall creates a new wall
func NewWall() *Wall {
	return &Wall{}
}

// IsTraversable always returns false
func (w *Wall) IsTraversable() bool { return false }

// Pass returns nil, walls have no inventory
func (w *Wall) Pass() *items.Inventory { return nil }

// OutsideTile marks the boundary of the labyrinth: reaching it means getting out
type OutsideTile struct{}

// IsTraversable always returns false
func (o *OutsideTile) IsTraversable() bool { return false }

// Pass returns nil, the outside has no inventory
func (o *OutsideTile) Pass() *items.Inventory { return nil }

// Outside is the single boundary sentinel returned for every position beyond the grid
var Outside = &OutsideTile{}

// IsOutside returns true if the tile is the boundary sentinel
func IsOutside(t Tile) bool {
	_, ok := t.(*OutsideTile)
	return ok
}
