package world

import (
	"labyrinth/pkg/engine/items"
)

// Room is an always traversable tile that may hold collectables
type Room struct {
	tileBase
}

// NewRoom creates a room, optionally holding one item
func NewRoom(item items.Collectable) *Room {
	return &Room{tileBase: newTileBase(item)}
}

// IsTraversable always returns true
func (r *Room) IsTraversable() bool {
	return true
}

// HasKey returns true if the room holds at least one key
func (r *Room) HasKey() bool {
	return r.inventory.HasKey()
}

// Contents returns what lies in the room, in the order it was dropped there
func (r *Room) Contents() []items.Collectable {
	return r.inventory.Items()
}
