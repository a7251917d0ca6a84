package world

import (
	"labyrinth/pkg/engine/items"
)

// Door is a tile that blocks the way until it is opened with the one key minted for it.
// Once opened it stays open.
type Door struct {
	tileBase
	keyID  items.KeyID
	opened bool
}

// NewDoor creates a new locked door that only the key with the given identity opens
func NewDoor(keyID items.KeyID) *Door {
	return &Door{
		tileBase: newTileBase(nil),
		keyID:    keyID,
	}
}

// KeyID returns the identity of the key that opens this door
func (d *Door) KeyID() items.KeyID {
	return d.keyID
}

// IsLocked returns true until the door has been opened
func (d *Door) IsLocked() bool {
	return !d.opened
}

// IsOpened returns true once the door has been opened
func (d *Door) IsOpened() bool {
	return d.opened
}

// IsTraversable returns true if the door is open
func (d *Door) IsTraversable() bool {
	return d.opened
}

// Open looks in keys for the key bound to this door. If it is there it is
// consumed and the door opens. Any other key, even another door's key, leaves
// both the door and the inventory untouched.
func (d *Door) Open(keys *items.Inventory) bool {
	if d.opened {
		return false
	}
	key := keys.TakeFirst(func(c items.Collectable) bool {
		k, ok := c.(*items.Key)
		return ok && k.ID() == d.keyID
	})
	if key == nil {
		return false
	}
	d.opened = true
	return true
}
