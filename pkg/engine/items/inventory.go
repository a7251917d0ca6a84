package items

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmptyInventory is returned when reading the kinds of an inventory without items
	ErrEmptyInventory = errors.New("empty inventory")

	// ErrNoItemAtIndex is returned when moving an item the source inventory does not hold
	ErrNoItemAtIndex = errors.New("no item at index")
)

// Inventory is an ordered collection of collectables owned by a tile or an explorer.
// The zero value is an empty inventory ready to use.
type Inventory struct {
	items []Collectable
}

// NewInventory creates an inventory holding the given items, in order
func NewInventory(initial ...Collectable) *Inventory {
	inv := &Inventory{}
	for _, item := range initial {
		if item != nil {
			inv.items = append(inv.items, item)
		}
	}
	return inv
}

// HasItems returns true if the inventory holds at least one collectable
func (inv *Inventory) HasItems() bool {
	return inv != nil && len(inv.items) > 0
}

// Len returns the number of collectables held
func (inv *Inventory) Len() int {
	if inv == nil {
		return 0
	}
	return len(inv.items)
}

// ItemKinds returns the kind of each held item in storage order.
// Returns ErrEmptyInventory if there are no items (check with HasItems).
func (inv *Inventory) ItemKinds() ([]Kind, error) {
	if !inv.HasItems() {
		return nil, ErrEmptyInventory
	}
	kinds := make([]Kind, len(inv.items))
	for i, item := range inv.items {
		kinds[i] = item.Kind()
	}
	return kinds, nil
}

// MoveItemFrom moves the nth item (zero-based) of from to the end of this inventory.
// The item leaves from; nothing is changed if from has no item at that index.
func (inv *Inventory) MoveItemFrom(from *Inventory, nth int) error {
	if nth < 0 || nth >= from.Len() {
		return fmt.Errorf("%w %d (source holds %d)", ErrNoItemAtIndex, nth, from.Len())
	}

	inv.items = append(inv.items, from.removeAt(nth))
	return nil
}

// MoveFirstFrom moves the first item of from to the end of this inventory
func (inv *Inventory) MoveFirstFrom(from *Inventory) error {
	return inv.MoveItemFrom(from, 0)
}

// removeAt drops the nth item and clears the vacated slot; callers have
// checked the bounds
func (inv *Inventory) removeAt(nth int) Collectable {
	item := inv.items[nth]
	inv.items = slices.Delete(inv.items, nth, nth+1)
	return item
}

// TakeFirst removes and returns the first item for which match returns true.
// Returns nil and leaves the inventory untouched when nothing matches.
func (inv *Inventory) TakeFirst(match func(Collectable) bool) Collectable {
	if inv == nil {
		return nil
	}
	for i, item := range inv.items {
		if match(item) {
			return inv.removeAt(i)
		}
	}
	return nil
}

// Put appends an item to the inventory
func (inv *Inventory) Put(item Collectable) {
	if item == nil {
		return
	}
	inv.items = append(inv.items, item)
}

// MyInventory is an inventory whose contents can be enumerated.
// Explorers carry one; tiles expose theirs only through Pass.
type MyInventory struct {
	Inventory
}

// NewMyInventory creates an enumerable inventory holding the given items
func NewMyInventory(initial ...Collectable) *MyInventory {
	return &MyInventory{Inventory: *NewInventory(initial...)}
}

// Items returns a copy of the held items, in storage order
func (inv *MyInventory) Items() []Collectable {
	if inv == nil {
		return nil
	}
	out := make([]Collectable, len(inv.items))
	copy(out, inv.items)
	return out
}

// HasKey returns true if at least one held item is a key, whatever door it opens
func (inv *MyInventory) HasKey() bool {
	return len(inv.KeyIndexes()) > 0
}

// KeyIndexes returns the positions of the held keys, in storage order
func (inv *MyInventory) KeyIndexes() []int {
	if inv == nil {
		return nil
	}
	var indexes []int
	for i, item := range inv.items {
		if item.Kind() == KindKey {
			indexes = append(indexes, i)
		}
	}
	return indexes
}
