// Package items provides the collectables found in the labyrinth and the
// inventories that hold them.
package items

import (
	"github.com/google/uuid"
)

// Kind is the discriminant of a collectable
type Kind int

// Collectable kinds
const (
	KindItem Kind = iota
	KindKey
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case KindItem:
		return "Item"
	case KindKey:
		return "Key"
	default:
		return "Unknown"
	}
}

// Collectable is anything that can be stored in an inventory.
// The set of variants is closed: only *Item and *Key implement it.
type Collectable interface {
	Kind() Kind
	collectable()
}

// Item represents a generic collectable with no behaviour of its own
type Item struct {
	Name string
}

// NewItem creates a new item with the given name
func NewItem(name string) *Item {
	return &Item{Name: name}
}

// Kind returns KindItem
func (i *Item) Kind() Kind {
	return KindItem
}

func (i *Item) collectable() {}

// KeyID identifies the single door a key was minted for
type KeyID uuid.UUID

// String returns the canonical textual form of the identity
func (id KeyID) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first eight characters of the identity, for display
func (id KeyID) Short() string {
	return id.String()[:8]
}

// Key is a collectable bound to exactly one door.
// Two keys are interchangeable only if they share the same ID.
type Key struct {
	id KeyID
}

// NewKey mints a key with a fresh, globally unique identity
func NewKey() *Key {
	return &Key{id: KeyID(uuid.New())}
}

// ID returns the identity of the key
func (k *Key) ID() KeyID {
	return k.id
}

// Kind returns KindKey
func (k *Key) Kind() Kind {
	return KindKey
}

func (k *Key) collectable() {}
