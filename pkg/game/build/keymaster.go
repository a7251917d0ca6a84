// Package build assembles labyrinths: it pairs every door with the room that
// holds its key and lays tiles out on a grid.
package build

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/queue"

	"labyrinth/pkg/engine/items"
	"labyrinth/pkg/engine/world"
)

var (
	// ErrUnmatchedDoor is returned on Close when a door never got a key room
	ErrUnmatchedDoor = errors.New("unmatched door")

	// ErrUnmatchedKeyRoom is returned on Close when a key room never got a door
	ErrUnmatchedKeyRoom = errors.New("unmatched key room")
)

// pendingDoor is a door waiting for a room to hold its key
type pendingDoor struct {
	door *world.Door
	key  *items.Key
}

// Keymaster creates doors and key rooms and pairs them one to one, first come
// first served, whatever the order they are asked for. At most one of the two
// pending queues is non-empty at any time.
//
// A Keymaster is used for one group of creations and then closed; Close is
// where a group that left a door or a room unpaired is reported.
type Keymaster struct {
	pendingDoors    *queue.Queue[pendingDoor]
	pendingKeyRooms *queue.Queue[*world.Room]

	doors    int
	keyRooms int

	closed   bool
	closeErr error
}

// NewKeymaster creates a keymaster with nothing pending
func NewKeymaster() *Keymaster {
	return &Keymaster{
		pendingDoors:    queue.New[pendingDoor](),
		pendingKeyRooms: queue.New[*world.Room](),
	}
}

// WithKeymaster runs fn with a fresh keymaster and closes it on every exit
// path, including a panic in fn. Errors from fn and from Close are joined.
func WithKeymaster(fn func(km *Keymaster) error) (err error) {
	km := NewKeymaster()
	defer func() {
		err = errors.Join(err, km.Close())
	}()
	return fn(km)
}

// NewDoor creates a locked door with a freshly minted key. The key goes to the
// oldest room waiting for one, or waits with the door for the next key room.
func (km *Keymaster) NewDoor() *world.Door {
	km.mustBeOpen()

	key := items.NewKey()
	door := world.NewDoor(key.ID())

	if !km.pendingKeyRooms.Empty() {
		room := km.pendingKeyRooms.Dequeue()
		room.Pass().Put(key)
	} else {
		km.pendingDoors.Enqueue(pendingDoor{door: door, key: key})
	}

	km.doors++
	return door
}

// NewKeyRoom creates a room for a key. It receives the key of the oldest door
// waiting for one right away, otherwise it stays empty until the next door.
func (km *Keymaster) NewKeyRoom() *world.Room {
	km.mustBeOpen()

	room := world.NewRoom(nil)

	if !km.pendingDoors.Empty() {
		pending := km.pendingDoors.Dequeue()
		room.Pass().Put(pending.key)
	} else {
		km.pendingKeyRooms.Enqueue(room)
	}

	km.keyRooms++
	return room
}

// Doors returns how many doors have been created
func (km *Keymaster) Doors() int {
	return km.doors
}

// KeyRooms returns how many key rooms have been created
func (km *Keymaster) KeyRooms() int {
	return km.keyRooms
}

// Close checks that every door got a key room and every key room a door.
// Only the first call validates; later calls return the same result.
func (km *Keymaster) Close() error {
	if km.closed {
		return km.closeErr
	}
	km.closed = true

	switch {
	case !km.pendingDoors.Empty():
		km.closeErr = fmt.Errorf("%w: %d door(s) without a key room", ErrUnmatchedDoor, km.doors-km.keyRooms)
	case !km.pendingKeyRooms.Empty():
		km.closeErr = fmt.Errorf("%w: %d key room(s) without a door", ErrUnmatchedKeyRoom, km.keyRooms-km.doors)
	}
	return km.closeErr
}

func (km *Keymaster) mustBeOpen() {
	if km.closed {
		panic("build: keymaster used after Close")
	}
}
