package explorer

import (
	"labyrinth/pkg/engine/world"
)

// EventKind identifies what changed on a step
type EventKind int

// Event kinds
const (
	PositionChanged EventKind = iota
	DirectionChanged
)

// String returns the string representation of an event kind
func (k EventKind) String() string {
	switch k {
	case PositionChanged:
		return "PositionChanged"
	case DirectionChanged:
		return "DirectionChanged"
	default:
		return "Unknown"
	}
}

// Event is a snapshot of the crawler taken right after a step
type Event struct {
	Kind      EventKind
	Step      int
	Row       int
	Col       int
	Direction world.Direction
	Facing    world.Tile
}

// Listener receives events synchronously, in step order
type Listener func(Event)

// ListenerID identifies a subscription so it can be removed
type ListenerID int

type subscription struct {
	id       ListenerID
	listener Listener
}

// Subscribe registers a listener for one kind of event
func (e *Explorer) Subscribe(kind EventKind, listener Listener) ListenerID {
	e.nextListenerID++
	id := e.nextListenerID
	e.listeners[kind] = append(e.listeners[kind], subscription{id: id, listener: listener})
	return id
}

// Unsubscribe removes a listener. Unknown ids are ignored.
func (e *Explorer) Unsubscribe(kind EventKind, id ListenerID) {
	subs := e.listeners[kind]
	for i, s := range subs {
		if s.id == id {
			e.listeners[kind] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

func (e *Explorer) emit(kind EventKind, step int) {
	subs := e.listeners[kind]
	if len(subs) == 0 {
		return
	}
	ev := Event{
		Kind:      kind,
		Step:      step,
		Row:       e.crawler.Row(),
		Col:       e.crawler.Col(),
		Direction: *e.crawler.Direction(),
		Facing:    e.crawler.FacingTile(),
	}
	// Listeners may unsubscribe while being called.
	for _, s := range append([]subscription(nil), subs...) {
		s.listener(ev)
	}
}
