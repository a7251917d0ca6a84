// Package explorer drives an agent through a labyrinth at random, picking up
// everything it finds and trying its keys on every locked door it faces.
package explorer

import (
	"errors"
	"fmt"
	"log/slog"

	"labyrinth/pkg/engine/items"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/crawl"
)

// ErrNonPositiveSteps is returned when GetOut is given no step to spend
var ErrNonPositiveSteps = errors.New("n must be strictly positive")

// Explorer walks a crawler at random until it gets out of the labyrinth
type Explorer struct {
	crawler crawl.Crawler
	rnd     Randomizer
	bag     *items.MyInventory
	logger  *slog.Logger

	steps          int
	listeners      map[EventKind][]subscription
	nextListenerID ListenerID
}

// Option configures an Explorer
type Option func(*Explorer)

// WithLogger sets the logger unlock attempts are reported to
func WithLogger(logger *slog.Logger) Option {
	return func(e *Explorer) {
		e.logger = logger
	}
}

// WithBag starts the explorer with the given bag instead of an empty one
func WithBag(bag *items.MyInventory) Option {
	return func(e *Explorer) {
		e.bag = bag
	}
}

// New creates an explorer driving crawler with the actions picked by rnd
func New(crawler crawl.Crawler, rnd Randomizer, opts ...Option) *Explorer {
	e := &Explorer{
		crawler:   crawler,
		rnd:       rnd,
		bag:       items.NewMyInventory(),
		logger:    slog.Default(),
		listeners: make(map[EventKind][]subscription),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Bag returns what the explorer carries. It is kept between GetOut calls.
func (e *Explorer) Bag() *items.MyInventory {
	return e.bag
}

// Steps returns how many steps have been taken so far, over all GetOut calls
func (e *Explorer) Steps() int {
	return e.steps
}

// GetOut spends at most n steps trying to reach the outside and returns the
// steps left: 0 means the budget ran out first.
func (e *Explorer) GetOut(n int) (int, error) {
	if n <= 0 {
		return n, fmt.Errorf("%w: got %d", ErrNonPositiveSteps, n)
	}

	for ; n > 0 && !world.IsOutside(e.crawler.FacingTile()); n-- {
		if door, ok := e.crawler.FacingTile().(*world.Door); ok && door.IsLocked() && e.bag.HasKey() {
			if err := e.tryOpenDoorWithAllKeys(door); err != nil {
				return n, fmt.Errorf("step %d: %w", e.steps+1, err)
			}
		}

		e.steps++
		var kind EventKind
		if e.crawler.FacingTile().IsTraversable() && e.rnd.Next() == Walk {
			roomInventory, err := e.crawler.Walk()
			if err != nil {
				return n, fmt.Errorf("step %d: %w", e.steps, err)
			}
			for roomInventory.HasItems() {
				if err := e.bag.MoveFirstFrom(roomInventory); err != nil {
					return n, fmt.Errorf("step %d: %w", e.steps, err)
				}
			}
			kind = PositionChanged
		} else {
			e.crawler.Direction().TurnLeft()
			kind = DirectionChanged
		}
		e.emit(kind, e.steps)
	}

	if n > 0 {
		e.logger.Debug("explorer reached the outside", "steps", e.steps, "remaining", n)
	}
	return n, nil
}

// tryOpenDoorWithAllKeys offers the keys of the bag to the door one at a
// time. A key that does not fit goes back to the end of the bag, so each key
// held when the attempt starts is tried once.
func (e *Explorer) tryOpenDoorWithAllKeys(door *world.Door) error {
	keyCount := len(e.bag.KeyIndexes())

	for attempt := 0; attempt < keyCount && door.IsLocked(); attempt++ {
		keyIndex := e.bag.KeyIndexes()[0]

		scratch := items.NewInventory()
		if err := scratch.MoveItemFrom(&e.bag.Inventory, keyIndex); err != nil {
			return err
		}

		if door.Open(scratch) {
			e.logger.Debug("door opened", "attempt", attempt+1, "keys", keyCount,
				"row", e.crawler.Row(), "col", e.crawler.Col())
			continue
		}
		if err := e.bag.MoveFirstFrom(scratch); err != nil {
			return err
		}
	}

	if door.IsLocked() {
		e.logger.Debug("no key fits the door", "keys", keyCount,
			"row", e.crawler.Row(), "col", e.crawler.Col())
	}
	return nil
}
