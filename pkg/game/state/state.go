// Package state holds the state of one exploration run.
package state

import (
	"context"
	"time"

	"labyrinth/pkg/engine/items"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/build"
	"labyrinth/pkg/game/crawl"
	"labyrinth/pkg/game/explorer"
)

// maxMessages is how many messages the log keeps
const maxMessages = 5

// Run represents one explorer let loose in one labyrinth
type Run struct {
	Labyrinth *build.Labyrinth
	Crawler   *crawl.GridCrawler
	Explorer  *explorer.Explorer

	Messages []string

	StepsLeft int
	Done      bool
}

// NewRun puts a crawler on the start tile of lab and an explorer in charge of it
func NewRun(lab *build.Labyrinth, rnd explorer.Randomizer, opts ...explorer.Option) *Run {
	c := crawl.New(lab.Grid, lab.StartRow, lab.StartCol, lab.Direction)
	return &Run{
		Labyrinth: lab,
		Crawler:   c,
		Explorer:  explorer.New(c, rnd, opts...),
		Messages:  make([]string, 0),
	}
}

// AddMessage adds a message to the run's message log
func (r *Run) AddMessage(msg string) {
	r.Messages = append(r.Messages, msg)

	// Keep only the last maxMessages
	if len(r.Messages) > maxMessages {
		r.Messages = r.Messages[len(r.Messages)-maxMessages:]
	}
}

// IsOut returns true if the crawler faces the outside
func (r *Run) IsOut() bool {
	return world.IsOutside(r.Crawler.FacingTile())
}

// OpenedDoors returns how many doors of the labyrinth are open
func (r *Run) OpenedDoors() int {
	opened := 0
	for _, d := range r.Labyrinth.Grid.Doors() {
		if d.IsOpened() {
			opened++
		}
	}
	return opened
}

// Advance lets the explorer take up to n steps and records what is left
func (r *Run) Advance(n int) error {
	left, err := r.Explorer.GetOut(n)
	if err != nil {
		return err
	}
	r.StepsLeft = left
	r.Done = r.IsOut()
	return nil
}

// Animate spends up to n steps one at a time, calling frame before each one
// and after the last, and waiting delay between two. It returns ctx's error if
// ctx is done first.
func (r *Run) Animate(ctx context.Context, n int, delay time.Duration, frame func()) error {
	if n <= 0 {
		return r.Advance(n)
	}

	ticker := time.NewTicker(max(delay, time.Nanosecond))
	defer ticker.Stop()

	r.StepsLeft = n
	for r.StepsLeft > 0 && !r.IsOut() {
		frame()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if _, err := r.Explorer.GetOut(1); err != nil {
			return err
		}
		r.StepsLeft--
	}

	r.Done = r.IsOut()
	frame()
	return nil
}

// Translator turns a message key and its arguments into text
type Translator func(key string, args ...any) string

// Narrate logs a message for every door the explorer opens and every item it
// picks up, as they happen
func (r *Run) Narrate(tr Translator) {
	carried := r.Explorer.Bag().Len()
	opened := r.OpenedDoors()

	narrate := func(explorer.Event) {
		// Each opened door took one key out of the bag.
		for now := r.OpenedDoors(); opened < now; opened++ {
			r.AddMessage(tr("DOOR_OPENED"))
			carried--
		}

		// Whatever was picked up sits at the end of the bag.
		bag := r.Explorer.Bag().Items()
		for _, c := range bag[carried:] {
			r.AddMessage(tr("PICKED_UP", ItemName(c, tr)))
		}
		carried = len(bag)
	}

	r.Explorer.Subscribe(explorer.PositionChanged, narrate)
	r.Explorer.Subscribe(explorer.DirectionChanged, narrate)
}

// ItemName returns the display name of a collectable
func ItemName(c items.Collectable, tr Translator) string {
	switch it := c.(type) {
	case *items.Item:
		return it.Name
	case *items.Key:
		return tr("KEY")
	default:
		return c.Kind().String()
	}
}
