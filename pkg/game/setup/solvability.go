// Package setup checks a labyrinth before it is explored.
package setup

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"labyrinth/pkg/engine/items"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/build"
)

// Position is a row and column of a grid
type Position struct {
	Row, Col int
}

// getReachableTiles returns all tiles reachable from the start by BFS. A locked
// door is passable only once a room holding its key has been reached; doors
// met before that wait until the search runs dry and are retried then.
func getReachableTiles(lab *build.Labyrinth) mapset.Set[Position] {
	grid := lab.Grid
	reachable := mapset.New[Position]()
	keys := mapset.New[items.KeyID]()
	var waiting []Position

	q := queue.New[Position]()
	q.Enqueue(Position{lab.StartRow, lab.StartCol})

	for {
		for !q.Empty() {
			current := q.Dequeue()
			if reachable.Has(current) {
				continue
			}

			switch tile := grid.Tile(current.Row, current.Col).(type) {
			case *world.Room:
				collectKeys(tile, keys)
			case *world.Door:
				if tile.IsLocked() && !keys.Has(tile.KeyID()) {
					waiting = append(waiting, current)
					continue
				}
			default:
				continue
			}

			reachable.Put(current)
			for _, d := range world.AllDirections() {
				dr, dc := d.Delta()
				n := Position{current.Row + dr, current.Col + dc}
				if !reachable.Has(n) && grid.IsValidPosition(n.Row, n.Col) {
					q.Enqueue(n)
				}
			}
		}

		// Retry the doors whose key turned up since they were met
		progress := false
		stillWaiting := waiting[:0]
		for _, p := range waiting {
			door := grid.Tile(p.Row, p.Col).(*world.Door)
			if keys.Has(door.KeyID()) {
				q.Enqueue(p)
				progress = true
			} else {
				stillWaiting = append(stillWaiting, p)
			}
		}
		waiting = stillWaiting

		if !progress {
			return reachable
		}
	}
}

func collectKeys(room *world.Room, keys mapset.Set[items.KeyID]) {
	for _, c := range room.Contents() {
		if k, ok := c.(*items.Key); ok {
			keys.Put(k.ID())
		}
	}
}

// Reachable returns the tiles an explorer could reach from the start of lab
// given enough steps, opening every door whose key it can reach first.
func Reachable(lab *build.Labyrinth) []Position {
	set := getReachableTiles(lab)
	ret := make([]Position, 0, set.Size())
	set.Each(func(p Position) {
		ret = append(ret, p)
	})
	return ret
}

// IsSolvable reports whether a reachable tile faces the outside.
func IsSolvable(lab *build.Labyrinth) bool {
	solvable := false
	getReachableTiles(lab).Each(func(p Position) {
		for _, d := range world.AllDirections() {
			if world.IsOutside(lab.Grid.TileRelative(p.Row, p.Col, d)) {
				solvable = true
			}
		}
	})
	return solvable
}
