// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"labyrinth/pkg/engine/items"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/setup"
	"labyrinth/pkg/game/state"
)

// tileSymbol returns the single-character symbol for a tile (no crawler overlay)
func tileSymbol(tile world.Tile) rune {
	switch t := tile.(type) {
	case *world.Wall:
		return '#'
	case *world.Door:
		if t.IsOpened() {
			return 'O'
		}
		return 'D'
	case *world.Room:
		switch {
		case t.HasKey():
			return 'k'
		case len(t.Contents()) > 0:
			return 'i'
		default:
			return '.'
		}
	default:
		return ' '
	}
}

// writeMapGrid writes the grid to w with the crawler drawn as '@'.
func writeMapGrid(w io.Writer, r *state.Run) {
	grid := r.Labyrinth.Grid
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			if row == r.Crawler.Row() && col == r.Crawler.Col() {
				fmt.Fprint(w, "@")
				continue
			}
			fmt.Fprintf(w, "%c", tileSymbol(grid.Tile(row, col)))
		}
		fmt.Fprintln(w)
	}
}

// DumpRun writes a full debug dump of a run: metadata, legend, map, and the
// doors and key rooms with the short form of their key.
func DumpRun(w io.Writer, r *state.Run) {
	grid := r.Labyrinth.Grid

	// --- Metadata ---
	fmt.Fprintln(w, "=== LABYRINTH DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "grid_rows: %d\n", grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", grid.Cols())
	fmt.Fprintf(w, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(w, "start_cell: %d,%d\n", r.Labyrinth.StartRow, r.Labyrinth.StartCol)
	fmt.Fprintf(w, "crawler_cell: %d,%d\n", r.Crawler.Row(), r.Crawler.Col())
	fmt.Fprintf(w, "crawler_direction: %v\n", r.Crawler.Direction())
	fmt.Fprintf(w, "steps: %d\n", r.Explorer.Steps())
	fmt.Fprintf(w, "steps_left: %d\n", r.StepsLeft)
	fmt.Fprintf(w, "got_out: %v\n", r.Done)
	fmt.Fprintf(w, "doors_opened: %d/%d\n", r.OpenedDoors(), len(grid.Doors()))
	fmt.Fprintf(w, "solvable: %v\n", setup.IsSolvable(r.Labyrinth))
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (tile symbols) ---")
	fmt.Fprintln(w, "# = wall  . = empty room  k = room holding a key  i = room holding items  D = locked door  O = open door  @ = crawler  (space) = outside")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, r)
	fmt.Fprintln(w, "")

	// Doors
	fmt.Fprintln(w, "Doors:")
	grid.ForEachTile(func(row, col int, tile world.Tile) {
		d, ok := tile.(*world.Door)
		if !ok {
			return
		}
		fmt.Fprintf(w, "  row: %d col: %d locked: %v key: %s\n", row, col, d.IsLocked(), d.KeyID().Short())
	})
	fmt.Fprintln(w, "")

	// Rooms holding something
	fmt.Fprintln(w, "Rooms with items:")
	grid.ForEachTile(func(row, col int, tile world.Tile) {
		room, ok := tile.(*world.Room)
		if !ok || len(room.Contents()) == 0 {
			return
		}
		fmt.Fprintf(w, "  row: %d col: %d items: %s\n", row, col, describe(room.Contents()))
	})
	fmt.Fprintln(w, "")

	// Bag
	fmt.Fprintf(w, "Bag: %s\n", describe(r.Explorer.Bag().Items()))
}

// describe lists collectables, keys by the short form of their identity
func describe(cs []items.Collectable) string {
	if len(cs) == 0 {
		return "(empty)"
	}
	ret := ""
	for _, c := range cs {
		switch it := c.(type) {
		case *items.Key:
			ret += "key:" + it.ID().Short() + ","
		case *items.Item:
			ret += it.Name + ","
		default:
			ret += c.Kind().String() + ","
		}
	}

	// Remove trailing comma
	return ret[:len(ret)-1]
}

// DumpRunToFile writes DumpRun's output to path and returns its absolute path.
func DumpRunToFile(r *state.Run, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("creating dump %s: %w", absPath, err)
	}
	defer f.Close()

	DumpRun(f, r)
	return absPath, nil
}
