package build

import (
	"errors"
	"fmt"
	"strings"

	"labyrinth/pkg/engine/world"
)

var (
	// ErrNoStart is returned when a map has no start tile
	ErrNoStart = errors.New("map has no start tile")

	// ErrMultipleStarts is returned when a map has more than one start tile
	ErrMultipleStarts = errors.New("map has more than one start tile")

	// ErrUnknownTile is returned for a character the map format does not define
	ErrUnknownTile = errors.New("unknown tile character")

	// ErrEmptyMap is returned for a map without any line
	ErrEmptyMap = errors.New("empty map")

	// ErrInvalidGrid is returned when the built grid fails its own checks
	ErrInvalidGrid = errors.New("invalid grid")
)

// Map characters
const (
	CharCorner    = '+'
	CharHWall     = '-'
	CharVWall     = '|'
	CharRoom      = ' '
	CharKeyRoom   = 'k'
	CharDoor      = '/'
	CharStart     = 'x'
	CharOuterVoid = '.'
)

// Labyrinth is a built map: the grid and where the crawler starts
type Labyrinth struct {
	Grid      *world.Grid
	StartRow  int
	StartCol  int
	Direction world.Direction
}

// FromASCII builds a labyrinth from its text drawing. Doors and key rooms are
// created through one keymaster in reading order, so a map whose doors and key
// rooms do not pair up fails with ErrUnmatchedDoor or ErrUnmatchedKeyRoom.
// Short lines are padded with Outside; '.' marks Outside explicitly.
func FromASCII(text string) (*Labyrinth, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}

	cols := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > cols {
			cols = n
		}
	}
	if cols == 0 {
		return nil, ErrEmptyMap
	}

	grid := world.NewGrid(len(lines), cols)
	lab := &Labyrinth{Grid: grid, Direction: world.North}
	starts := 0

	err := WithKeymaster(func(km *Keymaster) error {
		for row, line := range lines {
			runes := []rune(line)
			for col := 0; col < cols; col++ {
				if col >= len(runes) {
					grid.SetTile(row, col, world.Outside)
					continue
				}
				tile, err := tileFor(km, runes[col])
				if err != nil {
					return fmt.Errorf("%w %q at line %d column %d", err, runes[col], row+1, col+1)
				}
				grid.SetTile(row, col, tile)

				if runes[col] == CharStart {
					starts++
					lab.StartRow, lab.StartCol = row, col
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w (%d found)", ErrMultipleStarts, starts)
	}
	grid.SetStart(lab.StartRow, lab.StartCol)
	if msg := grid.Validate(); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidGrid, msg)
	}

	return lab, nil
}

// tileFor maps a single map character to the tile it stands for
func tileFor(km *Keymaster, ch rune) (world.Tile, error) {
	switch ch {
	case CharCorner, CharHWall, CharVWall:
		return world.NewWall(), nil
	case CharRoom, CharStart:
		return world.NewRoom(nil), nil
	case CharKeyRoom:
		return km.NewKeyRoom(), nil
	case CharDoor:
		return km.NewDoor(), nil
	case CharOuterVoid:
		return world.Outside, nil
	default:
		return nil, ErrUnknownTile
	}
}

// splitLines splits a drawing into lines, dropping a leading and a trailing
// empty line so raw string literals can start on their own line
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// DefaultMap is the labyrinth used when no map file is given
const DefaultMap = `
+--+--------+
|  /        |
|  +--+--+  |
|     |k    |
+--+  |  +--+
   |k  x /  |
+  +-----+  |
|  /     k  |
+--+--------+
`
