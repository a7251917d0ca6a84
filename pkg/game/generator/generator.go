// Package generator draws random labyrinths in the ASCII map format read by
// build.FromASCII.
package generator

import (
	"errors"
)

// ErrTooSmall is returned when the requested map cannot hold a single room
var ErrTooSmall = errors.New("map too small")

// MapGenerator is an interface for map generation algorithms
type MapGenerator interface {
	// Generate draws a rows x cols map holding up to doors doors, each with
	// its key room
	Generate(rows, cols, doors int) (string, error)
	Name() string
}
