package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labyrinth/pkg/engine/items"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/build"
)

// newCrawler builds the map and puts a crawler on its start tile
func newCrawler(t *testing.T, text string) (*GridCrawler, *build.Labyrinth) {
	t.Helper()
	lab, err := build.FromASCII(text)
	require.NoError(t, err)
	return New(lab.Grid, lab.StartRow, lab.StartCol, lab.Direction), lab
}

func TestFacingTile(t *testing.T) {
	c, lab := newCrawler(t, `
+-+
|x|
+ +
`)
	assert.Same(t, lab.Grid.Tile(0, 1), c.FacingTile())

	c.Direction().TurnLeft()
	c.Direction().TurnLeft()
	assert.Equal(t, world.South, *c.Direction())
	assert.IsType(t, &world.Room{}, c.FacingTile())
}

func TestWalkIntoWallFails(t *testing.T) {
	c, _ := newCrawler(t, "+\nx")

	inv, err := c.Walk()

	assert.ErrorIs(t, err, ErrNotTraversable)
	assert.Nil(t, inv)
	assert.Equal(t, 1, c.Row())
	assert.Equal(t, 0, c.Col())
}

func TestWalkReturnsEnteredInventory(t *testing.T) {
	grid := world.NewGrid(2, 1)
	room := world.NewRoom(items.NewItem("lamp"))
	grid.SetTile(0, 0, room)
	grid.SetTile(1, 0, world.NewRoom(nil))
	c := New(grid, 1, 0, world.North)

	inv, err := c.Walk()
	require.NoError(t, err)
	assert.Same(t, room.Pass(), inv)
	assert.Equal(t, 0, c.Row())
	assert.True(t, world.IsOutside(c.FacingTile()))
}

func TestWalkThroughOpenedDoor(t *testing.T) {
	c, lab := newCrawler(t, "k\n/\nx")
	door := lab.Grid.Tile(1, 0).(*world.Door)
	key := lab.Grid.Tile(0, 0).Pass()

	_, err := c.Walk()
	require.ErrorIs(t, err, ErrNotTraversable)

	require.True(t, door.Open(key))
	_, err = c.Walk()
	require.NoError(t, err)
	assert.Equal(t, 1, c.Row())
}
