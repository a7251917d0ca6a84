package explorer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"labyrinth/pkg/engine/items"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/build"
	"labyrinth/pkg/game/crawl"
	mockcrawl "labyrinth/pkg/game/crawl/mock"
)

// scriptedRandomizer returns predetermined actions and fails the test when it runs out
type scriptedRandomizer struct {
	t       *testing.T
	actions []Action
	next    int
}

func script(t *testing.T, actions ...Action) *scriptedRandomizer {
	return &scriptedRandomizer{t: t, actions: actions}
}

func (s *scriptedRandomizer) Next() Action {
	s.t.Helper()
	if s.next >= len(s.actions) {
		s.t.Fatalf("randomizer called %d times, only %d actions scripted", s.next+1, len(s.actions))
	}
	a := s.actions[s.next]
	s.next++
	return a
}

// always returns the same action forever
type always Action

func (a always) Next() Action { return Action(a) }

// corridor builds a one column grid from top to bottom; the crawler starts on
// the last tile facing North
func corridor(tiles ...world.Tile) (*world.Grid, *crawl.GridCrawler) {
	g := world.NewGrid(len(tiles), 1)
	for row, tile := range tiles {
		g.SetTile(row, 0, tile)
	}
	return g, crawl.New(g, len(tiles)-1, 0, world.North)
}

func TestGetOutRejectsNonPositiveSteps(t *testing.T) {
	for _, n := range []int{0, -1} {
		ctrl := gomock.NewController(t)
		// No expectation: any crawler call fails the test.
		crawler := mockcrawl.NewMockCrawler(ctrl)
		e := New(crawler, script(t))

		left, err := e.GetOut(n)

		assert.ErrorIs(t, err, ErrNonPositiveSteps)
		assert.Equal(t, n, left)
	}
}

func TestGetOutStopsWhenFacingOutside(t *testing.T) {
	_, c := corridor(world.NewRoom(nil))
	e := New(c, script(t))
	events := 0
	e.Subscribe(PositionChanged, func(Event) { events++ })
	e.Subscribe(DirectionChanged, func(Event) { events++ })

	left, err := e.GetOut(5)

	require.NoError(t, err)
	assert.Equal(t, 5, left)
	assert.Zero(t, events)
}

func TestGetOutUsesTheWholeBudget(t *testing.T) {
	_, c := corridor(world.NewWall(), world.NewRoom(nil))
	e := New(c, always(TurnLeft))

	left, err := e.GetOut(1)

	require.NoError(t, err)
	assert.Equal(t, 0, left)
	assert.Equal(t, world.West, *c.Direction())
	assert.Equal(t, 1, e.Steps())
}

func TestWalkCollectsEverythingInOrder(t *testing.T) {
	coin := items.NewItem("coin")
	key := items.NewKey()
	room := world.NewRoom(coin)
	require.NoError(t, room.Pass().MoveFirstFrom(items.NewInventory(key)))
	_, c := corridor(room, world.NewRoom(nil))
	e := New(c, script(t, Walk))

	var got []Event
	e.Subscribe(PositionChanged, func(ev Event) { got = append(got, ev) })

	left, err := e.GetOut(5)

	require.NoError(t, err)
	assert.Equal(t, 4, left, "one step to walk, then facing outside")
	assert.Equal(t, []items.Collectable{coin, key}, e.Bag().Items())
	assert.False(t, room.Pass().HasItems())
	require.Len(t, got, 1)
	assert.Equal(t, PositionChanged, got[0].Kind)
	assert.Equal(t, 1, got[0].Step)
	assert.Equal(t, 0, got[0].Row)
	assert.Equal(t, world.North, got[0].Direction)
	assert.True(t, world.IsOutside(got[0].Facing))
}

func TestWallIsNeverWalkedInto(t *testing.T) {
	ctrl := gomock.NewController(t)
	crawler := mockcrawl.NewMockCrawler(ctrl)
	dir := world.North
	wall := world.NewWall()

	crawler.EXPECT().FacingTile().Return(wall).AnyTimes()
	crawler.EXPECT().Direction().Return(&dir).Times(2)
	crawler.EXPECT().Walk().Times(0)

	// The randomizer must not even be asked: a wall is never walkable.
	e := New(crawler, script(t))
	left, err := e.GetOut(2)

	require.NoError(t, err)
	assert.Equal(t, 0, left)
	assert.Equal(t, world.South, dir)
}

func TestWalkErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	crawler := mockcrawl.NewMockCrawler(ctrl)
	boom := errors.New("boom")

	crawler.EXPECT().FacingTile().Return(world.NewRoom(nil)).AnyTimes()
	crawler.EXPECT().Walk().Return(nil, boom)

	e := New(crawler, always(Walk))
	left, err := e.GetOut(3)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, left)
}

func TestOpenDoorWithMatchingKeyAmongOthers(t *testing.T) {
	for matching := 0; matching < 3; matching++ {
		t.Run([]string{"first", "middle", "last"}[matching], func(t *testing.T) {
			right := items.NewKey()
			wrong1, wrong2 := items.NewKey(), items.NewKey()
			keys := []items.Collectable{wrong1, wrong2}
			keys = append(keys[:matching], append([]items.Collectable{right}, keys[matching:]...)...)

			door := world.NewDoor(right.ID())
			_, c := corridor(door, world.NewRoom(nil))
			e := New(c, always(TurnLeft), WithBag(items.NewMyInventory(keys...)))

			_, err := e.GetOut(1)

			require.NoError(t, err)
			assert.True(t, door.IsOpened())
			assert.ElementsMatch(t, []items.Collectable{wrong1, wrong2}, e.Bag().Items())
		})
	}
}

func TestNoKeyFitsKeepsEveryKey(t *testing.T) {
	k1, k2, k3 := items.NewKey(), items.NewKey(), items.NewKey()
	coin := items.NewItem("coin")
	door := world.NewDoor(items.NewKey().ID())
	_, c := corridor(door, world.NewRoom(nil))
	e := New(c, always(TurnLeft), WithBag(items.NewMyInventory(k1, coin, k2, k3)))

	_, err := e.GetOut(1)

	require.NoError(t, err)
	assert.True(t, door.IsLocked())
	// Each key went to the back once: a full rotation restores the key order.
	assert.Equal(t, []items.Collectable{coin, k1, k2, k3}, e.Bag().Items())
}

func TestOpenedDoorIsWalkedThrough(t *testing.T) {
	km := build.NewKeymaster()
	door := km.NewDoor()
	keyRoom := km.NewKeyRoom()
	require.NoError(t, km.Close())

	_, c := corridor(door, keyRoom)
	e := New(c, always(Walk))

	// The explorer starts on the key room and never walks into it: hand the key over.
	require.NoError(t, e.Bag().MoveFirstFrom(keyRoom.Pass()))

	left, err := e.GetOut(10)

	require.NoError(t, err)
	assert.True(t, door.IsOpened())
	assert.Equal(t, 0, c.Row())
	assert.Equal(t, 9, left)
	assert.False(t, e.Bag().HasKey())
}

func TestUnsubscribe(t *testing.T) {
	_, c := corridor(world.NewWall(), world.NewRoom(nil))
	e := New(c, always(TurnLeft))

	var first, second int
	id := e.Subscribe(DirectionChanged, func(Event) { first++ })
	e.Subscribe(DirectionChanged, func(Event) { second++ })

	_, err := e.GetOut(1)
	require.NoError(t, err)

	e.Unsubscribe(DirectionChanged, id)
	e.Unsubscribe(DirectionChanged, ListenerID(999))

	// Face the wall again so the next step turns once more.
	c.Direction().TurnRight()
	_, err = e.GetOut(1)
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestEventsFollowSteps(t *testing.T) {
	lab, err := build.FromASCII(`
+-+
| |
| |
|x|
+-+
`)
	require.NoError(t, err)
	c := crawl.New(lab.Grid, lab.StartRow, lab.StartCol, lab.Direction)
	// Facing a wall never consults the randomizer.
	e := New(c, script(t, TurnLeft, Walk, Walk))

	var kinds []EventKind
	var steps []int
	record := func(ev Event) {
		kinds = append(kinds, ev.Kind)
		steps = append(steps, ev.Step)
	}
	e.Subscribe(PositionChanged, record)
	e.Subscribe(DirectionChanged, record)

	left, err := e.GetOut(7)

	require.NoError(t, err)
	assert.Equal(t, 0, left)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, steps)
	assert.Equal(t, []EventKind{
		DirectionChanged, DirectionChanged, DirectionChanged, DirectionChanged,
		PositionChanged, PositionChanged,
		DirectionChanged,
	}, kinds)
	assert.Equal(t, 1, c.Row())
	assert.Equal(t, world.West, *c.Direction())
}

func TestDefaultMapConservesKeys(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		lab, err := build.FromASCII(build.DefaultMap)
		require.NoError(t, err)
		c := crawl.New(lab.Grid, lab.StartRow, lab.StartCol, lab.Direction)
		e := New(c, NewRandomizer(seed))

		left, err := e.GetOut(2000)
		require.NoError(t, err)
		require.GreaterOrEqual(t, left, 0)

		keys := len(e.Bag().KeyIndexes())
		opened := 0
		lab.Grid.ForEachTile(func(row, col int, tile world.Tile) {
			switch tl := tile.(type) {
			case *world.Room:
				if tl.HasKey() {
					keys += len(items.NewMyInventory(tl.Contents()...).KeyIndexes())
				}
			case *world.Door:
				if tl.IsOpened() {
					opened++
				}
			}
		})
		assert.Equal(t, 3, keys+opened, "seed %d: keys lost or duplicated", seed)
	}
}

func TestNewRandomizerIsDeterministic(t *testing.T) {
	a, b := NewRandomizer(42), NewRandomizer(42)
	walks := 0
	for i := 0; i < 200; i++ {
		next := a.Next()
		require.Equal(t, next, b.Next())
		if next == Walk {
			walks++
		}
	}
	assert.Greater(t, walks, 50)
	assert.Less(t, walks, 150)
}
