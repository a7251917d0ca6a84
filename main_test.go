package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labyrinth/pkg/game/build"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/generator"
)

func TestLoadLabyrinthDefault(t *testing.T) {
	lab, err := loadLabyrinth("")
	require.NoError(t, err)
	assert.Len(t, lab.Grid.Doors(), 3)
}

func TestLoadLabyrinthFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte("+/+\n|x|\n|k|\n+-+\n"), 0o600))

	lab, err := loadLabyrinth(path)
	require.NoError(t, err)
	assert.Equal(t, 4, lab.Grid.Rows())
	assert.Equal(t, 1, lab.StartRow)
}

func TestLoadLabyrinthErrors(t *testing.T) {
	_, err := loadLabyrinth(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("x/\n"), 0o600))
	_, err = loadLabyrinth(path)
	assert.ErrorIs(t, err, build.ErrUnmatchedDoor)
}

func TestGenerateLabyrinth(t *testing.T) {
	g := config.Default().Generate

	lab, err := generateLabyrinth(generator.NewBSP(7), g)
	require.NoError(t, err)
	assert.Equal(t, g.Rows, lab.Grid.Rows())
	assert.Equal(t, g.Cols, lab.Grid.Cols())

	g.Rows = 3
	_, err = generateLabyrinth(generator.NewBSP(7), g)
	assert.ErrorIs(t, err, generator.ErrTooSmall)
}
