// Package generator tests BSP map generation: balanced doors and keys,
// connectivity, a way out, and determinism.
package generator

import (
	"errors"
	"strings"
	"testing"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/build"
	"labyrinth/pkg/game/setup"
)

// countReachable returns the number of non-wall tiles reachable from the start via N/E/S/W.
func countReachable(lines []string) int {
	var start position
	for row, line := range lines {
		if col := strings.IndexRune(line, build.CharStart); col >= 0 {
			start = position{row, col}
		}
	}
	visited := map[position]bool{start: true}
	queue := []position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []position{{-1, 0}, {0, 1}, {1, 0}, {0, -1}} {
			n := position{p.row + d.row, p.col + d.col}
			if n.row < 0 || n.row >= len(lines) || n.col < 0 || n.col >= len(lines[n.row]) {
				continue
			}
			if lines[n.row][n.col] != '+' && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

// countWalkable returns the number of non-wall tiles.
func countWalkable(lines []string) int {
	n := 0
	for _, line := range lines {
		n += len(line) - strings.Count(line, "+")
	}
	return n
}

func generate(t *testing.T, seed uint64, rows, cols, doors int) []string {
	t.Helper()
	text, err := NewBSP(seed).Generate(rows, cols, doors)
	if err != nil {
		t.Fatalf("Generate(%d, %d, %d) error: %v", rows, cols, doors, err)
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func TestBSPGenerate_Size(t *testing.T) {
	lines := generate(t, 1, 20, 40, 3)
	if len(lines) != 20 {
		t.Fatalf("got %d rows, want 20", len(lines))
	}
	for i, line := range lines {
		if len(line) != 40 {
			t.Errorf("row %d has %d columns, want 40", i, len(line))
		}
	}
}

func TestBSPGenerate_BuildsSolvableMaps(t *testing.T) {
	withDoors := 0
	for seed := uint64(1); seed <= 20; seed++ {
		text, err := NewBSP(seed).Generate(24, 48, 4)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		lab, err := build.FromASCII(text)
		if err != nil {
			t.Fatalf("seed %d: generated map does not build: %v\n%s", seed, err, text)
		}
		if !setup.IsSolvable(lab) {
			t.Errorf("seed %d: generated map cannot be solved:\n%s", seed, text)
		}
		n := len(lab.Grid.Doors())
		if n > 4 {
			t.Errorf("seed %d: %d doors, want at most 4", seed, n)
		}
		if n > 0 {
			withDoors++
		}
	}
	if withDoors == 0 {
		t.Error("no generated map has a door")
	}
}

func TestBSPGenerate_AllTilesReachable(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		lines := generate(t, seed, 30, 60, 5)
		total := countWalkable(lines)
		reachable := countReachable(lines)
		if reachable != total {
			t.Errorf("seed %d: reachable tiles %d != walkable tiles %d (isolated rooms)", seed, reachable, total)
		}
	}
}

func TestBSPGenerate_HasWayOut(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		lab, err := build.FromASCII(strings.Join(generate(t, seed, 16, 30, 2), "\n"))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		g := lab.Grid
		open := 0
		for row := 0; row < g.Rows(); row++ {
			for col := 0; col < g.Cols(); col++ {
				if row != 0 && col != 0 && row != g.Rows()-1 && col != g.Cols()-1 {
					continue
				}
				if _, wall := g.Tile(row, col).(*world.Wall); !wall {
					open++
				}
			}
		}
		if open == 0 {
			t.Errorf("seed %d: the border is closed", seed)
		}
	}
}

func TestBSPGenerate_Deterministic(t *testing.T) {
	a, err := NewBSP(42).Generate(20, 40, 3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBSP(42).Generate(20, 40, 3)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same seed drew different maps:\n%s\n%s", a, b)
	}
}

func TestBSPGenerate_NoDoors(t *testing.T) {
	lines := generate(t, 3, 12, 12, 0)
	text := strings.Join(lines, "\n")
	if strings.ContainsAny(text, "/k") {
		t.Errorf("asked for no doors, got:\n%s", text)
	}
	if strings.Count(text, "x") != 1 {
		t.Errorf("want exactly one start, got:\n%s", text)
	}
}

func TestBSPGenerate_TooSmall(t *testing.T) {
	_, err := NewBSP(1).Generate(MinSize-1, 40, 1)
	if !errors.Is(err, ErrTooSmall) {
		t.Errorf("got %v, want ErrTooSmall", err)
	}
}

func TestBSPName(t *testing.T) {
	var g MapGenerator = NewBSP(1)
	if g.Name() != "BSP Tree" {
		t.Errorf("Name() = %q", g.Name())
	}
}
