package pathfind

import (
	"testing"

	"github.com/lawnchairsociety/wildlands/internal/geom"
	"github.com/lawnchairsociety/wildlands/internal/terrain"
)

// flatMap builds a w x h map of uniform terrain.
func flatMap(w, h int, typ terrain.Type) terrain.Map {
	m := make(terrain.Map)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m[geom.Grid{X: x, Y: y}] = typ
		}
	}
	return m
}

func TestFindPathStraightLine(t *testing.T) {
	m := flatMap(10, 10, terrain.Plains)
	start := geom.Grid{X: 0, Y: 5}
	goal := geom.Grid{X: 9, Y: 5}

	path, ok := FindPath(m, start, goal)
	if !ok {
		t.Fatal("FindPath failed on an open map")
	}
	if path[0] != start {
		t.Errorf("path starts at %v, want %v", path[0], start)
	}
	if path[len(path)-1] != goal {
		t.Errorf("path ends at %v, want %v", path[len(path)-1], goal)
	}
	// On uniform terrain the diagonal grid admits no shorter route than the
	// straight 10-cell line.
	if len(path) != 10 {
		t.Errorf("path length = %d, want 10", len(path))
	}
}

func TestFindPathStartEqualsGoal(t *testing.T) {
	m := flatMap(3, 3, terrain.Plains)
	pos := geom.Grid{X: 1, Y: 1}
	path, ok := FindPath(m, pos, pos)
	if !ok {
		t.Fatal("FindPath failed for start == goal")
	}
	if len(path) != 1 || path[0] != pos {
		t.Errorf("path = %v, want [%v]", path, pos)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	// Two disconnected islands: cells exist only at the far corners.
	m := terrain.Map{
		{X: 0, Y: 0}: terrain.Plains,
		{X: 9, Y: 9}: terrain.Plains,
	}
	if _, ok := FindPath(m, geom.Grid{X: 0, Y: 0}, geom.Grid{X: 9, Y: 9}); ok {
		t.Error("FindPath reported success across disconnected cells")
	}
}

func TestFindPathMissingEndpoints(t *testing.T) {
	m := flatMap(5, 5, terrain.Plains)
	outside := geom.Grid{X: 50, Y: 50}
	inside := geom.Grid{X: 2, Y: 2}
	if _, ok := FindPath(m, outside, inside); ok {
		t.Error("FindPath accepted a start cell missing from the map")
	}
	if _, ok := FindPath(m, inside, outside); ok {
		t.Error("FindPath accepted a goal cell missing from the map")
	}
}

func TestFindPathAvoidsExpensiveTerrain(t *testing.T) {
	// A three-cell-thick mountain wall with a plains gap at the bottom row.
	// Crossing the wall costs three 3x steps; the detour through the gap is
	// cheaper.
	m := flatMap(11, 7, terrain.Plains)
	for x := 4; x <= 6; x++ {
		for y := 0; y < 6; y++ {
			m[geom.Grid{X: x, Y: y}] = terrain.Mountain
		}
	}

	start := geom.Grid{X: 0, Y: 3}
	goal := geom.Grid{X: 10, Y: 3}
	path, ok := FindPath(m, start, goal)
	if !ok {
		t.Fatal("FindPath failed")
	}

	crossed := false
	for _, pos := range path {
		if m[pos] == terrain.Mountain {
			crossed = true
		}
	}
	if crossed {
		t.Error("path crossed the mountain wall instead of detouring through the gap")
	}
}

func TestFindPathDeterministic(t *testing.T) {
	m := flatMap(20, 20, terrain.Forest)
	start := geom.Grid{X: 1, Y: 18}
	goal := geom.Grid{X: 18, Y: 2}

	first, ok := FindPath(m, start, goal)
	if !ok {
		t.Fatal("FindPath failed")
	}
	for i := 0; i < 5; i++ {
		again, ok := FindPath(m, start, goal)
		if !ok {
			t.Fatal("FindPath failed on rerun")
		}
		if len(again) != len(first) {
			t.Fatalf("rerun path length %d, want %d", len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("rerun diverged at step %d: %v vs %v", j, again[j], first[j])
			}
		}
	}
}
