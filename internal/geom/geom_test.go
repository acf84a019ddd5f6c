package geom

import (
	"math"
	"testing"
)

func TestGridRoundTrip(t *testing.T) {
	g := Grid{X: 12, Y: -3}
	if got := GridOf(g.Vector2()); got != g {
		t.Errorf("GridOf(Vector2()) = %v, want %v", got, g)
	}
}

func TestDistance(t *testing.T) {
	a := Grid{X: 0, Y: 0}
	b := Grid{X: 3, Y: 4}
	if got := a.DistanceTo(b); got != 5 {
		t.Errorf("DistanceTo = %f, want 5", got)
	}
	if got := b.DistanceTo(a); got != 5 {
		t.Errorf("distance should be symmetric, got %f", got)
	}
}

func TestNeighbors(t *testing.T) {
	n := Grid{X: 5, Y: 5}.Neighbors()
	seen := make(map[Grid]bool)
	for _, c := range n {
		if c == (Grid{X: 5, Y: 5}) {
			t.Error("cell should not be its own neighbor")
		}
		if seen[c] {
			t.Errorf("duplicate neighbor %v", c)
		}
		seen[c] = true
		if math.Abs(float64(c.X-5)) > 1 || math.Abs(float64(c.Y-5)) > 1 {
			t.Errorf("neighbor %v is not adjacent", c)
		}
	}
	if len(seen) != 8 {
		t.Errorf("got %d distinct neighbors, want 8", len(seen))
	}
}

func TestBearing(t *testing.T) {
	origin := Grid{X: 0, Y: 0}
	cases := []struct {
		to   Grid
		want float64
	}{
		{Grid{X: 0, Y: -1}, 0},   // north
		{Grid{X: 1, Y: -1}, 45},  // northeast
		{Grid{X: 1, Y: 0}, 90},   // east
		{Grid{X: 0, Y: 1}, 180},  // south
		{Grid{X: -1, Y: 0}, 270}, // west
	}
	for _, c := range cases {
		if got := Bearing(origin, c.to); math.Abs(got-c.want) > 0.001 {
			t.Errorf("Bearing(origin, %v) = %f, want %f", c.to, got, c.want)
		}
	}
}

func TestCompass(t *testing.T) {
	origin := Grid{X: 0, Y: 0}
	cases := []struct {
		to   Grid
		want string
	}{
		{Grid{X: 0, Y: -5}, "north"},
		{Grid{X: 5, Y: -5}, "northeast"},
		{Grid{X: 5, Y: 0}, "east"},
		{Grid{X: 5, Y: 5}, "southeast"},
		{Grid{X: 0, Y: 5}, "south"},
		{Grid{X: -5, Y: 5}, "southwest"},
		{Grid{X: -5, Y: 0}, "west"},
		{Grid{X: -5, Y: -5}, "northwest"},
	}
	for _, c := range cases {
		if got := Compass(origin, c.to); got != c.want {
			t.Errorf("Compass(origin, %v) = %q, want %q", c.to, got, c.want)
		}
	}
}
