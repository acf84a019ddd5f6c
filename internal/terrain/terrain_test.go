package terrain

import (
	"testing"

	"github.com/lawnchairsociety/wildlands/internal/geom"
	"github.com/lawnchairsociety/wildlands/internal/noise"
)

func newTestSynthesizer(width, height int, seed int64) *Synthesizer {
	return NewSynthesizer(width, height,
		noise.New(seed), noise.New(seed+1), noise.New(seed+2))
}

func TestGenerateCoversEveryCell(t *testing.T) {
	const w, h = 32, 24
	m := newTestSynthesizer(w, h, 42).Generate()

	if len(m) != w*h {
		t.Fatalf("map has %d cells, want %d", len(m), w*h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			typ, ok := m[geom.Grid{X: x, Y: y}]
			if !ok {
				t.Fatalf("cell (%d,%d) unclassified", x, y)
			}
			if typ < 0 || typ >= typeCount {
				t.Fatalf("cell (%d,%d) has invalid type %d", x, y, typ)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := newTestSynthesizer(40, 40, 7).Generate()
	b := newTestSynthesizer(40, 40, 7).Generate()
	if len(a) != len(b) {
		t.Fatalf("sizes differ: %d vs %d", len(a), len(b))
	}
	for pos, typ := range a {
		if b[pos] != typ {
			t.Fatalf("cell %v differs: %v vs %v", pos, typ, b[pos])
		}
	}
}

func TestClassifyThresholds(t *testing.T) {
	cases := []struct {
		elevation, moisture float64
		want                Type
	}{
		{0.9, 0.5, Mountain},
		{0.7, 0.5, Hills},
		{0.7, 0.1, Canyon},
		{0.1, 0.5, Coast},
		{0.25, 0.7, Swamp},
		{0.25, 0.3, Plains},
		{0.35, 0.6, Swamp},
		{0.5, 0.7, Forest},
		{0.5, 0.3, Plains},
		{0.5, 0.1, Desert},
	}
	for _, c := range cases {
		if got := classify(c.elevation, c.moisture); got != c.want {
			t.Errorf("classify(%f, %f) = %v, want %v", c.elevation, c.moisture, got, c.want)
		}
	}
}

func TestSmoothReplacesIsolatedCell(t *testing.T) {
	// 3x3 map of Plains with a lone Mountain in the middle. No neighbor
	// agrees with it, so the vote replaces it.
	s := newTestSynthesizer(3, 3, 1)
	m := make(Map)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			m[geom.Grid{X: x, Y: y}] = Plains
		}
	}
	m[geom.Grid{X: 1, Y: 1}] = Mountain

	s.Smooth(m)

	if got := m[geom.Grid{X: 1, Y: 1}]; got != Plains {
		t.Errorf("isolated cell = %v after smoothing, want Plains", got)
	}
}

func TestSmoothKeepsSupportedCell(t *testing.T) {
	// A 2x2 Forest block gives every forest cell at least two agreeing
	// neighbors, so the vote must leave the block alone.
	s := newTestSynthesizer(4, 4, 1)
	m := make(Map)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			m[geom.Grid{X: x, Y: y}] = Plains
		}
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			m[geom.Grid{X: x, Y: y}] = Forest
		}
	}

	s.Smooth(m)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := m[geom.Grid{X: x, Y: y}]; got != Forest {
				t.Errorf("supported cell (%d,%d) = %v, want Forest", x, y, got)
			}
		}
	}
}

func TestMovementCostFloor(t *testing.T) {
	for _, typ := range Types() {
		if cost := MovementCost(typ); cost < 1.0 {
			t.Errorf("MovementCost(%v) = %f, want >= 1", typ, cost)
		}
	}
	if MovementCost(Mountain) != 3.0 {
		t.Errorf("MovementCost(Mountain) = %f, want 3.0", MovementCost(Mountain))
	}
	if MovementCost(River) != 2.5 {
		t.Errorf("MovementCost(River) = %f, want 2.5", MovementCost(River))
	}
}

func TestTypeString(t *testing.T) {
	if Plains.String() != "Plains" {
		t.Errorf("Plains.String() = %q", Plains.String())
	}
	if Type(99).String() != "Unknown" {
		t.Errorf("invalid type String() = %q, want Unknown", Type(99).String())
	}
}
