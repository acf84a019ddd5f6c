package terrain

import (
	"github.com/lawnchairsociety/wildlands/internal/geom"
	"github.com/lawnchairsociety/wildlands/internal/noise"
)

const (
	elevationOctaves   = 4
	elevationBaseScale = 0.05
	moistureScale      = 0.1
	riverScale         = 3.0
	riverThreshold     = 0.7
	riverMaxElevation  = 0.7
)

// Synthesizer builds a width x height terrain map from three independently
// seeded noise sources: layered elevation, moisture, and a river channel
// field.
type Synthesizer struct {
	width, height int
	elevation     *noise.Generator
	moisture      *noise.Generator
	river         *noise.Generator
}

// NewSynthesizer wires a synthesizer to its noise sources.
func NewSynthesizer(width, height int, elevation, moisture, river *noise.Generator) *Synthesizer {
	return &Synthesizer{
		width:     width,
		height:    height,
		elevation: elevation,
		moisture:  moisture,
		river:     river,
	}
}

// Generate classifies every cell in [0,width) x [0,height): threshold
// classification from elevation and moisture, a river overlay, then one
// smoothing pass.
func (s *Synthesizer) Generate() Map {
	m := make(Map, s.width*s.height)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			elev := s.ElevationAt(x, y)
			moist := s.moisture.Generate2D(float64(x), float64(y), moistureScale)
			m[geom.Grid{X: x, Y: y}] = classify(elev, moist)
		}
	}
	s.overlayRivers(m)
	s.Smooth(m)
	return m
}

// ElevationAt sums four octaves of elevation noise, doubling frequency and
// halving amplitude per octave, normalized back to [0, 1].
func (s *Synthesizer) ElevationAt(x, y int) float64 {
	total := 0.0
	maxAmp := 0.0
	freq := elevationBaseScale
	amp := 1.0
	for o := 0; o < elevationOctaves; o++ {
		total += s.elevation.Generate2D(float64(x), float64(y), freq) * amp
		maxAmp += amp
		freq *= 2
		amp /= 2
	}
	return total / maxAmp
}

// classify picks a terrain type from fixed elevation/moisture thresholds.
func classify(elevation, moisture float64) Type {
	switch {
	case elevation > 0.8:
		return Mountain
	case elevation > 0.6:
		if moisture < 0.15 {
			return Canyon
		}
		return Hills
	case elevation < 0.3:
		if elevation < 0.2 {
			return Coast
		}
		if moisture > 0.6 {
			return Swamp
		}
		return Plains
	case elevation < 0.4 && moisture > 0.5:
		return Swamp
	default:
		if moisture < 0.2 {
			return Desert
		}
		if moisture > 0.5 {
			return Forest
		}
		return Plains
	}
}

// overlayRivers forces River wherever the channel field spikes, except at
// high elevation. Sampled on normalized coordinates so river width does not
// depend on map size.
func (s *Synthesizer) overlayRivers(m Map) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			nx := float64(x) / float64(s.width)
			ny := float64(y) / float64(s.height)
			if s.river.Generate2D(nx, ny, riverScale) <= riverThreshold {
				continue
			}
			if s.ElevationAt(x, y) < riverMaxElevation {
				m[geom.Grid{X: x, Y: y}] = River
			}
		}
	}
}

// Smooth runs one majority-vote pass over the map: a cell that fewer than
// two of its neighbors agree with is replaced by the most frequent neighbor
// terrain. Decisions read a frozen snapshot so the pass cannot cascade into
// itself. Cells on the map edge simply have fewer neighbors.
func (s *Synthesizer) Smooth(m Map) {
	snapshot := make(Map, len(m))
	for pos, t := range m {
		snapshot[pos] = t
	}

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			pos := geom.Grid{X: x, Y: y}
			own := snapshot[pos]

			var counts [typeCount]int
			agree := 0
			total := 0
			for _, nb := range pos.Neighbors() {
				t, ok := snapshot[nb]
				if !ok {
					continue
				}
				counts[t]++
				total++
				if t == own {
					agree++
				}
			}
			if total == 0 || agree >= 2 {
				continue
			}

			// Majority vote; ties resolve to the lowest enumeration value.
			best := own
			bestCount := 0
			for t := Type(0); t < typeCount; t++ {
				if counts[t] > bestCount {
					best = t
					bestCount = counts[t]
				}
			}
			m[pos] = best
		}
	}
}
