package noise

import (
	"math"
	"math/rand"
)

// Generator is a seeded 2D gradient noise source. The permutation table is
// fixed at construction, so a generator with the same seed always produces
// the same field.
type Generator struct {
	perm [512]int
}

// New builds a generator from a seed. The 256-entry permutation table is
// shuffled with the seeded source, then duplicated to 512 entries so corner
// hashing never needs an index wrap.
func New(seed int64) *Generator {
	p := make([]int, 256)
	for i := range p {
		p[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})

	g := &Generator{}
	for i := 0; i < 512; i++ {
		g.perm[i] = p[i&255]
	}
	return g
}

// Generate2D samples the noise field at (x, y) scaled by scale and returns a
// value in [0, 1].
func (g *Generator) Generate2D(x, y, scale float64) float64 {
	sx := x * scale
	sy := y * scale

	fx := math.Floor(sx)
	fy := math.Floor(sy)
	xi := int(fx) & 255
	yi := int(fy) & 255
	xf := sx - fx
	yf := sy - fy

	u := fade(xf)
	v := fade(yf)

	aa := g.perm[g.perm[xi]+yi]
	ab := g.perm[g.perm[xi]+yi+1]
	ba := g.perm[g.perm[xi+1]+yi]
	bb := g.perm[g.perm[xi+1]+yi+1]

	x1 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x2 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)
	val := lerp(x1, x2, v)

	// Remap from the native [-1, 1] range and clamp; the diagonal gradient
	// set can overshoot by a hair at cell corners.
	val = (val + 1) / 2
	if val < 0 {
		return 0
	}
	if val > 1 {
		return 1
	}
	return val
}

// fade is the quintic smoothing curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad projects the fractional offset onto one of four diagonal gradients
// chosen by the corner hash.
func grad(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}
