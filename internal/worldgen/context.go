package worldgen

import (
	"math/rand"

	"github.com/lawnchairsociety/wildlands/internal/lore"
	"github.com/lawnchairsociety/wildlands/internal/strpool"
	"github.com/lawnchairsociety/wildlands/internal/terrain"
)

// context is the working state of one generation pass, threaded explicitly
// through every stage. Nothing in it is shared outside the pass.
//
// The rng is the single source of randomness for the whole pipeline;
// stages must consume it in a fixed order, and none of them may iterate a
// Go map while drawing from it.
type context struct {
	rng     *rand.Rand
	pool    *strpool.Pool
	terrain terrain.Map
	width   int
	height  int
	tables  *lore.Tables
}

// pick returns a random element of list, or "" for an empty list.
func (c *context) pick(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[c.rng.Intn(len(list))]
}

// pickID picks a random element of list and interns it.
func (c *context) pickID(list []string) strpool.ID {
	return c.pool.Intern(c.pick(list))
}

// intern adds s to the shared string pool.
func (c *context) intern(s string) strpool.ID {
	return c.pool.Intern(s)
}
