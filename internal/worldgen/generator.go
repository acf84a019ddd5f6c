// Package worldgen synthesizes an entire explorable world from one integer
// seed: terrain, regions, settlements, routes, encounter tables, and the
// global NPC/item pools. Generation is a strict single-pass pipeline; every
// random decision draws from one shared seeded source in a fixed call order,
// which is what makes equal seeds produce identical worlds.
package worldgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lawnchairsociety/wildlands/internal/lore"
	"github.com/lawnchairsociety/wildlands/internal/noise"
	"github.com/lawnchairsociety/wildlands/internal/strpool"
	"github.com/lawnchairsociety/wildlands/internal/terrain"
	"github.com/lawnchairsociety/wildlands/internal/worlddata"
)

// Generator holds the parameters of one generation pass.
type Generator struct {
	seed   int64
	width  int
	height int
	tables *lore.Tables

	// Progress, when set, is called once per pipeline stage with a short
	// stage name. Used by tooling that wants to surface generation state;
	// the generator itself never blocks on it.
	Progress func(stage string)
}

// New creates a generator. A nil tables uses the built-in lore. Seed 0 means
// "non-deterministic": a seed is drawn from the clock at Generate time and
// recorded in the world header so the result stays reproducible afterward.
func New(seed int64, width, height int, tables *lore.Tables) *Generator {
	if tables == nil {
		tables = lore.Defaults()
	}
	return &Generator{seed: seed, width: width, height: height, tables: tables}
}

// GenerateWorld runs a full generation pass with the default lore tables.
func GenerateWorld(seed int64, width, height int) (*worlddata.WorldData, error) {
	return New(seed, width, height, nil).Generate()
}

// Generate runs the pipeline: terrain, region placement, locations and
// buildings, routes, inter-region connectivity, population, finalization.
// The only error condition is invalid dimensions; everything algorithmic
// degrades gracefully instead of failing.
func (g *Generator) Generate() (*worlddata.WorldData, error) {
	if g.width <= 0 || g.height <= 0 {
		return nil, fmt.Errorf("invalid map dimensions %dx%d", g.width, g.height)
	}

	seed := g.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.stage("terrain")
	synth := terrain.NewSynthesizer(g.width, g.height,
		noise.New(seed), noise.New(seed+1), noise.New(seed+2))

	ctx := &context{
		rng:     rand.New(rand.NewSource(seed)),
		pool:    strpool.New(),
		terrain: synth.Generate(),
		width:   g.width,
		height:  g.height,
		tables:  g.tables,
	}

	world := &worlddata.WorldData{}

	g.stage("regions")
	centers := placeRegionCenters(ctx)
	subMaps := make([]terrain.Map, 0, len(centers))
	for _, center := range centers {
		region, sub := buildRegion(ctx, center)
		world.Regions = append(world.Regions, region)
		subMaps = append(subMaps, sub)
	}

	g.stage("locations")
	for i := range world.Regions {
		generateLocations(ctx, &world.Regions[i], subMaps[i])
	}

	g.stage("routes")
	for i := range world.Regions {
		generateLocalRoutes(ctx, &world.Regions[i], subMaps[i])
	}

	g.stage("connections")
	connectRegions(ctx, world)

	g.stage("population")
	populate(ctx, world)

	g.stage("finalize")
	finalize(ctx, seed, world)

	return world, nil
}

func (g *Generator) stage(name string) {
	if g.Progress != nil {
		g.Progress(name)
	}
}

// finalize snapshots the string pool into the resource table and writes the
// header. Counts mirror the slice lengths by construction.
func finalize(ctx *context, seed int64, world *worlddata.WorldData) {
	world.Resources.Strings = ctx.pool.Strings()
	world.Header = worlddata.Header{
		Magic:       worlddata.Magic,
		Version:     worlddata.Version,
		Seed:        seed,
		Width:       ctx.width,
		Height:      ctx.height,
		RegionCount: len(world.Regions),
		NPCCount:    len(world.NPCs),
		ItemCount:   len(world.Items),
	}
}
