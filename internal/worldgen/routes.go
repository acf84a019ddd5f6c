package worldgen

import (
	"github.com/lawnchairsociety/wildlands/internal/geom"
	"github.com/lawnchairsociety/wildlands/internal/pathfind"
	"github.com/lawnchairsociety/wildlands/internal/terrain"
	"github.com/lawnchairsociety/wildlands/internal/worlddata"
)

const (
	// routeSegmentCount is how many narrative segments a path is chopped
	// into. Short paths collapse to a single segment.
	routeSegmentCount = 4

	// nonSettlementRouteChance connects location pairs that are not both
	// settlements. Settlement pairs always connect.
	nonSettlementRouteChance = 0.5

	// landmarkChance is the per-segment odds of one landmark.
	landmarkChance = 0.3

	// Encounter rate tuning: base plus a terrain-difficulty modifier,
	// clamped to [minEncounterRate, maxEncounterRate].
	baseEncounterRate = 0.3
	minEncounterRate  = 0.1
	maxEncounterRate  = 0.8

	// interRegionDistance connects region pairs closer than this outright;
	// farther pairs still connect with interRegionChance.
	interRegionDistance = 30.0
	interRegionChance   = 0.3

	// terrainSampleCount is how many points along a path or segment the
	// majority-terrain and difficulty estimates sample.
	terrainSampleCount = 5
)

// generateLocalRoutes connects the locations inside one region. Any two
// settlements are always connected; other pairs connect with 50%
// probability, giving a mostly-connected but not complete graph.
func generateLocalRoutes(ctx *context, region *worlddata.Region, sub terrain.Map) {
	for i := 0; i < len(region.Locations); i++ {
		for j := i + 1; j < len(region.Locations); j++ {
			a := &region.Locations[i]
			b := &region.Locations[j]
			bothSettlements := a.Type.IsSettlement() && b.Type.IsSettlement()
			if !bothSettlements && ctx.rng.Float64() >= nonSettlementRouteChance {
				continue
			}
			points := buildRoute(ctx, sub, geom.GridOf(a.Position), geom.GridOf(b.Position))
			region.LocalRoutes = append(region.LocalRoutes, worlddata.LocalRoute{
				From:   i,
				To:     j,
				Points: points,
			})
		}
	}
}

// connectRegions wires the inter-region graph: pairs closer than the
// distance threshold always connect, the rest with a flat 30% chance.
// Connections are added as a mutual pair, with a route generated in each
// direction. Global reachability is deliberately not enforced; isolated
// clusters are possible by construction.
func connectRegions(ctx *context, world *worlddata.WorldData) {
	for i := 0; i < len(world.Regions); i++ {
		for j := i + 1; j < len(world.Regions); j++ {
			ci := geom.GridOf(world.Regions[i].Position)
			cj := geom.GridOf(world.Regions[j].Position)
			if ci.DistanceTo(cj) >= interRegionDistance && ctx.rng.Float64() >= interRegionChance {
				continue
			}
			world.Regions[i].Connections = append(world.Regions[i].Connections, j)
			world.Regions[j].Connections = append(world.Regions[j].Connections, i)
			world.Regions[i].Routes[j] = buildRoute(ctx, ctx.terrain, ci, cj)
			world.Regions[j].Routes[i] = buildRoute(ctx, ctx.terrain, cj, ci)
		}
	}
}

// buildRoute pathfinds between two cells and turns the result into route
// points. When A* cannot reach the goal (sealed off by rivers, say) the
// path degrades to the direct two-point line; routes are narrative flavor,
// not traversal guarantees.
func buildRoute(ctx *context, m terrain.Map, start, goal geom.Grid) []worlddata.RoutePoint {
	path := routePath(m, start, goal)
	base := generateEncounters(ctx, majorityTerrain(m, path))

	var points []worlddata.RoutePoint
	for _, seg := range splitPath(path) {
		points = append(points, buildSegment(ctx, m, seg, base))
	}
	return points
}

// routePath is the traversal path of a route: the A* result, or the direct
// two-point line when the goal is unreachable.
func routePath(m terrain.Map, start, goal geom.Grid) []geom.Grid {
	if path, ok := pathfind.FindPath(m, start, goal); ok {
		return path
	}
	return []geom.Grid{start, goal}
}

// splitPath chops a path into up to routeSegmentCount pieces of roughly
// equal length. Consecutive segments share their boundary cell so travel
// narration never skips ground.
func splitPath(path []geom.Grid) [][]geom.Grid {
	if len(path) <= routeSegmentCount+1 {
		return [][]geom.Grid{path}
	}
	segments := make([][]geom.Grid, 0, routeSegmentCount)
	last := len(path) - 1
	for s := 0; s < routeSegmentCount; s++ {
		lo := s * last / routeSegmentCount
		hi := (s + 1) * last / routeSegmentCount
		segments = append(segments, path[lo:hi+1])
	}
	return segments
}

// buildSegment synthesizes one route point: terrain-keyed description,
// compass direction phrase, encounter rate, optional landmark, and the
// segment's copy of the base encounter table.
func buildSegment(ctx *context, m terrain.Map, seg []geom.Grid, base []worlddata.Encounter) worlddata.RoutePoint {
	segTerrain := majorityTerrain(m, seg)

	rate := baseEncounterRate + (averageCost(m, seg)-1.0)*0.25
	if rate < minEncounterRate {
		rate = minEncounterRate
	}
	if rate > maxEncounterRate {
		rate = maxEncounterRate
	}

	point := worlddata.RoutePoint{
		DescriptionID: ctx.pickID(ctx.tables.RouteDescriptions[segTerrain.String()]),
		DirectionID:   ctx.intern("head " + geom.Compass(seg[0], seg[len(seg)-1])),
		EncounterRate: rate,
		Encounters:    copyEncounters(base),
	}

	if ctx.rng.Float64() < landmarkChance {
		// Near the midpoint with small jitter; only placed if the jittered
		// cell actually exists in the map.
		mid := seg[len(seg)/2]
		spot := geom.Grid{
			X: mid.X + ctx.rng.Intn(3) - 1,
			Y: mid.Y + ctx.rng.Intn(3) - 1,
		}
		if _, exists := m[spot]; exists {
			point.Landmarks = append(point.Landmarks, worlddata.Landmark{
				NameID:   ctx.pickID(ctx.tables.LandmarkNames),
				Position: spot.Vector2(),
			})
			point.Encounters = append(point.Encounters, discoveryEncounter(ctx, segTerrain))
		}
	}

	return point
}

// majorityTerrain samples a handful of evenly spaced cells along pts and
// votes; ties fall to the lowest enum value. Cells missing from the map are
// skipped, and an empty sample defaults to Plains.
func majorityTerrain(m terrain.Map, pts []geom.Grid) terrain.Type {
	if len(pts) == 0 {
		return terrain.Plains
	}
	step := len(pts) / terrainSampleCount
	if step < 1 {
		step = 1
	}

	var counts [len(terrainTypes)]int
	for i := 0; i < len(pts); i += step {
		if t, ok := m[pts[i]]; ok {
			counts[t]++
		}
	}

	best := terrain.Plains
	bestCount := 0
	for _, t := range terrainTypes {
		if counts[t] > bestCount {
			best = t
			bestCount = counts[t]
		}
	}
	return best
}

// averageCost estimates segment difficulty as the mean movement cost of the
// sampled cells. Cells outside the map count as open ground.
func averageCost(m terrain.Map, pts []geom.Grid) float64 {
	if len(pts) == 0 {
		return 1.0
	}
	step := len(pts) / terrainSampleCount
	if step < 1 {
		step = 1
	}

	total := 0.0
	n := 0
	for i := 0; i < len(pts); i += step {
		cost := 1.0
		if t, ok := m[pts[i]]; ok {
			cost = terrain.MovementCost(t)
		}
		total += cost
		n++
	}
	return total / float64(n)
}
