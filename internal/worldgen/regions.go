package worldgen

import (
	"github.com/lawnchairsociety/wildlands/internal/geom"
	"github.com/lawnchairsociety/wildlands/internal/terrain"
	"github.com/lawnchairsociety/wildlands/internal/worlddata"
)

const (
	// minRegionSpacing is the minimum Euclidean distance between any two
	// accepted region centers.
	minRegionSpacing = 15.0

	// minRegionArea divides the map area to get the target region count.
	minRegionArea = 400

	// regionPlacementAttempts bounds the rejection-sampling loop. Running
	// out of attempts just means fewer regions, never an error.
	regionPlacementAttempts = 100

	// regionRadius is the half-width of the square window of terrain a
	// region claims as its local sub-map.
	regionRadius = 10
)

// placeRegionCenters picks region centers by rejection sampling: random
// cells are accepted only when they keep the minimum spacing from every
// earlier center and do not sit on a river. Sparse maps are an accepted
// outcome of the attempt budget, not a failure.
func placeRegionCenters(ctx *context) []geom.Grid {
	target := ctx.width * ctx.height / minRegionArea
	if target < 1 {
		target = 1
	}

	var centers []geom.Grid
	for attempt := 0; attempt < regionPlacementAttempts && len(centers) < target; attempt++ {
		cand := geom.Grid{X: ctx.rng.Intn(ctx.width), Y: ctx.rng.Intn(ctx.height)}
		if ctx.terrain[cand] == terrain.River {
			continue
		}

		tooClose := false
		for _, c := range centers {
			if cand.DistanceTo(c) < minRegionSpacing {
				tooClose = true
				break
			}
		}
		if !tooClose {
			centers = append(centers, cand)
		}
	}
	return centers
}

// buildRegion carves the local terrain window around a center, derives the
// dominant terrain, and names the region from the lore tables. The returned
// sub-map keeps grid keys for route pathfinding; the region itself stores
// the serializable cell list.
func buildRegion(ctx *context, center geom.Grid) (worlddata.Region, terrain.Map) {
	sub := make(terrain.Map)
	var cells []worlddata.TerrainCell
	var counts [len(terrainTypes)]int

	for y := center.Y - regionRadius; y <= center.Y+regionRadius; y++ {
		for x := center.X - regionRadius; x <= center.X+regionRadius; x++ {
			pos := geom.Grid{X: x, Y: y}
			t, ok := ctx.terrain[pos]
			if !ok {
				continue
			}
			sub[pos] = t
			cells = append(cells, worlddata.TerrainCell{X: x, Y: y, Type: t})
			counts[t]++
		}
	}

	// Dominant terrain by majority; ties fall to the lowest enum value.
	dominant := terrain.Plains
	best := 0
	for _, t := range terrainTypes {
		if counts[t] > best {
			dominant = t
			best = counts[t]
		}
	}

	name := ctx.pick(ctx.tables.RegionPrefixes[dominant.String()]) + " " + ctx.pick(ctx.tables.RegionSuffixes)
	region := worlddata.Region{
		NameID:        ctx.intern(name),
		DescriptionID: ctx.pickID(ctx.tables.RegionDescriptions[dominant.String()]),
		Position:      center.Vector2(),
		Terrain:       dominant,
		TerrainCells:  cells,
		Routes:        make(map[int][]worlddata.RoutePoint),
	}
	return region, sub
}

// terrainTypes caches the enumeration order used for deterministic majority
// votes.
var terrainTypes = func() [9]terrain.Type {
	var out [9]terrain.Type
	copy(out[:], terrain.Types())
	return out
}()
