package worldgen

import (
	"github.com/lawnchairsociety/wildlands/internal/geom"
	"github.com/lawnchairsociety/wildlands/internal/terrain"
	"github.com/lawnchairsociety/wildlands/internal/worlddata"
)

const (
	// minLocationSpacing keeps locations inside one region apart.
	minLocationSpacing = 4.0

	// locationPlacementAttempts bounds the search for one location's spot.
	// Exhausting it skips that location; the region just ends up smaller.
	locationPlacementAttempts = 20
)

// generateLocations fills a region with its points of interest. Plains and
// Hills regions always get a Town at the center, pre-marked discovered;
// 3-6 further locations are placed by rejection sampling and typed from the
// (region terrain, cell terrain) table.
func generateLocations(ctx *context, region *worlddata.Region, sub terrain.Map) {
	center := geom.GridOf(region.Position)
	var placed []geom.Grid

	if region.Terrain == terrain.Plains || region.Terrain == terrain.Hills {
		region.Locations = append(region.Locations, makeLocation(ctx, worlddata.LocationTown, center))
		placed = append(placed, center)
	}

	count := 3 + ctx.rng.Intn(4)
	for i := 0; i < count; i++ {
		pos, ok := findLocationSpot(ctx, sub, center, placed)
		if !ok {
			continue
		}
		typ := locationTypeFor(ctx, region.Terrain, sub[pos])
		region.Locations = append(region.Locations, makeLocation(ctx, typ, pos))
		placed = append(placed, pos)
	}
}

// findLocationSpot rejection-samples a cell of the region window: it must
// exist in the sub-map, not be a river, and keep the minimum spacing from
// everything already placed.
func findLocationSpot(ctx *context, sub terrain.Map, center geom.Grid, placed []geom.Grid) (geom.Grid, bool) {
	span := 2*regionRadius + 1
	for attempt := 0; attempt < locationPlacementAttempts; attempt++ {
		cand := geom.Grid{
			X: center.X + ctx.rng.Intn(span) - regionRadius,
			Y: center.Y + ctx.rng.Intn(span) - regionRadius,
		}
		t, ok := sub[cand]
		if !ok || t == terrain.River {
			continue
		}

		tooClose := false
		for _, p := range placed {
			if cand.DistanceTo(p) < minLocationSpacing {
				tooClose = true
				break
			}
		}
		if !tooClose {
			return cand, true
		}
	}
	return geom.Grid{}, false
}

// locationTypeFor maps (region terrain, local cell terrain) to a location
// type, with Landmark as the universal fallback. River cells always become
// lakes regardless of the surrounding region.
func locationTypeFor(ctx *context, regionTerrain, cellTerrain terrain.Type) worlddata.LocationType {
	if cellTerrain == terrain.River {
		return worlddata.LocationLake
	}
	switch regionTerrain {
	case terrain.Mountain:
		return pickType(ctx, worlddata.LocationCave, worlddata.LocationPeak, worlddata.LocationDungeon)
	case terrain.Hills:
		return pickType(ctx, worlddata.LocationDungeon, worlddata.LocationRuin)
	case terrain.Forest:
		return pickType(ctx, worlddata.LocationCamp, worlddata.LocationTemple)
	case terrain.Plains:
		return pickType(ctx, worlddata.LocationVillage, worlddata.LocationOutpost)
	case terrain.Desert:
		return pickType(ctx, worlddata.LocationRuin, worlddata.LocationTemple)
	case terrain.Swamp:
		return pickType(ctx, worlddata.LocationDungeon, worlddata.LocationRuin)
	case terrain.Coast:
		return pickType(ctx, worlddata.LocationVillage, worlddata.LocationLake)
	case terrain.Canyon:
		return pickType(ctx, worlddata.LocationCave, worlddata.LocationDungeon)
	default:
		return worlddata.LocationLandmark
	}
}

func pickType(ctx *context, types ...worlddata.LocationType) worlddata.LocationType {
	return types[ctx.rng.Intn(len(types))]
}

// makeLocation names a location from the lore tables and, for settlements,
// raises its buildings. Settlements start discovered; everything else stays
// hidden until the player finds it.
func makeLocation(ctx *context, typ worlddata.LocationType, pos geom.Grid) worlddata.Location {
	loc := worlddata.Location{
		NameID:        ctx.pickID(ctx.tables.LocationNames[typ.String()]),
		DescriptionID: ctx.pickID(ctx.tables.LocationDescriptions[typ.String()]),
		Type:          typ,
		Discovered:    typ.IsSettlement(),
		Position:      pos.Vector2(),
	}
	if typ.IsSettlement() {
		generateBuildings(ctx, &loc)
	}
	return loc
}

// extraBuildingKinds is the draw pool for settlement buildings beyond the
// guaranteed ones.
var extraBuildingKinds = []string{
	"Blacksmith", "Temple", "Guard Post", "Tavern", "General Store",
}

// generateBuildings raises the buildings of a settlement. Towns always get
// an Inn and a Market plus 2-4 extras; villages get an Inn plus 0-2 extras.
// Extras are drawn without replacement.
func generateBuildings(ctx *context, loc *worlddata.Location) {
	kinds := []string{"Inn"}
	extras := 0
	if loc.Type == worlddata.LocationTown {
		kinds = append(kinds, "Market")
		extras = 2 + ctx.rng.Intn(3)
	} else {
		extras = ctx.rng.Intn(3)
	}

	pool := make([]string, len(extraBuildingKinds))
	copy(pool, extraBuildingKinds)
	ctx.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if extras > len(pool) {
		extras = len(pool)
	}
	kinds = append(kinds, pool[:extras]...)

	for _, kind := range kinds {
		loc.Buildings = append(loc.Buildings, worlddata.Building{
			Kind:          kind,
			NameID:        ctx.pickID(ctx.tables.BuildingNames[kind]),
			DescriptionID: ctx.pickID(ctx.tables.BuildingDescriptions[kind]),
		})
	}
}
