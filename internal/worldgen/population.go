package worldgen

import (
	"github.com/lawnchairsociety/wildlands/internal/worlddata"
)

// populate fills the global NPC and item pools and wires index references
// from regions, locations, and buildings. The dialogue table is published
// first so NPC dialogue references have something to point at.
func populate(ctx *context, world *worlddata.WorldData) {
	for _, line := range ctx.tables.DialogueLines {
		world.Resources.Dialogues = append(world.Resources.Dialogues, ctx.intern(line))
	}

	for ri := range world.Regions {
		region := &world.Regions[ri]

		// 2-4 freestanding NPCs per region.
		count := 2 + ctx.rng.Intn(3)
		for i := 0; i < count; i++ {
			region.NPCs = append(region.NPCs, appendNPC(ctx, world))
		}

		for li := range region.Locations {
			loc := &region.Locations[li]

			for bi := range loc.Buildings {
				b := &loc.Buildings[bi]
				for i := 0; i < buildingNPCCount(ctx, b.Kind); i++ {
					b.NPCs = append(b.NPCs, appendNPC(ctx, world))
				}
				for i := 0; i < buildingItemCount(ctx, b.Kind); i++ {
					b.Items = append(b.Items, appendItem(ctx, world))
				}
			}

			// Wilderness sites can hold something worth scavenging.
			if !loc.Type.IsSettlement() {
				for i := 0; i < ctx.rng.Intn(3); i++ {
					loc.Items = append(loc.Items, appendItem(ctx, world))
				}
			}
		}
	}
}

// appendNPC adds a fresh NPC to the global pool and returns its index.
func appendNPC(ctx *context, world *worlddata.WorldData) int {
	idx := len(world.NPCs)
	world.NPCs = append(world.NPCs, randomNPC(ctx, len(world.Resources.Dialogues)))
	return idx
}

// appendItem adds a fresh item to the global pool and returns its index.
func appendItem(ctx *context, world *worlddata.WorldData) int {
	idx := len(world.Items)
	world.Items = append(world.Items, randomItem(ctx))
	return idx
}

// randomNPC rolls one NPC: name from the first/last cross product, level
// 1-9, health 50-99, four stats in [5, 15), and 2-4 dialogue references.
func randomNPC(ctx *context, dialogueCount int) worlddata.NPC {
	name := ctx.pick(ctx.tables.FirstNames) + " " + ctx.pick(ctx.tables.LastNames)
	npc := worlddata.NPC{
		NameID: ctx.intern(name),
		Level:  1 + ctx.rng.Intn(9),
		Health: 50 + ctx.rng.Intn(50),
		Stats: worlddata.Stats{
			Strength:  5 + ctx.rng.Intn(10),
			Agility:   5 + ctx.rng.Intn(10),
			Intellect: 5 + ctx.rng.Intn(10),
			Vitality:  5 + ctx.rng.Intn(10),
		},
	}

	refs := 2 + ctx.rng.Intn(3)
	for i := 0; i < refs && dialogueCount > 0; i++ {
		npc.DialogueRefs = append(npc.DialogueRefs, ctx.rng.Intn(dialogueCount))
	}
	return npc
}

// magicalItemChance upgrades an item name to the three-part form.
const magicalItemChance = 0.3

// randomItem rolls one item: prefix + noun, with a 30% chance of a magical
// suffix, uniform type, and stats in fixed ranges.
func randomItem(ctx *context) worlddata.Item {
	name := ctx.pick(ctx.tables.ItemPrefixes) + " " + ctx.pick(ctx.tables.ItemNouns)
	if ctx.rng.Float64() < magicalItemChance {
		name += " " + ctx.pick(ctx.tables.ItemSuffixes)
	}
	return worlddata.Item{
		NameID:     ctx.intern(name),
		Type:       worlddata.ItemType(ctx.rng.Intn(worlddata.ItemTypeCount)),
		Value:      10 + ctx.rng.Intn(190),
		Weight:     1 + ctx.rng.Intn(20),
		Durability: 20 + ctx.rng.Intn(80),
	}
}

// buildingNPCCount is type-dependent: busier buildings hold more people.
func buildingNPCCount(ctx *context, kind string) int {
	switch kind {
	case "Inn":
		return 2 + ctx.rng.Intn(2)
	case "Market":
		return 3 + ctx.rng.Intn(3)
	case "Guard Post":
		return 2 + ctx.rng.Intn(2)
	case "Temple":
		return 2
	default:
		return 1 + ctx.rng.Intn(2)
	}
}

// buildingItemCount follows the same pattern for stocked goods.
func buildingItemCount(ctx *context, kind string) int {
	switch kind {
	case "Market":
		return 3 + ctx.rng.Intn(4)
	case "General Store":
		return 2 + ctx.rng.Intn(3)
	case "Blacksmith":
		return 1 + ctx.rng.Intn(3)
	default:
		return ctx.rng.Intn(2)
	}
}
