package worldgen

import (
	"github.com/lawnchairsociety/wildlands/internal/terrain"
	"github.com/lawnchairsociety/wildlands/internal/worlddata"
)

const (
	// rewardChance is the odds that an encounter carries a reward.
	rewardChance = 0.7
)

// generateEncounters builds the 2-4 base encounters of a route, typed by
// weighted draw and described by the route's predominant terrain.
func generateEncounters(ctx *context, t terrain.Type) []worlddata.Encounter {
	count := 2 + ctx.rng.Intn(3)
	out := make([]worlddata.Encounter, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, randomEncounter(ctx, t, randomEncounterType(ctx)))
	}
	return out
}

// randomEncounterType draws Combat 40%, NPC 30%, Event 20%, Discovery 10%.
func randomEncounterType(ctx *context) worlddata.EncounterType {
	r := ctx.rng.Float64()
	switch {
	case r < 0.4:
		return worlddata.EncounterCombat
	case r < 0.7:
		return worlddata.EncounterNPC
	case r < 0.9:
		return worlddata.EncounterEvent
	default:
		return worlddata.EncounterDiscovery
	}
}

// randomEncounter builds one encounter with probability in [0.2, 0.5) and
// a reward roughly 70% of the time.
func randomEncounter(ctx *context, t terrain.Type, typ worlddata.EncounterType) worlddata.Encounter {
	enc := worlddata.Encounter{
		Type:          typ,
		Probability:   0.2 + ctx.rng.Float64()*0.3,
		DescriptionID: ctx.pickID(ctx.tables.EncounterDescriptions[t.String()]),
	}
	if ctx.rng.Float64() < rewardChance {
		enc.Rewards = append(enc.Rewards, randomReward(ctx))
	}
	return enc
}

// discoveryEncounter is the extra encounter a landmark contributes to its
// segment.
func discoveryEncounter(ctx *context, t terrain.Type) worlddata.Encounter {
	return randomEncounter(ctx, t, worlddata.EncounterDiscovery)
}

// randomReward draws Gold or Item evenly, valued in [10, 100).
func randomReward(ctx *context) worlddata.Reward {
	kind := "Gold"
	if ctx.rng.Intn(2) == 1 {
		kind = "Item"
	}
	return worlddata.Reward{
		Kind:          kind,
		Value:         10 + ctx.rng.Intn(90),
		DescriptionID: ctx.pickID(ctx.tables.RewardDescriptions[kind]),
	}
}

// copyEncounters deep-copies an encounter table so segments never alias the
// shared base set.
func copyEncounters(base []worlddata.Encounter) []worlddata.Encounter {
	out := make([]worlddata.Encounter, len(base))
	for i, enc := range base {
		out[i] = enc
		if len(enc.Rewards) > 0 {
			out[i].Rewards = make([]worlddata.Reward, len(enc.Rewards))
			copy(out[i].Rewards, enc.Rewards)
		}
	}
	return out
}
