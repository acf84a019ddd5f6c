package lore

// Tables holds every piece of flavor text the world generator draws from.
// Map keys are terrain names, location types, or building kinds as produced
// by their String methods. The generation algorithms never contain prose;
// they only pick from these tables.
type Tables struct {
	RegionPrefixes     map[string][]string `yaml:"region_prefixes"`
	RegionSuffixes     []string            `yaml:"region_suffixes"`
	RegionDescriptions map[string][]string `yaml:"region_descriptions"`

	LocationNames        map[string][]string `yaml:"location_names"`
	LocationDescriptions map[string][]string `yaml:"location_descriptions"`

	BuildingNames        map[string][]string `yaml:"building_names"`
	BuildingDescriptions map[string][]string `yaml:"building_descriptions"`

	RouteDescriptions     map[string][]string `yaml:"route_descriptions"`
	LandmarkNames         []string            `yaml:"landmark_names"`
	EncounterDescriptions map[string][]string `yaml:"encounter_descriptions"`
	RewardDescriptions    map[string][]string `yaml:"reward_descriptions"`

	FirstNames    []string `yaml:"first_names"`
	LastNames     []string `yaml:"last_names"`
	DialogueLines []string `yaml:"dialogue_lines"`

	ItemPrefixes []string `yaml:"item_prefixes"`
	ItemNouns    []string `yaml:"item_nouns"`
	ItemSuffixes []string `yaml:"item_suffixes"`
}

// Defaults returns the built-in tables. A YAML file can override any section
// wholesale via Load; sections absent from the file keep these values.
func Defaults() *Tables {
	return &Tables{
		RegionPrefixes: map[string][]string{
			"Plains":   {"Golden", "Windswept", "Verdant", "Quiet"},
			"Forest":   {"Whispering", "Tangled", "Elder", "Mossy"},
			"Mountain": {"Frostpeak", "Granite", "Thundering", "Broken"},
			"Desert":   {"Scorched", "Amber", "Shifting", "Sunbaked"},
			"Swamp":    {"Mirewater", "Sunken", "Fetid", "Drowned"},
			"Coast":    {"Saltspray", "Pearl", "Stormwatch", "Gull"},
			"Hills":    {"Rolling", "Heather", "Shepherd's", "Misty"},
			"Canyon":   {"Redstone", "Echoing", "Riven", "Dustwind"},
			"River":    {"Silverrun", "Fordside", "Eddying", "Reedbank"},
		},
		RegionSuffixes: []string{
			"Reach", "Expanse", "Wilds", "Marches", "Vale", "Lowlands", "Heights", "Barrens",
		},
		RegionDescriptions: map[string][]string{
			"Plains":   {"Open grassland rolls to the horizon, broken only by the occasional lone tree."},
			"Forest":   {"Dense canopy swallows the light here, and the undergrowth muffles every footstep."},
			"Mountain": {"Jagged peaks claw at the sky, their flanks streaked with old snow."},
			"Desert":   {"Heat shimmers over endless dunes, and the wind tastes of grit."},
			"Swamp":    {"Black water pools between gnarled roots, and the air hangs thick and sour."},
			"Coast":    {"Waves hammer the shale below while seabirds wheel overhead."},
			"Hills":    {"Gentle slopes fold into one another, dotted with grazing sheep and old cairns."},
			"Canyon":   {"Sheer rock walls drop away into shadow, carved by a river long gone."},
			"River":    {"A broad waterway winds through the land, glittering where the sun strikes it."},
		},
		LocationNames: map[string][]string{
			"Town":     {"Bramblemoor", "Oakstead", "Fallowmere", "Thornwick", "Emberhollow"},
			"Village":  {"Dunhollow", "Ashford", "Willowbrook", "Greywater", "Peatfield"},
			"Dungeon":  {"The Sunken Vault", "Gloomdelve", "The Forgotten Halls", "Blackroot Warren"},
			"Cave":     {"Echo Hollow", "The Whistling Caverns", "Batwing Grotto", "Coldstone Cave"},
			"Ruin":     {"The Shattered Court", "Old Varenhold", "The Toppled Spires", "Kingsfall"},
			"Landmark": {"The Standing Stones", "The Hanging Rock", "The Old Watchfire", "Giant's Seat"},
			"Camp":     {"The Waylaid Camp", "Hunter's Rest", "The Charred Circle", "Drifter's Hollow"},
			"Outpost":  {"Fort Bray", "The Border Post", "Watchman's Rise", "The Palisade"},
			"Temple":   {"The Silent Shrine", "The Moonwell", "Sanctum of the Veil", "The Weeping Altar"},
			"Lake":     {"Mirrormere", "The Still Water", "Loch Harrow", "The Drowned Meadow"},
			"Peak":     {"The Widow's Crown", "Stormspire", "The Broken Tooth", "Eagle's Perch"},
		},
		LocationDescriptions: map[string][]string{
			"Town":     {"A bustling settlement of timber and stone, its streets loud with trade."},
			"Village":  {"A cluster of thatched cottages huddled around a well-worn green."},
			"Dungeon":  {"A yawning entrance descends into worked stone older than any living memory."},
			"Cave":     {"A dark mouth in the rock exhales cold, mineral-scented air."},
			"Ruin":     {"Crumbled walls and toppled columns hint at grander days."},
			"Landmark": {"A curious feature of the land that travelers use to find their bearings."},
			"Camp":     {"A ring of cold firepits and trampled ground, recently abandoned."},
			"Outpost":  {"A stockade of sharpened logs guarding the road beyond."},
			"Temple":   {"Weathered steps climb to an altar still tended by unseen hands."},
			"Lake":     {"Still water stretches out, mirroring the sky."},
			"Peak":     {"The summit commands a view of the whole region on a clear day."},
		},
		BuildingNames: map[string][]string{
			"Inn":           {"The Sleeping Giant", "The Crooked Flagon", "The Last Candle", "The Wayfarer's Rest"},
			"Market":        {"The Grand Bazaar", "Market Row", "The Tradehall", "Coppersquare"},
			"Blacksmith":    {"The Ember Anvil", "Ironsong Forge", "The Bent Nail"},
			"Temple":        {"The Chapel of Dawn", "The Quiet Sanctuary", "The Votive Hall"},
			"Guard Post":    {"The Watchhouse", "The North Barracks", "The Gatehouse"},
			"Tavern":        {"The Rusty Tankard", "The Dancing Badger", "The Empty Barrel"},
			"General Store": {"Odds & Ends", "The Provisioner", "Hartley's Goods"},
		},
		BuildingDescriptions: map[string][]string{
			"Inn":           {"Warm light spills from the windows, and the smell of stew drifts out the door."},
			"Market":        {"Stalls crowd together under canvas awnings, hawkers crying their wares."},
			"Blacksmith":    {"The ring of hammer on anvil carries down the street."},
			"Temple":        {"Incense and candlelight fill the quiet interior."},
			"Guard Post":    {"Armored figures watch the road from behind a stout palisade."},
			"Tavern":        {"Laughter and the clatter of dice spill out into the night."},
			"General Store": {"Shelves sag under sacks, tools, rope, and everything a traveler forgot to pack."},
		},
		RouteDescriptions: map[string][]string{
			"Plains":   {"The trail cuts through waist-high grass that hisses in the wind."},
			"Forest":   {"The path winds between ancient trunks, half-lost under fallen leaves."},
			"Mountain": {"The way climbs over scree and bare rock, narrowing to a ledge in places."},
			"Desert":   {"Marker stones keep the route from vanishing into the drifting sand."},
			"Swamp":    {"Rotting planks bridge the worst of the mire, slick underfoot."},
			"Coast":    {"The track hugs the cliffline, salt spray drifting up from below."},
			"Hills":    {"The road rises and falls over one grassy crest after another."},
			"Canyon":   {"The path squeezes between towering walls of banded stone."},
			"River":    {"The route follows the bank, crossing at a shallow ford."},
		},
		LandmarkNames: []string{
			"a lightning-split oak", "a moss-covered milestone", "a collapsed watchtower",
			"a ring of standing stones", "an abandoned wagon", "a weathered stone idol",
			"a hangman's tree", "an old battlefield cairn",
		},
		EncounterDescriptions: map[string][]string{
			"Plains":   {"Figures rise from the tall grass ahead.", "Dust on the horizon resolves into riders."},
			"Forest":   {"Branches crack somewhere off the path.", "Eyes glint between the trees."},
			"Mountain": {"Loose stones clatter down from above.", "A shape crouches on the ledge overhead."},
			"Desert":   {"Something stirs beneath the sand.", "A ragged band shelters in the lee of a dune."},
			"Swamp":    {"The water ripples where nothing should move.", "A pale light bobs over the mire."},
			"Coast":    {"Wreckage on the shore is not as empty as it looks.", "A horn sounds from a hidden cove."},
			"Hills":    {"A shepherd waves you down urgently.", "Campfire smoke curls from behind the next rise."},
			"Canyon":   {"An echo answers that no one made.", "Rocks have been piled into a crude barricade."},
			"River":    {"Something large glides beneath the surface.", "A ferryman beckons from a crossing that isn't on any map."},
		},
		RewardDescriptions: map[string][]string{
			"Gold": {"a purse of worn coins", "a scattering of silver and gold", "a lockbox of coinage"},
			"Item": {"a bundle wrapped in oilcloth", "a trinket of obvious value", "a well-kept piece of gear"},
		},
		FirstNames: []string{
			"Aldric", "Berta", "Corwin", "Dagny", "Edmund", "Freya", "Gareth", "Hilda",
			"Ivor", "Jora", "Kellan", "Lisbet", "Merek", "Nyssa", "Osric", "Petra",
		},
		LastNames: []string{
			"Ashdown", "Blackbriar", "Coppervein", "Dunmore", "Elderwood", "Frostbeard",
			"Grimsby", "Hollowell", "Ironside", "Kettleworth", "Longstride", "Marshlight",
		},
		DialogueLines: []string{
			"Strange weather we've been having, don't you think?",
			"Keep to the roads after dark, if you know what's good for you.",
			"I heard the old ruin up the way isn't as empty as it looks.",
			"Coin's been tight since the caravans stopped coming.",
			"You're not from around here, are you?",
			"They say the river changed course the year the tower fell.",
			"If you're heading into the hills, take a warm cloak.",
			"The innkeeper waters the ale. Everyone knows. Nobody says.",
		},
		ItemPrefixes: []string{
			"Iron", "Worn", "Sturdy", "Fine", "Ancient", "Gleaming", "Rough", "Silvered",
		},
		ItemNouns: []string{
			"Sword", "Axe", "Buckler", "Helm", "Cloak", "Ring", "Amulet", "Dagger",
			"Staff", "Boots", "Lantern", "Tome",
		},
		ItemSuffixes: []string{
			"of Embers", "of the Fox", "of Warding", "of the Deep", "of Whispers",
			"of the North Wind", "of Forgotten Kings",
		},
	}
}
