// Package worlddata defines the serializable world aggregate produced by a
// generation pass. Everything here is a plain value type: the generator
// fills it in, hands it over, and never mutates it again, so the persistence
// layer can encode it verbatim.
package worlddata

import (
	"fmt"

	"github.com/lawnchairsociety/wildlands/internal/geom"
	"github.com/lawnchairsociety/wildlands/internal/strpool"
	"github.com/lawnchairsociety/wildlands/internal/terrain"
)

// Magic tags a serialized world so saves from other games are rejected early.
const Magic = "WILD"

// Version is bumped whenever the serialized layout changes shape.
const Version = 1

// Header carries the identifying metadata and the element counts, which must
// match the lengths of the corresponding slices.
type Header struct {
	Magic       string `json:"magic"`
	Version     int    `json:"version"`
	Seed        int64  `json:"seed"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	RegionCount int    `json:"region_count"`
	NPCCount    int    `json:"npc_count"`
	ItemCount   int    `json:"item_count"`
}

// Resources is the world's shared lookup data: the string pool plus the
// dialogue and quest tables. Quests stay empty at generation time; they are
// authored later against the generated world.
type Resources struct {
	Strings   []string     `json:"strings"`
	Dialogues []strpool.ID `json:"dialogues"`
	Quests    []Quest      `json:"quests"`
}

// Quest is a placeholder shape for the authored quest table.
type Quest struct {
	NameID        strpool.ID `json:"name_id"`
	DescriptionID strpool.ID `json:"description_id"`
}

// LocationType classifies a point of interest within a region.
type LocationType int

const (
	LocationTown LocationType = iota
	LocationVillage
	LocationDungeon
	LocationCave
	LocationRuin
	LocationLandmark
	LocationCamp
	LocationOutpost
	LocationTemple
	LocationLake
	LocationPeak

	locationTypeCount
)

var locationTypeNames = [locationTypeCount]string{
	"Town", "Village", "Dungeon", "Cave", "Ruin", "Landmark",
	"Camp", "Outpost", "Temple", "Lake", "Peak",
}

// String returns the display name of the location type.
func (t LocationType) String() string {
	if t < 0 || t >= locationTypeCount {
		return "Unknown"
	}
	return locationTypeNames[t]
}

// IsSettlement reports whether the type is Town or Village. Settlements are
// discovered from generation time; everything else starts hidden.
func (t LocationType) IsSettlement() bool {
	return t == LocationTown || t == LocationVillage
}

// EncounterType classifies a route encounter.
type EncounterType int

const (
	EncounterCombat EncounterType = iota
	EncounterNPC
	EncounterEvent
	EncounterDiscovery
)

var encounterTypeNames = [4]string{"Combat", "NPC", "Event", "Discovery"}

// String returns the display name of the encounter type.
func (t EncounterType) String() string {
	if t < 0 || int(t) >= len(encounterTypeNames) {
		return "Unknown"
	}
	return encounterTypeNames[t]
}

// ItemType classifies a generated item.
type ItemType int

const (
	ItemWeapon ItemType = iota
	ItemArmor
	ItemPotion
	ItemScroll
	ItemTreasure
	ItemTool

	itemTypeCount
)

var itemTypeNames = [itemTypeCount]string{
	"Weapon", "Armor", "Potion", "Scroll", "Treasure", "Tool",
}

// String returns the display name of the item type.
func (t ItemType) String() string {
	if t < 0 || t >= itemTypeCount {
		return "Unknown"
	}
	return itemTypeNames[t]
}

// ItemTypeCount is the number of item types, for uniform categorical draws.
const ItemTypeCount = int(itemTypeCount)

// TerrainCell is one entry of a region's serialized terrain sub-map.
type TerrainCell struct {
	X    int          `json:"x"`
	Y    int          `json:"y"`
	Type terrain.Type `json:"type"`
}

// Region is a named area of the map holding locations, its terrain sub-map,
// and its travel connections to other regions (indices into the global
// region list).
type Region struct {
	NameID        strpool.ID           `json:"name_id"`
	DescriptionID strpool.ID           `json:"description_id"`
	Position      geom.Vector2         `json:"position"`
	Terrain       terrain.Type         `json:"terrain"`
	TerrainCells  []TerrainCell        `json:"terrain_cells"`
	Locations     []Location           `json:"locations"`
	Connections   []int                `json:"connections"`
	Routes        map[int][]RoutePoint `json:"routes"`
	LocalRoutes   []LocalRoute         `json:"local_routes"`
	NPCs          []int                `json:"npcs"`
}

// LocalRoute connects two locations inside one region, identified by their
// indices in the region's location list.
type LocalRoute struct {
	From   int          `json:"from"`
	To     int          `json:"to"`
	Points []RoutePoint `json:"points"`
}

// Location is a point of interest owned by exactly one region. NPC and item
// entries index the global pools.
type Location struct {
	NameID        strpool.ID   `json:"name_id"`
	DescriptionID strpool.ID   `json:"description_id"`
	Type          LocationType `json:"type"`
	Discovered    bool         `json:"discovered"`
	Position      geom.Vector2 `json:"position"`
	Buildings     []Building   `json:"buildings"`
	NPCs          []int        `json:"npcs"`
	Items         []int        `json:"items"`
}

// Building is a structure inside a settlement location.
type Building struct {
	Kind          string     `json:"kind"`
	NameID        strpool.ID `json:"name_id"`
	DescriptionID strpool.ID `json:"description_id"`
	NPCs          []int      `json:"npcs"`
	Items         []int      `json:"items"`
}

// RoutePoint is the serialized narrative unit of one route segment:
// description, travel direction, landmarks, and the segment's encounter
// table.
type RoutePoint struct {
	DescriptionID strpool.ID  `json:"description_id"`
	DirectionID   strpool.ID  `json:"direction_id"`
	EncounterRate float64     `json:"encounter_rate"`
	Landmarks     []Landmark  `json:"landmarks"`
	Encounters    []Encounter `json:"encounters"`
}

// Landmark is a minor point of interest along a route segment.
type Landmark struct {
	NameID   strpool.ID   `json:"name_id"`
	Position geom.Vector2 `json:"position"`
}

// Encounter is a probabilistic event on a route segment.
type Encounter struct {
	Type          EncounterType `json:"type"`
	Probability   float64       `json:"probability"`
	DescriptionID strpool.ID    `json:"description_id"`
	Rewards       []Reward      `json:"rewards"`
}

// Reward is the payout of an encounter.
type Reward struct {
	Kind          string     `json:"kind"`
	Value         int        `json:"value"`
	DescriptionID strpool.ID `json:"description_id"`
}

// Stats is the four-attribute block shared by NPCs.
type Stats struct {
	Strength  int `json:"strength"`
	Agility   int `json:"agility"`
	Intellect int `json:"intellect"`
	Vitality  int `json:"vitality"`
}

// NPC is an entry in the global NPC pool. DialogueRefs index the shared
// dialogue table in Resources.
type NPC struct {
	NameID       strpool.ID `json:"name_id"`
	Level        int        `json:"level"`
	Health       int        `json:"health"`
	Stats        Stats      `json:"stats"`
	DialogueRefs []int      `json:"dialogue_refs"`
}

// Item is an entry in the global item pool.
type Item struct {
	NameID     strpool.ID `json:"name_id"`
	Type       ItemType   `json:"type"`
	Value      int        `json:"value"`
	Weight     int        `json:"weight"`
	Durability int        `json:"durability"`
}

// WorldData is the terminal artifact of a generation pass.
type WorldData struct {
	Header    Header    `json:"header"`
	Resources Resources `json:"resources"`
	Regions   []Region  `json:"regions"`
	NPCs      []NPC     `json:"npcs"`
	Items     []Item    `json:"items"`
}

// RegionAt returns the region at index i with bounds checking.
func (w *WorldData) RegionAt(i int) (*Region, error) {
	if i < 0 || i >= len(w.Regions) {
		return nil, fmt.Errorf("region index %d out of range (world has %d regions)", i, len(w.Regions))
	}
	return &w.Regions[i], nil
}

// NPCAt returns the NPC at index i with bounds checking.
func (w *WorldData) NPCAt(i int) (*NPC, error) {
	if i < 0 || i >= len(w.NPCs) {
		return nil, fmt.Errorf("npc index %d out of range (world has %d npcs)", i, len(w.NPCs))
	}
	return &w.NPCs[i], nil
}

// ItemAt returns the item at index i with bounds checking.
func (w *WorldData) ItemAt(i int) (*Item, error) {
	if i < 0 || i >= len(w.Items) {
		return nil, fmt.Errorf("item index %d out of range (world has %d items)", i, len(w.Items))
	}
	return &w.Items[i], nil
}

// ResolveString resolves a string pool ID against the resource table.
func (w *WorldData) ResolveString(id strpool.ID) (string, error) {
	if id < 0 || int(id) >= len(w.Resources.Strings) {
		return "", fmt.Errorf("string id %d out of range (pool has %d entries)", id, len(w.Resources.Strings))
	}
	return w.Resources.Strings[id], nil
}
