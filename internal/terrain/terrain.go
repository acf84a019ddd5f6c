package terrain

import "github.com/lawnchairsociety/wildlands/internal/geom"

// Type classifies a single grid cell. The set is closed; rivers are laid
// down last and may overwrite a cell's initial classification.
type Type int

const (
	Plains Type = iota
	Forest
	Mountain
	Desert
	Swamp
	Coast
	Hills
	Canyon
	River

	typeCount
)

var typeNames = [typeCount]string{
	"Plains", "Forest", "Mountain", "Desert", "Swamp",
	"Coast", "Hills", "Canyon", "River",
}

// String returns the display name of the terrain type.
func (t Type) String() string {
	if t < 0 || t >= typeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// Types returns all terrain types in enumeration order.
func Types() []Type {
	out := make([]Type, typeCount)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// Map holds the terrain classification for every generated cell, keyed by
// integer grid position.
type Map map[geom.Grid]Type

// MovementCost returns the pathfinding cost multiplier for a terrain type.
// All multipliers are >= 1, which keeps plain Euclidean distance admissible
// as an A* heuristic.
func MovementCost(t Type) float64 {
	switch t {
	case Mountain:
		return 3.0
	case River:
		return 2.5
	case Swamp:
		return 2.0
	case Hills:
		return 1.5
	case Forest:
		return 1.3
	default:
		return 1.0
	}
}
