package geom

import "math"

// Vector2 is a 2D position in world space. It is the form positions take on
// the public data model; internal lookups use Grid so float equality never
// decides a map hit.
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Grid is an integer grid cell, usable as a map key.
type Grid struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Vector2 converts a grid cell to its world-space position.
func (g Grid) Vector2() Vector2 {
	return Vector2{X: float64(g.X), Y: float64(g.Y)}
}

// GridOf converts a world-space position back to its grid cell. Positions on
// the data model always originate from integer cells, so truncation is exact.
func GridOf(v Vector2) Grid {
	return Grid{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}

// DistanceTo returns the Euclidean distance between two grid cells.
func (g Grid) DistanceTo(o Grid) float64 {
	dx := float64(o.X - g.X)
	dy := float64(o.Y - g.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceTo returns the Euclidean distance between two positions.
func (v Vector2) DistanceTo(o Vector2) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Neighbors returns the 8-connected neighborhood of a cell. Callers filter
// out cells that fall outside their map.
func (g Grid) Neighbors() [8]Grid {
	return [8]Grid{
		{g.X - 1, g.Y - 1}, {g.X, g.Y - 1}, {g.X + 1, g.Y - 1},
		{g.X - 1, g.Y}, {g.X + 1, g.Y},
		{g.X - 1, g.Y + 1}, {g.X, g.Y + 1}, {g.X + 1, g.Y + 1},
	}
}

// Bearing returns the compass bearing from one cell to another in degrees,
// with 0 = north and angles increasing clockwise. Grid Y grows southward.
func Bearing(from, to Grid) float64 {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	deg := math.Atan2(dx, -dy) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

var compassNames = [8]string{
	"north", "northeast", "east", "southeast",
	"south", "southwest", "west", "northwest",
}

// Compass buckets the bearing between two cells into one of the eight
// compass directions. Identical cells report north.
func Compass(from, to Grid) string {
	deg := Bearing(from, to)
	idx := int(math.Floor((deg+22.5)/45)) % 8
	return compassNames[idx]
}
