package command

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lawnchairsociety/wildlands/internal/geom"
	"github.com/lawnchairsociety/wildlands/internal/terrain"
	"github.com/lawnchairsociety/wildlands/internal/worlddata"
)

func (c *Command) executeLook(s *Session) string {
	region := s.CurrentRegion()

	if loc := s.CurrentLocation(); loc != nil {
		return s.describeLocation(loc)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", s.str(region.NameID), s.str(region.DescriptionID))
	fmt.Fprintf(&b, "The land here is mostly %s.\n", strings.ToLower(region.Terrain.String()))

	if len(region.Locations) > 0 {
		b.WriteString("\nPlaces of note:\n")
		for i, loc := range region.Locations {
			name := s.str(loc.NameID)
			if !loc.Discovered {
				name = "an unexplored " + strings.ToLower(loc.Type.String())
			}
			fmt.Fprintf(&b, "  %d. %s (%s)\n", i+1, name, loc.Type)
		}
	}

	if len(region.Connections) > 0 {
		fmt.Fprintf(&b, "\nRoads lead to %d other region(s). Type 'regions' to list them.\n", len(region.Connections))
	}

	return b.String()
}

func (s *Session) describeLocation(loc *worlddata.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n%s\n", s.str(loc.NameID), loc.Type, s.str(loc.DescriptionID))

	if len(loc.Buildings) > 0 {
		b.WriteString("\nBuildings:\n")
		for _, bld := range loc.Buildings {
			fmt.Fprintf(&b, "  - %s: %s\n", s.str(bld.NameID), s.str(bld.DescriptionID))
		}
	}
	if len(loc.NPCs) > 0 || hasBuildingNPCs(loc) {
		b.WriteString("\nThere are people here. Type 'npcs' to see them.\n")
	}
	if len(loc.Items) > 0 {
		fmt.Fprintf(&b, "\nSomething catches your eye. Type 'items' to look closer.\n")
	}

	return b.String()
}

func hasBuildingNPCs(loc *worlddata.Location) bool {
	for _, b := range loc.Buildings {
		if len(b.NPCs) > 0 {
			return true
		}
	}
	return false
}

func (c *Command) executeWhere(s *Session) string {
	region := s.CurrentRegion()
	pos := region.Position
	if loc := s.CurrentLocation(); loc != nil {
		return fmt.Sprintf("You are at %s, in the region of %s (%.0f, %.0f).",
			s.str(loc.NameID), s.str(region.NameID), loc.Position.X, loc.Position.Y)
	}
	return fmt.Sprintf("You are in the region of %s (%.0f, %.0f).",
		s.str(region.NameID), pos.X, pos.Y)
}

func (c *Command) executeRegions(s *Session) string {
	region := s.CurrentRegion()
	if len(region.Connections) == 0 {
		return "No roads lead out of this region."
	}

	// Connections are stored in generation order; present them sorted by
	// region index so the numbering is stable.
	conns := make([]int, len(region.Connections))
	copy(conns, region.Connections)
	sort.Ints(conns)

	here := geom.GridOf(region.Position)
	var b strings.Builder
	b.WriteString("Connected regions:\n")
	for _, idx := range conns {
		target := &s.World.Regions[idx]
		dir := geom.Compass(here, geom.GridOf(target.Position))
		fmt.Fprintf(&b, "  %d. %s, to the %s (%s)\n",
			idx+1, s.str(target.NameID), dir, strings.ToLower(target.Terrain.String()))
	}
	b.WriteString("\nType 'travel <number>' to set out.")
	return b.String()
}

func (c *Command) executeTravel(s *Session) string {
	if err := c.RequireArgs(1, "Travel where? Usage: travel <region number>"); err != nil {
		return err.Error()
	}

	n, err := strconv.Atoi(c.Args[0])
	if err != nil {
		return fmt.Sprintf("'%s' is not a region number. Type 'regions' to list destinations.", c.Args[0])
	}
	target := n - 1

	region := s.CurrentRegion()
	connected := false
	for _, idx := range region.Connections {
		if idx == target {
			connected = true
			break
		}
	}
	if !connected {
		return "No road leads there from this region."
	}

	var b strings.Builder
	for _, p := range region.Routes[target] {
		fmt.Fprintf(&b, "You %s. %s\n", s.str(p.DirectionID), s.str(p.DescriptionID))
		for _, lm := range p.Landmarks {
			fmt.Fprintf(&b, "You pass %s.\n", s.str(lm.NameID))
		}
	}

	s.Region = target
	s.Location = -1

	dest := s.CurrentRegion()
	fmt.Fprintf(&b, "\nYou arrive in %s.\n", s.str(dest.NameID))
	return b.String()
}

func (c *Command) executeVisit(s *Session) string {
	if err := c.RequireArgs(1, "Visit where? Usage: visit <location name or number>"); err != nil {
		return err.Error()
	}

	region := s.CurrentRegion()
	target := -1

	if n, err := strconv.Atoi(c.Args[0]); err == nil {
		if n >= 1 && n <= len(region.Locations) {
			target = n - 1
		}
	} else {
		want := strings.ToLower(c.GetTargetName())
		for i := range region.Locations {
			name := strings.ToLower(s.str(region.Locations[i].NameID))
			if strings.Contains(name, want) {
				target = i
				break
			}
		}
	}

	if target < 0 {
		return fmt.Sprintf("There is no '%s' in this region. Type 'look' to see what's here.", c.GetTargetName())
	}
	if target == s.Location {
		return "You are already there."
	}

	var b strings.Builder
	if points := localRoutePoints(region, s.Location, target); points != nil {
		for _, p := range points {
			fmt.Fprintf(&b, "You %s. %s\n", s.str(p.DirectionID), s.str(p.DescriptionID))
		}
		b.WriteString("\n")
	}

	s.Location = target
	loc := &region.Locations[target]
	if !loc.Discovered {
		loc.Discovered = true
		fmt.Fprintf(&b, "*** You have discovered %s! ***\n\n", s.str(loc.NameID))
	}
	b.WriteString(s.describeLocation(loc))
	return b.String()
}

// localRoutePoints finds the stored route between two locations of a region,
// in either direction. Travel from the region center has no stored route.
func localRoutePoints(region *worlddata.Region, from, to int) []worlddata.RoutePoint {
	for _, lr := range region.LocalRoutes {
		if (lr.From == from && lr.To == to) || (lr.From == to && lr.To == from) {
			return lr.Points
		}
	}
	return nil
}

func (c *Command) executeLeave(s *Session) string {
	if s.Location < 0 {
		return "You are not inside any location."
	}
	s.Location = -1
	return fmt.Sprintf("You return to the open land of %s.", s.str(s.CurrentRegion().NameID))
}

var terrainGlyphs = map[terrain.Type]byte{
	terrain.Plains:   '.',
	terrain.Forest:   'f',
	terrain.Mountain: 'M',
	terrain.Desert:   'd',
	terrain.Swamp:    's',
	terrain.Coast:    'c',
	terrain.Hills:    'h',
	terrain.Canyon:   'C',
	terrain.River:    '~',
}

func (c *Command) executeMap(s *Session) string {
	region := s.CurrentRegion()
	if len(region.TerrainCells) == 0 {
		return "No map is available for this region."
	}

	minX, minY := region.TerrainCells[0].X, region.TerrainCells[0].Y
	maxX, maxY := minX, minY
	for _, cell := range region.TerrainCells {
		if cell.X < minX {
			minX = cell.X
		}
		if cell.X > maxX {
			maxX = cell.X
		}
		if cell.Y < minY {
			minY = cell.Y
		}
		if cell.Y > maxY {
			maxY = cell.Y
		}
	}

	grid := make([][]byte, maxY-minY+1)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", maxX-minX+1))
	}
	for _, cell := range region.TerrainCells {
		grid[cell.Y-minY][cell.X-minX] = terrainGlyphs[cell.Type]
	}

	// Mark locations and the region center.
	center := geom.GridOf(region.Position)
	mark(grid, center.X-minX, center.Y-minY, '+')
	for _, loc := range region.Locations {
		p := geom.GridOf(loc.Position)
		glyph := byte('?')
		if loc.Discovered {
			glyph = '*'
		}
		mark(grid, p.X-minX, p.Y-minY, glyph)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.str(region.NameID))
	for _, row := range grid {
		b.Write(row)
		b.WriteByte('\n')
	}
	b.WriteString("\n+ region center  * discovered location  ? unexplored location\n")
	return b.String()
}

func mark(grid [][]byte, x, y int, glyph byte) {
	if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
		grid[y][x] = glyph
	}
}
