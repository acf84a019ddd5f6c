package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lawnchairsociety/wildlands/internal/geom"
	"github.com/lawnchairsociety/wildlands/internal/save"
	"github.com/lawnchairsociety/wildlands/internal/strpool"
	"github.com/lawnchairsociety/wildlands/internal/terrain"
	"github.com/lawnchairsociety/wildlands/internal/worlddata"
	"github.com/lawnchairsociety/wildlands/internal/worldgen"
)

func main() {
	seed := flag.Int64("seed", 0, "World seed (0 draws a fresh seed)")
	width := flag.Int("width", 128, "Map width in cells")
	height := flag.Int("height", 128, "Map height in cells")
	inputFile := flag.String("input", "", "Render an existing snapshot file instead of generating")
	region := flag.Int("region", -1, "Region number to detail (-1 for all regions)")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	showLegend := flag.Bool("legend", true, "Show legend")
	flag.Parse()

	var world *worlddata.WorldData
	var err error
	if *inputFile != "" {
		world, err = save.ReadFile(*inputFile)
	} else {
		world, err = worldgen.GenerateWorld(*seed, *width, *height)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var output strings.Builder

	fmt.Fprintf(&output, "World Map (Seed: %d, %dx%d, %d regions)\n",
		world.Header.Seed, world.Header.Width, world.Header.Height, world.Header.RegionCount)
	output.WriteString(strings.Repeat("=", 60) + "\n\n")

	renderWorld(&output, world)

	for i := range world.Regions {
		if *region >= 0 && i != *region {
			continue
		}
		renderRegion(&output, world, i)
		output.WriteString("\n")
	}

	if *showLegend {
		output.WriteString(getLegend())
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Map written to %s\n", *outputFile)
	} else {
		fmt.Print(output.String())
	}
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

// renderWorld composites every region's terrain cells onto one grid. Cells
// outside any region window stay blank.
func renderWorld(output *strings.Builder, world *worlddata.WorldData) {
	w, h := world.Header.Width, world.Header.Height
	grid := make([][]byte, h)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(" ", w))
	}

	plot := func(x, y int, glyph byte) {
		if x >= 0 && x < w && y >= 0 && y < h {
			grid[y][x] = glyph
		}
	}

	for _, region := range world.Regions {
		for _, cell := range region.TerrainCells {
			plot(cell.X, cell.Y, terrainGlyphs[cell.Type])
		}
	}
	for i, region := range world.Regions {
		for _, loc := range region.Locations {
			p := geom.GridOf(loc.Position)
			plot(p.X, p.Y, '*')
		}
		center := geom.GridOf(region.Position)
		plot(center.X, center.Y, byte('0'+i%10))
	}

	for _, row := range grid {
		output.Write(row)
		output.WriteByte('\n')
	}
	output.WriteString("\n")
}

func renderRegion(output *strings.Builder, world *worlddata.WorldData, i int) {
	region := &world.Regions[i]
	name := resolve(world, region.NameID)

	fmt.Fprintf(output, "Region %d: %s\n", i, name)
	output.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(output, "  Terrain: %s at (%.0f, %.0f)\n",
		region.Terrain, region.Position.X, region.Position.Y)
	fmt.Fprintf(output, "  %s\n", resolve(world, region.DescriptionID))

	if len(region.Locations) > 0 {
		output.WriteString("  Locations:\n")
		for _, loc := range region.Locations {
			marker := " "
			if loc.Discovered {
				marker = "*"
			}
			fmt.Fprintf(output, "    [%s] %-28s %s (%.0f, %.0f)\n",
				marker, truncate(resolve(world, loc.NameID), 28), loc.Type,
				loc.Position.X, loc.Position.Y)
		}
	}

	if len(region.Connections) > 0 {
		conns := make([]int, len(region.Connections))
		copy(conns, region.Connections)
		sort.Ints(conns)

		var parts []string
		for _, j := range conns {
			segs := len(region.Routes[j])
			parts = append(parts, fmt.Sprintf("%d (%d segments)", j, segs))
		}
		fmt.Fprintf(output, "  Connects to: %s\n", strings.Join(parts, ", "))
	}
}

func resolve(world *worlddata.WorldData, id strpool.ID) string {
	s, err := world.ResolveString(id)
	if err != nil {
		return "(unknown)"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func getLegend() string {
	return `
Legend:
  .   Plains       f   Forest       M   Mountain
  d   Desert       s   Swamp        c   Coast
  h   Hills        C   Canyon       ~   River
  *   Location     0-9 Region center (index mod 10)
  [*] Discovered location
`
}
