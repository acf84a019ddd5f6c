// Package command implements the console command interpreter played against
// a generated world.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lawnchairsociety/wildlands/internal/save"
	"github.com/lawnchairsociety/wildlands/internal/strpool"
	"github.com/lawnchairsociety/wildlands/internal/worlddata"
)

// Session is the mutable play state: the world, where the player is, and the
// optional save store. Location -1 means the player stands at the region
// center rather than inside a point of interest.
type Session struct {
	World    *worlddata.WorldData
	Region   int
	Location int
	Store    *save.Store

	// talkCounts rotates dialogue lines per NPC index so repeated
	// conversations don't repeat the same line.
	talkCounts map[int]int

	// Quit is set once the player asks to leave the game.
	Quit bool
}

// NewSession starts a session at the center of the starting region: the
// first region holding a discovered Town, or region 0 as a fallback.
func NewSession(world *worlddata.WorldData, store *save.Store) *Session {
	start := 0
found:
	for ri, region := range world.Regions {
		for _, loc := range region.Locations {
			if loc.Type == worlddata.LocationTown && loc.Discovered {
				start = ri
				break found
			}
		}
	}
	return &Session{
		World:      world,
		Region:     start,
		Location:   -1,
		Store:      store,
		talkCounts: make(map[int]int),
	}
}

// CurrentRegion returns the region the player stands in.
func (s *Session) CurrentRegion() *worlddata.Region {
	return &s.World.Regions[s.Region]
}

// CurrentLocation returns the location the player stands in, or nil at the
// region center.
func (s *Session) CurrentLocation() *worlddata.Location {
	if s.Location < 0 {
		return nil
	}
	return &s.CurrentRegion().Locations[s.Location]
}

// str looks up a pool string, falling back to a placeholder on bad IDs so a
// corrupt save degrades gracefully instead of crashing the console.
func (s *Session) str(id strpool.ID) string {
	v, err := s.World.ResolveString(id)
	if err != nil {
		return "(unknown)"
	}
	return v
}

type Command struct {
	Name string
	Args []string
}

// RequireArgs checks if the command has at least the minimum number of arguments
// Returns an error with the usage message if not enough arguments are provided
func (c *Command) RequireArgs(min int, usage string) error {
	if len(c.Args) < min {
		return errors.New(usage)
	}
	return nil
}

// GetTargetName joins all arguments into a single name (for multi-word targets)
func (c *Command) GetTargetName() string {
	return strings.Join(c.Args, " ")
}

func ParseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Name: "", Args: []string{}}
	}

	return &Command{
		Name: strings.ToLower(parts[0]),
		Args: parts[1:],
	}
}

func (c *Command) Execute(s *Session) string {
	switch c.Name {
	case "", "help":
		return c.executeHelp()
	case "look", "l", "examine", "ex":
		return c.executeLook(s)
	case "where":
		return c.executeWhere(s)
	case "regions":
		return c.executeRegions(s)
	case "travel", "t":
		return c.executeTravel(s)
	case "visit", "v", "go":
		return c.executeVisit(s)
	case "leave", "back":
		return c.executeLeave(s)
	case "map", "m":
		return c.executeMap(s)
	case "npcs", "who":
		return c.executeNPCs(s)
	case "talk", "speak":
		return c.executeTalk(s)
	case "items", "loot":
		return c.executeItems(s)
	case "save":
		return c.executeSave(s)
	case "saves":
		return c.executeSaves(s)
	case "quit", "exit":
		s.Quit = true
		return "Goodbye!"
	default:
		return fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", c.Name)
	}
}

func (c *Command) executeHelp() string {
	topic := ""
	if len(c.Args) > 0 {
		topic = strings.ToLower(strings.Join(c.Args, " "))
	}

	switch topic {
	case "look", "l", "examine", "ex":
		return `LOOK
Describe where you are: the region or location, its terrain, and what
stands nearby.

Aliases: l, examine, ex`

	case "travel", "t":
		return `TRAVEL <region number>
Travel to a connected region. Use 'regions' to see which regions connect
to this one. The journey is narrated segment by segment, including any
landmarks passed along the way.

Alias: t`

	case "visit", "v", "go":
		return `VISIT <location>
Walk to a location inside the current region, by name or by number from
'look'. Visiting a location discovers it.

Aliases: v, go`

	case "map", "m":
		return `MAP
Draw the terrain of the current region as a character grid.

Legend: . plains  f forest  M mountain  d desert  s swamp
        c coast   h hills   C canyon    ~ river

Alias: m`

	case "regions":
		return `REGIONS
List the regions connected to the one you stand in, numbered for use
with 'travel'.`

	case "talk", "speak":
		return `TALK <npc name>
Talk to an NPC standing nearby. Repeat conversations cycle through
their dialogue.

Alias: speak`

	case "save":
		return `SAVE [slot]
Save the world into the named slot (default "autosave"). Requires a
configured save store.`

	case "":
		return `
Available Commands:
  help [topic]      - Show this help message or help for a specific command
  look (l)          - Describe your surroundings
  where             - Show your position in the world
  map (m)           - Draw the current region's terrain
  regions           - List connected regions
  travel (t) <n>    - Travel to a connected region
  visit (v) <name>  - Walk to a location in this region
  leave (back)      - Return to the region center
  npcs (who)        - List the people around you
  talk <npc>        - Talk to an NPC
  items (loot)      - List items lying around
  save [slot]       - Save the world to a slot
  saves             - List saved worlds
  quit              - Leave the game

Type 'help <command>' for more information about a specific command.
`

	default:
		return fmt.Sprintf("No help available for '%s'.\nType 'help' for a list of commands.", topic)
	}
}
