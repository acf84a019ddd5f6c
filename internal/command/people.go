package command

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/wildlands/internal/worlddata"
)

// nearbyNPCs gathers the NPC pool indices visible from where the player
// stands: the location's own people plus everyone in its buildings, or the
// region's freestanding NPCs at the region center.
func (s *Session) nearbyNPCs() []int {
	if loc := s.CurrentLocation(); loc != nil {
		refs := append([]int(nil), loc.NPCs...)
		for _, b := range loc.Buildings {
			refs = append(refs, b.NPCs...)
		}
		return refs
	}
	return s.CurrentRegion().NPCs
}

// nearbyItems gathers the item pool indices lying around the player.
func (s *Session) nearbyItems() []int {
	loc := s.CurrentLocation()
	if loc == nil {
		return nil
	}
	refs := append([]int(nil), loc.Items...)
	for _, b := range loc.Buildings {
		refs = append(refs, b.Items...)
	}
	return refs
}

func (c *Command) executeNPCs(s *Session) string {
	refs := s.nearbyNPCs()
	if len(refs) == 0 {
		return "There is nobody here."
	}

	var b strings.Builder
	b.WriteString("People here:\n")
	for _, idx := range refs {
		npc, err := s.World.NPCAt(idx)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "  - %s (level %d)\n", s.str(npc.NameID), npc.Level)
	}
	return b.String()
}

func (c *Command) executeTalk(s *Session) string {
	if err := c.RequireArgs(1, "Talk to whom? Usage: talk <npc name>"); err != nil {
		return err.Error()
	}

	want := strings.ToLower(c.GetTargetName())
	for _, idx := range s.nearbyNPCs() {
		npc, err := s.World.NPCAt(idx)
		if err != nil {
			continue
		}
		name := s.str(npc.NameID)
		if strings.Contains(strings.ToLower(name), want) {
			return fmt.Sprintf("%s says: \"%s\"", name, s.dialogueLine(idx, npc))
		}
	}
	return fmt.Sprintf("There is no '%s' here.", c.GetTargetName())
}

// dialogueLine rotates through an NPC's dialogue references across repeated
// conversations.
func (s *Session) dialogueLine(idx int, npc *worlddata.NPC) string {
	if len(npc.DialogueRefs) == 0 {
		return "..."
	}
	n := s.talkCounts[idx]
	s.talkCounts[idx] = n + 1

	ref := npc.DialogueRefs[n%len(npc.DialogueRefs)]
	if ref < 0 || ref >= len(s.World.Resources.Dialogues) {
		return "..."
	}
	return s.str(s.World.Resources.Dialogues[ref])
}

func (c *Command) executeItems(s *Session) string {
	refs := s.nearbyItems()
	if len(refs) == 0 {
		return "There is nothing of interest lying around."
	}

	var b strings.Builder
	b.WriteString("Items here:\n")
	for _, idx := range refs {
		item, err := s.World.ItemAt(idx)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "  - %s (%s, worth %d gold)\n", s.str(item.NameID), item.Type, item.Value)
	}
	return b.String()
}

func (c *Command) executeSave(s *Session) string {
	if s.Store == nil {
		return "No save store is configured."
	}
	slot := "autosave"
	if len(c.Args) > 0 {
		slot = c.Args[0]
	}
	if err := s.Store.Save(slot, s.World); err != nil {
		return fmt.Sprintf("Save failed: %v", err)
	}
	return fmt.Sprintf("World saved to slot '%s'.", slot)
}

func (c *Command) executeSaves(s *Session) string {
	if s.Store == nil {
		return "No save store is configured."
	}
	slots, err := s.Store.List()
	if err != nil {
		return fmt.Sprintf("Could not list saves: %v", err)
	}
	if len(slots) == 0 {
		return "There are no saved worlds."
	}

	var b strings.Builder
	b.WriteString("Saved worlds:\n")
	for _, sl := range slots {
		fmt.Fprintf(&b, "  - %s (seed %d, %dx%d, saved %s)\n",
			sl.Name, sl.Seed, sl.Width, sl.Height, sl.SavedAt.Format("2006-01-02 15:04"))
	}
	return b.String()
}
