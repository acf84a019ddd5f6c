package command

import (
	"strings"
	"testing"

	"github.com/lawnchairsociety/wildlands/internal/worldgen"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	world, err := worldgen.GenerateWorld(42, 64, 64)
	if err != nil {
		t.Fatalf("GenerateWorld failed: %v", err)
	}
	return NewSession(world, nil)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantArgs int
	}{
		{"look", "look", 0},
		{"TRAVEL 3", "travel", 1},
		{"visit old mill", "visit", 2},
		{"", "", 0},
		{"   ", "", 0},
	}

	for _, tt := range tests {
		cmd := ParseCommand(tt.input)
		if cmd.Name != tt.wantName {
			t.Errorf("ParseCommand(%q).Name = %q, want %q", tt.input, cmd.Name, tt.wantName)
		}
		if len(cmd.Args) != tt.wantArgs {
			t.Errorf("ParseCommand(%q) has %d args, want %d", tt.input, len(cmd.Args), tt.wantArgs)
		}
	}
}

func TestNewSessionStartsAtTown(t *testing.T) {
	s := testSession(t)
	region := s.CurrentRegion()

	found := false
	for _, loc := range region.Locations {
		if loc.Discovered && loc.Type.IsSettlement() {
			found = true
		}
	}
	if !found {
		t.Error("starting region has no discovered settlement")
	}
	if s.Location != -1 {
		t.Errorf("session starts at location %d, want region center (-1)", s.Location)
	}
}

func TestLookDescribesRegion(t *testing.T) {
	s := testSession(t)
	out := ParseCommand("look").Execute(s)

	name := s.str(s.CurrentRegion().NameID)
	if !strings.Contains(out, name) {
		t.Errorf("look output missing region name %q:\n%s", name, out)
	}
}

func TestVisitDiscoversLocation(t *testing.T) {
	s := testSession(t)
	region := s.CurrentRegion()

	target := -1
	for i, loc := range region.Locations {
		if !loc.Discovered {
			target = i
			break
		}
	}
	if target < 0 {
		t.Skip("starting region has no undiscovered location")
	}

	cmd := ParseCommand("visit " + itoa(target+1))
	out := cmd.Execute(s)

	if !region.Locations[target].Discovered {
		t.Error("visited location was not discovered")
	}
	if !strings.Contains(out, "discovered") {
		t.Errorf("visit output missing discovery banner:\n%s", out)
	}
	if s.Location != target {
		t.Errorf("session location = %d, want %d", s.Location, target)
	}
}

func TestVisitUnknownLocation(t *testing.T) {
	s := testSession(t)
	out := ParseCommand("visit xyzzy").Execute(s)
	if !strings.Contains(out, "no 'xyzzy'") {
		t.Errorf("unexpected output for unknown location:\n%s", out)
	}
}

func TestTravelFollowsConnection(t *testing.T) {
	s := testSession(t)
	region := s.CurrentRegion()
	if len(region.Connections) == 0 {
		t.Skip("starting region has no connections")
	}

	target := region.Connections[0]
	out := ParseCommand("travel " + itoa(target+1)).Execute(s)

	if s.Region != target {
		t.Errorf("session region = %d, want %d", s.Region, target)
	}
	if !strings.Contains(out, "You arrive in") {
		t.Errorf("travel output missing arrival line:\n%s", out)
	}
}

func TestTravelRejectsUnconnectedRegion(t *testing.T) {
	s := testSession(t)
	region := s.CurrentRegion()

	connected := make(map[int]bool)
	for _, idx := range region.Connections {
		connected[idx] = true
	}
	target := -1
	for i := range s.World.Regions {
		if i != s.Region && !connected[i] {
			target = i
			break
		}
	}
	if target < 0 {
		t.Skip("starting region connects to every other region")
	}

	before := s.Region
	out := ParseCommand("travel " + itoa(target+1)).Execute(s)
	if s.Region != before {
		t.Error("travel moved the player to an unconnected region")
	}
	if !strings.Contains(out, "No road") {
		t.Errorf("unexpected output for unconnected travel:\n%s", out)
	}
}

func TestLeaveReturnsToRegionCenter(t *testing.T) {
	s := testSession(t)
	if len(s.CurrentRegion().Locations) == 0 {
		t.Skip("starting region has no locations")
	}

	ParseCommand("visit 1").Execute(s)
	if s.Location != 0 {
		t.Fatalf("visit did not move the player (location %d)", s.Location)
	}

	ParseCommand("leave").Execute(s)
	if s.Location != -1 {
		t.Errorf("leave left the player at location %d", s.Location)
	}
}

func TestMapDrawsGrid(t *testing.T) {
	s := testSession(t)
	out := ParseCommand("map").Execute(s)
	if !strings.Contains(out, "+") {
		t.Errorf("map output missing region center marker:\n%s", out)
	}
}

func TestTalkRotatesDialogue(t *testing.T) {
	s := testSession(t)
	refs := s.nearbyNPCs()
	if len(refs) == 0 {
		t.Skip("nobody near the starting position")
	}

	npc, err := s.World.NPCAt(refs[0])
	if err != nil {
		t.Fatalf("NPCAt failed: %v", err)
	}
	name := s.str(npc.NameID)

	first := ParseCommand("talk " + name).Execute(s)
	if !strings.Contains(first, name) {
		t.Errorf("talk output missing NPC name:\n%s", first)
	}

	ParseCommand("talk " + name).Execute(s)
	if s.talkCounts[refs[0]] != 2 {
		t.Errorf("talk count = %d after two conversations, want 2", s.talkCounts[refs[0]])
	}
}

func TestSaveWithoutStore(t *testing.T) {
	s := testSession(t)
	out := ParseCommand("save").Execute(s)
	if !strings.Contains(out, "No save store") {
		t.Errorf("unexpected output for save without store:\n%s", out)
	}
}

func TestQuitSetsFlag(t *testing.T) {
	s := testSession(t)
	ParseCommand("quit").Execute(s)
	if !s.Quit {
		t.Error("quit did not set the session flag")
	}
}

func TestUnknownCommand(t *testing.T) {
	s := testSession(t)
	out := ParseCommand("frobnicate").Execute(s)
	if !strings.Contains(out, "Unknown command") {
		t.Errorf("unexpected output for unknown command:\n%s", out)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
