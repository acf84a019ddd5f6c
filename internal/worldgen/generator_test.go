package worldgen

import (
	"reflect"
	"testing"

	"github.com/lawnchairsociety/wildlands/internal/worlddata"
)

func TestGenerateWorldInvalidDimensions(t *testing.T) {
	if _, err := GenerateWorld(42, 0, 64); err == nil {
		t.Error("zero width should fail")
	}
	if _, err := GenerateWorld(42, 64, -1); err == nil {
		t.Error("negative height should fail")
	}
}

func TestGenerateWorldDeterministic(t *testing.T) {
	a, err := GenerateWorld(42, 64, 64)
	if err != nil {
		t.Fatalf("GenerateWorld failed: %v", err)
	}
	b, err := GenerateWorld(42, 64, 64)
	if err != nil {
		t.Fatalf("second GenerateWorld failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs with the same seed produced different worlds")
	}
}

func TestDifferentSeedsDifferentWorlds(t *testing.T) {
	a, err := GenerateWorld(42, 64, 64)
	if err != nil {
		t.Fatalf("GenerateWorld failed: %v", err)
	}
	b, err := GenerateWorld(43, 64, 64)
	if err != nil {
		t.Fatalf("GenerateWorld failed: %v", err)
	}
	if reflect.DeepEqual(a, b) {
		t.Error("seeds 42 and 43 produced identical worlds")
	}
}

func TestHeaderCounts(t *testing.T) {
	w, err := GenerateWorld(42, 64, 64)
	if err != nil {
		t.Fatalf("GenerateWorld failed: %v", err)
	}

	if w.Header.Magic != worlddata.Magic {
		t.Errorf("Header.Magic = %q, want %q", w.Header.Magic, worlddata.Magic)
	}
	if w.Header.Version != worlddata.Version {
		t.Errorf("Header.Version = %d, want %d", w.Header.Version, worlddata.Version)
	}
	if w.Header.Seed != 42 {
		t.Errorf("Header.Seed = %d, want 42", w.Header.Seed)
	}
	if w.Header.RegionCount != len(w.Regions) {
		t.Errorf("RegionCount = %d, Regions has %d", w.Header.RegionCount, len(w.Regions))
	}
	if w.Header.NPCCount != len(w.NPCs) {
		t.Errorf("NPCCount = %d, NPCs has %d", w.Header.NPCCount, len(w.NPCs))
	}
	if w.Header.ItemCount != len(w.Items) {
		t.Errorf("ItemCount = %d, Items has %d", w.Header.ItemCount, len(w.Items))
	}
	if len(w.Regions) == 0 {
		t.Error("world has no regions")
	}
	if len(w.NPCs) == 0 {
		t.Error("world has no NPCs")
	}
	if len(w.Items) == 0 {
		t.Error("world has no items")
	}
}

func TestZeroSeedIsRecorded(t *testing.T) {
	w, err := GenerateWorld(0, 32, 32)
	if err != nil {
		t.Fatalf("GenerateWorld failed: %v", err)
	}
	if w.Header.Seed == 0 {
		t.Error("seed 0 should be replaced by a drawn seed in the header")
	}
}

func TestProgressStages(t *testing.T) {
	g := New(42, 32, 32, nil)
	var stages []string
	g.Progress = func(stage string) { stages = append(stages, stage) }
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []string{"terrain", "regions", "locations", "routes", "connections", "population", "finalize"}
	if !reflect.DeepEqual(stages, want) {
		t.Errorf("stages = %v, want %v", stages, want)
	}
}
