package worlddata

import "testing"

func TestIsSettlement(t *testing.T) {
	if !LocationTown.IsSettlement() {
		t.Error("Town should be a settlement")
	}
	if !LocationVillage.IsSettlement() {
		t.Error("Village should be a settlement")
	}
	for _, typ := range []LocationType{
		LocationDungeon, LocationCave, LocationRuin, LocationLandmark,
		LocationCamp, LocationOutpost, LocationTemple, LocationLake, LocationPeak,
	} {
		if typ.IsSettlement() {
			t.Errorf("%v should not be a settlement", typ)
		}
	}
}

func TestLocationTypeString(t *testing.T) {
	if LocationDungeon.String() != "Dungeon" {
		t.Errorf("String() = %q, want Dungeon", LocationDungeon.String())
	}
	if LocationType(-1).String() != "Unknown" {
		t.Error("out-of-range type should stringify as Unknown")
	}
}

func TestBoundsCheckedAccessors(t *testing.T) {
	w := &WorldData{
		Regions: make([]Region, 2),
		NPCs:    make([]NPC, 3),
		Items:   make([]Item, 1),
	}

	if _, err := w.RegionAt(1); err != nil {
		t.Errorf("RegionAt(1) failed: %v", err)
	}
	if _, err := w.RegionAt(2); err == nil {
		t.Error("RegionAt(2) should fail")
	}
	if _, err := w.NPCAt(-1); err == nil {
		t.Error("NPCAt(-1) should fail")
	}
	if _, err := w.ItemAt(0); err != nil {
		t.Errorf("ItemAt(0) failed: %v", err)
	}
	if _, err := w.ItemAt(5); err == nil {
		t.Error("ItemAt(5) should fail")
	}
}

func TestResolveString(t *testing.T) {
	w := &WorldData{Resources: Resources{Strings: []string{"alpha", "beta"}}}
	s, err := w.ResolveString(1)
	if err != nil {
		t.Fatalf("ResolveString(1) failed: %v", err)
	}
	if s != "beta" {
		t.Errorf("ResolveString(1) = %q, want beta", s)
	}
	if _, err := w.ResolveString(2); err == nil {
		t.Error("ResolveString(2) should fail")
	}
}
