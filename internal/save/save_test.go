package save

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lawnchairsociety/wildlands/internal/worlddata"
	"github.com/lawnchairsociety/wildlands/internal/worldgen"
)

func testWorld(t *testing.T) *worlddata.WorldData {
	t.Helper()
	w, err := worldgen.GenerateWorld(42, 32, 32)
	if err != nil {
		t.Fatalf("GenerateWorld failed: %v", err)
	}
	return w
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	world := testWorld(t)

	var buf bytes.Buffer
	if err := Encode(&buf, world); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(world, got) {
		t.Error("decoded world differs from original")
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	world := testWorld(t)
	world.Header.Magic = "NOPE"

	var buf bytes.Buffer
	if err := Encode(&buf, world); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := Decode(&buf); err == nil {
		t.Error("expected decode to reject bad magic")
	}
}

func TestDecodeRejectsCountMismatch(t *testing.T) {
	world := testWorld(t)
	world.Header.RegionCount++

	var buf bytes.Buffer
	if err := Encode(&buf, world); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := Decode(&buf); err == nil {
		t.Error("expected decode to reject region count mismatch")
	}
}

func TestFileRoundTrip(t *testing.T) {
	world := testWorld(t)
	path := filepath.Join(t.TempDir(), "saves", "world.wild")

	if err := WriteFile(path, world); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !reflect.DeepEqual(world, got) {
		t.Error("world read from file differs from original")
	}
}

func TestStoreSaveLoad(t *testing.T) {
	store, err := Open(Config{Driver: "sqlite", SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	world := testWorld(t)
	if err := store.Save("slot1", world); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load("slot1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(world, got) {
		t.Error("world loaded from store differs from original")
	}
}

func TestStoreOverwritesSlot(t *testing.T) {
	store, err := Open(Config{Driver: "sqlite", SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	first := testWorld(t)
	if err := store.Save("slot1", first); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second, err := worldgen.GenerateWorld(99, 32, 32)
	if err != nil {
		t.Fatalf("GenerateWorld failed: %v", err)
	}
	if err := store.Save("slot1", second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := store.Load("slot1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Header.Seed != 99 {
		t.Errorf("loaded seed = %d, want 99", got.Header.Seed)
	}

	slots, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(slots) != 1 {
		t.Errorf("List returned %d slots, want 1", len(slots))
	}
}

func TestStoreListAndDelete(t *testing.T) {
	store, err := Open(Config{Driver: "sqlite", SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	world := testWorld(t)
	if err := store.Save("alpha", world); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save("beta", world); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	slots, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("List returned %d slots, want 2", len(slots))
	}
	for _, sl := range slots {
		if sl.Seed != world.Header.Seed {
			t.Errorf("slot %q seed = %d, want %d", sl.Name, sl.Seed, world.Header.Seed)
		}
	}

	if err := store.Delete("alpha"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Load("alpha"); err == nil {
		t.Error("expected load of deleted slot to fail")
	}

	// Deleting a missing slot is fine.
	if err := store.Delete("missing"); err != nil {
		t.Errorf("Delete of missing slot failed: %v", err)
	}
}

func TestLoadMissingSlot(t *testing.T) {
	store, err := Open(Config{Driver: "sqlite", SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, err := store.Load("nothing"); err == nil {
		t.Error("expected load of empty store to fail")
	}
}
