// Package save persists generated worlds, either as compressed snapshot
// files or as rows in a SQL save store.
package save

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/lawnchairsociety/wildlands/internal/worlddata"
)

// Encode writes a world to w as zstd-compressed JSON.
func Encode(w io.Writer, world *worlddata.WorldData) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("failed to create compressor: %w", err)
	}
	if err := json.NewEncoder(enc).Encode(world); err != nil {
		enc.Close()
		return fmt.Errorf("failed to encode world: %w", err)
	}
	return enc.Close()
}

// Decode reads a world back from r and validates its header before
// returning it. Saves from other games or incompatible versions are
// rejected.
func Decode(r io.Reader) (*worlddata.WorldData, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create decompressor: %w", err)
	}
	defer dec.Close()

	var world worlddata.WorldData
	if err := json.NewDecoder(dec).Decode(&world); err != nil {
		return nil, fmt.Errorf("failed to decode world: %w", err)
	}
	if err := validate(&world); err != nil {
		return nil, err
	}
	return &world, nil
}

// WriteFile saves a world snapshot at path, creating the directory if
// needed.
func WriteFile(path string, world *worlddata.WorldData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create save file: %w", err)
	}
	defer f.Close()
	return Encode(f, world)
}

// ReadFile loads a world snapshot from path.
func ReadFile(path string) (*worlddata.WorldData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open save file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// validate checks the header against the decoded content.
func validate(world *worlddata.WorldData) error {
	h := world.Header
	if h.Magic != worlddata.Magic {
		return fmt.Errorf("bad magic %q, want %q", h.Magic, worlddata.Magic)
	}
	if h.Version != worlddata.Version {
		return fmt.Errorf("unsupported save version %d, want %d", h.Version, worlddata.Version)
	}
	if h.RegionCount != len(world.Regions) {
		return fmt.Errorf("header claims %d regions, save holds %d", h.RegionCount, len(world.Regions))
	}
	if h.NPCCount != len(world.NPCs) {
		return fmt.Errorf("header claims %d npcs, save holds %d", h.NPCCount, len(world.NPCs))
	}
	if h.ItemCount != len(world.Items) {
		return fmt.Errorf("header claims %d items, save holds %d", h.ItemCount, len(world.Items))
	}
	return nil
}
