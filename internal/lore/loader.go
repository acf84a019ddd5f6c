package lore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML lore file and overlays it on the defaults. Sections the
// file leaves out keep their built-in values, so a file can override just
// the name lists, say, without restating every table.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lore file: %w", err)
	}

	var override Tables
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse lore YAML: %w", err)
	}

	tables := Defaults()
	merge(tables, &override)
	return tables, nil
}

// merge replaces whole sections of dst with any non-empty section of src.
func merge(dst, src *Tables) {
	if len(src.RegionPrefixes) > 0 {
		dst.RegionPrefixes = src.RegionPrefixes
	}
	if len(src.RegionSuffixes) > 0 {
		dst.RegionSuffixes = src.RegionSuffixes
	}
	if len(src.RegionDescriptions) > 0 {
		dst.RegionDescriptions = src.RegionDescriptions
	}
	if len(src.LocationNames) > 0 {
		dst.LocationNames = src.LocationNames
	}
	if len(src.LocationDescriptions) > 0 {
		dst.LocationDescriptions = src.LocationDescriptions
	}
	if len(src.BuildingNames) > 0 {
		dst.BuildingNames = src.BuildingNames
	}
	if len(src.BuildingDescriptions) > 0 {
		dst.BuildingDescriptions = src.BuildingDescriptions
	}
	if len(src.RouteDescriptions) > 0 {
		dst.RouteDescriptions = src.RouteDescriptions
	}
	if len(src.LandmarkNames) > 0 {
		dst.LandmarkNames = src.LandmarkNames
	}
	if len(src.EncounterDescriptions) > 0 {
		dst.EncounterDescriptions = src.EncounterDescriptions
	}
	if len(src.RewardDescriptions) > 0 {
		dst.RewardDescriptions = src.RewardDescriptions
	}
	if len(src.FirstNames) > 0 {
		dst.FirstNames = src.FirstNames
	}
	if len(src.LastNames) > 0 {
		dst.LastNames = src.LastNames
	}
	if len(src.DialogueLines) > 0 {
		dst.DialogueLines = src.DialogueLines
	}
	if len(src.ItemPrefixes) > 0 {
		dst.ItemPrefixes = src.ItemPrefixes
	}
	if len(src.ItemNouns) > 0 {
		dst.ItemNouns = src.ItemNouns
	}
	if len(src.ItemSuffixes) > 0 {
		dst.ItemSuffixes = src.ItemSuffixes
	}
}
