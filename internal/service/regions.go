package service

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed regions.yaml
var defaultRegionsYAML []byte

type cityEntry struct {
	City   string `yaml:"city"`
	Region string `yaml:"region"`
}

type regionsFile struct {
	Version int         `yaml:"version"`
	Regions []string    `yaml:"regions"`
	Cities  []cityEntry `yaml:"cities"`
}

// RegionTable holds the top-level administrative regions and the
// city -> region lookup used for region extraction. Both are scanned in
// file order, which makes extraction deterministic.
type RegionTable struct {
	regions []string
	cities  []cityEntry
}

// LoadRegionTable parses the region tables from path, or from the
// embedded default when path is empty.
func LoadRegionTable(path string) (*RegionTable, error) {
	data := defaultRegionsYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read regions config: %w", err)
		}
	}

	var f regionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse regions config: %w", err)
	}
	if len(f.Regions) == 0 {
		return nil, fmt.Errorf("regions config has no regions")
	}

	return &RegionTable{regions: f.Regions, cities: f.Cities}, nil
}

// Extract returns the first region found in text, in table scan order.
// Top-level regions are tried first, then the city lookup; an empty
// string means no region was mentioned.
func (t *RegionTable) Extract(text string) string {
	for _, region := range t.regions {
		if strings.Contains(text, region) {
			return region
		}
	}
	for _, c := range t.cities {
		if strings.Contains(text, c.City) {
			return c.Region
		}
	}
	return ""
}

// Regions returns the top-level region list in scan order.
func (t *RegionTable) Regions() []string {
	out := make([]string, len(t.regions))
	copy(out, t.regions)
	return out
}
