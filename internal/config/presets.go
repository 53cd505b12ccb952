package config

import (
	"fmt"
	"sort"
)

// Preset replaces the integration section of a config.
type Preset struct {
	Description string
	Integration IntegrationConfig
}

var Presets = map[string]Preset{
	"classic": {
		Description: "t in [0, 50], 10000 steps from (0, 1, 1.05)",
		Integration: IntegrationConfig{Start: 0, End: 50, Steps: 10000, Initial: [3]float64{0, 1, 1.05}},
	},
	"long": {
		Description: "t in [0, 100], 20000 steps",
		Integration: IntegrationConfig{Start: 0, End: 100, Steps: 20000, Initial: [3]float64{0, 1, 1.05}},
	},
	"fine": {
		Description: "t in [0, 50], 50000 steps (h = 0.001)",
		Integration: IntegrationConfig{Start: 0, End: 50, Steps: 50000, Initial: [3]float64{0, 1, 1.05}},
	},
	"perturbed": {
		Description: "classic with y0 nudged by 1e-5",
		Integration: IntegrationConfig{Start: 0, End: 50, Steps: 10000, Initial: [3]float64{0, 1.00001, 1.05}},
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset overwrites c.Integration with the named preset.
func (c *Config) ApplyPreset(name string) error {
	p, ok := GetPreset(name)
	if !ok {
		return fmt.Errorf("%w: unknown preset %q", ErrInvalid, name)
	}
	c.Integration = p.Integration
	return nil
}
