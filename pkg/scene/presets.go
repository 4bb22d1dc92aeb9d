package scene

import (
	"fmt"
	"sort"
	"strings"
)

// presets maps quality preset names to their sampling settings
var presets = map[string]SamplingConfig{
	"dev": {
		Width:           400,
		SamplesPerPixel: 20,
		MaxDepth:        10,
	},
	"latest": {
		Width:           1200,
		SamplesPerPixel: 200,
		MaxDepth:        50,
	},
}

// LookupPreset returns the sampling settings for a named quality preset.
// Height is left zero; it follows from the scene camera's aspect ratio.
func LookupPreset(name string) (SamplingConfig, error) {
	config, ok := presets[name]
	if !ok {
		return SamplingConfig{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return config, nil
}

// PresetNames returns the known preset names in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
