package config

import "sort"

var Presets = map[string]*Config{
	"devotion": {
		Text: DefaultText, Speed: DefaultSpeed, Runs: DefaultRuns, Palette: DefaultPalette,
	},
	"haiku": {
		Text: "An old silent pond\nA frog jumps into the pond—\nSplash! Silence again.",
		Speed: 120, Runs: DefaultRuns, Color: true, Palette: "ocean",
	},
	"banner": {
		Text: "infinityper", Speed: 90, Runs: DefaultRuns, Color: true, Gradient: true, Palette: "cyberpunk",
	},
	"scroll": {
		Text: DefaultText, Speed: 40, Runs: 3, Repeat: true, Palette: DefaultPalette,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
