package config

import "sort"

// Presets reproduce the classic demonstrations: the original ant, the
// four-ant flower, and the three multi-colour rules.
var Presets = map[string]func() *Config{
	"classic": DefaultConfig,
	"four-ants": func() *Config {
		return &Config{
			Size: 51, Rules: "10", Seed: DefaultSeed, Ticks: 5000, FPS: DefaultFPS,
			Colors: []string{"1,1,1", "0,0,0"},
			Ants: []AntConfig{
				{Heading: "E", Row: intp(25), Col: intp(30)},
				{Heading: "W", Row: intp(25), Col: intp(20)},
				{Heading: "N", Row: intp(30), Col: intp(25)},
				{Heading: "S", Row: intp(20), Col: intp(25)},
			},
		}
	},
	"rule-110": func() *Config {
		return &Config{
			Size: 51, Rules: "110", Seed: DefaultSeed, Ticks: 5000, FPS: DefaultFPS,
			Colors: []string{"1,1,1", "0,0.5,0", "0,1,0"},
			Ants:   []AntConfig{{Heading: "E", Row: intp(25), Col: intp(25)}},
		}
	},
	"rule-1000": func() *Config {
		return &Config{
			Size: 51, Rules: "1000", Seed: DefaultSeed, Ticks: 5000, FPS: DefaultFPS,
			Colors: []string{"1,1,1", "0,0.33,0", "0,0.67,0", "0,1,0"},
			Ants:   []AntConfig{{Heading: "E", Row: intp(25), Col: intp(25)}},
		}
	},
	"rule-1100": func() *Config {
		return &Config{
			Size: 101, Rules: "1100", Seed: DefaultSeed, Ticks: 20000, FPS: DefaultFPS,
			Colors: []string{"1,1,1", "0,0.33,0", "0,0.67,0", "0,1,0"},
			Ants:   []AntConfig{{Heading: "E", Row: intp(50), Col: intp(50)}},
		}
	},
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
