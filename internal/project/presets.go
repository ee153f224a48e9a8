package project

// Presets are built-in project configurations usable without a project
// file on disk.
var Presets = map[string]*Config{
	"demo": {
		Name: "demo",
		Seed: DefaultSeed,
		Grid: GridConfig{Size: DefaultGridSize},
		Init: InitConfig{Trees: DefaultInitTrees, DbhMin: DefaultDbhMin, DbhRange: DefaultDbhRange},
		Climate: ClimateConfig{
			GrowthModifier: 1.0,
		},
	},
	"spruce": {
		Name: "spruce",
		Seed: 7,
		Grid: GridConfig{Size: DefaultGridSize},
		Init: InitConfig{Trees: 300, DbhMin: 5, DbhRange: 10},
		Climate: ClimateConfig{
			GrowthModifier: 1.1,
		},
		Species: []SpeciesConfig{
			{
				Code: "piab", Name: "Norway spruce",
				MaxDbh: 120, MaxHeight: 48, MaxAge: 450,
				GrowthRate: 0.55, MortalityBase: 0.008,
				WoodDensity: 430, RegenRate: 0.012,
			},
		},
	},
	"old_growth": {
		Name: "old_growth",
		Seed: 1871,
		Grid: GridConfig{Size: 200},
		Init: InitConfig{Trees: 600, DbhMin: 20, DbhRange: 60},
		Climate: ClimateConfig{
			GrowthModifier: 0.9,
		},
	},
}

// GetPreset returns the named preset or nil.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
