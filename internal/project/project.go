// Package project loads and saves landscape project files (YAML) and
// provides built-in presets.
package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/forestlab/silva/internal/forest"
)

const (
	DefaultGridSize  = 100.0
	DefaultInitTrees = 200
	DefaultSeed      = 42
	DefaultDbhMin    = 5.0
	DefaultDbhRange  = 25.0
)

// Config describes one simulation project.
type Config struct {
	Name    string          `yaml:"name"`
	Seed    int64           `yaml:"seed"`
	Grid    GridConfig      `yaml:"grid"`
	Init    InitConfig      `yaml:"init"`
	Climate ClimateConfig   `yaml:"climate"`
	Species []SpeciesConfig `yaml:"species"`
}

type GridConfig struct {
	Size float64 `yaml:"size"` // side length [m]
}

type InitConfig struct {
	Trees    int     `yaml:"trees"`
	DbhMin   float64 `yaml:"dbh_min"`
	DbhRange float64 `yaml:"dbh_range"`
}

type ClimateConfig struct {
	GrowthModifier float64 `yaml:"growth_modifier"`
}

type SpeciesConfig struct {
	Code          string  `yaml:"code"`
	Name          string  `yaml:"name"`
	MaxDbh        float64 `yaml:"max_dbh"`
	MaxHeight     float64 `yaml:"max_height"`
	MaxAge        int     `yaml:"max_age"`
	GrowthRate    float64 `yaml:"growth_rate"`
	MortalityBase float64 `yaml:"mortality_base"`
	WoodDensity   float64 `yaml:"wood_density"`
	RegenRate     float64 `yaml:"regen_rate"`
}

// DefaultConfig returns a one-hectare mixed stand with the built-in
// species parameter sets.
func DefaultConfig() *Config {
	return &Config{
		Name: "default",
		Seed: DefaultSeed,
		Grid: GridConfig{Size: DefaultGridSize},
		Init: InitConfig{
			Trees:    DefaultInitTrees,
			DbhMin:   DefaultDbhMin,
			DbhRange: DefaultDbhRange,
		},
		Climate: ClimateConfig{GrowthModifier: 1.0},
	}
}

// Load reads a project file. Fields absent from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("project %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a project file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ForestParams converts the project into engine parameters. Projects
// without a species section use the built-in sets.
func (c *Config) ForestParams() forest.Params {
	p := forest.Params{
		GridSize:     c.Grid.Size,
		InitTrees:    c.Init.Trees,
		Seed:         c.Seed,
		GrowthMod:    c.Climate.GrowthModifier,
		InitDbhMin:   c.Init.DbhMin,
		InitDbhRange: c.Init.DbhRange,
	}
	if len(c.Species) == 0 {
		p.Species = forest.DefaultSpecies()
		return p
	}
	p.Species = make([]forest.Species, 0, len(c.Species))
	for _, sc := range c.Species {
		p.Species = append(p.Species, forest.Species{
			Code:          sc.Code,
			Name:          sc.Name,
			MaxDbh:        sc.MaxDbh,
			MaxHeight:     sc.MaxHeight,
			MaxAge:        sc.MaxAge,
			GrowthRate:    sc.GrowthRate,
			MortalityBase: sc.MortalityBase,
			WoodDensity:   sc.WoodDensity,
			RegenRate:     sc.RegenRate,
		})
	}
	return p
}
