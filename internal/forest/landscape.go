package forest

import (
	"fmt"
	"math"
	"math/rand"
)

// Params configures a new landscape.
type Params struct {
	GridSize     float64 // side length of the square stand [m]
	InitTrees    int     // trees placed at year zero
	Seed         int64
	GrowthMod    float64 // site/climate growth modifier, 1.0 = reference
	Species      []Species
	InitDbhMin   float64 // initial diameter range [cm]
	InitDbhRange float64
}

// DefaultParams returns a reference parameterization: a one-hectare
// stand with a mixed initial population.
func DefaultParams() Params {
	return Params{
		GridSize:     100,
		InitTrees:    200,
		Seed:         42,
		GrowthMod:    1.0,
		Species:      DefaultSpecies(),
		InitDbhMin:   5,
		InitDbhRange: 25,
	}
}

// Landscape is the simulation engine state: a tree population advanced
// in annual steps. Not safe for concurrent use.
type Landscape struct {
	grid    float64
	species map[string]Species
	order   []string // species codes in declaration order
	trees   []*Tree
	rng     *rand.Rand
	growth  float64
	year    int
	nextID  int
}

// New builds a landscape from params and plants the initial population.
func New(p Params) (*Landscape, error) {
	if len(p.Species) == 0 {
		return nil, ErrNoSpecies
	}
	if p.GridSize <= 0 {
		return nil, ErrGridSize
	}
	if p.GrowthMod <= 0 {
		p.GrowthMod = 1.0
	}

	l := &Landscape{
		grid:    p.GridSize,
		species: make(map[string]Species, len(p.Species)),
		order:   make([]string, 0, len(p.Species)),
		trees:   make([]*Tree, 0, p.InitTrees),
		rng:     rand.New(rand.NewSource(p.Seed)),
		growth:  p.GrowthMod,
		nextID:  1,
	}
	for _, sp := range p.Species {
		if _, dup := l.species[sp.Code]; dup {
			return nil, fmt.Errorf("forest: duplicate species code %q", sp.Code)
		}
		l.species[sp.Code] = sp
		l.order = append(l.order, sp.Code)
	}

	for i := 0; i < p.InitTrees; i++ {
		code := l.order[l.rng.Intn(len(l.order))]
		dbh := p.InitDbhMin + l.rng.Float64()*p.InitDbhRange
		l.plant(code, dbh)
	}

	return l, nil
}

func (l *Landscape) plant(code string, dbh float64) {
	sp := l.species[code]
	t := &Tree{
		ID:      l.nextID,
		Species: code,
		X:       l.rng.Float64() * l.grid,
		Y:       l.rng.Float64() * l.grid,
		Dbh:     dbh,
		Age:     1,
	}
	l.nextID++
	t.updateAllometry(sp)
	l.trees = append(l.trees, t)
}

// Year returns the current simulation year (zero-based).
func (l *Landscape) Year() int { return l.year }

// TreeCount returns the number of live trees.
func (l *Landscape) TreeCount() int { return len(l.trees) }

// AdvanceYear runs one annual cycle: growth, mortality, regeneration.
// The year counter is incremented on success.
func (l *Landscape) AdvanceYear() error {
	if err := l.grow(); err != nil {
		return &StepError{Year: l.year, Wrapped: err}
	}
	l.applyMortality()
	l.regenerate()
	l.year++
	return nil
}

// grow applies the annual diameter increment and refreshes allometry.
// Crowding reduces growth as stand basal area approaches a dense-stand
// reference of 60 m2/ha.
func (l *Landscape) grow() error {
	crowding := 1.0 - math.Min(l.standBasalAreaPerHa()/60.0, 0.9)
	for _, t := range l.trees {
		sp := l.species[t.Species]
		inc := sp.GrowthRate * (1 - t.Dbh/sp.MaxDbh) * l.growth * crowding
		if inc > 0 {
			t.Dbh += inc
		}
		t.Age++
		t.updateAllometry(sp)
		if !t.valid() {
			return fmt.Errorf("%w: tree %d (%s)", ErrInvalidBiomass, t.ID, t.Species)
		}
	}
	return nil
}

// applyMortality removes trees that die this year. Mortality combines
// the species background rate with a senescence term near MaxAge and a
// suppression term for slow-growing small trees.
func (l *Landscape) applyMortality() {
	live := l.trees[:0]
	for _, t := range l.trees {
		sp := l.species[t.Species]
		p := sp.MortalityBase
		if sp.MaxAge > 0 {
			rel := float64(t.Age) / float64(sp.MaxAge)
			p += 0.2 * math.Pow(rel, 4)
		}
		if t.Dbh < 10 {
			p += 0.01
		}
		if l.rng.Float64() >= p {
			live = append(live, t)
		}
	}
	l.trees = live
}

// regenerate recruits saplings proportional to the adult population of
// each species.
func (l *Landscape) regenerate() {
	for _, code := range l.order {
		sp := l.species[code]
		adults := 0
		for _, t := range l.trees {
			if t.Species == code && t.Dbh >= 20 {
				adults++
			}
		}
		expected := sp.RegenRate * float64(adults)
		n := int(expected)
		if l.rng.Float64() < expected-float64(n) {
			n++
		}
		for i := 0; i < n; i++ {
			l.plant(code, 1.0+l.rng.Float64())
		}
	}
}

func (l *Landscape) standBasalAreaPerHa() float64 {
	ba := 0.0
	for _, t := range l.trees {
		ba += t.BasalArea()
	}
	ha := l.grid * l.grid / 10000
	if ha == 0 {
		return 0
	}
	return ba / ha
}
