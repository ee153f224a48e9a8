package forest

// Metric observes the landscape once per simulated year and reduces the
// observations to a single reported value.
type Metric interface {
	Name() string
	Observe(l *Landscape)
	Value() float64
	Reset()
}

// DefaultMetrics returns the metrics recorded for every run.
func DefaultMetrics() []Metric {
	return []Metric{
		NewCarbonStock(),
		NewBasalArea(),
		NewStemDensity(),
	}
}

// CarbonStock reports the final-year total carbon [kg].
type CarbonStock struct {
	latest float64
}

func NewCarbonStock() *CarbonStock { return &CarbonStock{} }

func (c *CarbonStock) Name() string { return "carbon_kg" }

func (c *CarbonStock) Observe(l *Landscape) {
	c.latest = l.Carbon()
}

func (c *CarbonStock) Value() float64 { return c.latest }

func (c *CarbonStock) Reset() { c.latest = 0 }

// BasalArea reports the final-year stand basal area [m2/ha].
type BasalArea struct {
	latest float64
}

func NewBasalArea() *BasalArea { return &BasalArea{} }

func (b *BasalArea) Name() string { return "basal_area_m2_ha" }

func (b *BasalArea) Observe(l *Landscape) {
	b.latest = l.standBasalAreaPerHa()
}

func (b *BasalArea) Value() float64 { return b.latest }

func (b *BasalArea) Reset() { b.latest = 0 }

// StemDensity reports the final-year live tree count.
type StemDensity struct {
	latest float64
}

func NewStemDensity() *StemDensity { return &StemDensity{} }

func (s *StemDensity) Name() string { return "stem_count" }

func (s *StemDensity) Observe(l *Landscape) {
	s.latest = float64(l.TreeCount())
}

func (s *StemDensity) Value() float64 { return s.latest }

func (s *StemDensity) Reset() { s.latest = 0 }
